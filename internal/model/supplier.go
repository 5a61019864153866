package model

import "github.com/google/uuid"

type Supplier struct {
	BaseModel
	SUPID     string     `gorm:"column:supid;type:varchar(20);uniqueIndex;not null" json:"supid"` // year-scoped sequence
	Name      string     `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Age       int        `json:"age"`
	Gender    Gender     `gorm:"type:varchar(10)" json:"gender" validate:"omitempty,oneof=male female other"`
	ContactNo string     `gorm:"type:varchar(30)" json:"contact_no"`
	Email     string     `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Address   string     `gorm:"type:varchar(255)" json:"address"`
	BrandID   *uuid.UUID `gorm:"type:uuid" json:"brand_id"`
	Brand     *Brand     `json:"brand,omitempty"`
	Status    Status     `gorm:"type:varchar(10);default:'active'" json:"status"`
}
