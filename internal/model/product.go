package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	Code            string          `gorm:"type:varchar(20);uniqueIndex;not null" json:"code"` // year-scoped sequence, e.g. 25000001
	Name            string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`
	CategoryID      uuid.UUID       `gorm:"type:uuid;not null" json:"category_id" validate:"uuid_required"`
	Category        *Category       `json:"category,omitempty" validate:"-"`
	Brand           string          `gorm:"type:varchar(120)" json:"brand"`
	GenericName     string          `gorm:"type:varchar(255)" json:"generic_name"`
	ShelveID        uuid.UUID       `gorm:"type:uuid;not null" json:"shelve_id" validate:"uuid_required"`
	Shelve          *Shelve         `json:"shelve,omitempty" validate:"-"`
	Description     string          `json:"description"`
	Unit            string          `gorm:"type:varchar(20)" json:"unit" validate:"required"`
	Price           decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"price"`
	DiscountPercent decimal.Decimal `gorm:"type:numeric(7,2);default:0" json:"discount_percent"`
	DiscountAmount  decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"discount_amount"`
	Status          Status          `gorm:"type:varchar(10);default:'active'" json:"status"`
}
