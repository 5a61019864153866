package model

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type Customer struct {
	BaseModel
	CUSID     string `gorm:"column:cusid;type:varchar(20);uniqueIndex;not null" json:"cusid"` // year-scoped sequence
	Name      string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Age       int    `json:"age"`
	Gender    Gender `gorm:"type:varchar(10)" json:"gender" validate:"omitempty,oneof=male female other"`
	ContactNo string `gorm:"type:varchar(30)" json:"contact_no"`
	Email     string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Address   string `gorm:"type:varchar(255)" json:"address"`
	Points    int    `gorm:"default:0" json:"points"`
	Status    Status `gorm:"type:varchar(10);default:'active'" json:"status"`
}
