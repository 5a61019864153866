package model

// Catalog lookups referenced by products and suppliers. Plain CRUD, no
// workflow logic attached.

type Brand struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`
	Description string `json:"description"`
	Status      Status `gorm:"type:varchar(10);default:'active'" json:"status"`
}

type Category struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`
	Description string `json:"description"`
	Status      Status `gorm:"type:varchar(10);default:'active'" json:"status"`
}

type Generic struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`
	Description string `json:"description"`
	Status      Status `gorm:"type:varchar(10);default:'active'" json:"status"`
}

type Shelve struct {
	BaseModel
	Name   string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`
	Status Status `gorm:"type:varchar(10);default:'active'" json:"status"`
}
