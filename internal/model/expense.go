package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Expense struct {
	BaseModel
	Purpose     string          `gorm:"type:varchar(255);not null" json:"purpose" validate:"required"`
	ExpenseDate time.Time       `gorm:"not null" json:"expense_date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
}
