package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Refund records returned units. Total is the line value (price * quantity);
// Amount is the cash actually handed back, which can be smaller because it
// reconciles against what was received minus earlier refunds.
type Refund struct {
	BaseModel
	PurchaseBillID *string         `gorm:"column:purchase_billid;type:varchar(20);index" json:"purchase_billid"`
	SellBillID     *string         `gorm:"column:sell_billid;type:varchar(20);index" json:"sell_billid"`
	ProductID      uuid.UUID       `gorm:"type:uuid;not null" json:"product_id"`
	Product        *Product        `json:"product,omitempty"`
	Unit           string          `gorm:"type:varchar(20)" json:"unit"`
	Price          decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"price"`
	Quantity       int             `gorm:"not null" json:"quantity"`
	Total          decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"total"`
	Amount         decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"amount"`
	RefundMethod   PaymentMethod   `gorm:"type:varchar(20)" json:"refund_method" validate:"omitempty,oneof=cash card bkash rocket mobile-banking bank"`
	Note           string          `json:"note"`
}
