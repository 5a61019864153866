package model

import "github.com/shopspring/decimal"

type PaymentMethod string

const (
	PaymentMethodCash          PaymentMethod = "cash"
	PaymentMethodCard          PaymentMethod = "card"
	PaymentMethodBkash         PaymentMethod = "bkash"
	PaymentMethodRocket        PaymentMethod = "rocket"
	PaymentMethodMobileBanking PaymentMethod = "mobile-banking"
	PaymentMethodBank          PaymentMethod = "bank"
)

type PaymentType string

const (
	PaymentTypeNew PaymentType = "new" // money taken at bill creation
	PaymentTypeDue PaymentType = "due" // later top-up against outstanding due
)

// Payment is the append-only money-received log. Exactly one of
// PurchaseBillID / SellBillID is set, tagging the transaction side.
type Payment struct {
	BaseModel
	PurchaseBillID  *string         `gorm:"column:purchase_billid;type:varchar(20);index" json:"purchase_billid"`
	SellBillID      *string         `gorm:"column:sell_billid;type:varchar(20);index" json:"sell_billid"`
	Amount          decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	DiscountAmount  decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"discount_amount"`
	DiscountPercent decimal.Decimal `gorm:"type:numeric(7,2);default:0" json:"discount_percent"`
	PaymentMethod   PaymentMethod   `gorm:"type:varchar(20)" json:"payment_method" validate:"omitempty,oneof=cash card bkash rocket mobile-banking bank"`
	PaymentType     PaymentType     `gorm:"type:varchar(10)" json:"payment_type"`
}
