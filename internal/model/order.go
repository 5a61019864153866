package model

import "github.com/shopspring/decimal"

// Order is a sale bill. Amount fields are derived once at creation:
// subtotal = sum(item price*qty), discount amount/percent derive each other,
// vat applies to (subtotal - discountAmount), due = round2(total - received).
// Sale refunds deliberately leave Received/Due/PaymentStatus untouched; the
// cash already returned is exposed through TotalRefundAmount on reads.
type Order struct {
	BaseModel
	BillID          string          `gorm:"column:billid;type:varchar(20);uniqueIndex;not null" json:"billid"`
	CUSID           *string         `gorm:"column:cusid;type:varchar(20)" json:"cusid"`
	Customer        *Customer       `gorm:"foreignKey:CUSID;references:CUSID" json:"customer,omitempty"`
	Subtotal        decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"subtotal"`
	DiscountPercent decimal.Decimal `gorm:"type:numeric(7,2);default:0" json:"discount_percent"`
	DiscountAmount  decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"discount_amount"`
	VatPercent      decimal.Decimal `gorm:"type:numeric(7,2);default:0" json:"vat_percent"`
	VatAmount       decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"vat_amount"`
	Total           decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"total"`
	Received        decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"received"`
	Due             decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"due"`
	PaymentStatus   PaymentStatus   `gorm:"type:varchar(20)" json:"payment_status"`
	Note            string          `json:"note"`

	// Attached on single-order reads
	Items    []OrderItem `gorm:"foreignKey:BillID;references:BillID" json:"items,omitempty"`
	Payments []Payment   `gorm:"foreignKey:SellBillID;references:BillID" json:"payments,omitempty"`
	Refunds  []Refund    `gorm:"foreignKey:SellBillID;references:BillID" json:"refunds,omitempty"`

	// Computed aggregate, not a column
	TotalRefundAmount decimal.Decimal `gorm:"-" json:"total_refund_amount"`
}
