package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus is the settlement state derived by the purchase/order
// workflows, never set directly by callers.
type PaymentStatus string

const (
	PaymentStatusPaid          PaymentStatus = "paid"
	PaymentStatusUnpaid        PaymentStatus = "unpaid"
	PaymentStatusPartialPaid   PaymentStatus = "partial-paid"
	PaymentStatusDiscountPaid  PaymentStatus = "discount-paid" // order only
	PaymentStatusPartialRefund PaymentStatus = "partial-refund"
	PaymentStatusFullRefund    PaymentStatus = "full-refund"
	PaymentStatusFree          PaymentStatus = "free" // order only, fully discounted away
)

// Purchase is a single-product supplier bill. Total is recomputed on refund as
// price * (quantity - refundQuantity); Due never goes below zero in storage.
type Purchase struct {
	BaseModel
	BillID         string          `gorm:"column:billid;type:varchar(20);uniqueIndex;not null" json:"billid"`
	SupplierID     uuid.UUID       `gorm:"type:uuid;not null" json:"supplier_id"`
	Supplier       *Supplier       `json:"supplier,omitempty"`
	ProductID      uuid.UUID       `gorm:"type:uuid;not null" json:"product_id"`
	Product        *Product        `json:"product,omitempty"`
	ProductName    string          `gorm:"type:varchar(255)" json:"product_name"` // snapshot at purchase time
	LotNo          string          `gorm:"type:varchar(60)" json:"lot_no"`
	ExpiryDate     *time.Time      `json:"expiry_date"`
	Unit           string          `gorm:"type:varchar(20)" json:"unit"`
	Quantity       int             `gorm:"not null" json:"quantity"`
	Price          decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"price"`
	Total          decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"total"`
	Advance        decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"advance"`
	Due            decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"due"`
	RefundQuantity int             `gorm:"not null;default:0" json:"refund_quantity"`
	PaymentStatus  PaymentStatus   `gorm:"type:varchar(20)" json:"payment_status"`
	RefundBy       string          `gorm:"type:varchar(255)" json:"refund_by"`

	// Attached on single-purchase reads
	Payments []Payment `gorm:"foreignKey:PurchaseBillID;references:BillID" json:"payments,omitempty"`
	Refunds  []Refund  `gorm:"foreignKey:PurchaseBillID;references:BillID" json:"refunds,omitempty"`
}
