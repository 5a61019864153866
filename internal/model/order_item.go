package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending       OrderStatus = "pending"
	OrderStatusConfirmed     OrderStatus = "confirmed"
	OrderStatusPicked        OrderStatus = "picked"
	OrderStatusDelivered     OrderStatus = "delivered"
	OrderStatusCancel        OrderStatus = "cancel"
	OrderStatusPartialRefund OrderStatus = "partial-refund"
	OrderStatusFullRefund    OrderStatus = "full-refund"
)

// OrderItem is one sale line, linked to its order by bill id value rather
// than a row reference. RefundQuantity may never exceed Quantity.
type OrderItem struct {
	BaseModel
	BillID         string          `gorm:"column:billid;type:varchar(20);index;not null" json:"billid"`
	ProductID      uuid.UUID       `gorm:"type:uuid;not null" json:"product_id"`
	Product        *Product        `json:"product,omitempty"`
	Unit           string          `gorm:"type:varchar(20)" json:"unit"`
	Price          decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"price"`
	Quantity       int             `gorm:"not null" json:"quantity"`
	RefundQuantity int             `gorm:"not null;default:0" json:"refund_quantity"`
	OrderStatus    OrderStatus     `gorm:"type:varchar(20);default:'delivered'" json:"order_status"`
}
