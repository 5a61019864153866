package model

import "github.com/google/uuid"

// Stock is the on-hand ledger row, one per product. Quantity moves with
// purchases, sales and refunds; TotalSell accumulates units sold and shrinks
// when a sale is refunded. ProductName is a denormalized display copy kept in
// sync on product rename.
type Stock struct {
	BaseModel
	ProductID     uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"product_id"`
	Product       *Product  `json:"product,omitempty"`
	ProductName   string    `gorm:"type:varchar(255)" json:"product_name"`
	Quantity      int       `gorm:"not null;default:0" json:"quantity"`
	AlertQuantity int       `gorm:"not null;default:0" json:"alert_quantity"`
	TotalSell     int       `gorm:"not null;default:0" json:"total_sell"`
	Status        Status    `gorm:"type:varchar(10);default:'active'" json:"status"`
}

// NeedsReorder reports whether on-hand quantity has fallen to the alert threshold
func (s *Stock) NeedsReorder() bool {
	return s.AlertQuantity > 0 && s.Quantity <= s.AlertQuantity
}
