package model

// Permission represents a workflow capability that can be assigned to users
type Permission struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code" validate:"required"` // e.g., "create-sell"
	Name string `gorm:"type:varchar(100)" json:"name"`
}

// Permission codes gating the sensitive workflows
const (
	PermCreateSell     = "create-sell"
	PermCreateProduct  = "create-product"
	PermCreatePurchase = "create-purchase"
	PermRefundSell     = "refund-sell"
	PermRefundPurchase = "refund-purchase"
)

// Default permissions for the system
var DefaultPermissions = []Permission{
	{Code: PermCreateSell, Name: "Create Sell"},
	{Code: PermCreateProduct, Name: "Create Product"},
	{Code: PermCreatePurchase, Name: "Create Purchase"},
	{Code: PermRefundSell, Name: "Refund Sell"},
	{Code: PermRefundPurchase, Name: "Refund Purchase"},
}
