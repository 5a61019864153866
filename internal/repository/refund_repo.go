package repository

import (
	"go-pharma-pos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RefundTotals is the aggregate over a set of refund rows
type RefundTotals struct {
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
	Amount   decimal.Decimal `json:"amount"`
}

type RefundRepository interface {
	Create(tx *gorm.DB, refund *model.Refund) error
	CreateBatch(tx *gorm.DB, refunds []model.Refund) error
	SumAmountForPurchase(tx *gorm.DB, billID string) (decimal.Decimal, error)
	SumAmountForSell(tx *gorm.DB, billID string) (decimal.Decimal, error)
	FindAll(purchaseBillID, sellBillID string) ([]model.Refund, error)
	FindByID(id uuid.UUID) (*model.Refund, error)
	Totals(purchaseBillID, sellBillID string) (*RefundTotals, error)
}

type refundRepo struct {
	db *gorm.DB
}

func NewRefundRepo(db *gorm.DB) RefundRepository {
	return &refundRepo{db}
}

func (r *refundRepo) Create(tx *gorm.DB, refund *model.Refund) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(refund).Error
}

func (r *refundRepo) CreateBatch(tx *gorm.DB, refunds []model.Refund) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(&refunds).Error
}

func (r *refundRepo) sumAmount(tx *gorm.DB, column, billID string) (decimal.Decimal, error) {
	if tx == nil {
		tx = r.db
	}
	var sum decimal.Decimal
	err := tx.Model(&model.Refund{}).
		Where(column+" = ?", billID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}

// SumAmountForPurchase totals cash already refunded against a purchase bill,
// the reconciliation base for the next refund's amount
func (r *refundRepo) SumAmountForPurchase(tx *gorm.DB, billID string) (decimal.Decimal, error) {
	return r.sumAmount(tx, "purchase_billid", billID)
}

// SumAmountForSell totals cash already refunded against a sale bill
func (r *refundRepo) SumAmountForSell(tx *gorm.DB, billID string) (decimal.Decimal, error) {
	return r.sumAmount(tx, "sell_billid", billID)
}

func (r *refundRepo) FindAll(purchaseBillID, sellBillID string) ([]model.Refund, error) {
	var refunds []model.Refund
	q := r.db.Preload("Product").Order("created_at DESC")
	if purchaseBillID != "" {
		q = q.Where("purchase_billid = ?", purchaseBillID)
	}
	if sellBillID != "" {
		q = q.Where("sell_billid = ?", sellBillID)
	}
	err := q.Find(&refunds).Error
	return refunds, err
}

func (r *refundRepo) FindByID(id uuid.UUID) (*model.Refund, error) {
	var refund model.Refund
	if err := r.db.Preload("Product").First(&refund, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &refund, nil
}

func (r *refundRepo) Totals(purchaseBillID, sellBillID string) (*RefundTotals, error) {
	var totals RefundTotals
	q := r.db.Model(&model.Refund{}).
		Select("COALESCE(SUM(price), 0) as price, COALESCE(SUM(quantity), 0) as quantity, COALESCE(SUM(total), 0) as total, COALESCE(SUM(amount), 0) as amount")
	if purchaseBillID != "" {
		q = q.Where("purchase_billid = ?", purchaseBillID)
	}
	if sellBillID != "" {
		q = q.Where("sell_billid = ?", sellBillID)
	}
	if err := q.Scan(&totals).Error; err != nil {
		return nil, err
	}
	return &totals, nil
}
