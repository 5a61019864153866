package repository

import (
	"go-pharma-pos/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PurchaseRepository interface {
	Create(tx *gorm.DB, purchase *model.Purchase) error
	Save(tx *gorm.DB, purchase *model.Purchase) error
	FindAll(search string) ([]model.Purchase, error)
	FindByBillID(billID string) (*model.Purchase, error)
	LockByBillID(tx *gorm.DB, billID string) (*model.Purchase, error)
	Update(purchase *model.Purchase) error
	Delete(billID string, deletedBy string) error
}

type purchaseRepo struct {
	db *gorm.DB
}

func NewPurchaseRepo(db *gorm.DB) PurchaseRepository {
	return &purchaseRepo{db}
}

func (r *purchaseRepo) Create(tx *gorm.DB, purchase *model.Purchase) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(purchase).Error
}

func (r *purchaseRepo) Save(tx *gorm.DB, purchase *model.Purchase) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Save(purchase).Error
}

func (r *purchaseRepo) FindAll(search string) ([]model.Purchase, error) {
	var purchases []model.Purchase
	q := r.db.Preload("Supplier").Preload("Product")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("billid ILIKE ? OR product_name ILIKE ? OR lot_no ILIKE ?", like, like, like)
	}
	err := q.Order("created_at DESC").Find(&purchases).Error
	return purchases, err
}

// FindByBillID returns the purchase joined with supplier, product and its
// payment/refund history for display
func (r *purchaseRepo) FindByBillID(billID string) (*model.Purchase, error) {
	var purchase model.Purchase
	err := r.db.
		Preload("Supplier").
		Preload("Product").
		Preload("Payments").
		Preload("Refunds").
		First(&purchase, "billid = ?", billID).Error
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

// LockByBillID fetches the purchase FOR UPDATE inside tx so the due-payment
// and refund workflows operate on a stable row
func (r *purchaseRepo) LockByBillID(tx *gorm.DB, billID string) (*model.Purchase, error) {
	var purchase model.Purchase
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&purchase, "billid = ?", billID).Error
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepo) Update(purchase *model.Purchase) error {
	return r.db.Save(purchase).Error
}

func (r *purchaseRepo) Delete(billID string, deletedBy string) error {
	if err := r.db.Model(&model.Purchase{}).Where("billid = ?", billID).Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return r.db.Delete(&model.Purchase{}, "billid = ?", billID).Error
}
