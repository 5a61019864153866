package repository

import (
	"go-pharma-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(tx *gorm.DB, payment *model.Payment) error
	FindAll(purchaseBillID, sellBillID string) ([]model.Payment, error)
	FindByID(id uuid.UUID) (*model.Payment, error)
}

type paymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) PaymentRepository {
	return &paymentRepo{db}
}

// Create appends to the money-received log; payments are never updated or
// deleted afterwards
func (r *paymentRepo) Create(tx *gorm.DB, payment *model.Payment) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(payment).Error
}

func (r *paymentRepo) FindAll(purchaseBillID, sellBillID string) ([]model.Payment, error) {
	var payments []model.Payment
	q := r.db.Order("created_at DESC")
	if purchaseBillID != "" {
		q = q.Where("purchase_billid = ?", purchaseBillID)
	}
	if sellBillID != "" {
		q = q.Where("sell_billid = ?", sellBillID)
	}
	err := q.Find(&payments).Error
	return payments, err
}

func (r *paymentRepo) FindByID(id uuid.UUID) (*model.Payment, error) {
	var payment model.Payment
	if err := r.db.First(&payment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}
