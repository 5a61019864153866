package repository

import (
	"go-pharma-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository interface {
	Create(tx *gorm.DB, order *model.Order) error
	InsertItems(tx *gorm.DB, items []model.OrderItem) error
	FindAll(search string) ([]model.Order, error)
	FindByBillID(billID string) (*model.Order, error)
	LockByBillID(tx *gorm.DB, billID string) (*model.Order, error)
	Update(tx *gorm.DB, order *model.Order) error
	FindItemsByBillID(billID string) ([]model.OrderItem, error)
	LockItem(tx *gorm.DB, billID string, productID uuid.UUID) (*model.OrderItem, error)
	SaveItem(tx *gorm.DB, item *model.OrderItem) error
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

func (r *orderRepo) Create(tx *gorm.DB, order *model.Order) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(order).Error
}

func (r *orderRepo) InsertItems(tx *gorm.DB, items []model.OrderItem) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(&items).Error
}

func (r *orderRepo) FindAll(search string) ([]model.Order, error) {
	var orders []model.Order
	q := r.db.Preload("Customer")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("billid ILIKE ? OR cusid ILIKE ?", like, like)
	}
	err := q.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// FindByBillID returns the order fully joined for display: customer, items
// with product names, payment and refund history, plus the refunded-cash
// aggregate.
func (r *orderRepo) FindByBillID(billID string) (*model.Order, error) {
	var order model.Order
	err := r.db.
		Preload("Customer").
		Preload("Items.Product").
		Preload("Payments").
		Preload("Refunds.Product").
		First(&order, "billid = ?", billID).Error
	if err != nil {
		return nil, err
	}

	for _, refund := range order.Refunds {
		order.TotalRefundAmount = order.TotalRefundAmount.Add(refund.Amount)
	}

	return &order, nil
}

func (r *orderRepo) LockByBillID(tx *gorm.DB, billID string) (*model.Order, error) {
	var order model.Order
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&order, "billid = ?", billID).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) Update(tx *gorm.DB, order *model.Order) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Save(order).Error
}

func (r *orderRepo) FindItemsByBillID(billID string) ([]model.OrderItem, error) {
	var items []model.OrderItem
	err := r.db.Preload("Product").Where("billid = ?", billID).Find(&items).Error
	return items, err
}

func (r *orderRepo) LockItem(tx *gorm.DB, billID string, productID uuid.UUID) (*model.OrderItem, error) {
	var item model.OrderItem
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&item, "billid = ? AND product_id = ?", billID, productID).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *orderRepo) SaveItem(tx *gorm.DB, item *model.OrderItem) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Save(item).Error
}
