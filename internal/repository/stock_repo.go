package repository

import (
	"errors"

	"go-pharma-pos/internal/model"
	"go-pharma-pos/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StockRepository is the on-hand ledger. The mutating methods take the
// caller's tx and lock the row FOR UPDATE, so a whole workflow sees one
// consistent quantity from validation through write.
type StockRepository interface {
	FindAll() ([]model.Stock, error)
	FindByID(id uuid.UUID) (*model.Stock, error)
	FindByProductID(productID uuid.UUID) (*model.Stock, error)
	FindLowStock() ([]model.Stock, error)
	Update(stock *model.Stock) error

	LockByProductID(tx *gorm.DB, productID uuid.UUID) (*model.Stock, error)
	EnsureAndIncrease(tx *gorm.DB, productID uuid.UUID, productName string, quantity int, actor string) (*model.Stock, error)
	DecreaseForSale(tx *gorm.DB, productID uuid.UUID, quantity int) (*model.Stock, error)
	DecreaseForPurchaseRefund(tx *gorm.DB, productID uuid.UUID, quantity int) (*model.Stock, error)
	IncreaseForSaleRefund(tx *gorm.DB, productID uuid.UUID, quantity int) (*model.Stock, error)
	RenameProduct(tx *gorm.DB, productID uuid.UUID, newName string) error
}

type stockRepo struct {
	db *gorm.DB
}

func NewStockRepo(db *gorm.DB) StockRepository {
	return &stockRepo{db}
}

func (r *stockRepo) FindAll() ([]model.Stock, error) {
	var stocks []model.Stock
	err := r.db.Preload("Product").Order("product_name ASC").Find(&stocks).Error
	return stocks, err
}

func (r *stockRepo) FindByID(id uuid.UUID) (*model.Stock, error) {
	var stock model.Stock
	if err := r.db.Preload("Product").First(&stock, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &stock, nil
}

func (r *stockRepo) FindByProductID(productID uuid.UUID) (*model.Stock, error) {
	var stock model.Stock
	if err := r.db.First(&stock, "product_id = ?", productID).Error; err != nil {
		return nil, err
	}
	return &stock, nil
}

func (r *stockRepo) FindLowStock() ([]model.Stock, error) {
	var stocks []model.Stock
	err := r.db.Preload("Product").
		Where("alert_quantity > 0 AND quantity <= alert_quantity").
		Order("quantity ASC").
		Find(&stocks).Error
	return stocks, err
}

func (r *stockRepo) Update(stock *model.Stock) error {
	return r.db.Save(stock).Error
}

// LockByProductID fetches the stock row with a FOR UPDATE lock inside tx
func (r *stockRepo) LockByProductID(tx *gorm.DB, productID uuid.UUID) (*model.Stock, error) {
	var stock model.Stock
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&stock, "product_id = ?", productID).Error
	if err != nil {
		return nil, err
	}
	return &stock, nil
}

// EnsureAndIncrease creates the stock row on first purchase of a product,
// otherwise increments the locked row. ProductName is refreshed either way.
func (r *stockRepo) EnsureAndIncrease(tx *gorm.DB, productID uuid.UUID, productName string, quantity int, actor string) (*model.Stock, error) {
	stock, err := r.LockByProductID(tx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		stock = &model.Stock{
			ProductID:   productID,
			ProductName: productName,
			Quantity:    quantity,
			Status:      model.StatusActive,
		}
		stock.CreatedBy = actor
		stock.UpdatedBy = actor
		if err := tx.Create(stock).Error; err != nil {
			return nil, err
		}
		return stock, nil
	}
	if err != nil {
		return nil, err
	}

	stock.Quantity += quantity
	stock.ProductName = productName
	stock.UpdatedBy = actor
	if err := tx.Save(stock).Error; err != nil {
		return nil, err
	}
	return stock, nil
}

// DecreaseForSale removes sold units; fails rather than clamping when the
// locked on-hand quantity is short.
func (r *stockRepo) DecreaseForSale(tx *gorm.DB, productID uuid.UUID, quantity int) (*model.Stock, error) {
	stock, err := r.LockByProductID(tx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Product not found in stock")
	}
	if err != nil {
		return nil, err
	}

	if stock.Quantity < quantity {
		return nil, apperror.Newf(apperror.KindInsufficientStock,
			"Insufficient stock for %s", stock.ProductName)
	}

	stock.Quantity -= quantity
	stock.TotalSell += quantity
	if err := tx.Save(stock).Error; err != nil {
		return nil, err
	}
	return stock, nil
}

// DecreaseForPurchaseRefund returns units to the supplier. Refunding units no
// longer on hand (already resold) is an error.
func (r *stockRepo) DecreaseForPurchaseRefund(tx *gorm.DB, productID uuid.UUID, quantity int) (*model.Stock, error) {
	stock, err := r.LockByProductID(tx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Product not found in stock")
	}
	if err != nil {
		return nil, err
	}

	if stock.Quantity < quantity {
		return nil, apperror.Newf(apperror.KindInsufficientStock,
			"Not enough stock to refund. Stock quantity is %d", stock.Quantity)
	}

	stock.Quantity -= quantity
	if err := tx.Save(stock).Error; err != nil {
		return nil, err
	}
	return stock, nil
}

// IncreaseForSaleRefund puts refunded sale units back on the shelf and
// shrinks the cumulative sold counter.
func (r *stockRepo) IncreaseForSaleRefund(tx *gorm.DB, productID uuid.UUID, quantity int) (*model.Stock, error) {
	stock, err := r.LockByProductID(tx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Stock not found")
	}
	if err != nil {
		return nil, err
	}

	stock.Quantity += quantity
	stock.TotalSell -= quantity
	if err := tx.Save(stock).Error; err != nil {
		return nil, err
	}
	return stock, nil
}

// RenameProduct syncs the denormalized product name after a product update.
// Missing stock row is fine: the product was never purchased.
func (r *stockRepo) RenameProduct(tx *gorm.DB, productID uuid.UUID, newName string) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Model(&model.Stock{}).
		Where("product_id = ?", productID).
		Update("product_name", newName).Error
}
