package service

import (
	"errors"
	"time"

	"go-pharma-pos/internal/model"
	"go-pharma-pos/internal/repository"
	"go-pharma-pos/internal/ws"
	"go-pharma-pos/pkg/apperror"
	"go-pharma-pos/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreatePurchaseRequest struct {
	SupplierID    uuid.UUID           `json:"supplier_id" validate:"uuid_required"`
	ProductID     uuid.UUID           `json:"product_id" validate:"uuid_required"`
	LotNo         string              `json:"lot_no"`
	ExpiryDate    *time.Time          `json:"expiry_date"`
	Quantity      int                 `json:"quantity" validate:"required,gt=0"`
	Price         decimal.Decimal     `json:"price"`
	Advance       decimal.Decimal     `json:"advance"`
	PaymentMethod model.PaymentMethod `json:"payment_method" validate:"omitempty,oneof=cash card bkash rocket mobile-banking bank"`
}

type DuePaymentRequest struct {
	Amount        decimal.Decimal     `json:"amount"`
	PaymentMethod model.PaymentMethod `json:"payment_method" validate:"omitempty,oneof=cash card bkash rocket mobile-banking bank"`
}

type RefundPurchaseRequest struct {
	Quantity     int                 `json:"quantity" validate:"required,gt=0"`
	RefundMethod model.PaymentMethod `json:"refund_method" validate:"omitempty,oneof=cash card bkash rocket mobile-banking bank"`
	Note         string              `json:"note"`
}

type UpdatePurchaseRequest struct {
	LotNo      string     `json:"lot_no"`
	ExpiryDate *time.Time `json:"expiry_date"`
	Unit       string     `json:"unit"`
}

type PurchaseService interface {
	CreatePurchase(req *CreatePurchaseRequest, actor Actor) (*model.Purchase, error)
	DuePayment(billID string, req *DuePaymentRequest, actor Actor) (*model.Purchase, error)
	RefundPurchase(billID string, req *RefundPurchaseRequest, actor Actor) (*model.Purchase, error)
	GetAllPurchases(search string) ([]model.Purchase, error)
	GetPurchaseByBillID(billID string) (*model.Purchase, error)
	UpdatePurchase(billID string, req *UpdatePurchaseRequest, actor Actor) (*model.Purchase, error)
	DeletePurchase(billID string, actor Actor) error
}

type purchaseService struct {
	purchaseRepo repository.PurchaseRepository
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	stockRepo    repository.StockRepository
	paymentRepo  repository.PaymentRepository
	refundRepo   repository.RefundRepository
	sequenceRepo repository.SequenceRepository
	db           *gorm.DB
	wsHub        *ws.Hub
}

func NewPurchaseService(
	purchaseRepo repository.PurchaseRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	paymentRepo repository.PaymentRepository,
	refundRepo repository.RefundRepository,
	sequenceRepo repository.SequenceRepository,
	db *gorm.DB,
	hub *ws.Hub,
) PurchaseService {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		stockRepo:    stockRepo,
		paymentRepo:  paymentRepo,
		refundRepo:   refundRepo,
		sequenceRepo: sequenceRepo,
		db:           db,
		wsHub:        hub,
	}
}

// CreatePurchase records a supplier bill: one transaction allocates the bill
// id, writes the purchase, raises stock on hand and logs the advance payment.
func (s *purchaseService) CreatePurchase(req *CreatePurchaseRequest, actor Actor) (*model.Purchase, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Newf(apperror.KindInvalidInput,
			"Validation failed: field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag)
	}
	if !req.Price.IsPositive() {
		return nil, apperror.InvalidInput("Invalid purchase price")
	}
	if req.Advance.IsNegative() {
		return nil, apperror.InvalidInput("Invalid advance amount")
	}

	supplier, err := s.supplierRepo.FindByID(req.SupplierID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Supplier not found")
	}
	if err != nil {
		return nil, err
	}
	if supplier.Status != model.StatusActive {
		return nil, apperror.InvalidInput("Supplier is deactivated")
	}

	product, err := s.productRepo.FindByID(req.ProductID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Product not found")
	}
	if err != nil {
		return nil, err
	}
	if product.Status != model.StatusActive {
		return nil, apperror.InvalidInput("Product is deactivated")
	}

	total, due, status, err := computePurchaseCreate(req.Price, req.Quantity, req.Advance)
	if err != nil {
		return nil, err
	}

	var purchase *model.Purchase
	var stock *model.Stock

	err = s.db.Transaction(func(tx *gorm.DB) error {
		billID, err := s.sequenceRepo.Next(tx, repository.SeqPurchase)
		if err != nil {
			return err
		}

		purchase = &model.Purchase{
			BillID:        billID,
			SupplierID:    supplier.ID,
			ProductID:     product.ID,
			ProductName:   product.Name,
			LotNo:         req.LotNo,
			ExpiryDate:    req.ExpiryDate,
			Unit:          product.Unit,
			Quantity:      req.Quantity,
			Price:         req.Price,
			Total:         total,
			Advance:       req.Advance,
			Due:           due,
			PaymentStatus: status,
		}
		purchase.CreatedBy = actor.Name
		purchase.UpdatedBy = actor.Name
		if err := s.purchaseRepo.Create(tx, purchase); err != nil {
			return err
		}

		stock, err = s.stockRepo.EnsureAndIncrease(tx, product.ID, product.Name, req.Quantity, actor.Name)
		if err != nil {
			return err
		}

		if req.Advance.IsPositive() {
			payment := &model.Payment{
				PurchaseBillID: &purchase.BillID,
				Amount:         req.Advance,
				PaymentMethod:  paymentMethodOrCash(req.PaymentMethod),
				PaymentType:    model.PaymentTypeNew,
			}
			payment.CreatedBy = actor.Name
			payment.UpdatedBy = actor.Name
			return s.paymentRepo.Create(tx, payment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	go s.wsHub.Publish(ws.EventPurchase, "purchase_created", map[string]interface{}{
		"billid":       purchase.BillID,
		"product_name": purchase.ProductName,
		"quantity":     purchase.Quantity,
		"total":        purchase.Total,
		"new_stock":    stock.Quantity,
		"user":         actor.Name,
	})

	return purchase, nil
}

// DuePayment settles part of the outstanding due on a purchase. Advance
// tracks total money paid to the supplier, so later refunds reconcile
// against everything handed over, not just the opening advance.
func (s *purchaseService) DuePayment(billID string, req *DuePaymentRequest, actor Actor) (*model.Purchase, error) {
	var purchase *model.Purchase

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		purchase, err = s.purchaseRepo.LockByBillID(tx, billID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Purchase not found")
		}
		if err != nil {
			return err
		}

		newDue, status, err := computeDuePayment(purchase.Due, req.Amount)
		if err != nil {
			return err
		}

		purchase.Due = newDue
		purchase.Advance = purchase.Advance.Add(req.Amount)
		purchase.PaymentStatus = status
		purchase.UpdatedBy = actor.Name
		if err := s.purchaseRepo.Save(tx, purchase); err != nil {
			return err
		}

		payment := &model.Payment{
			PurchaseBillID: &purchase.BillID,
			Amount:         req.Amount,
			PaymentMethod:  paymentMethodOrCash(req.PaymentMethod),
			PaymentType:    model.PaymentTypeDue,
		}
		payment.CreatedBy = actor.Name
		payment.UpdatedBy = actor.Name
		return s.paymentRepo.Create(tx, payment)
	})
	if err != nil {
		return nil, err
	}

	return purchase, nil
}

// RefundPurchase returns units to the supplier. The whole flow runs in one
// transaction with the purchase and stock rows locked: quantities shrink, the
// bill total is recomputed and cash comes back only once the total falls
// below what was paid.
func (s *purchaseService) RefundPurchase(billID string, req *RefundPurchaseRequest, actor Actor) (*model.Purchase, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Newf(apperror.KindInvalidInput,
			"Validation failed: field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag)
	}

	var purchase *model.Purchase
	var refund *model.Refund
	var stock *model.Stock

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		purchase, err = s.purchaseRepo.LockByBillID(tx, billID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Purchase not found")
		}
		if err != nil {
			return err
		}

		refundedSoFar, err := s.refundRepo.SumAmountForPurchase(tx, billID)
		if err != nil {
			return err
		}

		res, err := computePurchaseRefund(
			purchase.Price, purchase.Quantity, purchase.RefundQuantity, req.Quantity,
			purchase.Advance, refundedSoFar)
		if err != nil {
			return err
		}

		stock, err = s.stockRepo.DecreaseForPurchaseRefund(tx, purchase.ProductID, req.Quantity)
		if err != nil {
			return err
		}

		purchase.RefundQuantity = res.RefundQuantity
		purchase.Total = res.Total
		purchase.Due = res.Due
		purchase.PaymentStatus = res.PaymentStatus
		purchase.RefundBy = actor.Name
		purchase.UpdatedBy = actor.Name
		if err := s.purchaseRepo.Save(tx, purchase); err != nil {
			return err
		}

		refund = &model.Refund{
			PurchaseBillID: &purchase.BillID,
			ProductID:      purchase.ProductID,
			Unit:           purchase.Unit,
			Price:          purchase.Price,
			Quantity:       req.Quantity,
			Total:          purchase.Price.Mul(decimal.NewFromInt(int64(req.Quantity))),
			Amount:         res.CashAmount,
			RefundMethod:   paymentMethodOrCash(req.RefundMethod),
			Note:           req.Note,
		}
		refund.CreatedBy = actor.Name
		refund.UpdatedBy = actor.Name
		return s.refundRepo.Create(tx, refund)
	})
	if err != nil {
		return nil, err
	}

	go s.wsHub.Publish(ws.EventRefund, "purchase_refunded", map[string]interface{}{
		"billid":        purchase.BillID,
		"product_name":  purchase.ProductName,
		"quantity":      refund.Quantity,
		"refund_amount": refund.Amount,
		"new_stock":     stock.Quantity,
		"user":          actor.Name,
	})

	return purchase, nil
}

func (s *purchaseService) GetAllPurchases(search string) ([]model.Purchase, error) {
	return s.purchaseRepo.FindAll(search)
}

func (s *purchaseService) GetPurchaseByBillID(billID string) (*model.Purchase, error) {
	purchase, err := s.purchaseRepo.FindByBillID(billID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Purchase not found")
	}
	if err != nil {
		return nil, err
	}
	return purchase, nil
}

// UpdatePurchase edits descriptive fields only. Money and quantity fields
// move exclusively through the due-payment and refund workflows.
func (s *purchaseService) UpdatePurchase(billID string, req *UpdatePurchaseRequest, actor Actor) (*model.Purchase, error) {
	purchase, err := s.purchaseRepo.FindByBillID(billID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Purchase not found")
	}
	if err != nil {
		return nil, err
	}

	if req.LotNo != "" {
		purchase.LotNo = req.LotNo
	}
	if req.ExpiryDate != nil {
		purchase.ExpiryDate = req.ExpiryDate
	}
	if req.Unit != "" {
		purchase.Unit = req.Unit
	}
	purchase.UpdatedBy = actor.Name

	if err := s.purchaseRepo.Update(purchase); err != nil {
		return nil, err
	}
	return purchase, nil
}

func (s *purchaseService) DeletePurchase(billID string, actor Actor) error {
	if _, err := s.purchaseRepo.FindByBillID(billID); errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("Purchase not found")
	} else if err != nil {
		return err
	}
	return s.purchaseRepo.Delete(billID, actor.Name)
}

func paymentMethodOrCash(m model.PaymentMethod) model.PaymentMethod {
	if m == "" {
		return model.PaymentMethodCash
	}
	return m
}
