package service

import (
	"errors"

	"go-pharma-pos/internal/model"
	"go-pharma-pos/internal/repository"
	"go-pharma-pos/internal/ws"
	"go-pharma-pos/pkg/apperror"
	"go-pharma-pos/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RefundItemRequest struct {
	ProductID uuid.UUID       `json:"product_id" validate:"uuid_required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	Amount    decimal.Decimal `json:"amount"`
}

type CreateOrderRefundRequest struct {
	Items        []RefundItemRequest `json:"items" validate:"required,min=1,dive"`
	RefundMethod model.PaymentMethod `json:"refund_method" validate:"omitempty,oneof=cash card bkash rocket mobile-banking bank"`
	Note         string              `json:"note"`
}

type RefundService interface {
	CreateOrderRefund(billID string, req *CreateOrderRefundRequest, actor Actor) (*model.Order, error)
	GetAllRefunds(purchaseBillID, sellBillID string) ([]model.Refund, error)
	GetRefundByID(id uuid.UUID) (*model.Refund, error)
	GetRefundTotals(purchaseBillID, sellBillID string) (*repository.RefundTotals, error)
}

type refundService struct {
	orderRepo  repository.OrderRepository
	refundRepo repository.RefundRepository
	stockRepo  repository.StockRepository
	db         *gorm.DB
	wsHub      *ws.Hub
}

func NewRefundService(
	orderRepo repository.OrderRepository,
	refundRepo repository.RefundRepository,
	stockRepo repository.StockRepository,
	db *gorm.DB,
	hub *ws.Hub,
) RefundService {
	return &refundService{
		orderRepo:  orderRepo,
		refundRepo: refundRepo,
		stockRepo:  stockRepo,
		db:         db,
		wsHub:      hub,
	}
}

// CreateOrderRefund takes back sold units against a sale bill. Every line is
// validated against the locked order items and the batch cash cap before a
// single row changes, so a bad line rejects the whole batch.
//
// The parent order's Received/Due/PaymentStatus stay as they were; the cash
// handed back is visible through the refund log and TotalRefundAmount.
func (s *refundService) CreateOrderRefund(billID string, req *CreateOrderRefundRequest, actor Actor) (*model.Order, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Newf(apperror.KindInvalidInput,
			"Validation failed: field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag)
	}

	var refundTotal decimal.Decimal

	err := s.db.Transaction(func(tx *gorm.DB) error {
		order, err := s.orderRepo.LockByBillID(tx, billID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Order not found")
		}
		if err != nil {
			return err
		}

		// validation pass: lock every line, check quantities and amounts
		lines := make([]*model.OrderItem, 0, len(req.Items))
		seen := make(map[uuid.UUID]bool, len(req.Items))
		batchAmount := decimal.Zero
		for _, item := range req.Items {
			if seen[item.ProductID] {
				return apperror.InvalidInput("Duplicate product in refund items")
			}
			seen[item.ProductID] = true

			line, err := s.orderRepo.LockItem(tx, billID, item.ProductID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("Product not found in this order")
			}
			if err != nil {
				return err
			}

			if item.Quantity > line.Quantity-line.RefundQuantity {
				return apperror.New(apperror.KindInvalidRefundQuantity, "Invalid refund quantity")
			}
			if item.Amount.IsNegative() {
				return apperror.New(apperror.KindInvalidRefundAmount, "Invalid refund amount")
			}
			lineTotal := line.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			if item.Amount.GreaterThan(lineTotal) {
				return apperror.New(apperror.KindInvalidRefundAmount,
					"Refund amount can not exceed the item total")
			}

			batchAmount = batchAmount.Add(item.Amount)
			lines = append(lines, line)
		}

		refundedSoFar, err := s.refundRepo.SumAmountForSell(tx, billID)
		if err != nil {
			return err
		}
		if err := checkSaleRefundCap(order.Received, refundedSoFar, batchAmount); err != nil {
			return err
		}

		// mutation pass
		refunds := make([]model.Refund, 0, len(req.Items))
		for i, item := range req.Items {
			line := lines[i]

			refund := model.Refund{
				SellBillID:   &order.BillID,
				ProductID:    item.ProductID,
				Unit:         line.Unit,
				Price:        line.Price,
				Quantity:     item.Quantity,
				Total:        line.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
				Amount:       item.Amount,
				RefundMethod: paymentMethodOrCash(req.RefundMethod),
				Note:         req.Note,
			}
			refund.CreatedBy = actor.Name
			refund.UpdatedBy = actor.Name
			refunds = append(refunds, refund)

			line.RefundQuantity += item.Quantity
			if line.RefundQuantity == line.Quantity {
				line.OrderStatus = model.OrderStatusFullRefund
			} else {
				line.OrderStatus = model.OrderStatusPartialRefund
			}
			line.UpdatedBy = actor.Name
			if err := s.orderRepo.SaveItem(tx, line); err != nil {
				return err
			}

			if _, err := s.stockRepo.IncreaseForSaleRefund(tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		refundTotal = batchAmount
		return s.refundRepo.CreateBatch(tx, refunds)
	})
	if err != nil {
		return nil, err
	}

	go s.wsHub.Publish(ws.EventRefund, "order_refunded", map[string]interface{}{
		"billid":        billID,
		"items":         len(req.Items),
		"refund_amount": refundTotal,
		"user":          actor.Name,
	})

	return s.orderRepo.FindByBillID(billID)
}

func (s *refundService) GetAllRefunds(purchaseBillID, sellBillID string) ([]model.Refund, error) {
	return s.refundRepo.FindAll(purchaseBillID, sellBillID)
}

func (s *refundService) GetRefundByID(id uuid.UUID) (*model.Refund, error) {
	refund, err := s.refundRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Refund not found")
	}
	if err != nil {
		return nil, err
	}
	return refund, nil
}

func (s *refundService) GetRefundTotals(purchaseBillID, sellBillID string) (*repository.RefundTotals, error) {
	return s.refundRepo.Totals(purchaseBillID, sellBillID)
}
