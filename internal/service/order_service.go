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

type OrderItemRequest struct {
	ProductID uuid.UUID       `json:"product_id" validate:"uuid_required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	Price     decimal.Decimal `json:"price"`
}

type CreateOrderRequest struct {
	CUSID           *string             `json:"cusid"`
	Items           []OrderItemRequest  `json:"items" validate:"required,min=1,dive"`
	DiscountPercent decimal.Decimal     `json:"discount_percent"`
	DiscountAmount  decimal.Decimal     `json:"discount_amount"`
	VatPercent      decimal.Decimal     `json:"vat_percent"`
	Received        decimal.Decimal     `json:"received"`
	PaymentMethod   model.PaymentMethod `json:"payment_method" validate:"omitempty,oneof=cash card bkash rocket mobile-banking bank"`
	Note            string              `json:"note"`
}

type OrderService interface {
	CreateOrder(req *CreateOrderRequest, actor Actor) (*model.Order, error)
	DuePayment(billID string, req *DuePaymentRequest, actor Actor) (*model.Order, error)
	GetAllOrders(search string) ([]model.Order, error)
	GetOrderByBillID(billID string) (*model.Order, error)
	GetOrderItems(billID string) ([]model.OrderItem, error)
}

type orderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	stockRepo    repository.StockRepository
	paymentRepo  repository.PaymentRepository
	sequenceRepo repository.SequenceRepository
	db           *gorm.DB
	wsHub        *ws.Hub
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	paymentRepo repository.PaymentRepository,
	sequenceRepo repository.SequenceRepository,
	db *gorm.DB,
	hub *ws.Hub,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		stockRepo:    stockRepo,
		paymentRepo:  paymentRepo,
		sequenceRepo: sequenceRepo,
		db:           db,
		wsHub:        hub,
	}
}

// orderSubtotal validates the cart lines and sums price times quantity.
// Zero-price lines are accepted (complimentary items); negative prices and
// repeated products are not.
func orderSubtotal(items []OrderItemRequest) (decimal.Decimal, error) {
	seen := make(map[uuid.UUID]bool, len(items))
	subtotal := decimal.Zero
	for _, item := range items {
		if seen[item.ProductID] {
			return decimal.Zero, apperror.InvalidInput("Duplicate product in order items")
		}
		seen[item.ProductID] = true
		if item.Price.IsNegative() {
			return decimal.Zero, apperror.InvalidInput("Invalid item price")
		}
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return subtotal, nil
}

// CreateOrder records a sale. Every item's stock row is locked and checked
// before anything is written, so a bill either commits whole or leaves no
// trace: no order, no stock change, no payment.
func (s *orderService) CreateOrder(req *CreateOrderRequest, actor Actor) (*model.Order, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Newf(apperror.KindInvalidInput,
			"Validation failed: field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag)
	}

	subtotal, err := orderSubtotal(req.Items)
	if err != nil {
		return nil, err
	}

	amounts, err := computeOrderAmounts(subtotal, req.DiscountPercent, req.DiscountAmount, req.VatPercent, req.Received)
	if err != nil {
		return nil, err
	}

	if req.CUSID != nil && *req.CUSID != "" {
		if _, err := s.customerRepo.FindByCUSID(*req.CUSID); errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Customer not found")
		} else if err != nil {
			return nil, err
		}
	}

	var billID string
	var lowStocks []model.Stock

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// lock and check every stock row before touching anything
		for _, item := range req.Items {
			stock, err := s.stockRepo.LockByProductID(tx, item.ProductID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("Product not found in stock")
			}
			if err != nil {
				return err
			}
			if stock.Quantity < item.Quantity {
				return apperror.Newf(apperror.KindInsufficientStock,
					"Insufficient stock for %s", stock.ProductName)
			}
		}

		billID, err = s.sequenceRepo.Next(tx, repository.SeqOrder)
		if err != nil {
			return err
		}

		order := &model.Order{
			BillID:          billID,
			Subtotal:        amounts.Subtotal,
			DiscountPercent: amounts.DiscountPercent,
			DiscountAmount:  amounts.DiscountAmount,
			VatPercent:      amounts.VatPercent,
			VatAmount:       amounts.VatAmount,
			Total:           amounts.Total,
			Received:        req.Received,
			Due:             amounts.Due,
			PaymentStatus:   amounts.PaymentStatus,
			Note:            req.Note,
		}
		if req.CUSID != nil && *req.CUSID != "" {
			order.CUSID = req.CUSID
		}
		order.CreatedBy = actor.Name
		order.UpdatedBy = actor.Name
		if err := s.orderRepo.Create(tx, order); err != nil {
			return err
		}

		items := make([]model.OrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			stock, err := s.stockRepo.DecreaseForSale(tx, item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if stock.NeedsReorder() {
				lowStocks = append(lowStocks, *stock)
			}

			product, err := s.productRepo.FindByID(item.ProductID)
			if err != nil {
				return err
			}

			line := model.OrderItem{
				BillID:      billID,
				ProductID:   item.ProductID,
				Unit:        product.Unit,
				Price:       item.Price,
				Quantity:    item.Quantity,
				OrderStatus: model.OrderStatusDelivered,
			}
			line.CreatedBy = actor.Name
			line.UpdatedBy = actor.Name
			items = append(items, line)
		}
		if err := s.orderRepo.InsertItems(tx, items); err != nil {
			return err
		}

		if req.Received.IsPositive() {
			payment := &model.Payment{
				SellBillID:      &order.BillID,
				Amount:          req.Received,
				DiscountAmount:  amounts.DiscountAmount,
				DiscountPercent: amounts.DiscountPercent,
				PaymentMethod:   paymentMethodOrCash(req.PaymentMethod),
				PaymentType:     model.PaymentTypeNew,
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

	go func() {
		s.wsHub.Publish(ws.EventSale, "order_created", map[string]interface{}{
			"billid": billID,
			"items":  len(req.Items),
			"total":  amounts.Total,
			"user":   actor.Name,
		})
		for _, stock := range lowStocks {
			s.wsHub.Publish(ws.EventStockAlert, "low_stock", map[string]interface{}{
				"product_id":     stock.ProductID,
				"product_name":   stock.ProductName,
				"quantity":       stock.Quantity,
				"alert_quantity": stock.AlertQuantity,
			})
		}
	}()

	return s.orderRepo.FindByBillID(billID)
}

// DuePayment settles part of the outstanding due on a sale
func (s *orderService) DuePayment(billID string, req *DuePaymentRequest, actor Actor) (*model.Order, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		order, err := s.orderRepo.LockByBillID(tx, billID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Order not found")
		}
		if err != nil {
			return err
		}

		newDue, status, err := computeDuePayment(order.Due, req.Amount)
		if err != nil {
			return err
		}

		order.Received = order.Received.Add(req.Amount)
		order.Due = newDue
		order.PaymentStatus = status
		order.UpdatedBy = actor.Name
		if err := s.orderRepo.Update(tx, order); err != nil {
			return err
		}

		payment := &model.Payment{
			SellBillID:    &order.BillID,
			Amount:        req.Amount,
			PaymentMethod: paymentMethodOrCash(req.PaymentMethod),
			PaymentType:   model.PaymentTypeDue,
		}
		payment.CreatedBy = actor.Name
		payment.UpdatedBy = actor.Name
		return s.paymentRepo.Create(tx, payment)
	})
	if err != nil {
		return nil, err
	}

	return s.orderRepo.FindByBillID(billID)
}

func (s *orderService) GetAllOrders(search string) ([]model.Order, error) {
	return s.orderRepo.FindAll(search)
}

func (s *orderService) GetOrderByBillID(billID string) (*model.Order, error) {
	order, err := s.orderRepo.FindByBillID(billID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Order not found")
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetOrderItems(billID string) ([]model.OrderItem, error) {
	return s.orderRepo.FindItemsByBillID(billID)
}
