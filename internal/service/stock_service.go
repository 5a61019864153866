package service

import (
	"errors"

	"go-pharma-pos/internal/model"
	"go-pharma-pos/internal/repository"
	"go-pharma-pos/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UpdateStockRequest struct {
	AlertQuantity *int          `json:"alert_quantity"`
	Status        *model.Status `json:"status" validate:"omitempty,oneof=active deactive"`
}

// StockService is read-mostly: quantities move only through the purchase,
// order and refund workflows. Only the alert threshold and status are
// editable here.
type StockService interface {
	GetAllStocks() ([]model.Stock, error)
	GetStockByID(id uuid.UUID) (*model.Stock, error)
	GetStockByProductID(productID uuid.UUID) (*model.Stock, error)
	GetLowStocks() ([]model.Stock, error)
	UpdateStock(id uuid.UUID, req *UpdateStockRequest, actor Actor) (*model.Stock, error)
}

type stockService struct {
	stockRepo repository.StockRepository
}

func NewStockService(stockRepo repository.StockRepository) StockService {
	return &stockService{stockRepo: stockRepo}
}

func (s *stockService) GetAllStocks() ([]model.Stock, error) {
	return s.stockRepo.FindAll()
}

func (s *stockService) GetStockByID(id uuid.UUID) (*model.Stock, error) {
	stock, err := s.stockRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Stock not found")
	}
	if err != nil {
		return nil, err
	}
	return stock, nil
}

func (s *stockService) GetStockByProductID(productID uuid.UUID) (*model.Stock, error) {
	stock, err := s.stockRepo.FindByProductID(productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Stock not found")
	}
	if err != nil {
		return nil, err
	}
	return stock, nil
}

func (s *stockService) GetLowStocks() ([]model.Stock, error) {
	return s.stockRepo.FindLowStock()
}

func (s *stockService) UpdateStock(id uuid.UUID, req *UpdateStockRequest, actor Actor) (*model.Stock, error) {
	stock, err := s.stockRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Stock not found")
	}
	if err != nil {
		return nil, err
	}

	if req.AlertQuantity != nil {
		if *req.AlertQuantity < 0 {
			return nil, apperror.InvalidInput("Alert quantity can not be negative")
		}
		stock.AlertQuantity = *req.AlertQuantity
	}
	if req.Status != nil {
		stock.Status = *req.Status
	}
	stock.UpdatedBy = actor.Name

	if err := s.stockRepo.Update(stock); err != nil {
		return nil, err
	}
	return stock, nil
}
