package service

import (
	"errors"

	"go-pharma-pos/internal/model"
	"go-pharma-pos/internal/repository"
	"go-pharma-pos/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentService is read-only: payments are written exclusively by the
// purchase and order workflows.
type PaymentService interface {
	GetAllPayments(purchaseBillID, sellBillID string) ([]model.Payment, error)
	GetPaymentByID(id uuid.UUID) (*model.Payment, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
}

func NewPaymentService(paymentRepo repository.PaymentRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo}
}

func (s *paymentService) GetAllPayments(purchaseBillID, sellBillID string) ([]model.Payment, error) {
	return s.paymentRepo.FindAll(purchaseBillID, sellBillID)
}

func (s *paymentService) GetPaymentByID(id uuid.UUID) (*model.Payment, error) {
	payment, err := s.paymentRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Payment not found")
	}
	if err != nil {
		return nil, err
	}
	return payment, nil
}
