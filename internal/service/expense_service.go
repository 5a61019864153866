package service

import (
	"errors"
	"time"

	"go-pharma-pos/internal/model"
	"go-pharma-pos/internal/repository"
	"go-pharma-pos/pkg/apperror"
	"go-pharma-pos/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ExpenseRequest struct {
	Purpose     string          `json:"purpose" validate:"required"`
	ExpenseDate time.Time       `json:"expense_date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type ExpenseService interface {
	CreateExpense(req *ExpenseRequest, actor Actor) (*model.Expense, error)
	GetAllExpenses(search string) ([]model.Expense, error)
	GetExpenseByID(id uuid.UUID) (*model.Expense, error)
	UpdateExpense(id uuid.UUID, req *ExpenseRequest, actor Actor) (*model.Expense, error)
	DeleteExpense(id uuid.UUID, actor Actor) error
}

type expenseService struct {
	expenseRepo repository.ExpenseRepository
}

func NewExpenseService(expenseRepo repository.ExpenseRepository) ExpenseService {
	return &expenseService{expenseRepo: expenseRepo}
}

func validateExpense(req *ExpenseRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return apperror.Newf(apperror.KindInvalidInput,
			"Validation failed: field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag)
	}
	if !req.Amount.IsPositive() {
		return apperror.InvalidInput("Invalid expense amount")
	}
	return nil
}

func (s *expenseService) CreateExpense(req *ExpenseRequest, actor Actor) (*model.Expense, error) {
	if err := validateExpense(req); err != nil {
		return nil, err
	}

	expense := &model.Expense{
		Purpose:     req.Purpose,
		ExpenseDate: req.ExpenseDate,
		Description: req.Description,
		Amount:      req.Amount,
	}
	if expense.ExpenseDate.IsZero() {
		expense.ExpenseDate = time.Now()
	}
	expense.CreatedBy = actor.Name
	expense.UpdatedBy = actor.Name

	if err := s.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) GetAllExpenses(search string) ([]model.Expense, error) {
	return s.expenseRepo.FindAll(search)
}

func (s *expenseService) GetExpenseByID(id uuid.UUID) (*model.Expense, error) {
	expense, err := s.expenseRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Expense not found")
	}
	if err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) UpdateExpense(id uuid.UUID, req *ExpenseRequest, actor Actor) (*model.Expense, error) {
	if err := validateExpense(req); err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Expense not found")
	}
	if err != nil {
		return nil, err
	}

	expense.Purpose = req.Purpose
	if !req.ExpenseDate.IsZero() {
		expense.ExpenseDate = req.ExpenseDate
	}
	expense.Description = req.Description
	expense.Amount = req.Amount
	expense.UpdatedBy = actor.Name

	if err := s.expenseRepo.Update(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) DeleteExpense(id uuid.UUID, actor Actor) error {
	if _, err := s.expenseRepo.FindByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("Expense not found")
	} else if err != nil {
		return err
	}
	return s.expenseRepo.Delete(id, actor.Name)
}
