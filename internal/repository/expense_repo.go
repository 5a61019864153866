package repository

import (
	"time"

	"go-pharma-pos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ExpenseRepository interface {
	Create(expense *model.Expense) error
	FindAll(search string) ([]model.Expense, error)
	FindByID(id uuid.UUID) (*model.Expense, error)
	Update(expense *model.Expense) error
	Delete(id uuid.UUID, deletedBy string) error
	SumBetween(startDate, endDate time.Time) (decimal.Decimal, error)
}

type expenseRepo struct {
	db *gorm.DB
}

func NewExpenseRepo(db *gorm.DB) ExpenseRepository {
	return &expenseRepo{db}
}

func (r *expenseRepo) Create(expense *model.Expense) error {
	return r.db.Create(expense).Error
}

func (r *expenseRepo) FindAll(search string) ([]model.Expense, error) {
	var expenses []model.Expense
	q := r.db.Order("expense_date DESC")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("purpose ILIKE ? OR description ILIKE ?", like, like)
	}
	err := q.Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) FindByID(id uuid.UUID) (*model.Expense, error) {
	var expense model.Expense
	if err := r.db.First(&expense, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepo) Update(expense *model.Expense) error {
	return r.db.Save(expense).Error
}

func (r *expenseRepo) Delete(id uuid.UUID, deletedBy string) error {
	if err := r.db.Model(&model.Expense{}).Where("id = ?", id).Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return r.db.Delete(&model.Expense{}, "id = ?", id).Error
}

func (r *expenseRepo) SumBetween(startDate, endDate time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.Model(&model.Expense{}).
		Where("expense_date BETWEEN ? AND ?", startDate, endDate).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}
