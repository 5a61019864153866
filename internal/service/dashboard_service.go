package service

import (
	"time"

	"go-pharma-pos/internal/repository"

	"github.com/shopspring/decimal"
)

// FinancialSummary is money in from sales vs money out to suppliers and
// expenses over a date range
type FinancialSummary struct {
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	SalesReceived decimal.Decimal `json:"sales_received"`
	PurchasePaid  decimal.Decimal `json:"purchase_paid"`
	Expenses      decimal.Decimal `json:"expenses"`
	Net           decimal.Decimal `json:"net"`
}

type DashboardService interface {
	GetStats() (*repository.DashboardStats, error)
	GetStockMovement(startDate, endDate time.Time) ([]repository.StockMovementData, error)
	GetFinancialSummary(startDate, endDate time.Time) (*FinancialSummary, error)
}

type dashboardService struct {
	reportRepo  repository.ReportRepository
	expenseRepo repository.ExpenseRepository
}

func NewDashboardService(reportRepo repository.ReportRepository, expenseRepo repository.ExpenseRepository) DashboardService {
	return &dashboardService{reportRepo: reportRepo, expenseRepo: expenseRepo}
}

func (s *dashboardService) GetStats() (*repository.DashboardStats, error) {
	return s.reportRepo.GetDashboardStats()
}

func (s *dashboardService) GetStockMovement(startDate, endDate time.Time) ([]repository.StockMovementData, error) {
	return s.reportRepo.GetStockMovement(startDate, endDate)
}

func (s *dashboardService) GetFinancialSummary(startDate, endDate time.Time) (*FinancialSummary, error) {
	salesReceived, purchasePaid, err := s.reportRepo.GetFinancialSummary(startDate, endDate)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.SumBetween(startDate, endDate)
	if err != nil {
		return nil, err
	}

	return &FinancialSummary{
		StartDate:     startDate,
		EndDate:       endDate,
		SalesReceived: salesReceived,
		PurchasePaid:  purchasePaid,
		Expenses:      expenses,
		Net:           salesReceived.Sub(purchasePaid).Sub(expenses),
	}, nil
}
