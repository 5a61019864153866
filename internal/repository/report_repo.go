package repository

import (
	"time"

	"go-pharma-pos/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StockMovementData is one day of units purchased in vs sold out, for charts
type StockMovementData struct {
	Date     string `json:"date"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

// DashboardStats is the overview card set
type DashboardStats struct {
	TotalProducts  int64           `json:"total_products"`
	LowStockCount  int64           `json:"low_stock_count"`
	TotalValuation decimal.Decimal `json:"total_valuation"`
}

type ReportRepository interface {
	GetDashboardStats() (*DashboardStats, error)
	GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error)
	GetFinancialSummary(startDate, endDate time.Time) (salesReceived, purchasePaid decimal.Decimal, err error)
}

type reportRepo struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) ReportRepository {
	return &reportRepo{db}
}

func (r *reportRepo) GetDashboardStats() (*DashboardStats, error) {
	var stats DashboardStats

	if err := r.db.Model(&model.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.Stock{}).
		Where("alert_quantity > 0 AND quantity <= alert_quantity").
		Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}

	// Valuation at current sell price
	err := r.db.Model(&model.Stock{}).
		Joins("JOIN products ON products.id = stocks.product_id").
		Select("COALESCE(SUM(stocks.quantity * products.price), 0)").
		Scan(&stats.TotalValuation).Error
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// GetStockMovement aggregates purchased units (inbound) against sold units
// (outbound) per day for the charting endpoint
func (r *reportRepo) GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error) {
	var results []StockMovementData

	rows, err := r.db.Raw(`
		SELECT d.date,
		       COALESCE(SUM(d.inbound), 0)  AS inbound,
		       COALESCE(SUM(d.outbound), 0) AS outbound
		FROM (
			SELECT DATE(created_at) AS date, quantity AS inbound, 0 AS outbound
			FROM purchases
			WHERE created_at BETWEEN ? AND ? AND deleted_at IS NULL
			UNION ALL
			SELECT DATE(created_at) AS date, 0 AS inbound, quantity AS outbound
			FROM order_items
			WHERE created_at BETWEEN ? AND ? AND deleted_at IS NULL
		) d
		GROUP BY d.date
		ORDER BY d.date ASC
	`, startDate, endDate, startDate, endDate).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data StockMovementData
		if err := rows.Scan(&data.Date, &data.Inbound, &data.Outbound); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, nil
}

// GetFinancialSummary totals the payment log per side over a date range:
// money received from sales and money paid out to suppliers
func (r *reportRepo) GetFinancialSummary(startDate, endDate time.Time) (decimal.Decimal, decimal.Decimal, error) {
	var salesReceived decimal.Decimal
	var purchasePaid decimal.Decimal

	err := r.db.Model(&model.Payment{}).
		Where("sell_billid IS NOT NULL AND created_at BETWEEN ? AND ?", startDate, endDate).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&salesReceived).Error
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	err = r.db.Model(&model.Payment{}).
		Where("purchase_billid IS NOT NULL AND created_at BETWEEN ? AND ?", startDate, endDate).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&purchasePaid).Error
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return salesReceived, purchasePaid, nil
}
