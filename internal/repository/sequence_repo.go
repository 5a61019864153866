package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Sequence scopes, one counter per scope per calendar year
const (
	SeqProduct  = "product"
	SeqPurchase = "purchase"
	SeqOrder    = "order"
	SeqCustomer = "customer"
	SeqSupplier = "supplier"
)

type SequenceRepository interface {
	Next(tx *gorm.DB, scope string) (string, error)
}

type sequenceRepo struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSequenceRepo(db *gorm.DB) SequenceRepository {
	return &sequenceRepo{db: db, now: time.Now}
}

// Next allocates the next business id for scope within the current year.
// The upsert-increment is a single statement, so two concurrent workflows can
// never read the same counter value. Runs on the caller's tx so a rolled-back
// workflow does not leave a gap.
func (r *sequenceRepo) Next(tx *gorm.DB, scope string) (string, error) {
	if tx == nil {
		tx = r.db
	}

	year := r.now().Year()

	var value int64
	err := tx.Raw(`
		INSERT INTO id_sequences (scope, year, value)
		VALUES (?, ?, 1)
		ON CONFLICT (scope, year)
		DO UPDATE SET value = id_sequences.value + 1
		RETURNING value
	`, scope, year).Scan(&value).Error
	if err != nil {
		return "", err
	}

	return FormatSequentialID(year, value), nil
}

// FormatSequentialID renders a year-scoped counter as the fixed-width
// business id, e.g. year 2025 value 1 -> "25000001".
func FormatSequentialID(year int, value int64) string {
	return fmt.Sprintf("%02d%06d", year%100, value)
}
