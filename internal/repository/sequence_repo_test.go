package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSequentialID(t *testing.T) {
	assert.Equal(t, "25000001", FormatSequentialID(2025, 1))
	assert.Equal(t, "25000002", FormatSequentialID(2025, 2))
	assert.Equal(t, "26000001", FormatSequentialID(2026, 1))
}

func TestFormatSequentialID_CounterWidth(t *testing.T) {
	assert.Equal(t, "25000099", FormatSequentialID(2025, 99))
	assert.Equal(t, "25999999", FormatSequentialID(2025, 999999))
	// counter overflowing six digits widens rather than truncates
	assert.Equal(t, "251000000", FormatSequentialID(2025, 1000000))
}

func TestFormatSequentialID_CenturyWraps(t *testing.T) {
	assert.Equal(t, "00000001", FormatSequentialID(2100, 1))
	assert.Equal(t, "05000007", FormatSequentialID(2105, 7))
}
