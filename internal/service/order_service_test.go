package service

import (
	"testing"

	"go-pharma-pos/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOrderSubtotal(t *testing.T) {
	subtotal, err := orderSubtotal([]OrderItemRequest{
		{ProductID: uuid.New(), Quantity: 2, Price: dec("50")},
		{ProductID: uuid.New(), Quantity: 3, Price: dec("10.50")},
	})
	assert.NoError(t, err)
	assertDecimal(t, "131.50", subtotal)
}

// A zero-price line is a valid complimentary item and must not be rejected.
func TestOrderSubtotal_ZeroPriceLine(t *testing.T) {
	subtotal, err := orderSubtotal([]OrderItemRequest{
		{ProductID: uuid.New(), Quantity: 1, Price: dec("100")},
		{ProductID: uuid.New(), Quantity: 2, Price: dec("0")},
	})
	assert.NoError(t, err)
	assertDecimal(t, "100", subtotal)
}

func TestOrderSubtotal_NegativePrice(t *testing.T) {
	_, err := orderSubtotal([]OrderItemRequest{
		{ProductID: uuid.New(), Quantity: 1, Price: dec("-5")},
	})
	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
}

func TestOrderSubtotal_DuplicateProduct(t *testing.T) {
	id := uuid.New()
	_, err := orderSubtotal([]OrderItemRequest{
		{ProductID: id, Quantity: 1, Price: dec("10")},
		{ProductID: id, Quantity: 2, Price: dec("10")},
	})
	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
}
