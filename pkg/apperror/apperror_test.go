package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindInternal, KindOf(errors.New("db exploded")))
	assert.Equal(t, KindInternal, KindOf(nil))
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("workflow failed: %w", InsufficientStock("short"))
	assert.Equal(t, KindInsufficientStock, KindOf(err))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, 404, HTTPStatus(NotFound("x")))
	assert.Equal(t, 400, HTTPStatus(InvalidInput("x")))
	assert.Equal(t, 400, HTTPStatus(New(KindInvalidRefundQuantity, "x")))
	assert.Equal(t, 400, HTTPStatus(New(KindInvalidRefundAmount, "x")))
	assert.Equal(t, 400, HTTPStatus(NoDueAmount("x")))
	assert.Equal(t, 409, HTTPStatus(InsufficientStock("x")))
	assert.Equal(t, 409, HTTPStatus(Conflict("x")))
	assert.Equal(t, 401, HTTPStatus(Unauthenticated("x")))
	assert.Equal(t, 403, HTTPStatus(Unauthorized("x")))
	assert.Equal(t, 500, HTTPStatus(errors.New("x")))
}

func TestNewf(t *testing.T) {
	err := Newf(KindInsufficientStock, "Insufficient stock for %s", "Paracetamol")
	assert.Equal(t, "Insufficient stock for Paracetamol", err.Error())
	assert.Equal(t, KindInsufficientStock, err.Kind)
}
