package service

import (
	"testing"

	"go-pharma-pos/internal/model"
	"go-pharma-pos/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}

func TestComputeOrderAmounts_PercentDrivesAmount(t *testing.T) {
	a, err := computeOrderAmounts(dec("1000"), dec("10"), decimal.Zero, dec("5"), dec("945"))
	require.NoError(t, err)

	assertDecimal(t, "1000", a.Subtotal)
	assertDecimal(t, "100", a.DiscountAmount)
	assertDecimal(t, "10", a.DiscountPercent)
	assertDecimal(t, "45", a.VatAmount)
	assertDecimal(t, "945", a.Total)
	assertDecimal(t, "0", a.Due)
	assert.Equal(t, model.PaymentStatusDiscountPaid, a.PaymentStatus)
}

func TestComputeOrderAmounts_AmountDrivesPercent(t *testing.T) {
	a, err := computeOrderAmounts(dec("1000"), decimal.Zero, dec("100"), decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	assertDecimal(t, "10", a.DiscountPercent)
	assertDecimal(t, "900", a.Total)
	assert.Equal(t, model.PaymentStatusUnpaid, a.PaymentStatus)
	assertDecimal(t, "900", a.Due)
}

func TestComputeOrderAmounts_DiscountExclusivity(t *testing.T) {
	_, err := computeOrderAmounts(dec("1000"), dec("10"), dec("100"), decimal.Zero, decimal.Zero)
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
}

func TestComputeOrderAmounts_DiscountLargerThanSubtotal(t *testing.T) {
	_, err := computeOrderAmounts(dec("1000"), decimal.Zero, dec("1001"), decimal.Zero, decimal.Zero)
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
}

func TestComputeOrderAmounts_ReceivedBounds(t *testing.T) {
	_, err := computeOrderAmounts(dec("1000"), decimal.Zero, decimal.Zero, decimal.Zero, dec("1001"))
	require.Error(t, err)

	_, err = computeOrderAmounts(dec("1000"), decimal.Zero, decimal.Zero, decimal.Zero, dec("-1"))
	require.Error(t, err)
}

func TestComputeOrderAmounts_FullyDiscountedIsFree(t *testing.T) {
	a, err := computeOrderAmounts(dec("500"), dec("100"), decimal.Zero, decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assertDecimal(t, "0", a.Total)
	assert.Equal(t, model.PaymentStatusFree, a.PaymentStatus)
}

func TestComputeOrderAmounts_PlainStatuses(t *testing.T) {
	a, err := computeOrderAmounts(dec("200"), decimal.Zero, decimal.Zero, decimal.Zero, dec("200"))
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusPaid, a.PaymentStatus)

	a, err = computeOrderAmounts(dec("200"), decimal.Zero, decimal.Zero, decimal.Zero, dec("50"))
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusPartialPaid, a.PaymentStatus)
	assertDecimal(t, "150", a.Due)

	a, err = computeOrderAmounts(dec("200"), decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusUnpaid, a.PaymentStatus)
}

func TestComputeOrderAmounts_DiscountedPartialPaid(t *testing.T) {
	a, err := computeOrderAmounts(dec("1000"), decimal.Zero, dec("100"), decimal.Zero, dec("400"))
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusPartialPaid, a.PaymentStatus)
	assertDecimal(t, "500", a.Due)
}

func TestComputeOrderAmounts_DueRounding(t *testing.T) {
	// 3 * 33.33 = 99.99, 10% vat on full subtotal
	a, err := computeOrderAmounts(dec("99.99"), decimal.Zero, decimal.Zero, dec("10"), dec("50"))
	require.NoError(t, err)
	assertDecimal(t, "10.00", a.VatAmount)
	assertDecimal(t, "109.99", a.Total)
	assertDecimal(t, "59.99", a.Due)
}

func TestComputePurchaseCreate(t *testing.T) {
	total, due, status, err := computePurchaseCreate(dec("100"), 10, dec("400"))
	require.NoError(t, err)
	assertDecimal(t, "1000", total)
	assertDecimal(t, "600", due)
	assert.Equal(t, model.PaymentStatusPartialPaid, status)

	_, _, status, err = computePurchaseCreate(dec("100"), 10, decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusUnpaid, status)

	_, _, status, err = computePurchaseCreate(dec("100"), 10, dec("1000"))
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusPaid, status)
}

func TestComputePurchaseCreate_AdvanceOverTotal(t *testing.T) {
	_, _, _, err := computePurchaseCreate(dec("100"), 10, dec("1001"))
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
}

func TestComputeDuePayment(t *testing.T) {
	newDue, status, err := computeDuePayment(dec("600"), dec("600"))
	require.NoError(t, err)
	assertDecimal(t, "0", newDue)
	assert.Equal(t, model.PaymentStatusPaid, status)

	newDue, status, err = computeDuePayment(dec("600"), dec("100"))
	require.NoError(t, err)
	assertDecimal(t, "500", newDue)
	assert.Equal(t, model.PaymentStatusPartialPaid, status)
}

func TestComputeDuePayment_Errors(t *testing.T) {
	_, _, err := computeDuePayment(decimal.Zero, dec("10"))
	require.Error(t, err)
	assert.Equal(t, apperror.KindNoDueAmount, apperror.KindOf(err))

	_, _, err = computeDuePayment(dec("100"), dec("101"))
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))

	_, _, err = computeDuePayment(dec("100"), decimal.Zero)
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
}

// Fully paid bill of 10 units at 100: the first 3-unit refund returns 300,
// a further 2-unit refund returns only the incremental 200.
func TestComputePurchaseRefund_Reconciliation(t *testing.T) {
	first, err := computePurchaseRefund(dec("100"), 10, 0, 3, dec("1000"), decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, 3, first.RefundQuantity)
	assertDecimal(t, "700", first.Total)
	assertDecimal(t, "0", first.Due)
	assertDecimal(t, "300", first.CashAmount)
	assert.Equal(t, model.PaymentStatusPartialRefund, first.PaymentStatus)

	second, err := computePurchaseRefund(dec("100"), 10, 3, 2, dec("1000"), dec("300"))
	require.NoError(t, err)
	assert.Equal(t, 5, second.RefundQuantity)
	assertDecimal(t, "500", second.Total)
	assertDecimal(t, "200", second.CashAmount)
}

// Partially paid bill: shrinking the total first eats into the due, cash
// only flows once the total dips below the advance.
func TestComputePurchaseRefund_DueAbsorbsFirst(t *testing.T) {
	res, err := computePurchaseRefund(dec("100"), 10, 0, 2, dec("400"), decimal.Zero)
	require.NoError(t, err)
	assertDecimal(t, "800", res.Total)
	assertDecimal(t, "400", res.Due)
	assertDecimal(t, "0", res.CashAmount)

	res, err = computePurchaseRefund(dec("100"), 10, 2, 5, dec("400"), decimal.Zero)
	require.NoError(t, err)
	assertDecimal(t, "300", res.Total)
	assertDecimal(t, "0", res.Due)
	assertDecimal(t, "100", res.CashAmount)
}

func TestComputePurchaseRefund_FullRefund(t *testing.T) {
	res, err := computePurchaseRefund(dec("100"), 10, 5, 5, dec("1000"), dec("500"))
	require.NoError(t, err)
	assert.Equal(t, 10, res.RefundQuantity)
	assertDecimal(t, "0", res.Total)
	assertDecimal(t, "500", res.CashAmount)
	assert.Equal(t, model.PaymentStatusFullRefund, res.PaymentStatus)
}

func TestComputePurchaseRefund_InvalidQuantity(t *testing.T) {
	_, err := computePurchaseRefund(dec("100"), 10, 8, 3, dec("1000"), decimal.Zero)
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidRefundQuantity, apperror.KindOf(err))

	_, err = computePurchaseRefund(dec("100"), 10, 0, 0, dec("1000"), decimal.Zero)
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidRefundQuantity, apperror.KindOf(err))
}

// 600 received with 200 already refunded leaves 400 refundable: a 500 batch
// is rejected, a 400 batch passes.
func TestCheckSaleRefundCap(t *testing.T) {
	err := checkSaleRefundCap(dec("600"), dec("200"), dec("500"))
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidRefundAmount, apperror.KindOf(err))

	assert.NoError(t, checkSaleRefundCap(dec("600"), dec("200"), dec("400")))
	assert.NoError(t, checkSaleRefundCap(dec("600"), decimal.Zero, dec("600")))
}

func TestRound2Stability(t *testing.T) {
	assert.Equal(t, "945.00", round2(dec("945")).StringFixed(2))
	assert.Equal(t, "10.35", round2(dec("10.345")).StringFixed(2))
	assert.True(t, round2(dec("945.00")).Equal(decimal.NewFromInt(945)))
}
