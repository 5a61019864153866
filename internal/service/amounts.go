package service

import (
	"go-pharma-pos/internal/model"
	"go-pharma-pos/pkg/apperror"

	"github.com/shopspring/decimal"
)

// The bill arithmetic lives here as pure functions so the workflows stay
// thin and the money rules stay testable without a database.

var hundred = decimal.NewFromInt(100)

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// orderAmounts is everything derived at order creation time
type orderAmounts struct {
	Subtotal        decimal.Decimal
	DiscountPercent decimal.Decimal
	DiscountAmount  decimal.Decimal
	VatPercent      decimal.Decimal
	VatAmount       decimal.Decimal
	Total           decimal.Decimal
	Due             decimal.Decimal
	PaymentStatus   model.PaymentStatus
}

// computeOrderAmounts derives discount, VAT, total, due and payment status
// for a new order. Discount amount and percent are mutually exclusive inputs;
// whichever is given drives the other. VAT applies to the discounted
// subtotal. Received must stay within [0, total].
func computeOrderAmounts(subtotal, discountPercent, discountAmount, vatPercent, received decimal.Decimal) (*orderAmounts, error) {
	if discountAmount.IsPositive() && discountPercent.IsPositive() {
		return nil, apperror.InvalidInput("Discount amount and discount percentage are not acceptable together")
	}
	if discountAmount.IsNegative() || discountPercent.IsNegative() || vatPercent.IsNegative() {
		return nil, apperror.InvalidInput("Discount and VAT values can not be negative")
	}

	a := &orderAmounts{
		Subtotal:        subtotal,
		DiscountPercent: discountPercent,
		DiscountAmount:  discountAmount,
		VatPercent:      vatPercent,
	}

	switch {
	case discountAmount.IsPositive():
		if discountAmount.GreaterThan(subtotal) {
			return nil, apperror.InvalidInput("Discount amount can not be larger than subtotal")
		}
		a.DiscountPercent = round2(discountAmount.Div(subtotal).Mul(hundred))
	case discountPercent.IsPositive():
		a.DiscountAmount = round2(discountPercent.Div(hundred).Mul(subtotal))
	}

	discounted := subtotal.Sub(a.DiscountAmount)
	a.VatAmount = round2(vatPercent.Div(hundred).Mul(discounted))
	a.Total = discounted.Add(a.VatAmount)

	if received.GreaterThan(a.Total) || received.IsNegative() {
		return nil, apperror.InvalidInput("Invalid received amount")
	}

	hadDiscountInput := discountAmount.IsPositive() || discountPercent.IsPositive()
	a.PaymentStatus = deriveOrderPaymentStatus(hadDiscountInput, a.DiscountAmount, a.Total, received)
	a.Due = round2(a.Total.Sub(received))

	return a, nil
}

// deriveOrderPaymentStatus is the creation-time state machine. A fully
// discounted bill is "free"; a discounted bill settled in full is
// "discount-paid" rather than plain "paid".
func deriveOrderPaymentStatus(hadDiscountInput bool, discountAmount, total, received decimal.Decimal) model.PaymentStatus {
	if hadDiscountInput && total.IsZero() {
		return model.PaymentStatusFree
	}

	if discountAmount.IsPositive() {
		switch {
		case received.Equal(total):
			return model.PaymentStatusDiscountPaid
		case received.IsZero():
			return model.PaymentStatusUnpaid
		case received.LessThan(total):
			return model.PaymentStatusPartialPaid
		default:
			return model.PaymentStatusUnpaid
		}
	}

	switch {
	case received.IsZero():
		return model.PaymentStatusUnpaid
	case received.LessThan(total):
		return model.PaymentStatusPartialPaid
	default:
		return model.PaymentStatusPaid
	}
}

// computePurchaseCreate derives total, due and status for a new purchase.
// Advance larger than the bill is rejected.
func computePurchaseCreate(price decimal.Decimal, quantity int, advance decimal.Decimal) (total, due decimal.Decimal, status model.PaymentStatus, err error) {
	total = price.Mul(decimal.NewFromInt(int64(quantity)))
	due = total.Sub(advance)

	if due.IsNegative() {
		return decimal.Zero, decimal.Zero, "", apperror.InvalidInput("Invalid purchase amount")
	}

	switch {
	case advance.IsZero():
		status = model.PaymentStatusUnpaid
	case due.IsZero():
		status = model.PaymentStatusPaid
	default:
		status = model.PaymentStatusPartialPaid
	}

	return total, due, status, nil
}

// computeDuePayment settles part (or all) of an outstanding due. Shared by
// the purchase and order top-up flows.
func computeDuePayment(due, amount decimal.Decimal) (newDue decimal.Decimal, status model.PaymentStatus, err error) {
	if due.IsZero() {
		return decimal.Zero, "", apperror.NoDueAmount("No due amount found")
	}
	if !amount.IsPositive() {
		return decimal.Zero, "", apperror.InvalidInput("Invalid amount")
	}
	if amount.GreaterThan(due) {
		return decimal.Zero, "", apperror.Newf(apperror.KindInvalidInput, "Invalid amount. Maximum amount is %s", due.StringFixed(2))
	}

	newDue = round2(due.Sub(amount))
	if newDue.IsPositive() {
		status = model.PaymentStatusPartialPaid
	} else {
		status = model.PaymentStatusPaid
	}
	return newDue, status, nil
}

// purchaseRefundResult is the derived state after returning units to a supplier
type purchaseRefundResult struct {
	RefundQuantity int             // cumulative
	Total          decimal.Decimal // price * remaining quantity
	Due            decimal.Decimal // clamped at zero for storage
	PaymentStatus  model.PaymentStatus
	CashAmount     decimal.Decimal // actual cash returned this refund
}

// checkSaleRefundCap enforces the batch cash ceiling on sale refunds: the
// cash going back, plus everything already refunded, may not exceed what the
// customer actually paid.
func checkSaleRefundCap(received, refundedSoFar, batchAmount decimal.Decimal) error {
	refundable := received.Sub(refundedSoFar)
	if batchAmount.GreaterThan(refundable) {
		return apperror.Newf(apperror.KindInvalidRefundAmount,
			"Invalid refund amount. Maximum refundable amount is %s", refundable.StringFixed(2))
	}
	return nil
}

// computePurchaseRefund recomputes the purchase after refunding quantity
// units. Cash comes back only when the shrunken total dips below what was
// already advanced, and then only the part not covered by earlier refunds —
// so the running sum of refund amounts never exceeds advance minus total.
func computePurchaseRefund(price decimal.Decimal, originalQuantity, prevRefundQuantity, quantity int, advance, prevRefundAmount decimal.Decimal) (*purchaseRefundResult, error) {
	if quantity <= 0 {
		return nil, apperror.New(apperror.KindInvalidRefundQuantity, "Invalid refund quantity")
	}
	if quantity > originalQuantity-prevRefundQuantity {
		return nil, apperror.New(apperror.KindInvalidRefundQuantity, "Invalid refund quantity")
	}

	res := &purchaseRefundResult{
		RefundQuantity: prevRefundQuantity + quantity,
	}
	res.Total = price.Mul(decimal.NewFromInt(int64(originalQuantity - res.RefundQuantity)))

	newDue := res.Total.Sub(advance)
	if newDue.IsNegative() {
		res.Due = decimal.Zero
		res.CashAmount = newDue.Abs().Sub(prevRefundAmount)
	} else {
		res.Due = newDue
		res.CashAmount = decimal.Zero
	}

	if res.RefundQuantity == originalQuantity {
		res.PaymentStatus = model.PaymentStatusFullRefund
	} else {
		res.PaymentStatus = model.PaymentStatusPartialRefund
	}

	return res, nil
}
