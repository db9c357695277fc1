// Package billing computes the user-borne share of an order after the
// company subsidy is applied.
package billing

import "github.com/shopspring/decimal"

//go:generate mockgen -source=subsidy.go -destination=mock/calculator_mock.go -package=mock
type Calculator interface {
	// UserPayment returns the amount the user pays for an order with the
	// given total, under the company's subsidy rate (0..1). The result is
	// rounded to whole yen and clamped to [0, total].
	UserPayment(total decimal.Decimal, subsidyRate decimal.Decimal) decimal.Decimal
}

type subsidyCalculator struct{}

func NewCalculator() Calculator {
	return &subsidyCalculator{}
}

func (subsidyCalculator) UserPayment(total decimal.Decimal, subsidyRate decimal.Decimal) decimal.Decimal {
	if total.IsNegative() {
		return decimal.Zero
	}

	rate := subsidyRate
	if rate.IsNegative() {
		rate = decimal.Zero
	}
	if rate.GreaterThan(decimal.NewFromInt(1)) {
		rate = decimal.NewFromInt(1)
	}

	payment := total.Sub(total.Mul(rate)).Round(0)
	if payment.IsNegative() {
		return decimal.Zero
	}
	if payment.GreaterThan(total) {
		return total
	}
	return payment
}
