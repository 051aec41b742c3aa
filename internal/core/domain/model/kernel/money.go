package kernel

import (
	"fmt"

	"bakery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative amount in the bakery's single currency.
// The zero value is a valid zero amount.
//
// Arithmetic is exact (github.com/shopspring/decimal); conversion to float64
// only happens at the JSON edge of the backend, which speaks numbers.
type Money struct {
	amount decimal.Decimal
}

// NewMoney validates that amount is not negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses a decimal literal such as "2.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
	}
	return NewMoney(d)
}

// MoneyFromFloat converts a float64 as received from JSON numbers.
func MoneyFromFloat(f float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(f))
}

// Decimal returns the exact amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as the nearest float64.
func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

// Times multiplies the amount by a quantity.
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Add returns the sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// IsEqual compares amounts numerically, so 12.5 equals 12.50.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String formats the amount with two decimals, e.g. "12.50".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
