package draft

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Quantity is a parsed quantity input. It either holds an integer or is NaN,
// the result of text that does not start with a number. The zero value is NaN.
type Quantity struct {
	value int
	valid bool
}

// NewQuantity returns a numeric quantity. Zero and negative values are
// representable; they are rejected later by order validation.
func NewQuantity(n int) Quantity {
	return Quantity{value: n, valid: true}
}

// NaN returns the not-a-number quantity.
func NaN() Quantity {
	return Quantity{}
}

// ParseQuantity reads the leading integer of text: leading whitespace is
// skipped, an optional sign is accepted, and parsing stops at the first
// non-digit, so "3 boxes" is 3 and "2.7" is 2. Text without leading digits
// yields NaN. Values beyond the int range saturate.
func ParseQuantity(text string) Quantity {
	s := strings.TrimLeftFunc(text, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return NaN()
	}

	n, err := strconv.ParseInt(s[:end], 10, 0)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return NaN()
	}
	return NewQuantity(int(n))
}

// Int returns the numeric value and whether the quantity is a number.
func (q Quantity) Int() (int, bool) {
	return q.value, q.valid
}

// IsNaN reports whether the quantity is not a number.
func (q Quantity) IsNaN() bool {
	return !q.valid
}

// IsPositive reports whether the quantity is a number greater than zero.
// NaN is never positive.
func (q Quantity) IsPositive() bool {
	return q.valid && q.value > 0
}

// String renders the quantity for an input field; NaN renders as "".
func (q Quantity) String() string {
	if !q.valid {
		return ""
	}
	return strconv.Itoa(q.value)
}
