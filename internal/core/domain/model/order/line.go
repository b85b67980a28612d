package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Line is a single order line: a product code, a quantity, and the unit
// price agreed at ordering time. A line is valid when Quantity > 0 and
// UnitPrice >= 0.
type Line struct {
	ProductCode string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Total returns the line total: Quantity × UnitPrice.
func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Validate checks the line against the ordering invariants.
func (l Line) Validate() error {
	if l.Quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", l.Quantity))
	}
	if l.UnitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%s is negative", l.UnitPrice))
	}
	return nil
}

// validateLines checks a whole line sequence: it must be non-empty and every
// line must be individually valid.
func validateLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("at least one order line is required")
	}
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// linesTotal sums the line totals of a line sequence.
func linesTotal(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Total())
	}
	return total
}
