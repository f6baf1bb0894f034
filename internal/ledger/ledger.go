// Package ledger computes line item and document totals. It is the only place tax is applied;
// work orders and invoices both derive their amounts from here.
package ledger

import (
	"backoffice/internal/apperror"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits the amount, quantity and rate columns keep.
const Scale = 4

var (
	hundred    = decimal.NewFromInt(100)
	maxTaxRate = hundred
	// decimal(18,4) holds magnitudes below 10^14.
	maxMagnitude = decimal.New(1, 14)
)

// Line is the monetary part of a work order or invoice item.
// TaxRate is a percent (8 means 8%), never a fraction.
type Line struct {
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	TaxRate   decimal.Decimal
	Deleted   bool
}

// Totals is the aggregate of a set of lines.
type Totals struct {
	SubTotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// Validate checks the item preconditions and names the first offending field.
func Validate(quantity, unitPrice, taxRate decimal.Decimal) error {
	if !quantity.IsPositive() {
		return apperror.Validation("quantity", "must be greater than 0")
	}
	if unitPrice.IsNegative() {
		return apperror.Validation("unit_price", "must not be negative")
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(maxTaxRate) {
		return apperror.Validation("tax_rate", "must be between 0 and 100")
	}
	if err := CheckAmount("quantity", quantity); err != nil {
		return err
	}
	if err := CheckAmount("unit_price", unitPrice); err != nil {
		return err
	}
	return CheckAmount("tax_rate", taxRate)
}

// CheckAmount rejects a value the storage columns cannot hold as given: more than
// Scale fractional digits, or a magnitude of 10^14 or more.
func CheckAmount(field string, d decimal.Decimal) error {
	if !d.Equal(d.Truncate(Scale)) {
		return apperror.Validation(field, "must have at most 4 decimal places")
	}
	if d.Abs().GreaterThanOrEqual(maxMagnitude) {
		return apperror.Validation(field, "is out of range")
	}
	return nil
}

func checkTotal(total decimal.Decimal) error {
	if total.Round(Scale).Abs().GreaterThanOrEqual(maxMagnitude) {
		return apperror.Validation("total_amount", "is out of range")
	}
	return nil
}

// Round returns d at the storage scale.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// Rounded returns the totals at the storage scale. TaxAmount is derived from the
// rounded figures so SubTotal + TaxAmount == Total still holds.
func (t Totals) Rounded() Totals {
	sub := Round(t.SubTotal)
	total := Round(t.Total)
	return Totals{SubTotal: sub, TaxAmount: total.Sub(sub), Total: total}
}

// ItemTotal returns quantity * unitPrice * (1 + taxRate/100), unrounded.
func ItemTotal(quantity, unitPrice, taxRate decimal.Decimal) (decimal.Decimal, error) {
	if err := Validate(quantity, unitPrice, taxRate); err != nil {
		return decimal.Zero, err
	}
	total := itemTotal(quantity, unitPrice, taxRate)
	if err := checkTotal(total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func itemTotal(quantity, unitPrice, taxRate decimal.Decimal) decimal.Decimal {
	net := quantity.Mul(unitPrice)
	return net.Add(net.Mul(taxRate).Div(hundred))
}

// AggregateTotals sums the non-deleted lines. A line that fails validation aborts the
// aggregation; persisted lines were validated on the way in.
func AggregateTotals(lines []Line) (Totals, error) {
	totals := Totals{
		SubTotal:  decimal.Zero,
		TaxAmount: decimal.Zero,
		Total:     decimal.Zero,
	}

	for _, l := range lines {
		if l.Deleted {
			continue
		}
		gross, err := ItemTotal(l.Quantity, l.UnitPrice, l.TaxRate)
		if err != nil {
			return Totals{}, err
		}
		net := l.Quantity.Mul(l.UnitPrice)
		totals.SubTotal = totals.SubTotal.Add(net)
		totals.TaxAmount = totals.TaxAmount.Add(gross.Sub(net))
	}

	totals.Total = totals.SubTotal.Add(totals.TaxAmount)
	if err := checkTotal(totals.Total); err != nil {
		return Totals{}, err
	}
	return totals, nil
}
