package ledger_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/apperror"
	"backoffice/internal/ledger"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestItemTotal(t *testing.T) {
	tests := []struct {
		name      string
		quantity  string
		unitPrice string
		taxRate   string
		want      string
		wantField string
	}{
		{name: "ten percent tax", quantity: "1", unitPrice: "100.00", taxRate: "10", want: "110"},
		{name: "no tax", quantity: "2", unitPrice: "25.00", taxRate: "0", want: "50"},
		{name: "fractional rate", quantity: "3", unitPrice: "19.99", taxRate: "8.25", want: "64.917525"},
		{name: "free item", quantity: "1", unitPrice: "0", taxRate: "20", want: "0"},
		{name: "full rate", quantity: "1", unitPrice: "10", taxRate: "100", want: "20"},
		{name: "zero quantity", quantity: "0", unitPrice: "10", taxRate: "0", wantField: "quantity"},
		{name: "negative quantity", quantity: "-1", unitPrice: "10", taxRate: "0", wantField: "quantity"},
		{name: "negative price", quantity: "1", unitPrice: "-0.01", taxRate: "0", wantField: "unit_price"},
		{name: "negative tax", quantity: "1", unitPrice: "10", taxRate: "-1", wantField: "tax_rate"},
		{name: "tax above hundred", quantity: "1", unitPrice: "10", taxRate: "100.01", wantField: "tax_rate"},
		{name: "four place quantity", quantity: "0.0001", unitPrice: "10", taxRate: "0", want: "0.001"},
		{name: "quantity below column scale", quantity: "0.00001", unitPrice: "10", taxRate: "0", wantField: "quantity"},
		{name: "price below column scale", quantity: "1", unitPrice: "0.33333", taxRate: "0", wantField: "unit_price"},
		{name: "rate below column scale", quantity: "1", unitPrice: "10", taxRate: "8.12345", wantField: "tax_rate"},
		{name: "quantity beyond column range", quantity: "100000000000000", unitPrice: "1", taxRate: "0", wantField: "quantity"},
		{name: "price beyond column range", quantity: "1", unitPrice: "100000000000000", taxRate: "0", wantField: "unit_price"},
		{name: "largest price", quantity: "1", unitPrice: "99999999999999.9999", taxRate: "0", want: "99999999999999.9999"},
		{name: "line total beyond column range", quantity: "10000000", unitPrice: "10000000", taxRate: "0", wantField: "total_amount"},
		{name: "tax pushes line total out of range", quantity: "1", unitPrice: "99999999999999", taxRate: "1", wantField: "total_amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ledger.ItemTotal(dec(tt.quantity), dec(tt.unitPrice), dec(tt.taxRate))

			if tt.wantField != "" {
				var ve *apperror.ValidationError
				require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
				assert.Equal(t, tt.wantField, ve.Field)

				return
			}

			require.NoError(t, err)
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestCheckAmount(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "integer", value: "42"},
		{name: "four places", value: "1.2345"},
		{name: "trailing zeros", value: "1.23450000"},
		{name: "negative in range", value: "-99999999999999.9999"},
		{name: "five places", value: "1.23451", wantErr: true},
		{name: "at range limit", value: "100000000000000", wantErr: true},
		{name: "negative at range limit", value: "-100000000000000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ledger.CheckAmount("amount", dec(tt.value))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var ve *apperror.ValidationError
			require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
			assert.Equal(t, "amount", ve.Field)
		})
	}
}

func TestTotals_Rounded(t *testing.T) {
	totals, err := ledger.AggregateTotals([]ledger.Line{
		{Quantity: dec("3"), UnitPrice: dec("19.99"), TaxRate: dec("8.25")},
	})
	require.NoError(t, err)
	assert.True(t, totals.Total.Equal(dec("64.917525")), "exact total %s", totals.Total)

	got := totals.Rounded()
	assert.True(t, got.SubTotal.Equal(dec("59.97")), "sub %s", got.SubTotal)
	assert.True(t, got.Total.Equal(dec("64.9175")), "total %s", got.Total)
	assert.True(t, got.TaxAmount.Equal(dec("4.9475")), "tax %s", got.TaxAmount)
	assert.True(t, got.Total.Equal(got.SubTotal.Add(got.TaxAmount)))
}

func TestAggregateTotals_OutOfRange(t *testing.T) {
	_, err := ledger.AggregateTotals([]ledger.Line{
		{Quantity: dec("1"), UnitPrice: dec("60000000000000"), TaxRate: dec("0")},
		{Quantity: dec("1"), UnitPrice: dec("60000000000000"), TaxRate: dec("0")},
	})
	var ve *apperror.ValidationError
	require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
	assert.Equal(t, "total_amount", ve.Field)
}

func TestAggregateTotals(t *testing.T) {
	t.Run("untaxed items sum to 100", func(t *testing.T) {
		got, err := ledger.AggregateTotals([]ledger.Line{
			{Quantity: dec("2"), UnitPrice: dec("25.00"), TaxRate: dec("0")},
			{Quantity: dec("3"), UnitPrice: dec("10.00"), TaxRate: dec("0")},
			{Quantity: dec("1"), UnitPrice: dec("20.00"), TaxRate: dec("0")},
		})
		require.NoError(t, err)
		assert.True(t, got.Total.Equal(dec("100")), "total %s", got.Total)
		assert.True(t, got.TaxAmount.IsZero())
	})

	t.Run("deleted items are ignored", func(t *testing.T) {
		got, err := ledger.AggregateTotals([]ledger.Line{
			{Quantity: dec("1"), UnitPrice: dec("100"), TaxRate: dec("10")},
			{Quantity: dec("5"), UnitPrice: dec("999"), TaxRate: dec("10"), Deleted: true},
		})
		require.NoError(t, err)
		assert.True(t, got.SubTotal.Equal(dec("100")))
		assert.True(t, got.TaxAmount.Equal(dec("10")))
		assert.True(t, got.Total.Equal(dec("110")))
	})

	t.Run("empty set is zero", func(t *testing.T) {
		got, err := ledger.AggregateTotals(nil)
		require.NoError(t, err)
		assert.True(t, got.Total.IsZero())
	})

	t.Run("invalid line fails", func(t *testing.T) {
		_, err := ledger.AggregateTotals([]ledger.Line{{Quantity: dec("0"), UnitPrice: dec("1"), TaxRate: dec("0")}})
		var ve *apperror.ValidationError
		assert.True(t, errors.As(err, &ve))
	})
}

// The total always equals the sum of per-item totals, and subtotal plus tax.
func TestAggregateTotals_MatchesItemTotals(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		var (
			lines []ledger.Line
			want  = decimal.Zero
		)

		for n := rnd.Intn(8); n >= 0; n-- {
			l := ledger.Line{
				Quantity:  decimal.New(int64(rnd.Intn(1000)+1), -1),
				UnitPrice: decimal.New(int64(rnd.Intn(100000)), -2),
				TaxRate:   decimal.New(int64(rnd.Intn(10001)), -2),
				Deleted:   rnd.Intn(4) == 0,
			}
			lines = append(lines, l)

			if !l.Deleted {
				item, err := ledger.ItemTotal(l.Quantity, l.UnitPrice, l.TaxRate)
				require.NoError(t, err)
				want = want.Add(item)
			}
		}

		got, err := ledger.AggregateTotals(lines)
		require.NoError(t, err)
		assert.True(t, got.Total.Equal(want), "iteration %d: got %s, want %s", i, got.Total, want)
		assert.True(t, got.Total.Equal(got.SubTotal.Add(got.TaxAmount)))
	}
}
