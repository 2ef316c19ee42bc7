package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// percentOf returns amount*pct/100 rounded half-up to a whole unit.
func percentOf(amount, pct float64) float64 {
	v, _ := decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(pct)).
		Div(hundred).
		Round(0).
		Float64()
	return v
}

func sum(discounts []float64) decimal.Decimal {
	total := decimal.Zero
	for _, d := range discounts {
		total = total.Add(decimal.NewFromFloat(d))
	}
	return total
}
