package app

import "github.com/shopspring/decimal"

// Money renders an amount with exactly two decimals, rounding half away from
// zero on the shortest decimal form of x (1.005 -> "1.01"). Display and copy
// text both go through here so they cannot disagree.
func Money(x float64) string {
	return decimal.NewFromFloat(x).Round(2).StringFixed(2)
}
