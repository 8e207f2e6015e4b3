package kernel

import (
	"github.com/shopspring/decimal"
)

// WeightPrecision is the number of decimal places package weights are kept at.
const WeightPrecision = 8

// RoundWeight rounds w half away from zero to WeightPrecision decimal places.
//
// Example:
//
//	kernel.RoundWeight(0.1 + 0.2) // 0.3
func RoundWeight(w float64) float64 {
	return decimal.NewFromFloat(w).Round(WeightPrecision).InexactFloat64()
}

// AddWeight returns RoundWeight(a + b) computed in decimal arithmetic.
func AddWeight(a, b float64) float64 {
	return decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).Round(WeightPrecision).InexactFloat64()
}

// SubWeight returns RoundWeight(a - b) computed in decimal arithmetic.
func SubWeight(a, b float64) float64 {
	return decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Round(WeightPrecision).InexactFloat64()
}

// SumWeights adds up ws and rounds the total once.
func SumWeights(ws ...float64) float64 {
	total := decimal.Zero
	for _, w := range ws {
		total = total.Add(decimal.NewFromFloat(w))
	}
	return total.Round(WeightPrecision).InexactFloat64()
}
