package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CalculateValueUSD multiplies a formatted balance by a USD price.
// The balance stays exact until the final conversion to float64.
func CalculateValueUSD(balance string, priceUSD float64) (float64, error) {
	if priceUSD == 0 || balance == "" {
		return 0, nil
	}
	amount, err := decimal.NewFromString(balance)
	if err != nil {
		return 0, fmt.Errorf("failed to parse balance %q: %w", balance, err)
	}
	return amount.Mul(decimal.NewFromFloat(priceUSD)).InexactFloat64(), nil
}

// ShiftDecimals converts an integer amount in base units into a float in whole
// units, e.g. wei into ether for decimals=18. Malformed input yields 0.
func ShiftDecimals(raw string, decimals int32) float64 {
	if raw == "" {
		return 0
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return 0
	}
	return amount.Shift(-decimals).InexactFloat64()
}
