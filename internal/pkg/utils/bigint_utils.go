package utils

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultTokenDecimals is used when a provider reports decimals that cannot be parsed.
const DefaultTokenDecimals = 9

// FormatTokenAmount converts a raw base-unit integer amount into a human-readable
// decimal string using arbitrary-precision arithmetic.
// Example: raw="1500000000", decimals=9 => "1.5"
//
// Empty or zero input yields "0". Input that already contains a decimal point is
// returned unchanged. Exponent notation is expanded exactly before formatting.
// Malformed input yields "0"; the function never fails.
func FormatTokenAmount(raw string, decimals int) string {
	amount := strings.TrimSpace(raw)
	if amount == "" || amount == "0" {
		return "0"
	}

	if strings.ContainsAny(amount, "eE") {
		expanded, err := decimal.NewFromString(amount)
		if err != nil || !expanded.IsInteger() {
			return "0"
		}
		amount = expanded.BigInt().String()
	}

	if strings.Contains(amount, ".") {
		return amount
	}

	if decimals < 0 {
		decimals = DefaultTokenDecimals
	}

	value, ok := new(big.Int).SetString(amount, 10)
	if !ok {
		return "0"
	}
	if value.Sign() == 0 {
		return "0"
	}

	sign := ""
	if value.Sign() < 0 {
		sign = "-"
		value.Abs(value)
	}

	if decimals == 0 {
		return sign + value.String()
	}

	divisor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	whole, frac := new(big.Int).QuoRem(value, divisor, new(big.Int))

	fracStr := frac.String()
	if len(fracStr) < decimals {
		fracStr = strings.Repeat("0", decimals-len(fracStr)) + fracStr
	}
	fracStr = strings.TrimRight(fracStr, "0")

	if fracStr == "" {
		return sign + whole.String()
	}
	return sign + whole.String() + "." + fracStr
}

// ParseDecimals coerces a provider-reported decimals value into an int,
// falling back to DefaultTokenDecimals when it is missing or malformed.
func ParseDecimals(v string) int {
	d, _ := LookupDecimals(v)
	return d
}

// LookupDecimals is ParseDecimals that also reports whether v held a usable value.
func LookupDecimals(v string) (int, bool) {
	d, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || d < 0 {
		return DefaultTokenDecimals, false
	}
	return d, true
}

// FormatBigInt converts a big.Int value to a human-readable string,
// considering the given number of decimals.
// Example: amount=1234500000000000000, decimals=18 => "1.2345"
func FormatBigInt(amount *big.Int, decimals uint8) string {
	if amount == nil {
		return "0"
	}
	return FormatTokenAmount(amount.String(), int(decimals))
}
