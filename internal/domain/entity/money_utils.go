package entity

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
)

// maxAmountInCents bounds parsed amounts so the cents value fits in an int64
const maxAmountInCents = float64(math.MaxInt64 / 2)

// ParseAmount converts a textual amount into a non-negative magnitude in cents.
// Thousands separators are stripped and the sign is discarded: direction carries
// the cash-flow effect, never the amount. NaN, Inf and out-of-range values are rejected.
func ParseAmount(amount string) (int64, error) {
	cents, _, err := ParseSignedAmount(amount)
	return cents, err
}

// ParseSignedAmount is ParseAmount that also reports whether the input was negative.
// Extracted documents sometimes carry the sign instead of a direction.
func ParseSignedAmount(amount string) (int64, bool, error) {
	cleaned := strings.TrimSpace(amount)
	if cleaned == "" {
		return 0, false, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q", errs.ErrInvalidAmount, amount)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false, fmt.Errorf("%w: %q is not finite", errs.ErrInvalidAmount, amount)
	}

	negative := value < 0 || (value == 0 && math.Signbit(value))
	scaled := math.Round(math.Abs(value) * 100)
	if scaled > maxAmountInCents {
		return 0, false, fmt.Errorf("%w: %q is out of range", errs.ErrInvalidAmount, amount)
	}

	return int64(scaled), negative, nil
}

// AmountInCentsToString converts integer amount to a decimal string
// For example:
// - 1015 becomes "10.15"
// - 5 becomes "0.05"
func AmountInCentsToString(amountInCents int64) string {
	sign := ""
	if amountInCents < 0 {
		sign = "-"
		amountInCents = -amountInCents
	}
	return fmt.Sprintf("%s%d.%02d", sign, amountInCents/100, amountInCents%100)
}

// AmountInCentsToMajor converts cents to a float in major units for external collaborators
func AmountInCentsToMajor(amountInCents int64) float64 {
	return float64(amountInCents) / 100
}
