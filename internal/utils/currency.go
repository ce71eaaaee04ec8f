package utils

import (
	"fmt"
	"math"
)

// ToMinorUnits converts a major-unit amount (rupees) to the gateway's minor
// units (paise). Amounts are rounded to close out float representation noise
// before the conversion.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * MinorUnitFactor))
}

// FromMinorUnits converts a gateway minor-unit amount back to major units.
func FromMinorUnits(amount int64) float64 {
	return float64(amount) / MinorUnitFactor
}

// ReconcileAmounts checks the gateway's authoritative order amount (minor
// units) against the locally billed amount (major units). Any difference
// means the amount was tampered with between order creation and capture, and
// the capture must abort before any state is touched.
func ReconcileAmounts(localAmount float64, gatewayAmount int64) error {
	expected := ToMinorUnits(localAmount)
	if gatewayAmount != expected {
		return NewAmountMismatchError(expected, gatewayAmount)
	}
	return nil
}

// FormatAmount renders an amount for notifications and logs.
func FormatAmount(amount float64, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	return fmt.Sprintf("%s %.2f", currency, math.Round(amount*100)/100)
}
