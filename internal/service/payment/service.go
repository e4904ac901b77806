// Package payment bridges the API to the external payment processor. The
// server holds no payment state; it converts a price into minor currency
// units, asks the processor for a payment intent, and hands the resulting
// client secret back to the caller.
package payment

import (
	"context"
	"math"
)

// Service defines the payment bridge contract.
type Service interface {
	// CreateIntent requests a payment intent for the given amount in minor
	// currency units (cents) and returns the client secret the browser
	// needs to complete the payment.
	CreateIntent(ctx context.Context, amountMinor int64) (string, error)
}

// MinorUnits converts a decimal price into integer minor currency units by
// multiplying by 100 and truncating: 19.99 becomes 1999, 10.999 becomes
// 1099. The epsilon absorbs binary float error (19.99*100 is 1998.999...)
// without promoting genuine sub-cent fractions.
func MinorUnits(price float64) int64 {
	return int64(math.Trunc(price*100 + 1e-9))
}
