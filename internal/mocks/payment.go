package mocks

import (
	"context"

	"github.com/jobverse/jobverse-api/internal/service/payment"
)

// MockPaymentService implements payment.Service for testing
type MockPaymentService struct {
	CreateIntentFn func(ctx context.Context, amountMinor int64) (string, error)

	// LastAmount records the amount of the most recent CreateIntent call
	// made through the default implementation.
	LastAmount int64
	Secret     string
	Err        error
}

// Ensure MockPaymentService implements payment.Service
var _ payment.Service = (*MockPaymentService)(nil)

// CreateIntent implements the payment.Service interface
func (m *MockPaymentService) CreateIntent(ctx context.Context, amountMinor int64) (string, error) {
	if m.CreateIntentFn != nil {
		return m.CreateIntentFn(ctx, amountMinor)
	}
	m.LastAmount = amountMinor
	return m.Secret, m.Err
}
