package payment

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/jobverse/jobverse-api/internal/config"
	"github.com/jobverse/jobverse-api/internal/platform/logger"
)

// StripeService implements Service against the Stripe PaymentIntents API.
type StripeService struct {
	api *client.API
}

// Ensure StripeService implements Service
var _ Service = (*StripeService)(nil)

// NewStripeService creates a payment bridge using the configured Stripe
// secret key. The key is fixed for the process lifetime.
func NewStripeService(cfg config.PaymentConfig) *StripeService {
	api := &client.API{}
	api.Init(cfg.StripeSecretKey, nil)
	return &StripeService{api: api}
}

// CreateIntent implements Service.CreateIntent.
func (s *StripeService) CreateIntent(ctx context.Context, amountMinor int64) (string, error) {
	log := logger.FromContext(ctx)

	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		log.Error("failed to create payment intent",
			"error", err,
			"amount_minor", amountMinor)
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	return intent.ClientSecret, nil
}
