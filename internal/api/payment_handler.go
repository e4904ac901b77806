package api

import (
	"net/http"

	"github.com/jobverse/jobverse-api/internal/api/shared"
	"github.com/jobverse/jobverse-api/internal/service/payment"
)

// PaymentHandler creates payment intents for diagnostic test bookings.
type PaymentHandler struct {
	paymentService payment.Service
}

// NewPaymentHandler creates a new PaymentHandler with the given service.
func NewPaymentHandler(paymentService payment.Service) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreateIntent handles POST /create-payment-intent. The dollar price from
// the client is converted to integer minor units before it reaches the
// payment provider.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentIntentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Price must not be negative")
		return
	}

	clientSecret, err := h.paymentService.CreateIntent(r.Context(), payment.MinorUnits(req.Price))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create payment intent", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PaymentIntentResponse{ClientSecret: clientSecret})
}
