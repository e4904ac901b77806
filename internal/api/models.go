package api

// IssueTokenRequest is the body of POST /jwt. The original endpoint signed
// whatever the client sent; the email is the only claim the rest of the
// system reads.
type IssueTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// AdminStatusResponse answers "is this user an admin".
type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}

// CreatePaymentIntentRequest is the body of POST /create-payment-intent.
type CreatePaymentIntentRequest struct {
	Price float64 `json:"price" validate:"gte=0"`
}

// PaymentIntentResponse carries the processor's client secret back to the
// browser.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// UpdateResult mirrors the document store's update acknowledgment, the
// shape the clients already consume.
type UpdateResult struct {
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult mirrors the document store's delete acknowledgment.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
