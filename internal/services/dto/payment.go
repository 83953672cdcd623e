package dto

// PaymentIntentRequest - тело POST /create-payment-intent
type PaymentIntentRequest struct {
	Salary float64 `json:"salary" validate:"required,gt=0"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
