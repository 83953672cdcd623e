package services

import (
	"context"

	"aitech_backend/internal/services/dto"
	"aitech_backend/internal/services/payment"
	"aitech_backend/pkg/apperrors"
)

// PaymentGateway - внешний шлюз создания платежных намерений
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, salary float64) (*payment.Intent, error)
}

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, req *dto.PaymentIntentRequest) (*dto.PaymentIntentResponse, error)
}

type PaymentServiceImpl struct {
	gateway PaymentGateway
}

func NewPaymentService(gateway PaymentGateway) PaymentService {
	return &PaymentServiceImpl{gateway: gateway}
}

// CreatePaymentIntent - единственная операция с шлюзом: один вызов,
// без ретраев, ошибка шлюза уходит клиенту как 502
func (s *PaymentServiceImpl) CreatePaymentIntent(ctx context.Context, req *dto.PaymentIntentRequest) (*dto.PaymentIntentResponse, error) {
	intent, err := s.gateway.CreatePaymentIntent(ctx, req.Salary)
	if err != nil {
		return nil, apperrors.ExternalServiceError("payment", err)
	}

	return &dto.PaymentIntentResponse{ClientSecret: intent.ClientSecret}, nil
}
