package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// StripeService - клиент платежного шлюза (Stripe Payment Intents API).
// Суммы передаются в минорных единицах валюты.
type StripeService struct {
	SecretKey string
	BaseURL   string
	Currency  string
	client    *http.Client
}

// Intent - результат создания платежного намерения
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
}

func NewStripeService(secretKey, baseURL string) *StripeService {
	return &StripeService{
		SecretKey: secretKey,
		BaseURL:   strings.TrimSuffix(baseURL, "/"),
		Currency:  "usd", // фиксированная валюта, карта - единственный метод
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

// AmountFromSalary переводит зарплату в минорные единицы: round(salary * 100)
func AmountFromSalary(salary float64) int64 {
	return int64(math.Round(salary * 100))
}

// CreatePaymentIntent создает payment intent на сумму зарплаты и
// возвращает client secret для подтверждения оплаты на фронтенде
func (s *StripeService) CreatePaymentIntent(ctx context.Context, salary float64) (*Intent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(AmountFromSalary(salary), 10))
	form.Set("currency", s.Currency)
	form.Add("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.BaseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.SecretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stripe request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read stripe response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("stripe returned status %d: %s", resp.StatusCode, string(body))
	}

	var intent Intent
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, fmt.Errorf("failed to decode stripe response: %w", err)
	}

	return &intent, nil
}
