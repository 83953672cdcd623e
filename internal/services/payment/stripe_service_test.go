package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAmountFromSalary - зарплата переводится в минорные единицы
// с округлением
func TestAmountFromSalary(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(5000), AmountFromSalary(50))
	assert.Equal(t, int64(5001), AmountFromSalary(50.005))
	assert.Equal(t, int64(0), AmountFromSalary(0))
	assert.Equal(t, int64(99), AmountFromSalary(0.994))
}

// TestCreatePaymentIntent - проверяем форму запроса к Stripe и разбор ответа
func TestCreatePaymentIntent(t *testing.T) {
	t.Parallel()

	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "5000", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, "card", r.PostForm.Get("payment_method_types[]"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_abc","amount":5000}`))
	}))
	defer stub.Close()

	svc := NewStripeService("sk_test_123", stub.URL)

	intent, err := svc.CreatePaymentIntent(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret_abc", intent.ClientSecret)
	assert.Equal(t, int64(5000), intent.Amount)
}

// TestCreatePaymentIntent_UpstreamError - не-2xx от шлюза это ошибка
func TestCreatePaymentIntent_UpstreamError(t *testing.T) {
	t.Parallel()

	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"message":"Your card was declined."}}`))
	}))
	defer stub.Close()

	svc := NewStripeService("sk_test_123", stub.URL)

	_, err := svc.CreatePaymentIntent(context.Background(), 50)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "402")
}
