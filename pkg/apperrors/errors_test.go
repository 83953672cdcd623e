package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAppError_MarshalJSON - внутренняя ошибка и HTTP-код не утекают в JSON
func TestAppError_MarshalJSON(t *testing.T) {
	t.Parallel()

	appErr := Wrap(errors.New("pq: connection refused"), CodeDatabaseError, "users", "Lookup failed", http.StatusInternalServerError)

	data, err := json.Marshal(appErr)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "connection refused")
	assert.NotContains(t, string(data), "500")
	assert.Contains(t, string(data), "DATABASE_ERROR")
}

// TestAppError_Unwrap - обернутая ошибка достается через errors.Is
func TestAppError_Unwrap(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("sentinel")
	appErr := Wrap(sentinel, CodeInternalError, "system", "boom", http.StatusInternalServerError)

	assert.True(t, Is(appErr, sentinel))

	var target *AppError
	assert.True(t, As(appErr, &target))
	assert.Equal(t, CodeInternalError, target.Code)
}

// TestHandleError - единая стадия трансляции: AppError уходит со своим
// статусом, прочие ошибки становятся 500
func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   ErrorCode
	}{
		{"unauthorized", NewUnauthorizedError("unauthorized access"), http.StatusUnauthorized, CodeUnauthorized},
		{"forbidden", NewForbiddenError("forbidden access"), http.StatusForbidden, CodeForbidden},
		{"bad request", NewBadRequestError("bad body"), http.StatusBadRequest, CodeValidationFailed},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, CodeInternalError},
		{"external", ExternalServiceError("payment", errors.New("timeout")), http.StatusBadGateway, CodeExternalServiceError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleError(c, tc.err)

			assert.Equal(t, tc.wantStatus, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tc.wantCode, resp.Error.Code)
		})
	}
}
