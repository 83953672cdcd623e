package dto

import "aitech_backend/internal/models"

// TokenRequest - тело POST /jwt. Подписывается как есть, без сверки
// с таблицей пользователей.
type TokenRequest struct {
	Email string `json:"email" validate:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// RegisterRequest - тело POST /user. Кроме email все поля опциональны:
// фронтенд присылает свободный профиль.
type RegisterRequest struct {
	Email         string          `json:"email" validate:"required"`
	Name          string          `json:"name"`
	Role          models.UserRole `json:"role"`
	Designation   string          `json:"designation"`
	Salary        float64         `json:"salary"`
	BankAccountNo string          `json:"bank_account_no"`
	PhotoURL      string          `json:"photo"`
}

// InsertResult - ответ на insert в стиле исходного API:
// при дубликате insertedId = null и заполнено message
type InsertResult struct {
	InsertedID *string `json:"insertedId"`
	Message    string  `json:"message,omitempty"`
}

// UpdateResult - ответ на одиночный update
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// FiredRequest - тело PATCH /employee/fired/:id.
// Имя поля isFired историческое, завязано на фронтенд.
type FiredRequest struct {
	IsFired bool `json:"isFired"`
}

// VerifiedRequest - тело PATCH /user/employee-list/:id.
// Имя поля isVarified историческое, завязано на фронтенд.
type VerifiedRequest struct {
	IsVerified bool `json:"isVarified"`
}
