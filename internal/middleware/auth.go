package middleware

import (
	"strings"

	"aitech_backend/internal/auth"
	"aitech_backend/internal/logger"
	"aitech_backend/internal/models"
	"aitech_backend/internal/repositories"
	"aitech_backend/pkg/apperrors"
	"aitech_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - middleware проверки JWT. Проверяет только подпись и
// срок действия, в БД не ходит. Проверенный email кладется в контекст.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("unauthorized access"))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr, secret)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("unauthorized access"))
			return
		}

		// Сохраняем claims в контекст
		c.Set(string(contextkeys.UserEmailKey), claims.Email)
		ctx := logger.WithUserEmail(c.Request.Context(), claims.Email)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRole - middleware ограничения по ролям. Выполняется после
// AuthMiddleware и перечитывает аккаунт из БД: авторизация всегда идет
// по текущей сохраненной роли, а не по содержимому токена, поэтому
// смена роли действует со следующего же запроса. "Аккаунт не найден" и
// "не та роль" клиенту не различаются.
func RequireRole(users repositories.UserRepository, required models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := GetUserEmail(c)
		if email == "" {
			apperrors.HandleError(c, apperrors.NewForbiddenError("forbidden access"))
			return
		}

		user, err := users.FindByEmail(email)
		if err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				apperrors.HandleError(c, apperrors.NewForbiddenError("forbidden access"))
				return
			}
			logger.CtxWithError(c.Request.Context(), "role lookup failed", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
			return
		}

		if user.Role != required {
			apperrors.HandleError(c, apperrors.NewForbiddenError("forbidden access"))
			return
		}

		c.Next()
	}
}

// RequireSelf - email в пути должен совпадать с email из токена.
// Не дает одному аутентифицированному пользователю запрашивать
// роль/статус другого.
func RequireSelf(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Param(param) != GetUserEmail(c) {
			apperrors.HandleError(c, apperrors.NewForbiddenError("forbidden access"))
			return
		}
		c.Next()
	}
}

// GetUserEmail извлекает email проверенного пользователя из контекста
func GetUserEmail(c *gin.Context) string {
	val, exists := c.Get(string(contextkeys.UserEmailKey))
	if !exists {
		return ""
	}

	email, ok := val.(string)
	if !ok {
		return ""
	}

	return email
}
