package middleware

import (
	"aitech_backend/internal/models"
	"aitech_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// Guard - собранный набор охранных middleware с внедренными
// зависимостями (секрет подписи и репозиторий пользователей),
// чтобы хэндлеры не тянули конфиг и БД сами
type Guard struct {
	secret string
	users  repositories.UserRepository
}

func NewGuard(secret string, users repositories.UserRepository) *Guard {
	return &Guard{secret: secret, users: users}
}

// Auth - проверка bearer-токена
func (g *Guard) Auth() gin.HandlerFunc {
	return AuthMiddleware(g.secret)
}

// Admin - требует текущую роль admin
func (g *Guard) Admin() gin.HandlerFunc {
	return RequireRole(g.users, models.UserRoleAdmin)
}

// HR - требует текущую роль HR
func (g *Guard) HR() gin.HandlerFunc {
	return RequireRole(g.users, models.UserRoleHR)
}

// Employee - требует текущую роль Employee
func (g *Guard) Employee() gin.HandlerFunc {
	return RequireRole(g.users, models.UserRoleEmployee)
}

// Self - email в пути должен быть своим
func (g *Guard) Self(param string) gin.HandlerFunc {
	return RequireSelf(param)
}
