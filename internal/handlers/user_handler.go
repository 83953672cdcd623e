package handlers

import (
	"net/http"

	"aitech_backend/internal/middleware"
	"aitech_backend/internal/models"
	"aitech_backend/internal/services"
	"aitech_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup, g *middleware.Guard) {
	// Публичные: выдача токена и саморегистрация
	r.POST("/jwt", h.IssueToken)
	r.POST("/user", h.Register)

	// Запросы "какая у меня роль" - только про самого себя
	r.GET("/user/admin/:email", g.Auth(), g.Self("email"), h.IsAdmin)
	r.GET("/user/HR/:email", g.Auth(), g.Self("email"), h.IsHR)
	r.GET("/user/employee/:email", g.Auth(), g.Self("email"), h.IsEmployee)

	// Ростеры
	r.GET("/user/employee-HR", g.Auth(), g.Admin(), h.EmployeeHRRoster)
	r.GET("/user/employee-list", g.Auth(), g.HR(), h.EmployeeList)

	// Мутации по id документа
	r.PATCH("/employee/hr/:id", g.Auth(), g.Admin(), h.PromoteToHR)
	r.PATCH("/employee/fired/:id", g.Auth(), g.Admin(), h.SetFired)
	r.PATCH("/user/employee-list/:id", g.Auth(), g.HR(), h.SetVerified)
}

// IssueToken - POST /jwt
func (h *UserHandler) IssueToken(c *gin.Context) {
	var req dto.TokenRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	token, err := h.userService.IssueToken(req.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// Register - POST /user
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result, err := h.userService.RegisterUser(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// IsAdmin - GET /user/admin/:email
func (h *UserHandler) IsAdmin(c *gin.Context) {
	h.roleFlag(c, models.UserRoleAdmin, "admin")
}

// IsHR - GET /user/HR/:email
func (h *UserHandler) IsHR(c *gin.Context) {
	h.roleFlag(c, models.UserRoleHR, "HR")
}

// IsEmployee - GET /user/employee/:email
func (h *UserHandler) IsEmployee(c *gin.Context) {
	h.roleFlag(c, models.UserRoleEmployee, "employee")
}

// roleFlag отвечает {<key>: bool} по текущей сохраненной роли
func (h *UserHandler) roleFlag(c *gin.Context, role models.UserRole, key string) {
	has, err := h.userService.HasRole(c.Param("email"), role)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{key: has})
}

// EmployeeHRRoster - GET /user/employee-HR
func (h *UserHandler) EmployeeHRRoster(c *gin.Context) {
	users, err := h.userService.ListEmployeeHRRoster()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// EmployeeList - GET /user/employee-list
func (h *UserHandler) EmployeeList(c *gin.Context) {
	users, err := h.userService.ListEmployees()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// PromoteToHR - PATCH /employee/hr/:id
func (h *UserHandler) PromoteToHR(c *gin.Context) {
	result, err := h.userService.PromoteToHR(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SetFired - PATCH /employee/fired/:id
func (h *UserHandler) SetFired(c *gin.Context) {
	var req dto.FiredRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result, err := h.userService.SetFired(c.Param("id"), req.IsFired)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SetVerified - PATCH /user/employee-list/:id
func (h *UserHandler) SetVerified(c *gin.Context) {
	var req dto.VerifiedRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result, err := h.userService.SetVerified(c.Param("id"), req.IsVerified)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
