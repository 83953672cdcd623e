package handlers

import (
	"net/http"

	"aitech_backend/internal/services"
	"aitech_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	*BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    base,
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Маршрут сознательно без охран: так ведет себя исходный API,
	// вопрос "должен ли он быть публичным" отдан продукту
	r.POST("/create-payment-intent", h.CreatePaymentIntent)
}

// CreatePaymentIntent - POST /create-payment-intent
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req dto.PaymentIntentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result, err := h.paymentService.CreatePaymentIntent(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
