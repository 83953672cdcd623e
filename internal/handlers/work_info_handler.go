package handlers

import (
	"net/http"

	"aitech_backend/internal/middleware"
	"aitech_backend/internal/services"
	"aitech_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type WorkInfoHandler struct {
	*BaseHandler
	workInfoService services.WorkInfoService
}

func NewWorkInfoHandler(base *BaseHandler, workInfoService services.WorkInfoService) *WorkInfoHandler {
	return &WorkInfoHandler{
		BaseHandler:     base,
		workInfoService: workInfoService,
	}
}

func (h *WorkInfoHandler) RegisterRoutes(r *gin.RouterGroup, g *middleware.Guard) {
	r.POST("/employee-work-info", g.Auth(), g.Employee(), h.Submit)
	r.GET("/employee-work-info", g.Auth(), g.Employee(), h.ListAll)
	r.GET("/employee-work-info/:email", g.Auth(), g.Employee(), h.ListByEmail)
}

// Submit - POST /employee-work-info
func (h *WorkInfoHandler) Submit(c *gin.Context) {
	var req dto.WorkInfoRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result, err := h.workInfoService.Submit(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListAll - GET /employee-work-info
func (h *WorkInfoHandler) ListAll(c *gin.Context) {
	infos, err := h.workInfoService.ListAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, infos)
}

// ListByEmail - GET /employee-work-info/:email
func (h *WorkInfoHandler) ListByEmail(c *gin.Context) {
	infos, err := h.workInfoService.ListByEmail(c.Param("email"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, infos)
}
