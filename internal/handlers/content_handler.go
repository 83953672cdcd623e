package handlers

import (
	"net/http"

	"aitech_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ContentHandler - публичные чтения контента сайта, без охран
type ContentHandler struct {
	*BaseHandler
	contentService services.ContentService
}

func NewContentHandler(base *BaseHandler, contentService services.ContentService) *ContentHandler {
	return &ContentHandler{
		BaseHandler:    base,
		contentService: contentService,
	}
}

func (h *ContentHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/services", h.ListServices)
	r.GET("/blogs", h.ListBlogs)
	r.GET("/blog/:id", h.GetBlog)
	r.GET("/reviews", h.ListReviews)
}

// ListServices - GET /services
func (h *ContentHandler) ListServices(c *gin.Context) {
	services, err := h.contentService.ListServices()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, services)
}

// ListBlogs - GET /blogs
func (h *ContentHandler) ListBlogs(c *gin.Context) {
	blogs, err := h.contentService.ListBlogs()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, blogs)
}

// GetBlog - GET /blog/:id. Отсутствующий документ отдается как null.
func (h *ContentHandler) GetBlog(c *gin.Context) {
	blog, err := h.contentService.GetBlog(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, blog)
}

// ListReviews - GET /reviews
func (h *ContentHandler) ListReviews(c *gin.Context) {
	reviews, err := h.contentService.ListReviews()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}
