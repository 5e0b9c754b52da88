package document

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/samajconnect/portal-backend/middleware"
)

type Handler struct{ service *Service }

func NewHandler(s *Service) *Handler { return &Handler{s} }

func (h *Handler) List(c *gin.Context) {
	docs, err := h.service.List(c.Param("category"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrUnknownCategory) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "pdfs": docs})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Title and PDF URL are required"})
		return
	}

	d, err := h.service.Create(c.Param("category"), &req, middleware.ActorID(c), c.ClientIP())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrUnknownCategory) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "pdf": d})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid document id"})
		return
	}

	if err := h.service.Delete(c.Param("category"), uint(id), middleware.ActorID(c), c.ClientIP()); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrUnknownCategory) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
