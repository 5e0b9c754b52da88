package reports

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samajconnect/portal-backend/middleware"
)

type Handler struct{ service *Service }

func NewHandler(s *Service) *Handler { return &Handler{s} }

// ExportMembers streams the member directory as csv, excel or pdf.
func (h *Handler) ExportMembers(c *gin.Context) {
	format := c.DefaultQuery("format", FormatCSV)
	search := c.Query("search")

	data, filename, contentType, err := h.service.ExportMembers(format, search, middleware.ActorID(c), c.ClientIP())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, data)
}
