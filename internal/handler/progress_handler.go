package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/smartcourse/advisor-api/internal/models"
	appErrors "github.com/smartcourse/advisor-api/pkg/errors"
	"github.com/smartcourse/advisor-api/pkg/response"
)

type progressService interface {
	ForUser(user models.User) (*models.GraduationProgress, error)
}

type progressExporter interface {
	ProgressReport(progress models.GraduationProgress, format string) ([]byte, string, error)
}

// ProgressHandler serves graduation-progress views for the current user.
type ProgressHandler struct {
	service  progressService
	users    userLoader
	exporter progressExporter
}

// NewProgressHandler constructs the handler.
func NewProgressHandler(svc progressService, users userLoader, exporter progressExporter) *ProgressHandler {
	return &ProgressHandler{service: svc, users: users, exporter: exporter}
}

// Get godoc
// @Summary Graduation progress for the current user
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /progress [get]
func (h *ProgressHandler) Get(c *gin.Context) {
	progress, err := h.progress(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, progress)
}

// Export godoc
// @Summary Graduation progress as a downloadable document
// @Tags Progress
// @Produce octet-stream
// @Security BearerAuth
// @Param format query string true "csv or pdf"
// @Success 200 {file} binary
// @Router /progress/export [get]
func (h *ProgressHandler) Export(c *gin.Context) {
	progress, err := h.progress(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	format := strings.TrimSpace(c.Query("format"))
	payload, contentType, err := h.exporter.ProgressReport(*progress, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="progress.`+strings.ToLower(format)+`"`)
	c.Data(http.StatusOK, contentType, payload)
}

func (h *ProgressHandler) progress(c *gin.Context) (*models.GraduationProgress, error) {
	claims := claimsFromContext(c)
	if claims == nil {
		return nil, appErrors.ErrUnauthorized
	}
	user, err := h.users.CurrentUser(c.Request.Context(), claims.UserID)
	if err != nil {
		return nil, err
	}
	return h.service.ForUser(*user)
}
