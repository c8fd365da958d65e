package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/smartcourse/advisor-api/internal/dto"
	"github.com/smartcourse/advisor-api/internal/middleware"
	"github.com/smartcourse/advisor-api/internal/models"
	"github.com/smartcourse/advisor-api/internal/service"
	appErrors "github.com/smartcourse/advisor-api/pkg/errors"
	"github.com/smartcourse/advisor-api/pkg/response"
)

type recommendationService interface {
	Recommend(ctx context.Context, input service.RecommendationInput) ([]models.CourseWithReason, bool, error)
}

type userLoader interface {
	CurrentUser(ctx context.Context, id string) (*models.User, error)
}

type scheduleResolver interface {
	Resolve(id, name string) (*models.University, error)
	ResolveScheduled(university *models.University, refs []dto.ScheduledCourseRef) []models.ScheduledCourse
}

type recommendationExporter interface {
	RecommendationReport(items []models.CourseWithReason, format string) ([]byte, string, error)
}

// RecommendationHandler exposes the recommendation engine over HTTP.
type RecommendationHandler struct {
	service  recommendationService
	users    userLoader
	catalog  scheduleResolver
	exporter recommendationExporter
}

// NewRecommendationHandler constructs the handler.
func NewRecommendationHandler(svc recommendationService, users userLoader, catalog scheduleResolver, exporter recommendationExporter) *RecommendationHandler {
	return &RecommendationHandler{service: svc, users: users, catalog: catalog, exporter: exporter}
}

// Recommend godoc
// @Summary Course recommendations for the current user
// @Tags Recommendations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.RecommendationRequest true "Preferences and committed schedule"
// @Success 200 {object} response.Envelope
// @Router /recommendations [post]
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	items, cacheHit, err := h.recommend(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, items, middleware.ExtractMeta(c))
}

// Export godoc
// @Summary Course recommendations as a downloadable document
// @Tags Recommendations
// @Accept json
// @Produce octet-stream
// @Security BearerAuth
// @Param format query string true "csv or pdf"
// @Success 200 {file} binary
// @Router /recommendations/export [post]
func (h *RecommendationHandler) Export(c *gin.Context) {
	items, _, err := h.recommend(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	format := strings.TrimSpace(c.Query("format"))
	payload, contentType, err := h.exporter.RecommendationReport(items, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="recommendations.`+strings.ToLower(format)+`"`)
	c.Data(http.StatusOK, contentType, payload)
}

func (h *RecommendationHandler) recommend(c *gin.Context) ([]models.CourseWithReason, bool, error) {
	claims := claimsFromContext(c)
	if claims == nil {
		return nil, false, appErrors.ErrUnauthorized
	}

	var req dto.RecommendationRequest
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, false, appErrors.Clone(appErrors.ErrValidation, "invalid request body")
		}
	}

	user, err := h.users.CurrentUser(c.Request.Context(), claims.UserID)
	if err != nil {
		return nil, false, err
	}

	// Schedule references resolve against the user's own catalog; an
	// unresolved university simply yields an empty schedule and the engine
	// degrades to an empty recommendation list on its own.
	university, err := h.catalog.Resolve(user.UniversityID, user.University)
	if err != nil {
		university = nil
	}
	scheduled := h.catalog.ResolveScheduled(university, req.Scheduled)

	return h.service.Recommend(c.Request.Context(), service.RecommendationInput{
		User: *user,
		Preferences: models.RecommendationPreferences{
			Difficulty: req.Difficulty,
			Semester:   req.Semester,
		},
		Scheduled: scheduled,
	})
}
