package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/smartcourse/advisor-api/internal/dto"
	"github.com/smartcourse/advisor-api/internal/models"
	"github.com/smartcourse/advisor-api/pkg/response"
)

type catalogService interface {
	List() []models.University
	Get(id string) (*models.University, error)
	Requirements(universityID string) (*models.GraduationRequirements, error)
	CoursesByCategory(universityID, category string) ([]models.Course, error)
	RequiredCourses(universityID, category string) ([]models.Course, error)
}

// CatalogHandler serves the static university catalog.
type CatalogHandler struct {
	service catalogService
}

// NewCatalogHandler constructs the handler.
func NewCatalogHandler(service catalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// List godoc
// @Summary List universities
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /universities [get]
func (h *CatalogHandler) List(c *gin.Context) {
	universities := h.service.List()
	summaries := make([]dto.UniversitySummary, 0, len(universities))
	for _, uni := range universities {
		summaries = append(summaries, dto.NewUniversitySummary(uni))
	}
	response.JSON(c, http.StatusOK, summaries)
}

// Get godoc
// @Summary Full university record including its course catalog
// @Tags Catalog
// @Produce json
// @Param id path string true "University ID"
// @Success 200 {object} response.Envelope
// @Router /universities/{id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	uni, err := h.service.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, uni)
}

// Requirements godoc
// @Summary Graduation requirements for a university
// @Tags Catalog
// @Produce json
// @Param id path string true "University ID"
// @Success 200 {object} response.Envelope
// @Router /universities/{id}/requirements [get]
func (h *CatalogHandler) Requirements(c *gin.Context) {
	requirements, err := h.service.Requirements(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, requirements)
}

// Courses godoc
// @Summary Courses filtered by category or requirement
// @Tags Catalog
// @Produce json
// @Param id path string true "University ID"
// @Param category query string false "Course category"
// @Param requirement query string false "Graduation requirement category"
// @Success 200 {object} response.Envelope
// @Router /universities/{id}/courses [get]
func (h *CatalogHandler) Courses(c *gin.Context) {
	id := c.Param("id")
	category := strings.TrimSpace(c.Query("category"))
	requirement := strings.TrimSpace(c.Query("requirement"))

	var (
		courses []models.Course
		err     error
	)
	switch {
	case requirement != "":
		courses, err = h.service.RequiredCourses(id, requirement)
	case category != "":
		courses, err = h.service.CoursesByCategory(id, category)
	default:
		var uni *models.University
		uni, err = h.service.Get(id)
		if err == nil {
			courses = uni.Courses
		}
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses)
}
