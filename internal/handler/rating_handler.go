package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	appErrors "github.com/smartcourse/advisor-api/pkg/errors"
	"github.com/smartcourse/advisor-api/pkg/response"
)

type ratingService interface {
	Lookup(ctx context.Context, instructor, university string) (float64, bool)
}

// RatingHandler exposes the best-effort professor rating lookup.
type RatingHandler struct {
	service ratingService
}

// NewRatingHandler constructs the handler.
func NewRatingHandler(svc ratingService) *RatingHandler {
	return &RatingHandler{service: svc}
}

// Get godoc
// @Summary Professor rating lookup
// @Description Looks up the public rating of a professor at a university. A
// @Description rating that cannot be found, for any reason, yields 404.
// @Tags Ratings
// @Produce json
// @Param name query string true "Professor name"
// @Param university query string true "University name"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /professor-rating [get]
func (h *RatingHandler) Get(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	university := strings.TrimSpace(c.Query("university"))
	if name == "" || university == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "name and university are required"))
		return
	}

	rating, found := h.service.Lookup(c.Request.Context(), name, university)
	if !found {
		response.Error(c, appErrors.ErrRatingNotFound)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"rating": rating})
}
