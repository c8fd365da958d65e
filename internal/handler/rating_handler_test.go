package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRatingSrv struct {
	rating float64
	found  bool
}

func (f *fakeRatingSrv) Lookup(context.Context, string, string) (float64, bool) {
	return f.rating, f.found
}

func TestRatingHandlerRequiresParameters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewRatingHandler(&fakeRatingSrv{})

	for _, target := range []string{
		"/professor-rating",
		"/professor-rating?name=Dr.+Smith",
		"/professor-rating?university=Georgia+Tech",
	} {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodGet, target, nil)

		handler.Get(c)

		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestRatingHandlerFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewRatingHandler(&fakeRatingSrv{rating: 4.2, found: true})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/professor-rating?name=Dr.+Smith&university=Georgia+Tech", nil)

	handler.Get(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, 4.2, envelope.Data["rating"])
}

func TestRatingHandlerAbsent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewRatingHandler(&fakeRatingSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/professor-rating?name=Dr.+Nobody&university=Nowhere", nil)

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
