package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smartcourse/advisor-api/internal/repository"
	"github.com/smartcourse/advisor-api/internal/service"
)

func newCatalogHandler() *CatalogHandler {
	return NewCatalogHandler(service.NewCatalogService(repository.NewCatalogRepository(nil), zap.NewNop()))
}

func catalogRequest(t *testing.T, target, paramID string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	if paramID != "" {
		c.Params = gin.Params{{Key: "id", Value: paramID}}
	}
	return c, rec
}

func TestCatalogHandlerListReturnsSummaries(t *testing.T) {
	handler := newCatalogHandler()
	c, rec := catalogRequest(t, "/universities", "")

	handler.List(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data)
	assert.NotEmpty(t, body.Data[0]["id"])
	assert.NotEmpty(t, body.Data[0]["name"])
	assert.NotContains(t, body.Data[0], "courses", "list endpoint returns summaries only")
}

func TestCatalogHandlerGet(t *testing.T) {
	handler := newCatalogHandler()
	c, rec := catalogRequest(t, "/universities/gt", "gt")

	handler.Get(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Georgia Institute of Technology", envelope.Data["name"])
	assert.NotEmpty(t, envelope.Data["courses"])
}

func TestCatalogHandlerGetNotFound(t *testing.T) {
	handler := newCatalogHandler()
	c, rec := catalogRequest(t, "/universities/missing", "missing")

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalogHandlerRequirements(t *testing.T) {
	handler := newCatalogHandler()
	c, rec := catalogRequest(t, "/universities/gt/requirements", "gt")

	handler.Requirements(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, float64(122), envelope.Data["total_credits"])
}

func TestCatalogHandlerCoursesByCategory(t *testing.T) {
	handler := newCatalogHandler()
	c, rec := catalogRequest(t, "/universities/gt/courses?category=Social+Sciences", "gt")

	handler.Courses(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	for _, course := range body.Data {
		assert.Equal(t, "Social Sciences", course["category"])
	}
}

func TestCatalogHandlerCoursesByRequirement(t *testing.T) {
	handler := newCatalogHandler()
	c, rec := catalogRequest(t, "/universities/gt/courses?requirement=Computer+Science+Core", "gt")

	handler.Courses(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data)
}
