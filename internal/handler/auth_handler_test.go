package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcourse/advisor-api/internal/middleware"
	"github.com/smartcourse/advisor-api/internal/models"
	appErrors "github.com/smartcourse/advisor-api/pkg/errors"
)

type fakeAuthSrv struct {
	user      *models.User
	login     *models.LoginResponse
	err       error
	completed map[string]models.CompletedCategory
}

func (f *fakeAuthSrv) Register(context.Context, models.RegisterRequest) (*models.User, error) {
	return f.user, f.err
}

func (f *fakeAuthSrv) Login(context.Context, models.LoginRequest) (*models.LoginResponse, error) {
	return f.login, f.err
}

func (f *fakeAuthSrv) CurrentUser(context.Context, string) (*models.User, error) {
	return f.user, f.err
}

func (f *fakeAuthSrv) UpdateCompletedCourses(_ context.Context, _ string, completed map[string]models.CompletedCategory) (*models.User, error) {
	f.completed = completed
	return f.user, f.err
}

func authContext(t *testing.T, method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	return c, rec
}

func TestAuthHandlerRegister(t *testing.T) {
	handler := NewAuthHandler(&fakeAuthSrv{user: &models.User{ID: "u-1", Email: "alex@example.com"}})

	c, rec := authContext(t, http.MethodPost, "/auth/register",
		`{"email":"alex@example.com","password":"correct-horse","name":"Alex Kim","university":"Georgia","level":"Sophomore"}`)
	handler.Register(c)

	require.Equal(t, http.StatusCreated, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "u-1", envelope.Data["id"])
}

func TestAuthHandlerRegisterBadBody(t *testing.T) {
	handler := NewAuthHandler(&fakeAuthSrv{})

	c, rec := authContext(t, http.MethodPost, "/auth/register", "{not json")
	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandlerLoginPropagatesServiceError(t *testing.T) {
	handler := NewAuthHandler(&fakeAuthSrv{err: appErrors.ErrInvalidCredentials})

	c, rec := authContext(t, http.MethodPost, "/auth/login",
		`{"email":"alex@example.com","password":"wrong"}`)
	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandlerMeRequiresClaims(t *testing.T) {
	handler := NewAuthHandler(&fakeAuthSrv{})

	c, rec := authContext(t, http.MethodGet, "/auth/me", "")
	handler.Me(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandlerUpdateCompletedCourses(t *testing.T) {
	svc := &fakeAuthSrv{user: &models.User{ID: "u-1"}}
	handler := NewAuthHandler(svc)

	c, rec := authContext(t, http.MethodPut, "/auth/me/completed-courses",
		`{"Computer Science Core":{"courses":["CS 1301"],"credits":3}}`)
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "u-1"})
	handler.UpdateCompletedCourses(c)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, svc.completed, "Computer Science Core")
	assert.Equal(t, 3, svc.completed["Computer Science Core"].Credits)
}
