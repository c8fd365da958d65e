package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smartcourse/advisor-api/internal/models"
	"github.com/smartcourse/advisor-api/internal/repository"
	appErrors "github.com/smartcourse/advisor-api/pkg/errors"
)

func newTestAuthService() (*AuthService, *repository.MemoryUserRepository) {
	users := repository.NewMemoryUserRepository()
	catalog := repository.NewCatalogRepository(nil)
	svc := NewAuthService(users, catalog, nil, zap.NewNop(), AuthConfig{
		Secret:     "test-secret",
		Expiration: time.Hour,
		Issuer:     "advisor-api-test",
	})
	return svc, users
}

func registerRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Email:      "alex@example.com",
		Password:   "correct-horse",
		Name:       "Alex Kim",
		University: "Georgia",
		Level:      "Sophomore",
	}
}

func TestAuthRegisterResolvesUniversity(t *testing.T) {
	svc, _ := newTestAuthService()

	user, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "gt", user.UniversityID)
	assert.Equal(t, "Georgia Institute of Technology", user.University)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)
	assert.NotNil(t, user.CompletedCourses)
}

func TestAuthRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerRequest())
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
}

func TestAuthRegisterRejectsUnknownUniversity(t *testing.T) {
	svc, _ := newTestAuthService()

	req := registerRequest()
	req.University = "Hogwarts"

	_, err := svc.Register(context.Background(), req)
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrUniversityNotFound.Code, appErr.Code)
}

func TestAuthRegisterValidatesPayload(t *testing.T) {
	svc, _ := newTestAuthService()

	req := registerRequest()
	req.Password = "short"

	_, err := svc.Register(context.Background(), req)
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestAuthLoginIssuesVerifiableToken(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	resp, err := svc.Login(ctx, models.LoginRequest{Email: "alex@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, resp.User.ID)
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
	assert.Equal(t, "alex@example.com", claims.Email)
}

func TestAuthLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "alex@example.com", Password: "wrong"})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)

	// An unknown account produces the same error as a bad password.
	_, err = svc.Login(ctx, models.LoginRequest{Email: "nobody@example.com", Password: "wrong"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
}

func TestAuthValidateTokenRejectsTampering(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)
	resp, err := svc.Login(ctx, models.LoginRequest{Email: "alex@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(resp.AccessToken + "x")
	assert.Error(t, err)
	_, err = svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestAuthUpdateCompletedCoursesBumpsTimestamp(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	base := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	updated, err := svc.UpdateCompletedCourses(ctx, user.ID, map[string]models.CompletedCategory{
		"Computer Science Core": {Courses: []string{"CS 1301"}, Credits: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, base, updated.UpdatedAt)
	assert.Equal(t, 3, updated.TotalCompletedCredits())

	// nil resets to an empty record rather than keeping the old one.
	cleared, err := svc.UpdateCompletedCourses(ctx, user.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, cleared.CompletedCourses)
	assert.NotNil(t, cleared.CompletedCourses)
}
