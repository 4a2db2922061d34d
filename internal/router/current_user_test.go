package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"userbase/internal/auth"
	"userbase/internal/service"
)

func guardTestSetup(t *testing.T) (*auth.JWTService, service.UserService, string) {
	t.Helper()

	repo := newFakeUserRepo()
	users := service.NewUserService(repo, nil)

	_, err := users.CreateUser(context.Background(), "guard@example.com", "Guard", "guardpassword")
	assert.NoError(t, err)

	jwtService := auth.NewJWTService("test-secret", 30*time.Minute)
	token, err := jwtService.GenerateAccessToken(1, "guard@example.com")
	assert.NoError(t, err)

	return jwtService, users, token
}

func runGuard(jwtService *auth.JWTService, users service.UserService, authorization string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		user, err := CurrentUserFrom(c)
		if err != nil {
			return err
		}
		return c.String(http.StatusOK, user.Email)
	}
	return rec, CurrentUser(jwtService, users)(next)(c)
}

func TestCurrentUser_ResolvesSubject(t *testing.T) {
	jwtService, users, token := guardTestSetup(t)

	rec, err := runGuard(jwtService, users, "Bearer "+token)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "guard@example.com", rec.Body.String())
}

func TestCurrentUser_RejectsMissingHeader(t *testing.T) {
	jwtService, users, _ := guardTestSetup(t)

	_, err := runGuard(jwtService, users, "")
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestCurrentUser_RejectsBadToken(t *testing.T) {
	jwtService, users, _ := guardTestSetup(t)

	_, err := runGuard(jwtService, users, "Bearer not-a-token")
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestCurrentUser_RejectsUnknownSubject(t *testing.T) {
	jwtService, users, _ := guardTestSetup(t)

	token, err := jwtService.GenerateAccessToken(99, "ghost@example.com")
	assert.NoError(t, err)

	_, gerr := runGuard(jwtService, users, "Bearer "+token)
	httpErr, ok := gerr.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestCurrentUserFrom_WithoutGuard(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, err := CurrentUserFrom(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
