package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "userbase/internal/errors"
	"userbase/internal/model"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, string, *model.User, error) {
	args := m.Called(ctx, email, password)
	var user *model.User
	if args.Get(2) != nil {
		user = args.Get(2).(*model.User)
	}
	return args.String(0), args.String(1), user, args.Error(3)
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func loginForm(username, password string) *http.Request {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("issues bearer token for valid credentials", func(t *testing.T) {
		svc := new(MockAuthService)
		user := &model.User{ID: 1, Email: "test@example.com", IsActive: true}
		svc.On("Login", mock.Anything, "test@example.com", "testpassword123").
			Return("access-token", "refresh-token", user, nil)

		e := newTestEcho()
		rec := httptest.NewRecorder()
		c := e.NewContext(loginForm("test@example.com", "testpassword123"), rec)

		h := NewAuthHandler(svc)
		assert.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got TokenResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "access-token", got.AccessToken)
		assert.Equal(t, "refresh-token", got.RefreshToken)
		assert.Equal(t, "bearer", got.TokenType)
		svc.AssertExpectations(t)
	})

	t.Run("rejects bad credentials with 401", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", mock.Anything, "test@example.com", "wrongpassword").
			Return("", "", nil, apperrors.ErrInvalidCredentials)

		e := newTestEcho()
		rec := httptest.NewRecorder()
		c := e.NewContext(loginForm("test@example.com", "wrongpassword"), rec)

		h := NewAuthHandler(svc)
		err := h.Login(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("rejects missing fields with 400", func(t *testing.T) {
		svc := new(MockAuthService)

		e := newTestEcho()
		rec := httptest.NewRecorder()
		c := e.NewContext(loginForm("", ""), rec)

		h := NewAuthHandler(svc)
		err := h.Login(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	t.Run("returns fresh access token", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("RefreshToken", mock.Anything, "refresh-token").Return("new-access-token", nil)

		e := newTestEcho()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", strings.NewReader(`{"refresh_token":"refresh-token"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := NewAuthHandler(svc)
		assert.NoError(t, h.Refresh(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got TokenResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "new-access-token", got.AccessToken)
		assert.Empty(t, got.RefreshToken)
	})

	t.Run("rejects invalid refresh token with 401", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("RefreshToken", mock.Anything, "bad-token").Return("", apperrors.ErrInvalidToken)

		e := newTestEcho()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", strings.NewReader(`{"refresh_token":"bad-token"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := NewAuthHandler(svc)
		err := h.Refresh(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Logout", mock.Anything, "refresh-token").Return(nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", strings.NewReader(`{"refresh_token":"refresh-token"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAuthHandler(svc)
	assert.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}
