package router

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"userbase/internal/auth"
	apperrors "userbase/internal/errors"
	"userbase/internal/model"
	"userbase/internal/service"
)

const currentUserKey = "current_user"

// CurrentUser returns middleware that decodes the bearer token and resolves
// its subject to a stored user, rejecting requests whose subject no longer
// exists. The resolved user is stored in the request context.
func CurrentUser(jwtService *auth.JWTService, users service.UserService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return unauthorized()
			}

			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				return unauthorized()
			}

			user, err := users.GetUserByEmail(c.Request().Context(), claims.Email)
			if err != nil {
				return unauthorized()
			}

			c.Set(currentUserKey, user)
			return next(c)
		}
	}
}

// CurrentUserFrom returns the authenticated user resolved by CurrentUser.
func CurrentUserFrom(c echo.Context) (*model.User, error) {
	user, ok := c.Get(currentUserKey).(*model.User)
	if !ok {
		return nil, unauthorized()
	}
	return user, nil
}

func bearerToken(header string) (string, error) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", apperrors.ErrInvalidToken
	}
	return strings.TrimSpace(header[len(prefix):]), nil
}

func unauthorized() *echo.HTTPError {
	httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInvalidToken)
	return echo.NewHTTPError(http.StatusUnauthorized, httpErr.ToErrorResponse())
}
