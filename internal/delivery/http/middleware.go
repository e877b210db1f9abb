package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"purple-insta/internal/domain/entities"
	"purple-insta/internal/domain/repositories"
	"purple-insta/internal/infrastructure"
)

const (
	// SessionCookieName is the cookie carrying the signed session token.
	SessionCookieName = "session"

	currentUserKey = "current_user"
)

// RequireUser gates protected routes. Requests without a valid session
// cookie are redirected to the login entry point; with one, the current
// user is resolved from the store and placed in the request context.
func RequireUser(tokenService *infrastructure.TokenService, userRepo repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusFound, "/login")
			}

			userId, err := tokenService.Parse(cookie.Value)
			if err != nil {
				return c.Redirect(http.StatusFound, "/login")
			}

			user, err := userRepo.FindById(userId)
			if err != nil {
				return err
			}
			if user == nil {
				// Token signed for an account that no longer resolves.
				return c.Redirect(http.StatusFound, "/login")
			}

			c.Set(currentUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user placed by RequireUser, or nil
// on unprotected routes.
func CurrentUser(c echo.Context) *entities.User {
	user, _ := c.Get(currentUserKey).(*entities.User)
	return user
}

// RateLimit applies a process-wide token bucket to every request.
func RateLimit(limiter *rate.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow() {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
