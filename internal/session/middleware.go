package session

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CookieName is the cookie carrying the opaque session token.
const CookieName = "session_token"

const contextKey = "session"

// FromContext returns the session attached by Resolve, or nil.
func FromContext(c echo.Context) *Session {
	sess, _ := c.Get(contextKey).(*Session)
	return sess
}

// TokenFromContext returns the raw token attached by Resolve, or "".
func TokenFromContext(c echo.Context) string {
	token, _ := c.Get(contextKey+".token").(string)
	return token
}

// Resolve reads the session cookie and, when it maps to a live session,
// attaches the identity to the request context. It never rejects: gating is
// RequireAuth's job, so public pages can still greet a logged-in user.
func Resolve(store StoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			sess, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				// expired, revoked, or redis down: treat as anonymous
				return next(c)
			}
			c.Set(contextKey, sess)
			c.Set(contextKey+".token", cookie.Value)
			return next(c)
		}
	}
}

// RequireAuth gates a route on a resolved session. Browsers navigating a GET
// are redirected to the login page; asynchronous JSON posts get a failure
// payload they can branch on instead of an HTML redirect.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if FromContext(c) != nil {
			return next(c)
		}
		if c.Request().Method == http.MethodGet {
			return c.Redirect(http.StatusFound, "/login")
		}
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"success": false,
			"message": "please log in first",
		})
	}
}

// RequireRole gates a route on the session's role.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := FromContext(c)
			if sess == nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"success": false,
					"message": "please log in first",
				})
			}
			if sess.Role != role {
				return c.JSON(http.StatusForbidden, echo.Map{
					"success": false,
					"message": "insufficient privileges",
				})
			}
			return next(c)
		}
	}
}
