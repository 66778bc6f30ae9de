package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/service"
	"tourbook/internal/session"
)

// AuthHandler serves the login/register/profile pages and their form posts.
// Page posts re-render the originating form with an inline error instead of
// navigating away, so the user keeps what they typed.
type AuthHandler struct {
	authService  service.AuthService
	sessionTTL   time.Duration
	cookieSecure bool
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, sessionTTL time.Duration, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		sessionTTL:   sessionTTL,
		cookieSecure: cookieSecure,
	}
}

// CredentialsForm is the login and registration form payload.
type CredentialsForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// ProfileForm is the profile-update form payload. An empty password keeps the
// current one.
type ProfileForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password"`
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	if session.FromContext(c) != nil {
		return c.Redirect(http.StatusFound, "/")
	}
	return c.Render(http.StatusOK, "login.html", echo.Map{"Username": ""})
}

// Login authenticates the form credentials and starts a session.
func (h *AuthHandler) Login(c echo.Context) error {
	var form CredentialsForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "login.html", echo.Map{"Error": "invalid form", "Username": ""})
	}
	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusBadRequest, "login.html", echo.Map{
			"Error":    "username and password are required",
			"Username": form.Username,
		})
	}

	token, _, err := h.authService.Login(c.Request().Context(), form.Username, form.Password)
	if err != nil {
		status := http.StatusUnauthorized
		msg := apperrors.ErrInvalidCredentials.Error()
		if err != apperrors.ErrInvalidCredentials {
			status = http.StatusInternalServerError
			msg = "something went wrong, please try again"
		}
		return c.Render(status, "login.html", echo.Map{
			"Error":    msg,
			"Username": form.Username,
		})
	}

	h.setSessionCookie(c, token)
	return c.Redirect(http.StatusFound, "/")
}

// RegisterPage renders the registration form.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	if session.FromContext(c) != nil {
		return c.Redirect(http.StatusFound, "/")
	}
	return c.Render(http.StatusOK, "register.html", echo.Map{"Username": ""})
}

// Register creates a user and sends them to the login page.
func (h *AuthHandler) Register(c echo.Context) error {
	var form CredentialsForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "register.html", echo.Map{"Error": "invalid form", "Username": ""})
	}
	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusBadRequest, "register.html", echo.Map{
			"Error":    "username and password are required",
			"Username": form.Username,
		})
	}

	if _, err := h.authService.Register(c.Request().Context(), form.Username, form.Password); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.Render(httpErr.StatusCode, "register.html", echo.Map{
			"Error":    httpErr.Message,
			"Username": form.Username,
		})
	}

	return c.Redirect(http.StatusFound, "/login")
}

// Logout destroys the session and clears the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	if token := session.TokenFromContext(c); token != "" {
		_ = h.authService.Logout(c.Request().Context(), token)
	}
	h.clearSessionCookie(c)
	return c.Redirect(http.StatusFound, "/")
}

// ProfilePage renders the profile form for the logged-in user.
func (h *AuthHandler) ProfilePage(c echo.Context) error {
	sess := session.FromContext(c)
	return c.Render(http.StatusOK, "profile.html", echo.Map{
		"User":  sess,
		"Saved": c.QueryParam("saved") == "1",
	})
}

// UpdateProfile applies username and optional password changes.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	sess := session.FromContext(c)

	var form ProfileForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "profile.html", echo.Map{
			"User": sess, "Error": "invalid form",
		})
	}
	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusBadRequest, "profile.html", echo.Map{
			"User": sess, "Error": "username is required",
		})
	}

	token := session.TokenFromContext(c)
	if _, err := h.authService.UpdateProfile(c.Request().Context(), token, sess.UserID, form.Username, form.Password); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.Render(httpErr.StatusCode, "profile.html", echo.Map{
			"User": sess, "Error": httpErr.Message,
		})
	}

	return c.Redirect(http.StatusFound, "/profile?saved=1")
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
