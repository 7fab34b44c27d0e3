package handler

import (
	"errors"
	"net/http"
	"time"

	"wortschatz/internal/config"
	"wortschatz/internal/middleware"
	"wortschatz/internal/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) handleRegister(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse("invalid request payload"))
	}

	if err := h.authService.Register(req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUsername),
			errors.Is(err, service.ErrInvalidPassword),
			errors.Is(err, service.ErrDuplicateUsername):
			return c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		}
		h.logger.Error("Failed to register user", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorResponse("internal server error"))
	}

	return c.JSON(http.StatusCreated, messageResponse("User registered successfully"))
}

func (h *Handler) handleLogin(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse("invalid request payload"))
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, errorResponse(err.Error()))
		}
		h.logger.Error("Failed to log in user", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorResponse("internal server error"))
	}

	if h.transport == config.TransportCookie {
		c.SetCookie(sessionCookie(token, int(time.Hour.Seconds())))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Login successful",
		"token":   token,
	})
}

// handleLogout clears the session cookie. Tokens are stateless, so a
// logged-out token stays cryptographically valid until its natural expiry.
func (h *Handler) handleLogout(c echo.Context) error {
	if h.transport == config.TransportCookie {
		c.SetCookie(sessionCookie("", -1))
	}
	return c.JSON(http.StatusOK, messageResponse("Logout successful"))
}

func sessionCookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	}
}
