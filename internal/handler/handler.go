package handler

import (
	"net/http"

	"wortschatz/internal/middleware"
	"wortschatz/internal/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handler wires the HTTP routes to the application services
type Handler struct {
	authService *service.AuthService
	wordService *service.WordService
	transport   string
	logger      *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	authService *service.AuthService,
	wordService *service.WordService,
	transport string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		authService: authService,
		wordService: wordService,
		transport:   transport,
		logger:      logger,
	}
}

// Register mounts all routes. Every word route sits behind the auth gate;
// a request is either fully authenticated or rejected with 401.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/api/health", h.handleHealth)
	e.POST("/api/register", h.handleRegister)
	e.POST("/api/login", h.handleLogin)
	e.POST("/api/logout", h.handleLogout)

	words := e.Group("/api/words", middleware.Auth(h.authService, h.transport, h.logger))
	words.GET("", h.handleListWords)
	words.POST("", h.handleAddWord)
	words.GET("/search", h.handleSearchWords)
	words.GET("/random", h.handleRandomWords)
	words.PATCH("/:id", h.handleUpdateCategory)
	words.PATCH("/:id/review", h.handleSetReview)
	words.DELETE("/:id", h.handleDeleteWord)
}

func (h *Handler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// owner returns the authenticated username set by the auth middleware
func (h *Handler) owner(c echo.Context) string {
	username, _ := c.Get(middleware.UsernameContextKey).(string)
	return username
}

func errorResponse(message string) map[string]string {
	return map[string]string{"error": message}
}

func messageResponse(message string) map[string]string {
	return map[string]string{"message": message}
}
