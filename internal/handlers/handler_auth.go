package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/fx_wallet/internal/core/ports/services"
	"github.com/SscSPs/fx_wallet/internal/dto"
	"github.com/SscSPs/fx_wallet/internal/middleware"
	"github.com/SscSPs/fx_wallet/internal/platform/config"
	"github.com/SscSPs/fx_wallet/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	authorizer  portssvc.Authorizer
	jwtSecret   string
	jwtDuration time.Duration
	jwtIssuer   string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authorizer portssvc.Authorizer, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authorizer:  authorizer,
		jwtSecret:   cfg.JWTSecret,
		jwtDuration: cfg.JWTExpiryDuration,
		jwtIssuer:   cfg.JWTIssuer,
	}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, authorizer portssvc.Authorizer, pinLimiter *limiter.Limiter) {
	h := NewAuthHandler(authorizer, cfg)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", limitergin.NewMiddleware(pinLimiter), h.Login)
	}
}

// Login godoc
// @Summary Session login
// @Description Checks the session PIN and returns a JWT for the wallet API.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Session PIN"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	ok, err := h.authorizer.Authorize(c.Request.Context(), req.PIN)
	if err != nil {
		logger.Error("Authorizer failed during login", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to check PIN"})
		return
	}
	if !ok {
		logger.Warn("Login rejected")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid PIN"})
		return
	}

	sessionID := uuid.NewString()
	token, err := utils.GenerateJWT(sessionID, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	logger.Info("Session started", slog.String("session_id", sessionID))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: time.Now().Add(h.jwtDuration)})
}
