package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/lancarbooks/lancar_backend/internal/core/ports/services"
	"github.com/lancarbooks/lancar_backend/internal/dto"
	"github.com/lancarbooks/lancar_backend/internal/middleware"
	"github.com/lancarbooks/lancar_backend/internal/platform/config"
)

// authHandler handles login, token refresh and logout.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cfg          *config.Config
}

func newAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		userService:  us,
		tokenService: ts,
		cfg:          cfg,
	}
}

// registerAuthRoutes sets up the authentication routes. Login is rate limited
// per client IP; refresh and logout rely on the http-only refresh cookie.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer, loginLimiter gin.HandlerFunc) {
	h := newAuthHandler(services.User, services.Token, cfg)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", loginLimiter, h.login)
		auth.POST("/refresh", h.refresh)
		auth.POST("/logout", h.logout)
	}
}

// login godoc
// @Summary User login
// @Description Authenticates by email and password, returns a JWT access token and sets the refresh cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err, "Failed to authenticate")
		return
	}

	accessToken, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	refreshToken, refreshExpiry, err := h.tokenService.GenerateRefreshToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	h.setRefreshCookie(c, user.UserID, refreshToken, refreshExpiry)

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: accessToken,
		User:        dto.ToUserResponse(user),
	})
}

// refresh godoc
// @Summary Refresh access token
// @Description Rotates the refresh token from the http-only cookie and returns a new access token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.RefreshResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	refreshToken, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil || refreshToken == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	userID, err := c.Cookie(h.cfg.RefreshTokenCookieName + "_uid")
	if err != nil || userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.RefreshSession(c.Request.Context(), userID, refreshToken)
	if err != nil {
		respondServiceError(c, err, "Failed to refresh session")
		return
	}

	accessToken, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	// Rotate the refresh token on every successful refresh.
	newRefreshToken, refreshExpiry, err := h.tokenService.GenerateRefreshToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to rotate refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}
	h.setRefreshCookie(c, user.UserID, newRefreshToken, refreshExpiry)

	c.JSON(http.StatusOK, dto.RefreshResponse{AccessToken: accessToken})
}

// logout godoc
// @Summary Logout
// @Description Clears the stored refresh token and expires the cookie.
// @Tags auth
// @Produce json
// @Success 204
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	userID, err := c.Cookie(h.cfg.RefreshTokenCookieName + "_uid")
	if err == nil && userID != "" {
		if err := h.userService.Logout(c.Request.Context(), userID); err != nil {
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Warn("Failed to clear refresh token on logout", slog.String("error", err.Error()))
		}
	}
	h.clearRefreshCookie(c)
	c.Status(http.StatusNoContent)
}

// setRefreshCookie stores the opaque refresh token in an http-only cookie,
// with a companion cookie carrying the user ID so refresh can locate the
// stored hash without decoding the token.
func (h *authHandler) setRefreshCookie(c *gin.Context, userID, token string, expiry time.Time) {
	maxAge := int(time.Until(expiry).Seconds())
	secure := h.cfg.IsProduction
	c.SetCookie(h.cfg.RefreshTokenCookieName, token, maxAge, h.cfg.RefreshTokenCookiePath, "", secure, true)
	c.SetCookie(h.cfg.RefreshTokenCookieName+"_uid", userID, maxAge, h.cfg.RefreshTokenCookiePath, "", secure, true)
}

func (h *authHandler) clearRefreshCookie(c *gin.Context) {
	secure := h.cfg.IsProduction
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", secure, true)
	c.SetCookie(h.cfg.RefreshTokenCookieName+"_uid", "", -1, h.cfg.RefreshTokenCookiePath, "", secure, true)
}
