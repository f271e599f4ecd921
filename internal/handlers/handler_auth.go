package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/smallledger/general_ledger_app/internal/dto"
	"github.com/smallledger/general_ledger_app/internal/middleware"
	"github.com/smallledger/general_ledger_app/internal/utils"
	"github.com/smallledger/general_ledger_app/pkg/config"
)

// authHandler implements the shared-password access gate. It is not a
// per-user identity system: one password, one kind of session.
type authHandler struct {
	cfg *config.Config
}

// NewAuthHandler creates a new authHandler.
func NewAuthHandler(cfg *config.Config) *authHandler {
	return &authHandler{cfg: cfg}
}

// Login godoc
// @Summary Exchange the site password for a bearer token
// @Description Verifies the shared site password and issues a signed token with a fixed expiry
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Site password"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Invalid password"
// @Router /auth/login [post]
func (h *authHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if !h.passwordMatches(req.Password) {
		logger.Warn("Login rejected: password mismatch")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	expiresAt := time.Now().Add(h.cfg.JWTExpiryDuration)
	claims := jwt.RegisteredClaims{
		Subject:   "ledger",
		Issuer:    h.cfg.JWTIssuer,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	logger.Info("Login accepted")
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt})
}

// passwordMatches prefers the bcrypt hash when configured and falls
// back to a constant-time comparison against the plaintext setting.
func (h *authHandler) passwordMatches(password string) bool {
	if h.cfg.SitePasswordHash != "" {
		return utils.CheckPasswordHash(password, h.cfg.SitePasswordHash)
	}
	if h.cfg.SitePassword == "" {
		return false
	}
	return utils.SecureCompare(password, h.cfg.SitePassword)
}
