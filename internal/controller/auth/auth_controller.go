package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/haminhduc/studygate/internal/controller/middleware"
	"github.com/haminhduc/studygate/internal/dto"
	"github.com/haminhduc/studygate/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login godoc
// @Summary Authenticate and receive a token
// @Description Verifies credentials and issues a signed token backed by a server-side session.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Email and password"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid credentials"})
			return
		}
		log.Error().Err(err).Msg("Login: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to log in"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary Revoke the current session
// @Description Revokes the session behind the presented token. The token is rejected on all subsequent requests even before its expiry.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StatusResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "No active session to revoke"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	claims := middleware.TokenClaims(ctx)

	revoked, err := c.authService.Logout(ctx.Request.Context(), claims.ID)
	if err != nil {
		log.Error().Err(err).Str("jti", claims.ID).Msg("Logout: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to log out"})
		return
	}
	if !revoked {
		// Nothing to revoke is a not-found condition, not a server fault.
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "No active session"})
		return
	}
	ctx.JSON(http.StatusOK, dto.StatusResponse{Status: "logged out"})
}
