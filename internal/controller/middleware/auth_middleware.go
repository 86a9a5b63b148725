package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/haminhduc/studygate/internal/dto"
	"github.com/haminhduc/studygate/internal/service"
	"github.com/rs/zerolog/log"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxClaimsKey = "authClaims"
	CtxUserIDKey = "authUserID"
)

// Auth validates the bearer token on every request and stores the claims in
// the gin context. All authentication failures collapse into one 401: the
// client never learns whether the token was malformed, expired, or revoked.
func Auth(tokenSvc service.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "unauthorized"})
			return
		}

		claims, err := tokenSvc.Validate(ctx.Request.Context(), tokenString)
		if err != nil {
			if errors.Is(err, service.ErrInvalidToken) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "unauthorized"})
				return
			}
			log.Error().Err(err).Msg("Auth middleware: session lookup failed")
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "internal server error"})
			return
		}

		ctx.Set(CtxClaimsKey, claims)
		ctx.Set(CtxUserIDKey, claims.UserID)
		ctx.Next()
	}
}

// UserID reads the authenticated user id placed by Auth.
func UserID(ctx *gin.Context) uint {
	return ctx.MustGet(CtxUserIDKey).(uint)
}

// TokenClaims reads the full claims placed by Auth.
func TokenClaims(ctx *gin.Context) *service.Claims {
	return ctx.MustGet(CtxClaimsKey).(*service.Claims)
}
