package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/tradenet-api/internal/application/service"
	"github.com/sangkips/tradenet-api/internal/presentation/http/dto/response"
	"github.com/sangkips/tradenet-api/internal/presentation/http/handler"
	"github.com/sangkips/tradenet-api/pkg/apperror"
)

// AuthMiddleware requires a valid bearer access token of an active user.
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, apperror.ErrNotAuthenticated)
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Error(c, apperror.ErrNotAuthenticated)
			return
		}

		user, err := authService.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			response.Error(c, err)
			return
		}

		c.Set(handler.UserKey, user)
		c.Next()
	}
}

// RequireAdmin lets only staff accounts through. It must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := handler.GetUser(c)
		if user == nil {
			response.Error(c, apperror.ErrNotAuthenticated)
			return
		}
		if !user.IsAdmin() {
			response.Error(c, apperror.ErrForbidden)
			return
		}
		c.Next()
	}
}
