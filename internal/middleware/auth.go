package middleware

import (
  "net/http"
  "strings"
  "github.com/gin-gonic/gin"
  "github.com/vyaparai/vyaparai-backend/internal/logger"
  "github.com/vyaparai/vyaparai-backend/internal/requestdata"
  "github.com/vyaparai/vyaparai-backend/internal/services"
)

type AuthMiddleware struct {
  log         *logger.Logger
  authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
  middlewareLogger := log.With("middleware", "AuthMiddleware")
  return &AuthMiddleware{log: middlewareLogger, authService: authService}
}

// RequireAuth distinguishes an absent credential (401) from a present but
// invalid or expired one (403).
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
  return func(c *gin.Context) {
    tokenString := extractBearerToken(c)
    if tokenString == "" {
      c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
      return
    }
    claims, err := am.authService.ParseToken(tokenString)
    if err != nil {
      am.log.Debug("Token rejected", "error", err)
      c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid or expired token"})
      return
    }
    rd := &requestdata.RequestData{
      UserID: claims.UserID,
      Email:  claims.Email,
      Role:   claims.Role,
    }
    ctx := requestdata.WithRequestData(c.Request.Context(), rd)
    c.Request = c.Request.WithContext(ctx)
    c.Next()
  }
}

func extractBearerToken(c *gin.Context) string {
  authHeader := c.GetHeader("Authorization")
  if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
    return authHeader[7:]
  }
  return ""
}
