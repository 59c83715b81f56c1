package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainerr "github.com/texthub/bulksms-portal/internal/domain/error"
	authUseCase "github.com/texthub/bulksms-portal/internal/domain/usecase/auth"
	"github.com/texthub/bulksms-portal/internal/infrastructure/adapter/api/dto"
)

const principalKey = "principal"

// RequireAuth validates the bearer token and requires one of the given
// user types. The authenticated principal is stored on the gin context
// for handlers.
func RequireAuth(authService *authUseCase.Service, userTypes ...authUseCase.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidToken),
				Message: "Missing or malformed authorization header",
			})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		principal, err := authService.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidToken),
				Message: "Invalid or expired token",
			})
			return
		}
		allowed := false
		for _, userType := range userTypes {
			if principal.UserType == userType {
				allowed = true
				break
			}
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrForbidden),
				Message: "Insufficient permissions",
			})
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// PrincipalFromContext returns the authenticated principal set by RequireAuth
func PrincipalFromContext(c *gin.Context) (*authUseCase.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*authUseCase.Principal)
	return principal, ok
}
