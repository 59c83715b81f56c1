package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/texthub/bulksms-portal/internal/domain/error"
	coreport "github.com/texthub/bulksms-portal/internal/domain/port/core"
	authUseCase "github.com/texthub/bulksms-portal/internal/domain/usecase/auth"
	"github.com/texthub/bulksms-portal/internal/infrastructure/adapter/api/dto"
	"github.com/texthub/bulksms-portal/internal/infrastructure/adapter/api/middleware"
)

// AuthHandler handles login requests for admins and clients
type AuthHandler struct {
	authService *authUseCase.Service
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authService *authUseCase.Service, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// AdminLogin handles POST /api/auth/admin/login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	h.login(c, h.authService.AdminLogin)
}

// ClientLogin handles POST /api/auth/client/login
func (h *AuthHandler) ClientLogin(c *gin.Context) {
	h.login(c, h.authService.ClientLogin)
}

// ClientUserLogin handles POST /api/auth/client-user/login
func (h *AuthHandler) ClientUserLogin(c *gin.Context) {
	h.login(c, h.authService.ClientUserLogin)
}

// Verify handles GET /api/auth/verify. The token was already validated by
// the auth middleware; this just echoes the principal back.
func (h *AuthHandler) Verify(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidToken),
			Message: "Missing authentication",
		})
		return
	}

	respondSuccess(c, http.StatusOK, "Token is valid", gin.H{
		"user": dto.UserResponse{
			ID:       principal.ID,
			Email:    principal.Email,
			UserType: string(principal.UserType),
			ClientID: principal.ClientID,
		},
	})
}

func (h *AuthHandler) login(
	c *gin.Context,
	authenticate func(ctx context.Context, email, password string) (*authUseCase.LoginResult, error),
) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Login successful", dto.LoginResponse{
		Token: result.Token,
		User: dto.UserResponse{
			ID:       result.Principal.ID,
			Email:    result.Principal.Email,
			UserType: string(result.Principal.UserType),
			ClientID: result.Principal.ClientID,
		},
	})
}
