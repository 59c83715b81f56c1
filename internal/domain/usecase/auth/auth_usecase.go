package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/texthub/bulksms-portal/internal/domain/error"
	coreport "github.com/texthub/bulksms-portal/internal/domain/port/core"
	"github.com/texthub/bulksms-portal/internal/domain/port/persistence"
)

// UserType distinguishes the principals the portal issues tokens for
type UserType string

// Principal types carried in token claims
const (
	UserTypeAdmin      UserType = "admin"
	UserTypeClient     UserType = "client"
	UserTypeClientUser UserType = "client_user"
)

// PasswordVerifier is the credential-hashing collaborator boundary
type PasswordVerifier interface {
	Verify(hash, password string) bool
}

// Claims are the JWT claims issued by the portal. ClientID names the
// tenant the principal acts for; for sub-users it is the parent client.
type Claims struct {
	UserType UserType `json:"userType"`
	Email    string   `json:"email"`
	ClientID uint64   `json:"clientId,omitempty"`
	jwt.RegisteredClaims
}

// Principal is an authenticated identity extracted from a verified token.
// ClientID is the tenant whose data the principal may touch: the client's
// own ID for clients, the parent client for sub-users, zero for admins.
type Principal struct {
	ID       uint64
	Email    string
	UserType UserType
	ClientID uint64
}

// Service authenticates admins and clients and issues bearer tokens.
// The core trusts the IDs this service extracts; no other component
// performs authentication.
type Service struct {
	adminRepo      persistence.AdminRepository
	clientRepo     persistence.ClientRepository
	clientUserRepo persistence.ClientUserRepository
	verifier       PasswordVerifier
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
	secret         []byte
	tokenTTL       time.Duration
}

// NewService creates an auth service
func NewService(
	adminRepo persistence.AdminRepository,
	clientRepo persistence.ClientRepository,
	clientUserRepo persistence.ClientUserRepository,
	verifier PasswordVerifier,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	secret string,
	tokenTTL time.Duration,
) *Service {
	return &Service{
		adminRepo:      adminRepo,
		clientRepo:     clientRepo,
		clientUserRepo: clientUserRepo,
		verifier:       verifier,
		timeProvider:   timeProvider,
		logger:         logger,
		secret:         []byte(secret),
		tokenTTL:       tokenTTL,
	}
}

// LoginResult carries the issued token and the authenticated principal
type LoginResult struct {
	Token     string
	Principal Principal
}

// AdminLogin authenticates an administrator and issues a token
func (s *Service) AdminLogin(ctx context.Context, email, password string) (*LoginResult, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.verifier.Verify(admin.PasswordHash, password) {
		s.logger.Warn("Failed admin login attempt", map[string]any{"email": email})
		return nil, errs.ErrInvalidCredentials
	}
	return s.issue(admin.ID, admin.Email, UserTypeAdmin, 0)
}

// ClientLogin authenticates a client and issues a token
func (s *Service) ClientLogin(ctx context.Context, email, password string) (*LoginResult, error) {
	client, err := s.clientRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.verifier.Verify(client.PasswordHash, password) {
		s.logger.Warn("Failed client login attempt", map[string]any{"email": email})
		return nil, errs.ErrInvalidCredentials
	}
	return s.issue(client.ID, client.Email, UserTypeClient, client.ID)
}

// ClientUserLogin authenticates a sub-user and issues a token bound to the
// parent client's tenant
func (s *Service) ClientUserLogin(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.clientUserRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.verifier.Verify(user.PasswordHash, password) {
		s.logger.Warn("Failed client user login attempt", map[string]any{"email": email})
		return nil, errs.ErrInvalidCredentials
	}
	return s.issue(user.ID, user.Email, UserTypeClientUser, user.ClientID)
}

// issue signs a token for the authenticated principal
func (s *Service) issue(id uint64, email string, userType UserType, clientID uint64) (*LoginResult, error) {
	now := s.timeProvider.Now()
	claims := Claims{
		UserType: userType,
		Email:    email,
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", id),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("%w: signing token: %s", errs.ErrInternalServer, err.Error())
	}

	return &LoginResult{
		Token:     token,
		Principal: Principal{ID: id, Email: email, UserType: userType, ClientID: clientID},
	}, nil
}

// VerifyToken parses and validates a bearer token, returning its principal
func (s *Service) VerifyToken(tokenString string) (*Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.timeProvider.Now))
	if err != nil || !token.Valid {
		return nil, errs.ErrInvalidToken
	}

	var id uint64
	if _, err := fmt.Sscanf(claims.Subject, "%d", &id); err != nil || id == 0 {
		return nil, errs.ErrInvalidToken
	}
	switch claims.UserType {
	case UserTypeAdmin, UserTypeClient, UserTypeClientUser:
	default:
		return nil, errs.ErrInvalidToken
	}

	return &Principal{
		ID:       id,
		Email:    claims.Email,
		UserType: claims.UserType,
		ClientID: claims.ClientID,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
