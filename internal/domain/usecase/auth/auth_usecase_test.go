package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/texthub/bulksms-portal/internal/domain/entity"
	errs "github.com/texthub/bulksms-portal/internal/domain/error"
	"github.com/texthub/bulksms-portal/mocks/port/core"
	"github.com/texthub/bulksms-portal/mocks/port/persistence"
)

const testSecret = "test-secret-key-for-token-signing"

type stubVerifier struct {
	ok bool
}

func (v stubVerifier) Verify(hash, password string) bool {
	return v.ok
}

func fixedTimeProvider(t time.Time) *core.MockTimeProvider {
	tp := new(core.MockTimeProvider)
	tp.On("Now").Return(t).Maybe()
	return tp
}

func relaxedLogger() *core.MockLogger {
	l := new(core.MockLogger)
	l.On("Debug", mock.Anything, mock.Anything).Maybe()
	l.On("Info", mock.Anything, mock.Anything).Maybe()
	l.On("Warn", mock.Anything, mock.Anything).Maybe()
	l.On("Error", mock.Anything, mock.Anything).Maybe()
	return l
}

func TestService_AdminLogin(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

	admin := &entity.Admin{
		ID:           2,
		Name:         "System Administrator",
		Email:        "admin@bulksms.com",
		PasswordHash: "$2a$10$hash",
	}

	t.Run("should issue a token for valid credentials", func(t *testing.T) {
		mockAdminRepo := new(persistence.MockAdminRepository)
		mockAdminRepo.On("GetByEmail", ctx, "admin@bulksms.com").Return(admin, nil)

		service := NewService(
			mockAdminRepo, new(persistence.MockClientRepository),
			new(persistence.MockClientUserRepository),
			stubVerifier{ok: true}, fixedTimeProvider(fixedTime), relaxedLogger(),
			testSecret, 24*time.Hour,
		)

		result, err := service.AdminLogin(ctx, "admin@bulksms.com", "admin123")
		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, uint64(2), result.Principal.ID)
		assert.Equal(t, UserTypeAdmin, result.Principal.UserType)
	})

	t.Run("should normalize the email before lookup", func(t *testing.T) {
		mockAdminRepo := new(persistence.MockAdminRepository)
		mockAdminRepo.On("GetByEmail", ctx, "admin@bulksms.com").Return(admin, nil)

		service := NewService(
			mockAdminRepo, new(persistence.MockClientRepository),
			new(persistence.MockClientUserRepository),
			stubVerifier{ok: true}, fixedTimeProvider(fixedTime), relaxedLogger(),
			testSecret, 24*time.Hour,
		)

		_, err := service.AdminLogin(ctx, "  Admin@BulkSMS.com  ", "admin123")
		assert.NoError(t, err)
		mockAdminRepo.AssertExpectations(t)
	})

	t.Run("should reject a wrong password with a warning log", func(t *testing.T) {
		mockAdminRepo := new(persistence.MockAdminRepository)
		mockAdminRepo.On("GetByEmail", ctx, "admin@bulksms.com").Return(admin, nil)

		mockLogger := new(core.MockLogger)
		mockLogger.On("Warn", "Failed admin login attempt", mock.Anything).Once()

		service := NewService(
			mockAdminRepo, new(persistence.MockClientRepository),
			new(persistence.MockClientUserRepository),
			stubVerifier{ok: false}, fixedTimeProvider(fixedTime), mockLogger,
			testSecret, 24*time.Hour,
		)

		result, err := service.AdminLogin(ctx, "admin@bulksms.com", "wrong")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should map an unknown email to invalid credentials", func(t *testing.T) {
		mockAdminRepo := new(persistence.MockAdminRepository)
		mockAdminRepo.On("GetByEmail", ctx, "nobody@bulksms.com").Return(nil, errs.ErrAdminNotFound)

		service := NewService(
			mockAdminRepo, new(persistence.MockClientRepository),
			new(persistence.MockClientUserRepository),
			stubVerifier{ok: true}, fixedTimeProvider(fixedTime), relaxedLogger(),
			testSecret, 24*time.Hour,
		)

		result, err := service.AdminLogin(ctx, "nobody@bulksms.com", "admin123")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}

func TestService_ClientLogin(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

	client := &entity.Client{
		ID:           7,
		Name:         "Acme Corp",
		Email:        "billing@acme.test",
		PasswordHash: "$2a$10$hash",
	}

	t.Run("should issue a client token for valid credentials", func(t *testing.T) {
		mockClientRepo := new(persistence.MockClientRepository)
		mockClientRepo.On("GetByEmail", ctx, "billing@acme.test").Return(client, nil)

		service := NewService(
			new(persistence.MockAdminRepository), mockClientRepo,
			new(persistence.MockClientUserRepository),
			stubVerifier{ok: true}, fixedTimeProvider(fixedTime), relaxedLogger(),
			testSecret, 24*time.Hour,
		)

		result, err := service.ClientLogin(ctx, "billing@acme.test", "secret")
		assert.NoError(t, err)
		assert.Equal(t, uint64(7), result.Principal.ID)
		assert.Equal(t, UserTypeClient, result.Principal.UserType)
	})

	t.Run("should map an unknown email to invalid credentials", func(t *testing.T) {
		mockClientRepo := new(persistence.MockClientRepository)
		mockClientRepo.On("GetByEmail", ctx, "nobody@acme.test").Return(nil, errs.ErrClientNotFound)

		service := NewService(
			new(persistence.MockAdminRepository), mockClientRepo,
			new(persistence.MockClientUserRepository),
			stubVerifier{ok: true}, fixedTimeProvider(fixedTime), relaxedLogger(),
			testSecret, 24*time.Hour,
		)

		result, err := service.ClientLogin(ctx, "nobody@acme.test", "secret")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}

func TestService_ClientUserLogin(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

	subUser := &entity.ClientUser{
		ID:           31,
		ClientID:     7,
		Name:         "Ops Desk",
		Email:        "ops@acme.test",
		PasswordHash: "$2a$10$hash",
	}

	newService := func(userRepo *persistence.MockClientUserRepository, verifier stubVerifier, logger *core.MockLogger) *Service {
		return NewService(
			new(persistence.MockAdminRepository), new(persistence.MockClientRepository),
			userRepo,
			verifier, fixedTimeProvider(fixedTime), logger,
			testSecret, 24*time.Hour,
		)
	}

	t.Run("should issue a token bound to the parent client", func(t *testing.T) {
		mockUserRepo := new(persistence.MockClientUserRepository)
		mockUserRepo.On("GetByEmail", ctx, "ops@acme.test").Return(subUser, nil)

		service := newService(mockUserRepo, stubVerifier{ok: true}, relaxedLogger())

		result, err := service.ClientUserLogin(ctx, "ops@acme.test", "secret")
		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, uint64(31), result.Principal.ID)
		assert.Equal(t, UserTypeClientUser, result.Principal.UserType)
		assert.Equal(t, uint64(7), result.Principal.ClientID)
	})

	t.Run("should map an unknown email to invalid credentials", func(t *testing.T) {
		mockUserRepo := new(persistence.MockClientUserRepository)
		mockUserRepo.On("GetByEmail", ctx, "nobody@acme.test").Return(nil, errs.ErrClientUserNotFound)

		service := newService(mockUserRepo, stubVerifier{ok: true}, relaxedLogger())

		result, err := service.ClientUserLogin(ctx, "nobody@acme.test", "secret")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("should reject a wrong password with a warning log", func(t *testing.T) {
		mockUserRepo := new(persistence.MockClientUserRepository)
		mockUserRepo.On("GetByEmail", ctx, "ops@acme.test").Return(subUser, nil)

		mockLogger := new(core.MockLogger)
		mockLogger.On("Warn", "Failed client user login attempt", mock.Anything).Once()

		service := newService(mockUserRepo, stubVerifier{ok: false}, mockLogger)

		result, err := service.ClientUserLogin(ctx, "ops@acme.test", "wrong")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		mockLogger.AssertExpectations(t)
	})
}

func TestService_VerifyToken(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

	client := &entity.Client{
		ID:           7,
		Email:        "billing@acme.test",
		PasswordHash: "$2a$10$hash",
	}

	subUser := &entity.ClientUser{
		ID:           31,
		ClientID:     7,
		Email:        "ops@acme.test",
		PasswordHash: "$2a$10$hash",
	}

	newServiceAt := func(now time.Time) *Service {
		mockClientRepo := new(persistence.MockClientRepository)
		mockClientRepo.On("GetByEmail", mock.Anything, mock.Anything).Return(client, nil).Maybe()
		mockClientUserRepo := new(persistence.MockClientUserRepository)
		mockClientUserRepo.On("GetByEmail", mock.Anything, mock.Anything).Return(subUser, nil).Maybe()
		return NewService(
			new(persistence.MockAdminRepository), mockClientRepo,
			mockClientUserRepo,
			stubVerifier{ok: true}, fixedTimeProvider(now), relaxedLogger(),
			testSecret, 24*time.Hour,
		)
	}

	t.Run("should round trip an issued token", func(t *testing.T) {
		service := newServiceAt(fixedTime)

		result, err := service.ClientLogin(ctx, "billing@acme.test", "secret")
		assert.NoError(t, err)

		principal, err := service.VerifyToken(result.Token)
		assert.NoError(t, err)
		assert.Equal(t, uint64(7), principal.ID)
		assert.Equal(t, "billing@acme.test", principal.Email)
		assert.Equal(t, UserTypeClient, principal.UserType)
		assert.Equal(t, uint64(7), principal.ClientID)
	})

	t.Run("should carry the parent client through a sub-user token", func(t *testing.T) {
		service := newServiceAt(fixedTime)

		result, err := service.ClientUserLogin(ctx, "ops@acme.test", "secret")
		assert.NoError(t, err)

		principal, err := service.VerifyToken(result.Token)
		assert.NoError(t, err)
		assert.Equal(t, uint64(31), principal.ID)
		assert.Equal(t, UserTypeClientUser, principal.UserType)
		assert.Equal(t, uint64(7), principal.ClientID)
	})

	t.Run("should reject garbage tokens", func(t *testing.T) {
		service := newServiceAt(fixedTime)

		principal, err := service.VerifyToken("not.a.token")
		assert.Nil(t, principal)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)

		principal, err = service.VerifyToken("")
		assert.Nil(t, principal)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("should reject an expired token", func(t *testing.T) {
		issuer := newServiceAt(fixedTime)
		result, err := issuer.ClientLogin(ctx, "billing@acme.test", "secret")
		assert.NoError(t, err)

		later := newServiceAt(fixedTime.Add(48 * time.Hour))
		principal, err := later.VerifyToken(result.Token)
		assert.Nil(t, principal)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("should reject a token signed with a different secret", func(t *testing.T) {
		issuer := NewService(
			new(persistence.MockAdminRepository),
			func() *persistence.MockClientRepository {
				r := new(persistence.MockClientRepository)
				r.On("GetByEmail", mock.Anything, mock.Anything).Return(client, nil)
				return r
			}(),
			new(persistence.MockClientUserRepository),
			stubVerifier{ok: true}, fixedTimeProvider(fixedTime), relaxedLogger(),
			"some-other-secret", 24*time.Hour,
		)
		result, err := issuer.ClientLogin(ctx, "billing@acme.test", "secret")
		assert.NoError(t, err)

		verifier := newServiceAt(fixedTime)
		principal, err := verifier.VerifyToken(result.Token)
		assert.Nil(t, principal)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})
}
