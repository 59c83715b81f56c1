package balance

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

func relaxedLogger() *core.MockLogger {
	l := new(core.MockLogger)
	l.On("Debug", mock.Anything, mock.Anything).Maybe()
	l.On("Info", mock.Anything, mock.Anything).Maybe()
	l.On("Warn", mock.Anything, mock.Anything).Maybe()
	l.On("Error", mock.Anything, mock.Anything).Maybe()
	return l
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

	t.Run("should return the client balance", func(t *testing.T) {
		mockRepo := new(persistence.MockBalanceRepository)
		bal, _ := entity.RestoreBalance(1, 250, fixedTime, fixedTime)
		mockRepo.On("GetByClientID", ctx, uint64(1)).Return(bal, nil)

		service := NewService(mockRepo, relaxedLogger())

		got, err := service.Get(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(250), got.Available())
		mockRepo.AssertExpectations(t)
	})

	t.Run("should reject zero client ID without touching the repository", func(t *testing.T) {
		mockRepo := new(persistence.MockBalanceRepository)
		service := NewService(mockRepo, relaxedLogger())

		got, err := service.Get(ctx, 0)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, errs.ErrClientNotFound)
		mockRepo.AssertNotCalled(t, "GetByClientID")
	})
}

func TestService_Credit(t *testing.T) {
	ctx := context.Background()

	t.Run("should credit and return the new balance", func(t *testing.T) {
		mockRepo := new(persistence.MockBalanceRepository)
		mockRepo.On("Credit", ctx, uint64(1), int64(500)).Return(int64(750), nil)

		service := NewService(mockRepo, relaxedLogger())

		newBalance, err := service.Credit(ctx, 1, 500)
		assert.NoError(t, err)
		assert.Equal(t, int64(750), newBalance)
		mockRepo.AssertExpectations(t)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		mockRepo := new(persistence.MockBalanceRepository)
		service := NewService(mockRepo, relaxedLogger())

		_, err := service.Credit(ctx, 1, 0)
		assert.ErrorIs(t, err, errs.ErrInvalidQuantity)

		_, err = service.Credit(ctx, 1, -10)
		assert.ErrorIs(t, err, errs.ErrInvalidQuantity)

		mockRepo.AssertNotCalled(t, "Credit")
	})

	t.Run("should reject zero client ID", func(t *testing.T) {
		mockRepo := new(persistence.MockBalanceRepository)
		service := NewService(mockRepo, relaxedLogger())

		_, err := service.Credit(ctx, 0, 100)
		assert.ErrorIs(t, err, errs.ErrClientNotFound)
		mockRepo.AssertNotCalled(t, "Credit")
	})
}

func TestService_Debit(t *testing.T) {
	ctx := context.Background()

	t.Run("should debit and return the new balance", func(t *testing.T) {
		mockRepo := new(persistence.MockBalanceRepository)
		mockRepo.On("Debit", ctx, uint64(1), int64(2)).Return(int64(998), nil)

		service := NewService(mockRepo, relaxedLogger())

		newBalance, err := service.Debit(ctx, 1, 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(998), newBalance)
		mockRepo.AssertExpectations(t)
	})

	t.Run("should surface insufficient balance from the repository", func(t *testing.T) {
		mockRepo := new(persistence.MockBalanceRepository)
		mockRepo.On("Debit", ctx, uint64(1), int64(50)).
			Return(int64(0), errs.NewInsufficientBalanceError(1, 50, 10))

		mockLogger := new(core.MockLogger)
		mockLogger.On("Warn", "Debit rejected, insufficient balance", mock.Anything).Once()

		service := NewService(mockRepo, mockLogger)

		_, err := service.Debit(ctx, 1, 50)
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		mockRepo.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		mockRepo := new(persistence.MockBalanceRepository)
		service := NewService(mockRepo, relaxedLogger())

		_, err := service.Debit(ctx, 1, 0)
		assert.ErrorIs(t, err, errs.ErrInvalidQuantity)
		mockRepo.AssertNotCalled(t, "Debit")
	})
}

func TestService_HasSufficient(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

	t.Run("should report sufficiency from the stored balance", func(t *testing.T) {
		mockRepo := new(persistence.MockBalanceRepository)
		bal, _ := entity.RestoreBalance(1, 10, fixedTime, fixedTime)
		mockRepo.On("GetByClientID", ctx, uint64(1)).Return(bal, nil)

		service := NewService(mockRepo, relaxedLogger())

		ok, err := service.HasSufficient(ctx, 1, 10)
		assert.NoError(t, err)
		assert.True(t, ok)

		ok, err = service.HasSufficient(ctx, 1, 11)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should surface a missing balance record", func(t *testing.T) {
		mockRepo := new(persistence.MockBalanceRepository)
		mockRepo.On("GetByClientID", ctx, uint64(9)).Return(nil, errs.ErrBalanceNotFound)

		service := NewService(mockRepo, relaxedLogger())

		_, err := service.HasSufficient(ctx, 9, 1)
		assert.ErrorIs(t, err, errs.ErrBalanceNotFound)
	})
}
