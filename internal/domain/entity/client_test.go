package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "github.com/texthub/bulksms-portal/internal/domain/error"
	"github.com/texthub/bulksms-portal/mocks/port/core"
)

func TestNewClientUser(t *testing.T) {
	fixedTime := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

	t.Run("should create a sub-user with normalized email", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		user, err := NewClientUser(7, "  Ops Desk  ", "  Ops@Acme.Test  ", "$2a$10$hash", mockTimeProvider)
		assert.NoError(t, err)
		assert.Equal(t, uint64(7), user.ClientID)
		assert.Equal(t, "Ops Desk", user.Name)
		assert.Equal(t, "ops@acme.test", user.Email)
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("should allow an empty name", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		user, err := NewClientUser(7, "", "ops@acme.test", "$2a$10$hash", mockTimeProvider)
		assert.NoError(t, err)
		assert.Equal(t, "", user.Name)
	})

	t.Run("should reject zero client ID", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)

		user, err := NewClientUser(0, "Ops Desk", "ops@acme.test", "$2a$10$hash", mockTimeProvider)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrClientNotFound)
	})

	t.Run("should reject an oversized name", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)

		user, err := NewClientUser(7, strings.Repeat("x", 256), "ops@acme.test", "$2a$10$hash", mockTimeProvider)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("should reject a malformed email", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)

		user, err := NewClientUser(7, "Ops Desk", "not-an-email", "$2a$10$hash", mockTimeProvider)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrValidation)

		user, err = NewClientUser(7, "Ops Desk", "", "$2a$10$hash", mockTimeProvider)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("should reject an empty password hash", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)

		user, err := NewClientUser(7, "Ops Desk", "ops@acme.test", "", mockTimeProvider)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}
