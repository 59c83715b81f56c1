package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "github.com/texthub/bulksms-portal/internal/domain/error"
	"github.com/texthub/bulksms-portal/mocks/port/core"
)

func TestNewContact(t *testing.T) {
	fixedTime := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

	t.Run("should create a contact with normalized phone", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		contact, err := NewContact(1, "  Alice  ", "+1 (555) 010-0001", mockTimeProvider)
		assert.NoError(t, err)
		assert.Equal(t, "Alice", contact.Name)
		assert.Equal(t, "+15550100001", contact.Phone)
		assert.Equal(t, fixedTime, contact.CreatedAt)
	})

	t.Run("should reject zero client ID", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)

		contact, err := NewContact(0, "Alice", "+15550100001", mockTimeProvider)
		assert.Nil(t, contact)
		assert.ErrorIs(t, err, errs.ErrClientNotFound)
	})

	t.Run("should reject empty or oversized name", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)

		contact, err := NewContact(1, "   ", "+15550100001", mockTimeProvider)
		assert.Nil(t, contact)
		assert.ErrorIs(t, err, errs.ErrValidation)

		contact, err = NewContact(1, strings.Repeat("x", 256), "+15550100001", mockTimeProvider)
		assert.Nil(t, contact)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestNormalizePhone(t *testing.T) {
	t.Run("should accept plain digits", func(t *testing.T) {
		normalized, err := NormalizePhone("5550100001234")
		assert.NoError(t, err)
		assert.Equal(t, "5550100001234", normalized)
	})

	t.Run("should keep a leading plus", func(t *testing.T) {
		normalized, err := NormalizePhone("+495550100001")
		assert.NoError(t, err)
		assert.Equal(t, "+495550100001", normalized)
	})

	t.Run("should strip separators", func(t *testing.T) {
		normalized, err := NormalizePhone("+1 (555) 010-00 01")
		assert.NoError(t, err)
		assert.Equal(t, "+15550100001", normalized)
	})

	t.Run("should reject letters and misplaced plus", func(t *testing.T) {
		_, err := NormalizePhone("555call-me-01")
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = NormalizePhone("555+0100001234")
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("should enforce digit count bounds", func(t *testing.T) {
		_, err := NormalizePhone("123456789")
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = NormalizePhone("+" + strings.Repeat("9", 21))
		assert.ErrorIs(t, err, errs.ErrValidation)

		normalized, err := NormalizePhone(strings.Repeat("9", 20))
		assert.NoError(t, err)
		assert.Equal(t, strings.Repeat("9", 20), normalized)
	})
}
