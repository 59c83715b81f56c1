package contact

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/texthub/bulksms-portal/internal/domain/entity"
	errs "github.com/texthub/bulksms-portal/internal/domain/error"
	"github.com/texthub/bulksms-portal/mocks/port/persistence"
)

func TestService_ImportCSV(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

	t.Run("should create valid lines and skip the rest", func(t *testing.T) {
		mockRepo := new(persistence.MockContactRepository)
		mockRepo.On("ExistsByPhone", ctx, uint64(1), mock.Anything).Return(false, nil)
		mockRepo.On("Create", ctx, mock.Anything).Return(nil)

		service := newTestService(mockRepo, fixedTime)

		data := "Alice,+15550100001\nBob,+15550100002\nNoPhone\n,+15550100003\n"
		result, err := service.ImportCSV(ctx, 1, data)

		assert.NoError(t, err)
		assert.Equal(t, 2, result.Created)
		assert.Equal(t, 2, result.Skipped)
		assert.Len(t, result.CreatedContacts, 2)
		assert.Equal(t, "invalid format - name and phone required", result.SkippedLines[0].Reason)
		assert.Equal(t, "invalid format - name and phone required", result.SkippedLines[1].Reason)
	})

	t.Run("should tolerate a header row", func(t *testing.T) {
		mockRepo := new(persistence.MockContactRepository)
		mockRepo.On("ExistsByPhone", ctx, uint64(1), "+15550100001").Return(false, nil)
		mockRepo.On("Create", ctx, mock.Anything).Return(nil)

		service := newTestService(mockRepo, fixedTime)

		result, err := service.ImportCSV(ctx, 1, "Name,Phone\nAlice,+15550100001\n")
		assert.NoError(t, err)
		assert.Equal(t, 1, result.Created)
		assert.Equal(t, 0, result.Skipped)
	})

	t.Run("should skip duplicate phones with a reason", func(t *testing.T) {
		mockRepo := new(persistence.MockContactRepository)
		mockRepo.On("ExistsByPhone", ctx, uint64(1), "+15550100001").Return(false, nil)
		mockRepo.On("ExistsByPhone", ctx, uint64(1), "+15550100002").Return(true, nil)
		mockRepo.On("Create", ctx, mock.MatchedBy(func(c *entity.Contact) bool {
			return c.Phone == "+15550100001"
		})).Return(nil)

		service := newTestService(mockRepo, fixedTime)

		result, err := service.ImportCSV(ctx, 1, "Alice,+15550100001\nBob,+15550100002\n")
		assert.NoError(t, err)
		assert.Equal(t, 1, result.Created)
		assert.Equal(t, 1, result.Skipped)
		assert.Equal(t, "phone number already exists", result.SkippedLines[0].Reason)
		assert.Equal(t, "Bob", result.SkippedLines[0].Name)
	})

	t.Run("should skip invalid phones with a reason", func(t *testing.T) {
		mockRepo := new(persistence.MockContactRepository)
		service := newTestService(mockRepo, fixedTime)

		result, err := service.ImportCSV(ctx, 1, "Alice,not-a-phone\n")
		assert.NoError(t, err)
		assert.Equal(t, 0, result.Created)
		assert.Equal(t, 1, result.Skipped)
		assert.Equal(t, "invalid name or phone", result.SkippedLines[0].Reason)
	})

	t.Run("should reject empty input", func(t *testing.T) {
		mockRepo := new(persistence.MockContactRepository)
		service := newTestService(mockRepo, fixedTime)

		result, err := service.ImportCSV(ctx, 1, "   \n  ")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("should reject zero client ID", func(t *testing.T) {
		mockRepo := new(persistence.MockContactRepository)
		service := newTestService(mockRepo, fixedTime)

		result, err := service.ImportCSV(ctx, 0, "Alice,+15550100001")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrClientNotFound)
	})
}

func TestService_ExportCSV(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

	t.Run("should write a header and one row per contact", func(t *testing.T) {
		mockRepo := new(persistence.MockContactRepository)
		mockRepo.On("ListByClient", ctx, uint64(1)).Return([]*entity.Contact{
			{ID: 1, ClientID: 1, Name: "Alice", Phone: "+15550100001"},
			{ID: 2, ClientID: 1, Name: "Bob", Phone: "+15550100002"},
		}, nil)

		service := newTestService(mockRepo, fixedTime)

		var buf bytes.Buffer
		err := service.ExportCSV(ctx, 1, &buf)
		assert.NoError(t, err)
		assert.Equal(t, "Name,Phone\nAlice,+15550100001\nBob,+15550100002\n", buf.String())
	})

	t.Run("should write only the header for an empty contact book", func(t *testing.T) {
		mockRepo := new(persistence.MockContactRepository)
		mockRepo.On("ListByClient", ctx, uint64(1)).Return([]*entity.Contact{}, nil)

		service := newTestService(mockRepo, fixedTime)

		var buf bytes.Buffer
		err := service.ExportCSV(ctx, 1, &buf)
		assert.NoError(t, err)
		assert.Equal(t, "Name,Phone\n", buf.String())
	})
}
