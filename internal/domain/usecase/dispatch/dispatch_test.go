package dispatch

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/texthub/bulksms-portal/internal/domain/entity"
	errs "github.com/texthub/bulksms-portal/internal/domain/error"
	gatewayport "github.com/texthub/bulksms-portal/internal/domain/port/gateway"
	"github.com/texthub/bulksms-portal/mocks/port/core"
	gatewaymocks "github.com/texthub/bulksms-portal/mocks/port/gateway"
	"github.com/texthub/bulksms-portal/mocks/port/persistence"
)

type dispatchFixture struct {
	contactRepo *persistence.MockContactRepository
	balanceRepo *persistence.MockBalanceRepository
	historyRepo *persistence.MockHistoryRepository
	gateway     *gatewaymocks.MockSMSGateway
	service     *Service
}

func newDispatchFixture(fixedTime time.Time) *dispatchFixture {
	mockTimeProvider := new(core.MockTimeProvider)
	mockTimeProvider.On("Now").Return(fixedTime).Maybe()
	mockTimeProvider.On("Since", fixedTime).Return(150 * time.Millisecond).Maybe()
	mockTimeProvider.On("WithTimeout", mock.Anything, mock.Anything).
		Return(context.Background(), context.CancelFunc(func() {})).Maybe()

	mockLogger := new(core.MockLogger)
	mockLogger.On("Debug", mock.Anything, mock.Anything).Maybe()
	mockLogger.On("Info", mock.Anything, mock.Anything).Maybe()
	mockLogger.On("Warn", mock.Anything, mock.Anything).Maybe()
	mockLogger.On("Error", mock.Anything, mock.Anything).Maybe()

	f := &dispatchFixture{
		contactRepo: new(persistence.MockContactRepository),
		balanceRepo: new(persistence.MockBalanceRepository),
		historyRepo: new(persistence.MockHistoryRepository),
		gateway:     new(gatewaymocks.MockSMSGateway),
	}
	f.service = NewService(
		f.contactRepo, f.balanceRepo, f.historyRepo, f.gateway,
		mockTimeProvider, mockLogger,
	)
	return f
}

func testContacts(clientID uint64, n int) []*entity.Contact {
	contacts := make([]*entity.Contact, 0, n)
	for i := 1; i <= n; i++ {
		contacts = append(contacts, &entity.Contact{
			ID:       uint64(i),
			ClientID: clientID,
			Name:     "Contact",
			Phone:    "+1555010000" + string(rune('0'+i)),
		})
	}
	return contacts
}

func TestService_Dispatch(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

	t.Run("should debit only successful sends on partial failure", func(t *testing.T) {
		f := newDispatchFixture(fixedTime)
		contacts := testContacts(1, 3)
		bal, _ := entity.RestoreBalance(1, 1000, fixedTime, fixedTime)

		f.contactRepo.On("GetByIDs", ctx, uint64(1), []uint64{1, 2, 3}).Return(contacts, nil)
		f.balanceRepo.On("GetByClientID", ctx, uint64(1)).Return(bal, nil)
		f.gateway.On("Send", mock.Anything, contacts[0].Phone, "hello").
			Return(gatewayport.SendResult{Success: true, MessageID: "msg-1"}, nil)
		f.gateway.On("Send", mock.Anything, contacts[1].Phone, "hello").
			Return(gatewayport.SendResult{Success: false, Error: "number unreachable"}, nil)
		f.gateway.On("Send", mock.Anything, contacts[2].Phone, "hello").
			Return(gatewayport.SendResult{Success: true, MessageID: "msg-3"}, nil)
		f.balanceRepo.On("Debit", ctx, uint64(1), int64(2)).Return(int64(998), nil)
		f.historyRepo.On("Create", ctx, mock.MatchedBy(func(entry *entity.HistoryEntry) bool {
			return entry.ClientID == 1 &&
				entry.Message == "hello" &&
				entry.RecipientCount == 3 &&
				entry.CreditsUsed == 2 &&
				entry.Status == entity.HistorySent
		})).Return(nil)

		report, err := f.service.Dispatch(ctx, Request{
			ClientID:   1,
			Message:    "hello",
			ContactIDs: []uint64{1, 2, 3},
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, report.TotalContacts)
		assert.Equal(t, 2, report.SentCount)
		assert.Equal(t, 1, report.FailedCount)
		assert.Equal(t, int64(2), report.CreditsUsed)
		assert.Equal(t, int64(998), report.RemainingBalance)
		assert.Len(t, report.SentMessages, 2)
		assert.Len(t, report.FailedMessages, 1)
		assert.Equal(t, "number unreachable", report.FailedMessages[0].Error)

		f.balanceRepo.AssertExpectations(t)
		f.historyRepo.AssertExpectations(t)
	})

	t.Run("should leave no trace when every send fails", func(t *testing.T) {
		f := newDispatchFixture(fixedTime)
		contacts := testContacts(1, 2)
		bal, _ := entity.RestoreBalance(1, 1000, fixedTime, fixedTime)

		f.contactRepo.On("GetByIDs", ctx, uint64(1), []uint64{1, 2}).Return(contacts, nil)
		f.balanceRepo.On("GetByClientID", ctx, uint64(1)).Return(bal, nil)
		f.gateway.On("Send", mock.Anything, mock.Anything, "hello").
			Return(gatewayport.SendResult{Success: false, Error: "provider down"}, nil)

		report, err := f.service.Dispatch(ctx, Request{
			ClientID:   1,
			Message:    "hello",
			ContactIDs: []uint64{1, 2},
		})

		assert.NoError(t, err)
		assert.Equal(t, 0, report.SentCount)
		assert.Equal(t, 2, report.FailedCount)
		assert.Equal(t, int64(0), report.CreditsUsed)
		assert.Equal(t, int64(1000), report.RemainingBalance)

		f.balanceRepo.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything, mock.Anything)
		f.historyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should count transport errors as failures", func(t *testing.T) {
		f := newDispatchFixture(fixedTime)
		contacts := testContacts(1, 1)
		bal, _ := entity.RestoreBalance(1, 10, fixedTime, fixedTime)

		f.contactRepo.On("GetByIDs", ctx, uint64(1), []uint64{1}).Return(contacts, nil)
		f.balanceRepo.On("GetByClientID", ctx, uint64(1)).Return(bal, nil)
		f.gateway.On("Send", mock.Anything, contacts[0].Phone, "hello").
			Return(gatewayport.SendResult{}, context.DeadlineExceeded)

		report, err := f.service.Dispatch(ctx, Request{
			ClientID:   1,
			Message:    "hello",
			ContactIDs: []uint64{1},
		})

		assert.NoError(t, err)
		assert.Equal(t, 0, report.SentCount)
		assert.Equal(t, 1, report.FailedCount)
		assert.Contains(t, report.FailedMessages[0].Error, "deadline")
	})

	t.Run("should fail fast on insufficient balance before any send", func(t *testing.T) {
		f := newDispatchFixture(fixedTime)
		contacts := testContacts(1, 5)
		bal, _ := entity.RestoreBalance(1, 3, fixedTime, fixedTime)

		f.contactRepo.On("GetByIDs", ctx, uint64(1), []uint64{1, 2, 3, 4, 5}).Return(contacts, nil)
		f.balanceRepo.On("GetByClientID", ctx, uint64(1)).Return(bal, nil)

		report, err := f.service.Dispatch(ctx, Request{
			ClientID:   1,
			Message:    "hello",
			ContactIDs: []uint64{1, 2, 3, 4, 5},
		})

		assert.Nil(t, report)
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)

		var detail *errs.InsufficientBalanceError
		assert.ErrorAs(t, err, &detail)
		assert.Equal(t, int64(5), detail.Required)
		assert.Equal(t, int64(3), detail.Available)

		f.gateway.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
		f.balanceRepo.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should reject a recipient set with foreign or missing contacts", func(t *testing.T) {
		f := newDispatchFixture(fixedTime)
		contacts := testContacts(1, 2)

		f.contactRepo.On("GetByIDs", ctx, uint64(1), []uint64{1, 2, 99}).Return(contacts, nil)

		report, err := f.service.Dispatch(ctx, Request{
			ClientID:   1,
			Message:    "hello",
			ContactIDs: []uint64{1, 2, 99},
		})

		assert.Nil(t, report)
		assert.ErrorIs(t, err, errs.ErrPartialOwnership)

		var detail *errs.PartialOwnershipError
		assert.ErrorAs(t, err, &detail)
		assert.Equal(t, 3, detail.Requested)
		assert.Equal(t, 2, detail.Resolved)

		f.gateway.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
		f.balanceRepo.AssertNotCalled(t, "GetByClientID", mock.Anything, mock.Anything)
	})

	t.Run("should send to every contact when sendToAll is set", func(t *testing.T) {
		f := newDispatchFixture(fixedTime)
		contacts := testContacts(1, 2)
		bal, _ := entity.RestoreBalance(1, 100, fixedTime, fixedTime)

		f.contactRepo.On("ListByClient", ctx, uint64(1)).Return(contacts, nil)
		f.balanceRepo.On("GetByClientID", ctx, uint64(1)).Return(bal, nil)
		f.gateway.On("Send", mock.Anything, mock.Anything, "hello").
			Return(gatewayport.SendResult{Success: true, MessageID: "msg"}, nil)
		f.balanceRepo.On("Debit", ctx, uint64(1), int64(2)).Return(int64(98), nil)
		f.historyRepo.On("Create", ctx, mock.Anything).Return(nil)

		report, err := f.service.Dispatch(ctx, Request{
			ClientID:  1,
			Message:   "hello",
			SendToAll: true,
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, report.SentCount)
		f.contactRepo.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should reject sendToAll with an empty contact book", func(t *testing.T) {
		f := newDispatchFixture(fixedTime)

		f.contactRepo.On("ListByClient", ctx, uint64(1)).Return([]*entity.Contact{}, nil)

		report, err := f.service.Dispatch(ctx, Request{
			ClientID:  1,
			Message:   "hello",
			SendToAll: true,
		})

		assert.Nil(t, report)
		assert.ErrorIs(t, err, errs.ErrNoRecipients)
	})

	t.Run("should surface a post-send debit failure", func(t *testing.T) {
		f := newDispatchFixture(fixedTime)
		contacts := testContacts(1, 1)
		bal, _ := entity.RestoreBalance(1, 1, fixedTime, fixedTime)

		f.contactRepo.On("GetByIDs", ctx, uint64(1), []uint64{1}).Return(contacts, nil)
		f.balanceRepo.On("GetByClientID", ctx, uint64(1)).Return(bal, nil)
		f.gateway.On("Send", mock.Anything, contacts[0].Phone, "hello").
			Return(gatewayport.SendResult{Success: true, MessageID: "msg"}, nil)
		f.balanceRepo.On("Debit", ctx, uint64(1), int64(1)).
			Return(int64(0), errs.NewInsufficientBalanceError(1, 1, 0))

		report, err := f.service.Dispatch(ctx, Request{
			ClientID:   1,
			Message:    "hello",
			ContactIDs: []uint64{1},
		})

		assert.Nil(t, report)
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		f.historyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestService_Dispatch_Validation(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  Request
		want error
	}{
		{
			name: "zero client ID",
			req:  Request{ClientID: 0, Message: "hello", SendToAll: true},
			want: errs.ErrClientNotFound,
		},
		{
			name: "empty message",
			req:  Request{ClientID: 1, Message: "   ", SendToAll: true},
			want: errs.ErrEmptyMessage,
		},
		{
			name: "message too long",
			req:  Request{ClientID: 1, Message: strings.Repeat("a", entity.MaxMessageLength+1), SendToAll: true},
			want: errs.ErrMessageTooLong,
		},
		{
			name: "no recipients selected",
			req:  Request{ClientID: 1, Message: "hello"},
			want: errs.ErrNoRecipients,
		},
		{
			name: "zero contact ID in selection",
			req:  Request{ClientID: 1, Message: "hello", ContactIDs: []uint64{1, 0}},
			want: errs.ErrPartialOwnership,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDispatchFixture(fixedTime)

			report, err := f.service.Dispatch(ctx, tt.req)
			assert.Nil(t, report)
			assert.ErrorIs(t, err, tt.want)

			f.contactRepo.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything, mock.Anything)
			f.contactRepo.AssertNotCalled(t, "ListByClient", mock.Anything, mock.Anything)
			f.gateway.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestValidator_Validate(t *testing.T) {
	validator := NewValidator()

	t.Run("should accept a well formed targeted request", func(t *testing.T) {
		assert.NoError(t, validator.Validate(1, "hello", false, []uint64{1, 2}))
	})

	t.Run("should accept a well formed broadcast request", func(t *testing.T) {
		assert.NoError(t, validator.Validate(1, "hello", true, nil))
	})

	t.Run("should reject a message over the length limit", func(t *testing.T) {
		long := strings.Repeat("a", entity.MaxMessageLength+1)
		assert.ErrorIs(t, validator.Validate(1, long, false, []uint64{1}), errs.ErrMessageTooLong)
	})
}
