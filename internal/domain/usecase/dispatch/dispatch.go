package dispatch

import (
	"context"
	"time"

	"github.com/texthub/bulksms-portal/internal/domain/entity"
	errs "github.com/texthub/bulksms-portal/internal/domain/error"
	coreport "github.com/texthub/bulksms-portal/internal/domain/port/core"
	"github.com/texthub/bulksms-portal/internal/domain/port/gateway"
	"github.com/texthub/bulksms-portal/internal/domain/port/persistence"
)

// Default tuning for gateway fan-out
const (
	DefaultConcurrency    = 8
	DefaultGatewayTimeout = 10 * time.Second
)

// Service is the Dispatch Coordinator. It turns (client, message, recipient
// selection) into gateway delivery attempts and a reconciled balance debit:
// only successful sends consume credit, and a batch with zero successes
// leaves no trace in the ledger or history.
type Service struct {
	contactRepo    persistence.ContactRepository
	balanceRepo    persistence.BalanceRepository
	historyRepo    persistence.HistoryRepository
	gateway        gateway.SMSGateway
	validator      *Validator
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
	concurrency    int
	gatewayTimeout time.Duration
}

// NewService creates a dispatch coordinator with default fan-out tuning
func NewService(
	contactRepo persistence.ContactRepository,
	balanceRepo persistence.BalanceRepository,
	historyRepo persistence.HistoryRepository,
	smsGateway gateway.SMSGateway,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		contactRepo:    contactRepo,
		balanceRepo:    balanceRepo,
		historyRepo:    historyRepo,
		gateway:        smsGateway,
		validator:      NewValidator(),
		timeProvider:   timeProvider,
		logger:         logger,
		concurrency:    DefaultConcurrency,
		gatewayTimeout: DefaultGatewayTimeout,
	}
}

// WithConcurrency sets the maximum number of in-flight gateway calls per batch
func (s *Service) WithConcurrency(n int) *Service {
	if n > 0 {
		s.concurrency = n
	}
	return s
}

// WithGatewayTimeout sets the per-recipient gateway timeout
func (s *Service) WithGatewayTimeout(d time.Duration) *Service {
	if d > 0 {
		s.gatewayTimeout = d
	}
	return s
}

// Request carries one client-initiated dispatch batch
type Request struct {
	ClientID   uint64
	Message    string
	SendToAll  bool
	ContactIDs []uint64
}

// Dispatch executes one batch. Fatal gates (validation, ownership, balance)
// abort before any send; per-recipient gateway failures are captured in the
// report and never abort the batch.
func (s *Service) Dispatch(ctx context.Context, req Request) (*entity.DispatchReport, error) {
	start := s.timeProvider.Now()

	if err := s.validator.Validate(req.ClientID, req.Message, req.SendToAll, req.ContactIDs); err != nil {
		return nil, err
	}

	recipients, err := s.resolveRecipients(ctx, req)
	if err != nil {
		return nil, err
	}

	// One credit unit per recipient; message length is deliberately not
	// factored in (no multi-segment billing).
	required := int64(len(recipients))

	bal, err := s.balanceRepo.GetByClientID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}

	// Fail-fast gate only. The debit below re-validates under the row lock,
	// which is the actual authority.
	if !bal.HasSufficient(required) {
		s.logger.Warn("Dispatch rejected, insufficient balance", map[string]any{
			"client_id": req.ClientID,
			"required":  required,
			"available": bal.Available(),
		})
		return nil, errs.NewInsufficientBalanceError(req.ClientID, required, bal.Available())
	}

	results := s.fanOut(ctx, recipients, req.Message)

	report := &entity.DispatchReport{
		TotalContacts:    len(recipients),
		RemainingBalance: bal.Available(),
		SentMessages:     make([]entity.DeliveryResult, 0, len(results)),
		FailedMessages:   make([]entity.DeliveryResult, 0),
	}
	for _, r := range results {
		if r.Status == entity.DeliverySent {
			report.SentMessages = append(report.SentMessages, r)
		} else {
			report.FailedMessages = append(report.FailedMessages, r)
		}
	}
	report.SentCount = len(report.SentMessages)
	report.FailedCount = len(report.FailedMessages)

	if report.SentCount > 0 {
		if err := s.settle(ctx, req, report); err != nil {
			return nil, err
		}
	}

	s.logger.Info("Dispatch completed", map[string]any{
		"client_id":    req.ClientID,
		"recipients":   report.TotalContacts,
		"sent":         report.SentCount,
		"failed":       report.FailedCount,
		"credits_used": report.CreditsUsed,
		"duration_ms":  s.timeProvider.Since(start).Milliseconds(),
	})
	return report, nil
}

// resolveRecipients loads the recipient set, enforcing tenant ownership
func (s *Service) resolveRecipients(ctx context.Context, req Request) ([]*entity.Contact, error) {
	if req.SendToAll {
		contacts, err := s.contactRepo.ListByClient(ctx, req.ClientID)
		if err != nil {
			return nil, err
		}
		if len(contacts) == 0 {
			return nil, errs.ErrNoRecipients
		}
		return contacts, nil
	}

	contacts, err := s.contactRepo.GetByIDs(ctx, req.ClientID, req.ContactIDs)
	if err != nil {
		return nil, err
	}
	if len(contacts) != len(req.ContactIDs) {
		s.logger.Warn("Dispatch rejected, contact ownership mismatch", map[string]any{
			"client_id": req.ClientID,
			"requested": len(req.ContactIDs),
			"resolved":  len(contacts),
		})
		return nil, errs.NewPartialOwnershipError(req.ClientID, len(req.ContactIDs), len(contacts))
	}
	return contacts, nil
}

// settle debits exactly the successful send count and appends the aggregate
// history entry. Runs only when at least one recipient succeeded.
func (s *Service) settle(ctx context.Context, req Request, report *entity.DispatchReport) error {
	creditsUsed := int64(report.SentCount)

	newBalance, err := s.balanceRepo.Debit(ctx, req.ClientID, creditsUsed)
	if err != nil {
		// A concurrent dispatch may have consumed the credit between the
		// pre-check and this debit; the sends already happened, so surface
		// the shortfall rather than inventing a negative balance.
		s.logger.Error("Post-send debit failed", map[string]any{
			"client_id":    req.ClientID,
			"credits_used": creditsUsed,
			"error":        err.Error(),
		})
		return err
	}
	report.CreditsUsed = creditsUsed
	report.RemainingBalance = newBalance

	entry, err := entity.NewHistoryEntry(
		req.ClientID, req.Message,
		int64(report.TotalContacts), creditsUsed,
		entity.HistorySent, s.timeProvider,
	)
	if err != nil {
		return err
	}
	if err := s.historyRepo.Create(ctx, entry); err != nil {
		return err
	}
	return nil
}
