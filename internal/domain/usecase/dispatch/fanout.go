package dispatch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/texthub/bulksms-portal/internal/domain/entity"
)

// fanOut attempts delivery to every recipient with bounded parallelism.
// Attempts are independent: a failure or timeout for one recipient never
// aborts the others, so workers always return nil and outcomes are collected
// by index to keep report order stable.
func (s *Service) fanOut(ctx context.Context, recipients []*entity.Contact, message string) []entity.DeliveryResult {
	results := make([]entity.DeliveryResult, len(recipients))

	var g errgroup.Group
	g.SetLimit(s.concurrency)

	for i, contact := range recipients {
		i, contact := i, contact
		g.Go(func() error {
			results[i] = s.attempt(ctx, contact, message)
			return nil
		})
	}

	// Workers never error; Wait only synchronizes completion
	_ = g.Wait()

	return results
}

// attempt drives one gateway call under the per-recipient timeout
func (s *Service) attempt(ctx context.Context, contact *entity.Contact, message string) entity.DeliveryResult {
	result := entity.DeliveryResult{
		ContactID: contact.ID,
		Name:      contact.Name,
		Phone:     contact.Phone,
	}

	attemptCtx, cancel := s.timeProvider.WithTimeout(ctx, s.gatewayTimeout)
	defer cancel()

	sendResult, err := s.gateway.Send(attemptCtx, contact.Phone, message)
	switch {
	case err != nil:
		result.Status = entity.DeliveryFailed
		result.Error = err.Error()
		s.logger.Warn("Gateway send failed", map[string]any{
			"contact_id": contact.ID,
			"phone":      contact.Phone,
			"error":      err.Error(),
		})
	case !sendResult.Success:
		result.Status = entity.DeliveryFailed
		result.Error = sendResult.Error
		s.logger.Warn("Gateway rejected message", map[string]any{
			"contact_id": contact.ID,
			"phone":      contact.Phone,
			"reason":     sendResult.Error,
		})
	default:
		result.Status = entity.DeliverySent
		result.MessageID = sendResult.MessageID
	}

	return result
}
