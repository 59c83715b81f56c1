package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/texthub/bulksms-portal/internal/infrastructure/adapter/logger"
)

func TestSimulatedGateway_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("should always succeed with zero failure rate", func(t *testing.T) {
		gw := NewSimulatedGateway(0, 0, logger.NewNoopLogger())

		for i := 0; i < 20; i++ {
			result, err := gw.Send(ctx, "+15550100001", "hello")
			assert.NoError(t, err)
			assert.True(t, result.Success)
			assert.NotEmpty(t, result.MessageID)
			assert.Empty(t, result.Error)
		}
	})

	t.Run("should always fail with full failure rate", func(t *testing.T) {
		gw := NewSimulatedGateway(1, 0, logger.NewNoopLogger())

		for i := 0; i < 20; i++ {
			result, err := gw.Send(ctx, "+15550100001", "hello")
			assert.NoError(t, err)
			assert.False(t, result.Success)
			assert.Equal(t, "simulated delivery failure", result.Error)
		}
	})

	t.Run("should honor context cancellation during the delay", func(t *testing.T) {
		gw := NewSimulatedGateway(0, time.Minute, logger.NewNoopLogger())

		cancelCtx, cancel := context.WithCancel(ctx)
		cancel()

		result, err := gw.Send(cancelCtx, "+15550100001", "hello")
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, result.Success)
	})

	t.Run("should clamp an out of range failure rate", func(t *testing.T) {
		gw := NewSimulatedGateway(1.5, 0, logger.NewNoopLogger())
		assert.Equal(t, 0.05, gw.failureRate)

		gw = NewSimulatedGateway(-0.3, 0, logger.NewNoopLogger())
		assert.Equal(t, 0.05, gw.failureRate)
	})
}
