package gateway

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	coreport "github.com/texthub/bulksms-portal/internal/domain/port/core"
	gatewayport "github.com/texthub/bulksms-portal/internal/domain/port/gateway"
)

// SimulatedGateway fakes an SMS provider for development and testing. A
// small fraction of sends fail to exercise partial-delivery handling.
type SimulatedGateway struct {
	failureRate float64
	delay       time.Duration
	logger      coreport.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedGateway creates a gateway that succeeds with probability
// 1-failureRate after an artificial delay
func NewSimulatedGateway(failureRate float64, delay time.Duration, logger coreport.Logger) *SimulatedGateway {
	if failureRate < 0 || failureRate > 1 {
		failureRate = 0.05
	}
	return &SimulatedGateway{
		failureRate: failureRate,
		delay:       delay,
		logger:      logger,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Send simulates delivery of a single message
func (g *SimulatedGateway) Send(ctx context.Context, phone, message string) (gatewayport.SendResult, error) {
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return gatewayport.SendResult{}, ctx.Err()
		case <-timer.C:
		}
	}

	g.mu.Lock()
	failed := g.rng.Float64() < g.failureRate
	g.mu.Unlock()

	if failed {
		g.logger.Debug("Simulated delivery failure", map[string]any{"phone": phone})
		return gatewayport.SendResult{
			Success: false,
			Error:   "simulated delivery failure",
		}, nil
	}

	return gatewayport.SendResult{
		Success:   true,
		MessageID: uuid.NewString(),
	}, nil
}
