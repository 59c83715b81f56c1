package gateway

import "context"

// SendResult is the outcome of one gateway send attempt
type SendResult struct {
	Success   bool
	MessageID string
	Error     string
}

// SMSGateway is the opaque, possibly-slow, possibly-failing delivery
// boundary. Implementations must honor ctx cancellation; the dispatch
// coordinator bounds every call with a timeout and treats expiry as a
// failed outcome for that recipient.
type SMSGateway interface {
	Send(ctx context.Context, phone, message string) (SendResult, error)
}
