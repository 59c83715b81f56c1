package entity

// MaxMessageLength is the upper bound for a dispatch message body
const MaxMessageLength = 1000

// DeliveryStatus is the per-recipient outcome of a gateway attempt
type DeliveryStatus string

// Per-recipient delivery outcomes
const (
	DeliverySent   DeliveryStatus = "sent"
	DeliveryFailed DeliveryStatus = "failed"
)

// DeliveryResult is the outcome of one gateway attempt within a batch
type DeliveryResult struct {
	ContactID uint64         `json:"contactId"`
	Name      string         `json:"name"`
	Phone     string         `json:"phone"`
	Status    DeliveryStatus `json:"status"`
	MessageID string         `json:"messageId,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// DispatchReport is the reconciled result of one dispatch batch. Gateway
// failures are captured here per recipient and never abort the batch.
type DispatchReport struct {
	TotalContacts    int              `json:"totalContacts"`
	SentCount        int              `json:"sentCount"`
	FailedCount      int              `json:"failedCount"`
	CreditsUsed      int64            `json:"creditsUsed"`
	RemainingBalance int64            `json:"remainingBalance"`
	SentMessages     []DeliveryResult `json:"sentMessages"`
	FailedMessages   []DeliveryResult `json:"failedMessages"`
}
