package dto

// SendRequest represents a bulk send request from a client
type SendRequest struct {
	Message    string   `json:"message" binding:"required,max=1000"`
	SendToAll  bool     `json:"sendToAll"`
	ContactIDs []uint64 `json:"contactIds" binding:"omitempty,dive,gt=0"`
}

// BalanceResponse carries a client's current credit balance
type BalanceResponse struct {
	Balance int64 `json:"balance"`
}
