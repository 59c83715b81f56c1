package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	errs "github.com/texthub/bulksms-portal/internal/domain/error"
	coreport "github.com/texthub/bulksms-portal/internal/domain/port/core"
	gatewayport "github.com/texthub/bulksms-portal/internal/domain/port/gateway"
)

// RestyGateway delivers messages through an HTTP SMS provider
type RestyGateway struct {
	client *resty.Client
	logger coreport.Logger
}

type sendRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

type sendResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
	Error     string `json:"error"`
}

// NewRestyGateway creates a gateway client for the given provider endpoint
func NewRestyGateway(baseURL, apiKey string, timeout time.Duration, logger coreport.Logger) *RestyGateway {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond).
		SetHeader("Content-Type", "application/json")
	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}

	return &RestyGateway{
		client: client,
		logger: logger,
	}
}

// Send submits a single message to the provider
func (g *RestyGateway) Send(ctx context.Context, phone, message string) (gatewayport.SendResult, error) {
	var body sendResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(sendRequest{To: phone, Message: message}).
		SetResult(&body).
		Post("/messages")
	if err != nil {
		return gatewayport.SendResult{}, fmt.Errorf("%w: %s", errs.ErrGateway, err.Error())
	}

	if resp.IsError() {
		g.logger.Warn("Provider rejected message", map[string]any{
			"status": resp.StatusCode(),
			"phone":  phone,
		})
		return gatewayport.SendResult{
			Success: false,
			Error:   fmt.Sprintf("provider returned status %d", resp.StatusCode()),
		}, nil
	}

	return gatewayport.SendResult{
		Success:   body.Success,
		MessageID: body.MessageID,
		Error:     body.Error,
	}, nil
}
