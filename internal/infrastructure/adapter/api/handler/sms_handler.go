package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/texthub/bulksms-portal/internal/domain/error"
	coreport "github.com/texthub/bulksms-portal/internal/domain/port/core"
	balanceUseCase "github.com/texthub/bulksms-portal/internal/domain/usecase/balance"
	dispatchUseCase "github.com/texthub/bulksms-portal/internal/domain/usecase/dispatch"
	historyUseCase "github.com/texthub/bulksms-portal/internal/domain/usecase/history"
	"github.com/texthub/bulksms-portal/internal/infrastructure/adapter/api/dto"
	"github.com/texthub/bulksms-portal/internal/infrastructure/adapter/api/middleware"
)

// SMSHandler handles bulk sends, balance checks and send history
type SMSHandler struct {
	dispatchService *dispatchUseCase.Service
	balanceService  *balanceUseCase.Service
	historyService  *historyUseCase.Service
	logger          coreport.Logger
}

// NewSMSHandler creates a new SMS handler instance
func NewSMSHandler(
	dispatchService *dispatchUseCase.Service,
	balanceService *balanceUseCase.Service,
	historyService *historyUseCase.Service,
	logger coreport.Logger,
) *SMSHandler {
	return &SMSHandler{
		dispatchService: dispatchService,
		balanceService:  balanceService,
		historyService:  historyService,
		logger:          logger,
	}
}

func (h *SMSHandler) clientID(c *gin.Context) (uint64, bool) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok || principal.ClientID == 0 {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidToken),
			Message: "Missing authentication",
		})
		return 0, false
	}
	return principal.ClientID, true
}

// Send handles POST /api/client/sms/send. A batch with at least one
// delivered message is a success even when some recipients failed; the
// report details both sides.
func (h *SMSHandler) Send(c *gin.Context) {
	clientID, ok := h.clientID(c)
	if !ok {
		return
	}

	var req dto.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	report, err := h.dispatchService.Dispatch(c.Request.Context(), dispatchUseCase.Request{
		ClientID:   clientID,
		Message:    req.Message,
		SendToAll:  req.SendToAll,
		ContactIDs: req.ContactIDs,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	message := "Messages sent"
	if report.FailedCount > 0 && report.SentCount > 0 {
		message = "Messages partially sent"
	} else if report.SentCount == 0 {
		message = "All messages failed"
	}

	respondSuccess(c, http.StatusOK, message, report)
}

// GetBalance handles GET /api/client/balance
func (h *SMSHandler) GetBalance(c *gin.Context) {
	clientID, ok := h.clientID(c)
	if !ok {
		return
	}

	bal, err := h.balanceService.Get(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", dto.BalanceResponse{Balance: bal.Available()})
}

// GetHistory handles GET /api/client/sms/history
func (h *SMSHandler) GetHistory(c *gin.Context) {
	clientID, ok := h.clientID(c)
	if !ok {
		return
	}

	page, limit := pageParams(c, 50)
	entries, total, err := h.historyService.List(c.Request.Context(), clientID, page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", dto.PagedData{
		Items: dto.NewHistoryListResponse(entries),
		Meta:  dto.PageMeta{Page: page, Limit: limit, Total: total},
	})
}
