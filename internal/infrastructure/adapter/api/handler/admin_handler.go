package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/texthub/bulksms-portal/internal/domain/entity"
	domainerr "github.com/texthub/bulksms-portal/internal/domain/error"
	coreport "github.com/texthub/bulksms-portal/internal/domain/port/core"
	"github.com/texthub/bulksms-portal/internal/domain/port/persistence"
	clientUseCase "github.com/texthub/bulksms-portal/internal/domain/usecase/client"
	transactionUseCase "github.com/texthub/bulksms-portal/internal/domain/usecase/transaction"
	"github.com/texthub/bulksms-portal/internal/infrastructure/adapter/api/dto"
	"github.com/texthub/bulksms-portal/internal/infrastructure/adapter/api/middleware"
)

// AdminHandler handles client management and credit grants
type AdminHandler struct {
	clientService      *clientUseCase.Service
	transactionService *transactionUseCase.Service
	logger             coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(
	clientService *clientUseCase.Service,
	transactionService *transactionUseCase.Service,
	logger coreport.Logger,
) *AdminHandler {
	return &AdminHandler{
		clientService:      clientService,
		transactionService: transactionService,
		logger:             logger,
	}
}

// ListClients handles GET /api/admin/clients
func (h *AdminHandler) ListClients(c *gin.Context) {
	page, limit := pageParams(c, 20)
	filter := persistence.ClientFilter{
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}

	clients, total, err := h.clientService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	items := make([]dto.ClientResponse, 0, len(clients))
	for _, client := range clients {
		items = append(items, dto.NewClientResponse(client))
	}

	respondSuccess(c, http.StatusOK, "", dto.PagedData{
		Items: items,
		Meta:  dto.PageMeta{Page: page, Limit: limit, Total: total},
	})
}

// GetClient handles GET /api/admin/clients/:clientId
func (h *AdminHandler) GetClient(c *gin.Context) {
	clientID, ok := parseIDParam(c, "clientId")
	if !ok {
		return
	}

	overview, err := h.clientService.GetOverview(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", dto.ClientOverviewResponse{
		ClientResponse: dto.NewClientResponse(overview.Client),
		Balance:        overview.Balance,
		ContactCount:   overview.ContactCount,
	})
}

// CreateClient handles POST /api/admin/clients
func (h *AdminHandler) CreateClient(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Client created", dto.NewClientResponse(client))
}

// UpdateClient handles PUT /api/admin/clients/:clientId
func (h *AdminHandler) UpdateClient(c *gin.Context) {
	clientID, ok := parseIDParam(c, "clientId")
	if !ok {
		return
	}

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), clientID, req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Client updated", dto.NewClientResponse(client))
}

// DeleteClient handles DELETE /api/admin/clients/:clientId
func (h *AdminHandler) DeleteClient(c *gin.Context) {
	clientID, ok := parseIDParam(c, "clientId")
	if !ok {
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), clientID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Client deleted", nil)
}

// CreateClientUser handles POST /api/admin/client-users
func (h *AdminHandler) CreateClientUser(c *gin.Context) {
	var req dto.CreateClientUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	user, err := h.clientService.CreateUser(c.Request.Context(), req.ClientID, req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Client user created", dto.NewClientUserResponse(user))
}

// ListClientUsers handles GET /api/admin/clients/:clientId/users
func (h *AdminHandler) ListClientUsers(c *gin.Context) {
	clientID, ok := parseIDParam(c, "clientId")
	if !ok {
		return
	}

	users, err := h.clientService.ListUsers(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	items := make([]dto.ClientUserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, dto.NewClientUserResponse(user))
	}
	respondSuccess(c, http.StatusOK, "", items)
}

// CreateTransaction handles POST /api/admin/transactions
func (h *AdminHandler) CreateTransaction(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidToken),
			Message: "Missing authentication",
		})
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	amount, err := entity.ParseAmount(req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	txn, newBalance, err := h.transactionService.Record(c.Request.Context(), transactionUseCase.RecordRequest{
		ClientID:    req.ClientID,
		AdminID:     principal.ID,
		Quantity:    req.Quantity,
		Amount:      amount,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Credits granted", dto.CreateTransactionResponse{
		Transaction: dto.NewTransactionResponse(txn),
		NewBalance:  newBalance,
	})
}

// ListTransactions handles GET /api/admin/transactions
func (h *AdminHandler) ListTransactions(c *gin.Context) {
	page, limit := pageParams(c, 20)

	var clientID uint64
	if raw := c.Query("clientId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrValidation),
				Message: "Invalid clientId parameter",
			})
			return
		}
		clientID = parsed
	}

	txns, total, err := h.transactionService.List(c.Request.Context(), persistence.TransactionFilter{
		ClientID: clientID,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", dto.PagedData{
		Items: dto.NewTransactionListResponse(txns),
		Meta:  dto.PageMeta{Page: page, Limit: limit, Total: total},
	})
}

// pageParams reads page and limit query parameters with sane bounds
func pageParams(c *gin.Context, defaultLimit int) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
