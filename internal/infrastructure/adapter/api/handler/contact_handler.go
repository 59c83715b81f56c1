package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/texthub/bulksms-portal/internal/domain/error"
	coreport "github.com/texthub/bulksms-portal/internal/domain/port/core"
	contactUseCase "github.com/texthub/bulksms-portal/internal/domain/usecase/contact"
	"github.com/texthub/bulksms-portal/internal/infrastructure/adapter/api/dto"
	"github.com/texthub/bulksms-portal/internal/infrastructure/adapter/api/middleware"
)

// maxCSVImportBytes caps the accepted CSV upload size
const maxCSVImportBytes = 1 << 20

// ContactHandler handles a client's contact book, including CSV import
// and export
type ContactHandler struct {
	contactService *contactUseCase.Service
	logger         coreport.Logger
}

// NewContactHandler creates a new contact handler instance
func NewContactHandler(contactService *contactUseCase.Service, logger coreport.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         logger,
	}
}

// clientID resolves the authenticated tenant from the request context.
// For sub-users this is the parent client, not the sub-user itself.
func (h *ContactHandler) clientID(c *gin.Context) (uint64, bool) {
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

// List handles GET /api/client/contacts
func (h *ContactHandler) List(c *gin.Context) {
	clientID, ok := h.clientID(c)
	if !ok {
		return
	}

	contacts, err := h.contactService.List(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", dto.NewContactListResponse(contacts))
}

// Get handles GET /api/client/contacts/:contactId
func (h *ContactHandler) Get(c *gin.Context) {
	clientID, ok := h.clientID(c)
	if !ok {
		return
	}
	contactID, ok := parseIDParam(c, "contactId")
	if !ok {
		return
	}

	contact, err := h.contactService.Get(c.Request.Context(), clientID, contactID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", dto.NewContactResponse(contact))
}

// Create handles POST /api/client/contacts
func (h *ContactHandler) Create(c *gin.Context) {
	clientID, ok := h.clientID(c)
	if !ok {
		return
	}

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	contact, err := h.contactService.Create(c.Request.Context(), clientID, req.Name, req.Phone)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Contact created", dto.NewContactResponse(contact))
}

// Update handles PUT /api/client/contacts/:contactId
func (h *ContactHandler) Update(c *gin.Context) {
	clientID, ok := h.clientID(c)
	if !ok {
		return
	}
	contactID, ok := parseIDParam(c, "contactId")
	if !ok {
		return
	}

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	contact, err := h.contactService.Update(c.Request.Context(), clientID, contactID, req.Name, req.Phone)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Contact updated", dto.NewContactResponse(contact))
}

// Delete handles DELETE /api/client/contacts/:contactId
func (h *ContactHandler) Delete(c *gin.Context) {
	clientID, ok := h.clientID(c)
	if !ok {
		return
	}
	contactID, ok := parseIDParam(c, "contactId")
	if !ok {
		return
	}

	if err := h.contactService.Delete(c.Request.Context(), clientID, contactID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Contact deleted", nil)
}

// ImportCSV handles POST /api/client/contacts/import. Accepts a multipart
// file upload under the "file" field, or a raw CSV body.
func (h *ContactHandler) ImportCSV(c *gin.Context) {
	clientID, ok := h.clientID(c)
	if !ok {
		return
	}

	data, err := h.readCSVPayload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Could not read CSV payload: " + err.Error(),
		})
		return
	}

	result, err := h.contactService.ImportCSV(c.Request.Context(), clientID, data)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Import completed", result)
}

// ExportCSV handles GET /api/client/contacts/export
func (h *ContactHandler) ExportCSV(c *gin.Context) {
	clientID, ok := h.clientID(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="contacts.csv"`)

	if err := h.contactService.ExportCSV(c.Request.Context(), clientID, c.Writer); err != nil {
		h.logger.Error("CSV export failed", map[string]any{
			"client_id": clientID,
			"error":     err.Error(),
		})
	}
}

func (h *ContactHandler) readCSVPayload(c *gin.Context) (string, error) {
	if file, err := c.FormFile("file"); err == nil {
		opened, err := file.Open()
		if err != nil {
			return "", err
		}
		defer opened.Close()
		data, err := io.ReadAll(io.LimitReader(opened, maxCSVImportBytes))
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxCSVImportBytes))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
