package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smallledger/general_ledger_app/internal/apperrors"
	"github.com/smallledger/general_ledger_app/internal/core/ledger"
	portssvc "github.com/smallledger/general_ledger_app/internal/core/ports/services"
	"github.com/smallledger/general_ledger_app/internal/dto"
	"github.com/smallledger/general_ledger_app/internal/middleware"
)

// entryHandler handles HTTP requests related to journal entries.
type entryHandler struct {
	entryService portssvc.EntryService
}

// newEntryHandler creates a new entryHandler.
func newEntryHandler(entryService portssvc.EntryService) *entryHandler {
	return &entryHandler{entryService: entryService}
}

// createEntry godoc
// @Summary Record a journal entry
// @Description Validates the submitted postings, auto-balances a single empty side when possible, and records the entry
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param entry body dto.SaveEntryRequest true "Journal entry"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid or unbalanced entry"
// @Failure 500 {object} map[string]string "Failed to record entry"
// @Security BearerAuth
// @Router /journal-entries [post]
func (h *entryHandler) createEntry(c *gin.Context) {
	var req dto.SaveEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), req)
	if err != nil {
		h.respondEntryError(c, err, "Failed to record entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// replaceEntry godoc
// @Summary Replace a journal entry
// @Description Revalidates the submitted postings and replaces the entry's fields and full posting set
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param entry body dto.SaveEntryRequest true "Journal entry"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid or unbalanced entry"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to update entry"
// @Security BearerAuth
// @Router /journal-entries/{entryID} [put]
func (h *entryHandler) replaceEntry(c *gin.Context) {
	entryID := c.Param("entryID")

	var req dto.SaveEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	entry, err := h.entryService.ReplaceEntry(c.Request.Context(), entryID, req)
	if err != nil {
		h.respondEntryError(c, err, "Failed to update entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete a journal entry
// @Description Soft-deletes the entry; it disappears from listings and reports but its rows are retained
// @Tags journal-entries
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to delete entry"
// @Security BearerAuth
// @Router /journal-entries/{entryID} [delete]
func (h *entryHandler) deleteEntry(c *gin.Context) {
	entryID := c.Param("entryID")

	if err := h.entryService.DeleteEntry(c.Request.Context(), entryID); err != nil {
		h.respondEntryError(c, err, "Failed to delete entry")
		return
	}

	c.Status(http.StatusNoContent)
}

// listEntries godoc
// @Summary List journal entries
// @Description Returns all live entries, newest first, with their debit and credit postings
// @Tags journal-entries
// @Produce json
// @Success 200 {array} dto.EntryResponse
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Security BearerAuth
// @Router /journal-entries [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	entries, err := h.entryService.ListEntries(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListEntryResponse(entries))
}

// respondEntryError maps service errors to HTTP responses. Validation
// failures carry structured detail so the entry form can highlight the
// offending side or show both running totals.
func (h *entryHandler) respondEntryError(c *gin.Context, err error, fallback string) {
	var missing *ledger.MissingAccountError
	if errors.As(err, &missing) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": missing.Error(),
			"side":  string(missing.Side),
		})
		return
	}

	var unbalanced *ledger.UnbalancedError
	if errors.As(err, &unbalanced) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":       unbalanced.Error(),
			"debitTotal":  unbalanced.DebitTotal,
			"creditTotal": unbalanced.CreditTotal,
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Journal entry not found"})
	default:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
