package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tripoli-karting/tentdesk/internal/domain"
	mw "github.com/tripoli-karting/tentdesk/internal/http/middleware"
	"github.com/tripoli-karting/tentdesk/internal/http/response"
)

// CreateBooking books a tent and streams the receipt document as a download
func (h *Handlers) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req domain.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	result, err := h.bookingService.Book(r.Context(), &req, mw.OperatorPhone(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTentNotFound):
			response.NotFound(w, "Tent not found")
		case errors.Is(err, domain.ErrTentUnavailable):
			response.WriteError(w, http.StatusConflict, "Tent is not available", response.CodeTentUnavailable)
		case errors.Is(err, domain.ErrDocumentFailed):
			response.WriteError(w, http.StatusInternalServerError, "Receipt generation failed, booking not committed", response.CodeDocumentFailed)
		default:
			response.BadRequest(w, err.Error())
		}
		return
	}

	writeDocument(w, result.Filename, result.Receipt.ID, result.Document)
}

// ListReceipts returns the issued receipt snapshots
func (h *Handlers) ListReceipts(w http.ResponseWriter, r *http.Request) {
	receipts := h.bookingService.ListReceipts(r.Context())
	response.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"receipts": receipts,
		"count":    len(receipts),
	})
}

// DownloadReceipt regenerates the document for an issued receipt
func (h *Handlers) DownloadReceipt(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.bookingService.Regenerate(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrReceiptNotFound):
			response.NotFound(w, "Receipt not found")
		case errors.Is(err, domain.ErrDocumentFailed):
			response.WriteError(w, http.StatusInternalServerError, "Receipt generation failed", response.CodeDocumentFailed)
		default:
			response.InternalError(w, err.Error())
		}
		return
	}

	writeDocument(w, result.Filename, result.Receipt.ID, result.Document)
}

func writeDocument(w http.ResponseWriter, filename, receiptID string, doc []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("X-Receipt-ID", receiptID)
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}
