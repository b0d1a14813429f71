package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/tripoli-karting/tentdesk/internal/domain"
	"github.com/tripoli-karting/tentdesk/internal/http/response"
)

// RequestOTP handles one-time code requests
func (h *Handlers) RequestOTP(w http.ResponseWriter, r *http.Request) {
	var req domain.OTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	expiresAt, err := h.authService.RequestCode(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrOTPSendFailed) {
			response.WriteError(w, http.StatusBadGateway, "Failed to deliver code", response.CodeOTPSendFailed)
			return
		}
		response.BadRequest(w, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]string{
		"message":    "Code sent",
		"expires_at": expiresAt.Format(time.RFC3339),
	})
}

// VerifyOTP handles code verification and issues the operator session
func (h *Handlers) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req domain.OTPVerify
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	session, err := h.authService.VerifyCode(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOTPExpired):
			response.WriteError(w, http.StatusUnauthorized, "Code expired, request a new one", response.CodeOTPExpired)
		case errors.Is(err, domain.ErrOTPMismatch):
			response.WriteError(w, http.StatusUnauthorized, "Invalid code", response.CodeOTPMismatch)
		case errors.Is(err, domain.ErrNoPendingCode):
			response.WriteError(w, http.StatusUnauthorized, "No code pending, request one first", response.CodeNoPendingCode)
		default:
			response.BadRequest(w, err.Error())
		}
		return
	}

	response.WriteJSON(w, http.StatusOK, session)
}

// Logout resets the operator session
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
