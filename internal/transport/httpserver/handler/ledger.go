package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	ledgerdomain "family-dues-go/internal/domain/ledger"
	"github.com/go-chi/chi/v5"
)

type createPaymentRequest struct {
	Amount      float64 `json:"amount"`
	PaymentDate string  `json:"payment_date"`
	Year        int     `json:"year"`
	Method      string  `json:"method"`
	Notes       string  `json:"notes"`
}

type createWithdrawalRequest struct {
	Amount         float64 `json:"amount"`
	WithdrawalDate string  `json:"withdrawal_date"`
	Year           int     `json:"year"`
	Reason         string  `json:"reason"`
	Notes          string  `json:"notes"`
}

type createLifecycleEventRequest struct {
	MemberID  string  `json:"member_id"`
	EventType string  `json:"event_type"`
	EventDate string  `json:"event_date"`
	Amount    float64 `json:"amount"`
	Year      int     `json:"year"`
	Notes     string  `json:"notes"`
}

func (h *Handlers) GetFamilyBalance(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "id")

	var asOf time.Time
	if parsed, err := parseDateParam(r.URL.Query().Get("as_of")); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid as_of date")
		return
	} else if parsed != nil {
		// End of the requested day, so same-day activity is included.
		asOf = parsed.Add(24*time.Hour - time.Nanosecond)
	}

	balance, err := h.Ledger.FamilyBalanceAsOf(r.Context(), familyID, asOf)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "family_not_found", "family not found")
			return
		}
		h.log.InternalError("balance.get failed", err, "family_id", familyID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, balance)
}

func (h *Handlers) ListPayments(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "id")

	payments, err := h.Ledger.ListPayments(r.Context(), familyID)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "family_not_found", "family not found")
			return
		}
		h.log.InternalError("payments.list failed", err, "family_id", familyID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

func (h *Handlers) CreatePayment(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "id")

	var req createPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	paymentDate, err := parseDateRequired(req.PaymentDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid payment date")
		return
	}

	payment, err := h.Ledger.CreatePayment(r.Context(), ledgerdomain.CreatePaymentInput{
		FamilyID:    familyID,
		Amount:      req.Amount,
		PaymentDate: paymentDate,
		Year:        req.Year,
		Method:      strings.TrimSpace(req.Method),
		Notes:       req.Notes,
	})
	if err != nil {
		h.writeLedgerError(w, err, "payments.create", familyID)
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}

func (h *Handlers) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "id")

	withdrawals, err := h.Ledger.ListWithdrawals(r.Context(), familyID)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "family_not_found", "family not found")
			return
		}
		h.log.InternalError("withdrawals.list failed", err, "family_id", familyID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, withdrawals)
}

func (h *Handlers) CreateWithdrawal(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "id")

	var req createWithdrawalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	withdrawalDate, err := parseDateRequired(req.WithdrawalDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid withdrawal date")
		return
	}

	withdrawal, err := h.Ledger.CreateWithdrawal(r.Context(), ledgerdomain.CreateWithdrawalInput{
		FamilyID:       familyID,
		Amount:         req.Amount,
		WithdrawalDate: withdrawalDate,
		Year:           req.Year,
		Reason:         req.Reason,
		Notes:          req.Notes,
	})
	if err != nil {
		h.writeLedgerError(w, err, "withdrawals.create", familyID)
		return
	}
	writeJSON(w, http.StatusCreated, withdrawal)
}

func (h *Handlers) ListLifecycleEvents(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "id")

	events, err := h.Ledger.ListLifecycleEvents(r.Context(), familyID)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "family_not_found", "family not found")
			return
		}
		h.log.InternalError("lifecycle-events.list failed", err, "family_id", familyID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *Handlers) CreateLifecycleEvent(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "id")

	var req createLifecycleEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	eventDate, err := parseDateRequired(req.EventDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid event date")
		return
	}

	var memberID *string
	if trimmed := strings.TrimSpace(req.MemberID); trimmed != "" {
		memberID = &trimmed
	}

	event, err := h.Ledger.CreateLifecycleEvent(r.Context(), ledgerdomain.CreateLifecycleEventInput{
		FamilyID:  familyID,
		MemberID:  memberID,
		EventType: strings.ToLower(strings.TrimSpace(req.EventType)),
		EventDate: eventDate,
		Amount:    req.Amount,
		Year:      req.Year,
		Notes:     req.Notes,
	})
	if err != nil {
		h.writeLedgerError(w, err, "lifecycle-events.create", familyID)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

func (h *Handlers) writeLedgerError(w http.ResponseWriter, err error, operation, familyID string) {
	switch {
	case isNotFound(err):
		writeError(w, http.StatusNotFound, "family_not_found", "family not found")
	case errors.Is(err, ledgerdomain.ErrInvalidAmount):
		writeError(w, http.StatusBadRequest, "invalid_request", "amount must be positive")
	case errors.Is(err, ledgerdomain.ErrUnknownEventType):
		writeError(w, http.StatusBadRequest, "invalid_request", "unknown lifecycle event type")
	default:
		h.log.InternalError(operation+" failed", err, "family_id", familyID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}
