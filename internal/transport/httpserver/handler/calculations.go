package handler

import (
	"errors"
	"net/http"
	"strconv"

	calcdomain "family-dues-go/internal/domain/calculation"
	"github.com/go-chi/chi/v5"
)

type calculateYearRequest struct {
	ExtraDonation float64 `json:"extra_donation"`
	ExtraExpense  float64 `json:"extra_expense"`
}

func (h *Handlers) CalculateYear(w http.ResponseWriter, r *http.Request) {
	year, err := parseYearParam(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid year")
		return
	}

	// The extras are optional; an empty body means zero for both.
	var req calculateYearRequest
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
			return
		}
	}

	calc, err := h.Calculations.CalculateYear(r.Context(), year, req.ExtraDonation, req.ExtraExpense)
	if err != nil {
		if errors.Is(err, calcdomain.ErrMissingBirthDate) {
			h.log.BusinessError("calculations.run: bad member data", err, "year", year)
			writeError(w, http.StatusUnprocessableEntity, "missing_birth_date", err.Error())
			return
		}
		h.log.InternalError("calculations.run failed", err, "year", year)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, calc)
}

func (h *Handlers) GetCalculation(w http.ResponseWriter, r *http.Request) {
	year, err := parseYearParam(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid year")
		return
	}

	calc, err := h.Calculations.GetYear(r.Context(), year)
	if err != nil {
		if errors.Is(err, calcdomain.ErrCalculationNotFound) {
			writeError(w, http.StatusNotFound, "calculation_not_found", "no calculation for year")
			return
		}
		h.log.InternalError("calculations.get failed", err, "year", year)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, calc)
}

func (h *Handlers) ListCalculations(w http.ResponseWriter, r *http.Request) {
	calcs, err := h.Calculations.ListYears(r.Context())
	if err != nil {
		h.log.InternalError("calculations.list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, calcs)
}

func parseYearParam(value string) (int, error) {
	year, err := strconv.Atoi(value)
	if err != nil || year < 1900 || year > 9999 {
		return 0, errors.New("invalid year")
	}
	return year, nil
}
