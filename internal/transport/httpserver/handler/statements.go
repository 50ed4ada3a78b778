package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handlers) GenerateStatements(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	year, err := parseIntParam(query.Get("year"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid year")
		return
	}
	month, err := parseIntParam(query.Get("month"), 0)
	if err != nil || month > 12 {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid month")
		return
	}

	result, err := h.Statements.GenerateMonthly(r.Context(), year, month)
	if err != nil {
		h.log.InternalError("statements.generate failed", err, "year", year, "month", month)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) ListFamilyStatements(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "id")

	if _, err := h.Families.GetFamily(r.Context(), familyID); err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "family_not_found", "family not found")
			return
		}
		h.log.InternalError("statements.list: get family failed", err, "family_id", familyID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	statements, err := h.Statements.ListByFamily(r.Context(), familyID)
	if err != nil {
		h.log.InternalError("statements.list failed", err, "family_id", familyID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, statements)
}

func (h *Handlers) RunWeddingConverter(w http.ResponseWriter, r *http.Request) {
	result, err := h.Wedding.ConvertDueWeddings(r.Context())
	if err != nil {
		h.log.InternalError("wedding-converter failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, result)
}
