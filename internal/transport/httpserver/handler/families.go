package handler

import (
	"errors"
	"net/http"
	"time"

	familydomain "family-dues-go/internal/domain/family"
	"github.com/go-chi/chi/v5"
)

type familyRequest struct {
	Name           string  `json:"name"`
	WeddingDate    string  `json:"wedding_date"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	Zip            string  `json:"zip"`
	Phone          string  `json:"phone"`
	Email          string  `json:"email"`
	CurrentPlan    int     `json:"current_plan"`
	CurrentPayment float64 `json:"current_payment"`
	OpenBalance    float64 `json:"open_balance"`
}

type memberRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	BirthDate   string `json:"birth_date"`
	Gender      string `json:"gender"`
	WeddingDate string `json:"wedding_date"`
	SpouseName  string `json:"spouse_name"`
	Notes       string `json:"notes"`
}

func (h *Handlers) ListFamilies(w http.ResponseWriter, r *http.Request) {
	families, err := h.Families.ListFamilies(r.Context())
	if err != nil {
		h.log.InternalError("families.list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, families)
}

func (h *Handlers) GetFamily(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "id")

	family, err := h.Families.GetFamily(r.Context(), familyID)
	if err != nil {
		if errors.Is(err, familydomain.ErrFamilyNotFound) {
			writeError(w, http.StatusNotFound, "family_not_found", "family not found")
			return
		}
		h.log.InternalError("families.get failed", err, "family_id", familyID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, family)
}

func (h *Handlers) CreateFamily(w http.ResponseWriter, r *http.Request) {
	var req familyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	weddingDate, err := parseDateRequired(req.WeddingDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid wedding date")
		return
	}

	family, err := h.Families.CreateFamily(r.Context(), familydomain.CreateFamilyInput{
		Name:           req.Name,
		WeddingDate:    weddingDate,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		Zip:            req.Zip,
		Phone:          req.Phone,
		Email:          req.Email,
		CurrentPlan:    req.CurrentPlan,
		CurrentPayment: req.CurrentPayment,
		OpenBalance:    req.OpenBalance,
	})
	if err != nil {
		h.log.BusinessError("families.create failed", err)
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, family)
}

func (h *Handlers) UpdateFamily(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "id")

	var req familyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	weddingDate, err := parseDateRequired(req.WeddingDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid wedding date")
		return
	}

	family, err := h.Families.UpdateFamily(r.Context(), familydomain.UpdateFamilyInput{
		ID:             familyID,
		Name:           req.Name,
		WeddingDate:    weddingDate,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		Zip:            req.Zip,
		Phone:          req.Phone,
		Email:          req.Email,
		CurrentPlan:    req.CurrentPlan,
		CurrentPayment: req.CurrentPayment,
		OpenBalance:    req.OpenBalance,
	})
	if err != nil {
		if errors.Is(err, familydomain.ErrFamilyNotFound) {
			writeError(w, http.StatusNotFound, "family_not_found", "family not found")
			return
		}
		h.log.BusinessError("families.update failed", err, "family_id", familyID)
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, family)
}

func (h *Handlers) DeleteFamily(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "id")

	if err := h.Families.DeleteFamily(r.Context(), familyID); err != nil {
		if errors.Is(err, familydomain.ErrFamilyNotFound) {
			writeError(w, http.StatusNotFound, "family_not_found", "family not found")
			return
		}
		h.log.InternalError("families.delete failed", err, "family_id", familyID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListMembers(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "id")

	members, err := h.Families.ListMembers(r.Context(), familyID)
	if err != nil {
		if errors.Is(err, familydomain.ErrFamilyNotFound) {
			writeError(w, http.StatusNotFound, "family_not_found", "family not found")
			return
		}
		h.log.InternalError("members.list failed", err, "family_id", familyID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, members)
}

func (h *Handlers) CreateMember(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "id")

	var req memberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	birthDate, weddingDate, err := parseMemberDates(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	member, err := h.Families.CreateMember(r.Context(), familydomain.CreateMemberInput{
		FamilyID:    familyID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		BirthDate:   birthDate,
		Gender:      req.Gender,
		WeddingDate: weddingDate,
		SpouseName:  req.SpouseName,
		Notes:       req.Notes,
	})
	if err != nil {
		if errors.Is(err, familydomain.ErrFamilyNotFound) {
			writeError(w, http.StatusNotFound, "family_not_found", "family not found")
			return
		}
		h.log.BusinessError("members.create failed", err, "family_id", familyID)
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, member)
}

func (h *Handlers) UpdateMember(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "id")
	memberID := chi.URLParam(r, "member_id")

	var req memberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	birthDate, weddingDate, err := parseMemberDates(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	member, err := h.Families.UpdateMember(r.Context(), familydomain.UpdateMemberInput{
		ID:          memberID,
		FamilyID:    familyID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		BirthDate:   birthDate,
		Gender:      req.Gender,
		WeddingDate: weddingDate,
		SpouseName:  req.SpouseName,
		Notes:       req.Notes,
	})
	if err != nil {
		if errors.Is(err, familydomain.ErrMemberNotFound) {
			writeError(w, http.StatusNotFound, "member_not_found", "member not found")
			return
		}
		h.log.BusinessError("members.update failed", err, "member_id", memberID)
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (h *Handlers) DeleteMember(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "id")
	memberID := chi.URLParam(r, "member_id")

	if err := h.Families.DeleteMember(r.Context(), familyID, memberID); err != nil {
		if errors.Is(err, familydomain.ErrMemberNotFound) {
			writeError(w, http.StatusNotFound, "member_not_found", "member not found")
			return
		}
		h.log.InternalError("members.delete failed", err, "member_id", memberID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseMemberDates(req memberRequest) (birthDate, weddingDate *time.Time, err error) {
	birthDate, err = parseDateParam(req.BirthDate)
	if err != nil {
		return nil, nil, errors.New("invalid birth date")
	}
	weddingDate, err = parseDateParam(req.WeddingDate)
	if err != nil {
		return nil, nil, errors.New("invalid wedding date")
	}
	return birthDate, weddingDate, nil
}
