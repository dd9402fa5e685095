package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hygiene-check-api/internal/domain"
	"github.com/hygiene-check-api/internal/dto"
	"github.com/hygiene-check-api/internal/service"
)

type OfficeHandler struct {
	base
	officeService service.OfficeService
}

func NewOfficeHandler(officeService service.OfficeService, logger *slog.Logger) *OfficeHandler {
	return &OfficeHandler{
		base:          newBase(logger),
		officeService: officeService,
	}
}

func (h *OfficeHandler) List(w http.ResponseWriter, r *http.Request) {
	offices, err := h.officeService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.OfficeResponse, len(offices))
	for i := range offices {
		resp[i] = toOfficeResponse(&offices[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *OfficeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOfficeRequest
	if !h.decode(w, r, &req) {
		return
	}

	office, err := h.officeService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toOfficeResponse(office))
}

func (h *OfficeHandler) Get(w http.ResponseWriter, r *http.Request) {
	office, err := h.officeService.GetByCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toOfficeResponse(office))
}

func (h *OfficeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.officeService.Delete(r.Context(), chi.URLParam(r, "code")); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toOfficeResponse(office *domain.Office) dto.OfficeResponse {
	return dto.OfficeResponse{
		ID:        office.ID,
		Code:      office.Code,
		Name:      office.Name,
		HasPIN:    office.ManagementPIN != nil,
		CreatedAt: office.CreatedAt,
	}
}
