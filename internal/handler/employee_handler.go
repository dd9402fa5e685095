package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hygiene-check-api/internal/domain"
	"github.com/hygiene-check-api/internal/dto"
	"github.com/hygiene-check-api/internal/service"
)

type EmployeeHandler struct {
	base
	empService service.EmployeeService
}

func NewEmployeeHandler(empService service.EmployeeService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		base:       newBase(logger),
		empService: empService,
	}
}

// List отдаёт сотрудников; фильтр по office_code или branch_code
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	officeCode := r.URL.Query().Get("office_code")
	if officeCode == "" {
		officeCode = r.URL.Query().Get("branch_code")
	}

	employees, err := h.empService.List(r.Context(), officeCode)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.EmployeeResponse, len(employees))
	for i := range employees {
		resp[i] = toEmployeeResponse(&employees[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployeeRequest
	if !h.decode(w, r, &req) {
		return
	}

	emp, err := h.empService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	emp, err := h.empService.GetByCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.empService.Delete(r.Context(), chi.URLParam(r, "code")); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toEmployeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	resp := dto.EmployeeResponse{
		ID:       emp.ID,
		Code:     emp.Code,
		Name:     emp.Name,
		OfficeID: emp.OfficeID,
		Position: emp.Position,
	}
	if emp.Office != nil {
		resp.OfficeCode = emp.Office.Code
		resp.OfficeName = emp.Office.Name
	}
	return resp
}
