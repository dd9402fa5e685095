package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hygiene-check-api/internal/domain"
	"github.com/hygiene-check-api/internal/dto"
	"github.com/hygiene-check-api/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DashboardHandler struct {
	base
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		base:             newBase(logger),
		dashboardService: dashboardService,
	}
}

// dashboardQuery читает branch_code (или office_code) и date
func dashboardQuery(r *http.Request) (string, string) {
	q := r.URL.Query()
	code := q.Get("branch_code")
	if code == "" {
		code = q.Get("office_code")
	}
	return code, q.Get("date")
}

func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	code, date := dashboardQuery(r)
	rows, err := h.dashboardService.Rows(r.Context(), code, date)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.DashboardResponse{Rows: rows})
}

func (h *DashboardHandler) Export(w http.ResponseWriter, r *http.Request) {
	code, date := dashboardQuery(r)
	data, err := h.dashboardService.Export(r.Context(), code, date)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	filename := fmt.Sprintf("dashboard_%s_%s.xlsx", code, date)
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("failed to write export", slog.Any("error", err))
	}
}

type CategoryHandler struct {
	base
}

func NewCategoryHandler(logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{base: newBase(logger)}
}

// List отдаёт справочник категорий в порядке формы
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	defs := domain.Categories()
	resp := make([]dto.CategoryResponse, len(defs))
	for i, def := range defs {
		resp[i] = dto.CategoryResponse{
			Key:     string(def.Key),
			Label:   def.Label,
			Section: def.Section,
			Kind:    def.Kind.String(),
		}
	}
	h.respondJSON(w, http.StatusOK, resp)
}
