package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/hygiene-check-api/internal/domain"
	"github.com/hygiene-check-api/internal/dto"
)

// base - общие зависимости и помощники ответов для всех обработчиков
type base struct {
	validator *validator.Validate
	logger    *slog.Logger
}

func newBase(logger *slog.Logger) base {
	return base{
		validator: NewValidator(),
		logger:    logger,
	}
}

// decode читает тело запроса и проверяет его теги validate.
// При ошибке ответ уже записан.
func (h *base) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}
	if err := h.validator.Struct(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return false
	}
	return true
}

func (h *base) extractID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *base) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err):
		h.respondError(w, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, domain.ErrOfficeNotFound),
		errors.Is(err, domain.ErrEmployeeNotFound),
		errors.Is(err, domain.ErrRecordNotFound):
		h.respondError(w, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, domain.ErrSupervisorNotFound):
		h.respondError(w, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, domain.ErrDuplicateOfficeCode),
		errors.Is(err, domain.ErrDuplicateEmployeeCode),
		errors.Is(err, domain.ErrOfficeHasEmployees):
		h.respondError(w, http.StatusConflict, err.Error(), "")
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "internal server error", "")
	}
}

func (h *base) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (h *base) respondError(w http.ResponseWriter, status int, detail, message string) {
	resp := dto.ErrorResponse{Detail: detail}
	if message != "" {
		resp.Message = message
	}
	h.respondJSON(w, status, resp)
}
