package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/hygiene-check-api/internal/domain"
	"github.com/hygiene-check-api/internal/dto"
	"github.com/hygiene-check-api/internal/service"
)

type RecordHandler struct {
	base
	recordService service.RecordService
}

func NewRecordHandler(recordService service.RecordService, logger *slog.Logger) *RecordHandler {
	return &RecordHandler{
		base:          newBase(logger),
		recordService: recordService,
	}
}

func (h *RecordHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitRecordRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.recordService.Submit(r.Context(), &req)
	if err != nil {
		// в отправке неизвестный сотрудник - ошибка клиента, а не 404
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			h.respondError(w, http.StatusBadRequest, err.Error(), "")
			return
		}
		h.handleServiceError(w, err)
		return
	}

	rec := result.Record
	status := rec.Status()
	h.logger.Info("record submitted",
		slog.Int64("record_id", rec.ID),
		slog.Bool("created", result.Created),
		slog.String("status", string(status)),
		slog.Int("ignored", len(result.Ignored)),
	)

	h.respondJSON(w, http.StatusOK, dto.SubmitRecordResponse{
		ID:          rec.ID,
		Created:     result.Created,
		Status:      string(status),
		StatusLabel: status.Label(),
		WorkType:    rec.WorkType.Ptr(),
		IsOff:       rec.WorkType.IsOff(),
		Applied:     result.Applied,
		Ignored:     result.Ignored,
	})
}

// List отдаёт записи с фильтрами employee_code и date
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	records, err := h.recordService.List(r.Context(), q.Get("employee_code"), q.Get("date"))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.RecordResponse, len(records))
	for i := range records {
		resp[i] = toRecordResponse(&records[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *RecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid record id", err.Error())
		return
	}

	rec, err := h.recordService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toRecordResponse(rec))
}

func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid record id", err.Error())
		return
	}

	if err := h.recordService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *RecordHandler) Clear(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid record id", err.Error())
		return
	}

	if err := h.recordService.Clear(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.StatusResponse{Status: "cleared"})
}

// Confirm включает подтверждение; тело с supervisor_code необязательно
func (h *RecordHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid record id", err.Error())
		return
	}

	var req dto.SupervisorConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	code := ""
	if req.SupervisorCode != nil {
		code = *req.SupervisorCode
	}

	if err := h.recordService.Confirm(r.Context(), id, code); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.SupervisorConfirmResponse{Status: "ok", SupervisorConfirmed: true})
}

func (h *RecordHandler) Unconfirm(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid record id", err.Error())
		return
	}

	if err := h.recordService.Unconfirm(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.SupervisorConfirmResponse{Status: "ok", SupervisorConfirmed: false})
}

func (h *RecordHandler) CalendarStatus(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	dates, err := h.recordService.CalendarStatus(r.Context(), q.Get("employee_code"), q.Get("month"))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.CalendarStatusResponse{Dates: dates})
}

func toRecordResponse(rec *domain.Record) dto.RecordResponse {
	status := rec.Status()
	resp := dto.RecordResponse{
		ID:                 rec.ID,
		Date:               domain.FormatDate(rec.Date),
		Employee:           rec.EmployeeID,
		WorkStartTime:      rec.WorkStartTime,
		WorkEndTime:        rec.WorkEndTime,
		Items:              make([]dto.RecordItemResponse, len(rec.Items)),
		SupervisorSelected: rec.SupervisorSelectedID,
		IsOff:              rec.WorkType.IsOff(),
		WorkType:           rec.WorkType.Ptr(),
		Status:             string(status),
		StatusLabel:        status.Label(),
	}
	if rec.Employee != nil {
		resp.EmployeeCode = rec.Employee.Code
	}

	for i, it := range rec.Items {
		resp.Items[i] = dto.RecordItemResponse{
			ID:        it.ID,
			Category:  string(it.Category),
			IsNormal:  it.IsNormal,
			Value:     it.Value,
			ValueText: it.ValueText,
			Comment:   it.Comment,
		}
	}

	// код подтвердившего важнее кода выбранного ответственного
	if c := rec.Confirmation; c != nil {
		resp.SupervisorConfirmed = true
		confirmedAt := c.ConfirmedAt
		resp.ConfirmedAt = &confirmedAt
		if c.ConfirmedBy != nil {
			code := c.ConfirmedBy.Code
			resp.SupervisorCode = &code
		}
	}
	if resp.SupervisorCode == nil && rec.SupervisorSelected != nil {
		code := rec.SupervisorSelected.Code
		resp.SupervisorCode = &code
	}

	return resp
}
