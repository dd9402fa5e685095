package dto

import (
	"time"

	"github.com/hygiene-check-api/internal/domain"
)

// CreateOfficeRequest - запрос на создание филиала
type CreateOfficeRequest struct {
	Code          string  `json:"code" validate:"required,office_code"`
	Name          string  `json:"name" validate:"required,min=1,max=100"`
	ManagementPIN *string `json:"management_pin" validate:"omitempty,pin"`
}

// CreateEmployeeRequest - запрос на создание сотрудника
type CreateEmployeeRequest struct {
	Code       string `json:"code" validate:"required,employee_code"`
	Name       string `json:"name" validate:"required,min=1,max=100"`
	OfficeCode string `json:"office_code" validate:"required,office_code"`
	Position   string `json:"position" validate:"max=100"`
}

// OfficeResponse - ответ с данными филиала
type OfficeResponse struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	HasPIN    bool      `json:"has_pin"`
	CreatedAt time.Time `json:"created_at"`
}

// EmployeeResponse - ответ с данными сотрудника
type EmployeeResponse struct {
	ID         int64  `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	OfficeID   int64  `json:"office"`
	OfficeCode string `json:"office_code,omitempty"`
	OfficeName string `json:"office_name,omitempty"`
	Position   string `json:"position"`
}

// RecordItemRequest - позиция в запросе отправки.
// value может прийти числом или строкой.
type RecordItemRequest struct {
	Category  string  `json:"category" validate:"required,max=40"`
	IsNormal  *bool   `json:"is_normal"`
	Value     any     `json:"value,omitempty"`
	ValueText *string `json:"value_text,omitempty" validate:"omitempty,max=50"`
	Comment   *string `json:"comment,omitempty"`
}

// SubmitRecordRequest - отправка дневной записи
type SubmitRecordRequest struct {
	EmployeeCode        string                     `json:"employee_code"`
	Date                string                     `json:"date"`
	WorkStartTime       Optional[domain.ClockTime] `json:"work_start_time,omitzero"`
	WorkEndTime         Optional[domain.ClockTime] `json:"work_end_time,omitzero"`
	WorkType            *string                    `json:"work_type,omitempty"`
	SupervisorCode      *string                    `json:"supervisor_code,omitempty"`
	SupervisorConfirmed Optional[bool]             `json:"supervisor_confirmed,omitzero"`
	Items               []RecordItemRequest        `json:"items" validate:"omitempty,dive"`
}

// SubmitRecordResponse - результат отправки
type SubmitRecordResponse struct {
	ID          int64    `json:"id"`
	Created     bool     `json:"created"`
	Status      string   `json:"status"`
	StatusLabel string   `json:"status_label"`
	WorkType    *string  `json:"work_type"`
	IsOff       *bool    `json:"is_off"`
	Applied     []string `json:"applied"`
	Ignored     []string `json:"ignored"`
}

// SupervisorConfirmRequest - включение подтверждения из админки
type SupervisorConfirmRequest struct {
	SupervisorCode *string `json:"supervisor_code"`
}

// SupervisorConfirmResponse - состояние подтверждения после переключения
type SupervisorConfirmResponse struct {
	Status              string `json:"status"`
	SupervisorConfirmed bool   `json:"supervisor_confirmed"`
}

// RecordItemResponse - позиция записи
type RecordItemResponse struct {
	ID        int64    `json:"id"`
	Category  string   `json:"category"`
	IsNormal  bool     `json:"is_normal"`
	Value     *float64 `json:"value"`
	ValueText *string  `json:"value_text"`
	Comment   string   `json:"comment"`
}

// RecordResponse - запись с позициями и производным статусом
type RecordResponse struct {
	ID                  int64                `json:"id"`
	Date                string               `json:"date"`
	Employee            int64                `json:"employee"`
	EmployeeCode        string               `json:"employee_code,omitempty"`
	WorkStartTime       *domain.ClockTime    `json:"work_start_time"`
	WorkEndTime         *domain.ClockTime    `json:"work_end_time"`
	Items               []RecordItemResponse `json:"items"`
	SupervisorSelected  *int64               `json:"supervisor_selected"`
	SupervisorCode      *string              `json:"supervisor_code"`
	SupervisorConfirmed bool                 `json:"supervisor_confirmed"`
	ConfirmedAt         *time.Time           `json:"confirmed_at,omitempty"`
	IsOff               *bool                `json:"is_off"`
	WorkType            *string              `json:"work_type"`
	Status              string               `json:"status"`
	StatusLabel         string               `json:"status_label"`
}

// CalendarStatusResponse - даты месяца с отметкой о завершении
type CalendarStatusResponse struct {
	Dates []string `json:"dates"`
}

// DashboardRow - строка сводки по сотруднику за день
type DashboardRow struct {
	ID                  string   `json:"id"`
	RecordID            *int64   `json:"recordId"`
	EmployeeCode        string   `json:"employeeCode"`
	Name                string   `json:"name"`
	ArrivalRegistered   bool     `json:"arrivalRegistered"`
	DepartureRegistered bool     `json:"departureRegistered"`
	Temperature         *float64 `json:"temperature"`
	Symptoms            bool     `json:"symptoms"`
	Comment             string   `json:"comment"`
	IsOff               bool     `json:"isOff"`
	Status              string   `json:"status"`
	StatusLabel         string   `json:"statusJp"`
	SupervisorConfirmed bool     `json:"supervisorConfirmed"`
	SupervisorCode      *string  `json:"supervisorCode"`
}

// DashboardResponse - сводка по филиалу за день
type DashboardResponse struct {
	Rows []DashboardRow `json:"rows"`
}

// CategoryResponse - элемент справочника категорий
type CategoryResponse struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Section string `json:"section"`
	Kind    string `json:"kind"`
}

// StatusResponse - простой ответ об успехе
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Detail  string `json:"detail"`
	Message string `json:"message,omitempty"`
}
