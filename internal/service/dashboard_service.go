package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/hygiene-check-api/internal/domain"
	"github.com/hygiene-check-api/internal/dto"
	"github.com/hygiene-check-api/internal/repository"
)

// symptomCommentSeparator разделяет комментарии по симптомам в одной строке сводки
const symptomCommentSeparator = " / "

// DashboardSheetName - имя листа в выгрузке сводки
const DashboardSheetName = "Dashboard"

var dashboardHeaders = []any{
	"社員コード", "氏名", "出勤", "退勤", "体温", "症状", "コメント", "休み", "状態", "責任者確認", "確認者",
}

// DashboardService определяет интерфейс сводки по филиалу
type DashboardService interface {
	Rows(ctx context.Context, officeCode, date string) ([]dto.DashboardRow, error)
	Export(ctx context.Context, officeCode, date string) ([]byte, error)
}

type dashboardService struct {
	empRepo    repository.EmployeeRepository
	recordRepo repository.RecordRepository
}

// NewDashboardService создаёт новый экземпляр сервиса
func NewDashboardService(empRepo repository.EmployeeRepository, recordRepo repository.RecordRepository) DashboardService {
	return &dashboardService{
		empRepo:    empRepo,
		recordRepo: recordRepo,
	}
}

// Rows возвращает по строке на каждого сотрудника филиала, включая тех,
// у кого нет записи за день.
func (s *dashboardService) Rows(ctx context.Context, officeCode, date string) ([]dto.DashboardRow, error) {
	code := normalizeCode(officeCode)
	if code == "" || strings.TrimSpace(date) == "" {
		return nil, domain.ErrMissingDashboardArgs
	}
	day, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}

	employees, err := s.empRepo.List(ctx, code)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(employees))
	for _, emp := range employees {
		ids = append(ids, emp.ID)
	}
	// одна выборка на филиал вместо запроса на каждого сотрудника
	records, err := s.recordRepo.ListByEmployeesAndDate(ctx, ids, day)
	if err != nil {
		return nil, err
	}
	byEmployee := make(map[int64]*domain.Record, len(records))
	for i := range records {
		byEmployee[records[i].EmployeeID] = &records[i]
	}

	rows := make([]dto.DashboardRow, 0, len(employees))
	for _, emp := range employees {
		rows = append(rows, dashboardRow(emp, byEmployee[emp.ID], day))
	}
	return rows, nil
}

func dashboardRow(emp domain.Employee, rec *domain.Record, day time.Time) dto.DashboardRow {
	row := dto.DashboardRow{
		ID:           fmt.Sprintf("%s-%s", domain.FormatDate(day), emp.Code),
		EmployeeCode: emp.Code,
		Name:         emp.Name,
		Status:       string(domain.StatusNone),
		StatusLabel:  domain.StatusNone.Label(),
	}
	if rec == nil {
		return row
	}

	id := rec.ID
	row.RecordID = &id
	row.ArrivalRegistered = rec.WorkStartTime != nil
	row.DepartureRegistered = rec.WorkEndTime != nil
	row.IsOff = rec.WorkType == domain.WorkOff

	status := rec.Status()
	row.Status = string(status)
	row.StatusLabel = status.Label()

	var comments []string
	for _, it := range rec.Items {
		if it.Category == domain.CategoryTemperature && it.Value != nil {
			temp := *it.Value
			row.Temperature = &temp
		}
		if it.Category.IsSymptom() && !it.IsNormal {
			row.Symptoms = true
			if it.Comment != "" {
				comments = append(comments, it.Comment)
			}
		}
	}
	row.Comment = strings.Join(comments, symptomCommentSeparator)

	if rec.Confirmation != nil {
		row.SupervisorConfirmed = true
		if rec.Confirmation.ConfirmedBy != nil {
			code := rec.Confirmation.ConfirmedBy.Code
			row.SupervisorCode = &code
		}
	}
	return row
}

// Export выгружает сводку за день в xlsx
func (s *dashboardService) Export(ctx context.Context, officeCode, date string) ([]byte, error) {
	rows, err := s.Rows(ctx, officeCode, date)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", DashboardSheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	for _, w := range []struct {
		col   string
		width float64
	}{{"A", 12}, {"B", 20}, {"G", 40}} {
		if err := f.SetColWidth(DashboardSheetName, w.col, w.col, w.width); err != nil {
			return nil, fmt.Errorf("column width %s: %w", w.col, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	if err := f.SetSheetRow(DashboardSheetName, "A1", &dashboardHeaders); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(dashboardHeaders), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(DashboardSheetName, "A1", lastHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []any{
			row.EmployeeCode,
			row.Name,
			mark(row.ArrivalRegistered),
			mark(row.DepartureRegistered),
			temperatureCell(row.Temperature),
			mark(row.Symptoms),
			row.Comment,
			mark(row.IsOff),
			row.StatusLabel,
			mark(row.SupervisorConfirmed),
			stringOrEmpty(row.SupervisorCode),
		}
		if err := f.SetSheetRow(DashboardSheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func mark(v bool) string {
	if v {
		return "○"
	}
	return ""
}

func temperatureCell(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
