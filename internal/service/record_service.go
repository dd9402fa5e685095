package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/hygiene-check-api/internal/domain"
	"github.com/hygiene-check-api/internal/dto"
	"github.com/hygiene-check-api/internal/repository"
)

// SubmitResult - итог одной отправки
type SubmitResult struct {
	Record  *domain.Record
	Created bool
	Applied []string
	Ignored []string
}

// RecordService определяет интерфейс бизнес-логики для дневных записей
type RecordService interface {
	Submit(ctx context.Context, req *dto.SubmitRecordRequest) (*SubmitResult, error)
	GetByID(ctx context.Context, id int64) (*domain.Record, error)
	List(ctx context.Context, employeeCode, date string) ([]domain.Record, error)
	Clear(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	Confirm(ctx context.Context, id int64, supervisorCode string) error
	Unconfirm(ctx context.Context, id int64) error
	CalendarStatus(ctx context.Context, employeeCode, month string) ([]string, error)
}

type recordService struct {
	tx          repository.Transactor
	recordRepo  repository.RecordRepository
	itemRepo    repository.RecordItemRepository
	confirmRepo repository.ConfirmationRepository
	empRepo     repository.EmployeeRepository
	now         func() time.Time
}

// NewRecordService создаёт новый экземпляр сервиса
func NewRecordService(
	tx repository.Transactor,
	recordRepo repository.RecordRepository,
	itemRepo repository.RecordItemRepository,
	confirmRepo repository.ConfirmationRepository,
	empRepo repository.EmployeeRepository,
) RecordService {
	return &recordService{
		tx:          tx,
		recordRepo:  recordRepo,
		itemRepo:    itemRepo,
		confirmRepo: confirmRepo,
		empRepo:     empRepo,
		now:         time.Now,
	}
}

// Submit применяет одну отправку к записи (employee, date). Все изменения
// сохраняются одной транзакцией; жёсткая ошибка откатывает всё.
func (s *recordService) Submit(ctx context.Context, req *dto.SubmitRecordRequest) (*SubmitResult, error) {
	empCode := normalizeCode(req.EmployeeCode)
	if empCode == "" || strings.TrimSpace(req.Date) == "" {
		return nil, domain.ErrMissingRequiredField
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	emp, err := s.empRepo.GetByCode(ctx, empCode)
	if err != nil {
		return nil, err
	}

	var supervisor *domain.Employee
	if req.SupervisorCode != nil {
		if code := normalizeCode(*req.SupervisorCode); code != "" {
			supervisor, err = s.empRepo.GetByCode(ctx, code)
			if err != nil {
				if errors.Is(err, domain.ErrEmployeeNotFound) {
					return nil, domain.ErrSupervisorNotFound
				}
				return nil, err
			}
		}
	}

	items, itemWorkType, err := prepareItems(req.Items)
	if err != nil {
		return nil, err
	}

	input := domain.SubmissionInput{
		ItemWorkType: itemWorkType,
		HasStart:     req.WorkStartTime.Set,
		Start:        req.WorkStartTime.Value,
		HasEnd:       req.WorkEndTime.Set,
		End:          req.WorkEndTime.Value,
	}
	if req.WorkType != nil {
		input.WorkType = *req.WorkType
	}

	result := &SubmitResult{}
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		rec, created, err := s.recordRepo.GetOrCreateForUpdate(ctx, emp.ID, date)
		if err != nil {
			return err
		}

		transition, err := domain.ApplySubmission(rec.State(), input)
		if err != nil {
			return err
		}
		rec.SetState(transition.Next)
		if supervisor != nil {
			rec.SupervisorSelectedID = &supervisor.ID
		}
		if err := s.recordRepo.Update(ctx, rec); err != nil {
			return fmt.Errorf("update record: %w", err)
		}

		for i := range items {
			if items[i].Category == domain.CategoryWorkType && transition.WorkTypeIgnored {
				items[i] = effectiveWorkTypeItem(items[i], rec.WorkType)
			}
			items[i].RecordID = rec.ID
			if err := s.itemRepo.Upsert(ctx, &items[i]); err != nil {
				return fmt.Errorf("upsert item %s: %w", items[i].Category, err)
			}
		}

		if req.SupervisorConfirmed.Set && req.SupervisorConfirmed.Value != nil {
			if *req.SupervisorConfirmed.Value {
				var confirmedBy *int64
				if supervisor != nil {
					confirmedBy = &supervisor.ID
				}
				err = s.confirmRepo.Upsert(ctx, rec.ID, confirmedBy, s.now())
			} else {
				err = s.confirmRepo.DeleteByRecord(ctx, rec.ID)
			}
			if err != nil {
				return fmt.Errorf("supervisor confirmation: %w", err)
			}
		}

		result.Record = rec
		result.Created = created
		result.Applied = transition.Applied
		result.Ignored = transition.Ignored
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// prepareItems разбирает позиции до начала транзакции. Второе значение -
// текст позиции work_type, если она была в отправке.
func prepareItems(reqs []dto.RecordItemRequest) ([]domain.RecordItem, string, error) {
	items := make([]domain.RecordItem, 0, len(reqs))
	seen := make(map[domain.Category]struct{}, len(reqs))
	itemWorkType := ""

	for _, req := range reqs {
		def, ok := domain.LookupCategory(req.Category)
		if !ok {
			return nil, "", fmt.Errorf("%w: %q", domain.ErrUnknownCategory, req.Category)
		}
		if _, dup := seen[def.Key]; dup {
			return nil, "", fmt.Errorf("%w: %q", domain.ErrDuplicateCategory, def.Key)
		}
		seen[def.Key] = struct{}{}

		isNormal := true
		if req.IsNormal != nil {
			isNormal = *req.IsNormal
		}
		comment := ""
		if req.Comment != nil {
			comment = strings.TrimSpace(*req.Comment)
		}

		value := domain.NoValue()
		switch def.Kind {
		case domain.ValueNumeric:
			value = parseNumeric(req.Value)
		case domain.ValueText:
			raw := rawText(req)
			if def.Key == domain.CategoryWorkType {
				itemWorkType = raw
				if ws := domain.ParseWorkState(raw); ws != domain.WorkUnknown {
					value = domain.TextValue(string(ws))
				}
			} else if raw != "" {
				value = domain.TextValue(raw)
			}
		}

		item := domain.NewRecordItem(def.Key, isNormal, value, comment)
		if err := item.Validate(); err != nil {
			return nil, "", fmt.Errorf("%s: %w", def.Key, err)
		}
		items = append(items, item)
	}

	return items, itemWorkType, nil
}

// effectiveWorkTypeItem приводит позицию work_type к виду дня, который
// остался в записи после отклонённого изменения
func effectiveWorkTypeItem(item domain.RecordItem, ws domain.WorkState) domain.RecordItem {
	value := domain.NoValue()
	if ws != domain.WorkUnknown {
		value = domain.TextValue(string(ws))
	}
	return domain.NewRecordItem(item.Category, item.IsNormal, value, item.Comment)
}

// parseNumeric принимает число или строку; всё прочее считается отсутствием значения
func parseNumeric(v any) domain.ItemValue {
	var n float64
	switch x := v.(type) {
	case float64:
		n = x
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return domain.NoValue()
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return domain.NoValue()
		}
		n = parsed
	default:
		return domain.NoValue()
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return domain.NoValue()
	}
	return domain.NumericValue(n)
}

func rawText(req dto.RecordItemRequest) string {
	if req.ValueText != nil {
		if s := strings.TrimSpace(*req.ValueText); s != "" {
			return s
		}
	}
	if s, ok := req.Value.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func (s *recordService) GetByID(ctx context.Context, id int64) (*domain.Record, error) {
	return s.recordRepo.GetByID(ctx, id)
}

func (s *recordService) List(ctx context.Context, employeeCode, date string) ([]domain.Record, error) {
	filter := repository.RecordFilter{EmployeeCode: normalizeCode(employeeCode)}
	if strings.TrimSpace(date) != "" {
		d, err := domain.ParseDate(date)
		if err != nil {
			return nil, err
		}
		filter.Date = &d
	}
	return s.recordRepo.List(ctx, filter)
}

func (s *recordService) Clear(ctx context.Context, id int64) error {
	return s.recordRepo.Clear(ctx, id)
}

func (s *recordService) Delete(ctx context.Context, id int64) error {
	return s.recordRepo.Delete(ctx, id)
}

// Confirm ставит подтверждение из админки. Неизвестный код ответственного
// не ошибка: подтверждение сохраняется без подтвердившего.
func (s *recordService) Confirm(ctx context.Context, id int64, supervisorCode string) error {
	if _, err := s.recordRepo.GetByID(ctx, id); err != nil {
		return err
	}

	var confirmedBy *int64
	if code := normalizeCode(supervisorCode); code != "" {
		sup, err := s.empRepo.GetByCode(ctx, code)
		switch {
		case err == nil:
			confirmedBy = &sup.ID
		case !errors.Is(err, domain.ErrEmployeeNotFound):
			return err
		}
	}

	return s.confirmRepo.Upsert(ctx, id, confirmedBy, s.now())
}

func (s *recordService) Unconfirm(ctx context.Context, id int64) error {
	if _, err := s.recordRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.confirmRepo.DeleteByRecord(ctx, id)
}

// CalendarStatus возвращает завершённые дни месяца. Некорректный ввод даёт
// пустой список, а не ошибку.
func (s *recordService) CalendarStatus(ctx context.Context, employeeCode, month string) ([]string, error) {
	dates := []string{}

	code := normalizeCode(employeeCode)
	from, to, ok := domain.ParseMonth(month)
	if code == "" || !ok {
		return dates, nil
	}

	emp, err := s.empRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return dates, nil
		}
		return nil, err
	}

	records, err := s.recordRepo.ListByEmployeeInRange(ctx, emp.ID, from, to)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if domain.IsCalendarComplete(rec.State(), len(rec.Items)) {
			dates = append(dates, domain.FormatDate(rec.Date))
		}
	}

	return dates, nil
}
