package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/hygiene-check-api/internal/database"
	"github.com/hygiene-check-api/internal/domain"
	"github.com/hygiene-check-api/internal/dto"
	"github.com/hygiene-check-api/internal/repository"
	"github.com/hygiene-check-api/internal/service"
)

type fixture struct {
	db        *gorm.DB
	offices   service.OfficeService
	employees service.EmployeeService
	records   service.RecordService
	dashboard service.DashboardService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on"
	db, err := database.OpenSQLite(dsn, nil)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, database.DriverSQLite))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	tx := repository.NewTransactor(db)
	officeRepo := repository.NewOfficeRepository(db)
	empRepo := repository.NewEmployeeRepository(db)
	recordRepo := repository.NewRecordRepository(db)

	f := &fixture{
		db:        db,
		offices:   service.NewOfficeService(officeRepo),
		employees: service.NewEmployeeService(empRepo, officeRepo),
		records: service.NewRecordService(tx, recordRepo,
			repository.NewRecordItemRepository(db),
			repository.NewConfirmationRepository(db),
			empRepo),
		dashboard: service.NewDashboardService(empRepo, recordRepo),
	}

	ctx := context.Background()
	_, err = f.offices.Create(ctx, &dto.CreateOfficeRequest{Code: "tk0001", Name: "Tokyo"})
	require.NoError(t, err)
	for _, e := range []dto.CreateEmployeeRequest{
		{Code: "100001", Name: "Sato", OfficeCode: "TK0001"},
		{Code: "100002", Name: "Suzuki", OfficeCode: "TK0001"},
		{Code: "900001", Name: "Takahashi", OfficeCode: "TK0001", Position: "manager"},
	} {
		_, err := f.employees.Create(ctx, &e)
		require.NoError(t, err)
	}

	return f
}

func (f *fixture) submit(t *testing.T, body string) (*service.SubmitResult, error) {
	t.Helper()
	var req dto.SubmitRecordRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return f.records.Submit(context.Background(), &req)
}

func (f *fixture) mustSubmit(t *testing.T, body string) *service.SubmitResult {
	t.Helper()
	res, err := f.submit(t, body)
	require.NoError(t, err)
	return res
}

func (f *fixture) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(model).Count(&n).Error)
	return n
}

func TestSubmit_CheckInThenCheckOut(t *testing.T) {
	f := newFixture(t)

	first := f.mustSubmit(t, `{"employee_code":"100001","date":"2025-04-01","work_start_time":"09:00"}`)
	assert.True(t, first.Created)
	assert.Equal(t, domain.StatusArrived, first.Record.Status())
	assert.Equal(t, []string{"work_start_time: 09:00"}, first.Applied)

	second := f.mustSubmit(t, `{"employee_code":"100001","date":"2025-04-01","work_end_time":"18:00"}`)
	assert.False(t, second.Created)
	assert.Equal(t, first.Record.ID, second.Record.ID)
	assert.Equal(t, domain.StatusLeft, second.Record.Status())

	rec, err := f.records.GetByID(context.Background(), first.Record.ID)
	require.NoError(t, err)
	assert.Equal(t, "09:00", rec.WorkStartTime.String())
	assert.Equal(t, "18:00", rec.WorkEndTime.String())
	assert.Equal(t, "2025-04-01", domain.FormatDate(rec.Date))
	assert.Equal(t, int64(1), f.count(t, &domain.Record{}))
}

func TestSubmit_CheckoutWithoutCheckinRollsBack(t *testing.T) {
	f := newFixture(t)

	_, err := f.submit(t, `{
		"employee_code":"100001","date":"2025-04-01","work_end_time":"18:00",
		"supervisor_code":"900001","supervisor_confirmed":true,
		"items":[{"category":"temperature","value":36.5}]
	}`)
	require.ErrorIs(t, err, domain.ErrCheckoutBeforeCheckin)

	assert.Zero(t, f.count(t, &domain.Record{}))
	assert.Zero(t, f.count(t, &domain.RecordItem{}))
	assert.Zero(t, f.count(t, &domain.SupervisorConfirmation{}))
}

func TestSubmit_EndBeforeStart(t *testing.T) {
	f := newFixture(t)

	_, err := f.submit(t, `{"employee_code":"100001","date":"2025-04-01","work_start_time":"10:00","work_end_time":"09:00"}`)
	require.ErrorIs(t, err, domain.ErrEndBeforeStart)
	assert.Zero(t, f.count(t, &domain.Record{}))
}

func TestSubmit_ItemValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.submit(t, `{"employee_code":"100001","date":"2025-04-01",
		"items":[{"category":"temperature","value":"37.9","is_normal":true}]}`)
	require.ErrorIs(t, err, domain.ErrFeverMarkedNormal)

	_, err = f.submit(t, `{"employee_code":"100001","date":"2025-04-01",
		"items":[{"category":"proper_uniform","is_normal":false,"comment":"   "}]}`)
	require.ErrorIs(t, err, domain.ErrCommentRequired)

	_, err = f.submit(t, `{"employee_code":"100001","date":"2025-04-01",
		"items":[{"category":"mask_worn"}]}`)
	require.ErrorIs(t, err, domain.ErrUnknownCategory)

	_, err = f.submit(t, `{"employee_code":"100001","date":"2025-04-01",
		"items":[{"category":"work_type","value_text":"off"},{"category":"work_type","value_text":"work"}]}`)
	require.ErrorIs(t, err, domain.ErrDuplicateCategory)
	assert.True(t, domain.IsValidation(err))

	assert.Zero(t, f.count(t, &domain.Record{}))
}

func TestSubmit_RequestErrors(t *testing.T) {
	f := newFixture(t)

	cases := []struct {
		body string
		want error
	}{
		{`{"date":"2025-04-01"}`, domain.ErrMissingRequiredField},
		{`{"employee_code":"100001"}`, domain.ErrMissingRequiredField},
		{`{"employee_code":"100001","date":"2025/04/01"}`, domain.ErrInvalidDate},
		{`{"employee_code":"555555","date":"2025-04-01"}`, domain.ErrEmployeeNotFound},
		{`{"employee_code":"100001","date":"2025-04-01","supervisor_code":"999999"}`, domain.ErrSupervisorNotFound},
	}
	for _, tc := range cases {
		_, err := f.submit(t, tc.body)
		assert.ErrorIs(t, err, tc.want, tc.body)
	}
	assert.Zero(t, f.count(t, &domain.Record{}))
}

func TestSubmit_ItemsUpsertedByCategory(t *testing.T) {
	f := newFixture(t)

	res := f.mustSubmit(t, `{"employee_code":"100001","date":"2025-04-01",
		"items":[{"category":"temperature","value":"36.5"},{"category":"nails_groomed","value":"abc"}]}`)
	f.mustSubmit(t, `{"employee_code":"100001","date":"2025-04-01",
		"items":[{"category":"temperature","value":36.8,"is_normal":true,"comment":"  ok  "}]}`)

	rec, err := f.records.GetByID(context.Background(), res.Record.ID)
	require.NoError(t, err)
	require.Len(t, rec.Items, 2)

	temp, ok := rec.Item(domain.CategoryTemperature)
	require.True(t, ok)
	require.NotNil(t, temp.Value)
	assert.InDelta(t, 36.8, *temp.Value, 1e-9)
	assert.Equal(t, "ok", temp.Comment)
	assert.Nil(t, temp.ValueText)

	nails, ok := rec.Item(domain.CategoryNailsGroomed)
	require.True(t, ok)
	assert.Nil(t, nails.Value)
	assert.True(t, nails.IsNormal)
}

func TestSubmit_WorkTypeItem(t *testing.T) {
	f := newFixture(t)

	res := f.mustSubmit(t, `{"employee_code":"100001","date":"2025-04-01","work_type":"work",
		"items":[{"category":"work_type","value_text":" OFF "}]}`)
	assert.Equal(t, domain.StatusOff, res.Record.Status())

	rec, err := f.records.GetByID(context.Background(), res.Record.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.WorkOff, rec.WorkType)

	item, ok := rec.Item(domain.CategoryWorkType)
	require.True(t, ok)
	require.NotNil(t, item.ValueText)
	assert.Equal(t, "off", *item.ValueText)
	assert.Nil(t, item.Value)
}

func TestSubmit_FinalizedDayIgnoresChanges(t *testing.T) {
	f := newFixture(t)

	f.mustSubmit(t, `{"employee_code":"100001","date":"2025-04-01","work_start_time":"09:00","work_end_time":"18:00"}`)
	res := f.mustSubmit(t, `{"employee_code":"100001","date":"2025-04-01","work_start_time":"10:00","work_type":"off",
		"items":[{"category":"proper_handwashing"}]}`)

	assert.Contains(t, res.Ignored, "work_start_time: already checked out")
	assert.Contains(t, res.Ignored, "work_type: already checked out")
	assert.Equal(t, domain.StatusLeft, res.Record.Status())

	rec, err := f.records.GetByID(context.Background(), res.Record.ID)
	require.NoError(t, err)
	assert.Equal(t, "09:00", rec.WorkStartTime.String())
	// позиции принимаются и после ухода
	assert.Len(t, rec.Items, 1)
}

func TestSubmit_OffAfterCheckinIgnored(t *testing.T) {
	f := newFixture(t)

	f.mustSubmit(t, `{"employee_code":"100001","date":"2025-04-01","work_start_time":"09:00"}`)
	res := f.mustSubmit(t, `{"employee_code":"100001","date":"2025-04-01","work_type":"off"}`)

	assert.Equal(t, []string{"work_type: cannot switch to off after check-in"}, res.Ignored)
	assert.Equal(t, domain.StatusArrived, res.Record.Status())
}

func TestSubmit_IgnoredWorkTypeItemKeepsRecordState(t *testing.T) {
	tests := []struct {
		name    string
		setup   string
		ignored string
	}{
		{
			name:    "after checkout",
			setup:   `{"employee_code":"100001","date":"2025-04-01","work_type":"work","work_start_time":"09:00","work_end_time":"18:00"}`,
			ignored: "work_type: already checked out",
		},
		{
			name:    "off after check-in",
			setup:   `{"employee_code":"100001","date":"2025-04-01","work_type":"work","work_start_time":"09:00"}`,
			ignored: "work_type: cannot switch to off after check-in",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.mustSubmit(t, tt.setup)
			res := f.mustSubmit(t, `{"employee_code":"100001","date":"2025-04-01",
				"items":[{"category":"work_type","value_text":"off","is_normal":false,"comment":"sick"}]}`)
			assert.Contains(t, res.Ignored, tt.ignored)

			rec, err := f.records.GetByID(context.Background(), res.Record.ID)
			require.NoError(t, err)
			assert.Equal(t, domain.WorkWorking, rec.WorkType)

			item, ok := rec.Item(domain.CategoryWorkType)
			require.True(t, ok)
			require.NotNil(t, item.ValueText)
			assert.Equal(t, "work", *item.ValueText)
			assert.False(t, item.IsNormal)
			assert.Equal(t, "sick", item.Comment)
		})
	}
}

func TestSubmit_SupervisorSelectionAndConfirmation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res := f.mustSubmit(t, `{"employee_code":"100001","date":"2025-04-01",
		"supervisor_code":"900001","supervisor_confirmed":true}`)

	rec, err := f.records.GetByID(ctx, res.Record.ID)
	require.NoError(t, err)
	require.NotNil(t, rec.SupervisorSelected)
	assert.Equal(t, "900001", rec.SupervisorSelected.Code)
	require.NotNil(t, rec.Confirmation)
	require.NotNil(t, rec.Confirmation.ConfirmedBy)
	assert.Equal(t, "900001", rec.Confirmation.ConfirmedBy.Code)
	assert.False(t, rec.Confirmation.ConfirmedAt.IsZero())

	// без ключа supervisor_confirmed подтверждение не трогаем
	f.mustSubmit(t, `{"employee_code":"100001","date":"2025-04-01","work_start_time":"09:00"}`)
	rec, err = f.records.GetByID(ctx, res.Record.ID)
	require.NoError(t, err)
	assert.NotNil(t, rec.Confirmation)

	f.mustSubmit(t, `{"employee_code":"100001","date":"2025-04-01","supervisor_confirmed":false}`)
	rec, err = f.records.GetByID(ctx, res.Record.ID)
	require.NoError(t, err)
	assert.Nil(t, rec.Confirmation)
	require.NotNil(t, rec.SupervisorSelectedID)
}

func TestSubmit_ConcurrentSameDay(t *testing.T) {
	f := newFixture(t)

	const workers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		errs    []error
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var req dto.SubmitRecordRequest
			json.Unmarshal([]byte(`{"employee_code":"100001","date":"2025-04-01","work_start_time":"09:00",
				"items":[{"category":"temperature","value":36.4}]}`), &req)
			res, err := f.records.Submit(context.Background(), &req)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			if res.Created {
				created++
			}
		}()
	}
	wg.Wait()

	require.Empty(t, errs)
	assert.Equal(t, 1, created)
	assert.Equal(t, int64(1), f.count(t, &domain.Record{}))
	assert.Equal(t, int64(1), f.count(t, &domain.RecordItem{}))
}

func TestListRecords(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.mustSubmit(t, `{"employee_code":"100002","date":"2025-04-01","work_start_time":"09:00"}`)
	f.mustSubmit(t, `{"employee_code":"100001","date":"2025-04-01","work_start_time":"09:00"}`)
	f.mustSubmit(t, `{"employee_code":"100001","date":"2025-04-02","work_type":"off"}`)

	all, err := f.records.List(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "100001", all[0].Employee.Code)
	assert.Equal(t, "100002", all[1].Employee.Code)
	assert.Equal(t, "2025-04-02", domain.FormatDate(all[2].Date))

	byDay, err := f.records.List(ctx, "", "2025-04-01")
	require.NoError(t, err)
	assert.Len(t, byDay, 2)

	byEmp, err := f.records.List(ctx, "100001", "2025-04-02")
	require.NoError(t, err)
	require.Len(t, byEmp, 1)
	assert.Equal(t, domain.StatusOff, byEmp[0].Status())

	_, err = f.records.List(ctx, "", "yesterday")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestClearRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res := f.mustSubmit(t, `{"employee_code":"100001","date":"2025-04-01","work_start_time":"09:00","work_end_time":"18:00",
		"supervisor_code":"900001","supervisor_confirmed":true,
		"items":[{"category":"temperature","value":36.5},{"category":"proper_uniform"}]}`)

	require.NoError(t, f.records.Clear(ctx, res.Record.ID))

	rec, err := f.records.GetByID(ctx, res.Record.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNone, rec.Status())
	assert.Nil(t, rec.WorkStartTime)
	assert.Nil(t, rec.WorkEndTime)
	assert.Equal(t, domain.WorkUnknown, rec.WorkType)
	assert.Nil(t, rec.SupervisorSelectedID)
	assert.Empty(t, rec.Items)
	assert.Nil(t, rec.Confirmation)

	// после очистки день снова открыт
	again := f.mustSubmit(t, `{"employee_code":"100001","date":"2025-04-01","work_start_time":"08:30"}`)
	assert.False(t, again.Created)
	assert.Equal(t, domain.StatusArrived, again.Record.Status())

	assert.ErrorIs(t, f.records.Clear(ctx, 9999), domain.ErrRecordNotFound)
}

func TestDeleteRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res := f.mustSubmit(t, `{"employee_code":"100001","date":"2025-04-01","supervisor_confirmed":true,
		"items":[{"category":"temperature","value":36.5}]}`)

	require.NoError(t, f.records.Delete(ctx, res.Record.ID))
	assert.Zero(t, f.count(t, &domain.Record{}))
	assert.Zero(t, f.count(t, &domain.RecordItem{}))
	assert.Zero(t, f.count(t, &domain.SupervisorConfirmation{}))

	assert.ErrorIs(t, f.records.Delete(ctx, res.Record.ID), domain.ErrRecordNotFound)
}

func TestConfirmToggle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res := f.mustSubmit(t, `{"employee_code":"100001","date":"2025-04-01"}`)
	id := res.Record.ID

	require.NoError(t, f.records.Confirm(ctx, id, "900001"))
	rec, err := f.records.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, rec.Confirmation)
	require.NotNil(t, rec.Confirmation.ConfirmedBy)
	assert.Equal(t, "900001", rec.Confirmation.ConfirmedBy.Code)

	// неизвестный код: подтверждение остаётся, подтвердивший пустой
	require.NoError(t, f.records.Confirm(ctx, id, "123456"))
	rec, err = f.records.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, rec.Confirmation)
	assert.Nil(t, rec.Confirmation.ConfirmedByID)
	assert.Equal(t, int64(1), f.count(t, &domain.SupervisorConfirmation{}))

	require.NoError(t, f.records.Unconfirm(ctx, id))
	rec, err = f.records.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, rec.Confirmation)

	assert.ErrorIs(t, f.records.Confirm(ctx, 9999, ""), domain.ErrRecordNotFound)
	assert.ErrorIs(t, f.records.Unconfirm(ctx, 9999), domain.ErrRecordNotFound)
}

func TestCalendarStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// рабочий день с уходом
	f.mustSubmit(t, `{"employee_code":"100001","date":"2025-04-01","work_type":"work","work_start_time":"09:00","work_end_time":"18:00"}`)
	// только приход
	f.mustSubmit(t, `{"employee_code":"100001","date":"2025-04-02","work_start_time":"09:00"}`)
	// выходной с позициями
	f.mustSubmit(t, `{"employee_code":"100001","date":"2025-04-03","items":[{"category":"work_type","value_text":"off"}]}`)
	// выходной без позиций
	f.mustSubmit(t, `{"employee_code":"100001","date":"2025-04-04","work_type":"off"}`)
	// вид дня не задан, только позиции
	f.mustSubmit(t, `{"employee_code":"100001","date":"2025-04-05","items":[{"category":"temperature","value":36.2}]}`)
	// приход и уход без вида дня не закрывают день
	f.mustSubmit(t, `{"employee_code":"100001","date":"2025-04-06","work_start_time":"09:00","work_end_time":"18:00"}`)
	// другой месяц
	f.mustSubmit(t, `{"employee_code":"100001","date":"2025-05-01","work_start_time":"09:00","work_end_time":"18:00"}`)

	dates, err := f.records.CalendarStatus(ctx, "100001", "2025-04")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-04-01", "2025-04-03", "2025-04-05"}, dates)

	for _, tc := range []struct{ code, month string }{
		{"100001", "2025-4"},
		{"100001", "April"},
		{"", "2025-04"},
		{"555555", "2025-04"},
	} {
		dates, err := f.records.CalendarStatus(ctx, tc.code, tc.month)
		require.NoError(t, err)
		assert.NotNil(t, dates)
		assert.Empty(t, dates)
	}
}

func TestDashboardRows(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.mustSubmit(t, `{"employee_code":"100001","date":"2025-04-01","work_start_time":"09:00",
		"supervisor_code":"900001","supervisor_confirmed":true,
		"items":[
			{"category":"temperature","value":37.8,"is_normal":false,"comment":"fever"},
			{"category":"no_health_issues","is_normal":false,"comment":"headache"},
			{"category":"family_no_symptoms","is_normal":false,"comment":"cold"},
			{"category":"proper_uniform","is_normal":false,"comment":"no cap"}
		]}`)
	f.mustSubmit(t, `{"employee_code":"900001","date":"2025-04-01","work_type":"off"}`)
	f.mustSubmit(t, `{"employee_code":"100002","date":"2025-04-02","work_start_time":"09:00"}`)

	rows, err := f.dashboard.Rows(ctx, "tk0001", "2025-04-01")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	sato := rows[0]
	assert.Equal(t, "2025-04-01-100001", sato.ID)
	assert.NotNil(t, sato.RecordID)
	assert.True(t, sato.ArrivalRegistered)
	assert.False(t, sato.DepartureRegistered)
	require.NotNil(t, sato.Temperature)
	assert.InDelta(t, 37.8, *sato.Temperature, 1e-9)
	assert.True(t, sato.Symptoms)
	assert.Equal(t, "headache / cold", sato.Comment)
	assert.Equal(t, "arrived", sato.Status)
	assert.Equal(t, "出勤入力済", sato.StatusLabel)
	assert.True(t, sato.SupervisorConfirmed)
	require.NotNil(t, sato.SupervisorCode)
	assert.Equal(t, "900001", *sato.SupervisorCode)

	suzuki := rows[1]
	assert.Equal(t, "100002", suzuki.EmployeeCode)
	assert.Nil(t, suzuki.RecordID)
	assert.False(t, suzuki.ArrivalRegistered)
	assert.Nil(t, suzuki.Temperature)
	assert.Equal(t, "none", suzuki.Status)
	assert.Equal(t, "-", suzuki.StatusLabel)
	assert.False(t, suzuki.SupervisorConfirmed)

	boss := rows[2]
	assert.True(t, boss.IsOff)
	assert.Equal(t, "休み", boss.StatusLabel)

	empty, err := f.dashboard.Rows(ctx, "OS0001", "2025-04-01")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = f.dashboard.Rows(ctx, "", "2025-04-01")
	assert.ErrorIs(t, err, domain.ErrMissingDashboardArgs)
	_, err = f.dashboard.Rows(ctx, "TK0001", "")
	assert.ErrorIs(t, err, domain.ErrMissingDashboardArgs)
	_, err = f.dashboard.Rows(ctx, "TK0001", "01-04-2025")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestDashboardExport(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.mustSubmit(t, `{"employee_code":"100001","date":"2025-04-01","work_start_time":"09:00","work_end_time":"18:00",
		"items":[{"category":"temperature","value":36.6}]}`)

	data, err := f.dashboard.Export(ctx, "TK0001", "2025-04-01")
	require.NoError(t, err)

	book, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows(service.DashboardSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "社員コード", rows[0][0])
	assert.Equal(t, "100001", rows[1][0])
	assert.Equal(t, "Sato", rows[1][1])
	assert.Equal(t, "○", rows[1][2])
	assert.Equal(t, "○", rows[1][3])
	assert.Equal(t, "36.6", rows[1][4])
	assert.Equal(t, "退勤入力済", rows[1][8])
	assert.Equal(t, "100002", rows[2][0])

	width, err := book.GetColWidth(service.DashboardSheetName, "G")
	require.NoError(t, err)
	assert.InDelta(t, 40, width, 1e-9)
	style, err := book.GetCellStyle(service.DashboardSheetName, "K1")
	require.NoError(t, err)
	assert.NotZero(t, style)

	_, err = f.dashboard.Export(ctx, "", "2025-04-01")
	assert.ErrorIs(t, err, domain.ErrMissingDashboardArgs)
}
