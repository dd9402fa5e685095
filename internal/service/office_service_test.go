package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hygiene-check-api/internal/domain"
	"github.com/hygiene-check-api/internal/dto"
)

func TestOfficeService_CreateAndList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	pin := "0420"
	office, err := f.offices.Create(ctx, &dto.CreateOfficeRequest{Code: " os0001 ", Name: " Osaka ", ManagementPIN: &pin})
	require.NoError(t, err)
	assert.Equal(t, "OS0001", office.Code)
	assert.Equal(t, "Osaka", office.Name)
	require.NotNil(t, office.ManagementPIN)

	offices, err := f.offices.List(ctx)
	require.NoError(t, err)
	require.Len(t, offices, 2)
	assert.Equal(t, "OS0001", offices[0].Code)
	assert.Equal(t, "TK0001", offices[1].Code)

	_, err = f.offices.Create(ctx, &dto.CreateOfficeRequest{Code: "OS0001", Name: "Again"})
	assert.ErrorIs(t, err, domain.ErrDuplicateOfficeCode)

	_, err = f.offices.GetByCode(ctx, "zz0000")
	assert.ErrorIs(t, err, domain.ErrOfficeNotFound)
}

func TestOfficeService_DeleteBlockedByEmployees(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.offices.Delete(ctx, "TK0001"), domain.ErrOfficeHasEmployees)

	for _, code := range []string{"100001", "100002", "900001"} {
		require.NoError(t, f.employees.Delete(ctx, code))
	}
	require.NoError(t, f.offices.Delete(ctx, "tk0001"))
	assert.ErrorIs(t, f.offices.Delete(ctx, "TK0001"), domain.ErrOfficeNotFound)
}

func TestEmployeeService_Create(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	emp, err := f.employees.Create(ctx, &dto.CreateEmployeeRequest{Code: "100003", Name: " Ito ", OfficeCode: "tk0001"})
	require.NoError(t, err)
	assert.Equal(t, "Ito", emp.Name)
	require.NotNil(t, emp.Office)
	assert.Equal(t, "TK0001", emp.Office.Code)

	_, err = f.employees.Create(ctx, &dto.CreateEmployeeRequest{Code: "100003", Name: "Dup", OfficeCode: "TK0001"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmployeeCode)

	_, err = f.employees.Create(ctx, &dto.CreateEmployeeRequest{Code: "100004", Name: "Kato", OfficeCode: "OS0001"})
	assert.ErrorIs(t, err, domain.ErrOfficeNotFound)
}

func TestEmployeeService_ListByOffice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.offices.Create(ctx, &dto.CreateOfficeRequest{Code: "OS0001", Name: "Osaka"})
	require.NoError(t, err)
	_, err = f.employees.Create(ctx, &dto.CreateEmployeeRequest{Code: "200001", Name: "Kato", OfficeCode: "OS0001"})
	require.NoError(t, err)

	all, err := f.employees.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	osaka, err := f.employees.List(ctx, "os0001")
	require.NoError(t, err)
	require.Len(t, osaka, 1)
	assert.Equal(t, "200001", osaka[0].Code)
	require.NotNil(t, osaka[0].Office)
	assert.Equal(t, "Osaka", osaka[0].Office.Name)
}

func TestEmployeeService_DeleteCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	own := f.mustSubmit(t, `{"employee_code":"100002","date":"2025-04-01","supervisor_confirmed":true,
		"items":[{"category":"temperature","value":36.5}]}`)
	other := f.mustSubmit(t, `{"employee_code":"100001","date":"2025-04-01",
		"supervisor_code":"100002","supervisor_confirmed":true}`)

	require.NoError(t, f.employees.Delete(ctx, "100002"))

	_, err := f.records.GetByID(ctx, own.Record.ID)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)

	// ссылки на удалённого как на ответственного обнуляются
	rec, err := f.records.GetByID(ctx, other.Record.ID)
	require.NoError(t, err)
	assert.Nil(t, rec.SupervisorSelectedID)
	require.NotNil(t, rec.Confirmation)
	assert.Nil(t, rec.Confirmation.ConfirmedByID)

	assert.Equal(t, int64(0), f.count(t, &domain.RecordItem{}))
	assert.ErrorIs(t, f.employees.Delete(ctx, "100002"), domain.ErrEmployeeNotFound)
}
