package service

import (
	"context"
	"errors"
	"strings"

	"github.com/hygiene-check-api/internal/domain"
	"github.com/hygiene-check-api/internal/dto"
	"github.com/hygiene-check-api/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error)
	GetByCode(ctx context.Context, code string) (*domain.Employee, error)
	List(ctx context.Context, officeCode string) ([]domain.Employee, error)
	Delete(ctx context.Context, code string) error
}

type employeeService struct {
	empRepo    repository.EmployeeRepository
	officeRepo repository.OfficeRepository
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(empRepo repository.EmployeeRepository, officeRepo repository.OfficeRepository) EmployeeService {
	return &employeeService{
		empRepo:    empRepo,
		officeRepo: officeRepo,
	}
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error) {
	// Проверяем существование филиала
	office, err := s.officeRepo.GetByCode(ctx, normalizeCode(req.OfficeCode))
	if err != nil {
		return nil, err
	}

	code := normalizeCode(req.Code)
	_, err = s.empRepo.GetByCode(ctx, code)
	if err == nil {
		return nil, domain.ErrDuplicateEmployeeCode
	}
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		return nil, err
	}

	emp := &domain.Employee{
		Code:     code,
		Name:     strings.TrimSpace(req.Name),
		OfficeID: office.ID,
		Position: strings.TrimSpace(req.Position),
	}

	if err := s.empRepo.Create(ctx, emp); err != nil {
		return nil, err
	}
	emp.Office = office

	return emp, nil
}

func (s *employeeService) GetByCode(ctx context.Context, code string) (*domain.Employee, error) {
	return s.empRepo.GetByCode(ctx, normalizeCode(code))
}

func (s *employeeService) List(ctx context.Context, officeCode string) ([]domain.Employee, error) {
	return s.empRepo.List(ctx, normalizeCode(officeCode))
}

func (s *employeeService) Delete(ctx context.Context, code string) error {
	emp, err := s.empRepo.GetByCode(ctx, normalizeCode(code))
	if err != nil {
		return err
	}
	return s.empRepo.Delete(ctx, emp.ID)
}
