package service

import (
	"context"
	"errors"
	"strings"

	"github.com/hygiene-check-api/internal/domain"
	"github.com/hygiene-check-api/internal/dto"
	"github.com/hygiene-check-api/internal/repository"
)

// OfficeService определяет интерфейс бизнес-логики для филиалов
type OfficeService interface {
	Create(ctx context.Context, req *dto.CreateOfficeRequest) (*domain.Office, error)
	GetByCode(ctx context.Context, code string) (*domain.Office, error)
	List(ctx context.Context) ([]domain.Office, error)
	Delete(ctx context.Context, code string) error
}

type officeService struct {
	officeRepo repository.OfficeRepository
}

// NewOfficeService создаёт новый экземпляр сервиса
func NewOfficeService(officeRepo repository.OfficeRepository) OfficeService {
	return &officeService{officeRepo: officeRepo}
}

// normalizeCode приводит код филиала или сотрудника к каноническому виду
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (s *officeService) Create(ctx context.Context, req *dto.CreateOfficeRequest) (*domain.Office, error) {
	code := normalizeCode(req.Code)

	// Проверяем уникальность кода
	_, err := s.officeRepo.GetByCode(ctx, code)
	if err == nil {
		return nil, domain.ErrDuplicateOfficeCode
	}
	if !errors.Is(err, domain.ErrOfficeNotFound) {
		return nil, err
	}

	office := &domain.Office{
		Code: code,
		Name: strings.TrimSpace(req.Name),
	}
	if req.ManagementPIN != nil && *req.ManagementPIN != "" {
		pin := *req.ManagementPIN
		office.ManagementPIN = &pin
	}

	if err := s.officeRepo.Create(ctx, office); err != nil {
		return nil, err
	}

	return office, nil
}

func (s *officeService) GetByCode(ctx context.Context, code string) (*domain.Office, error) {
	return s.officeRepo.GetByCode(ctx, normalizeCode(code))
}

func (s *officeService) List(ctx context.Context) ([]domain.Office, error) {
	return s.officeRepo.List(ctx)
}

func (s *officeService) Delete(ctx context.Context, code string) error {
	office, err := s.officeRepo.GetByCode(ctx, normalizeCode(code))
	if err != nil {
		return err
	}
	return s.officeRepo.Delete(ctx, office.ID)
}
