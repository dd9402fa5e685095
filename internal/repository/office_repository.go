package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hygiene-check-api/internal/domain"
)

// OfficeRepository определяет интерфейс для работы с филиалами
type OfficeRepository interface {
	Create(ctx context.Context, office *domain.Office) error
	GetByCode(ctx context.Context, code string) (*domain.Office, error)
	List(ctx context.Context) ([]domain.Office, error)
	Delete(ctx context.Context, id int64) error
}

type officeRepository struct {
	db *gorm.DB
}

// NewOfficeRepository создаёт новый экземпляр репозитория
func NewOfficeRepository(db *gorm.DB) OfficeRepository {
	return &officeRepository{db: db}
}

func (r *officeRepository) Create(ctx context.Context, office *domain.Office) error {
	err := conn(ctx, r.db).Create(office).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateOfficeCode
	}
	return err
}

func (r *officeRepository) GetByCode(ctx context.Context, code string) (*domain.Office, error) {
	var office domain.Office
	err := conn(ctx, r.db).Where("code = ?", code).First(&office).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOfficeNotFound
		}
		return nil, err
	}
	return &office, nil
}

func (r *officeRepository) List(ctx context.Context) ([]domain.Office, error) {
	var offices []domain.Office
	err := conn(ctx, r.db).Order("code ASC").Find(&offices).Error
	return offices, err
}

// Delete удаляет филиал; при наличии сотрудников удаление запрещено
func (r *officeRepository) Delete(ctx context.Context, id int64) error {
	var count int64
	if err := conn(ctx, r.db).Model(&domain.Employee{}).Where("office_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrOfficeHasEmployees
	}

	result := conn(ctx, r.db).Delete(&domain.Office{}, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return domain.ErrOfficeHasEmployees
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrOfficeNotFound
	}
	return nil
}
