package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hygiene-check-api/internal/domain"
)

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	GetByCode(ctx context.Context, code string) (*domain.Employee, error)
	List(ctx context.Context, officeCode string) ([]domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	err := conn(ctx, r.db).Omit("Office").Create(emp).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateEmployeeCode
	}
	return err
}

func (r *employeeRepository) GetByCode(ctx context.Context, code string) (*domain.Employee, error) {
	var emp domain.Employee
	err := conn(ctx, r.db).Preload("Office").Where("code = ?", code).First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

// List возвращает сотрудников по коду филиала (пустой код - всех), упорядоченных по коду
func (r *employeeRepository) List(ctx context.Context, officeCode string) ([]domain.Employee, error) {
	var employees []domain.Employee
	query := conn(ctx, r.db).Preload("Office")
	if officeCode != "" {
		query = query.
			Joins("JOIN offices ON offices.id = employees.office_id").
			Where("offices.code = ?", officeCode)
	}
	err := query.Order("employees.code ASC").Find(&employees).Error
	return employees, err
}

// Delete удаляет сотрудника вместе с его записями. Ссылки на него как на
// ответственного обнуляются.
func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		recordIDs := tx.Model(&domain.Record{}).Select("id").Where("employee_id = ?", id)

		if err := tx.Where("record_id IN (?)", recordIDs).Delete(&domain.RecordItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("record_id IN (?)", recordIDs).Delete(&domain.SupervisorConfirmation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("employee_id = ?", id).Delete(&domain.Record{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.Record{}).
			Where("supervisor_selected_id = ?", id).
			Update("supervisor_selected_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.SupervisorConfirmation{}).
			Where("confirmed_by_id = ?", id).
			Update("confirmed_by_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&domain.Employee{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrEmployeeNotFound
		}
		return nil
	})
}
