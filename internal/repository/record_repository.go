package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hygiene-check-api/internal/domain"
)

// RecordFilter - параметры выборки записей
type RecordFilter struct {
	EmployeeCode string
	Date         *time.Time
}

// RecordRepository определяет интерфейс для работы с дневными записями
type RecordRepository interface {
	GetOrCreateForUpdate(ctx context.Context, employeeID int64, date time.Time) (*domain.Record, bool, error)
	Update(ctx context.Context, rec *domain.Record) error
	GetByID(ctx context.Context, id int64) (*domain.Record, error)
	List(ctx context.Context, filter RecordFilter) ([]domain.Record, error)
	ListByEmployeesAndDate(ctx context.Context, employeeIDs []int64, date time.Time) ([]domain.Record, error)
	ListByEmployeeInRange(ctx context.Context, employeeID int64, from, to time.Time) ([]domain.Record, error)
	Clear(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository создаёт новый экземпляр репозитория
func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepository{db: db}
}

// withDetails подгружает всё, что нужно для вывода записи, без запросов на каждую строку
func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Employee").
		Preload("SupervisorSelected").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Confirmation.ConfirmedBy")
}

// GetOrCreateForUpdate находит запись (employee, date) или создаёт её и
// блокирует строку до конца транзакции. Вызывать внутри WithinTransaction.
func (r *recordRepository) GetOrCreateForUpdate(ctx context.Context, employeeID int64, date time.Time) (*domain.Record, bool, error) {
	db := conn(ctx, r.db)

	candidate := domain.Record{EmployeeID: employeeID, Date: date}
	result := db.Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(&candidate)
	if result.Error != nil {
		return nil, false, fmt.Errorf("insert record: %w", result.Error)
	}
	created := result.RowsAffected == 1

	var rec domain.Record
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("employee_id = ? AND date = ?", employeeID, date).
		First(&rec).Error
	if err != nil {
		return nil, false, fmt.Errorf("lock record: %w", err)
	}
	return &rec, created, nil
}

func (r *recordRepository) Update(ctx context.Context, rec *domain.Record) error {
	return conn(ctx, r.db).Omit(clause.Associations).Save(rec).Error
}

func (r *recordRepository) GetByID(ctx context.Context, id int64) (*domain.Record, error) {
	var rec domain.Record
	err := withDetails(conn(ctx, r.db)).First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// List возвращает записи по фильтру, упорядоченные по дате и коду сотрудника
func (r *recordRepository) List(ctx context.Context, filter RecordFilter) ([]domain.Record, error) {
	query := withDetails(conn(ctx, r.db)).
		Joins("JOIN employees ON employees.id = records.employee_id")

	if filter.EmployeeCode != "" {
		query = query.Where("employees.code = ?", filter.EmployeeCode)
	}
	if filter.Date != nil {
		query = query.Where("records.date = ?", *filter.Date)
	}

	var records []domain.Record
	err := query.Order("records.date ASC").Order("employees.code ASC").Find(&records).Error
	return records, err
}

func (r *recordRepository) ListByEmployeesAndDate(ctx context.Context, employeeIDs []int64, date time.Time) ([]domain.Record, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}

	var records []domain.Record
	err := withDetails(conn(ctx, r.db)).
		Where("employee_id IN ? AND date = ?", employeeIDs, date).
		Find(&records).Error
	return records, err
}

// ListByEmployeeInRange - записи сотрудника за [from, to) с позициями
func (r *recordRepository) ListByEmployeeInRange(ctx context.Context, employeeID int64, from, to time.Time) ([]domain.Record, error) {
	var records []domain.Record
	err := conn(ctx, r.db).
		Preload("Items").
		Where("employee_id = ? AND date >= ? AND date < ?", employeeID, from, to).
		Order("date ASC").
		Find(&records).Error
	return records, err
}

// Clear удаляет позиции и подтверждение и сбрасывает поля дня
func (r *recordRepository) Clear(ctx context.Context, id int64) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		var rec domain.Record
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&rec, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRecordNotFound
			}
			return err
		}

		if err := tx.Where("record_id = ?", id).Delete(&domain.RecordItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("record_id = ?", id).Delete(&domain.SupervisorConfirmation{}).Error; err != nil {
			return err
		}

		rec.Reset()
		return tx.Omit(clause.Associations).Save(&rec).Error
	})
}

func (r *recordRepository) Delete(ctx context.Context, id int64) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("record_id = ?", id).Delete(&domain.RecordItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("record_id = ?", id).Delete(&domain.SupervisorConfirmation{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&domain.Record{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrRecordNotFound
		}
		return nil
	})
}
