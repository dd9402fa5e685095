package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hygiene-check-api/internal/domain"
)

// ConfirmationRepository определяет интерфейс для подтверждений ответственного
type ConfirmationRepository interface {
	Upsert(ctx context.Context, recordID int64, confirmedByID *int64, at time.Time) error
	DeleteByRecord(ctx context.Context, recordID int64) error
}

type confirmationRepository struct {
	db *gorm.DB
}

// NewConfirmationRepository создаёт новый экземпляр репозитория
func NewConfirmationRepository(db *gorm.DB) ConfirmationRepository {
	return &confirmationRepository{db: db}
}

// Upsert создаёт подтверждение или обновляет подтвердившего и время
func (r *confirmationRepository) Upsert(ctx context.Context, recordID int64, confirmedByID *int64, at time.Time) error {
	confirmation := domain.SupervisorConfirmation{
		RecordID:      recordID,
		ConfirmedByID: confirmedByID,
		ConfirmedAt:   at,
	}
	return conn(ctx, r.db).Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"confirmed_by_id", "confirmed_at"}),
	}).Create(&confirmation).Error
}

func (r *confirmationRepository) DeleteByRecord(ctx context.Context, recordID int64) error {
	return conn(ctx, r.db).Where("record_id = ?", recordID).Delete(&domain.SupervisorConfirmation{}).Error
}
