package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hygiene-check-api/internal/domain"
)

// RecordItemRepository - upsert позиций по ключу (record, category)
type RecordItemRepository interface {
	Upsert(ctx context.Context, item *domain.RecordItem) error
	ListByRecord(ctx context.Context, recordID int64) ([]domain.RecordItem, error)
}

type recordItemRepository struct {
	db *gorm.DB
}

// NewRecordItemRepository создаёт новый экземпляр репозитория
func NewRecordItemRepository(db *gorm.DB) RecordItemRepository {
	return &recordItemRepository{db: db}
}

func (r *recordItemRepository) Upsert(ctx context.Context, item *domain.RecordItem) error {
	return conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_id"}, {Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_normal", "value", "value_text", "comment", "updated_at"}),
	}).Create(item).Error
}

func (r *recordItemRepository) ListByRecord(ctx context.Context, recordID int64) ([]domain.RecordItem, error) {
	var items []domain.RecordItem
	err := conn(ctx, r.db).Where("record_id = ?", recordID).Order("id ASC").Find(&items).Error
	return items, err
}
