package mysql

import (
	"context"

	domain "loomledger-backend/internal/domain/loom"

	"gorm.io/gorm"
)

type SareeEntryRepository struct{ db *gorm.DB }

func NewSareeEntryRepository(db *gorm.DB) *SareeEntryRepository {
	return &SareeEntryRepository{db: db}
}

func (r *SareeEntryRepository) Create(ctx context.Context, e *domain.SareeEntry) error {
	return wrap(r.db.WithContext(ctx).Create(e).Error)
}

func (r *SareeEntryRepository) GetByID(ctx context.Context, id uint) (*domain.SareeEntry, error) {
	var out domain.SareeEntry
	if err := r.db.WithContext(ctx).First(&out, id).Error; err != nil {
		return nil, wrap(err)
	}
	return &out, nil
}

func (r *SareeEntryRepository) ListByLoom(ctx context.Context, loomID uint) ([]domain.SareeEntry, error) {
	var out []domain.SareeEntry
	err := r.db.WithContext(ctx).
		Where("loom_id = ?", loomID).
		Order("date DESC, id DESC").
		Find(&out).Error
	if err != nil {
		return nil, wrap(err)
	}
	return out, nil
}

func (r *SareeEntryRepository) Save(ctx context.Context, e *domain.SareeEntry) error {
	return wrap(r.db.WithContext(ctx).Save(e).Error)
}

func (r *SareeEntryRepository) Delete(ctx context.Context, id uint) error {
	return wrap(r.db.WithContext(ctx).Delete(&domain.SareeEntry{}, id).Error)
}
