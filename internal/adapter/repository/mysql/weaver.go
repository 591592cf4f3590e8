package mysql

import (
	"context"

	domain "loomledger-backend/internal/domain/weaver"

	"gorm.io/gorm"
)

type WeaverRepository struct{ db *gorm.DB }

func NewWeaverRepository(db *gorm.DB) *WeaverRepository { return &WeaverRepository{db: db} }

func (r *WeaverRepository) Create(ctx context.Context, w *domain.Weaver) error {
	return wrap(r.db.WithContext(ctx).Create(w).Error)
}

func (r *WeaverRepository) GetByID(ctx context.Context, id uint) (*domain.Weaver, error) {
	var out domain.Weaver
	if err := r.db.WithContext(ctx).First(&out, id).Error; err != nil {
		return nil, wrap(err)
	}
	return &out, nil
}

func (r *WeaverRepository) List(ctx context.Context, ownerID *uint) ([]domain.Weaver, error) {
	tx := r.db.WithContext(ctx)
	if ownerID != nil {
		tx = tx.Where("user_id = ?", *ownerID)
	}
	var out []domain.Weaver
	if err := tx.Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, wrap(err)
	}
	return out, nil
}

func (r *WeaverRepository) Save(ctx context.Context, w *domain.Weaver) error {
	return wrap(r.db.WithContext(ctx).Save(w).Error)
}

func (r *WeaverRepository) Delete(ctx context.Context, id uint) error {
	return wrap(r.db.WithContext(ctx).Delete(&domain.Weaver{}, id).Error)
}
