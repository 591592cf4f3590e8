package mysql

import (
	"context"
	"errors"

	"loomledger-backend/internal/domain/fault"
	domain "loomledger-backend/internal/domain/loom"

	"gorm.io/gorm"
)

// wrap translates driver errors into the shared taxonomy: record-missing
// becomes fault.ErrNotFound, anything else a fault.ErrStorage wrap.
func wrap(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fault.ErrNotFound
	}
	return fault.Storage(err)
}

type LoomRepository struct{ db *gorm.DB }

func NewLoomRepository(db *gorm.DB) *LoomRepository { return &LoomRepository{db: db} }

func (r *LoomRepository) Create(ctx context.Context, l *domain.Loom) error {
	return wrap(r.db.WithContext(ctx).Create(l).Error)
}

func (r *LoomRepository) GetByID(ctx context.Context, id uint) (*domain.Loom, error) {
	var out domain.Loom
	res := r.db.WithContext(ctx).Preload("SareeEntries").First(&out, id)
	if res.Error != nil {
		return nil, wrap(res.Error)
	}
	return &out, nil
}

func (r *LoomRepository) List(ctx context.Context, q domain.Query) ([]domain.Loom, error) {
	tx := r.db.WithContext(ctx).Preload("SareeEntries")
	if q.OwnerID != nil {
		tx = tx.Where("user_id = ?", *q.OwnerID)
	}
	if len(q.Types) > 0 {
		tx = tx.Where("loom_type IN ?", q.Types)
	}
	var out []domain.Loom
	if err := tx.Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, wrap(err)
	}
	return out, nil
}

func (r *LoomRepository) Save(ctx context.Context, l *domain.Loom) error {
	// Save with preloaded children would try to upsert them too; restrict
	// the write to the looms table.
	return wrap(r.db.WithContext(ctx).Omit("SareeEntries", "Warps", "Wefts", "WarpColors", "WeftColors").Save(l).Error)
}

func (r *LoomRepository) Delete(ctx context.Context, id uint) error {
	return wrap(r.db.WithContext(ctx).Delete(&domain.Loom{}, id).Error)
}

func (r *LoomRepository) AddWarp(ctx context.Context, w *domain.Warp) error {
	return wrap(r.db.WithContext(ctx).Create(w).Error)
}

func (r *LoomRepository) AddWeft(ctx context.Context, w *domain.Weft) error {
	return wrap(r.db.WithContext(ctx).Create(w).Error)
}

func (r *LoomRepository) AddWarpColor(ctx context.Context, c *domain.WarpColor) error {
	return wrap(r.db.WithContext(ctx).Create(c).Error)
}

func (r *LoomRepository) AddWeftColor(ctx context.Context, c *domain.WeftColor) error {
	return wrap(r.db.WithContext(ctx).Create(c).Error)
}

// DeleteChildren clears every structural and production child of a loom.
// Runs inside the unit of work's transaction during cascade delete.
func (r *LoomRepository) DeleteChildren(ctx context.Context, loomID uint) error {
	tx := r.db.WithContext(ctx)
	for _, model := range []any{
		&domain.Warp{}, &domain.Weft{}, &domain.WarpColor{}, &domain.WeftColor{}, &domain.SareeEntry{},
	} {
		if err := tx.Where("loom_id = ?", loomID).Delete(model).Error; err != nil {
			return wrap(err)
		}
	}
	return nil
}
