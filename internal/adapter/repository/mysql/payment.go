package mysql

import (
	"context"
	"time"

	domain "loomledger-backend/internal/domain/payment"

	"gorm.io/gorm"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	return wrap(r.db.WithContext(ctx).Create(p).Error)
}

func (r *PaymentRepository) DistinctDates(ctx context.Context, ownerID *uint) ([]time.Time, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Payment{})
	if ownerID != nil {
		tx = tx.Joins("JOIN looms ON looms.id = payments.loom_id").
			Where("looms.user_id = ?", *ownerID)
	}
	var out []time.Time
	err := tx.Distinct("payments.date").
		Order("payments.date DESC").
		Pluck("payments.date", &out).Error
	if err != nil {
		return nil, wrap(err)
	}
	return out, nil
}

func (r *PaymentRepository) ListByDate(ctx context.Context, date time.Time) ([]domain.Payment, error) {
	var out []domain.Payment
	err := r.db.WithContext(ctx).
		Preload("Loom").
		Preload("Weaver").
		Where("date = ?", date).
		Order("id ASC").
		Find(&out).Error
	if err != nil {
		return nil, wrap(err)
	}
	return out, nil
}

func (r *PaymentRepository) DeleteByLoom(ctx context.Context, loomID uint) error {
	return wrap(r.db.WithContext(ctx).Where("loom_id = ?", loomID).Delete(&domain.Payment{}).Error)
}
