package mysql

import (
	"context"

	"loomledger-backend/internal/domain/uow"

	"gorm.io/gorm"
)

// GormUoW runs a set of repository calls inside one gorm transaction.
// Any error rolls the whole write back, so multi-table flows (loom
// cascade delete, payment with bank snapshot) never partially commit.
type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Looms:    &LoomRepository{db: tx},
			Entries:  &SareeEntryRepository{db: tx},
			Weavers:  &WeaverRepository{db: tx},
			Payments: &PaymentRepository{db: tx},
		}
		return fn(r)
	})
}
