package paymentmock

import (
	"context"
	"errors"
	"time"

	domain "loomledger-backend/internal/domain/payment"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("paymentmock: method not implemented")

type Repo struct {
	CreateFn        func(ctx context.Context, p *domain.Payment) error
	DistinctDatesFn func(ctx context.Context, ownerID *uint) ([]time.Time, error)
	ListByDateFn    func(ctx context.Context, date time.Time) ([]domain.Payment, error)
	DeleteByLoomFn  func(ctx context.Context, loomID uint) error
}

func (m *Repo) Create(ctx context.Context, p *domain.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) DistinctDates(ctx context.Context, ownerID *uint) ([]time.Time, error) {
	if m.DistinctDatesFn != nil {
		return m.DistinctDatesFn(ctx, ownerID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByDate(ctx context.Context, date time.Time) ([]domain.Payment, error) {
	if m.ListByDateFn != nil {
		return m.ListByDateFn(ctx, date)
	}
	return nil, errUnimplemented
}

func (m *Repo) DeleteByLoom(ctx context.Context, loomID uint) error {
	if m.DeleteByLoomFn != nil {
		return m.DeleteByLoomFn(ctx, loomID)
	}
	return nil
}
