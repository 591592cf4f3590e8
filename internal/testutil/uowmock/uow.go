package uowmock

import (
	"context"

	"loomledger-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

// UoW passes a fixed Repos bundle straight to the callback with no real
// transaction. Point the fields at mocks (or sqlite-backed repos) and every
// WithinTx body runs against them.
type UoW struct {
	Repos uow.Repos
	// WithinTxFn overrides the default pass-through when set.
	WithinTxFn func(ctx context.Context, fn func(r uow.Repos) error) error
}

func New(r uow.Repos) *UoW { return &UoW{Repos: r} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return fn(m.Repos)
}
