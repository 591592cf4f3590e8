package loommock

import (
	"context"
	"errors"

	domain "loomledger-backend/internal/domain/loom"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("loommock: method not implemented")

// Repo is a function-backed mock satisfying loom.Repository. Fill in the
// fields a test needs; unfilled lookups error, unfilled writes succeed.
type Repo struct {
	CreateFn         func(ctx context.Context, l *domain.Loom) error
	GetByIDFn        func(ctx context.Context, id uint) (*domain.Loom, error)
	ListFn           func(ctx context.Context, q domain.Query) ([]domain.Loom, error)
	SaveFn           func(ctx context.Context, l *domain.Loom) error
	DeleteFn         func(ctx context.Context, id uint) error
	AddWarpFn        func(ctx context.Context, w *domain.Warp) error
	AddWeftFn        func(ctx context.Context, w *domain.Weft) error
	AddWarpColorFn   func(ctx context.Context, c *domain.WarpColor) error
	AddWeftColorFn   func(ctx context.Context, c *domain.WeftColor) error
	DeleteChildrenFn func(ctx context.Context, loomID uint) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loom) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint) (*domain.Loom, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context, q domain.Query) ([]domain.Loom, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, q)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, l *domain.Loom) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) AddWarp(ctx context.Context, w *domain.Warp) error {
	if m.AddWarpFn != nil {
		return m.AddWarpFn(ctx, w)
	}
	return nil
}

func (m *Repo) AddWeft(ctx context.Context, w *domain.Weft) error {
	if m.AddWeftFn != nil {
		return m.AddWeftFn(ctx, w)
	}
	return nil
}

func (m *Repo) AddWarpColor(ctx context.Context, c *domain.WarpColor) error {
	if m.AddWarpColorFn != nil {
		return m.AddWarpColorFn(ctx, c)
	}
	return nil
}

func (m *Repo) AddWeftColor(ctx context.Context, c *domain.WeftColor) error {
	if m.AddWeftColorFn != nil {
		return m.AddWeftColorFn(ctx, c)
	}
	return nil
}

func (m *Repo) DeleteChildren(ctx context.Context, loomID uint) error {
	if m.DeleteChildrenFn != nil {
		return m.DeleteChildrenFn(ctx, loomID)
	}
	return nil
}

var _ domain.EntryRepository = (*EntryRepo)(nil)

// EntryRepo mocks loom.EntryRepository the same way.
type EntryRepo struct {
	CreateFn     func(ctx context.Context, e *domain.SareeEntry) error
	GetByIDFn    func(ctx context.Context, id uint) (*domain.SareeEntry, error)
	ListByLoomFn func(ctx context.Context, loomID uint) ([]domain.SareeEntry, error)
	SaveFn       func(ctx context.Context, e *domain.SareeEntry) error
	DeleteFn     func(ctx context.Context, id uint) error
}

func (m *EntryRepo) Create(ctx context.Context, e *domain.SareeEntry) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *EntryRepo) GetByID(ctx context.Context, id uint) (*domain.SareeEntry, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *EntryRepo) ListByLoom(ctx context.Context, loomID uint) ([]domain.SareeEntry, error) {
	if m.ListByLoomFn != nil {
		return m.ListByLoomFn(ctx, loomID)
	}
	return nil, errUnimplemented
}

func (m *EntryRepo) Save(ctx context.Context, e *domain.SareeEntry) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, e)
	}
	return nil
}

func (m *EntryRepo) Delete(ctx context.Context, id uint) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
