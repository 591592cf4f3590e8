package weavermock

import (
	"context"
	"errors"

	domain "loomledger-backend/internal/domain/weaver"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("weavermock: method not implemented")

type Repo struct {
	CreateFn  func(ctx context.Context, w *domain.Weaver) error
	GetByIDFn func(ctx context.Context, id uint) (*domain.Weaver, error)
	ListFn    func(ctx context.Context, ownerID *uint) ([]domain.Weaver, error)
	SaveFn    func(ctx context.Context, w *domain.Weaver) error
	DeleteFn  func(ctx context.Context, id uint) error
}

func (m *Repo) Create(ctx context.Context, w *domain.Weaver) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, w)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint) (*domain.Weaver, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context, ownerID *uint) ([]domain.Weaver, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, ownerID)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, w *domain.Weaver) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, w)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
