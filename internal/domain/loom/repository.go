package loom

import "context"

// Query narrows List. A nil OwnerID means no ownership restriction; an
// empty Types slice means all categories.
type Query struct {
	OwnerID *uint
	Types   []Type
}

type Repository interface {
	Create(ctx context.Context, l *Loom) error
	// GetByID loads the loom with its saree entries so derived quantities
	// can be computed without a second round trip.
	GetByID(ctx context.Context, id uint) (*Loom, error)
	List(ctx context.Context, q Query) ([]Loom, error)
	Save(ctx context.Context, l *Loom) error
	// Delete removes the loom row only; cascading to children is the
	// unit of work's job so it happens in one transaction.
	Delete(ctx context.Context, id uint) error

	AddWarp(ctx context.Context, w *Warp) error
	AddWeft(ctx context.Context, w *Weft) error
	AddWarpColor(ctx context.Context, c *WarpColor) error
	AddWeftColor(ctx context.Context, c *WeftColor) error
	DeleteChildren(ctx context.Context, loomID uint) error
}

type EntryRepository interface {
	Create(ctx context.Context, e *SareeEntry) error
	GetByID(ctx context.Context, id uint) (*SareeEntry, error)
	ListByLoom(ctx context.Context, loomID uint) ([]SareeEntry, error)
	Save(ctx context.Context, e *SareeEntry) error
	Delete(ctx context.Context, id uint) error
}
