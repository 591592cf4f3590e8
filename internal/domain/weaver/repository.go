package weaver

import "context"

type Repository interface {
	Create(ctx context.Context, w *Weaver) error
	GetByID(ctx context.Context, id uint) (*Weaver, error)
	// List returns weavers newest first; ownerID nil means unrestricted.
	List(ctx context.Context, ownerID *uint) ([]Weaver, error)
	Save(ctx context.Context, w *Weaver) error
	Delete(ctx context.Context, id uint) error
}
