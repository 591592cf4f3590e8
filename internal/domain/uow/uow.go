package uow

import (
	"context"

	"loomledger-backend/internal/domain/loom"
	"loomledger-backend/internal/domain/payment"
	"loomledger-backend/internal/domain/weaver"
)

// Repos bundles transaction-bound repositories for multi-write flows
// (loom cascade delete, payment recording with bank snapshot).
type Repos struct {
	Looms    loom.Repository
	Entries  loom.EntryRepository
	Weavers  weaver.Repository
	Payments payment.Repository
}

type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
