package payment

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	// DistinctDates returns the dates having at least one payment, newest
	// first. With ownerID set, only dates where some payment's loom belongs
	// to that owner are returned.
	DistinctDates(ctx context.Context, ownerID *uint) ([]time.Time, error)
	// ListByDate returns the payments of one exact date with Loom and
	// Weaver loaded, for category grouping.
	ListByDate(ctx context.Context, date time.Time) ([]Payment, error)
	DeleteByLoom(ctx context.Context, loomID uint) error
}
