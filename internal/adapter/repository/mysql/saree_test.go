package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"loomledger-backend/internal/domain/fault"
	loomDomain "loomledger-backend/internal/domain/loom"

	"github.com/shopspring/decimal"
)

func TestSareeEntryCRUD(t *testing.T) {
	db := openTestDB(t)
	looms := NewLoomRepository(db)
	entries := NewSareeEntryRepository(db)
	ctx := context.Background()

	l := makeLoom(1, loomDomain.TypeHandloom, 10, 1)
	if err := looms.Create(ctx, l); err != nil {
		t.Fatalf("create loom: %v", err)
	}

	e := &loomDomain.SareeEntry{
		LoomID:       l.ID,
		SareeNumber:  1,
		SareeName:    "Kanjivaram",
		Colors:       "#ff0000",
		AmountCredit: decimal.RequireFromString("450.00"),
		AmountDebit:  decimal.RequireFromString("150.00"),
	}
	if err := entries.Create(ctx, e); err != nil {
		t.Fatalf("create entry: %v", err)
	}

	got, err := entries.GetByID(ctx, e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.SareeName != "Kanjivaram" || !got.Balance().Equal(decimal.RequireFromString("300.00")) {
		t.Fatalf("unexpected entry: %+v", got)
	}

	now := time.Now().UTC()
	got.IsCompleted = true
	got.CompletionDate = &now
	if err := entries.Save(ctx, got); err != nil {
		t.Fatalf("save: %v", err)
	}
	again, err := entries.GetByID(ctx, e.ID)
	if err != nil {
		t.Fatalf("re-get: %v", err)
	}
	if !again.IsCompleted || again.CompletionDate == nil {
		t.Fatalf("completion not persisted: %+v", again)
	}

	if err := entries.Delete(ctx, e.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := entries.GetByID(ctx, e.ID); !errors.Is(err, fault.ErrNotFound) {
		t.Fatalf("err = %v, want fault.ErrNotFound", err)
	}
}

func TestSareeEntryListByLoom(t *testing.T) {
	db := openTestDB(t)
	looms := NewLoomRepository(db)
	entries := NewSareeEntryRepository(db)
	ctx := context.Background()

	a := makeLoom(1, loomDomain.TypeHandloom, 10, 1)
	b := makeLoom(2, loomDomain.TypePowerloom, 10, 1)
	for _, l := range []*loomDomain.Loom{a, b} {
		if err := looms.Create(ctx, l); err != nil {
			t.Fatalf("create loom: %v", err)
		}
	}
	for i := 0; i < 3; i++ {
		if err := entries.Create(ctx, &loomDomain.SareeEntry{LoomID: a.ID, SareeNumber: i + 1}); err != nil {
			t.Fatalf("create entry: %v", err)
		}
	}
	if err := entries.Create(ctx, &loomDomain.SareeEntry{LoomID: b.ID, SareeNumber: 1}); err != nil {
		t.Fatalf("create entry: %v", err)
	}

	out, err := entries.ListByLoom(ctx, a.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	for _, e := range out {
		if e.LoomID != a.ID {
			t.Fatalf("foreign entry leaked: %+v", e)
		}
	}
}
