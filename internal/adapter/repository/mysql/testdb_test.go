package mysql

import (
	"testing"
	"time"

	loomDomain "loomledger-backend/internal/domain/loom"
	paymentDomain "loomledger-backend/internal/domain/payment"
	weaverDomain "loomledger-backend/internal/domain/weaver"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB and migrates the full schema.
// The entity tags are sqlite-safe (no enum columns), so the domain models
// migrate directly.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&loomDomain.Loom{},
		&loomDomain.SareeEntry{},
		&loomDomain.Warp{},
		&loomDomain.Weft{},
		&loomDomain.WarpColor{},
		&loomDomain.WeftColor{},
		&weaverDomain.Weaver{},
		&paymentDomain.Payment{},
	)
	if err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeLoom(loomNo int, loomType loomDomain.Type, numSarees int, userID uint) *loomDomain.Loom {
	return &loomDomain.Loom{
		LoomNo:       loomNo,
		LoomType:     loomType,
		NumSarees:    numSarees,
		AmountCredit: decimal.Zero,
		AmountDebit:  decimal.Zero,
		UserID:       userID,
	}
}

func makePayment(amount string, pt paymentDomain.Type, date time.Time, loomID *uint) *paymentDomain.Payment {
	return &paymentDomain.Payment{
		Date:        date,
		Amount:      decimal.RequireFromString(amount),
		PaymentType: pt,
		LoomID:      loomID,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
