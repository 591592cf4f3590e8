package payment

import (
	"time"

	"loomledger-backend/internal/domain/loom"
	"loomledger-backend/internal/domain/weaver"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeCredit Type = "credit"
	TypeDebit  Type = "debit"
)

func ValidType(t Type) bool { return t == TypeCredit || t == TypeDebit }

// Payment is one ledger entry. Append-only in normal flow; rows disappear
// only when their parent loom is deleted. The bank fields are a snapshot of
// the weaver's details at recording time, so later edits to the weaver do
// not rewrite history.
type Payment struct {
	ID          uint            `gorm:"primaryKey;column:id" json:"id"`
	Date        time.Time       `gorm:"column:date;type:date;not null;index" json:"date"`
	Amount      decimal.Decimal `gorm:"column:amount;type:decimal(10,2);not null" json:"amount"`
	PaymentType Type            `gorm:"column:payment_type;size:10;not null" json:"payment_type"`
	Description string          `gorm:"column:description;size:255" json:"description"`

	LoomID   *uint `gorm:"column:loom_id;index" json:"loom_id"`
	SareeID  *uint `gorm:"column:saree_id;index" json:"saree_id"`
	WeaverID *uint `gorm:"column:weaver_id;index" json:"weaver_id"`

	NameInBank    string `gorm:"column:name_in_bank;size:100" json:"name_in_bank"`
	AccountNumber string `gorm:"column:account_number;size:50" json:"account_number"`
	IFSCCode      string `gorm:"column:ifsc_code;size:50" json:"ifsc_code"`
	AccountType   string `gorm:"column:account_type;size:50" json:"account_type"`

	Loom   *loom.Loom     `gorm:"foreignKey:LoomID" json:"-"`
	Weaver *weaver.Weaver `gorm:"foreignKey:WeaverID" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Payment) TableName() string { return "payments" }
