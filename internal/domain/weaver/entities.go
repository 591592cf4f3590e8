package weaver

import (
	"time"

	"github.com/shopspring/decimal"
)

// Weaver is a worker entity, optionally assigned to looms. Bank details
// here are the current ones; payments snapshot them at recording time.
type Weaver struct {
	ID          uint   `gorm:"primaryKey;column:id" json:"id"`
	WeaverName  string `gorm:"column:weavername;size:100;not null" json:"weavername"`
	PhoneNumber string `gorm:"column:phonenumber;size:15;not null" json:"phonenumber"`

	AccountNumber string `gorm:"column:account_number;size:30" json:"account_number"`
	IFSCCode      string `gorm:"column:ifsc_code;size:20" json:"ifsc_code"`
	AccountType   string `gorm:"column:account_type;size:20" json:"account_type"`
	NameInBank    string `gorm:"column:name_in_bank;size:100" json:"name_in_bank"`

	// Stored filename of the uploaded identity document, if any.
	AadharCard string `gorm:"column:aadharcard;size:200" json:"aadharcard"`
	Address    string `gorm:"column:address;type:text" json:"address"`
	Skills     string `gorm:"column:skills;type:text" json:"skills"`

	IsActive    bool            `gorm:"column:is_active;default:true" json:"is_active"`
	TotalCredit decimal.Decimal `gorm:"column:total_credit;type:decimal(10,2);default:0" json:"total_credit"`

	UserID uint `gorm:"column:user_id;not null;index" json:"user_id"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Weaver) TableName() string { return "weavers" }
