package loom

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeHandloom         Type = "Handloom"
	TypePowerloom        Type = "Powerloom"
	TypeOutsideHandloom  Type = "OutsideHandloom"
	TypeOutsidePowerloom Type = "OutsidePowerloom"
)

// AllTypes returns the loom categories in their fixed display order.
func AllTypes() []Type {
	return []Type{TypeHandloom, TypePowerloom, TypeOutsideHandloom, TypeOutsidePowerloom}
}

func ValidType(t Type) bool {
	switch t {
	case TypeHandloom, TypePowerloom, TypeOutsideHandloom, TypeOutsidePowerloom:
		return true
	}
	return false
}

// Loom is a physical weaving unit tracked as a production + billing entity.
// Balance and remaining capacity are derived at read time, never stored.
type Loom struct {
	ID     uint       `gorm:"primaryKey;column:id" json:"id"`
	LoomNo int        `gorm:"column:loom_no;not null" json:"loom_no"`
	Date   *time.Time `gorm:"column:date;type:date;index" json:"date"`

	WeaverName string `gorm:"column:weaver_name;size:100" json:"weaver_name"`
	WeaverID   *uint  `gorm:"column:weaver_id;index" json:"weaver_id"`

	LoomType  Type   `gorm:"column:loom_type;size:50;not null;index" json:"loom_type"`
	NumSarees int    `gorm:"column:num_sarees;not null;default:0" json:"num_sarees"`
	SareeType string `gorm:"column:saree_type;size:50" json:"saree_type"`
	SareeName string `gorm:"column:saree_name;size:100" json:"saree_name"`

	AmountCredit decimal.Decimal `gorm:"column:amount_credit;type:decimal(10,2);default:0" json:"amount_credit"`
	AmountDebit  decimal.Decimal `gorm:"column:amount_debit;type:decimal(10,2);default:0" json:"amount_debit"`

	// Ownership is immutable after creation.
	UserID uint `gorm:"column:user_id;not null;index" json:"user_id"`

	Warps        []Warp       `gorm:"foreignKey:LoomID" json:"-"`
	Wefts        []Weft       `gorm:"foreignKey:LoomID" json:"-"`
	WarpColors   []WarpColor  `gorm:"foreignKey:LoomID" json:"-"`
	WeftColors   []WeftColor  `gorm:"foreignKey:LoomID" json:"-"`
	SareeEntries []SareeEntry `gorm:"foreignKey:LoomID" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Loom) TableName() string { return "looms" }

// Balance is the net of credits over debits.
func (l *Loom) Balance() decimal.Decimal {
	return l.AmountCredit.Sub(l.AmountDebit)
}

// RemainingSarees reports how many sarees are still left to be added,
// clamped at zero. Over-insertion past num_sarees is permitted; the counter
// is informational, not an enforced quota.
func (l *Loom) RemainingSarees() int {
	if r := l.NumSarees - len(l.SareeEntries); r > 0 {
		return r
	}
	return 0
}

// SareeEntry is one saree's production + payment record within a loom.
type SareeEntry struct {
	ID          uint   `gorm:"primaryKey;column:id" json:"id"`
	SareeNumber int    `gorm:"column:saree_number" json:"saree_number"`
	SareeName   string `gorm:"column:saree_name;size:100" json:"saree_name"`
	SareeImage  string `gorm:"column:saree_image;size:200" json:"saree_image"`
	Colors      string `gorm:"column:colors;size:200" json:"colors"`
	WarpWeft    string `gorm:"column:warp_weft;size:100" json:"warp_weft"`
	Material    string `gorm:"column:material;size:100" json:"material"`
	Remarks     string `gorm:"column:remarks;type:text" json:"remarks"`

	BorderColor string `gorm:"column:border_color;size:100" json:"border_color"`
	BorderHex   string `gorm:"column:border_hex;size:10" json:"border_hex"`
	BodyColor   string `gorm:"column:body_color;size:100" json:"body_color"`
	BodyHex     string `gorm:"column:body_hex;size:10" json:"body_hex"`

	MeenaA    string `gorm:"column:meena_a;size:100" json:"meena_a"`
	MeenaAHex string `gorm:"column:meena_a_hex;size:10" json:"meena_a_hex"`
	MeenaB    string `gorm:"column:meena_b;size:100" json:"meena_b"`
	MeenaBHex string `gorm:"column:meena_b_hex;size:10" json:"meena_b_hex"`
	MeenaC    string `gorm:"column:meena_c;size:100" json:"meena_c"`
	MeenaCHex string `gorm:"column:meena_c_hex;size:10" json:"meena_c_hex"`
	MeenaD    string `gorm:"column:meena_d;size:100" json:"meena_d"`
	MeenaDHex string `gorm:"column:meena_d_hex;size:10" json:"meena_d_hex"`

	AmountCredit decimal.Decimal `gorm:"column:amount_credit;type:decimal(10,2);default:0" json:"amount_credit"`
	AmountDebit  decimal.Decimal `gorm:"column:amount_debit;type:decimal(10,2);default:0" json:"amount_debit"`

	Date           *time.Time `gorm:"column:date;type:date" json:"date"`
	CompletionDate *time.Time `gorm:"column:completion_date;type:date" json:"completion_date"`
	IsCompleted    bool       `gorm:"column:is_completed;default:false" json:"is_completed"`
	Notes          string     `gorm:"column:notes;type:text" json:"notes"`
	QualityRating  *int       `gorm:"column:quality_rating" json:"quality_rating"`

	// Immutable once created.
	LoomID uint `gorm:"column:loom_id;not null;index" json:"loom_id"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SareeEntry) TableName() string { return "saree_entries" }

func (e *SareeEntry) Balance() decimal.Decimal {
	return e.AmountCredit.Sub(e.AmountDebit)
}

// Warp is the thread configuration running lengthwise on a loom.
type Warp struct {
	ID     uint `gorm:"primaryKey;column:id" json:"id"`
	LoomID uint `gorm:"column:loom_id;not null;index" json:"loom_id"`

	ZariBorderLeft  string `gorm:"column:zari_border_left;size:100" json:"zari_border_left"`
	ZariBorderRight string `gorm:"column:zari_border_right;size:100" json:"zari_border_right"`
	ZariBody        string `gorm:"column:zari_body;size:100" json:"zari_body"`
	SilkBorderLeft  string `gorm:"column:silk_border_left;size:100" json:"silk_border_left"`
	SilkBorderRight string `gorm:"column:silk_border_right;size:100" json:"silk_border_right"`
	SilkBody        string `gorm:"column:silk_body;size:100" json:"silk_body"`
}

func (Warp) TableName() string { return "warps" }

// Weft is the crosswise thread configuration, recorded per restocking date.
type Weft struct {
	ID     uint       `gorm:"primaryKey;column:id" json:"id"`
	LoomID uint       `gorm:"column:loom_id;not null;index" json:"loom_id"`
	Date   *time.Time `gorm:"column:date;type:date" json:"date"`
	Zari   string     `gorm:"column:zari;size:100" json:"zari"`
	Silk   string     `gorm:"column:silk;size:100" json:"silk"`
}

func (Weft) TableName() string { return "wefts" }

type WarpColor struct {
	ID          uint   `gorm:"primaryKey;column:id" json:"id"`
	LoomID      uint   `gorm:"column:loom_id;not null;index" json:"loom_id"`
	BorderColor string `gorm:"column:border_color;size:100" json:"border_color"`
	BodyColor   string `gorm:"column:body_color;size:100" json:"body_color"`
}

func (WarpColor) TableName() string { return "warp_colors" }

type WeftColor struct {
	ID     uint   `gorm:"primaryKey;column:id" json:"id"`
	LoomID uint   `gorm:"column:loom_id;not null;index" json:"loom_id"`
	Color  string `gorm:"column:color;size:100" json:"color"`
}

func (WeftColor) TableName() string { return "weft_colors" }
