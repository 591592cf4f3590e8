package saree

import (
	"context"
	"time"

	domain "loomledger-backend/internal/domain/loom"
	"loomledger-backend/internal/domain/fault"
	"loomledger-backend/internal/domain/scope"
	"loomledger-backend/pkg/colorname"

	"github.com/shopspring/decimal"
)

// Usecase is the production ledger: saree entries under a loom. Remaining
// capacity is never checked here; entries past num_sarees are allowed and
// the remaining counter is display-only.
type Usecase struct {
	looms   domain.Repository
	entries domain.EntryRepository
}

func NewUsecase(looms domain.Repository, entries domain.EntryRepository) *Usecase {
	return &Usecase{looms: looms, entries: entries}
}

type AddEntryInput struct {
	SareeNumber   int             `json:"saree_number"`
	SareeName     string          `json:"saree_name"`
	SareeImage    string          `json:"saree_image"`
	Colors        string          `json:"colors"`
	WarpWeft      string          `json:"warp_weft"`
	Material      string          `json:"material"`
	Remarks       string          `json:"remarks"`
	BorderColor   string          `json:"border_color"`
	BorderHex     string          `json:"border_hex"`
	BodyColor     string          `json:"body_color"`
	BodyHex       string          `json:"body_hex"`
	MeenaA        string          `json:"meena_a"`
	MeenaAHex     string          `json:"meena_a_hex"`
	MeenaB        string          `json:"meena_b"`
	MeenaBHex     string          `json:"meena_b_hex"`
	MeenaC        string          `json:"meena_c"`
	MeenaCHex     string          `json:"meena_c_hex"`
	MeenaD        string          `json:"meena_d"`
	MeenaDHex     string          `json:"meena_d_hex"`
	AmountCredit  decimal.Decimal `json:"amount_credit"`
	AmountDebit   decimal.Decimal `json:"amount_debit"`
	Date          *time.Time      `json:"date"`
	Notes         string          `json:"notes"`
	QualityRating *int            `json:"quality_rating"`
}

type UpdateEntryInput struct {
	SareeName     *string          `json:"saree_name"`
	Colors        *string          `json:"colors"`
	Material      *string          `json:"material"`
	Remarks       *string          `json:"remarks"`
	Notes         *string          `json:"notes"`
	QualityRating *int             `json:"quality_rating"`
	AmountCredit  *decimal.Decimal `json:"amount_credit"`
	AmountDebit   *decimal.Decimal `json:"amount_debit"`
}

type EntryDTO struct {
	ID             uint            `json:"id"`
	LoomID         uint            `json:"loom_id"`
	SareeNumber    int             `json:"saree_number"`
	SareeName      string          `json:"saree_name"`
	SareeImage     string          `json:"saree_image"`
	Colors         string          `json:"colors"`
	DisplayColor   string          `json:"display_color"`
	WarpWeft       string          `json:"warp_weft"`
	Material       string          `json:"material"`
	Remarks        string          `json:"remarks"`
	AmountCredit   decimal.Decimal `json:"amount_credit"`
	AmountDebit    decimal.Decimal `json:"amount_debit"`
	Balance        decimal.Decimal `json:"balance"`
	Date           *time.Time      `json:"date"`
	CompletionDate *time.Time      `json:"completion_date"`
	IsCompleted    bool            `json:"is_completed"`
	QualityRating  *int            `json:"quality_rating"`
	CreatedAt      time.Time       `json:"created_at"`
}

func toDTO(e *domain.SareeEntry) *EntryDTO {
	return &EntryDTO{
		ID:             e.ID,
		LoomID:         e.LoomID,
		SareeNumber:    e.SareeNumber,
		SareeName:      e.SareeName,
		SareeImage:     e.SareeImage,
		Colors:         e.Colors,
		DisplayColor:   colorname.Resolve(e.Colors),
		WarpWeft:       e.WarpWeft,
		Material:       e.Material,
		Remarks:        e.Remarks,
		AmountCredit:   e.AmountCredit,
		AmountDebit:    e.AmountDebit,
		Balance:        e.Balance(),
		Date:           e.Date,
		CompletionDate: e.CompletionDate,
		IsCompleted:    e.IsCompleted,
		QualityRating:  e.QualityRating,
		CreatedAt:      e.CreatedAt,
	}
}

// visibleLoom gates entry operations on the parent loom's ownership.
func (u *Usecase) visibleLoom(ctx context.Context, caller scope.Caller, loomID uint) (*domain.Loom, error) {
	policy, err := scope.PolicyFor(caller)
	if err != nil {
		return nil, err
	}
	l, err := u.looms.GetByID(ctx, loomID)
	if err != nil {
		return nil, err
	}
	if !policy.CanAccess(l.UserID) {
		return nil, fault.ErrNotFound
	}
	return l, nil
}

func (u *Usecase) Add(ctx context.Context, caller scope.Caller, loomID uint, in AddEntryInput) (*EntryDTO, error) {
	if _, err := u.visibleLoom(ctx, caller, loomID); err != nil {
		return nil, err
	}
	if in.QualityRating != nil && (*in.QualityRating < 1 || *in.QualityRating > 5) {
		return nil, fault.Validationf("quality_rating must be 1..5")
	}
	e := &domain.SareeEntry{
		LoomID:        loomID,
		SareeNumber:   in.SareeNumber,
		SareeName:     in.SareeName,
		SareeImage:    in.SareeImage,
		Colors:        in.Colors,
		WarpWeft:      in.WarpWeft,
		Material:      in.Material,
		Remarks:       in.Remarks,
		BorderColor:   in.BorderColor,
		BorderHex:     in.BorderHex,
		BodyColor:     in.BodyColor,
		BodyHex:       in.BodyHex,
		MeenaA:        in.MeenaA,
		MeenaAHex:     in.MeenaAHex,
		MeenaB:        in.MeenaB,
		MeenaBHex:     in.MeenaBHex,
		MeenaC:        in.MeenaC,
		MeenaCHex:     in.MeenaCHex,
		MeenaD:        in.MeenaD,
		MeenaDHex:     in.MeenaDHex,
		AmountCredit:  in.AmountCredit,
		AmountDebit:   in.AmountDebit,
		Date:          in.Date,
		Notes:         in.Notes,
		QualityRating: in.QualityRating,
	}
	if err := u.entries.Create(ctx, e); err != nil {
		return nil, err
	}
	return toDTO(e), nil
}

func (u *Usecase) Get(ctx context.Context, caller scope.Caller, id uint) (*EntryDTO, error) {
	e, err := u.entries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := u.visibleLoom(ctx, caller, e.LoomID); err != nil {
		return nil, err
	}
	return toDTO(e), nil
}

func (u *Usecase) ListByLoom(ctx context.Context, caller scope.Caller, loomID uint) ([]EntryDTO, error) {
	if _, err := u.visibleLoom(ctx, caller, loomID); err != nil {
		return nil, err
	}
	entries, err := u.entries.ListByLoom(ctx, loomID)
	if err != nil {
		return nil, err
	}
	out := make([]EntryDTO, 0, len(entries))
	for i := range entries {
		out = append(out, *toDTO(&entries[i]))
	}
	return out, nil
}

func (u *Usecase) Update(ctx context.Context, caller scope.Caller, id uint, in UpdateEntryInput) (*EntryDTO, error) {
	e, err := u.entries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := u.visibleLoom(ctx, caller, e.LoomID); err != nil {
		return nil, err
	}
	if in.QualityRating != nil && (*in.QualityRating < 1 || *in.QualityRating > 5) {
		return nil, fault.Validationf("quality_rating must be 1..5")
	}
	if in.SareeName != nil {
		e.SareeName = *in.SareeName
	}
	if in.Colors != nil {
		e.Colors = *in.Colors
	}
	if in.Material != nil {
		e.Material = *in.Material
	}
	if in.Remarks != nil {
		e.Remarks = *in.Remarks
	}
	if in.Notes != nil {
		e.Notes = *in.Notes
	}
	if in.QualityRating != nil {
		e.QualityRating = in.QualityRating
	}
	if in.AmountCredit != nil {
		e.AmountCredit = *in.AmountCredit
	}
	if in.AmountDebit != nil {
		e.AmountDebit = *in.AmountDebit
	}
	if err := u.entries.Save(ctx, e); err != nil {
		return nil, err
	}
	return toDTO(e), nil
}

// Complete stamps the entry done. Completing twice just refreshes the date.
func (u *Usecase) Complete(ctx context.Context, caller scope.Caller, id uint) (*EntryDTO, error) {
	e, err := u.entries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := u.visibleLoom(ctx, caller, e.LoomID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	e.IsCompleted = true
	e.CompletionDate = &now
	if err := u.entries.Save(ctx, e); err != nil {
		return nil, err
	}
	return toDTO(e), nil
}

func (u *Usecase) Delete(ctx context.Context, caller scope.Caller, id uint) error {
	e, err := u.entries.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := u.visibleLoom(ctx, caller, e.LoomID); err != nil {
		return err
	}
	return u.entries.Delete(ctx, e.ID)
}
