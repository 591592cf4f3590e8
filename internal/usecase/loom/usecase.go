package loom

import (
	"context"
	"errors"
	"time"

	domain "loomledger-backend/internal/domain/loom"
	"loomledger-backend/internal/domain/fault"
	"loomledger-backend/internal/domain/scope"
	"loomledger-backend/internal/domain/uow"

	"github.com/shopspring/decimal"
)

// Usecase is the loom registry: create/read/update/delete of looms and
// their structural sub-records, with role-scoped visibility.
type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

type CreateLoomInput struct {
	LoomNo     int         `json:"loom_no"`
	LoomType   domain.Type `json:"loom_type"`
	NumSarees  int         `json:"num_sarees"`
	SareeType  string      `json:"saree_type"`
	SareeName  string      `json:"saree_name"`
	WeaverID   *uint       `json:"weaver_id"`
	WeaverName string      `json:"weaver_name"`
	Date       *time.Time  `json:"date"`
}

type UpdateLoomInput struct {
	LoomNo     *int         `json:"loom_no"`
	LoomType   *domain.Type `json:"loom_type"`
	NumSarees  *int         `json:"num_sarees"`
	SareeType  *string      `json:"saree_type"`
	SareeName  *string      `json:"saree_name"`
	WeaverID   *uint        `json:"weaver_id"`
	WeaverName *string      `json:"weaver_name"`
}

// LoomDTO carries the stored fields plus the derived quantities; balance
// and remaining_sarees are computed per read, never persisted.
type LoomDTO struct {
	ID              uint            `json:"id"`
	LoomNo          int             `json:"loom_no"`
	LoomType        domain.Type     `json:"loom_type"`
	NumSarees       int             `json:"num_sarees"`
	SareeType       string          `json:"saree_type"`
	SareeName       string          `json:"saree_name"`
	WeaverID        *uint           `json:"weaver_id"`
	WeaverName      string          `json:"weaver_name"`
	AmountCredit    decimal.Decimal `json:"amount_credit"`
	AmountDebit     decimal.Decimal `json:"amount_debit"`
	Balance         decimal.Decimal `json:"balance"`
	RemainingSarees int             `json:"remaining_sarees"`
	Date            *time.Time      `json:"date"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func toDTO(l *domain.Loom) *LoomDTO {
	return &LoomDTO{
		ID:              l.ID,
		LoomNo:          l.LoomNo,
		LoomType:        l.LoomType,
		NumSarees:       l.NumSarees,
		SareeType:       l.SareeType,
		SareeName:       l.SareeName,
		WeaverID:        l.WeaverID,
		WeaverName:      l.WeaverName,
		AmountCredit:    l.AmountCredit,
		AmountDebit:     l.AmountDebit,
		Balance:         l.Balance(),
		RemainingSarees: l.RemainingSarees(),
		Date:            l.Date,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}

func (u *Usecase) Create(ctx context.Context, caller scope.Caller, in CreateLoomInput) (*LoomDTO, error) {
	policy, err := scope.PolicyFor(caller)
	if err != nil {
		return nil, err
	}
	if in.LoomNo <= 0 {
		return nil, fault.Validationf("loom_no is required")
	}
	if !domain.ValidType(in.LoomType) {
		return nil, fault.Validationf("unknown loom_type %q", in.LoomType)
	}
	if in.NumSarees < 0 {
		return nil, fault.Validationf("num_sarees must be >= 0")
	}

	l := &domain.Loom{
		LoomNo:       in.LoomNo,
		LoomType:     in.LoomType,
		NumSarees:    in.NumSarees,
		SareeType:    in.SareeType,
		SareeName:    in.SareeName,
		WeaverID:     in.WeaverID,
		WeaverName:   in.WeaverName,
		Date:         in.Date,
		AmountCredit: decimal.Zero,
		AmountDebit:  decimal.Zero,
		UserID:       policy.UserID(),
	}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

// visible loads a loom and applies the direct-access ownership gate. Denial
// surfaces as NotFound so existence is not revealed to non-owners.
func (u *Usecase) visible(ctx context.Context, policy *scope.Policy, id uint) (*domain.Loom, error) {
	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanAccess(l.UserID) {
		return nil, fault.ErrNotFound
	}
	return l, nil
}

func (u *Usecase) Get(ctx context.Context, caller scope.Caller, id uint) (*LoomDTO, error) {
	policy, err := scope.PolicyFor(caller)
	if err != nil {
		return nil, err
	}
	l, err := u.visible(ctx, policy, id)
	if err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

// List returns the looms visible to the caller: everything for the owner,
// otherwise only the caller's own looms in their role's category.
func (u *Usecase) List(ctx context.Context, caller scope.Caller) ([]LoomDTO, error) {
	policy, err := scope.PolicyFor(caller)
	if err != nil {
		return nil, err
	}
	q := domain.Query{OwnerID: policy.OwnerFilter()}
	if !policy.IsOwner() {
		q.Types = policy.VisibleCategories()
	}
	looms, err := u.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	out := make([]LoomDTO, 0, len(looms))
	for i := range looms {
		out = append(out, *toDTO(&looms[i]))
	}
	return out, nil
}

func (u *Usecase) Update(ctx context.Context, caller scope.Caller, id uint, in UpdateLoomInput) (*LoomDTO, error) {
	policy, err := scope.PolicyFor(caller)
	if err != nil {
		return nil, err
	}
	l, err := u.visible(ctx, policy, id)
	if err != nil {
		return nil, err
	}
	if in.LoomType != nil && !domain.ValidType(*in.LoomType) {
		return nil, fault.Validationf("unknown loom_type %q", *in.LoomType)
	}
	if in.NumSarees != nil && *in.NumSarees < 0 {
		return nil, fault.Validationf("num_sarees must be >= 0")
	}
	if in.LoomNo != nil {
		l.LoomNo = *in.LoomNo
	}
	if in.LoomType != nil {
		l.LoomType = *in.LoomType
	}
	if in.NumSarees != nil {
		l.NumSarees = *in.NumSarees
	}
	if in.SareeType != nil {
		l.SareeType = *in.SareeType
	}
	if in.SareeName != nil {
		l.SareeName = *in.SareeName
	}
	if in.WeaverID != nil {
		l.WeaverID = in.WeaverID
	}
	if in.WeaverName != nil {
		l.WeaverName = *in.WeaverName
	}
	if err := u.repo.Save(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

// Delete removes the loom and every child row (configs, saree entries,
// payments) in one transaction.
func (u *Usecase) Delete(ctx context.Context, caller scope.Caller, id uint) error {
	policy, err := scope.PolicyFor(caller)
	if err != nil {
		return err
	}
	if u.uow == nil {
		return errors.New("loom delete requires a unit of work")
	}
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Looms.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !policy.CanAccess(l.UserID) {
			return fault.ErrNotFound
		}
		if err := r.Payments.DeleteByLoom(ctx, l.ID); err != nil {
			return err
		}
		if err := r.Looms.DeleteChildren(ctx, l.ID); err != nil {
			return err
		}
		return r.Looms.Delete(ctx, l.ID)
	})
}

type WarpInput struct {
	ZariBorderLeft  string `json:"zari_border_left"`
	ZariBorderRight string `json:"zari_border_right"`
	ZariBody        string `json:"zari_body"`
	SilkBorderLeft  string `json:"silk_border_left"`
	SilkBorderRight string `json:"silk_border_right"`
	SilkBody        string `json:"silk_body"`
}

type WeftInput struct {
	Date *time.Time `json:"date"`
	Zari string     `json:"zari"`
	Silk string     `json:"silk"`
}

type WarpColorInput struct {
	BorderColor string `json:"border_color"`
	BodyColor   string `json:"body_color"`
}

type WeftColorInput struct {
	Color string `json:"color"`
}

func (u *Usecase) AddWarp(ctx context.Context, caller scope.Caller, loomID uint, in WarpInput) (*domain.Warp, error) {
	policy, err := scope.PolicyFor(caller)
	if err != nil {
		return nil, err
	}
	if _, err := u.visible(ctx, policy, loomID); err != nil {
		return nil, err
	}
	w := &domain.Warp{
		LoomID:          loomID,
		ZariBorderLeft:  in.ZariBorderLeft,
		ZariBorderRight: in.ZariBorderRight,
		ZariBody:        in.ZariBody,
		SilkBorderLeft:  in.SilkBorderLeft,
		SilkBorderRight: in.SilkBorderRight,
		SilkBody:        in.SilkBody,
	}
	if err := u.repo.AddWarp(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (u *Usecase) AddWeft(ctx context.Context, caller scope.Caller, loomID uint, in WeftInput) (*domain.Weft, error) {
	policy, err := scope.PolicyFor(caller)
	if err != nil {
		return nil, err
	}
	if _, err := u.visible(ctx, policy, loomID); err != nil {
		return nil, err
	}
	w := &domain.Weft{LoomID: loomID, Date: in.Date, Zari: in.Zari, Silk: in.Silk}
	if err := u.repo.AddWeft(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (u *Usecase) AddWarpColor(ctx context.Context, caller scope.Caller, loomID uint, in WarpColorInput) (*domain.WarpColor, error) {
	policy, err := scope.PolicyFor(caller)
	if err != nil {
		return nil, err
	}
	if _, err := u.visible(ctx, policy, loomID); err != nil {
		return nil, err
	}
	c := &domain.WarpColor{LoomID: loomID, BorderColor: in.BorderColor, BodyColor: in.BodyColor}
	if err := u.repo.AddWarpColor(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *Usecase) AddWeftColor(ctx context.Context, caller scope.Caller, loomID uint, in WeftColorInput) (*domain.WeftColor, error) {
	policy, err := scope.PolicyFor(caller)
	if err != nil {
		return nil, err
	}
	if _, err := u.visible(ctx, policy, loomID); err != nil {
		return nil, err
	}
	c := &domain.WeftColor{LoomID: loomID, Color: in.Color}
	if err := u.repo.AddWeftColor(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
