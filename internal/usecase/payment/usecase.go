package payment

import (
	"context"
	"time"

	"loomledger-backend/internal/domain/fault"
	domainLoom "loomledger-backend/internal/domain/loom"
	domain "loomledger-backend/internal/domain/payment"
	"loomledger-backend/internal/domain/scope"
	"loomledger-backend/internal/domain/uow"

	"github.com/shopspring/decimal"
)

// Usecase is the payment ledger: recording entries with a bank-detail
// snapshot, and the date-keyed, category-grouped read side.
type Usecase struct {
	payments domain.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(p domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{payments: p, uow: tx}
}

type RecordInput struct {
	Date        *time.Time      `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentType domain.Type     `json:"payment_type"`
	Description string          `json:"description"`
	LoomID      *uint           `json:"loom_id"`
	SareeID     *uint           `json:"saree_id"`
	WeaverID    *uint           `json:"weaver_id"`
}

type PaymentDTO struct {
	ID            uint            `json:"id"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentType   domain.Type     `json:"payment_type"`
	Description   string          `json:"description"`
	LoomID        *uint           `json:"loom_id"`
	SareeID       *uint           `json:"saree_id"`
	WeaverID      *uint           `json:"weaver_id"`
	WeaverName    string          `json:"weaver_name,omitempty"`
	NameInBank    string          `json:"name_in_bank,omitempty"`
	AccountNumber string          `json:"account_number,omitempty"`
	IFSCCode      string          `json:"ifsc_code,omitempty"`
	AccountType   string          `json:"account_type,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// DayStatement is the grouped view of one date's payments. All four
// category keys are always present; categories outside the caller's role
// come back as empty lists rather than missing keys.
type DayStatement struct {
	Date       time.Time                           `json:"date"`
	Groups     map[domainLoom.Type][]PaymentDTO    `json:"groups"`
	Totals     map[domainLoom.Type]decimal.Decimal `json:"totals"`
	GrandTotal decimal.Decimal                     `json:"grand_total"`
}

func toDTO(p *domain.Payment) PaymentDTO {
	dto := PaymentDTO{
		ID:            p.ID,
		Date:          p.Date,
		Amount:        p.Amount,
		PaymentType:   p.PaymentType,
		Description:   p.Description,
		LoomID:        p.LoomID,
		SareeID:       p.SareeID,
		WeaverID:      p.WeaverID,
		NameInBank:    p.NameInBank,
		AccountNumber: p.AccountNumber,
		IFSCCode:      p.IFSCCode,
		AccountType:   p.AccountType,
		CreatedAt:     p.CreatedAt,
	}
	if p.Weaver != nil {
		dto.WeaverName = p.Weaver.WeaverName
	}
	return dto
}

// Record appends one ledger entry. Bank details are copied from the
// referenced weaver inside the same transaction so a failed insert never
// leaves a dangling snapshot. Resubmitting the same request creates a
// duplicate entry; idempotency is the caller's responsibility.
func (u *Usecase) Record(ctx context.Context, caller scope.Caller, in RecordInput) (*PaymentDTO, error) {
	policy, err := scope.PolicyFor(caller)
	if err != nil {
		return nil, err
	}
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fault.Validationf("amount must be positive")
	}
	if !domain.ValidType(in.PaymentType) {
		return nil, fault.Validationf("payment_type must be credit or debit")
	}
	if in.LoomID == nil && in.SareeID == nil && in.WeaverID == nil {
		return nil, fault.Validationf("payment must reference a loom, saree, or weaver")
	}
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if in.Date != nil {
		date = in.Date.UTC().Truncate(24 * time.Hour)
	}

	p := &domain.Payment{
		Date:        date,
		Amount:      in.Amount,
		PaymentType: in.PaymentType,
		Description: in.Description,
		LoomID:      in.LoomID,
		SareeID:     in.SareeID,
		WeaverID:    in.WeaverID,
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if in.LoomID != nil {
			l, err := r.Looms.GetByID(ctx, *in.LoomID)
			if err != nil {
				return err
			}
			if !policy.CanAccess(l.UserID) {
				return fault.ErrNotFound
			}
		}
		if in.SareeID != nil {
			e, err := r.Entries.GetByID(ctx, *in.SareeID)
			if err != nil {
				return err
			}
			// The entry's owner is its parent loom's owner.
			l, err := r.Looms.GetByID(ctx, e.LoomID)
			if err != nil {
				return err
			}
			if !policy.CanAccess(l.UserID) {
				return fault.ErrNotFound
			}
		}
		if in.WeaverID != nil {
			w, err := r.Weavers.GetByID(ctx, *in.WeaverID)
			if err != nil {
				return err
			}
			if !policy.CanAccess(w.UserID) {
				return fault.ErrNotFound
			}
			p.NameInBank = w.NameInBank
			p.AccountNumber = w.AccountNumber
			p.IFSCCode = w.IFSCCode
			p.AccountType = w.AccountType
		}
		return r.Payments.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	dto := toDTO(p)
	return &dto, nil
}

// Dates lists the distinct dates having at least one payment, newest
// first. Non-owners only see dates where some payment lands on one of
// their own looms.
func (u *Usecase) Dates(ctx context.Context, caller scope.Caller) ([]time.Time, error) {
	policy, err := scope.PolicyFor(caller)
	if err != nil {
		return nil, err
	}
	return u.payments.DistinctDates(ctx, policy.OwnerFilter())
}

// ByDate groups one date's payments by loom category and sums per-category
// totals. Sums add raw amounts regardless of credit/debit type ("total
// money moved" for the day, not a net balance), in exact decimal
// arithmetic. Payments with no loom reference carry no category and are
// left out of the grouping, matching the join semantics of the read.
func (u *Usecase) ByDate(ctx context.Context, caller scope.Caller, date time.Time) (*DayStatement, error) {
	policy, err := scope.PolicyFor(caller)
	if err != nil {
		return nil, err
	}
	rows, err := u.payments.ListByDate(ctx, date.UTC().Truncate(24*time.Hour))
	if err != nil {
		return nil, err
	}

	st := &DayStatement{
		Date:       date,
		Groups:     make(map[domainLoom.Type][]PaymentDTO, 4),
		Totals:     make(map[domainLoom.Type]decimal.Decimal, 4),
		GrandTotal: decimal.Zero,
	}
	for _, t := range domainLoom.AllTypes() {
		st.Groups[t] = []PaymentDTO{}
		st.Totals[t] = decimal.Zero
	}

	for i := range rows {
		p := &rows[i]
		if p.Loom == nil {
			continue
		}
		cat := p.Loom.LoomType
		if !policy.CategoryVisible(cat) {
			continue
		}
		if !policy.CanAccess(p.Loom.UserID) {
			continue
		}
		st.Groups[cat] = append(st.Groups[cat], toDTO(p))
		st.Totals[cat] = st.Totals[cat].Add(p.Amount)
	}
	for _, t := range domainLoom.AllTypes() {
		st.GrandTotal = st.GrandTotal.Add(st.Totals[t])
	}
	return st, nil
}
