package weaver

import (
	"context"
	"log"
	"time"

	"loomledger-backend/internal/domain/fault"
	"loomledger-backend/internal/domain/scope"
	domain "loomledger-backend/internal/domain/weaver"

	"github.com/shopspring/decimal"
)

// DocumentStore is where uploaded identity documents live. The usecase
// only ever removes by stored name; saving happens at the transport edge.
type DocumentStore interface {
	Remove(name string) error
}

type Usecase struct {
	repo domain.Repository
	docs DocumentStore
}

func NewUsecase(r domain.Repository, docs DocumentStore) *Usecase {
	return &Usecase{repo: r, docs: docs}
}

type CreateWeaverInput struct {
	WeaverName    string `json:"weavername"`
	PhoneNumber   string `json:"phonenumber"`
	Address       string `json:"address"`
	Skills        string `json:"skills"`
	AccountNumber string `json:"account_number"`
	IFSCCode      string `json:"ifsc_code"`
	AccountType   string `json:"account_type"`
	NameInBank    string `json:"name_in_bank"`
	// Stored filename of an already-saved upload, if any.
	AadharCard string `json:"aadharcard"`
}

type UpdateWeaverInput struct {
	WeaverName    *string `json:"weavername"`
	PhoneNumber   *string `json:"phonenumber"`
	Address       *string `json:"address"`
	Skills        *string `json:"skills"`
	AccountNumber *string `json:"account_number"`
	IFSCCode      *string `json:"ifsc_code"`
	AccountType   *string `json:"account_type"`
	NameInBank    *string `json:"name_in_bank"`
	AadharCard    *string `json:"aadharcard"`
	IsActive      *bool   `json:"is_active"`
}

type WeaverDTO struct {
	ID            uint            `json:"id"`
	WeaverName    string          `json:"weavername"`
	PhoneNumber   string          `json:"phonenumber"`
	Address       string          `json:"address"`
	Skills        string          `json:"skills"`
	AccountNumber string          `json:"account_number"`
	IFSCCode      string          `json:"ifsc_code"`
	AccountType   string          `json:"account_type"`
	NameInBank    string          `json:"name_in_bank"`
	AadharCard    string          `json:"aadharcard"`
	IsActive      bool            `json:"is_active"`
	TotalCredit   decimal.Decimal `json:"total_credit"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func toDTO(w *domain.Weaver) *WeaverDTO {
	return &WeaverDTO{
		ID:            w.ID,
		WeaverName:    w.WeaverName,
		PhoneNumber:   w.PhoneNumber,
		Address:       w.Address,
		Skills:        w.Skills,
		AccountNumber: w.AccountNumber,
		IFSCCode:      w.IFSCCode,
		AccountType:   w.AccountType,
		NameInBank:    w.NameInBank,
		AadharCard:    w.AadharCard,
		IsActive:      w.IsActive,
		TotalCredit:   w.TotalCredit,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}

func (u *Usecase) Create(ctx context.Context, caller scope.Caller, in CreateWeaverInput) (*WeaverDTO, error) {
	policy, err := scope.PolicyFor(caller)
	if err != nil {
		return nil, err
	}
	if in.WeaverName == "" || in.PhoneNumber == "" {
		return nil, fault.Validationf("weavername and phonenumber are required")
	}
	w := &domain.Weaver{
		WeaverName:    in.WeaverName,
		PhoneNumber:   in.PhoneNumber,
		Address:       in.Address,
		Skills:        in.Skills,
		AccountNumber: in.AccountNumber,
		IFSCCode:      in.IFSCCode,
		AccountType:   in.AccountType,
		NameInBank:    in.NameInBank,
		AadharCard:    in.AadharCard,
		IsActive:      true,
		TotalCredit:   decimal.Zero,
		UserID:        policy.UserID(),
	}
	if err := u.repo.Create(ctx, w); err != nil {
		return nil, err
	}
	return toDTO(w), nil
}

func (u *Usecase) visible(ctx context.Context, caller scope.Caller, id uint) (*domain.Weaver, error) {
	policy, err := scope.PolicyFor(caller)
	if err != nil {
		return nil, err
	}
	w, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanAccess(w.UserID) {
		return nil, fault.ErrNotFound
	}
	return w, nil
}

func (u *Usecase) Get(ctx context.Context, caller scope.Caller, id uint) (*WeaverDTO, error) {
	w, err := u.visible(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	return toDTO(w), nil
}

func (u *Usecase) List(ctx context.Context, caller scope.Caller) ([]WeaverDTO, error) {
	policy, err := scope.PolicyFor(caller)
	if err != nil {
		return nil, err
	}
	weavers, err := u.repo.List(ctx, policy.OwnerFilter())
	if err != nil {
		return nil, err
	}
	out := make([]WeaverDTO, 0, len(weavers))
	for i := range weavers {
		out = append(out, *toDTO(&weavers[i]))
	}
	return out, nil
}

func (u *Usecase) Update(ctx context.Context, caller scope.Caller, id uint, in UpdateWeaverInput) (*WeaverDTO, error) {
	w, err := u.visible(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if in.WeaverName != nil {
		if *in.WeaverName == "" {
			return nil, fault.Validationf("weavername cannot be empty")
		}
		w.WeaverName = *in.WeaverName
	}
	if in.PhoneNumber != nil {
		if *in.PhoneNumber == "" {
			return nil, fault.Validationf("phonenumber cannot be empty")
		}
		w.PhoneNumber = *in.PhoneNumber
	}
	if in.Address != nil {
		w.Address = *in.Address
	}
	if in.Skills != nil {
		w.Skills = *in.Skills
	}
	if in.AccountNumber != nil {
		w.AccountNumber = *in.AccountNumber
	}
	if in.IFSCCode != nil {
		w.IFSCCode = *in.IFSCCode
	}
	if in.AccountType != nil {
		w.AccountType = *in.AccountType
	}
	if in.NameInBank != nil {
		w.NameInBank = *in.NameInBank
	}
	if in.AadharCard != nil {
		w.AadharCard = *in.AadharCard
	}
	if in.IsActive != nil {
		w.IsActive = *in.IsActive
	}
	if err := u.repo.Save(ctx, w); err != nil {
		return nil, err
	}
	return toDTO(w), nil
}

func (u *Usecase) ToggleActive(ctx context.Context, caller scope.Caller, id uint) (*WeaverDTO, error) {
	w, err := u.visible(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	w.IsActive = !w.IsActive
	if err := u.repo.Save(ctx, w); err != nil {
		return nil, err
	}
	return toDTO(w), nil
}

// Delete removes the weaver row and, best effort, the stored document.
// A missing file does not block the delete.
func (u *Usecase) Delete(ctx context.Context, caller scope.Caller, id uint) error {
	w, err := u.visible(ctx, caller, id)
	if err != nil {
		return err
	}
	if w.AadharCard != "" && u.docs != nil {
		if err := u.docs.Remove(w.AadharCard); err != nil {
			log.Printf("weaver %d: remove document %s: %v", w.ID, w.AadharCard, err)
		}
	}
	return u.repo.Delete(ctx, w.ID)
}
