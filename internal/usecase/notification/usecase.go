package notification

import (
	"context"
	"fmt"

	domain "loomledger-backend/internal/domain/loom"
)

// warpThreshold is the exact remaining-saree count that fires an alert.
// The check is ==, not <=: the alert fires once as a loom crosses from 3
// to 2 remaining and stays quiet at 1 and 0.
const warpThreshold = 2

type Alert struct {
	LoomID  uint   `json:"loom_id"`
	LoomNo  int    `json:"loom_no"`
	Message string `json:"message"`
}

// Usecase scans every loom for near-completion. This is a global
// operational alert, not a per-user view, so no scoping applies. Nothing
// is persisted; every call recomputes from scratch, so polling is safe.
type Usecase struct {
	looms domain.Repository
}

func NewUsecase(looms domain.Repository) *Usecase { return &Usecase{looms: looms} }

func (u *Usecase) Evaluate(ctx context.Context) ([]Alert, error) {
	looms, err := u.looms.List(ctx, domain.Query{})
	if err != nil {
		return nil, err
	}
	alerts := []Alert{}
	for i := range looms {
		l := &looms[i]
		// Raw subtraction, not the display-clamped value.
		remaining := l.NumSarees - len(l.SareeEntries)
		if remaining == warpThreshold {
			alerts = append(alerts, Alert{
				LoomID:  l.ID,
				LoomNo:  l.LoomNo,
				Message: fmt.Sprintf("Loom %d needs a new warp — only %d sarees remaining!", l.LoomNo, remaining),
			})
		}
	}
	return alerts, nil
}
