package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domain "loomledger-backend/internal/domain/loom"
	loommock "loomledger-backend/internal/testutil/loommock"
	uc "loomledger-backend/internal/usecase/notification"

	"github.com/labstack/echo/v4"
)

func TestWarpNotifications(t *testing.T) {
	e := echo.New()
	repo := &loommock.Repo{
		ListFn: func(ctx context.Context, q domain.Query) ([]domain.Loom, error) {
			return []domain.Loom{
				{ID: 1, LoomNo: 7, NumSarees: 10, SareeEntries: make([]domain.SareeEntry, 8)},
				{ID: 2, LoomNo: 8, NumSarees: 10, SareeEntries: make([]domain.SareeEntry, 5)},
			}, nil
		},
	}
	h := NewNotificationHandler(uc.NewUsecase(repo))

	req := httptest.NewRequest(stdhttp.MethodGet, "/notifications/warp", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Warp(c); err != nil {
		t.Fatalf("Warp error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got struct {
		Alerts []uc.Alert `json:"alerts"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(got.Alerts) != 1 || got.Alerts[0].LoomNo != 7 {
		t.Fatalf("unexpected alerts: %+v", got.Alerts)
	}
	if !strings.Contains(got.Alerts[0].Message, "needs a new warp") {
		t.Fatalf("unexpected message: %q", got.Alerts[0].Message)
	}
}

func TestWarpNotifications_EmptyListNotNull(t *testing.T) {
	e := echo.New()
	repo := &loommock.Repo{
		ListFn: func(ctx context.Context, q domain.Query) ([]domain.Loom, error) {
			return nil, nil
		},
	}
	h := NewNotificationHandler(uc.NewUsecase(repo))

	req := httptest.NewRequest(stdhttp.MethodGet, "/notifications/warp", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Warp(c); err != nil {
		t.Fatalf("Warp error: %v", err)
	}
	if strings.Contains(rec.Body.String(), "null") {
		t.Fatalf("alerts must be an empty array, got %s", rec.Body.String())
	}
}
