package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	loomDomain "loomledger-backend/internal/domain/loom"
	domain "loomledger-backend/internal/domain/payment"
	"loomledger-backend/internal/domain/uow"
	weaverDomain "loomledger-backend/internal/domain/weaver"
	paymentmock "loomledger-backend/internal/testutil/paymentmock"
	uowmock "loomledger-backend/internal/testutil/uowmock"
	weavermock "loomledger-backend/internal/testutil/weavermock"
	uc "loomledger-backend/internal/usecase/payment"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func paymentUsecase(repos uow.Repos) *uc.Usecase {
	return uc.NewUsecase(repos.Payments, uowmock.New(repos))
}

func TestRecordPayment_SnapshotsWeaverBank(t *testing.T) {
	e := newEchoWithValidator()

	var created *domain.Payment
	repos := uow.Repos{
		Payments: &paymentmock.Repo{
			CreateFn: func(ctx context.Context, p *domain.Payment) error {
				p.ID = 21
				created = p
				return nil
			},
		},
		Weavers: &weavermock.Repo{
			GetByIDFn: func(ctx context.Context, id uint) (*weaverDomain.Weaver, error) {
				return &weaverDomain.Weaver{
					ID: id, UserID: 2,
					NameInBank: "K Devi", AccountNumber: "123456", IFSCCode: "SBIN0001", AccountType: "savings",
				}, nil
			},
		},
	}
	h := NewPaymentHandler(paymentUsecase(repos))

	weaverID := uint(3)
	reqBody := map[string]any{
		"amount":       "1500.50",
		"payment_type": "credit",
		"weaver_id":    weaverID,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/payments", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	asFactory(req)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Record(c); err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	if created == nil || created.NameInBank != "K Devi" || created.IFSCCode != "SBIN0001" {
		t.Fatalf("bank snapshot missing: %+v", created)
	}
	var got uc.PaymentDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !got.Amount.Equal(decimal.RequireFromString("1500.50")) {
		t.Fatalf("amount = %s, want 1500.50", got.Amount)
	}
}

func TestRecordPayment_ValidationError(t *testing.T) {
	e := newEchoWithValidator()
	h := NewPaymentHandler(paymentUsecase(uow.Repos{Payments: &paymentmock.Repo{}}))

	reqBody := map[string]any{
		"amount":       "100",
		"payment_type": "transfer", // not credit/debit
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/payments", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	asOwner(req)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Record(c); err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRecordPayment_RequiresReference(t *testing.T) {
	e := newEchoWithValidator()
	h := NewPaymentHandler(paymentUsecase(uow.Repos{Payments: &paymentmock.Repo{}}))

	reqBody := map[string]any{
		"amount":       "100",
		"payment_type": "debit",
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/payments", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	asOwner(req)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Record(c); err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPaymentDates_Success(t *testing.T) {
	e := newEchoWithValidator()
	repo := &paymentmock.Repo{
		DistinctDatesFn: func(ctx context.Context, ownerID *uint) ([]time.Time, error) {
			return []time.Time{
				time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
				time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	h := NewPaymentHandler(uc.NewUsecase(repo, nil))

	req := httptest.NewRequest(stdhttp.MethodGet, "/payments/dates", nil)
	asOwner(req)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Dates(c); err != nil {
		t.Fatalf("Dates error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got struct {
		Dates []string `json:"dates"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(got.Dates) != 2 || got.Dates[0] != "2026-08-29" {
		t.Fatalf("unexpected dates: %v", got.Dates)
	}
}

func TestPaymentsByDate_GroupsAndTotals(t *testing.T) {
	e := newEchoWithValidator()

	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	handloom := &loomDomain.Loom{ID: 1, UserID: 1, LoomType: loomDomain.TypeHandloom}
	repo := &paymentmock.Repo{
		ListByDateFn: func(ctx context.Context, date time.Time) ([]domain.Payment, error) {
			return []domain.Payment{
				{ID: 1, Date: day, Amount: decimal.NewFromInt(500), PaymentType: domain.TypeCredit, LoomID: &handloom.ID, Loom: handloom},
				{ID: 2, Date: day, Amount: decimal.NewFromInt(200), PaymentType: domain.TypeDebit, LoomID: &handloom.ID, Loom: handloom},
			}, nil
		},
	}
	h := NewPaymentHandler(uc.NewUsecase(repo, nil))

	req := httptest.NewRequest(stdhttp.MethodGet, "/payments/by-date/2026-08-29", nil)
	asOwner(req)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("date")
	c.SetParamValues("2026-08-29")

	if err := h.ByDate(c); err != nil {
		t.Fatalf("ByDate error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got struct {
		Groups     map[string][]uc.PaymentDTO `json:"groups"`
		Totals     map[string]decimal.Decimal `json:"totals"`
		GrandTotal decimal.Decimal            `json:"grand_total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(got.Groups) != 4 {
		t.Fatalf("want all 4 category keys, got %d", len(got.Groups))
	}
	if len(got.Groups["Handloom"]) != 2 {
		t.Fatalf("handloom rows = %d, want 2", len(got.Groups["Handloom"]))
	}
	// Raw sum, not netted: 500 + 200.
	if !got.Totals["Handloom"].Equal(decimal.NewFromInt(700)) {
		t.Fatalf("handloom total = %s, want 700", got.Totals["Handloom"])
	}
	if !got.GrandTotal.Equal(decimal.NewFromInt(700)) {
		t.Fatalf("grand total = %s, want 700", got.GrandTotal)
	}
}

func TestPaymentsByDate_BadDate(t *testing.T) {
	e := newEchoWithValidator()
	h := NewPaymentHandler(uc.NewUsecase(&paymentmock.Repo{}, nil))

	req := httptest.NewRequest(stdhttp.MethodGet, "/payments/by-date/29-08-2026", nil)
	asOwner(req)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("date")
	c.SetParamValues("29-08-2026")

	if err := h.ByDate(c); err != nil {
		t.Fatalf("ByDate error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
