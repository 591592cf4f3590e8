package http

import (
	"net/http"
	"time"

	paymentDomain "loomledger-backend/internal/domain/payment"
	uc "loomledger-backend/internal/usecase/payment"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type PaymentHandler struct{ uc *uc.Usecase }

func NewPaymentHandler(u *uc.Usecase) *PaymentHandler { return &PaymentHandler{uc: u} }

type recordPaymentReq struct {
	Date        *time.Time      `json:"date"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	PaymentType string          `json:"payment_type" validate:"required,paytype"`
	Description string          `json:"description"`
	LoomID      *uint           `json:"loom_id"`
	SareeID     *uint           `json:"saree_id"`
	WeaverID    *uint           `json:"weaver_id"`
}

func (h *PaymentHandler) Record(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return writeErr(c, err)
	}
	var req recordPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Record(c.Request().Context(), caller, uc.RecordInput{
		Date:        req.Date,
		Amount:      req.Amount,
		PaymentType: paymentDomain.Type(req.PaymentType),
		Description: req.Description,
		LoomID:      req.LoomID,
		SareeID:     req.SareeID,
		WeaverID:    req.WeaverID,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PaymentHandler) Dates(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return writeErr(c, err)
	}
	dates, err := h.uc.Dates(c.Request().Context(), caller)
	if err != nil {
		return writeErr(c, err)
	}
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format("2006-01-02"))
	}
	return c.JSON(http.StatusOK, map[string]any{"dates": out})
}

func (h *PaymentHandler) ByDate(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return writeErr(c, err)
	}
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date must be YYYY-MM-DD"})
	}
	st, err := h.uc.ByDate(c.Request().Context(), caller, date)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, st)
}
