package http

import (
	"net/http"

	uc "loomledger-backend/internal/usecase/saree"

	"github.com/labstack/echo/v4"
)

type SareeHandler struct{ uc *uc.Usecase }

func NewSareeHandler(u *uc.Usecase) *SareeHandler { return &SareeHandler{uc: u} }

func (h *SareeHandler) Add(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return writeErr(c, err)
	}
	loomID, err := pathID(c, "id")
	if err != nil {
		return writeErr(c, err)
	}
	var req uc.AddEntryInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Add(c.Request().Context(), caller, loomID, req)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *SareeHandler) ListByLoom(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return writeErr(c, err)
	}
	loomID, err := pathID(c, "id")
	if err != nil {
		return writeErr(c, err)
	}
	out, err := h.uc.ListByLoom(c.Request().Context(), caller, loomID)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SareeHandler) Get(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return writeErr(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return writeErr(c, err)
	}
	dto, err := h.uc.Get(c.Request().Context(), caller, id)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *SareeHandler) Update(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return writeErr(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return writeErr(c, err)
	}
	var req uc.UpdateEntryInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Update(c.Request().Context(), caller, id, req)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *SareeHandler) Complete(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return writeErr(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return writeErr(c, err)
	}
	dto, err := h.uc.Complete(c.Request().Context(), caller, id)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *SareeHandler) Delete(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return writeErr(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return writeErr(c, err)
	}
	if err := h.uc.Delete(c.Request().Context(), caller, id); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
