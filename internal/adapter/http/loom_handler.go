package http

import (
	"net/http"
	"time"

	loomDomain "loomledger-backend/internal/domain/loom"
	uc "loomledger-backend/internal/usecase/loom"

	"github.com/labstack/echo/v4"
)

type LoomHandler struct{ uc *uc.Usecase }

func NewLoomHandler(u *uc.Usecase) *LoomHandler { return &LoomHandler{uc: u} }

type createLoomReq struct {
	LoomNo     int        `json:"loom_no" validate:"required,gte=1"`
	LoomType   string     `json:"loom_type" validate:"required,loomtype"`
	NumSarees  int        `json:"num_sarees" validate:"gte=0"`
	SareeType  string     `json:"saree_type"`
	SareeName  string     `json:"saree_name"`
	WeaverID   *uint      `json:"weaver_id"`
	WeaverName string     `json:"weaver_name"`
	Date       *time.Time `json:"date"`
}

func (h *LoomHandler) Create(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return writeErr(c, err)
	}
	var req createLoomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Create(c.Request().Context(), caller, uc.CreateLoomInput{
		LoomNo:     req.LoomNo,
		LoomType:   loomDomain.Type(req.LoomType),
		NumSarees:  req.NumSarees,
		SareeType:  req.SareeType,
		SareeName:  req.SareeName,
		WeaverID:   req.WeaverID,
		WeaverName: req.WeaverName,
		Date:       req.Date,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoomHandler) List(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return writeErr(c, err)
	}
	out, err := h.uc.List(c.Request().Context(), caller)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoomHandler) Get(c echo.Context) error {
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

func (h *LoomHandler) Update(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return writeErr(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return writeErr(c, err)
	}
	var req uc.UpdateLoomInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Update(c.Request().Context(), caller, id, req)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoomHandler) Delete(c echo.Context) error {
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

func (h *LoomHandler) AddWarp(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return writeErr(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return writeErr(c, err)
	}
	var req uc.WarpInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	w, err := h.uc.AddWarp(c.Request().Context(), caller, id, req)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, w)
}

func (h *LoomHandler) AddWeft(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return writeErr(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return writeErr(c, err)
	}
	var req uc.WeftInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	w, err := h.uc.AddWeft(c.Request().Context(), caller, id, req)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, w)
}

func (h *LoomHandler) AddWarpColor(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return writeErr(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return writeErr(c, err)
	}
	var req uc.WarpColorInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	col, err := h.uc.AddWarpColor(c.Request().Context(), caller, id, req)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, col)
}

func (h *LoomHandler) AddWeftColor(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return writeErr(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return writeErr(c, err)
	}
	var req uc.WeftColorInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	col, err := h.uc.AddWeftColor(c.Request().Context(), caller, id, req)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, col)
}
