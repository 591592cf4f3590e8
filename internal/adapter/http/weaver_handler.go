package http

import (
	"io"
	"net/http"

	uc "loomledger-backend/internal/usecase/weaver"

	"github.com/labstack/echo/v4"
)

// DocumentSaver persists an uploaded identity document and returns the
// stored filename to keep on the weaver record.
type DocumentSaver interface {
	Save(originalName string, r io.Reader) (string, error)
}

type WeaverHandler struct {
	uc   *uc.Usecase
	docs DocumentSaver
}

func NewWeaverHandler(u *uc.Usecase, docs DocumentSaver) *WeaverHandler {
	return &WeaverHandler{uc: u, docs: docs}
}

type createWeaverReq struct {
	WeaverName    string `json:"weavername" validate:"required"`
	PhoneNumber   string `json:"phonenumber" validate:"required,phone"`
	Address       string `json:"address"`
	Skills        string `json:"skills"`
	AccountNumber string `json:"account_number"`
	IFSCCode      string `json:"ifsc_code"`
	AccountType   string `json:"account_type"`
	NameInBank    string `json:"name_in_bank"`
}

func (h *WeaverHandler) Create(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return writeErr(c, err)
	}
	var req createWeaverReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Create(c.Request().Context(), caller, uc.CreateWeaverInput{
		WeaverName:    req.WeaverName,
		PhoneNumber:   req.PhoneNumber,
		Address:       req.Address,
		Skills:        req.Skills,
		AccountNumber: req.AccountNumber,
		IFSCCode:      req.IFSCCode,
		AccountType:   req.AccountType,
		NameInBank:    req.NameInBank,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *WeaverHandler) List(c echo.Context) error {
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

func (h *WeaverHandler) Get(c echo.Context) error {
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

func (h *WeaverHandler) Update(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return writeErr(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return writeErr(c, err)
	}
	var req uc.UpdateWeaverInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Update(c.Request().Context(), caller, id, req)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *WeaverHandler) ToggleActive(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return writeErr(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return writeErr(c, err)
	}
	dto, err := h.uc.ToggleActive(c.Request().Context(), caller, id)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *WeaverHandler) Delete(c echo.Context) error {
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

// UploadAadhar accepts a multipart "aadharcard" file, stores it on disk
// and records the stored filename on the weaver.
func (h *WeaverHandler) UploadAadhar(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return writeErr(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return writeErr(c, err)
	}
	fh, err := c.FormFile("aadharcard")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "aadharcard file is required"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable upload"})
	}
	defer src.Close()

	stored, err := h.docs.Save(fh.Filename, src)
	if err != nil {
		return writeErr(c, err)
	}
	dto, err := h.uc.Update(c.Request().Context(), caller, id, uc.UpdateWeaverInput{AadharCard: &stored})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
