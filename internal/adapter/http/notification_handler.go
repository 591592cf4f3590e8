package http

import (
	"net/http"

	uc "loomledger-backend/internal/usecase/notification"

	"github.com/labstack/echo/v4"
)

type NotificationHandler struct{ uc *uc.Usecase }

func NewNotificationHandler(u *uc.Usecase) *NotificationHandler {
	return &NotificationHandler{uc: u}
}

func (h *NotificationHandler) Warp(c echo.Context) error {
	alerts, err := h.uc.Evaluate(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"alerts": alerts})
}
