package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"loomledger-backend/internal/domain/fault"
	"loomledger-backend/internal/domain/scope"

	"github.com/labstack/echo/v4"
)

// Identity arrives as trusted headers from the upstream auth layer; the
// core never authenticates, it only scopes.
const (
	headerUserID = "X-User-Id"
	headerRole   = "X-User-Role"
)

func callerFrom(c echo.Context) (scope.Caller, error) {
	rawID := strings.TrimSpace(c.Request().Header.Get(headerUserID))
	role := strings.TrimSpace(c.Request().Header.Get(headerRole))
	if rawID == "" || role == "" {
		return scope.Caller{}, fault.Validationf("missing identity headers")
	}
	id, err := strconv.ParseUint(rawID, 10, 32)
	if err != nil {
		return scope.Caller{}, fault.Validationf("invalid %s", headerUserID)
	}
	return scope.Caller{UserID: uint(id), Role: scope.Role(role)}, nil
}

func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, fault.Validationf("invalid %s", name)
	}
	return uint(id), nil
}

// writeErr maps the shared error taxonomy onto HTTP statuses. Anything
// unrecognized is storage-level and stays opaque to the client.
func writeErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, fault.ErrValidation):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, fault.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, fault.ErrUnauthorized):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
