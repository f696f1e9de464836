// Package respond translates service results into Huma API errors shared by
// all v1 handlers.
package respond

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Teru3301/FinanceApp/internal/auth"
	"github.com/Teru3301/FinanceApp/internal/service"
)

// ServiceError maps service sentinel errors to their HTTP status. Anything
// unrecognized becomes a 500 with the given generic message; the underlying
// error is attached for the server-side log, never for the client.
func ServiceError(err error, message string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, service.ErrNotFound.Error())
	case errors.Is(err, service.ErrForbidden):
		return huma.NewError(http.StatusForbidden, service.ErrForbidden.Error())
	case errors.Is(err, service.ErrEmailTaken):
		return huma.NewError(http.StatusBadRequest, service.ErrEmailTaken.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return huma.NewError(http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
	case errors.Is(err, service.ErrPasswordMismatch):
		return huma.NewError(http.StatusBadRequest, service.ErrPasswordMismatch.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, message, err)
	}
}

// Identity pulls the authenticated caller from the request context. The auth
// middleware puts it there for every operation declaring a security
// requirement, so a miss means the operation was registered without one.
func Identity(ctx context.Context) (auth.Identity, error) {
	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return auth.Identity{}, huma.NewError(http.StatusUnauthorized, "authentication required")
	}
	return identity, nil
}
