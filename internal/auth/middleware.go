package auth

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// Required marks an operation as bearer-token protected. Operations without
// a security requirement (register, login, forgot-password, status) pass
// through the middleware untouched.
var Required = []map[string][]string{{"bearer": {}}}

// tokenVerifier is the subset of TokenIssuer the middleware needs.
type tokenVerifier interface {
	Verify(raw string) (Identity, error)
}

// Middleware enforces bearer authentication on operations that declare a
// security requirement: 401 when no token is presented, 403 when the token
// is invalid or expired, otherwise the decoded identity is attached to the
// request context.
func Middleware(api huma.API, verifier tokenVerifier) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if len(ctx.Operation().Security) == 0 {
			next(ctx)
			return
		}

		header := ctx.Header("Authorization")
		if header == "" {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "authentication required")
			return
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "authentication required")
			return
		}

		identity, err := verifier.Verify(raw)
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusForbidden, "invalid or expired token")
			return
		}

		next(huma.WithValue(ctx, identityContextKey{}, identity))
	}
}
