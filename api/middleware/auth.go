package middleware

import (
	"net/http"
	"strings"

	"github.com/angelmondragon/mercado-backend/api/responses"
	pkgauth "github.com/angelmondragon/mercado-backend/pkg/auth"
	"github.com/angelmondragon/mercado-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/mercado-backend/pkg/errors"
	"github.com/angelmondragon/mercado-backend/pkg/logger"
)

// Auth validates a bearer token and seeds the request context with the claims.
func Auth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgauth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			ctx := WithAccountID(r.Context(), claims.AccountID.String())
			ctx = WithRole(ctx, string(claims.Role))
			if claims.SupplierID != nil {
				ctx = WithSupplierID(ctx, claims.SupplierID.String())
			}

			if logg != nil {
				fields := map[string]any{
					"account_id": claims.AccountID.String(),
					"actor_role": string(claims.Role),
				}
				if claims.SupplierID != nil {
					fields["supplier_id"] = claims.SupplierID.String()
				}
				ctx = logg.WithFields(ctx, fields)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
