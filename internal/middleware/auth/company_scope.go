package auth

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

const UserIDHeader = "X-User-ID"

type ctxKey struct{}

type AccessChecker interface {
	HasCompanyAccess(ctx context.Context, userID, companyID string) (bool, error)
}

// CompanyScope admits a request only when the caller named in X-User-ID
// belongs to the company in the {companyID} route parameter.
func CompanyScope(log *slog.Logger, checker AccessChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middleware.auth.CompanyScope"

			userID := r.Header.Get(UserIDHeader)
			if userID == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, map[string]string{"error": "Unauthorized"})
				return
			}

			companyID := chi.URLParam(r, "companyID")
			ok, err := checker.HasCompanyAccess(r.Context(), userID, companyID)
			if err != nil {
				log.Error("access check failed",
					slog.String("op", op),
					slog.String("user_id", userID),
					slog.String("company_id", companyID),
					slog.Any("err", err),
				)
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, map[string]string{"error": "Internal server error"})
				return
			}
			if !ok {
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, map[string]string{"error": "Access denied"})
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, userID)))
		})
	}
}

// UserID returns the caller admitted by CompanyScope.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
