package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAccessChecker struct {
	mock.Mock
}

func (m *MockAccessChecker) HasCompanyAccess(ctx context.Context, userID, companyID string) (bool, error) {
	args := m.Called(ctx, userID, companyID)
	return args.Bool(0), args.Error(1)
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Seen-User", UserID(r.Context()))
	w.WriteHeader(http.StatusNoContent)
})

func TestBasicAuth(t *testing.T) {
	h := BasicAuth("admin", "s3cret")(okHandler)

	tests := []struct {
		name       string
		user, pass string
		setAuth    bool
		want       int
	}{
		{name: "no header", want: http.StatusUnauthorized},
		{name: "wrong password", user: "admin", pass: "nope", setAuth: true, want: http.StatusUnauthorized},
		{name: "wrong user", user: "root", pass: "s3cret", setAuth: true, want: http.StatusUnauthorized},
		{name: "ok", user: "admin", pass: "s3cret", setAuth: true, want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.setAuth {
				req.SetBasicAuth(tt.user, tt.pass)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tt.want, rr.Code)
			if tt.want == http.StatusUnauthorized {
				assert.Contains(t, rr.Header().Get("WWW-Authenticate"), "Basic")
			}
		})
	}
}

func newScopedRouter(checker AccessChecker) http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	r.Route("/api/companies/{companyID}", func(r chi.Router) {
		r.Use(CompanyScope(log, checker))
		r.Get("/ping", okHandler)
	})
	return r
}

func TestCompanyScope(t *testing.T) {
	checker := new(MockAccessChecker)
	checker.On("HasCompanyAccess", mock.Anything, "u-1", "c-1").Return(true, nil)
	checker.On("HasCompanyAccess", mock.Anything, "u-1", "c-2").Return(false, nil)
	checker.On("HasCompanyAccess", mock.Anything, "u-2", "c-1").Return(false, errors.New("db down"))

	router := newScopedRouter(checker)

	tests := []struct {
		name    string
		userID  string
		company string
		want    int
	}{
		{name: "missing user", company: "c-1", want: http.StatusUnauthorized},
		{name: "member", userID: "u-1", company: "c-1", want: http.StatusNoContent},
		{name: "other company", userID: "u-1", company: "c-2", want: http.StatusForbidden},
		{name: "checker error", userID: "u-2", company: "c-1", want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/companies/"+tt.company+"/ping", nil)
			if tt.userID != "" {
				req.Header.Set(UserIDHeader, tt.userID)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.want, rr.Code)
			if tt.want == http.StatusNoContent {
				assert.Equal(t, tt.userID, rr.Header().Get("X-Seen-User"))
			}
		})
	}
}
