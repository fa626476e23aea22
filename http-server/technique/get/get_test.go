package get

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"decor-golang/internal/decoration"
	"decor-golang/internal/storage"
)

type MockTechniqueProvider struct {
	mock.Mock
}

func (m *MockTechniqueProvider) GetDecorationTechniques(ctx context.Context, companyID string) ([]storage.DecorationTechnique, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.DecorationTechnique), args.Error(1)
}

func get(provider TechniqueProvider) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Get("/api/companies/{companyID}/decoration-techniques", GetTechniques(slog.Default(), provider))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/companies/c-1/decoration-techniques", nil))
	return rr
}

func TestGetTechniques(t *testing.T) {
	provider := new(MockTechniqueProvider)
	provider.On("GetDecorationTechniques", mock.Anything, "c-1").Return([]storage.DecorationTechnique{
		{ID: "t-1", CompanyID: "c-1", TechniqueCatalog: decoration.TechniqueCatalog{Name: "DTG", IsActive: true, MinimumOrder: 1}},
	}, nil)

	rr := get(provider)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "t-1", resp[0]["id"])
	assert.Equal(t, "DTG", resp[0]["name"])
	assert.Equal(t, true, resp[0]["isActive"])
}

func TestGetTechniques_Error(t *testing.T) {
	provider := new(MockTechniqueProvider)
	provider.On("GetDecorationTechniques", mock.Anything, "c-1").Return(nil, errors.New("db down"))

	assert.Equal(t, http.StatusInternalServerError, get(provider).Code)
}
