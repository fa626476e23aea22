package get

import (
	"context"
	"encoding/json"
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

type MockPlacementProvider struct {
	mock.Mock
}

func (m *MockPlacementProvider) GetDecorationPlacements(ctx context.Context, companyID string) ([]storage.DecorationPlacement, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.DecorationPlacement), args.Error(1)
}

func placement(id, name string, garment *string) storage.DecorationPlacement {
	return storage.DecorationPlacement{ID: id, CompanyID: "c-1", Placement: decoration.Placement{Name: name, GarmentType: garment}}
}

func strPtr(s string) *string { return &s }

func TestGetPlacements_GarmentFilter(t *testing.T) {
	provider := new(MockPlacementProvider)
	provider.On("GetDecorationPlacements", mock.Anything, "c-1").Return([]storage.DecorationPlacement{
		placement("p-1", "Front", nil),
		placement("p-2", "Front panel", strPtr("hat")),
		placement("p-3", "Hood", strPtr("hoodie")),
	}, nil)

	r := chi.NewRouter()
	r.Get("/api/companies/{companyID}/decoration-placements", GetPlacements(slog.Default(), provider))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/companies/c-1/decoration-placements?garmentType=hoodie", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "p-1", resp[0].ID)
	assert.Equal(t, "p-3", resp[1].ID)
}

func TestGetPlacements_All(t *testing.T) {
	provider := new(MockPlacementProvider)
	provider.On("GetDecorationPlacements", mock.Anything, "c-1").Return([]storage.DecorationPlacement{
		placement("p-1", "Front", nil),
		placement("p-2", "Front panel", strPtr("hat")),
	}, nil)

	r := chi.NewRouter()
	r.Get("/api/companies/{companyID}/decoration-placements", GetPlacements(slog.Default(), provider))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/companies/c-1/decoration-placements", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}
