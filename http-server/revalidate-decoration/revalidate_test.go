package revalidate_decoration

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

	"decor-golang/internal/decoration/schema"
	"decor-golang/internal/decoration/validator"
	"decor-golang/internal/service/revalidate"
	"decor-golang/internal/storage"
)

type MockRevalidator struct {
	mock.Mock
}

func (m *MockRevalidator) Revalidate(ctx context.Context, filter storage.LineItemFilter) (*revalidate.Report, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*revalidate.Report), args.Error(1)
}

func sampleReport() *revalidate.Report {
	v := validator.New(schema.NewRegistry())
	return &revalidate.Report{
		CompanyID: "c-1",
		OrderID:   "o-1",
		Total:     2,
		Valid:     1,
		Invalid:   1,
		Items: []revalidate.ItemResult{
			{LineItemID: "li-1", OrderID: "o-1", Result: v.Validate(map[string]any{"technique": "dtg", "placement": "back"})},
			{LineItemID: "li-2", OrderID: "o-1", Result: v.Validate(map[string]any{"technique": "dtg"})},
		},
	}
}

func serve(rv Revalidator, target string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Get("/api/companies/{companyID}/decorations/revalidate", RevalidateDecorations(slog.Default(), rv))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

type response struct {
	Total    int  `json:"total"`
	Invalid  int  `json:"invalid"`
	AllValid bool `json:"allValid"`
	Items    []struct {
		LineItemID string `json:"lineItemId"`
	} `json:"items"`
}

func TestRevalidateDecorations(t *testing.T) {
	rv := new(MockRevalidator)
	rv.On("Revalidate", mock.Anything, storage.LineItemFilter{CompanyID: "c-1", OrderID: "o-1"}).Return(sampleReport(), nil)

	rr := serve(rv, "/api/companies/c-1/decorations/revalidate?orderId=o-1")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.False(t, resp.AllValid)
	assert.Len(t, resp.Items, 2)

	rv.AssertExpectations(t)
}

func TestRevalidateDecorations_InvalidOnly(t *testing.T) {
	rv := new(MockRevalidator)
	rv.On("Revalidate", mock.Anything, storage.LineItemFilter{CompanyID: "c-1"}).Return(sampleReport(), nil)

	rr := serve(rv, "/api/companies/c-1/decorations/revalidate?invalidOnly=true")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 1, resp.Invalid)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "li-2", resp.Items[0].LineItemID)
}

func TestRevalidateDecorations_BadFlag(t *testing.T) {
	rv := new(MockRevalidator)

	rr := serve(rv, "/api/companies/c-1/decorations/revalidate?invalidOnly=maybe")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	rv.AssertNotCalled(t, "Revalidate", mock.Anything, mock.Anything)
}

func TestRevalidateDecorations_Error(t *testing.T) {
	rv := new(MockRevalidator)
	rv.On("Revalidate", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	assert.Equal(t, http.StatusInternalServerError, serve(rv, "/api/companies/c-1/decorations/revalidate").Code)
}
