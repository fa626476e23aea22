package save

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"decor-golang/internal/decoration"
	"decor-golang/internal/decoration/schema"
	"decor-golang/internal/decoration/validator"
	"decor-golang/internal/storage"
)

type MockUpchargeCreator struct {
	mock.Mock
}

func (m *MockUpchargeCreator) CreateDecorationUpcharge(ctx context.Context, companyID, techniqueID string, u decoration.Upcharge) (string, error) {
	args := m.Called(ctx, companyID, techniqueID, u)
	return args.String(0), args.Error(1)
}

func post(creator UpchargeCreator, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Post("/api/companies/{companyID}/decoration-techniques/{techniqueID}/upcharges",
		SaveUpcharge(slog.Default(), validator.New(schema.NewRegistry()), creator))

	req := httptest.NewRequest(http.MethodPost, "/api/companies/c-1/decoration-techniques/t-1/upcharges", strings.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestSaveUpcharge(t *testing.T) {
	creator := new(MockUpchargeCreator)
	creator.On("CreateDecorationUpcharge", mock.Anything, "c-1", "t-1", decoration.Upcharge{
		Name:           "Extra color",
		UpchargeType:   decoration.UpchargePerColor,
		UpchargeAmount: 0.5,
		IsActive:       true,
	}).Return("u-1", nil)

	rr := post(creator, `{"name":"Extra color","upchargeType":"per_color","upchargeAmount":0.5}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	creator.AssertExpectations(t)
}

func TestSaveUpcharge_Invalid(t *testing.T) {
	creator := new(MockUpchargeCreator)

	rr := post(creator, `{"name":"Rush","upchargeType":"weekly","upchargeAmount":0}`)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	var resp struct {
		Details map[string]json.RawMessage `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.JSONEq(t, `{"_errors":["Invalid upcharge type"]}`, string(resp.Details["upchargeType"]))
	assert.JSONEq(t, `{"_errors":["Upcharge amount must be positive"]}`, string(resp.Details["upchargeAmount"]))
}

func TestSaveUpcharge_UnknownTechnique(t *testing.T) {
	creator := new(MockUpchargeCreator)
	creator.On("CreateDecorationUpcharge", mock.Anything, "c-1", "t-1", mock.Anything).
		Return("", fmt.Errorf("storage.mysql.CreateDecorationUpcharge: %w", storage.ErrNotFound))

	rr := post(creator, `{"name":"Rush","upchargeType":"flat","upchargeAmount":10}`)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Technique not found")
}
