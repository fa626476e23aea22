package generate_excel

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"decor-golang/internal/storage"
)

type MockExcelGenerator struct {
	mock.Mock
}

func (m *MockExcelGenerator) GenerateExcel(ctx context.Context, filter storage.LineItemFilter) ([]byte, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func serve(gen ExcelGenerator) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Get("/api/companies/{companyID}/decorations/revalidate/report", GenerateReportExcel(slog.Default(), gen))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/companies/c-1/decorations/revalidate/report?orderId=o-7", nil))
	return rr
}

func TestGenerateReportExcel(t *testing.T) {
	gen := new(MockExcelGenerator)
	gen.On("GenerateExcel", mock.Anything, storage.LineItemFilter{CompanyID: "c-1", OrderID: "o-7"}).Return([]byte("PK\x03\x04"), nil)

	rr := serve(gen)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "attachment; filename=Decorations_")
	assert.Equal(t, "PK\x03\x04", rr.Body.String())
	gen.AssertExpectations(t)
}

func TestGenerateReportExcel_Error(t *testing.T) {
	gen := new(MockExcelGenerator)
	gen.On("GenerateExcel", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	assert.Equal(t, http.StatusInternalServerError, serve(gen).Code)
}
