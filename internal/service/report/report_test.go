package report

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

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
	valid := v.Validate(map[string]any{"technique": "vinyl", "placement": "sleeve"})
	invalid := v.Validate(map[string]any{"technique": "laser"})

	return &revalidate.Report{
		CompanyID: "c-1",
		Total:     2,
		Valid:     1,
		Invalid:   1,
		Items: []revalidate.ItemResult{
			{LineItemID: "li-1", OrderID: "o-1", ProductName: "Heavy tee", Result: valid},
			{LineItemID: "li-2", OrderID: "o-1", ProductName: "Hoodie", Result: invalid},
		},
	}
}

func TestGenerateExcel(t *testing.T) {
	rv := new(MockRevalidator)
	filter := storage.LineItemFilter{CompanyID: "c-1"}
	rv.On("Revalidate", mock.Anything, filter).Return(sampleReport(), nil)

	b, err := NewExcelService(rv).GenerateExcel(context.Background(), filter)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{resultsSheet, summarySheet}, f.GetSheetList())

	rows, err := f.GetRows(resultsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, headers, rows[0])
	assert.Equal(t, []string{"li-1", "o-1", "Heavy tee", "vinyl", "sleeve", "valid"}, rows[1])

	assert.Equal(t, "li-2", rows[2][0])
	assert.Equal(t, "", rows[2][3])
	assert.Equal(t, "invalid", rows[2][5])
	assert.Contains(t, rows[2][6], "technique: Invalid decoration technique")
	assert.Contains(t, rows[2][6], "placement: Required")

	total, err := f.GetCellValue(summarySheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "2", total)

	rv.AssertExpectations(t)
}

func TestGenerateExcel_RevalidateError(t *testing.T) {
	rv := new(MockRevalidator)
	rv.On("Revalidate", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	b, err := NewExcelService(rv).GenerateExcel(context.Background(), storage.LineItemFilter{CompanyID: "c-1"})
	assert.Nil(t, b)
	assert.ErrorContains(t, err, "service.report.GenerateExcel")
}

func TestErrorLines_RootMessage(t *testing.T) {
	v := validator.New(schema.NewRegistry())
	item := revalidate.ItemResult{Result: v.Validate([]any{"nope"})}

	assert.Equal(t, "(root): Expected object, received array", errorLines(item))
}
