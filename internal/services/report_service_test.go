package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ledgerlink/go-consent-report/internal/common"
	"github.com/ledgerlink/go-consent-report/internal/models"
)

func TestReportService_GetCompanyInformation(t *testing.T) {
	testHelper := serviceTestHelper(t)

	raw := []byte(`{"name":"Acme AB"}`)
	testHelper.mockGateway.EXPECT().GetCompanyInformation(gomock.Any(), "consent-123").Return(raw, nil)

	got, err := testHelper.reportService.GetCompanyInformation(context.Background(), "consent-123")
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestReportService_GetAccountingPeriods(t *testing.T) {
	testHelper := serviceTestHelper(t)

	raw := []byte(`[{"startDate":"2024-01-01","endDate":"2024-12-31"}]`)
	testHelper.mockGateway.EXPECT().GetAccountingPeriods(gomock.Any(), "consent-123").
		Return([]models.AccountingPeriod{{StartDate: "2024-01-01", EndDate: "2024-12-31"}}, raw, nil)

	got, err := testHelper.reportService.GetAccountingPeriods(context.Background(), "consent-123")
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestReportService_ResolveReportPeriod(t *testing.T) {
	testHelper := serviceTestHelper(t)

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		periods []models.AccountingPeriod
		want    models.AccountingPeriod
		wantErr error
	}{
		{
			name: "period containing today, end clamped",
			periods: []models.AccountingPeriod{
				{StartDate: "2024-01-01", EndDate: "2024-12-31"},
				{StartDate: "2025-01-01", EndDate: "2025-12-31"},
			},
			want: models.AccountingPeriod{StartDate: "2025-01-01", EndDate: "2025-06-15"},
		},
		{
			name: "no period contains today, last one wins",
			periods: []models.AccountingPeriod{
				{StartDate: "2022-01-01", EndDate: "2022-12-31"},
				{StartDate: "2023-01-01", EndDate: "2023-12-31"},
			},
			want: models.AccountingPeriod{StartDate: "2023-01-01", EndDate: "2023-12-31"},
		},
		{
			name:    "no periods at all",
			periods: []models.AccountingPeriod{},
			wantErr: common.ErrNoAccountingPeriods,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testHelper.mockGateway.EXPECT().GetAccountingPeriods(gomock.Any(), "consent-123").
				Return(tt.periods, nil, nil)

			got, err := testHelper.reportService.ResolveReportPeriod(context.Background(), "consent-123", now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReportService_GetIncomeStatement(t *testing.T) {
	testHelper := serviceTestHelper(t)

	raw := []byte(`{"categories":[]}`)

	t.Run("explicit parameters are forwarded", func(t *testing.T) {
		testHelper.mockGateway.EXPECT().
			GetIncomeStatement(gomock.Any(), "consent-123", "2025-01-01", "2025-06-30", 2).
			Return(&models.IncomeStatement{}, raw, nil)

		got, err := testHelper.reportService.GetIncomeStatement(context.Background(), "consent-123", "2025-01-01", "2025-06-30", 2)
		require.NoError(t, err)
		assert.Equal(t, raw, got)
	})

	t.Run("missing parameters fall back to configured defaults", func(t *testing.T) {
		testHelper.mockGateway.EXPECT().
			GetIncomeStatement(gomock.Any(), "consent-123", "2024-01-01", "2024-12-31", 3).
			Return(&models.IncomeStatement{}, raw, nil)

		_, err := testHelper.reportService.GetIncomeStatement(context.Background(), "consent-123", "", "", 0)
		require.NoError(t, err)
	})

	t.Run("out of range level is rejected", func(t *testing.T) {
		_, err := testHelper.reportService.GetIncomeStatement(context.Background(), "consent-123", "", "", 7)
		assert.ErrorIs(t, err, common.ErrInvalidLevel)
	})
}

func TestReportService_GetIncomeStatementRows(t *testing.T) {
	testHelper := serviceTestHelper(t)

	statement := &models.IncomeStatement{
		Categories: models.CategoryList{
			{Descriptions: []models.LocalizedText{{LanguageID: "SWE", Text: "Intäkter"}}},
		},
		ProfitLossBalance: &models.ReportBalance{},
	}

	t.Run("flattens the upstream document", func(t *testing.T) {
		testHelper.mockGateway.EXPECT().
			GetIncomeStatement(gomock.Any(), "consent-123", "2024-01-01", "2024-12-31", 3).
			Return(statement, []byte(`{}`), nil)

		rows, err := testHelper.reportService.GetIncomeStatementRows(context.Background(), "consent-123", "", "", 0)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Intäkter", rows[0].AccountName)
		assert.Equal(t, "Result", rows[1].AccountName)
	})

	t.Run("upstream error", func(t *testing.T) {
		testHelper.mockGateway.EXPECT().
			GetIncomeStatement(gomock.Any(), "consent-123", "2024-01-01", "2024-12-31", 3).
			Return(nil, nil, assert.AnError)

		_, err := testHelper.reportService.GetIncomeStatementRows(context.Background(), "consent-123", "", "", 0)
		assert.Error(t, err)
	})
}
