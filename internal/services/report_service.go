package services

import (
	"context"
	"time"

	"github.com/ledgerlink/go-consent-report/internal/common"
	"github.com/ledgerlink/go-consent-report/internal/models"
	"github.com/ledgerlink/go-consent-report/internal/monitoring"
)

type ReportService interface {
	GetCompanyInformation(ctx context.Context, consentID string) ([]byte, error)
	GetAccountingPeriods(ctx context.Context, consentID string) ([]byte, error)

	// ResolveReportPeriod picks the accounting period containing now, or the
	// last available one, with the end date clamped to today since upstream
	// rejects future end dates.
	ResolveReportPeriod(ctx context.Context, consentID string, now time.Time) (models.AccountingPeriod, error)

	GetIncomeStatement(ctx context.Context, consentID, startDate, endDate string, level int) ([]byte, error)
	GetIncomeStatementRows(ctx context.Context, consentID, startDate, endDate string, level int) ([]models.DisplayRow, error)
}

type report service

var _ ReportService = (*report)(nil)

// GetCompanyInformation implements ReportService.
func (s *report) GetCompanyInformation(ctx context.Context, consentID string) (raw []byte, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return s.srv.gateway.GetCompanyInformation(ctx, consentID)
}

// GetAccountingPeriods implements ReportService.
func (s *report) GetAccountingPeriods(ctx context.Context, consentID string) (raw []byte, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	_, raw, err = s.srv.gateway.GetAccountingPeriods(ctx, consentID)
	return
}

// ResolveReportPeriod implements ReportService. Dates are ISO-8601 strings so
// lexical comparison is chronological.
func (s *report) ResolveReportPeriod(ctx context.Context, consentID string, now time.Time) (period models.AccountingPeriod, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	periods, _, err := s.srv.gateway.GetAccountingPeriods(ctx, consentID)
	if err != nil {
		return
	}
	if len(periods) == 0 {
		err = common.ErrNoAccountingPeriods
		return
	}

	today := now.Format("2006-01-02")

	period = periods[len(periods)-1]
	for _, p := range periods {
		if p.StartDate <= today && p.EndDate >= today {
			period = p
			break
		}
	}

	if period.EndDate > today {
		period.EndDate = today
	}

	return period, nil
}

// GetIncomeStatement implements ReportService, forwarding the raw upstream
// document.
func (s *report) GetIncomeStatement(ctx context.Context, consentID, startDate, endDate string, level int) (raw []byte, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	startDate, endDate, level, err = s.reportParams(startDate, endDate, level)
	if err != nil {
		return nil, err
	}

	_, raw, err = s.srv.gateway.GetIncomeStatement(ctx, consentID, startDate, endDate, level)
	return
}

// GetIncomeStatementRows implements ReportService, flattening the upstream
// category tree into ordered display rows.
func (s *report) GetIncomeStatementRows(ctx context.Context, consentID, startDate, endDate string, level int) (rows []models.DisplayRow, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	startDate, endDate, level, err = s.reportParams(startDate, endDate, level)
	if err != nil {
		return nil, err
	}

	statement, _, err := s.srv.gateway.GetIncomeStatement(ctx, consentID, startDate, endDate, level)
	if err != nil {
		return nil, err
	}

	return s.srv.normalizer.Flatten(*statement), nil
}

func (s *report) reportParams(startDate, endDate string, level int) (string, string, int, error) {
	defaultStart, defaultEnd := s.srv.conf.ReportConfig.DateRangeOrDefault()
	if startDate == "" {
		startDate = defaultStart
	}
	if endDate == "" {
		endDate = defaultEnd
	}

	if level == 0 {
		level = s.srv.conf.ReportConfig.LevelOrDefault()
	}
	if level < 1 || level > 3 {
		return "", "", 0, common.ErrInvalidLevel
	}

	return startDate, endDate, level, nil
}
