package services

import (
	"github.com/ledgerlink/go-consent-report/internal/common/aggregator"
	"github.com/ledgerlink/go-consent-report/internal/config"
	"github.com/ledgerlink/go-consent-report/internal/repositories"
	"github.com/ledgerlink/go-consent-report/internal/services/reportview"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo repositories.SQLRepository
	gateway aggregator.Client

	normalizer *reportview.Normalizer

	common service

	Consent *consent
	Report  *report
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	gateway aggregator.Client,
) *Services {
	srv := &Services{
		conf:    conf,
		sqlRepo: sqlRepo,
		gateway: gateway,

		normalizer: reportview.New(conf.ReportConfig.PreferredLanguageOrDefault()),
	}
	srv.common.srv = srv
	srv.Consent = (*consent)(&srv.common)
	srv.Report = (*report)(&srv.common)

	return srv
}
