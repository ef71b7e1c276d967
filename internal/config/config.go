package config

import (
	"time"
)

type (
	Config struct {
		App                App      `json:"app"`
		Postgres           Postgres `json:"postgres"`
		NewRelicLicenseKey string   `json:"new_relic_license_key"`

		Aggregator   AggregatorConfig `json:"aggregator"`
		ReportConfig ReportConfig     `json:"report_config"`
	}

	App struct {
		Env             string        `json:"env"`
		HTTPPort        int           `json:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout"`
		Name            string        `json:"name"`
		LogLevel        string        `json:"log_level"`
	}

	Postgres struct {
		Write Database `json:"write"`
		Read  Database `json:"read"`
	}

	Database struct {
		DbHost            string `json:"db_host"`
		DbPort            string `json:"db_port"`
		DbUser            string `json:"db_user"`
		DbPass            string `json:"db_pass"`
		DbName            string `json:"db_name"`
		DbSchema          string `json:"db_schema"`
		MaxOpenConnection int    `json:"maxOpenConnections"`
		MaxIdleConnection int    `json:"maxIdleConnections"`
		ConnMaxLifetime   int    `json:"connMaxLifetime"`
	}

	// AggregatorConfig holds the upstream financial-data aggregator endpoints.
	// ConsentBaseURL serves the consent lifecycle, AccountingBaseURL the
	// accounting data, OnboardingBaseURL is where the end user is redirected
	// to finish connecting their accounting system.
	AggregatorConfig struct {
		ConsentBaseURL    string        `json:"consent_base_url"`
		AccountingBaseURL string        `json:"accounting_base_url"`
		OnboardingBaseURL string        `json:"onboarding_base_url"`
		APIKey            string        `json:"api_key"`
		Timeout           time.Duration `json:"timeout"`
	}

	ReportConfig struct {
		// PreferredLanguage selects which localized description text is shown.
		PreferredLanguage string `json:"preferred_language"`

		// DefaultStartDate and DefaultEndDate bound the income statement when
		// the caller does not pass a date range.
		DefaultStartDate string `json:"default_start_date"`
		DefaultEndDate   string `json:"default_end_date"`

		// DefaultLevel is the detail level requested from upstream, 1-3.
		DefaultLevel int `json:"default_level"`
	}
)

func (r ReportConfig) PreferredLanguageOrDefault() string {
	if r.PreferredLanguage == "" {
		return "SWE"
	}
	return r.PreferredLanguage
}

func (r ReportConfig) DateRangeOrDefault() (string, string) {
	start, end := r.DefaultStartDate, r.DefaultEndDate
	if start == "" {
		start = "2024-01-01"
	}
	if end == "" {
		end = "2024-12-31"
	}
	return start, end
}

func (r ReportConfig) LevelOrDefault() int {
	if r.DefaultLevel < 1 || r.DefaultLevel > 3 {
		return 3
	}
	return r.DefaultLevel
}
