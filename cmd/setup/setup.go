package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"

	"github.com/ledgerlink/go-consent-report/internal/common/aggregator"
	"github.com/ledgerlink/go-consent-report/internal/common/graceful"
	"github.com/ledgerlink/go-consent-report/internal/common/idgenerator"
	"github.com/ledgerlink/go-consent-report/internal/common/log"
	cMetrics "github.com/ledgerlink/go-consent-report/internal/common/metrics"
	"github.com/ledgerlink/go-consent-report/internal/config"
	"github.com/ledgerlink/go-consent-report/internal/repositories"
	"github.com/ledgerlink/go-consent-report/internal/services"

	_ "github.com/lib/pq"
)

type Setup struct {
	Config      config.Config
	NewRelic    *newrelic.Application
	WriteDB     *sql.DB
	ReadDB      *sql.DB
	IDGenerator idgenerator.Generator
	Gateway     aggregator.Client
	Service     *services.Services
	Metrics     cMetrics.Metrics
}

func Init(command string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return
	}

	setup = &Setup{
		Config: cfg,
	}

	logLevel := "debug"
	excludedDebugLevelOnEnvs := []config.Environment{
		config.DEV_ENV,
		config.UAT_ENV,
		config.PROD_ENV,
	}

	if slices.Contains(excludedDebugLevelOnEnvs, config.StringToEnvironment(cfg.App.Env)) {
		logLevel = "info"
	}
	if cfg.App.LogLevel != "" {
		logLevel = cfg.App.LogLevel
	}

	log.Init(cfg.App.Name, logLevel)
	logger := log.From(ctx)
	logger.Info().
		Str("env", config.StringToEnvironment(cfg.App.Env).String()).
		Msg("configuration loaded")

	newRelic := setupNR(ctx, cfg)

	// metrics
	mtc := cMetrics.New()

	// connect to db master
	writeDB, readDB, err := setupPostgres(cfg)
	if err != nil {
		err = fmt.Errorf("failed connect to database: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		var errs error

		if writeDB != nil {
			if err := writeDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close writeDB: %w", err))
			}
		}

		if readDB != nil {
			if err := readDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close readDB: %w", err))
			}
		}

		return errs
	})

	if mtc != nil {
		// register DB write stat prometheus metrics
		err = mtc.RegisterDB(writeDB, cfg.App.Name+"-"+command+"-write", cfg.Postgres.Write.DbName)
		if err != nil {
			err = fmt.Errorf("failed register DB stat prometheus: %w", err)
			return
		}
		// register DB read stat prometheus metrics
		err = mtc.RegisterDB(readDB, cfg.App.Name+"-"+command+"-read", cfg.Postgres.Read.DbName)
		if err != nil {
			err = fmt.Errorf("failed register DB stat prometheus: %w", err)
			return
		}
	}

	// register repository
	sqlRepo := repositories.NewSQLRepository(writeDB, readDB, cfg)

	idGenerator := idgenerator.New()
	gateway := aggregator.New(cfg.Aggregator, idGenerator, mtc)

	// register service
	srv := services.New(cfg, sqlRepo, gateway)

	return &Setup{
		Config:      cfg,
		NewRelic:    newRelic,
		WriteDB:     writeDB,
		ReadDB:      readDB,
		IDGenerator: idGenerator,
		Gateway:     gateway,
		Service:     srv,
		Metrics:     mtc,
	}, stopper, nil
}

func loadConfig() (config.Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/config")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvPrefix("GO_CONSENT_REPORT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg config.Config
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "json"
		dc.DecodeHook = mapstructure.StringToTimeDurationHookFunc()
	})
	if err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

func setupPostgres(conf config.Config) (*sql.DB, *sql.DB, error) {
	writeDB, err := initDB(conf.Postgres.Write)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init write DB: %w", err)
	}

	readDB, err := initDB(conf.Postgres.Read)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init read DB: %w", err)
	}

	return writeDB, readDB, nil
}

func initDB(pgConf config.Database) (*sql.DB, error) {
	const (
		DefaultMaxOpen     = 10
		DefaultMaxIdle     = 10
		DefaultMaxLifetime = 3 // minutes
	)

	dsName := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s search_path=%s sslmode=disable",
		pgConf.DbHost, pgConf.DbPort, pgConf.DbUser, pgConf.DbPass, pgConf.DbName, pgConf.DbSchema,
	)

	db, err := sql.Open("postgres", dsName)
	if err != nil {
		return nil, err
	}

	if pgConf.MaxOpenConnection > 0 {
		db.SetMaxOpenConns(pgConf.MaxOpenConnection)
	} else {
		db.SetMaxOpenConns(DefaultMaxOpen)
	}

	if pgConf.MaxIdleConnection > 0 {
		db.SetMaxIdleConns(pgConf.MaxIdleConnection)
	} else {
		db.SetMaxIdleConns(DefaultMaxIdle)
	}

	if pgConf.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(pgConf.ConnMaxLifetime) * time.Minute)
	} else {
		db.SetConnMaxLifetime(time.Duration(DefaultMaxLifetime) * time.Minute)
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func setupNR(ctx context.Context, cfg config.Config) *newrelic.Application {
	if env := config.StringToEnvironment(cfg.App.Env); env == config.PROD_ENV {
		app, err := newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.App.Name),
			newrelic.ConfigLicense(cfg.NewRelicLicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
		)
		logger := log.From(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("setupNR.NewApplication")
			return nil
		}
		if err = app.WaitForConnection(15 * time.Second); nil != err {
			logger.Error().Err(err).Msg("setupNR.WaitForConnection")
		}
		return app
	}
	return nil
}
