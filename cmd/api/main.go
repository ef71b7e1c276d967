package main

import (
	"context"
	"sync"
	"time"

	"github.com/ledgerlink/go-consent-report/cmd/setup"
	"github.com/ledgerlink/go-consent-report/internal/common/graceful"
	"github.com/ledgerlink/go-consent-report/internal/common/log"
	"github.com/ledgerlink/go-consent-report/internal/deliveries/http"
)

func main() {
	var (
		ctx      = context.Background()
		starters []graceful.ProcessStarter
		stoppers []graceful.ProcessStopper
	)

	s, stopperContract, err := setup.Init("api")
	if err != nil {
		timeout := 5 * time.Second
		if s != nil && s.Config.App.GracefulTimeout != 0 {
			timeout = s.Config.App.GracefulTimeout
		}

		graceful.StopProcess(timeout, stopperContract...)

		logger := log.From(ctx)
		logger.Fatal().Err(err).Msg("failed to setup app")
	}

	httpServer := http.NewHTTPServer(ctx, s.Config, s.NewRelic,
		s.IDGenerator,
		s.Service.Consent,
		s.Service.Report,
	)

	starters = append(starters, httpServer.Start())
	stoppers = append(stoppers, httpServer.Stop())
	stoppers = append(stoppers, stopperContract...)

	wg := new(sync.WaitGroup)
	wg.Add(1)
	go func() {
		graceful.StartProcessAtBackground(starters...)
		graceful.StopProcessAtBackground(s.Config.App.GracefulTimeout, stoppers...)
		wg.Done()
	}()
	wg.Wait()
	logger := log.From(ctx)
	logger.Info().Msg("http server stopped!")
}
