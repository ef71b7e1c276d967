package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ledgerlink/go-consent-report/internal/common"
	"github.com/ledgerlink/go-consent-report/internal/common/log"
	"github.com/ledgerlink/go-consent-report/internal/models"
	"github.com/ledgerlink/go-consent-report/internal/monitoring"
)

type ConsentService interface {
	// Onboard creates an upstream consent, records it locally, and returns
	// the onboarding redirect URL for the end user.
	Onboard(ctx context.Context, req models.OnboardConsentIn) (*models.OnboardConsentOut, error)

	// List returns all local consent records newest first, each enriched with
	// the live upstream status where the lookup succeeds.
	List(ctx context.Context) (*[]models.EnrichedConsent, error)

	// Get proxies the upstream consent document untouched.
	Get(ctx context.Context, consentID string) ([]byte, error)
}

type consent service

var _ ConsentService = (*consent)(nil)

// Onboard implements ConsentService. Upstream consent creation and OTC
// generation are fatal steps; the local insert is best-effort bookkeeping and
// only logged on failure, since the upstream consent already exists by then.
func (s *consent) Onboard(ctx context.Context, req models.OnboardConsentIn) (out *models.OnboardConsentOut, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	name := req.Name
	if name == "" {
		name = fmt.Sprintf("consent-%d", time.Now().UnixMilli())
	}

	consentID, err := s.srv.gateway.CreateConsent(ctx, name)
	if err != nil {
		return nil, err
	}

	_, dbErr := s.srv.sqlRepo.GetConsentRepository().Create(ctx, &models.CreateConsentIn{
		ConsentID: consentID,
		Name:      name,
		Status:    models.ConsentStatusPending,
	})
	if dbErr != nil {
		logger := log.From(ctx)
		logger.Warn().
			Err(dbErr).
			Str("consentId", consentID).
			Msg("[CONSENT-SERVICE] failed to store consent record")
	}

	code, err := s.srv.gateway.GenerateOTC(ctx, consentID)
	if err != nil {
		return nil, err
	}

	onboardingURL := fmt.Sprintf("%s/consent/%s/?otc=%s",
		strings.TrimRight(s.srv.conf.Aggregator.OnboardingBaseURL, "/"),
		consentID,
		url.QueryEscape(code),
	)

	return &models.OnboardConsentOut{
		ConsentID:     consentID,
		OnboardingURL: onboardingURL,
	}, nil
}

// List implements ConsentService. Enrichment lookups fan out concurrently and
// a failed lookup leaves that row with its local fields only; sibling lookups
// are never cancelled by one record's failure.
func (s *consent) List(ctx context.Context) (out *[]models.EnrichedConsent, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	consents, err := s.srv.sqlRepo.GetConsentRepository().List(ctx)
	if err != nil {
		err = common.ErrInternalServerError
		return
	}

	records := *consents
	enriched := make([]models.EnrichedConsent, len(records))

	group, gctx := errgroup.WithContext(ctx)
	for i, record := range records {
		i, record := i, record
		enriched[i] = models.EnrichedConsent{Consent: record}

		group.Go(func() error {
			upstream, _, lookupErr := s.srv.gateway.GetConsent(gctx, record.ConsentID)
			if lookupErr != nil {
				logger := log.From(gctx)
				logger.Warn().
					Err(lookupErr).
					Str("consentId", record.ConsentID).
					Msg("[CONSENT-SERVICE] enrichment lookup failed, returning local fields")
				return nil
			}

			enriched[i].Source = &upstream.Source
			enriched[i].UpstreamStatus = &upstream.Status
			return nil
		})
	}

	// goroutines swallow their own errors, Wait is for completion only
	_ = group.Wait()

	out = &enriched
	return
}

// Get implements ConsentService.
func (s *consent) Get(ctx context.Context, consentID string) (raw []byte, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	_, raw, err = s.srv.gateway.GetConsent(ctx, consentID)
	return
}
