package models

import "time"

const (
	// ConsentStatusPending is the only status written locally; the upstream
	// aggregator owns the authoritative lifecycle and its numeric codes are
	// treated as opaque.
	ConsentStatusPending = 0
)

type Consent struct {
	ID        int
	ConsentID string
	Name      string
	Status    int
	CreatedAt *time.Time
}

func (c *Consent) ConvertToConsentOut() *ConsentOut {
	return &ConsentOut{
		Kind:      "consent",
		ConsentID: c.ConsentID,
		Name:      c.Name,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
	}
}

type CreateConsentIn struct {
	ConsentID string
	Name      string
	Status    int
}

type ConsentOut struct {
	Kind      string     `json:"kind"`
	ConsentID string     `json:"consentId"`
	Name      string     `json:"name"`
	Status    int        `json:"status"`
	CreatedAt *time.Time `json:"createdAt"`
}

// EnrichedConsent is a local consent row joined with the live upstream status
// at read time. Source and UpstreamStatus stay nil when the upstream lookup
// failed; the local fields are still returned.
type EnrichedConsent struct {
	Consent
	Source         *string
	UpstreamStatus *int
}

func (c *EnrichedConsent) ConvertToEnrichedConsentOut() *EnrichedConsentOut {
	return &EnrichedConsentOut{
		ConsentOut:     *c.Consent.ConvertToConsentOut(),
		Source:         c.Source,
		UpstreamStatus: c.UpstreamStatus,
	}
}

type EnrichedConsentOut struct {
	ConsentOut
	Source         *string `json:"source,omitempty"`
	UpstreamStatus *int    `json:"upstreamStatus,omitempty"`
}

// AggregatorConsent is the upstream view of a consent.
type AggregatorConsent struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status int    `json:"status"`
	Source string `json:"source"`
}

type OnboardConsentRequest struct {
	Name string `json:"name" validate:"omitempty,max=100"`
}

type OnboardConsentIn struct {
	Name string
}

type OnboardConsentOut struct {
	ConsentID     string `json:"consentId"`
	OnboardingURL string `json:"onboardingUrl"`
}
