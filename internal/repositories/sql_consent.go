package repositories

import (
	"context"

	"github.com/ledgerlink/go-consent-report/internal/models"
	"github.com/ledgerlink/go-consent-report/internal/monitoring"
)

type ConsentRepository interface {
	Create(ctx context.Context, in *models.CreateConsentIn) (created *models.Consent, err error)
	List(ctx context.Context) (*[]models.Consent, error)
}

type consentRepository sqlRepo

var _ ConsentRepository = (*consentRepository)(nil)

// Create implements ConsentRepository.
func (r *consentRepository) Create(ctx context.Context, in *models.CreateConsentIn) (*models.Consent, error) {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.dbWrite

	var result models.Consent
	err = db.QueryRowContext(ctx, queryConsentCreate, in.ConsentID, in.Name, in.Status).Scan(
		&result.ID,
		&result.ConsentID,
		&result.Name,
		&result.Status,
		&result.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// List implements ConsentRepository. Rows come back newest first.
func (r *consentRepository) List(ctx context.Context) (*[]models.Consent, error) {
	var err error

	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.dbRead

	rows, err := db.QueryContext(ctx, queryConsentList)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.Consent
	for rows.Next() {
		var consent models.Consent
		if err := rows.Scan(
			&consent.ID,
			&consent.ConsentID,
			&consent.Name,
			&consent.Status,
			&consent.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, consent)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &result, nil
}
