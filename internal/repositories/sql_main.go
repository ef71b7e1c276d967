package repositories

import (
	"database/sql"

	"github.com/ledgerlink/go-consent-report/internal/config"
)

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	config  config.Config
	common  sqlRepo

	cr *consentRepository
}

func NewSQLRepository(dbWrite *sql.DB, dbRead *sql.DB, cfg config.Config) *Repository {
	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		config:  cfg,
	}
	rtx.common.r = rtx
	rtx.cr = (*consentRepository)(&rtx.common)

	return rtx
}

// SQLRepository is the store seam the services depend on. Consents are
// insert-and-list only, so there is no transaction helper here; single-row
// insert atomicity comes from the database itself.
type SQLRepository interface {
	GetConsentRepository() ConsentRepository
}

var _ SQLRepository = (*Repository)(nil)

func (r *Repository) GetConsentRepository() ConsentRepository {
	return r.cr
}
