package middleware

import (
	"github.com/ledgerlink/go-consent-report/internal/common/idgenerator"
	"github.com/ledgerlink/go-consent-report/internal/config"
)

type AppMiddleware struct {
	conf  config.Config
	idgen idgenerator.Generator
}

func NewMiddleware(conf config.Config, idgen idgenerator.Generator) AppMiddleware {
	return AppMiddleware{
		conf:  conf,
		idgen: idgen,
	}
}
