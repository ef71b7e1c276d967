package monitoring

import (
	"time"

	"github.com/ledgerlink/go-consent-report/internal/common/log"
)

var messagePrefix = map[string]string{
	LayerRepository: "[REPOSITORY]",
	LayerService:    "[SERVICE]",
	LayerDelivery:   "[DELIVERY]",
	LayerUnknown:    "[-]",
}

type finishOptions struct {
	err error
}

type FinishOption func(*finishOptions)

func WithFinishCheckError(err error) FinishOption {
	return func(o *finishOptions) {
		o.err = err
	}
}

func (m *Monitor) Finish(opts ...FinishOption) {
	fOpts := &finishOptions{}
	for _, opt := range opts {
		opt(fOpts)
	}

	duration := time.Since(m.start)

	logger := log.From(m.ctx)
	if fOpts.err != nil {
		logger.Warn().
			Str("segment", m.segmentName).
			Str("processDuration", duration.String()).
			Str("status", "error").
			Err(fOpts.err).
			Msg(messagePrefix[m.layer])
	} else {
		// only log success from delivery & service layers to avoid duplicate log
		if m.layer == LayerDelivery || m.layer == LayerService {
			logger.Info().
				Str("segment", m.segmentName).
				Str("processDuration", duration.String()).
				Str("status", "success").
				Msg(messagePrefix[m.layer])
		}
	}

	if m.segment != nil {
		m.segment.End()
	}
}
