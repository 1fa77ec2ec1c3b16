package recoverer

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ethereumspace/ic-eth-recover/core/types"
	"github.com/ethereumspace/ic-eth-recover/params"
)

// Outcome label values of recover_requests_total.
const (
	OutcomeOK                  = "ok"
	OutcomeInvalidRecoveryID   = "invalid_recovery_id"
	OutcomeInvalidScalar       = "invalid_scalar"
	OutcomeRecoveryFailed      = "recovery_failed"
	OutcomeDecompressionFailed = "decompression_failed"
	OutcomeChainIDMismatch     = "chain_id_mismatch"
	OutcomeOther               = "other"
)

type Metrics struct {
	Requests *prometheus.CounterVec
	Duration prometheus.Histogram
}

// NewMetricsWithRegistry registers the recovery metrics with registry. A nil
// registry gets a private one so repeated construction never collides.
func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	factory := promauto.With(registry)

	return &Metrics{
		Requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recover_requests_total",
				Help: "Signature recoveries by outcome",
			},
			[]string{"outcome"},
		),
		Duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "recover_duration_seconds",
			Help:    "Time spent recovering a single signature",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
	}
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, types.ErrInvalidRecoveryID):
		return OutcomeInvalidRecoveryID
	case errors.Is(err, types.ErrInvalidSignatureScalar):
		return OutcomeInvalidScalar
	case errors.Is(err, types.ErrPublicKeyRecoveryFailed):
		return OutcomeRecoveryFailed
	case errors.Is(err, types.ErrPublicKeyDecompressionFailed):
		return OutcomeDecompressionFailed
	case errors.Is(err, params.ErrChainIDMismatch):
		return OutcomeChainIDMismatch
	default:
		return OutcomeOther
	}
}
