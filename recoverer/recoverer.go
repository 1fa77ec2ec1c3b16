package recoverer

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ethereumspace/ic-eth-recover/core/types"
	"github.com/ethereumspace/ic-eth-recover/events"
	"github.com/ethereumspace/ic-eth-recover/log"
)

// Recoverer wraps Signature.Recover with chain binding, logging, metrics and
// event publication. Safe for concurrent use.
type Recoverer struct {
	cfg      *Config
	log      *log.Logger
	metrics  *Metrics
	bus      *events.EventBus
	registry prometheus.Registerer
}

type Option func(*Recoverer)

func WithLogger(l *log.Logger) Option {
	return func(r *Recoverer) { r.log = l }
}

func WithRegisterer(reg prometheus.Registerer) Option {
	return func(r *Recoverer) { r.registry = reg }
}

func WithEventBus(bus *events.EventBus) Option {
	return func(r *Recoverer) { r.bus = bus }
}

// New builds a Recoverer. A nil cfg means DefaultConfig; without WithLogger
// a logger at cfg.LogLevel is created.
func New(cfg *Config, opts ...Option) (*Recoverer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Recoverer{cfg: cfg}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = log.NewLogger(cfg.LogLevel)
	}
	r.log = r.log.Named("recoverer")
	r.metrics = NewMetricsWithRegistry(r.registry)

	return r, nil
}

func (r *Recoverer) Metrics() *Metrics { return r.metrics }

// Recover returns the signer address of sig over msg. EIP-155 signatures are
// checked against the configured chain first.
func (r *Recoverer) Recover(sig types.Signature, msg types.RecoveryMessage) (types.Address, error) {
	start := time.Now()

	if id, ok := sig.ChainID(); ok {
		if err := r.cfg.Chain.CheckChainID(id); err != nil {
			r.done(start, err)
			r.log.Warn("signature rejected", zap.Uint64("v", sig.V), zap.Error(err))
			return types.Address{}, err
		}
	}

	digest := msg.Digest()
	addr, err := sig.Recover(types.MessageHash(digest))
	r.done(start, err)
	if err != nil {
		r.log.Warn("signature recovery failed",
			zap.Stringer("digest", digest),
			zap.Uint64("v", sig.V),
			zap.Error(err),
		)
		return types.Address{}, err
	}

	r.log.Debug("signature recovered",
		zap.Stringer("address", addr),
		zap.Stringer("digest", digest),
		zap.Bool("personal", !msg.IsHash()),
	)
	if r.bus != nil {
		r.bus.PublishRecovered(events.Recovered{Address: addr, Digest: digest, V: sig.V})
	}
	return addr, nil
}

func (r *Recoverer) done(start time.Time, err error) {
	r.metrics.Requests.WithLabelValues(outcomeOf(err)).Inc()
	r.metrics.Duration.Observe(time.Since(start).Seconds())
}

// --------------------------------------------------------
// Batch
// --------------------------------------------------------

type Request struct {
	Signature types.Signature
	Message   types.RecoveryMessage
}

type Result struct {
	Address types.Address
	Err     error
}

// RecoverBatch recovers every request with at most cfg.Workers goroutines.
// Results keep the input order; per-item failures land in Result.Err. Only
// context cancellation fails the whole batch.
func (r *Recoverer) RecoverBatch(ctx context.Context, reqs []Request) ([]Result, error) {
	results := make([]Result, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)

	for i := range reqs {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			addr, err := r.Recover(reqs[i].Signature, reqs[i].Message)
			results[i] = Result{Address: addr, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.log.Debug("batch recovered", zap.Int("size", len(reqs)))
	return results, nil
}
