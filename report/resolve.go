package report

import (
	"context"
	"errors"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/storyproof/passage"
	"github.com/storyproof/passage/similarity"
)

type options struct {
	locator     *passage.Locator
	concurrency int
	logger      *passage.Logger
	metrics     passage.MetricsCollector
}

// Option is a function type that can be used to modify the Resolver.
type Option func(*options)

// WithLocator sets the locator used for each issue's quote.
func WithLocator(locator *passage.Locator) Option {
	return func(o *options) {
		if locator != nil {
			o.locator = locator
		}
	}
}

// WithConcurrency caps how many issues are located at once. Values
// below one keep the default of GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithLogger sets a custom logger for observability.
func WithLogger(logger *passage.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics sets a custom metrics collector.
func WithMetrics(collector passage.MetricsCollector) Option {
	return func(o *options) {
		if collector != nil {
			o.metrics = collector
		}
	}
}

// Resolver locates the quote of every issue in a report.
type Resolver struct {
	locator     *passage.Locator
	concurrency int
	logger      *passage.Logger
	metrics     passage.MetricsCollector
}

// NewResolver creates a new Resolver.
func NewResolver(optFns ...Option) *Resolver {
	opts := options{
		locator:     passage.New(),
		concurrency: runtime.GOMAXPROCS(0),
		logger:      passage.NoopLogger(),
		metrics:     passage.NoopMetricsCollector{},
	}

	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}

	return &Resolver{
		locator:     opts.locator,
		concurrency: opts.concurrency,
		logger:      opts.logger,
		metrics:     opts.metrics,
	}
}

// Resolve locates every issue's quote in the given scene segments.
//
// Output issues keep the input order. Issues without an ID are
// assigned one so downstream can key them; the input report is not
// modified. An issue whose quote is blank or cannot be found resolves
// to a zero-confidence non-match rather than failing the batch. The
// returned error is non-nil only when ctx is canceled mid-batch.
func (r *Resolver) Resolve(ctx context.Context, segments []passage.Segment, rep Report) (Resolution, error) {
	start := time.Now()

	resolved := make([]ResolvedIssue, len(rep.Issues))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, issue := range rep.Issues {
		i, issue := i, issue
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			if issue.ID == "" {
				issue.ID = uuid.New().String()
			}

			m, err := r.locator.Locate(gctx, segments, issue.Quote)
			if err != nil && !errors.Is(err, passage.ErrEmptyQuote) {
				return err
			}

			resolved[i] = ResolvedIssue{
				Issue:      issue,
				Match:      m,
				Confidence: confidence(m, issue.Quote, segments),
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		r.logger.LogResolve(ctx, len(rep.Issues), 0, err)
		return Resolution{}, err
	}

	located := 0
	for _, ri := range resolved {
		if ri.Match.Found {
			located++
		}
	}

	r.metrics.RecordResolve(len(rep.Issues), located, time.Since(start))
	r.logger.LogResolve(ctx, len(rep.Issues), located, nil)

	return Resolution{
		Chapter: rep.Chapter,
		Issues:  resolved,
		Located: located,
	}, nil
}

// confidence grades a match. Exact and normalized hits are verified
// equalities; a prefix hit is graded by how similar the located span
// is to the quote it stands in for.
func confidence(m passage.Match, quote string, segments []passage.Segment) float64 {
	switch {
	case !m.Found:
		return 0
	case m.Tier == passage.TierPrefix:
		return similarity.Score(quote, m.Span(segments))
	default:
		return 1
	}
}

var defaultResolver = NewResolver()

// Resolve locates every issue's quote using a default Resolver.
func Resolve(ctx context.Context, segments []passage.Segment, rep Report) (Resolution, error) {
	return defaultResolver.Resolve(ctx, segments, rep)
}
