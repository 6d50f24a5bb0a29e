package estimate

import (
	"math"

	"go.uber.org/zap"

	"github.com/arloliu/phiinf/internal/options"
	"github.com/arloliu/phiinf/profile"
)

// Estimator runs the full log phiInf estimation pipeline.
//
// An Estimator is immutable after New and safe for concurrent use.
type Estimator struct {
	cfg Config
}

// New creates an Estimator.
//
// Parameters:
//   - opts: Functional options; see WithTolerance, WithTail and WithLogger
//
// Returns:
//   - *Estimator: The configured estimator
//   - error: errs.ErrInvalidOption wrapped with detail if an option is rejected
func New(opts ...Option) (*Estimator, error) {
	cfg := DefaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Estimator{cfg: cfg}, nil
}

// Config returns a copy of the estimator configuration.
func (e *Estimator) Config() Config {
	return e.cfg
}

// Estimate returns the best estimate of log phiInf for p.
//
// Numerical failure is not an error: it is reported as a Result with an
// infinite Error. The returned error is non-nil only when p violates the
// preconditions checked by profile.Validate.
func (e *Estimator) Estimate(p *profile.Profile) (Result, error) {
	report, err := e.Report(p)
	if err != nil {
		return failed(MethodNone), err
	}

	return report.Best, nil
}

// Report runs the pipeline and returns every candidate that took part in
// the selection.
//
// For a massive profile the candidates are, in order: the regression with
// the configured tolerance, the regression retried with the tolerance implied
// by the geometric estimate, and the geometric estimate. For a massless
// profile they are the power-law tail fit and the massless geometric
// estimate. The best candidate has the smallest error, ties going to the
// earlier one.
func (e *Estimator) Report(p *profile.Profile) (*Report, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	logger := e.cfg.Logger.With(zap.Uint64("profile", p.Fingerprint()))

	var report *Report
	if p.IsMassless() {
		report = &Report{Candidates: masslessCandidates(p), RetryTolerance: math.NaN()}
	} else {
		report = e.massive(p, logger)
	}
	report.Best = SelectBest(report.Candidates...)

	for _, c := range report.Candidates {
		logger.Debug("candidate estimate",
			zap.Stringer("method", c.Method),
			zap.Float64("value", c.Value),
			zap.Float64("error", c.Error))
	}
	logger.Debug("selected estimate", zap.Stringer("method", report.Best.Method))

	return report, nil
}

func (e *Estimator) massive(p *profile.Profile, logger *zap.Logger) *Report {
	first, sample := e.regression(p, e.cfg.Tolerance, logger)

	geometric := Geometric(p, p.MassMeta)

	retryTol := retryTolerance(geometric)
	if math.IsInf(retryTol, 1) {
		logger.Warn("geometric estimate unusable, retrying regression without tolerance",
			zap.Float64("value", geometric.Value),
			zap.Float64("error", geometric.Error))
	}

	second, _ := e.regression(p, retryTol, logger)
	second.Method = MethodRegressionRetry

	return &Report{
		Candidates:     []Result{first, second, geometric},
		RetryTolerance: retryTol,
		Sample:         sample,
	}
}

func (e *Estimator) regression(p *profile.Profile, tol float64, logger *zap.Logger) (Result, *TailFitSample) {
	res, sample, stats := MainMethod(p, e.cfg.Tail, tol)
	if sample == nil {
		logger.Debug("no tail sample",
			zap.Float64("tolerance", tol),
			zap.Float64("tail", stats.Tail),
			zap.Int("restarts", stats.Restarts))

		return res, nil
	}

	logger.Debug("tail sample selected",
		zap.Float64("tolerance", tol),
		zap.Float64("tail", stats.Tail),
		zap.Int("restarts", stats.Restarts),
		zap.Ints("indices", sample.Indices[:]))

	return res, sample
}

// retryTolerance derives the second-pass tolerance from the geometric
// estimate's relative error. An unusable or zero geometric estimate gives
// +Inf, which accepts the first complete tail sample.
func retryTolerance(geometric Result) float64 {
	if geometric.Value == 0 || !geometric.Usable() {
		return math.Inf(1)
	}

	return math.Abs(geometric.Error / geometric.Value)
}
