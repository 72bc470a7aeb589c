package bulk

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/UmairZakria/gbs-dashboard2/internal/application/form"
	"github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
	"github.com/UmairZakria/gbs-dashboard2/internal/domain/shared"
	"github.com/UmairZakria/gbs-dashboard2/internal/infrastructure/httpclient"
	"github.com/UmairZakria/gbs-dashboard2/internal/infrastructure/telemetry"
)

// Target creates one record of an entity from a manifest row
type Target interface {
	Create(ctx context.Context, row Row) (string, error)
}

// FormTarget fills a fresh create-mode form from a row and submits it
type FormTarget[T catalog.Entity] struct {
	NewForm  func(record *T) *form.Form[T]
	CreateFn func(ctx context.Context, value T) (*T, error)
}

// Create implements Target and returns the new record's id
func (t FormTarget[T]) Create(ctx context.Context, row Row) (string, error) {
	f := t.NewForm(nil)
	fields, err := row.Fields(func(key string) bool {
		fld, ok := f.Field(key)
		return ok && fld.IsList()
	})
	if err != nil {
		return "", shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := f.Set(k, fields[k]); err != nil {
			return "", err
		}
	}
	if _, hasSlug := fields["slug"]; !hasSlug {
		f.GenerateSlug()
	}

	var id string
	f.OnSubmit(func(ctx context.Context, value T) error {
		created, err := t.CreateFn(ctx, value)
		if err != nil {
			return err
		}
		if created != nil {
			id = (*created).GetID()
		}
		return nil
	})
	if err := f.Submit(ctx); err != nil {
		return "", err
	}
	return id, nil
}

// RowResult is the outcome of one manifest row
type RowResult struct {
	Entity string
	Index  int
	ID     string
	Err    error
}

// Message is the text shown for a failed row
func (r RowResult) Message() string {
	if r.Err == nil {
		return ""
	}
	var verr *form.ValidationError
	if errors.As(r.Err, &verr) {
		return verr.Errors.String()
	}
	return httpclient.MessageOr(r.Err, r.Err.Error())
}

// Report collects the outcome of every row in manifest order
type Report struct {
	Results  []RowResult
	Duration time.Duration
}

// Created counts successful rows
func (r *Report) Created() int {
	n := 0
	for _, res := range r.Results {
		if res.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the failed rows
func (r *Report) Failed() []RowResult {
	var out []RowResult
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// Importer creates manifest rows one at a time, paced by a token bucket
type Importer struct {
	targets map[string]Target
	limiter *rate.Limiter
	logger  *zap.Logger
	metrics *telemetry.ClientMetrics
}

// Option configures an Importer
type Option func(*Importer)

// WithRate paces creates at perSecond with the given burst. perSecond <= 0
// disables pacing.
func WithRate(perSecond float64, burst int) Option {
	return func(im *Importer) {
		if perSecond <= 0 {
			im.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		im.limiter = rate.NewLimiter(rate.Limit(perSecond), max(burst, 1))
	}
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(im *Importer) { im.logger = l }
}

// WithMetrics counts failed creates
func WithMetrics(m *telemetry.ClientMetrics) Option {
	return func(im *Importer) { im.metrics = m }
}

// NewImporter creates an Importer over the given entity targets
func NewImporter(targets map[string]Target, opts ...Option) *Importer {
	im := &Importer{
		targets: targets,
		limiter: rate.NewLimiter(5, 1),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(im)
	}
	return im
}

// Run imports every row. A failing row is recorded and the run continues; Run
// only returns an error for an unknown entity (before anything is created) or
// when ctx is cancelled, in which case the partial report is returned too.
func (im *Importer) Run(ctx context.Context, f *File) (*Report, error) {
	var unknown []string
	for _, b := range f.Batches {
		if _, ok := im.targets[b.Entity]; !ok {
			unknown = append(unknown, b.Entity)
		}
	}
	if len(unknown) > 0 {
		return nil, shared.NewDomainError("INVALID_INPUT",
			fmt.Sprintf("unknown entity: %s", strings.Join(unknown, ", ")))
	}

	start := time.Now()
	report := &Report{Results: make([]RowResult, 0, f.Rows())}
	for _, b := range f.Batches {
		target := im.targets[b.Entity]
		for i, row := range b.Rows {
			if err := im.limiter.Wait(ctx); err != nil {
				report.Duration = time.Since(start)
				return report, fmt.Errorf("import interrupted: %w", err)
			}

			id, err := target.Create(ctx, row)
			res := RowResult{Entity: b.Entity, Index: i, ID: id, Err: err}
			report.Results = append(report.Results, res)
			if err != nil {
				im.metrics.MutationFailed(b.Entity, "import")
				im.logger.Warn("Import row failed",
					zap.String("entity", b.Entity),
					zap.Int("row", i),
					zap.String("message", res.Message()),
				)
				continue
			}
			im.logger.Debug("Import row created",
				zap.String("entity", b.Entity),
				zap.Int("row", i),
				zap.String("id", id),
			)
		}
	}

	report.Duration = time.Since(start)
	im.logger.Info("Import finished",
		zap.Int("rows", len(report.Results)),
		zap.Int("created", report.Created()),
		zap.Int("failed", len(report.Failed())),
		zap.Duration("duration", report.Duration),
	)
	return report, nil
}
