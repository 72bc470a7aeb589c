// Package listview is the controller behind every entity table: it loads a
// page (plus optional statistics), tracks pagination and filters, and runs
// the confirm-then-delete and save-then-refetch flows.
package listview

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/UmairZakria/gbs-dashboard2/internal/application/form"
	"github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
	"github.com/UmairZakria/gbs-dashboard2/internal/domain/shared"
	"github.com/UmairZakria/gbs-dashboard2/internal/infrastructure/httpclient"
	"github.com/UmairZakria/gbs-dashboard2/internal/infrastructure/logger"
	"github.com/UmairZakria/gbs-dashboard2/internal/infrastructure/telemetry"
)

// Query selects the page a screen shows
type Query struct {
	Page    int
	Limit   int
	Search  string
	Filters map[string]string
}

// Confirmer asks the user a yes/no question and blocks until answered
type Confirmer interface {
	Confirm(ctx context.Context, message string) bool
}

// Alerter shows a blocking message
type Alerter interface {
	Alert(ctx context.Context, message string)
}

// ConfirmFunc adapts a function to Confirmer
type ConfirmFunc func(ctx context.Context, message string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, message string) bool { return f(ctx, message) }

// AlertFunc adapts a function to Alerter
type AlertFunc func(ctx context.Context, message string)

func (f AlertFunc) Alert(ctx context.Context, message string) { f(ctx, message) }

// Source is the backend a screen reads and writes through
type Source[T catalog.Entity] struct {
	List func(ctx context.Context, q Query) (*catalog.Page[T], error)
	// Get is optional; Find walks List pages without it
	Get    func(ctx context.Context, id string) (*T, error)
	Stats  func(ctx context.Context) (catalog.Stats, error)
	Create func(ctx context.Context, value T) (*T, error)
	Update func(ctx context.Context, id string, value T) (*T, error)
	Delete func(ctx context.Context, id string) error
}

// Config describes one entity screen
type Config[T catalog.Entity] struct {
	// Entity is the singular lower-case name used in messages, e.g. "author"
	Entity string
	// Plural defaults to Entity + "s"
	Plural   string
	PageSize int
	Source   Source[T]
	NewForm  func(record *T) *form.Form[T]
}

// State is a snapshot of what the screen renders
type State[T any] struct {
	Items      []T
	Page       int
	TotalPages int
	Total      int
	Loading    bool
	Error      string
	Stats      catalog.Stats
	Query      Query
}

// Screen is the generic list controller. It is safe for concurrent use.
type Screen[T catalog.Entity] struct {
	cfg     Config[T]
	confirm Confirmer
	alert   Alerter
	logger  *zap.Logger
	metrics *telemetry.ClientMetrics

	mu         sync.Mutex
	state      State[T]
	generation uint64
}

// Option configures a Screen
type Option[T catalog.Entity] func(*Screen[T])

// WithLogger sets the logger mutation failures are written to
func WithLogger[T catalog.Entity](l *zap.Logger) Option[T] {
	return func(s *Screen[T]) { s.logger = l }
}

// WithMetrics counts mutation failures
func WithMetrics[T catalog.Entity](m *telemetry.ClientMetrics) Option[T] {
	return func(s *Screen[T]) { s.metrics = m }
}

// WithQuery sets the query the first Load uses
func WithQuery[T catalog.Entity](q Query) Option[T] {
	return func(s *Screen[T]) {
		if q.Page < 1 {
			q.Page = 1
		}
		if q.Limit < 1 {
			q.Limit = s.cfg.PageSize
		}
		q.Filters = maps.Clone(q.Filters)
		s.state.Query = q
	}
}

// NewScreen creates a screen. confirm and alert are the blocking dialogs.
func NewScreen[T catalog.Entity](cfg Config[T], confirm Confirmer, alert Alerter, opts ...Option[T]) *Screen[T] {
	if cfg.Plural == "" {
		cfg.Plural = cfg.Entity + "s"
	}
	if cfg.PageSize < 1 {
		cfg.PageSize = 20
	}
	s := &Screen[T]{
		cfg:     cfg,
		confirm: confirm,
		alert:   alert,
		logger:  zap.NewNop(),
		state: State[T]{
			Page:       1,
			TotalPages: 1,
			Query:      Query{Page: 1, Limit: cfg.PageSize},
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Entity returns the singular entity name
func (s *Screen[T]) Entity() string { return s.cfg.Entity }

// Plural returns the plural entity name
func (s *Screen[T]) Plural() string { return s.cfg.Plural }

// HasStats reports whether the screen loads statistics
func (s *Screen[T]) HasStats() bool { return s.cfg.Source.Stats != nil }

// CanCreate reports whether the screen has a create form and operation
func (s *Screen[T]) CanCreate() bool { return s.cfg.NewForm != nil && s.cfg.Source.Create != nil }

// CanEdit reports whether the screen has an edit form and operation
func (s *Screen[T]) CanEdit() bool { return s.cfg.NewForm != nil && s.cfg.Source.Update != nil }

// CanDelete reports whether the screen can delete records
func (s *Screen[T]) CanDelete() bool { return s.cfg.Source.Delete != nil }

// State returns a copy of the current state
func (s *Screen[T]) State() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	st.Items = slices.Clone(s.state.Items)
	st.Stats = maps.Clone(s.state.Stats)
	st.Query.Filters = maps.Clone(s.state.Query.Filters)
	return st
}

// Load fetches the current page, and statistics when the screen has them.
// A list failure is recorded in State.Error and returned.
func (s *Screen[T]) Load(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.state.Loading = true
	s.state.Error = ""
	q := s.state.Query
	q.Filters = maps.Clone(q.Filters)
	s.mu.Unlock()

	var (
		page  *catalog.Page[T]
		stats catalog.Stats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page, err = s.cfg.Source.List(gctx, q)
		return err
	})
	if s.cfg.Source.Stats != nil {
		g.Go(func() error {
			st, err := s.cfg.Source.Stats(gctx)
			if err != nil {
				// statistics are decorative; the table still renders
				logger.WithLogger(ctx, s.logger).Warn("Failed to load statistics",
					zap.String("entity", s.cfg.Entity), zap.Error(err))
				return nil
			}
			stats = st
			return nil
		})
	}
	err := g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return err
	}
	s.state.Loading = false
	if err != nil {
		s.state.Error = httpclient.MessageOr(err, "Failed to load "+s.cfg.Plural)
		logger.WithLogger(ctx, s.logger).Error("Failed to load list",
			zap.String("entity", s.cfg.Entity), zap.Int("page", q.Page), zap.Error(err))
		return err
	}
	if page == nil {
		page = &catalog.Page[T]{Page: q.Page, Limit: q.Limit, TotalPages: 1}
	}
	s.state.Items = page.Data
	s.state.Total = page.Total
	s.state.TotalPages = max(page.TotalPages, 1)
	s.state.Page = q.Page
	if stats != nil {
		s.state.Stats = stats
	}
	return nil
}

// Retry reloads after a failed fetch
func (s *Screen[T]) Retry(ctx context.Context) error {
	return s.Load(ctx)
}

// SetPage moves to page p, clamped to [1, totalPages]. Staying on the
// current page does not refetch.
func (s *Screen[T]) SetPage(ctx context.Context, p int) error {
	s.mu.Lock()
	p = min(max(p, 1), max(s.state.TotalPages, 1))
	if p == s.state.Query.Page {
		s.mu.Unlock()
		return nil
	}
	s.state.Query.Page = p
	s.mu.Unlock()
	return s.Load(ctx)
}

// NextPage advances one page; a no-op on the last page
func (s *Screen[T]) NextPage(ctx context.Context) error {
	return s.SetPage(ctx, s.State().Query.Page+1)
}

// PrevPage goes back one page; a no-op on the first page
func (s *Screen[T]) PrevPage(ctx context.Context) error {
	return s.SetPage(ctx, s.State().Query.Page-1)
}

// SetFilter sets or clears (empty value) a filter and reloads from page 1
func (s *Screen[T]) SetFilter(ctx context.Context, key, value string) error {
	s.mu.Lock()
	filters := maps.Clone(s.state.Query.Filters)
	if filters == nil {
		filters = map[string]string{}
	}
	if value == "" {
		delete(filters, key)
	} else {
		filters[key] = value
	}
	s.state.Query.Filters = filters
	s.state.Query.Page = 1
	s.mu.Unlock()
	return s.Load(ctx)
}

// SetSearch sets the search term and reloads from page 1
func (s *Screen[T]) SetSearch(ctx context.Context, term string) error {
	s.mu.Lock()
	s.state.Query.Search = term
	s.state.Query.Page = 1
	s.mu.Unlock()
	return s.Load(ctx)
}

// New returns a create-mode form whose submit saves through this screen
func (s *Screen[T]) New() *form.Form[T] {
	f := s.cfg.NewForm(nil)
	return f.OnSubmit(func(ctx context.Context, value T) error {
		return s.Save(ctx, form.ModeCreate, "", value)
	})
}

// Edit returns a form pre-populated from record whose submit updates it
func (s *Screen[T]) Edit(record T) *form.Form[T] {
	f := s.cfg.NewForm(&record)
	id := record.GetID()
	return f.OnSubmit(func(ctx context.Context, value T) error {
		return s.Save(ctx, form.ModeEdit, id, value)
	})
}

// Save creates or updates value and refetches on success. On failure it
// alerts, logs and returns the error so the form stays open.
func (s *Screen[T]) Save(ctx context.Context, mode form.Mode, id string, value T) error {
	var err error
	if mode == form.ModeEdit {
		if s.cfg.Source.Update == nil {
			err = s.unsupported("update")
		} else {
			_, err = s.cfg.Source.Update(ctx, id, value)
		}
	} else {
		if s.cfg.Source.Create == nil {
			err = s.unsupported("create")
		} else {
			_, err = s.cfg.Source.Create(ctx, value)
		}
	}
	if err != nil {
		s.fail(ctx, "save", "Failed to save "+s.cfg.Entity, err, zap.String("mode", mode.String()), zap.String("id", id))
		return err
	}

	_ = s.Load(ctx)
	return nil
}

// Delete asks for confirmation, deletes record once and refetches. It
// reports whether the user confirmed. On failure the list is left as is.
func (s *Screen[T]) Delete(ctx context.Context, record T) (bool, error) {
	if s.confirm != nil && !s.confirm.Confirm(ctx, fmt.Sprintf("Are you sure you want to delete this %s?", s.cfg.Entity)) {
		return false, nil
	}

	var err error
	if s.cfg.Source.Delete == nil {
		err = s.unsupported("delete")
	} else {
		err = s.cfg.Source.Delete(ctx, record.GetID())
	}
	if err != nil {
		s.fail(ctx, "delete", "Failed to delete "+s.cfg.Entity, err, zap.String("id", record.GetID()))
		return true, err
	}

	_ = s.Load(ctx)
	return true, nil
}

// Find returns the record with id. Records not on the current page are
// fetched with Source.Get when set, otherwise by walking the list pages.
func (s *Screen[T]) Find(ctx context.Context, id string) (*T, error) {
	st := s.State()
	if rec, ok := findIn(st.Items, id); ok {
		return rec, nil
	}
	if s.cfg.Source.Get != nil {
		rec, err := s.cfg.Source.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, fmt.Errorf("%s %s: %w", s.cfg.Entity, id, shared.ErrNotFound)
		}
		return rec, nil
	}

	q := st.Query
	for p := 1; ; p++ {
		q.Page = p
		page, err := s.cfg.Source.List(ctx, q)
		if err != nil {
			return nil, err
		}
		if page == nil {
			break
		}
		if rec, ok := findIn(page.Data, id); ok {
			return rec, nil
		}
		if p >= page.TotalPages || len(page.Data) == 0 {
			break
		}
	}
	return nil, fmt.Errorf("%s %s: %w", s.cfg.Entity, id, shared.ErrNotFound)
}

func findIn[T catalog.Entity](items []T, id string) (*T, bool) {
	for i := range items {
		if items[i].GetID() == id {
			rec := items[i]
			return &rec, true
		}
	}
	return nil, false
}

func (s *Screen[T]) unsupported(op string) error {
	return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("%s cannot be %sd from this screen", s.cfg.Plural, op))
}

func (s *Screen[T]) fail(ctx context.Context, op, message string, err error, fields ...zap.Field) {
	s.metrics.MutationFailed(s.cfg.Entity, op)
	logger.WithLogger(ctx, s.logger).Error(message, append(fields, zap.String("entity", s.cfg.Entity), zap.Error(err))...)
	if s.alert != nil {
		s.alert.Alert(ctx, message)
	}
}
