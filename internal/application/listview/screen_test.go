package listview

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/UmairZakria/gbs-dashboard2/internal/application/form"
	"github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
	"github.com/UmairZakria/gbs-dashboard2/internal/domain/shared"
	"github.com/UmairZakria/gbs-dashboard2/internal/infrastructure/httpclient"
	"github.com/UmairZakria/gbs-dashboard2/internal/infrastructure/telemetry"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// authorStore is an in-memory backend for author screens
type authorStore struct {
	mu       sync.Mutex
	authors  []catalog.Author
	listErr  error
	saveErr  error
	delErr   error
	lists    atomic.Int32
	deletes  atomic.Int32
	lastList Query
}

func newAuthorStore(n int) *authorStore {
	s := &authorStore{}
	for i := 1; i <= n; i++ {
		s.authors = append(s.authors, catalog.Author{ID: fmt.Sprintf("a%d", i), Name: fmt.Sprintf("Author %d", i), IsActive: true})
	}
	return s
}

func (s *authorStore) source() Source[catalog.Author] {
	return Source[catalog.Author]{
		List: func(ctx context.Context, q Query) (*catalog.Page[catalog.Author], error) {
			s.lists.Add(1)
			s.mu.Lock()
			defer s.mu.Unlock()
			s.lastList = q
			if s.listErr != nil {
				return nil, s.listErr
			}
			total := len(s.authors)
			pages := max((total+q.Limit-1)/q.Limit, 1)
			start := min((q.Page-1)*q.Limit, total)
			end := min(start+q.Limit, total)
			return &catalog.Page[catalog.Author]{
				Data:       append([]catalog.Author(nil), s.authors[start:end]...),
				Page:       q.Page,
				Limit:      q.Limit,
				Total:      total,
				TotalPages: pages,
			}, nil
		},
		Stats: func(ctx context.Context) (catalog.Stats, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			return catalog.Stats{"total": len(s.authors)}, nil
		},
		Create: func(ctx context.Context, a catalog.Author) (*catalog.Author, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.saveErr != nil {
				return nil, s.saveErr
			}
			a.ID = fmt.Sprintf("a%d", len(s.authors)+1)
			s.authors = append(s.authors, a)
			return &a, nil
		},
		Update: func(ctx context.Context, id string, a catalog.Author) (*catalog.Author, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.saveErr != nil {
				return nil, s.saveErr
			}
			for i := range s.authors {
				if s.authors[i].ID == id {
					a.ID = id
					s.authors[i] = a
					return &a, nil
				}
			}
			return nil, &httpclient.APIError{StatusCode: http.StatusNotFound, Message: "Author not found"}
		},
		Delete: func(ctx context.Context, id string) error {
			s.deletes.Add(1)
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.delErr != nil {
				return s.delErr
			}
			for i := range s.authors {
				if s.authors[i].ID == id {
					s.authors = append(s.authors[:i], s.authors[i+1:]...)
					return nil
				}
			}
			return nil
		},
	}
}

type dialogs struct {
	answer   bool
	confirms []string
	alerts   []string
}

func (d *dialogs) Confirm(ctx context.Context, message string) bool {
	d.confirms = append(d.confirms, message)
	return d.answer
}

func (d *dialogs) Alert(ctx context.Context, message string) {
	d.alerts = append(d.alerts, message)
}

func newAuthorScreen(t *testing.T, store *authorStore, d *dialogs, opts ...Option[catalog.Author]) *Screen[catalog.Author] {
	t.Helper()
	opts = append(opts, WithLogger[catalog.Author](zaptest.NewLogger(t)))
	return NewScreen(Config[catalog.Author]{
		Entity:   "author",
		PageSize: 2,
		Source:   store.source(),
		NewForm:  form.NewAuthorForm,
	}, d, d, opts...)
}

func TestScreen_Load(t *testing.T) {
	store := newAuthorStore(5)
	s := newAuthorScreen(t, store, &dialogs{})

	require.NoError(t, s.Load(context.Background()))

	st := s.State()
	assert.False(t, st.Loading)
	assert.Empty(t, st.Error)
	assert.Len(t, st.Items, 2)
	assert.Equal(t, 1, st.Page)
	assert.Equal(t, 3, st.TotalPages)
	assert.Equal(t, 5, st.Total)
	assert.Equal(t, 5, st.Stats["total"])
}

func TestScreen_LoadFailure(t *testing.T) {
	t.Run("fallback message", func(t *testing.T) {
		store := newAuthorStore(1)
		store.listErr = errors.New("connection refused")
		s := newAuthorScreen(t, store, &dialogs{})

		require.Error(t, s.Load(context.Background()))
		st := s.State()
		assert.Equal(t, "Failed to load authors", st.Error)
		assert.False(t, st.Loading)

		store.listErr = nil
		require.NoError(t, s.Retry(context.Background()))
		assert.Empty(t, s.State().Error)
		assert.Len(t, s.State().Items, 1)
	})

	t.Run("backend message wins", func(t *testing.T) {
		store := newAuthorStore(1)
		store.listErr = &httpclient.APIError{StatusCode: http.StatusInternalServerError, Message: "Database unavailable"}
		s := newAuthorScreen(t, store, &dialogs{})

		require.Error(t, s.Load(context.Background()))
		assert.Equal(t, "Database unavailable", s.State().Error)
	})

	t.Run("custom plural", func(t *testing.T) {
		store := newAuthorStore(1)
		store.listErr = errors.New("boom")
		s := NewScreen(Config[catalog.Author]{
			Entity: "book series",
			Plural: "book series",
			Source: store.source(),
		}, nil, nil)

		require.Error(t, s.Load(context.Background()))
		assert.Equal(t, "Failed to load book series", s.State().Error)
	})
}

func TestScreen_PaginationClamps(t *testing.T) {
	store := newAuthorStore(5)
	s := newAuthorScreen(t, store, &dialogs{})
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))

	require.NoError(t, s.SetPage(ctx, 99))
	assert.Equal(t, 3, s.State().Page)
	assert.Len(t, s.State().Items, 1)

	loads := store.lists.Load()
	require.NoError(t, s.NextPage(ctx))
	assert.Equal(t, 3, s.State().Page)
	assert.Equal(t, loads, store.lists.Load(), "next on the last page must not refetch")

	require.NoError(t, s.SetPage(ctx, -4))
	assert.Equal(t, 1, s.State().Page)

	loads = store.lists.Load()
	require.NoError(t, s.PrevPage(ctx))
	assert.Equal(t, 1, s.State().Page)
	assert.Equal(t, loads, store.lists.Load())

	require.NoError(t, s.NextPage(ctx))
	assert.Equal(t, 2, s.State().Page)
}

func TestScreen_FilterAndSearchResetPage(t *testing.T) {
	store := newAuthorStore(5)
	s := newAuthorScreen(t, store, &dialogs{})
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))
	require.NoError(t, s.SetPage(ctx, 2))

	require.NoError(t, s.SetFilter(ctx, "isActive", "true"))
	assert.Equal(t, 1, s.State().Page)
	assert.Equal(t, map[string]string{"isActive": "true"}, store.lastList.Filters)

	require.NoError(t, s.SetPage(ctx, 3))
	require.NoError(t, s.SetSearch(ctx, "tolkien"))
	assert.Equal(t, 1, s.State().Page)
	assert.Equal(t, "tolkien", store.lastList.Search)

	require.NoError(t, s.SetFilter(ctx, "isActive", ""))
	assert.Empty(t, store.lastList.Filters)
}

func TestScreen_Delete(t *testing.T) {
	t.Run("confirmed deletes once and refetches", func(t *testing.T) {
		store := newAuthorStore(3)
		d := &dialogs{answer: true}
		s := newAuthorScreen(t, store, d)
		ctx := context.Background()
		require.NoError(t, s.Load(ctx))
		loads := store.lists.Load()

		confirmed, err := s.Delete(ctx, s.State().Items[0])
		require.NoError(t, err)
		assert.True(t, confirmed)
		assert.Equal(t, int32(1), store.deletes.Load())
		assert.Equal(t, loads+1, store.lists.Load())
		assert.Equal(t, []string{"Are you sure you want to delete this author?"}, d.confirms)
		assert.Equal(t, 2, s.State().Total)
		assert.Equal(t, "a2", s.State().Items[0].ID)
	})

	t.Run("declined does nothing", func(t *testing.T) {
		store := newAuthorStore(3)
		s := newAuthorScreen(t, store, &dialogs{answer: false})
		require.NoError(t, s.Load(context.Background()))

		confirmed, err := s.Delete(context.Background(), s.State().Items[0])
		require.NoError(t, err)
		assert.False(t, confirmed)
		assert.Zero(t, store.deletes.Load())
	})

	t.Run("failure alerts and keeps list", func(t *testing.T) {
		store := newAuthorStore(3)
		store.delErr = errors.New("boom")
		d := &dialogs{answer: true}
		metrics := telemetry.NewClientMetrics()
		s := newAuthorScreen(t, store, d, WithMetrics[catalog.Author](metrics))
		require.NoError(t, s.Load(context.Background()))
		before := s.State()

		confirmed, err := s.Delete(context.Background(), before.Items[0])
		assert.True(t, confirmed)
		require.Error(t, err)
		assert.Equal(t, []string{"Failed to delete author"}, d.alerts)
		assert.Equal(t, before.Items, s.State().Items)
		assert.Equal(t, int32(1), store.deletes.Load())

		count, gerr := testutil.GatherAndCount(metrics.Registry(), "catalog_admin_mutation_failures_total")
		require.NoError(t, gerr)
		assert.Equal(t, 1, count)
	})
}

func TestScreen_Save(t *testing.T) {
	t.Run("create through form", func(t *testing.T) {
		store := newAuthorStore(1)
		s := newAuthorScreen(t, store, &dialogs{})
		ctx := context.Background()
		require.NoError(t, s.Load(ctx))

		f := s.New()
		assert.Equal(t, form.ModeCreate, f.Mode())
		require.NoError(t, f.Set("name", "Octavia Butler"))
		require.NoError(t, f.Submit(ctx))

		assert.Equal(t, 2, s.State().Total)
	})

	t.Run("edit through form", func(t *testing.T) {
		store := newAuthorStore(2)
		s := newAuthorScreen(t, store, &dialogs{})
		ctx := context.Background()
		require.NoError(t, s.Load(ctx))

		f := s.Edit(s.State().Items[1])
		assert.Equal(t, "Author 2", f.Value.Name)
		require.NoError(t, f.Set("name", "Renamed"))
		require.NoError(t, f.Submit(ctx))

		assert.Equal(t, "Renamed", s.State().Items[1].Name)
	})

	t.Run("failure alerts and returns error", func(t *testing.T) {
		store := newAuthorStore(1)
		store.saveErr = errors.New("boom")
		d := &dialogs{}
		s := newAuthorScreen(t, store, d)

		f := s.New()
		require.NoError(t, f.Set("name", "Someone"))
		require.Error(t, f.Submit(context.Background()))
		assert.Equal(t, []string{"Failed to save author"}, d.alerts)
	})

	t.Run("invalid form is not sent", func(t *testing.T) {
		store := newAuthorStore(1)
		d := &dialogs{}
		s := newAuthorScreen(t, store, d)

		err := s.New().Submit(context.Background())
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
		assert.Empty(t, d.alerts)
		assert.Len(t, store.authors, 1)
	})

	t.Run("missing operation", func(t *testing.T) {
		store := newAuthorStore(1)
		src := store.source()
		src.Create = nil
		d := &dialogs{}
		s := NewScreen(Config[catalog.Author]{Entity: "author", Source: src, NewForm: form.NewAuthorForm}, d, d)

		err := s.Save(context.Background(), form.ModeCreate, "", catalog.Author{Name: "X"})
		assert.ErrorIs(t, err, shared.ErrInvalidState)
		assert.Equal(t, []string{"Failed to save author"}, d.alerts)
	})
}

func TestScreen_Find(t *testing.T) {
	store := newAuthorStore(5)
	s := newAuthorScreen(t, store, &dialogs{})
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))

	got, err := s.Find(ctx, "a5")
	require.NoError(t, err)
	assert.Equal(t, "Author 5", got.Name)

	_, err = s.Find(ctx, "missing")
	assert.True(t, shared.IsNotFound(err))
}

func TestScreen_FindUsesGet(t *testing.T) {
	store := newAuthorStore(5)
	src := store.source()
	var gets []string
	src.Get = func(ctx context.Context, id string) (*catalog.Author, error) {
		gets = append(gets, id)
		if id == "a5" {
			return &catalog.Author{ID: id, Name: "Author 5"}, nil
		}
		return nil, shared.ErrNotFound
	}
	s := NewScreen(Config[catalog.Author]{Entity: "author", PageSize: 2, Source: src}, &dialogs{}, &dialogs{},
		WithLogger[catalog.Author](zaptest.NewLogger(t)))
	ctx := context.Background()

	got, err := s.Find(ctx, "a5")
	require.NoError(t, err)
	assert.Equal(t, "Author 5", got.Name)
	assert.Zero(t, store.lists.Load())

	_, err = s.Find(ctx, "missing")
	assert.True(t, shared.IsNotFound(err))
	assert.Equal(t, []string{"a5", "missing"}, gets)
}

func TestScreen_ConcurrentUse(t *testing.T) {
	store := newAuthorStore(10)
	s := newAuthorScreen(t, store, &dialogs{})
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.SetPage(ctx, i%3+1)
			_ = s.State()
		}(i)
	}
	wg.Wait()

	st := s.State()
	assert.False(t, st.Loading)
	assert.GreaterOrEqual(t, st.Page, 1)
	assert.LessOrEqual(t, st.Page, st.TotalPages)
}

func TestScreen_WithQuery(t *testing.T) {
	store := newAuthorStore(5)
	s := newAuthorScreen(t, store, &dialogs{}, WithQuery[catalog.Author](Query{
		Page:    3,
		Search:  "Author",
		Filters: map[string]string{"isActive": "true"},
	}))

	require.NoError(t, s.Load(context.Background()))

	st := s.State()
	assert.Equal(t, 3, st.Page)
	require.Len(t, st.Items, 1)
	assert.Equal(t, "a5", st.Items[0].ID)

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Equal(t, 2, store.lastList.Limit)
	assert.Equal(t, "Author", store.lastList.Search)
	assert.Equal(t, "true", store.lastList.Filters["isActive"])
}

func TestScreen_Capabilities(t *testing.T) {
	store := newAuthorStore(1)
	s := newAuthorScreen(t, store, &dialogs{})
	assert.True(t, s.HasStats())
	assert.True(t, s.CanCreate())
	assert.True(t, s.CanEdit())
	assert.True(t, s.CanDelete())

	readOnly := NewScreen(Config[catalog.Author]{
		Entity: "author",
		Source: Source[catalog.Author]{List: store.source().List},
	}, nil, nil)
	assert.False(t, readOnly.HasStats())
	assert.False(t, readOnly.CanCreate())
	assert.False(t, readOnly.CanEdit())
	assert.False(t, readOnly.CanDelete())
}
