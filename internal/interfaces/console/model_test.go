package console

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/UmairZakria/gbs-dashboard2/internal/application/form"
	"github.com/UmairZakria/gbs-dashboard2/internal/application/listview"
	"github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
	"github.com/UmairZakria/gbs-dashboard2/internal/infrastructure/httpclient"
)

type memAuthors struct {
	mu      sync.Mutex
	items   []catalog.Author
	saveErr error
	deletes int
	search  string
}

func (s *memAuthors) source() listview.Source[catalog.Author] {
	return listview.Source[catalog.Author]{
		List: func(ctx context.Context, q listview.Query) (*catalog.Page[catalog.Author], error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.search = q.Search
			total := len(s.items)
			start := min((q.Page-1)*q.Limit, total)
			end := min(start+q.Limit, total)
			return &catalog.Page[catalog.Author]{
				Data:       append([]catalog.Author(nil), s.items[start:end]...),
				Page:       q.Page,
				Total:      total,
				TotalPages: max((total+q.Limit-1)/q.Limit, 1),
			}, nil
		},
		Stats: func(ctx context.Context) (catalog.Stats, error) {
			return catalog.Stats{"total": float64(len(s.items)), "byStatus": map[string]any{"active": 2.0}}, nil
		},
		Create: func(ctx context.Context, a catalog.Author) (*catalog.Author, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.saveErr != nil {
				return nil, s.saveErr
			}
			a.ID = "a" + strconv.Itoa(len(s.items)+1)
			s.items = append(s.items, a)
			return &a, nil
		},
		Update: func(ctx context.Context, id string, a catalog.Author) (*catalog.Author, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i := range s.items {
				if s.items[i].ID == id {
					a.ID = id
					s.items[i] = a
				}
			}
			return &a, nil
		},
		Delete: func(ctx context.Context, id string) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.deletes++
			for i := range s.items {
				if s.items[i].ID == id {
					s.items = append(s.items[:i], s.items[i+1:]...)
					break
				}
			}
			return nil
		},
	}
}

var authorColumns = []Column[catalog.Author]{
	{Title: "ID", Width: 6, Value: func(a catalog.Author) string { return a.ID }},
	{Title: "Name", Width: 20, Value: func(a catalog.Author) string { return a.Name }},
}

func newTestModel(t *testing.T, n int) (*Model[catalog.Author], *memAuthors) {
	t.Helper()
	store := &memAuthors{}
	for i := 1; i <= n; i++ {
		store.items = append(store.items, catalog.Author{ID: fmt.Sprintf("a%d", i), Name: fmt.Sprintf("Author %d", i)})
	}
	dialogs := NewDialogs()
	screen := listview.NewScreen(listview.Config[catalog.Author]{
		Entity:   "author",
		PageSize: 2,
		Source:   store.source(),
		NewForm:  form.NewAuthorForm,
	}, dialogs, dialogs, listview.WithLogger[catalog.Author](zaptest.NewLogger(t)))

	m := New(context.Background(), screen, dialogs, authorColumns)
	t.Cleanup(m.cancel)
	update(t, m, m.load()())
	return m, store
}

func update(t *testing.T, m *Model[catalog.Author], msg tea.Msg) tea.Cmd {
	t.Helper()
	_, cmd := m.Update(msg)
	return cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// nextDialog waits for the next confirm/alert the screen raises
func nextDialog(t *testing.T, m *Model[catalog.Author]) *DialogRequest {
	t.Helper()
	msg := m.dialogs.wait(m.ctx)()
	req, ok := msg.(*DialogRequest)
	require.True(t, ok)
	return req
}

func TestModel_LoadRendersTable(t *testing.T) {
	m, _ := newTestModel(t, 3)

	view := m.View()
	assert.Contains(t, view, "Authors")
	assert.Contains(t, view, "page 1 of 2")
	assert.Contains(t, view, "Author 1")
	assert.Contains(t, view, "byStatus.active:")
	assert.NotContains(t, view, "Author 3")
}

func TestModel_Pagination(t *testing.T) {
	m, _ := newTestModel(t, 3)

	cmd := update(t, m, key("right"))
	require.NotNil(t, cmd)
	update(t, m, cmd())
	assert.Equal(t, 2, m.state.Page)
	assert.Contains(t, m.View(), "Author 3")

	// already on the last page
	update(t, m, update(t, m, key("right"))())
	assert.Equal(t, 2, m.state.Page)

	update(t, m, update(t, m, key("left"))())
	assert.Equal(t, 1, m.state.Page)
}

func TestModel_CreateThroughForm(t *testing.T) {
	m, store := newTestModel(t, 1)

	update(t, m, key("n"))
	require.NotNil(t, m.form)
	assert.Contains(t, m.View(), "New author")

	update(t, m, key("Jane Austen"))
	cmd := update(t, m, key("ctrl+s"))
	require.NotNil(t, cmd)
	assert.True(t, m.form.submitting)

	update(t, m, cmd())
	assert.Nil(t, m.form)
	assert.Equal(t, "Saved", m.status)

	store.mu.Lock()
	defer store.mu.Unlock()
	require.Len(t, store.items, 2)
	assert.Equal(t, "Jane Austen", store.items[1].Name)
}

func TestModel_FormValidation(t *testing.T) {
	m, store := newTestModel(t, 1)

	update(t, m, key("n"))
	cmd := update(t, m, key("ctrl+s"))
	update(t, m, cmd())

	require.NotNil(t, m.form)
	assert.Equal(t, "Author name is required", m.form.errs["name"])
	assert.Contains(t, m.View(), "Author name is required")
	assert.Len(t, store.items, 1)

	update(t, m, key("esc"))
	assert.Nil(t, m.form)
}

func TestModel_SaveFailureAlerts(t *testing.T) {
	m, store := newTestModel(t, 1)
	store.saveErr = &httpclient.APIError{StatusCode: http.StatusConflict, Message: "duplicate"}

	update(t, m, key("n"))
	update(t, m, key("Jane"))
	update(t, m, update(t, m, key("ctrl+s"))())

	require.NotNil(t, m.form, "form stays open after a failed save")
	req := nextDialog(t, m)
	assert.False(t, req.Confirm)
	assert.Equal(t, "Failed to save author", req.Message)

	update(t, m, req)
	assert.Contains(t, m.View(), "Failed to save author")
	update(t, m, key("enter"))
	assert.Nil(t, m.dialog)
	assert.NotNil(t, m.form)
}

func TestModel_DeleteConfirmed(t *testing.T) {
	m, store := newTestModel(t, 2)

	cmd := update(t, m, key("d"))
	require.NotNil(t, cmd)

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	req := nextDialog(t, m)
	assert.True(t, req.Confirm)
	assert.Equal(t, "Are you sure you want to delete this author?", req.Message)
	update(t, m, req)
	assert.Contains(t, m.View(), "Are you sure")

	update(t, m, key("y"))
	update(t, m, <-done)

	assert.Equal(t, "Deleted", m.status)
	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Equal(t, 1, store.deletes)
	require.Len(t, store.items, 1)
	assert.Equal(t, "a2", store.items[0].ID)
}

func TestModel_DeleteDeclined(t *testing.T) {
	m, store := newTestModel(t, 2)

	cmd := update(t, m, key("d"))
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	update(t, m, nextDialog(t, m))
	update(t, m, key("n"))
	msg := <-done
	update(t, m, msg)

	assert.False(t, msg.(deletedMsg).confirmed)
	assert.Empty(t, m.status)
	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Zero(t, store.deletes)
}

func TestModel_Search(t *testing.T) {
	m, store := newTestModel(t, 2)

	update(t, m, key("/"))
	assert.True(t, m.searching)
	update(t, m, key("jane"))
	cmd := update(t, m, key("enter"))
	require.NotNil(t, cmd)
	update(t, m, cmd())

	assert.False(t, m.searching)
	assert.Contains(t, m.View(), "search: jane")
	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Equal(t, "jane", store.search)
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t, 1)
	cmd := update(t, m, key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Error(t, m.ctx.Err())
}

func TestDialogs_CancelledContext(t *testing.T) {
	d := NewDialogs()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, d.Confirm(ctx, "sure?"))
}

func TestFormatStats(t *testing.T) {
	keys, values := FormatStats(catalog.Stats{
		"total":    float64(12),
		"value":    1234.5,
		"byType":   map[string]any{"digital": float64(3)},
		"lastSeen": nil,
	})
	assert.Equal(t, []string{"byType.digital", "lastSeen", "total", "value"}, keys)
	assert.Equal(t, "12", values["total"])
	assert.Equal(t, "1234.5", values["value"])
	assert.Equal(t, "3", values["byType.digital"])
	assert.Equal(t, "-", values["lastSeen"])
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(DefaultStyles(), []string{"ID", "Name"}, [][]string{{"a1", "Jane"}, {"a2"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Name")
	assert.Contains(t, lines[2], "Jane")
	assert.Contains(t, lines[3], "a2")
}
