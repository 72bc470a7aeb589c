// Package console is the interactive terminal front end: one bubbletea
// program per entity, drawing a list screen as a table with a modal form
// for create/edit and modal confirm/alert dialogs.
package console

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/UmairZakria/gbs-dashboard2/internal/application/listview"
	"github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
)

// Column renders one table column
type Column[T any] struct {
	Title string
	Width int
	Value func(T) string
}

type loadedMsg struct{ err error }

type savedMsg struct{ err error }

type deletedMsg struct {
	confirmed bool
	err       error
}

// Model is the bubbletea model for one entity screen
type Model[T catalog.Entity] struct {
	ctx     context.Context
	cancel  context.CancelFunc
	screen  *listview.Screen[T]
	dialogs *Dialogs
	columns []Column[T]
	styles  Styles

	table     table.Model
	search    textinput.Model
	searching bool
	form      *formModel[T]
	dialog    *DialogRequest
	state     listview.State[T]
	status    string
	width     int
	height    int
}

// New creates the model. dialogs must be the Confirmer/Alerter the screen
// was built with.
func New[T catalog.Entity](ctx context.Context, screen *listview.Screen[T], dialogs *Dialogs, columns []Column[T]) *Model[T] {
	ctx, cancel := context.WithCancel(ctx)

	cols := make([]table.Column, len(columns))
	width := 0
	for i, c := range columns {
		cols[i] = table.Column{Title: c.Title, Width: max(c.Width, len(c.Title))}
		width += cols[i].Width + 2
	}
	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(15),
		table.WithWidth(width),
	)

	search := textinput.New()
	search.Placeholder = "Search " + screen.Plural() + "..."
	search.CharLimit = 100
	search.Width = 40

	m := &Model[T]{
		ctx:     ctx,
		cancel:  cancel,
		screen:  screen,
		dialogs: dialogs,
		columns: columns,
		styles:  DefaultStyles(),
		table:   t,
		search:  search,
	}
	m.state = screen.State()
	m.state.Loading = true
	return m
}

// Run starts a full-screen program for model and blocks until it quits
func Run(ctx context.Context, model tea.Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(model, opts...).Run()
	return err
}

func (m *Model[T]) Init() tea.Cmd {
	return tea.Batch(m.load(), m.dialogs.wait(m.ctx))
}

func (m *Model[T]) load() tea.Cmd {
	return m.run(m.screen.Load)
}

// run executes a screen operation off the UI loop
func (m *Model[T]) run(op func(ctx context.Context) error) tea.Cmd {
	m.state.Loading = true
	ctx := m.ctx
	return func() tea.Msg {
		return loadedMsg{err: op(ctx)}
	}
}

func (m *Model[T]) refresh() {
	m.state = m.screen.State()
	rows := make([]table.Row, len(m.state.Items))
	for i, item := range m.state.Items {
		row := make(table.Row, len(m.columns))
		for j, c := range m.columns {
			row[j] = c.Value(item)
		}
		rows[i] = row
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (m *Model[T]) selected() (T, bool) {
	var zero T
	i := m.table.Cursor()
	if i < 0 || i >= len(m.state.Items) {
		return zero, false
	}
	return m.state.Items[i], true
}

func (m *Model[T]) quit() (tea.Model, tea.Cmd) {
	m.cancel()
	return m, tea.Quit
}

func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetWidth(max(msg.Width-4, 20))
		m.table.SetHeight(max(msg.Height-10, 5))
		return m, nil

	case *DialogRequest:
		m.dialog = msg
		return m, nil

	case loadedMsg:
		m.refresh()
		return m, nil

	case savedMsg:
		if m.form != nil {
			m.form.finish(msg.err)
			if msg.err == nil {
				m.form = nil
				m.status = "Saved"
			}
		}
		m.refresh()
		return m, nil

	case deletedMsg:
		m.refresh()
		if msg.confirmed && msg.err == nil {
			m.status = "Deleted"
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	switch {
	case m.form != nil:
		_, cmd = m.form.Update(msg)
	case m.searching:
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

func (m *Model[T]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.dialog != nil {
		return m.handleDialogKey(msg)
	}

	if m.form != nil {
		return m.handleFormKey(msg)
	}

	if m.searching {
		switch msg.String() {
		case "enter":
			m.searching = false
			m.search.Blur()
			term := strings.TrimSpace(m.search.Value())
			return m, m.run(func(ctx context.Context) error { return m.screen.SetSearch(ctx, term) })
		case "esc":
			m.searching = false
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	m.status = ""
	switch msg.String() {
	case "q":
		return m.quit()
	case "r":
		return m, m.run(m.screen.Retry)
	case "left", "h", "pgup":
		return m, m.run(m.screen.PrevPage)
	case "right", "l", "pgdown":
		return m, m.run(m.screen.NextPage)
	case "/":
		m.searching = true
		return m, m.search.Focus()
	case "n":
		if !m.screen.CanCreate() {
			return m, nil
		}
		m.form = newFormModel(m.screen.New(), m.styles)
		return m, textinput.Blink
	case "e", "enter":
		rec, ok := m.selected()
		if !ok || !m.screen.CanEdit() {
			return m, nil
		}
		m.form = newFormModel(m.screen.Edit(rec), m.styles)
		return m, textinput.Blink
	case "d", "delete":
		rec, ok := m.selected()
		if !ok || !m.screen.CanDelete() {
			return m, nil
		}
		ctx := m.ctx
		return m, func() tea.Msg {
			confirmed, err := m.screen.Delete(ctx, rec)
			return deletedMsg{confirmed: confirmed, err: err}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model[T]) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	req := m.dialog
	if req.Confirm {
		switch msg.String() {
		case "y", "Y":
			req.Answer(true)
		case "n", "N", "esc":
			req.Answer(false)
		default:
			return m, nil
		}
	} else {
		switch msg.String() {
		case "enter", "esc", " ":
		default:
			return m, nil
		}
	}
	m.dialog = nil
	return m, m.dialogs.wait(m.ctx)
}

func (m *Model[T]) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, cmd := m.form.Update(msg)
	switch action {
	case formCancel:
		m.form = nil
		return m, nil
	case formSubmit:
		if !m.form.apply() {
			return m, nil
		}
		m.form.submitting = true
		f, ctx := m.form.form, m.ctx
		return m, func() tea.Msg {
			return savedMsg{err: f.Submit(ctx)}
		}
	}
	return m, cmd
}

func (m *Model[T]) View() string {
	var body string
	switch {
	case m.dialog != nil:
		body = m.dialogView()
	case m.form != nil:
		body = m.form.View()
	default:
		body = m.listView()
	}
	if m.width > 0 && m.height > 0 && (m.dialog != nil || m.form != nil) {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return body
}

func (m *Model[T]) dialogView() string {
	hint := "enter to dismiss"
	style := m.styles.Dialog
	if m.dialog.Confirm {
		hint = "y yes • n no"
	} else {
		style = style.BorderForeground(Destructive)
	}
	return style.Render(m.dialog.Message + "\n\n" + m.styles.Help.Render(hint))
}

func (m *Model[T]) listView() string {
	var sb strings.Builder
	title := strings.ToUpper(m.screen.Plural()[:1]) + m.screen.Plural()[1:]
	sb.WriteString(m.styles.Title.Render(title))
	sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("  page %d of %d • %d total", m.state.Page, m.state.TotalPages, m.state.Total)))
	sb.WriteString("\n")

	if len(m.state.Stats) > 0 {
		keys, values := FormatStats(m.state.Stats)
		sb.WriteString(RenderStats(m.styles, keys, values))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if m.searching || m.state.Query.Search != "" {
		if m.searching {
			sb.WriteString("/ " + m.search.View())
		} else {
			sb.WriteString(m.styles.Muted.Render("search: " + m.state.Query.Search))
		}
		sb.WriteString("\n\n")
	}

	switch {
	case m.state.Error != "":
		sb.WriteString(m.styles.Error.Render(m.state.Error))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Help.Render("press r to retry"))
		sb.WriteString("\n")
	case m.state.Loading && len(m.state.Items) == 0:
		sb.WriteString(m.styles.Muted.Render("Loading..."))
		sb.WriteString("\n")
	case len(m.state.Items) == 0:
		sb.WriteString(m.styles.Muted.Render("No " + m.screen.Plural() + " found"))
		sb.WriteString("\n")
	default:
		sb.WriteString(m.table.View())
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	if m.status != "" {
		sb.WriteString(m.styles.Success.Render(m.status) + "  ")
	}
	sb.WriteString(m.styles.Help.Render(m.help()))
	return sb.String()
}

func (m *Model[T]) help() string {
	parts := []string{"↑/↓ move", "←/→ page", "/ search", "r reload"}
	if m.screen.CanCreate() {
		parts = append(parts, "n new")
	}
	if m.screen.CanEdit() {
		parts = append(parts, "e edit")
	}
	if m.screen.CanDelete() {
		parts = append(parts, "d delete")
	}
	return strings.Join(append(parts, "q quit"), " • ")
}

// FormatStats flattens a statistics payload into sorted keys and text
// values. Nested objects contribute dotted keys.
func FormatStats(stats catalog.Stats) ([]string, map[string]string) {
	values := map[string]string{}
	flattenStats("", stats, values)
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, values
}

func flattenStats(prefix string, in map[string]any, out map[string]string) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch x := v.(type) {
		case map[string]any:
			flattenStats(key, x, out)
		case float64:
			out[key] = strconv.FormatFloat(x, 'f', -1, 64)
		case nil:
			out[key] = "-"
		default:
			out[key] = fmt.Sprint(x)
		}
	}
}
