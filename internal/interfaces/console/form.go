package console

import (
	"errors"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/UmairZakria/gbs-dashboard2/internal/application/form"
)

type formAction int

const (
	formNone formAction = iota
	formSubmit
	formCancel
)

// formModel is the modal editor over a form.Form. While a submit is in
// flight the form belongs to the submitting command, so the view only reads
// the inputs and the cached error snapshot.
type formModel[T any] struct {
	form       *form.Form[T]
	keys       []string
	labels     []string
	inputs     []textinput.Model
	applied    []string
	focus      int
	errs       form.Errors
	submitting bool
	styles     Styles
}

func newFormModel[T any](f *form.Form[T], styles Styles) *formModel[T] {
	m := &formModel[T]{form: f, styles: styles, errs: form.Errors{}}
	for _, fld := range f.Fields() {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 1000
		in.Width = 48
		in.SetValue(f.Get(fld.Key))
		m.applied = append(m.applied, in.Value())
		switch {
		case len(fld.Options) > 0:
			in.Placeholder = strings.Join(fld.Options, " | ")
		case fld.IsList():
			in.Placeholder = "comma separated"
		}
		m.keys = append(m.keys, fld.Key)
		m.labels = append(m.labels, fld.Label)
		m.inputs = append(m.inputs, in)
	}
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
	return m
}

// apply copies the inputs that changed since the last apply into the form.
// Untouched inputs are left alone so attributes the text form does not carry
// survive an edit. Values
// that fail to parse are reported inline and block the submit.
func (m *formModel[T]) apply() bool {
	errs := form.Errors{}
	for i, key := range m.keys {
		raw := m.inputs[i].Value()
		if raw == m.applied[i] {
			continue
		}
		if err := m.form.Set(key, raw); err != nil {
			errs[key] = err.Error()
			continue
		}
		m.applied[i] = raw
	}
	m.errs = errs
	return len(errs) == 0
}

// finish records the outcome of a submit
func (m *formModel[T]) finish(err error) {
	m.submitting = false
	var verr *form.ValidationError
	if errors.As(err, &verr) {
		m.errs = maps.Clone(verr.Errors)
		return
	}
	m.errs = form.Errors{}
}

// generateSlug fills the slug input from the name input
func (m *formModel[T]) generateSlug() {
	m.apply()
	slug := m.form.GenerateSlug()
	for i, key := range m.keys {
		if key == "slug" {
			m.inputs[i].SetValue(slug)
		}
	}
}

func (m *formModel[T]) move(delta int) tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

func (m *formModel[T]) Update(msg tea.Msg) (formAction, tea.Cmd) {
	if m.submitting {
		return formNone, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return formCancel, nil
		case "ctrl+s":
			return formSubmit, nil
		case "ctrl+g":
			m.generateSlug()
			return formNone, nil
		case "tab", "down":
			return formNone, m.move(1)
		case "shift+tab", "up":
			return formNone, m.move(-1)
		case "enter":
			if m.focus == len(m.inputs)-1 {
				return formSubmit, nil
			}
			return formNone, m.move(1)
		}
	}
	if len(m.inputs) == 0 {
		return formNone, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return formNone, cmd
}

func (m *formModel[T]) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(m.form.Title()))
	sb.WriteString("\n\n")
	inline, rest := m.groupErrors()
	for i, in := range m.inputs {
		label := m.styles.Label.Render(m.labels[i])
		if i == m.focus {
			label = m.styles.Selected.Width(22).Render(m.labels[i])
		}
		sb.WriteString(label + in.View() + "\n")
		for _, msg := range inline[m.keys[i]] {
			sb.WriteString(strings.Repeat(" ", 22) + m.styles.Error.Render(msg) + "\n")
		}
	}
	sb.WriteString("\n")
	for _, msg := range rest {
		sb.WriteString(m.styles.Error.Render(msg) + "\n")
	}
	if m.submitting {
		sb.WriteString(m.styles.Muted.Render("Saving..."))
	} else {
		sb.WriteString(m.styles.Help.Render("tab next • shift+tab prev • ctrl+s save • ctrl+g slug • esc cancel"))
	}
	return m.styles.Modal.Render(sb.String())
}

// groupErrors assigns each message to the input it belongs to. Line errors
// such as "item-0-quantity" go to the list input ("items"); messages with no
// input are returned separately.
func (m *formModel[T]) groupErrors() (map[string][]string, []string) {
	inline := make(map[string][]string, len(m.errs))
	var rest []string
	for _, key := range slices.Sorted(maps.Keys(m.errs)) {
		msg := m.errs[key]
		target := key
		if !slices.Contains(m.keys, target) {
			target = lineParent(key)
		}
		if slices.Contains(m.keys, target) {
			if target != key {
				msg = lineLabel(key) + msg
			}
			inline[target] = append(inline[target], msg)
			continue
		}
		rest = append(rest, msg)
	}
	return inline, rest
}

// lineParent maps "<base>-<index>-<attr>" to "<base>s"
func lineParent(key string) string {
	parts := strings.SplitN(key, "-", 3)
	if len(parts) != 3 {
		return ""
	}
	if _, err := strconv.Atoi(parts[1]); err != nil {
		return ""
	}
	return parts[0] + "s"
}

// lineLabel prefixes a line error with its 1-based position
func lineLabel(key string) string {
	parts := strings.SplitN(key, "-", 3)
	n, _ := strconv.Atoi(parts[1])
	return "#" + strconv.Itoa(n+1) + ": "
}
