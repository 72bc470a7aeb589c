package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	Primary     = lipgloss.Color("#2563EB")
	Border      = lipgloss.Color("#D1D5DB")
	MutedColor  = lipgloss.Color("#6B7280")
	Destructive = lipgloss.Color("#DC2626")
	Success     = lipgloss.Color("#16A34A")
	Warning     = lipgloss.Color("#D97706")
)

// Styles holds the lipgloss styles shared by the console and CLI output
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Label    lipgloss.Style
	Selected lipgloss.Style
	Modal    lipgloss.Style
	Dialog   lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the default style set
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(Primary),
		Header:   lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Cell:     lipgloss.NewStyle().Padding(0, 1),
		Muted:    lipgloss.NewStyle().Foreground(MutedColor),
		Error:    lipgloss.NewStyle().Foreground(Destructive),
		Success:  lipgloss.NewStyle().Foreground(Success),
		Label:    lipgloss.NewStyle().Bold(true).Width(22),
		Selected: lipgloss.NewStyle().Foreground(Primary).Bold(true),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Warning).
			Padding(1, 2),
		Help: lipgloss.NewStyle().Foreground(MutedColor).Italic(true),
	}
}

// RenderTable lays rows out under headers with columns sized to fit
func RenderTable(styles Styles, headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	// room for the cell padding
	for i := range widths {
		widths[i] += 2
	}

	sep := styles.Muted.Render("│")
	var sb strings.Builder
	for i, h := range headers {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(styles.Header.Width(widths[i]).Render(h))
	}
	sb.WriteString("\n")

	total := len(widths) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(styles.Muted.Render(strings.Repeat("─", max(total, 0))))
	sb.WriteString("\n")

	for _, row := range rows {
		for i := range headers {
			if i > 0 {
				sb.WriteString(sep)
			}
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			sb.WriteString(styles.Cell.Width(widths[i]).Render(cell))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderStats renders a statistics map as "key: value" pairs on one line
func RenderStats(styles Styles, keys []string, values map[string]string) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, styles.Muted.Render(k+":")+" "+values[k])
	}
	return strings.Join(parts, "   ")
}
