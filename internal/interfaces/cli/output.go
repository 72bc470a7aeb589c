package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/UmairZakria/gbs-dashboard2/internal/application/bulk"
	domain "github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
	"github.com/UmairZakria/gbs-dashboard2/internal/domain/shared"
	"github.com/UmairZakria/gbs-dashboard2/internal/interfaces/console"
)

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.IO.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *App) printTable(headers []string, rows [][]string) {
	fmt.Fprintln(a.IO.Out, console.RenderTable(console.DefaultStyles(), headers, rows))
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.IO.Out, format, args...)
}

// printStats renders a statistics payload as a key/value table
func (a *App) printStats(stats domain.Stats) error {
	if a.jsonOutput() {
		return a.printJSON(stats)
	}
	keys, values := console.FormatStats(stats)
	rows := make([][]string, len(keys))
	for i, k := range keys {
		rows[i] = []string{k, values[k]}
	}
	a.printTable([]string{"Statistic", "Value"}, rows)
	return nil
}

func (a *App) printReport(report *bulk.Report) error {
	if a.jsonOutput() {
		type row struct {
			Entity string `json:"entity"`
			Row    int    `json:"row"`
			ID     string `json:"id,omitempty"`
			Error  string `json:"error,omitempty"`
		}
		rows := make([]row, len(report.Results))
		for i, r := range report.Results {
			rows[i] = row{Entity: r.Entity, Row: r.Index + 1, ID: r.ID}
			if r.Err != nil {
				rows[i].Error = r.Message()
			}
		}
		return a.printJSON(rows)
	}

	rows := make([][]string, len(report.Results))
	for i, r := range report.Results {
		result := "created"
		if r.Err != nil {
			result = r.Message()
		}
		rows[i] = []string{r.Entity, fmt.Sprint(r.Index + 1), r.ID, result}
	}
	a.printTable([]string{"Entity", "Row", "ID", "Result"}, rows)
	a.printf("%d created, %d failed in %s\n", report.Created(), len(report.Failed()), report.Duration.Round(time.Millisecond))
	return nil
}

// parsePairs turns key=value arguments into a map. Later keys win.
func parsePairs(flag string, pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("--%s expects key=value, got %q", flag, p))
		}
		out[k] = v
	}
	return out, nil
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
