package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Line is one "ref x quantity @ price" entry of a line-item field
type Line struct {
	Ref      string
	Quantity int
	Price    decimal.Decimal
}

func (l Line) String() string {
	return fmt.Sprintf("%s x %d @ %s", l.Ref, l.Quantity, l.Price.String())
}

// FormatLines renders lines separated by "; "
func FormatLines(lines []Line) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.String()
	}
	return strings.Join(parts, "; ")
}

// ParseLines reads entries like "Notebook x 2 @ 45.50; Pencil x 10 @ 5".
// Quantity defaults to 1 and price to 0 when omitted.
func ParseLines(raw string) ([]Line, error) {
	var lines []Line
	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		line := Line{Quantity: 1, Price: decimal.Zero}

		if i := strings.LastIndex(entry, "@"); i >= 0 {
			price, err := parseMoney(entry[i+1:])
			if err != nil {
				return nil, err
			}
			line.Price = price
			entry = strings.TrimSpace(entry[:i])
		}
		if i := strings.LastIndex(entry, " x "); i >= 0 {
			qty, err := strconv.Atoi(strings.TrimSpace(entry[i+3:]))
			if err != nil {
				return nil, fmt.Errorf("quantity in %q is not a whole number", entry)
			}
			line.Quantity = qty
			entry = entry[:i]
		}
		line.Ref = strings.TrimSpace(entry)
		if line.Ref == "" {
			return nil, fmt.Errorf("line item is missing a name")
		}
		lines = append(lines, line)
	}
	return lines, nil
}
