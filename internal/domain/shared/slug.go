package shared

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugInvalid    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace = regexp.MustCompile(`\s+`)
)

// Slugify turns a display name into a URL slug. Accents are folded
// ("Émile" -> "emile"), anything outside a-z, 0-9, whitespace and '-' is
// dropped, and whitespace runs become a single '-'.
func Slugify(name string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		folded = name
	}
	s := strings.ToLower(folded)
	s = slugInvalid.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	return slugWhitespace.ReplaceAllString(s, "-")
}
