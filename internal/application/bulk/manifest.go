// Package bulk creates catalog records listed in a YAML manifest. Every row
// goes through the entity's form, so the same validation and defaults apply
// as in the interactive dialogs.
package bulk

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrManifestNotFound is returned when the manifest file does not exist
var ErrManifestNotFound = errors.New("manifest not found")

// File is an import manifest.
//
//	version: "1"
//	batches:
//	  - entity: authors
//	    rows:
//	      - name: Jane Austen
//	        genres: [romance, satire]
type File struct {
	Version string  `yaml:"version,omitempty"`
	Batches []Batch `yaml:"batches"`
}

// Batch is a run of rows for one entity. Batches are imported in file order.
type Batch struct {
	Entity string `yaml:"entity"`
	Rows   []Row  `yaml:"rows"`
}

// Row maps form field keys to YAML values
type Row map[string]any

// LoadFile reads and validates a manifest
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a manifest
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks the manifest structure, not the rows
func (f *File) Validate() error {
	if len(f.Batches) == 0 {
		return errors.New("manifest has no batches")
	}
	for i, b := range f.Batches {
		if strings.TrimSpace(b.Entity) == "" {
			return fmt.Errorf("batch[%d]: entity is required", i)
		}
	}
	return nil
}

// Rows counts the rows across all batches
func (f *File) Rows() int {
	n := 0
	for _, b := range f.Batches {
		n += len(b.Rows)
	}
	return n
}

// Fields flattens the row into raw text values keyed by form field. Nested
// maps (an address block, say) contribute their keys directly. isList tells
// whether a key is a comma separated list field; other sequences are joined
// with "; " as line items are.
func (r Row) Fields(isList func(key string) bool) (map[string]string, error) {
	out := make(map[string]string, len(r))
	for k, v := range r {
		if nested, ok := v.(map[string]any); ok {
			inner, err := Row(nested).Fields(isList)
			if err != nil {
				return nil, fmt.Errorf("%s.%w", k, err)
			}
			for ik, iv := range inner {
				out[ik] = iv
			}
			continue
		}
		raw, err := rawValue(v, isList(k))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		out[k] = raw
	}
	return out, nil
}

// Keys returns the row's keys in sorted order
func (r Row) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func rawValue(v any, list bool) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case []any:
		parts := make([]string, 0, len(x))
		for _, item := range x {
			s, err := scalar(item)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		sep := "; "
		if list {
			sep = ", "
		}
		return strings.Join(parts, sep), nil
	default:
		return scalar(v)
	}
}

func scalar(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("unsupported value %v", v)
	}
}
