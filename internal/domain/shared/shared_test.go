package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Harry Potter", "harry-potter"},
		{"  The   Lord of the Rings  ", "the-lord-of-the-rings"},
		{"Émile Zola", "emile-zola"},
		{"C++ & Go: 2nd Ed.", "c-go-2nd-ed"},
		{"already-slugged", "already-slugged"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestDomainError(t *testing.T) {
	err := fmt.Errorf("find supplier: %w", NewDomainError("NOT_FOUND", "supplier s1 not found"))

	assert.True(t, IsNotFound(err))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, "find supplier: supplier s1 not found", err.Error())
}
