package filepaths_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.wellcurve.dev/las/internal/filepaths"
)

func TestNewPattern(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		pattern string
		err     error
	}{
		"simple wildcard": {
			pattern: "*.las",
		},
		"double star": {
			pattern: "**/*.las",
		},
		"question mark": {
			pattern: "well?.las",
		},
		"bracket range": {
			pattern: "well[0-9].las",
		},
		"exact match": {
			pattern: "field-a.las",
		},
		"empty pattern": {
			pattern: "",
		},
		"invalid bracket": {
			pattern: "[",
			err:     filepaths.ErrInvalidPattern,
		},
		"unclosed bracket": {
			pattern: "[abc",
			err:     filepaths.ErrInvalidPattern,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p, err := filepaths.NewPattern(tc.pattern)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.pattern, p.String())
		})
	}
}

func TestMustPattern(t *testing.T) {
	t.Parallel()

	t.Run("valid pattern", func(t *testing.T) {
		t.Parallel()

		p := filepaths.MustPattern("**/*.las")
		assert.Equal(t, "**/*.las", p.String())
	})

	t.Run("panics on invalid", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			filepaths.MustPattern("[")
		})
	})
}

func TestPattern_Match(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		pattern string
		path    string
		want    bool
	}{
		"exact match": {
			pattern: "field-a.las",
			path:    "field-a.las",
			want:    true,
		},
		"exact no match": {
			pattern: "field-a.las",
			path:    "field-b.las",
			want:    false,
		},
		"wildcard in root": {
			pattern: "*.las",
			path:    "field-a.las",
			want:    true,
		},
		"wildcard does not match subdir": {
			pattern: "*.las",
			path:    "wells/field-a/field-a.las",
			want:    false,
		},
		"double star recursive": {
			pattern: "**/*.las",
			path:    "wells/field-a/field-a.las",
			want:    true,
		},
		"double star root": {
			pattern: "**/*.las",
			path:    "field-a.las",
			want:    true,
		},
		"double star specific dir": {
			pattern: "**/wells/*.las",
			path:    "logs/wells/field-a.las",
			want:    true,
		},
		"double star specific dir deep": {
			pattern: "**/wells/*.las",
			path:    "a/b/c/wells/field-a.las",
			want:    true,
		},
		"double star specific dir no match": {
			pattern: "**/wells/*.las",
			path:    "logs/other/field-a.las",
			want:    false,
		},
		"question mark": {
			pattern: "well?.las",
			path:    "well1.las",
			want:    true,
		},
		"question mark no match": {
			pattern: "well?.las",
			path:    "well12.las",
			want:    false,
		},
		"bracket range": {
			pattern: "well[0-9].las",
			path:    "well5.las",
			want:    true,
		},
		"bracket range no match": {
			pattern: "well[0-9].las",
			path:    "wellx.las",
			want:    false,
		},
		"empty path": {
			pattern: "*.las",
			path:    "",
			want:    false,
		},
		"empty pattern": {
			pattern: "",
			path:    "field-a.las",
			want:    false,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p := filepaths.MustPattern(tc.pattern)
			got := p.Match(tc.path)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMatchAnyWithBase(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path     string
		patterns []string
		want     bool
	}{
		"matches base name": {
			path:     "some/dir/field-a.las",
			patterns: []string{"*.las"},
			want:     true,
		},
		"matches full path pattern": {
			path:     "wells/field-a/completion.las",
			patterns: []string{"wells/field-a/*.las"},
			want:     true,
		},
		"matches exact filename via base": {
			path:     "some/dir/surface-log.las",
			patterns: []string{"surface-log.las"},
			want:     true,
		},
		"no match": {
			path:     "field-a.json",
			patterns: []string{"*.las"},
			want:     false,
		},
		"empty path": {
			path:     "",
			patterns: []string{"*.las"},
			want:     false,
		},
		"invalid pattern ignored": {
			path:     "field-a.las",
			patterns: []string{"[", "*.las"},
			want:     true,
		},
		"logs deep path": {
			path:     "logs/wells/field-a.las",
			patterns: []string{"logs/wells/*.yml", "logs/wells/*.las"},
			want:     true,
		},
		"field archive exact": {
			path:     "archive/field-a.las",
			patterns: []string{"archive/field-a.yml", "archive/field-a.las"},
			want:     true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := filepaths.MatchAnyWithBase(tc.path, tc.patterns)
			assert.Equal(t, tc.want, got)
		})
	}
}
