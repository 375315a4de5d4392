package filepaths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.wellcurve.dev/las/internal/filepaths"
)

func TestContainsGlobChars(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  bool
	}{
		"asterisk": {
			input: "*.las",
			want:  true,
		},
		"question mark": {
			input: "well?.las",
			want:  true,
		},
		"bracket": {
			input: "well[0-9].las",
			want:  true,
		},
		"multiple globs": {
			input: "**/[a-z]*.las",
			want:  true,
		},
		"no glob chars": {
			input: "well.las",
			want:  false,
		},
		"empty string": {
			input: "",
			want:  false,
		},
		"path without globs": {
			input: "/wells/field-a/well.las",
			want:  false,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := filepaths.ContainsGlobChars(tc.input)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExpand(t *testing.T) {
	t.Parallel()

	// Create a temporary directory with test files.
	tmpDir := t.TempDir()

	// Create test files with predictable names for sorting.
	files := []string{"002.las", "000.las", "001.las"}
	for _, name := range files {
		err := os.WriteFile(filepath.Join(tmpDir, name), []byte("test"), 0o644)
		require.NoError(t, err)
	}

	// Create a subdirectory with a file for recursive glob testing.
	subdir := filepath.Join(tmpDir, "subdir")
	require.NoError(t, os.MkdirAll(subdir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(subdir, "003.las"), []byte("test"), 0o644))

	tests := map[string]struct {
		args      []string
		wantNames []string
		err       string
	}{
		"single file": {
			args:      []string{filepath.Join(tmpDir, "000.las")},
			wantNames: []string{"000.las"},
		},
		"multiple explicit files": {
			args:      []string{filepath.Join(tmpDir, "002.las"), filepath.Join(tmpDir, "000.las")},
			wantNames: []string{"000.las", "002.las"},
		},
		"glob pattern": {
			args:      []string{filepath.Join(tmpDir, "*.las")},
			wantNames: []string{"000.las", "001.las", "002.las"},
		},
		"glob with question mark": {
			args:      []string{filepath.Join(tmpDir, "00?.las")},
			wantNames: []string{"000.las", "001.las", "002.las"},
		},
		"glob with bracket": {
			args:      []string{filepath.Join(tmpDir, "00[01].las")},
			wantNames: []string{"000.las", "001.las"},
		},
		"mixed glob and explicit": {
			args:      []string{filepath.Join(tmpDir, "00[01].las"), filepath.Join(tmpDir, "002.las")},
			wantNames: []string{"000.las", "001.las", "002.las"},
		},
		"recursive glob": {
			args:      []string{tmpDir + "/**/*.las"},
			wantNames: []string{"000.las", "001.las", "002.las", "003.las"},
		},
		"no matches": {
			args:      []string{filepath.Join(tmpDir, "*.json")},
			wantNames: []string{},
		},
		"nonexistent file passes": {
			// Expand does not check file existence, only glob expansion.
			args:      []string{filepath.Join(tmpDir, "nonexistent.las")},
			wantNames: []string{"nonexistent.las"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			paths, err := filepaths.Expand(tc.args...)

			if tc.err != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.err)

				return
			}

			require.NoError(t, err)
			require.Len(t, paths, len(tc.wantNames))

			for i, path := range paths {
				assert.Equal(t, tc.wantNames[i], filepath.Base(path))
			}
		})
	}
}

func TestGlob(t *testing.T) {
	t.Parallel()

	// Create temporary directory structure for testing.
	tmpDir := t.TempDir()

	// Create test directory structure:
	// tmpDir/
	//   a.las
	//   b.yml
	//   subdir/
	//     c.las
	//     deep/
	//       d.las
	//   wells/
	//     field-a.las
	subdir := filepath.Join(tmpDir, "subdir")
	subdirDeep := filepath.Join(subdir, "deep")
	wellsDir := filepath.Join(tmpDir, "wells")

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "a.las"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "b.yml"), []byte("b"), 0o644))
	require.NoError(t, os.MkdirAll(subdirDeep, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(subdir, "c.las"), []byte("c"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(subdirDeep, "d.las"), []byte("d"), 0o644))
	require.NoError(t, os.MkdirAll(wellsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(wellsDir, "field-a.las"), []byte("wells"), 0o644))

	tcs := map[string]struct {
		pattern   string
		wantFiles []string
		err       string
	}{
		"simple wildcard": {
			pattern:   filepath.Join(tmpDir, "*.las"),
			wantFiles: []string{filepath.Join(tmpDir, "a.las")},
		},
		"simple wildcard yml": {
			pattern:   filepath.Join(tmpDir, "*.yml"),
			wantFiles: []string{filepath.Join(tmpDir, "b.yml")},
		},
		"recursive las": {
			pattern: tmpDir + "/**/*.las",
			wantFiles: []string{
				filepath.Join(tmpDir, "a.las"),
				filepath.Join(wellsDir, "field-a.las"),
				filepath.Join(subdir, "c.las"),
				filepath.Join(subdirDeep, "d.las"),
			},
		},
		"subdir only": {
			pattern:   subdir + "/*.las",
			wantFiles: []string{filepath.Join(subdir, "c.las")},
		},
		"subdir recursive": {
			pattern: subdir + "/**/*.las",
			wantFiles: []string{
				filepath.Join(subdir, "c.las"),
				filepath.Join(subdirDeep, "d.las"),
			},
		},
		"wells specific": {
			pattern:   wellsDir + "/*.las",
			wantFiles: []string{filepath.Join(wellsDir, "field-a.las")},
		},
		"double star wells": {
			pattern:   tmpDir + "/**/wells/*.las",
			wantFiles: []string{filepath.Join(wellsDir, "field-a.las")},
		},
		"no matches": {
			pattern:   filepath.Join(tmpDir, "*.json"),
			wantFiles: []string{},
		},
		"invalid pattern": {
			pattern: "[",
			err:     "glob",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			matches, err := filepaths.Glob(tc.pattern)
			if tc.err != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.err)

				return
			}

			require.NoError(t, err)
			assert.ElementsMatch(t, tc.wantFiles, matches)
		})
	}
}
