// Package filepaths provides standardized glob pattern matching for file paths.
//
// This package wraps [github.com/bmatcuk/doublestar] to provide consistent glob
// pattern matching throughout the codebase. It supports extended glob patterns
// including `**` for recursive directory matching, unlike [path/filepath.Glob].
//
// # Pattern Matching
//
// Use [Pattern] for repeated matching against a validated pattern. Patterns
// follow doublestar syntax:
//
//   - `*` matches any sequence of non-separator characters.
//   - `**` matches any sequence including separators (recursive).
//   - `?` matches any single non-separator character.
//   - `[abc]` matches any character in the set.
//   - `[a-z]` matches any character in the range.
//
// Examples:
//
//	**/*.las       # Matches LAS files in any directory.
//	*.las          # Matches LAS files in root only.
//	**/well/*.las  # Matches LAS files in any well directory.
//	config.las     # Matches exactly "config.las".
//
// # File System Globbing
//
// Use [Glob] to expand patterns against the file system, supporting ** for
// recursive directory matching unlike [path/filepath.Glob].
//
// Use [ContainsGlobChars] to detect whether a string contains glob metacharacters.
package filepaths
