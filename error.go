package las

import (
	"errors"
	"fmt"
	"log/slog"
)

// Kind identifies a member of the error taxonomy. Every [*Error] returned
// by this package carries exactly one Kind, set at construction.
type Kind int

const (
	// KindUnknown is the zero value; never set intentionally.
	KindUnknown Kind = iota

	// KindIO is an underlying read/write failure.
	KindIO

	// KindVersionInformationNotFirst: a non-Version section header, or a data
	// line, was seen before any Version section. A second Version header is
	// reported as KindDuplicateSection.
	KindVersionInformationNotFirst
	// KindAsciiLogDataSectionNotLast: a section header appeared after
	// AsciiLogData, or AsciiLogData began with no curves declared before it.
	KindAsciiLogDataSectionNotLast
	// KindDuplicateSection: a second header of an already-seen kind appeared.
	KindDuplicateSection
	// KindMissingSection: a mandatory section was absent at end of stream.
	KindMissingSection

	// KindMissingRequiredKey: a data line has no mnemonic.
	KindMissingRequiredKey
	// KindMissingDelimiter: a required delimiter was absent or out of order.
	KindMissingDelimiter
	// KindDelimitedValueContainsInvalidChars: mnemonic or unit contained a
	// disallowed character.
	KindDelimitedValueContainsInvalidChars

	// KindSectionMissingRequiredData: a section lacks one of its mandatory
	// mnemonics.
	KindSectionMissingRequiredData
	// KindWellDataMissingRequiredValueForMnemonic: a required Well mnemonic
	// was absent or had no value.
	KindWellDataMissingRequiredValueForMnemonic
	// KindInvalidWellValue: a Well mnemonic that must be numeric was not.
	KindInvalidWellValue
	// KindDisallowedFirstCurve: the first curve mnemonic was not an allowed
	// index curve.
	KindDisallowedFirstCurve

	// KindAsciiColumnsMismatch: a row's token count did not equal the curve
	// count.
	KindAsciiColumnsMismatch
	// KindAsciiDataContainsInvalidLine: a comment or blank line appeared
	// inside AsciiLogData.
	KindAsciiDataContainsInvalidLine
	// KindInvalidAsciiValue: an ASCII table cell could not be used as-is.
	KindInvalidAsciiValue

	// KindConvertingTo: a sink failed to serialize to its target format.
	KindConvertingTo

	// KindUnknownSectionKind: a section header's leading character did not
	// match any of V/W/C/P/O/A.
	KindUnknownSectionKind
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "IO"
	case KindVersionInformationNotFirst:
		return "VersionInformationNotFirst"
	case KindAsciiLogDataSectionNotLast:
		return "AsciiLogDataSectionNotLast"
	case KindDuplicateSection:
		return "DuplicateSection"
	case KindMissingSection:
		return "MissingSection"
	case KindMissingRequiredKey:
		return "MissingRequiredKey"
	case KindMissingDelimiter:
		return "MissingDelimiter"
	case KindDelimitedValueContainsInvalidChars:
		return "DelimitedValueContainsInvalidChars"
	case KindSectionMissingRequiredData:
		return "SectionMissingRequiredData"
	case KindWellDataMissingRequiredValueForMnemonic:
		return "WellDataMissingRequiredValueForMnemonic"
	case KindInvalidWellValue:
		return "InvalidWellValue"
	case KindDisallowedFirstCurve:
		return "DisallowedFirstCurve"
	case KindAsciiColumnsMismatch:
		return "AsciiColumnsMismatch"
	case KindAsciiDataContainsInvalidLine:
		return "AsciiDataContainsInvalidLine"
	case KindInvalidAsciiValue:
		return "InvalidAsciiValue"
	case KindConvertingTo:
		return "ConvertingTo"
	case KindUnknownSectionKind:
		return "UnknownSectionKind"
	default:
		return "Unknown"
	}
}

// Error is the single error type returned by every fallible operation in
// this package. It carries a [Kind], an optional 1-based source line
// number, and optional structured fields used to render a user-actionable
// message without re-reading the input.
//
// Construct with [NewError] or [NewErrorFrom]; customize with [ErrorOption]s.
type Error struct {
	err         error
	Fields      map[string]any
	sourceLines []string
	Kind        Kind
	Line        int
}

// ErrorOption configures an [Error].
type ErrorOption func(*Error)

// WithLine sets the 1-based source line number the error pertains to.
func WithLine(line int) ErrorOption {
	return func(e *Error) { e.Line = line }
}

// WithField attaches a named structured field (e.g. "mnemonic", "expected").
func WithField(key string, val any) ErrorOption {
	return func(e *Error) {
		if e.Fields == nil {
			e.Fields = make(map[string]any)
		}

		e.Fields[key] = val
	}
}

// WithSourceLines attaches the raw source line(s) the error annotates, which
// [Error.Error] renders below the message, one "  | " prefixed line each.
func WithSourceLines(lines ...string) ErrorOption {
	return func(e *Error) { e.sourceLines = lines }
}

// NewError creates a new [*Error] of the given kind wrapping a plain message.
func NewError(kind Kind, msg string, opts ...ErrorOption) *Error {
	return NewErrorFrom(kind, errors.New(msg), opts...)
}

// NewErrorFrom creates a new [*Error] of the given kind wrapping an existing
// error.
func NewErrorFrom(kind Kind, err error, opts ...ErrorOption) *Error {
	e := &Error{err: err, Kind: kind}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Error renders the message, prefixed with the line number when known and
// followed by a source excerpt when attached.
func (e *Error) Error() string {
	if e == nil || e.err == nil {
		return ""
	}

	msg := e.err.Error()
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}

	for _, src := range e.sourceLines {
		msg += fmt.Sprintf("\n  | %s", src)
	}

	return msg
}

// Unwrap enables [errors.Is] and [errors.As] against the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.err
}

// Is reports whether target is an *Error of the same [Kind]. This lets
// callers write errors.Is(err, &las.Error{Kind: las.KindDuplicateSection}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Kind == e.Kind
}

// logDebug records a non-fatal, recoverable condition. Used for situations
// where a best-effort fallback is available and a caller should never see a
// panic or a hard failure (e.g. a normalization pass that could not run).
func logDebug(msg string, err error) {
	slog.Debug(msg, slog.Any("error", err))
}
