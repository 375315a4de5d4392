package las

import (
	"errors"
	"strings"
)

// rawSection is the intermediate, untyped form of a section as built by
// [*AstSink] while a parse is in progress. Ownership of a rawSection
// transfers from the parser to the sink at section_end.
type rawSection struct {
	kind       SectionKind
	header     string
	comments   []string
	entries    []Entry
	otherLines []OtherLine
	headers    []string
	rows       []AsciiRow
	line       int
}

// AstSink builds an in-memory [*File] from one parse pass. It is the
// least-privileged [Sink] implementation and serves as the reference
// against which the streaming sinks are checked for equivalence.
type AstSink struct {
	cur      *rawSection
	file     *File
	sections []*rawSection
}

// NewAstSink returns a new, empty [*AstSink].
func NewAstSink() *AstSink {
	return &AstSink{}
}

// Start implements [Sink].
func (s *AstSink) Start() error { return nil }

// SectionStart implements [Sink].
func (s *AstSink) SectionStart(ev SectionStart) error {
	s.cur = &rawSection{
		kind:     ev.Kind,
		header:   ev.Header,
		line:     ev.Line,
		comments: ev.Comments,
		headers:  ev.Curves,
	}

	return nil
}

// Entry implements [Sink].
func (s *AstSink) Entry(e Entry) error {
	s.cur.entries = append(s.cur.entries, e)

	return nil
}

// OtherLine implements [Sink].
func (s *AstSink) OtherLine(o OtherLine) error {
	s.cur.otherLines = append(s.cur.otherLines, o)

	return nil
}

// AsciiRow implements [Sink].
func (s *AstSink) AsciiRow(r AsciiRow) error {
	s.cur.rows = append(s.cur.rows, r)

	return nil
}

// SectionEnd implements [Sink].
func (s *AstSink) SectionEnd(SectionEnd) error {
	s.sections = append(s.sections, s.cur)
	s.cur = nil

	return nil
}

// End implements [Sink]. It converts every accumulated raw section to its
// typed form, running section-local validation, and assembles the [*File]
// returned by [AstSink.File].
func (s *AstSink) End() error {
	file, err := buildFile(s.sections)
	if err != nil {
		return err
	}

	s.file = file

	return nil
}

// File returns the assembled document. It must be called only after a
// successful [Parser.Parse].
func (s *AstSink) File() (*File, error) {
	if s.file == nil {
		return nil, errors.New("las: AstSink has no file (parse did not complete successfully)")
	}

	return s.file, nil
}

func buildFile(sections []*rawSection) (*File, error) {
	var f File

	for _, rs := range sections {
		f.order = append(f.order, rs.kind.String())

		switch rs.kind {
		case SectionVersion:
			v := buildVersion(rs)
			if err := v.Validate(); err != nil {
				return nil, err
			}

			f.Version = v
		case SectionWell:
			w := buildWell(rs)
			if err := w.Validate(); err != nil {
				return nil, err
			}

			f.Well = w
		case SectionCurve:
			f.Curve = buildCurve(rs)
		case SectionParameter:
			p := buildParameter(rs)
			f.Parameter = &p
		case SectionOther:
			o := buildOther(rs)
			f.Other = &o
		case SectionAsciiLogData:
			f.Ascii = buildAscii(rs)
		case SectionUnknown:
			// unreachable: the parser never emits an unclassified section.
		}
	}

	if err := f.validateColumns(); err != nil {
		return nil, err
	}

	return &f, nil
}

// validateColumns re-checks every ASCII row against the header count once
// the whole document is assembled. The parser already enforces this
// row-by-row while streaming; this is a belt-and-braces check run once more
// at the document level before a file is considered fully parsed.
func (f *File) validateColumns() error {
	for i, row := range f.Ascii.Rows {
		if len(row) != len(f.Ascii.Headers) {
			return NewError(KindAsciiColumnsMismatch,
				"ascii row width does not match header count",
				WithField("expected", len(f.Ascii.Headers)),
				WithField("got", len(row)),
				WithField("row_index", i))
		}
	}

	return nil
}

func meta(rs *rawSection) sectionMeta {
	return sectionMeta{Header: rs.header, Comments: rs.comments, Line: rs.line}
}

func buildVersion(rs *rawSection) VersionInformation {
	v := VersionInformation{sectionMeta: meta(rs)}

	for _, e := range rs.entries {
		switch strings.ToUpper(e.Line.Mnemonic) {
		case "VERS":
			v.VERS = e
		case "WRAP":
			v.WRAP = e
		default:
			v.Additional = append(v.Additional, e)
		}
	}

	return v
}

func buildWell(rs *rawSection) WellInformation {
	w := WellInformation{sectionMeta: meta(rs)}

	for _, e := range rs.entries {
		e := e

		switch strings.ToUpper(e.Line.Mnemonic) {
		case "STRT":
			w.STRT = e
		case "STOP":
			w.STOP = e
		case "STEP":
			w.STEP = e
		case "NULL":
			w.NULL = e
		case "COMP":
			w.COMP = &e
		case "WELL":
			w.WELL = &e
		case "FLD":
			w.FLD = &e
		case "LOC":
			w.LOC = &e
		case "PROV":
			w.PROV = &e
		case "CNTY":
			w.CNTY = &e
		case "STAT":
			w.STAT = &e
		case "CTRY":
			w.CTRY = &e
		case "SRVC":
			w.SRVC = &e
		case "DATE":
			w.DATE = &e
		case "UWI":
			w.UWI = &e
		case "API":
			w.API = &e
		default:
			w.Additional = append(w.Additional, e)
		}
	}

	return w
}

func buildCurve(rs *rawSection) CurveInformation {
	return CurveInformation{sectionMeta: meta(rs), Curves: rs.entries}
}

func buildParameter(rs *rawSection) ParameterInformation {
	return ParameterInformation{sectionMeta: meta(rs), Parameters: rs.entries}
}

func buildOther(rs *rawSection) OtherInformation {
	return OtherInformation{sectionMeta: meta(rs), Data: rs.otherLines}
}

func buildAscii(rs *rawSection) AsciiLogData {
	return AsciiLogData{sectionMeta: meta(rs), Headers: rs.headers, Rows: rs.rows}
}
