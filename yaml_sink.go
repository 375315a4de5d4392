package las

import (
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// PrettyEncodeOptions are the [yaml.EncodeOption]s used wherever this
// package marshals a section shape to YAML block style.
var PrettyEncodeOptions = []yaml.EncodeOption{yaml.Indent(2), yaml.IndentSequence(true)}

// EncodeYAML renders f as the same logical document as [EncodeJSON], in
// block style, with keys in parse order.
func EncodeYAML(f *File) ([]byte, error) {
	var buf strings.Builder

	for _, name := range f.order {
		shape, ok := f.sectionShape(name)
		if !ok {
			continue
		}

		block, err := yaml.MarshalWithOptions(shape, PrettyEncodeOptions...)
		if err != nil {
			return nil, NewErrorFrom(KindConvertingTo, err, WithField("format", "yaml"))
		}

		buf.WriteString(name)
		buf.WriteString(":\n")
		writeIndented(&buf, block, "  ")
	}

	return []byte(buf.String()), nil
}

func writeIndented(buf *strings.Builder, block []byte, indent string) {
	for _, line := range strings.Split(strings.TrimRight(string(block), "\n"), "\n") {
		buf.WriteString(indent)
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
}

// yamlScalar renders one Go string as a YAML scalar, quoting it only when
// goccy/go-yaml decides quoting is required.
func yamlScalar(v string) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		logDebug("yaml scalar fallback", err)

		return `"` + strings.ReplaceAll(v, `"`, `\"`) + `"`
	}

	return strings.TrimSuffix(string(b), "\n")
}

// YamlSink streams a single top-level YAML mapping directly to w. Like
// [JsonSink], every section other than AsciiLogData is buffered and
// converted once complete; AsciiLogData rows are written one at a time as a
// block sequence of flow sequences.
type YamlSink struct {
	w            io.Writer
	cur          *rawSection
	writingAscii bool
}

// NewYamlSink returns a [*YamlSink] writing to w.
func NewYamlSink(w io.Writer) *YamlSink {
	return &YamlSink{w: w}
}

// SectionStart implements [Sink].
func (s *YamlSink) SectionStart(ev SectionStart) error {
	if ev.Kind != SectionAsciiLogData {
		s.writingAscii = false
		s.cur = &rawSection{kind: ev.Kind, header: ev.Header, line: ev.Line, comments: ev.Comments}

		return nil
	}

	s.writingAscii = true

	if err := s.write("AsciiLogData:\n  headers:\n"); err != nil {
		return err
	}

	for _, h := range ev.Curves {
		if err := s.write("    - " + yamlScalar(h) + "\n"); err != nil {
			return err
		}
	}

	if err := s.write("  header: " + yamlScalar(renderedHeader(ev.Header)) + "\n"); err != nil {
		return err
	}

	if len(ev.Comments) > 0 {
		if err := s.write("  comments:\n"); err != nil {
			return err
		}

		for _, c := range ev.Comments {
			if err := s.write("    - " + yamlScalar(c) + "\n"); err != nil {
				return err
			}
		}
	}

	return s.write("  rows:\n")
}

// Start implements [Sink]. A YAML mapping needs no opening delimiter.
func (s *YamlSink) Start() error { return nil }

// Entry implements [Sink].
func (s *YamlSink) Entry(e Entry) error {
	s.cur.entries = append(s.cur.entries, e)

	return nil
}

// OtherLine implements [Sink].
func (s *YamlSink) OtherLine(o OtherLine) error {
	s.cur.otherLines = append(s.cur.otherLines, o)

	return nil
}

// AsciiRow implements [Sink].
func (s *YamlSink) AsciiRow(r AsciiRow) error {
	cells := make([]string, len(r))
	for i, c := range r {
		cells[i] = yamlScalar(c)
	}

	return s.write("    - [" + strings.Join(cells, ", ") + "]\n")
}

// SectionEnd implements [Sink].
func (s *YamlSink) SectionEnd(SectionEnd) error {
	if s.writingAscii {
		return nil
	}

	name, shape, err := s.resolveSection()
	if err != nil {
		return err
	}

	block, err := yaml.MarshalWithOptions(shape, PrettyEncodeOptions...)
	if err != nil {
		return s.convErr(err)
	}

	var buf strings.Builder

	buf.WriteString(name)
	buf.WriteString(":\n")
	writeIndented(&buf, block, "  ")

	return s.write(buf.String())
}

func (s *YamlSink) resolveSection() (string, any, error) {
	switch s.cur.kind {
	case SectionVersion:
		v := buildVersion(s.cur)
		if err := v.Validate(); err != nil {
			return "", nil, err
		}

		return SectionVersion.String(), v.shape(), nil
	case SectionWell:
		w := buildWell(s.cur)
		if err := w.Validate(); err != nil {
			return "", nil, err
		}

		return SectionWell.String(), w.shape(), nil
	case SectionCurve:
		return SectionCurve.String(), buildCurve(s.cur).shape(), nil
	case SectionParameter:
		return SectionParameter.String(), buildParameter(s.cur).shape(), nil
	case SectionOther:
		return SectionOther.String(), buildOther(s.cur).shape(), nil
	default:
		return "", nil, NewError(KindConvertingTo, "unreachable section kind in YamlSink")
	}
}

// End implements [Sink]. A YAML mapping needs no closing delimiter.
func (s *YamlSink) End() error { return nil }

func (s *YamlSink) write(str string) error {
	if _, err := io.WriteString(s.w, str); err != nil {
		return s.convErr(err)
	}

	return nil
}

func (s *YamlSink) convErr(err error) *Error {
	return NewErrorFrom(KindConvertingTo, err, WithField("format", "yaml"))
}
