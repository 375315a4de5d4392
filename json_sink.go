package las

import (
	"bytes"
	"encoding/json"
	"io"
)

// EncodeJSON renders f as the single top-level JSON object described in the
// external interface contract, with keys in parse order.
func EncodeJSON(f *File) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	first := true

	for _, name := range f.order {
		shape, ok := f.sectionShape(name)
		if !ok {
			continue
		}

		if !first {
			buf.WriteByte(',')
		}

		first = false

		key, err := json.Marshal(name)
		if err != nil {
			return nil, NewErrorFrom(KindConvertingTo, err, WithField("format", "json"))
		}

		val, err := json.Marshal(shape)
		if err != nil {
			return nil, NewErrorFrom(KindConvertingTo, err, WithField("format", "json"))
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// sectionShape resolves the wire-shape value for a section name, reporting
// false for an optional section that was never present.
func (f *File) sectionShape(name string) (any, bool) {
	switch name {
	case SectionVersion.String():
		return f.Version.shape(), true
	case SectionWell.String():
		return f.Well.shape(), true
	case SectionCurve.String():
		return f.Curve.shape(), true
	case SectionParameter.String():
		if f.Parameter == nil {
			return nil, false
		}

		return f.Parameter.shape(), true
	case SectionOther.String():
		if f.Other == nil {
			return nil, false
		}

		return f.Other.shape(), true
	case SectionAsciiLogData.String():
		return f.Ascii.shape(), true
	default:
		return nil, false
	}
}

// JsonSink streams a single top-level JSON object directly to w as parse
// events arrive. Every section other than AsciiLogData is buffered (they are
// small, fixed-shape metadata blocks); AsciiLogData rows are written one at
// a time, so memory use for the table is O(row width) regardless of row
// count.
type JsonSink struct {
	w            io.Writer
	cur          *rawSection
	firstSection bool
	firstRow     bool
	writingAscii bool
}

// NewJsonSink returns a [*JsonSink] writing to w.
func NewJsonSink(w io.Writer) *JsonSink {
	return &JsonSink{w: w, firstSection: true}
}

// Start implements [Sink].
func (s *JsonSink) Start() error {
	return s.write("{")
}

// SectionStart implements [Sink].
func (s *JsonSink) SectionStart(ev SectionStart) error {
	if ev.Kind != SectionAsciiLogData {
		s.writingAscii = false
		s.cur = &rawSection{kind: ev.Kind, header: ev.Header, line: ev.Line, comments: ev.Comments}

		return nil
	}

	s.writingAscii = true
	s.firstRow = true

	if err := s.sectionComma(); err != nil {
		return err
	}

	headers, err := json.Marshal(ev.Curves)
	if err != nil {
		return s.convErr(err)
	}

	header, err := json.Marshal(renderedHeader(ev.Header))
	if err != nil {
		return s.convErr(err)
	}

	if err := s.write(`"AsciiLogData":{"headers":` + string(headers) + `,"header":` + string(header)); err != nil {
		return err
	}

	if len(ev.Comments) > 0 {
		comments, err := json.Marshal(ev.Comments)
		if err != nil {
			return s.convErr(err)
		}

		if err := s.write(`,"comments":` + string(comments)); err != nil {
			return err
		}
	}

	return s.write(`,"rows":[`)
}

// Entry implements [Sink].
func (s *JsonSink) Entry(e Entry) error {
	s.cur.entries = append(s.cur.entries, e)

	return nil
}

// OtherLine implements [Sink].
func (s *JsonSink) OtherLine(o OtherLine) error {
	s.cur.otherLines = append(s.cur.otherLines, o)

	return nil
}

// AsciiRow implements [Sink].
func (s *JsonSink) AsciiRow(r AsciiRow) error {
	b, err := json.Marshal([]string(r))
	if err != nil {
		return s.convErr(err)
	}

	if !s.firstRow {
		if err := s.write(","); err != nil {
			return err
		}
	}

	s.firstRow = false

	return s.write(string(b))
}

// SectionEnd implements [Sink].
func (s *JsonSink) SectionEnd(SectionEnd) error {
	if s.writingAscii {
		return s.write("]}")
	}

	name, shape, err := s.resolveSection()
	if err != nil {
		return err
	}

	if err := s.sectionComma(); err != nil {
		return err
	}

	key, err := json.Marshal(name)
	if err != nil {
		return s.convErr(err)
	}

	val, err := json.Marshal(shape)
	if err != nil {
		return s.convErr(err)
	}

	return s.write(string(key) + ":" + string(val))
}

func (s *JsonSink) resolveSection() (string, any, error) {
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
		return "", nil, NewError(KindConvertingTo, "unreachable section kind in JsonSink")
	}
}

// End implements [Sink].
func (s *JsonSink) End() error {
	return s.write("}")
}

func (s *JsonSink) sectionComma() error {
	if !s.firstSection {
		if err := s.write(","); err != nil {
			return err
		}
	}

	s.firstSection = false

	return nil
}

func (s *JsonSink) write(str string) error {
	if _, err := io.WriteString(s.w, str); err != nil {
		return s.convErr(err)
	}

	return nil
}

func (s *JsonSink) convErr(err error) *Error {
	return NewErrorFrom(KindConvertingTo, err, WithField("format", "json"))
}
