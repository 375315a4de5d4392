package las

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// WriteLAS regenerates f as LAS 2.0 text, in the fixed section order
// Version, Well, Curve, Parameter?, Other?, AsciiLogData. Each section is
// preceded by its comments; each data line is rendered as
// "MNEM.UNIT value : description"; AsciiLogData rows are written as
// space-separated raw cells.
func (f *File) WriteLAS(w io.Writer) error {
	bw := bufio.NewWriter(w)

	writeSection(bw, f.Version.Header, f.Version.Comments, versionEntries(f.Version))
	writeSection(bw, f.Well.Header, f.Well.Comments, wellEntries(f.Well))
	writeSection(bw, f.Curve.Header, f.Curve.Comments, f.Curve.Curves)

	if f.Parameter != nil {
		writeSection(bw, f.Parameter.Header, f.Parameter.Comments, f.Parameter.Parameters)
	}

	if f.Other != nil {
		writeComments(bw, f.Other.Comments)
		writeHeader(bw, f.Other.Header)

		for _, d := range f.Other.Data {
			writeComments(bw, d.Comments)
			fmt.Fprintln(bw, d.Text)
		}
	}

	writeComments(bw, f.Ascii.Comments)
	writeHeader(bw, f.Ascii.Header)

	for _, row := range f.Ascii.Rows {
		fmt.Fprintln(bw, strings.Join([]string(row), " "))
	}

	if err := bw.Flush(); err != nil {
		return NewErrorFrom(KindConvertingTo, err, WithField("format", "las"))
	}

	return nil
}

// LAS renders f as a LAS 2.0 text string, equivalent to [File.WriteLAS]
// into an in-memory buffer.
func (f *File) LAS() (string, error) {
	var buf bytes.Buffer
	if err := f.WriteLAS(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func writeSection(bw *bufio.Writer, header string, comments []string, entries []Entry) {
	writeComments(bw, comments)
	writeHeader(bw, header)

	for _, e := range entries {
		writeEntry(bw, e)
	}
}

func writeComments(bw *bufio.Writer, comments []string) {
	for _, c := range comments {
		fmt.Fprintf(bw, "# %s\n", c)
	}
}

func writeHeader(bw *bufio.Writer, header string) {
	fmt.Fprintf(bw, "~%s\n", header)
}

func writeEntry(bw *bufio.Writer, e Entry) {
	writeComments(bw, e.Comments)

	var sb strings.Builder

	sb.WriteString(e.Line.Mnemonic)
	sb.WriteByte('.')
	sb.WriteString(e.Line.Unit)
	sb.WriteByte(' ')
	sb.WriteString(e.Line.Value.String())

	if e.Line.HasDesc {
		sb.WriteString(" : ")
		sb.WriteString(e.Line.Description)
	}

	fmt.Fprintln(bw, sb.String())
}

func versionEntries(v VersionInformation) []Entry {
	out := make([]Entry, 0, 2+len(v.Additional))
	out = append(out, v.VERS, v.WRAP)
	out = append(out, v.Additional...)

	return out
}

func wellEntries(w WellInformation) []Entry {
	out := make([]Entry, 0, 4+len(w.Additional))
	out = append(out, w.STRT, w.STOP, w.STEP, w.NULL)

	for _, e := range []*Entry{
		w.COMP, w.WELL, w.FLD, w.LOC, w.PROV, w.CNTY, w.STAT, w.CTRY, w.SRVC, w.DATE, w.UWI, w.API,
	} {
		if e != nil {
			out = append(out, *e)
		}
	}

	out = append(out, w.Additional...)

	return out
}
