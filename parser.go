package las

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"go.wellcurve.dev/las/dataline"
	"go.wellcurve.dev/las/normalizer"
	"go.wellcurve.dev/las/token"
)

// allowedFirstCurves lists the index-curve mnemonics permitted in the first
// curve position, compared case-insensitively.
var allowedFirstCurves = []string{"DEPT", "DEPTH", "TIME", "INDEX"}

// mnemonicFold normalizes mnemonics before comparison. Mnemonics are ASCII by
// convention but files in the wild carry stray diacritics and full-width
// characters from non-ASCII editors, so the fold pipeline covers both.
var mnemonicFold = normalizer.New(normalizer.WithWidthFold(true))

// Parser drives a [token.Tokenizer] against the LAS 2.0 structural state
// machine, emitting events into a [Sink]. One Parser drives exactly one
// Sink through exactly one pass of the input; it is not reusable.
type Parser struct {
	tok      *token.Tokenizer
	sink     Sink
	sections map[SectionKind]int
	pending  []string
	curves   []string
	state    SectionKind
	started  bool
}

// NewParser returns a [*Parser] that reads LAS text from r and drives sink.
func NewParser(r io.Reader, sink Sink) *Parser {
	return &Parser{
		tok:      token.New(r),
		sink:     sink,
		sections: make(map[SectionKind]int),
	}
}

// Parse consumes the entire input, driving the configured [Sink]. It
// returns the first structural, syntax, or I/O error encountered; nothing
// is retried and no partial sink output is promised to be a valid document.
func (p *Parser) Parse() error {
	for tok := range p.tok.Tokens() {
		var err error

		switch tok.Kind {
		case token.SectionHeader:
			err = p.handleSectionHeader(tok)
		case token.Comment:
			err = p.handleComment(tok)
		case token.Blank:
			err = p.handleBlank(tok)
		case token.DataLine:
			err = p.handleDataLine(tok)
		}

		if err != nil {
			return err
		}
	}

	if ioErr := p.tok.Err(); ioErr != nil {
		return p.fail(KindIO, 0, ioErr.Error())
	}

	return p.finish()
}

func (p *Parser) handleSectionHeader(tok token.LineToken) error {
	kind, ok := sectionKindFromHeader(tok.Text)
	if !ok {
		return p.fail(KindUnknownSectionKind, tok.Line,
			fmt.Sprintf("unknown section kind in header %q", tok.Text), WithField("header", tok.Text))
	}

	if p.state == SectionAsciiLogData {
		return p.fail(KindAsciiLogDataSectionNotLast, tok.Line,
			"section header after ASCII Log Data section")
	}

	if !p.started && kind != SectionVersion {
		return p.fail(KindVersionInformationNotFirst, tok.Line,
			"first section must be Version Information")
	}

	if first, seen := p.sections[kind]; seen {
		return p.fail(KindDuplicateSection, tok.Line,
			fmt.Sprintf("duplicate %s section", kind),
			WithField("kind", kind.String()),
			WithField("first_line", first),
			WithField("duplicate_line", tok.Line))
	}

	if p.started {
		if err := p.sink.SectionEnd(SectionEnd{Kind: p.state}); err != nil {
			return err
		}
	} else {
		if err := p.sink.Start(); err != nil {
			return err
		}

		p.started = true
	}

	var curves []string
	if kind == SectionAsciiLogData {
		if len(p.curves) == 0 {
			return p.fail(KindAsciiLogDataSectionNotLast, tok.Line,
				"ASCII Log Data section with no preceding Curve Information")
		}

		curves = slices.Clone(p.curves)
	}

	comments := p.takeComments()

	if err := p.sink.SectionStart(SectionStart{
		Header:   tok.Text,
		Kind:     kind,
		Line:     tok.Line,
		Comments: comments,
		Curves:   curves,
	}); err != nil {
		return err
	}

	p.sections[kind] = tok.Line
	p.state = kind

	return nil
}

func (p *Parser) handleComment(tok token.LineToken) error {
	if p.state == SectionAsciiLogData {
		return p.fail(KindAsciiDataContainsInvalidLine, tok.Line,
			"comment line not allowed inside ASCII Log Data", WithField("kind", "Comment"))
	}

	p.pending = append(p.pending, tok.Text)

	return nil
}

func (p *Parser) handleBlank(tok token.LineToken) error {
	if p.state == SectionAsciiLogData {
		return p.fail(KindAsciiDataContainsInvalidLine, tok.Line,
			"blank line not allowed inside ASCII Log Data", WithField("kind", "Empty"))
	}

	return nil
}

func (p *Parser) handleDataLine(tok token.LineToken) error {
	switch p.state {
	case SectionAsciiLogData:
		return p.handleAsciiRow(tok)
	case SectionOther:
		return p.sink.OtherLine(OtherLine{
			Text:     strings.TrimSpace(tok.Text),
			Comments: p.takeComments(),
		})
	case SectionCurve:
		dl, err := p.parseDataLine(tok)
		if err != nil {
			return err
		}

		p.curves = append(p.curves, dl.Mnemonic)

		return p.sink.Entry(Entry{Line: dl, Comments: p.takeComments()})
	case SectionVersion, SectionWell, SectionParameter:
		dl, err := p.parseDataLine(tok)
		if err != nil {
			return err
		}

		return p.sink.Entry(Entry{Line: dl, Comments: p.takeComments()})
	default:
		return p.fail(KindVersionInformationNotFirst, tok.Line,
			"data line before any section header")
	}
}

func (p *Parser) handleAsciiRow(tok token.LineToken) error {
	fields := strings.Fields(tok.Text)
	if len(fields) != len(p.curves) {
		return p.fail(KindAsciiColumnsMismatch, tok.Line,
			fmt.Sprintf("expected %d columns, got %d", len(p.curves), len(fields)),
			WithField("expected", len(p.curves)),
			WithField("got", len(fields)))
	}

	return p.sink.AsciiRow(AsciiRow(fields))
}

func (p *Parser) parseDataLine(tok token.LineToken) (DataLine, error) {
	parsed, err := dataline.Parse(tok.Text)
	if err != nil {
		var dlErr *dataline.Error
		if errors.As(err, &dlErr) {
			return DataLine{}, p.dataLineError(dlErr, tok)
		}

		return DataLine{}, p.fail(KindMissingRequiredKey, tok.Line, err.Error())
	}

	return DataLine{
		Mnemonic:    parsed.Mnemonic,
		Unit:        parsed.Unit,
		Description: parsed.Description,
		HasUnit:     parsed.HasUnit,
		HasDesc:     parsed.HasDesc,
		HasValue:    !parsed.Value.IsZero(),
		Value: Value{
			Text: parsed.Value.Text,
			Int:  parsed.Value.Int,
			Kind: ValueKind(parsed.Value.Kind),
		},
	}, nil
}

func (p *Parser) dataLineError(dlErr *dataline.Error, tok token.LineToken) *Error {
	switch dlErr.Kind {
	case dataline.ErrMissingMnemonic:
		return p.fail(KindMissingRequiredKey, tok.Line, "missing required key: mnemonic",
			WithField("key", "mnemonic"), WithSourceLines(tok.Text))
	case dataline.ErrInvalidMnemonicChars:
		return p.fail(KindDelimitedValueContainsInvalidChars, tok.Line,
			"mnemonic contains invalid characters",
			WithField("key", "mnemonic"), WithSourceLines(tok.Text))
	case dataline.ErrInvalidUnitChars:
		return p.fail(KindDelimitedValueContainsInvalidChars, tok.Line,
			"unit contains invalid characters",
			WithField("key", "unit"), WithSourceLines(tok.Text))
	case dataline.ErrMissingSpaceDelimiter:
		return p.fail(KindMissingDelimiter, tok.Line, `missing delimiter: " "`,
			WithField("delimiter", " "), WithSourceLines(tok.Text))
	default:
		return p.fail(KindMissingRequiredKey, tok.Line, dlErr.Error())
	}
}

func (p *Parser) finish() error {
	if !p.started {
		return p.fail(KindMissingSection, 0, "missing section: "+SectionVersion.String(),
			WithField("kind", SectionVersion.String()))
	}

	for _, kind := range []SectionKind{SectionVersion, SectionWell, SectionCurve, SectionAsciiLogData} {
		if _, ok := p.sections[kind]; !ok {
			return p.fail(KindMissingSection, 0, "missing section: "+kind.String(),
				WithField("kind", kind.String()))
		}
	}

	if !validFirstCurve(p.curves) {
		got := ""
		if len(p.curves) > 0 {
			got = p.curves[0]
		}

		return p.fail(KindDisallowedFirstCurve, 0,
			fmt.Sprintf("first curve %q is not an allowed index curve", got),
			WithField("got", got), WithField("expected_one_of", allowedFirstCurves))
	}

	if err := p.sink.SectionEnd(SectionEnd{Kind: p.state}); err != nil {
		return err
	}

	return p.sink.End()
}

func (p *Parser) takeComments() []string {
	if len(p.pending) == 0 {
		return nil
	}

	c := p.pending
	p.pending = nil

	return c
}

func (p *Parser) fail(kind Kind, line int, msg string, opts ...ErrorOption) *Error {
	if line > 0 {
		opts = append(opts, WithLine(line))
	}

	return NewError(kind, msg, opts...)
}

func validFirstCurve(curves []string) bool {
	if len(curves) == 0 {
		return false
	}

	first := mnemonicFold.Normalize(strings.TrimSpace(curves[0]))
	for _, c := range allowedFirstCurves {
		if first == mnemonicFold.Normalize(c) {
			return true
		}
	}

	return false
}
