package las

import (
	"encoding/json"
	"strconv"
)

// entryShape is the wire shape of one DataLine, shared by the JSON and YAML
// encoders (goccy/go-yaml honors the same struct tags as encoding/json when
// a "yaml" tag is present, so one struct serves both formats).
type entryShape struct {
	Unit        *string         `json:"unit"                 yaml:"unit"`
	Value       any             `json:"value"                yaml:"value"`
	Description *string         `json:"description"          yaml:"description"`
	Mnemonic    string          `json:"mnemonic"              yaml:"mnemonic"`
	Comments    []string        `json:"comments,omitempty"   yaml:"comments,omitempty"`
}

func valueRaw(v Value) json.RawMessage {
	switch v.Kind {
	case IntValue:
		return json.RawMessage(strconv.FormatInt(v.Int, 10))
	case TextValue:
		b, err := json.Marshal(v.Text)
		if err != nil {
			return json.RawMessage("null")
		}

		return b
	default:
		return json.RawMessage("null")
	}
}

func entryToShape(e Entry) entryShape {
	var unit, desc *string

	if e.Line.HasUnit {
		u := e.Line.Unit
		unit = &u
	}

	if e.Line.HasDesc {
		d := e.Line.Description
		desc = &d
	}

	return entryShape{
		Mnemonic:    e.Line.Mnemonic,
		Unit:        unit,
		Value:       valueRaw(e.Line.Value),
		Description: desc,
		Comments:    e.Comments,
	}
}

func entriesToShape(entries []Entry) []entryShape {
	if len(entries) == 0 {
		return nil
	}

	out := make([]entryShape, len(entries))
	for i, e := range entries {
		out[i] = entryToShape(e)
	}

	return out
}

func optEntryShape(e *Entry) *entryShape {
	if e == nil {
		return nil
	}

	s := entryToShape(*e)

	return &s
}

// renderedHeader reattaches the '~' stripped by the tokenizer.
func renderedHeader(h string) string {
	return "~" + h
}

type versionShape struct {
	VERS       entryShape   `json:"VERS"                 yaml:"VERS"`
	WRAP       entryShape   `json:"WRAP"                 yaml:"WRAP"`
	Additional []entryShape `json:"additional,omitempty" yaml:"additional,omitempty"`
	Comments   []string     `json:"comments,omitempty"   yaml:"comments,omitempty"`
	Header     string       `json:"header"                yaml:"header"`
}

func (v VersionInformation) shape() versionShape {
	return versionShape{
		VERS:       entryToShape(v.VERS),
		WRAP:       entryToShape(v.WRAP),
		Additional: entriesToShape(v.Additional),
		Comments:   v.Comments,
		Header:     renderedHeader(v.Header),
	}
}

type wellShape struct {
	STRT       entryShape   `json:"STRT"                 yaml:"STRT"`
	STOP       entryShape   `json:"STOP"                 yaml:"STOP"`
	STEP       entryShape   `json:"STEP"                 yaml:"STEP"`
	NULL       entryShape   `json:"NULL"                 yaml:"NULL"`
	COMP       *entryShape  `json:"COMP,omitempty"       yaml:"COMP,omitempty"`
	WELL       *entryShape  `json:"WELL,omitempty"       yaml:"WELL,omitempty"`
	FLD        *entryShape  `json:"FLD,omitempty"        yaml:"FLD,omitempty"`
	LOC        *entryShape  `json:"LOC,omitempty"        yaml:"LOC,omitempty"`
	PROV       *entryShape  `json:"PROV,omitempty"       yaml:"PROV,omitempty"`
	CNTY       *entryShape  `json:"CNTY,omitempty"       yaml:"CNTY,omitempty"`
	STAT       *entryShape  `json:"STAT,omitempty"       yaml:"STAT,omitempty"`
	CTRY       *entryShape  `json:"CTRY,omitempty"       yaml:"CTRY,omitempty"`
	SRVC       *entryShape  `json:"SRVC,omitempty"       yaml:"SRVC,omitempty"`
	DATE       *entryShape  `json:"DATE,omitempty"       yaml:"DATE,omitempty"`
	UWI        *entryShape  `json:"UWI,omitempty"        yaml:"UWI,omitempty"`
	API        *entryShape  `json:"API,omitempty"        yaml:"API,omitempty"`
	Additional []entryShape `json:"additional,omitempty" yaml:"additional,omitempty"`
	Comments   []string     `json:"comments,omitempty"   yaml:"comments,omitempty"`
	Header     string       `json:"header"                yaml:"header"`
}

func (w WellInformation) shape() wellShape {
	return wellShape{
		STRT: entryToShape(w.STRT), STOP: entryToShape(w.STOP),
		STEP: entryToShape(w.STEP), NULL: entryToShape(w.NULL),
		COMP: optEntryShape(w.COMP), WELL: optEntryShape(w.WELL),
		FLD: optEntryShape(w.FLD), LOC: optEntryShape(w.LOC),
		PROV: optEntryShape(w.PROV), CNTY: optEntryShape(w.CNTY),
		STAT: optEntryShape(w.STAT), CTRY: optEntryShape(w.CTRY),
		SRVC: optEntryShape(w.SRVC), DATE: optEntryShape(w.DATE),
		UWI: optEntryShape(w.UWI), API: optEntryShape(w.API),
		Additional: entriesToShape(w.Additional),
		Comments:   w.Comments,
		Header:     renderedHeader(w.Header),
	}
}

type curveShape struct {
	Curves   []entryShape `json:"curves"`
	Comments []string     `json:"comments,omitempty"`
	Header   string       `json:"header"`
}

func (c CurveInformation) shape() curveShape {
	return curveShape{
		Curves:   entriesToShape(c.Curves),
		Comments: c.Comments,
		Header:   renderedHeader(c.Header),
	}
}

type parameterShape struct {
	Parameters []entryShape `json:"parameters"`
	Comments   []string     `json:"comments,omitempty"`
	Header     string       `json:"header"`
}

func (p ParameterInformation) shape() parameterShape {
	return parameterShape{
		Parameters: entriesToShape(p.Parameters),
		Comments:   p.Comments,
		Header:     renderedHeader(p.Header),
	}
}

type otherLineShape struct {
	Text     string   `json:"text"`
	Comments []string `json:"comments,omitempty"`
}

type otherShape struct {
	Data     []otherLineShape `json:"data"`
	Comments []string         `json:"comments,omitempty"`
	Header   string           `json:"header"`
}

func (o OtherInformation) shape() otherShape {
	data := make([]otherLineShape, len(o.Data))
	for i, d := range o.Data {
		data[i] = otherLineShape{Text: d.Text, Comments: d.Comments}
	}

	return otherShape{Data: data, Comments: o.Comments, Header: renderedHeader(o.Header)}
}

type asciiShape struct {
	Headers  []string   `json:"headers"`
	Rows     [][]string `json:"rows"`
	Comments []string   `json:"comments,omitempty"`
	Header   string     `json:"header"`
}

func (a AsciiLogData) shape() asciiShape {
	rows := make([][]string, len(a.Rows))
	for i, r := range a.Rows {
		rows[i] = []string(r)
	}

	return asciiShape{Headers: a.Headers, Rows: rows, Comments: a.Comments, Header: renderedHeader(a.Header)}
}
