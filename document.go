package las

import "strconv"

// File is the typed result of a full parse: one document with six
// well-typed sections. Version, Well, Curve, and AsciiLogData are always
// present; Parameter and Other are optional.
type File struct {
	Parameter *ParameterInformation
	Other     *OtherInformation
	Version   VersionInformation
	Well      WellInformation
	Curve     CurveInformation
	Ascii     AsciiLogData

	// order records section names in emission order, i.e. parse order.
	// Parameter and Other may appear in either relative order; everything
	// else is fixed by the structural state machine.
	order []string
}

// sectionMeta carries the fields common to every typed section.
type sectionMeta struct {
	Header   string
	Comments []string
	Line     int
}

// VersionInformation is the "~V" section. It holds one VERS and one WRAP
// entry; everything else is Additional. When VERS or WRAP appears more than
// once, only the last occurrence is kept; repeats are not reported as errors.
type VersionInformation struct {
	sectionMeta
	VERS       Entry
	WRAP       Entry
	Additional []Entry
}

// Validate enforces that VERS and WRAP are both present.
func (v VersionInformation) Validate() error {
	var missing []string

	if v.VERS.Line.Mnemonic == "" {
		missing = append(missing, "VERS")
	}

	if v.WRAP.Line.Mnemonic == "" {
		missing = append(missing, "WRAP")
	}

	if len(missing) > 0 {
		return NewError(KindSectionMissingRequiredData,
			"Version Information section missing required data",
			WithLine(v.Line),
			WithField("section", "Version"),
			WithField("one_of", missing))
	}

	return nil
}

// WellInformation is the "~W" section.
type WellInformation struct {
	sectionMeta

	STRT, STOP, STEP, NULL Entry

	COMP, WELL, FLD, LOC *Entry
	PROV, CNTY, STAT, CTRY *Entry
	SRVC, DATE           *Entry
	UWI, API             *Entry

	Additional []Entry
}

// Validate enforces: STRT/STOP/STEP/NULL present with a value, STRT/STOP/STEP
// numeric, at least one location mnemonic present, at least one identity
// mnemonic present.
func (w WellInformation) Validate() error {
	for _, req := range []struct {
		mnem  string
		entry Entry
	}{
		{"STRT", w.STRT}, {"STOP", w.STOP}, {"STEP", w.STEP}, {"NULL", w.NULL},
	} {
		if req.entry.Line.Mnemonic == "" || !req.entry.Line.HasValue {
			return NewError(KindWellDataMissingRequiredValueForMnemonic,
				"Well Information missing required value",
				WithLine(w.Line),
				WithField("mnemonic", req.mnem))
		}
	}

	for _, req := range []struct {
		mnem  string
		entry Entry
	}{
		{"STRT", w.STRT}, {"STOP", w.STOP}, {"STEP", w.STEP},
	} {
		if !isNumeric(req.entry.Line.Value) {
			return NewError(KindInvalidWellValue,
				"Well Information value must be numeric",
				WithLine(w.Line),
				WithField("mnemonic", req.mnem),
				WithField("value", req.entry.Line.Value.String()))
		}
	}

	if w.PROV == nil && w.CNTY == nil && w.STAT == nil && w.CTRY == nil {
		return NewError(KindSectionMissingRequiredData,
			"Well Information missing location",
			WithLine(w.Line),
			WithField("section", "Well"),
			WithField("one_of", []string{"PROV", "CNTY", "STAT", "CTRY"}))
	}

	if w.UWI == nil && w.API == nil {
		return NewError(KindSectionMissingRequiredData,
			"Well Information missing identity",
			WithLine(w.Line),
			WithField("section", "Well"),
			WithField("one_of", []string{"UWI", "API"}))
	}

	return nil
}

func isNumeric(v Value) bool {
	if v.Kind == IntValue {
		return true
	}

	if v.Kind != TextValue {
		return false
	}

	_, err := strconv.ParseFloat(v.Text, 64)

	return err == nil
}

// String renders the value the way it would appear on a regenerated LAS
// line.
func (v Value) String() string {
	switch v.Kind {
	case IntValue:
		return strconv.FormatInt(v.Int, 10)
	case TextValue:
		return v.Text
	default:
		return ""
	}
}

// CurveInformation is the "~C" section. Order matters: it defines the ASCII
// column order.
type CurveInformation struct {
	sectionMeta
	Curves []Entry
}

// ParameterInformation is the optional "~P" section.
type ParameterInformation struct {
	sectionMeta
	Parameters []Entry
}

// OtherInformation is the optional "~O" section. Each raw text line becomes
// one record.
type OtherInformation struct {
	sectionMeta
	Data []OtherLine
}

// AsciiLogData is the "~A" section: the wide numeric table. Cell values
// remain as strings for exact round-trip; callers may re-parse them.
type AsciiLogData struct {
	sectionMeta
	Headers []string
	Rows    []AsciiRow
}
