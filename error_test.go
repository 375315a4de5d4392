package las_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.wellcurve.dev/las"
)

func TestErrorKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "DuplicateSection", las.KindDuplicateSection.String())
	assert.Equal(t, "UnknownSectionKind", las.KindUnknownSectionKind.String())
}

func TestNewErrorMessage(t *testing.T) {
	t.Parallel()

	err := las.NewError(las.KindMissingSection, "missing ~C section")

	assert.Equal(t, "missing ~C section", err.Error())
	assert.Equal(t, las.KindMissingSection, err.Kind)
}

func TestNewErrorWithLine(t *testing.T) {
	t.Parallel()

	err := las.NewError(las.KindDuplicateSection, "duplicate ~W", las.WithLine(12))

	assert.Equal(t, "line 12: duplicate ~W", err.Error())
	assert.Equal(t, 12, err.Line)
}

func TestNewErrorWithSourceLines(t *testing.T) {
	t.Parallel()

	err := las.NewError(las.KindMissingDelimiter, "bad line", las.WithLine(3), las.WithSourceLines("STRT 100.0"))

	assert.Equal(t, "line 3: bad line\n  | STRT 100.0", err.Error())
}

func TestNewErrorWithField(t *testing.T) {
	t.Parallel()

	err := las.NewError(las.KindAsciiColumnsMismatch, "column mismatch",
		las.WithField("expected", 3), las.WithField("got", 2))

	assert.Equal(t, 3, err.Fields["expected"])
	assert.Equal(t, 2, err.Fields["got"])
}

func TestNewErrorFromWraps(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")
	err := las.NewErrorFrom(las.KindIO, cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "disk full", err.Error())
}

func TestErrorIsMatchesByKind(t *testing.T) {
	t.Parallel()

	err := las.NewError(las.KindDuplicateSection, "duplicate ~V", las.WithLine(1))
	target := &las.Error{Kind: las.KindDuplicateSection}

	assert.True(t, errors.Is(err, target))
	assert.False(t, errors.Is(err, &las.Error{Kind: las.KindMissingSection}))
}

func TestErrorIsFalseForNonLASError(t *testing.T) {
	t.Parallel()

	err := las.NewError(las.KindIO, "boom")
	assert.False(t, errors.Is(err, errors.New("boom")))
}
