package las_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.wellcurve.dev/las"
)

const minimalLAS = `~V
VERS. 2.0 : CWLS LAS version
WRAP. NO : One line per depth step
~W
STRT.M 100.0 : start depth
STOP.M 200.0 : stop depth
STEP.M 0.5 : step
NULL. -999.25 : null value
CTRY. US : country
UWI. 123456 : unique well id
~C
DEPT.M : depth
GR.GAPI : gamma ray
~A
100.0 10.5
100.5 11.0
`

func TestFileLASRoundTrip(t *testing.T) {
	t.Parallel()

	sink := las.NewAstSink()
	require.NoError(t, las.NewParser(strings.NewReader(minimalLAS), sink).Parse())

	file, err := sink.File()
	require.NoError(t, err)

	out, err := file.LAS()
	require.NoError(t, err)

	assert.Contains(t, out, "~V\n")
	assert.Contains(t, out, "VERS. 2.0 : CWLS LAS version")
	assert.Contains(t, out, "~A\n")
	assert.Contains(t, out, "100.0 10.5")

	sink2 := las.NewAstSink()
	require.NoError(t, las.NewParser(strings.NewReader(out), sink2).Parse())

	file2, err := sink2.File()
	require.NoError(t, err)

	assert.Equal(t, file.Ascii.Rows, file2.Ascii.Rows)
	assert.Equal(t, file.Curve.Curves[0].Line.Mnemonic, file2.Curve.Curves[0].Line.Mnemonic)
}

func TestFileLASFixedSectionOrder(t *testing.T) {
	t.Parallel()

	sink := las.NewAstSink()
	require.NoError(t, las.NewParser(strings.NewReader(minimalLAS), sink).Parse())

	file, err := sink.File()
	require.NoError(t, err)

	out, err := file.LAS()
	require.NoError(t, err)

	vIdx := strings.Index(out, "~V")
	wIdx := strings.Index(out, "~W")
	cIdx := strings.Index(out, "~C")
	aIdx := strings.Index(out, "~A")

	assert.True(t, vIdx < wIdx)
	assert.True(t, wIdx < cIdx)
	assert.True(t, cIdx < aIdx)
}

func TestFileLASOmitsDescriptionWhenAbsent(t *testing.T) {
	t.Parallel()

	src := strings.Replace(minimalLAS, "DEPT.M : depth", "DEPT.M 0", 1)

	sink := las.NewAstSink()
	require.NoError(t, las.NewParser(strings.NewReader(src), sink).Parse())

	file, err := sink.File()
	require.NoError(t, err)

	out, err := file.LAS()
	require.NoError(t, err)

	assert.Contains(t, out, "DEPT.M 0\n")
	assert.NotContains(t, out, "DEPT.M 0 :")
}
