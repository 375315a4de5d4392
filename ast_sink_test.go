package las_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.wellcurve.dev/las"
)

func TestAstSinkFileBeforeParseFails(t *testing.T) {
	t.Parallel()

	sink := las.NewAstSink()

	_, err := sink.File()
	assert.Error(t, err)
}

func TestAstSinkCommentsAttachToFollowingEntry(t *testing.T) {
	t.Parallel()

	input := `~V
VERS. 2.0 :
WRAP. NO :
~W
STRT.M 0 :
STOP.M 1 :
STEP.M 1 :
NULL. -999.25 :
# province follows
PROV. AB :
UWI. 1 :
~C
DEPT.M :
~A
1
`

	file, err := parseAST(t, input)
	require.NoError(t, err)

	require.NotNil(t, file.Well.PROV)
	assert.Equal(t, []string{"province follows"}, file.Well.PROV.Comments)
}

func TestAstSinkOtherSectionRawLines(t *testing.T) {
	t.Parallel()

	input := `~V
VERS. 2.0 :
WRAP. NO :
~W
STRT.M 0 :
STOP.M 1 :
STEP.M 1 :
NULL. -999.25 :
PROV. AB :
UWI. 1 :
~C
DEPT.M :
~O
free text remarks about the well
more remarks
~A
1
`

	file, err := parseAST(t, input)
	require.NoError(t, err)

	require.NotNil(t, file.Other)
	require.Len(t, file.Other.Data, 2)
	assert.Equal(t, "free text remarks about the well", file.Other.Data[0].Text)
	assert.Equal(t, "more remarks", file.Other.Data[1].Text)
}
