package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udhos/objz/internal/objerr"
)

func TestImplicitObjectWithoutO(t *testing.T) {
	res, err := Parse([]byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), "", Options{})
	require.NoError(t, err)
	require.Len(t, res.Objects, 1)
	assert.Equal(t, "", res.Objects[0].Name)
	assert.Equal(t, uint32(1), res.Objects[0].NumFaces)
}

func TestNamedObjectGroupsSubsequentFaces(t *testing.T) {
	res, err := Parse([]byte("v 0 0 0\nv 1 0 0\nv 0 1 0\no box\nf 1 2 3\n"), "", Options{})
	require.NoError(t, err)
	require.Len(t, res.Objects, 1)
	assert.Equal(t, "box", res.Objects[0].Name)
	assert.Equal(t, uint32(1), res.Objects[0].NumFaces)
}

func TestFaceTooShortIsFatal(t *testing.T) {
	_, err := Parse([]byte("v 0 0 0\nv 1 0 0\nf 1 2\n"), "", Options{})
	require.Error(t, err)
	var pe *objerr.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, objerr.FaceTooShort, pe.Kind)
}

func TestMtllibMissingFileIsWarningNotError(t *testing.T) {
	res, err := Parse([]byte("mtllib nope.mtl\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), "", Options{})
	require.NoError(t, err)
	assert.Empty(t, res.Materials)
	require.NotEmpty(t, res.Warnings)
}

func TestUsemtlNotFoundWarnsAndUsesNoMaterial(t *testing.T) {
	res, err := Parse([]byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nusemtl ghost\nf 1 2 3\n"), "", Options{})
	require.NoError(t, err)
	require.NotEmpty(t, res.Warnings)
	require.Len(t, res.Faces, 1)
	assert.Equal(t, int32(-1), res.Faces[0].MaterialIndex)
}

func TestLoggerReceivesWarnings(t *testing.T) {
	var logged []string
	opts := Options{Logger: func(msg string) { logged = append(logged, msg) }}
	_, err := Parse([]byte("mtllib nope.mtl\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), "", opts)
	require.NoError(t, err)
	assert.NotEmpty(t, logged)
}

func TestVtVnSetFlags(t *testing.T) {
	res, err := Parse([]byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nvt 0 0\nvn 0 0 1\nf 1/1/1 2/1/1 3/1/1\n"), "", Options{})
	require.NoError(t, err)
	assert.NotZero(t, res.Flags&FlagTexcoords)
	assert.NotZero(t, res.Flags&FlagNormals)
}

func TestQuadIsTriangulatedIntoTwoFaces(t *testing.T) {
	res, err := Parse([]byte("v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n"), "", Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, len(res.Faces))
	assert.Equal(t, uint32(2), res.Objects[0].NumFaces)
	assert.Equal(t, 2, res.Stats.TrianglesEmitted)
}

func TestHomogeneousWDivision(t *testing.T) {
	res, err := Parse([]byte("v 2 4 6 2\n"), "", Options{AllowHomogeneousW: true})
	require.NoError(t, err)
	require.Len(t, res.Positions, 1)
	assert.Equal(t, [3]float32{1, 2, 3}, res.Positions[0])
}

func TestWLineIgnoredWhenHomogeneousWDisabled(t *testing.T) {
	res, err := Parse([]byte("v 2 4 6 2\n"), "", Options{})
	require.NoError(t, err)
	require.Len(t, res.Positions, 1)
	assert.Equal(t, [3]float32{2, 4, 6}, res.Positions[0])
}
