package objz

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tinyTriangleObj = `v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vn 0 0 1
f 1/1/1 2/1/1 3/1/1
`

func TestTinyTriangleRoundTrip(t *testing.T) {
	m, err := LoadReader(strings.NewReader(tinyTriangleObj), "", nil)
	require.NoError(t, err)

	assert.Len(t, m.Materials, 0)
	require.Len(t, m.Objects, 1)
	assert.Equal(t, "", m.Objects[0].Name)

	require.Len(t, m.Meshes, 1)
	assert.Equal(t, int32(-1), m.Meshes[0].MaterialIndex)
	assert.Equal(t, uint32(3), m.Meshes[0].NumIndices)

	assert.EqualValues(t, 3, m.NumVertices)
	require.Equal(t, 3, m.Indices.Len())
	assert.Equal(t, []uint32{0, 1, 2}, []uint32{m.Indices.At(0), m.Indices.At(1), m.Indices.At(2)})

	assert.True(t, m.Flags.Has(FlagTexcoords))
	assert.True(t, m.Flags.Has(FlagNormals))
	assert.False(t, m.Flags.Has(FlagIndex32))
}

const convexQuadObj = `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`

func TestQuadTriangulatesToTwoTriangles(t *testing.T) {
	m, err := LoadReader(strings.NewReader(convexQuadObj), "", nil)
	require.NoError(t, err)
	require.Len(t, m.Meshes, 1)
	assert.Equal(t, uint32(6), m.Meshes[0].NumIndices)

	seen := map[uint32]bool{}
	for i := 0; i < m.Indices.Len(); i++ {
		seen[m.Indices.At(i)] = true
	}
	assert.Len(t, seen, 4)
}

func TestNegativeIndexEquivalence(t *testing.T) {
	positive := `v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	negative := `v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	mp, err := LoadReader(strings.NewReader(positive), "", nil)
	require.NoError(t, err)
	mn, err := LoadReader(strings.NewReader(negative), "", nil)
	require.NoError(t, err)

	assert.Equal(t, mp.NumVertices, mn.NumVertices)
	assert.Equal(t, mp.Vertices, mn.Vertices)
	assert.Equal(t, mp.Indices, mn.Indices)
}

func TestIndexWidthAutoSelection(t *testing.T) {
	var b strings.Builder
	const n = 70000
	for i := 0; i < n; i++ {
		b.WriteString("v 0 0 0\n")
	}
	for i := 0; i < n; i++ {
		a := i + 1
		c := a + 1
		if c > n {
			c = 1
		}
		e := c + 1
		if e > n {
			e = 1
		}
		b.WriteString("f ")
		b.WriteString(strconv.Itoa(a))
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(c))
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(e))
		b.WriteByte('\n')
	}
	m, err := LoadReader(strings.NewReader(b.String()), "", nil)
	require.NoError(t, err)
	assert.True(t, m.Flags.Has(FlagIndex32))
	assert.NotNil(t, m.Indices.U32)
	assert.Nil(t, m.Indices.U16)
}

func TestSmallFileDefaultsTo16BitIndices(t *testing.T) {
	m, err := LoadReader(strings.NewReader(tinyTriangleObj), "", nil)
	require.NoError(t, err)
	assert.False(t, m.Flags.Has(FlagIndex32))
	assert.NotNil(t, m.Indices.U16)
	assert.Nil(t, m.Indices.U32)
}

func TestForceIndex32(t *testing.T) {
	m, err := LoadReader(strings.NewReader(tinyTriangleObj), "", &Config{IndexFormat: IndexFormatU32})
	require.NoError(t, err)
	assert.True(t, m.Flags.Has(FlagIndex32))
}

func TestErrorProvenance(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 41; i++ {
		b.WriteString("v 0 0 0\n")
	}
	b.WriteString("f /2/3 1 2\n")

	_, err := LoadReader(strings.NewReader(b.String()), "", nil)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrParseFace, pe.Kind)
	assert.Equal(t, 42, pe.Line)
}

func TestFaceTooShortFails(t *testing.T) {
	_, err := LoadReader(strings.NewReader("v 0 0 0\nv 1 0 0\nf 1 2\n"), "", nil)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrFaceTooShort, pe.Kind)
}

func TestImplicitObjectCreatedBeforeAnyO(t *testing.T) {
	m, err := LoadReader(strings.NewReader(tinyTriangleObj), "", nil)
	require.NoError(t, err)
	require.Len(t, m.Objects, 1)
	assert.Equal(t, "", m.Objects[0].Name)
}

func TestMissingMtllibIsSoftFailure(t *testing.T) {
	obj := "mtllib does-not-exist.mtl\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	m, err := LoadReader(strings.NewReader(obj), "", nil)
	require.NoError(t, err)
	assert.Empty(t, m.Materials)
	assert.NotEmpty(t, m.Warnings)
}
