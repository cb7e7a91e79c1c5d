// Package objz parses Wavefront OBJ geometry files (and their companion MTL
// material libraries) into a consolidated, render-ready Model: a
// deduplicated interleaved vertex buffer, a triangle index buffer, and
// meshes/objects batched by material.
//
// Example:
//
//	m, err := objz.Load("gopher.obj", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, o := range m.Objects {
//	    // snip
//	}
package objz

import "github.com/udhos/objz/material"

// Material re-exports material.Material so callers never need to import the
// material package directly for the common case.
type Material = material.Material

// Mesh is a contiguous run of triangle indices sharing one object and one
// material. MaterialIndex is -1 when the mesh has no material.
type Mesh struct {
	MaterialIndex int32
	FirstIndex    uint32
	NumIndices    uint32
}

// Object is a named grouping of meshes. First*/Num* give a per-object slice
// into the Model's global index and vertex arrays.
type Object struct {
	Name                                              string
	FirstMesh, NumMeshes                              uint32
	FirstIndex, NumIndices, FirstVertex, NumVertices uint32
}

// Flags summarizes properties of the loaded Model.
type Flags uint32

const (
	// FlagTexcoords is set iff any "vt" line was read.
	FlagTexcoords Flags = 1 << iota
	// FlagNormals is set iff any "vn" line was read.
	FlagNormals
	// FlagIndex32 is set iff the index buffer is 32-bit.
	FlagIndex32
)

// Has reports whether all bits in want are set.
func (f Flags) Has(want Flags) bool {
	return f&want == want
}

// IndexBuffer holds the model's triangle indices at whichever width was
// selected: exactly one of U16/U32 is non-nil, matching Flags&FlagIndex32.
type IndexBuffer struct {
	U16 []uint16
	U32 []uint32
}

// Len returns the number of indices, regardless of width.
func (b IndexBuffer) Len() int {
	if b.U32 != nil {
		return len(b.U32)
	}
	return len(b.U16)
}

// At returns the index at i as a uint32, regardless of width.
func (b IndexBuffer) At(i int) uint32 {
	if b.U32 != nil {
		return b.U32[i]
	}
	return uint32(b.U16[i])
}

// Stats carries the diagnostic counters the reference parser computes.
type Stats struct {
	Lines            int
	VertexLines      int
	TexcoordLines    int
	NormalLines      int
	FaceLines        int
	TrianglesEmitted int
}

// Model is the fully consolidated result of a Load.
type Model struct {
	Flags     Flags
	Materials []Material
	Meshes    []Mesh
	Objects   []Object
	Indices   IndexBuffer
	// Vertices holds the interleaved vertex buffer as opaque bytes; Stride
	// is its per-vertex byte size. With the default Config (nil
	// VertexLayout) the layout is (pos[3], texcoord[2], normal[3]) as
	// little-endian float32s.
	Vertices    []byte
	Stride      uint32
	NumVertices uint32

	// Warnings carries every non-fatal tolerance encountered (unknown
	// usemtl target, missing mtllib, ...). Never nil-checked by callers
	// who don't care; always safe to range over.
	Warnings []string
	Stats    Stats
}
