// Package consolidate turns the parser's temporary per-object face lists
// into the final Model data: meshes batched by material, final 16- or
// 32-bit indices, and an interleaved (or caller-specified) vertex layout.
package consolidate

import (
	"math"

	"github.com/udhos/objz/internal/dedupe"
	"github.com/udhos/objz/internal/parse"
)

// Mesh mirrors the public objz.Mesh shape without importing it (avoids an
// import cycle; the root package's build copies these into its own types).
type Mesh struct {
	MaterialIndex int32
	FirstIndex    uint32
	NumIndices    uint32
}

// Object mirrors the public objz.Object shape.
type Object struct {
	Name                                              string
	FirstMesh, NumMeshes                              uint32
	FirstIndex, NumIndices, FirstVertex, NumVertices uint32
}

// VertexLayout requests a custom interleaved vertex buffer; OffsetOmit
// skips the corresponding attribute. A nil *VertexLayout requests the
// internal (pos, texcoord, normal) layout as-is.
type VertexLayout struct {
	Stride                                       uint32
	PositionOffset, TexcoordOffset, NormalOffset uint32
}

// OffsetOmit means "do not write this attribute".
const OffsetOmit = math.MaxUint32

// Result is the fully consolidated output, still in loosely-typed form;
// the root package's build assembles the public Model from it.
type Result struct {
	Meshes      []Mesh
	Objects     []Object
	IndexWidth  int // 16 or 32
	Indices16   []uint16
	Indices32   []uint32
	Vertices    []byte
	Stride      uint32
	NumVertices uint32
}

// Options controls index width and vertex layout selection.
type Options struct {
	ForceIndex32 bool
	VertexLayout *VertexLayout // nil == internal layout
}

// Build consolidates parsed objects/faces/attributes into final meshes,
// objects, indices and vertices, following the ordering guarantees: objects
// in declaration order, meshes per object in ascending material index with
// -1 first, indices in emission order, vertices in first-insertion order.
func Build(res *parse.Result, opts Options) *Result {
	vmap := dedupe.New(res.Positions, res.Texcoords, res.Normals)

	var indices []uint32
	var meshes []Mesh
	var objects []Object

	numMaterials := len(res.Materials)

	for objIdx := range res.Objects {
		tempObj := res.Objects[objIdx]
		obj := Object{Name: tempObj.Name}
		obj.FirstMesh = uint32(len(meshes))

		for material := -1; material < numMaterials; material++ {
			mesh := Mesh{MaterialIndex: int32(material), FirstIndex: uint32(len(indices))}
			for f := uint32(0); f < tempObj.NumFaces; f++ {
				face := res.Faces[tempObj.FirstFace+f]
				if face.MaterialIndex != int32(material) {
					continue
				}
				for k := 0; k < 3; k++ {
					tr := face.Indices[k]
					idx := vmap.Insert(uint32(objIdx), tr.V, tr.VT, tr.VN)
					indices = append(indices, idx)
					mesh.NumIndices++
				}
			}
			if mesh.NumIndices > 0 {
				meshes = append(meshes, mesh)
				obj.NumMeshes++
			}
		}

		if len(objects) > 0 {
			prev := objects[len(objects)-1]
			obj.FirstIndex = prev.FirstIndex + prev.NumIndices
			obj.FirstVertex = prev.FirstVertex + prev.NumVertices
		}
		obj.NumIndices = uint32(len(indices)) - obj.FirstIndex
		obj.NumVertices = uint32(len(vmap.Vertices)) - obj.FirstVertex
		objects = append(objects, obj)
	}

	result := &Result{Meshes: meshes, Objects: objects, NumVertices: uint32(len(vmap.Vertices))}

	needs32 := opts.ForceIndex32
	for _, idx := range indices {
		if idx > math.MaxUint16 {
			needs32 = true
			break
		}
	}
	if needs32 {
		result.IndexWidth = 32
		result.Indices32 = indices
	} else {
		result.IndexWidth = 16
		result.Indices16 = make([]uint16, len(indices))
		for i, idx := range indices {
			result.Indices16[i] = uint16(idx)
		}
	}

	if opts.VertexLayout == nil {
		result.Stride = 8 * 4 // 3 pos + 2 tc + 3 normal, 4-byte floats
		result.Vertices = interleaveDefault(vmap.Vertices)
	} else {
		layout := opts.VertexLayout
		result.Stride = layout.Stride
		result.Vertices = interleaveCustom(vmap.Vertices, layout)
	}

	return result
}
