package objz

import (
	"io"

	"github.com/udhos/objz/objzwrite"
)

// GetFlags, GetMaterials, ... implement objzwrite.Model so a *Model can be
// passed straight to objzwrite.ToWriter/ToFile without an adapter at the
// call site.
func (m *Model) GetFlags() uint32            { return uint32(m.Flags) }
func (m *Model) GetMaterials() []Material    { return m.Materials }
func (m *Model) GetStride() uint32           { return m.Stride }
func (m *Model) GetVertices() []byte         { return m.Vertices }
func (m *Model) GetIndices() objzwrite.IndexReader { return m.Indices }

func (m *Model) GetMeshes() []objzwrite.Mesh {
	out := make([]objzwrite.Mesh, len(m.Meshes))
	for i, mm := range m.Meshes {
		out[i] = objzwrite.Mesh{MaterialIndex: mm.MaterialIndex, FirstIndex: mm.FirstIndex, NumIndices: mm.NumIndices}
	}
	return out
}

func (m *Model) GetObjects() []objzwrite.Object {
	out := make([]objzwrite.Object, len(m.Objects))
	for i, o := range m.Objects {
		out[i] = objzwrite.Object{Name: o.Name, FirstMesh: o.FirstMesh, NumMeshes: o.NumMeshes, FirstIndex: o.FirstIndex, NumIndices: o.NumIndices}
	}
	return out
}

// WriteOBJ writes m to w as a minimal Wavefront OBJ. See objzwrite for
// details.
func (m *Model) WriteOBJ(w io.Writer) error {
	return objzwrite.ToWriter(m, w)
}

// WriteOBJFile writes m to the named file.
func (m *Model) WriteOBJFile(path string) error {
	return objzwrite.ToFile(m, path)
}
