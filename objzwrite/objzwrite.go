// Package objzwrite writes a Model back out as a minimal Wavefront OBJ. This
// is a supplemental round-trip convenience, kept separate from the core
// loader so that parsing has no write-path dependency.
package objzwrite

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/udhos/objz/internal/objerr"
	"github.com/udhos/objz/material"
)

// Model is the subset of objz.Model that writing needs, expressed
// structurally so this package has no import-cycle dependency on the root
// package.
type Model interface {
	GetFlags() uint32
	GetMaterials() []material.Material
	GetMeshes() []Mesh
	GetObjects() []Object
	GetIndices() IndexReader
	GetVertices() []byte
	GetStride() uint32
}

// Mesh and Object mirror the public shapes just enough to drive writing.
type Mesh struct {
	MaterialIndex int32
	FirstIndex    uint32
	NumIndices    uint32
}

type Object struct {
	Name                   string
	FirstMesh, NumMeshes   uint32
	FirstIndex, NumIndices uint32
}

// IndexReader abstracts over the 16/32-bit index buffer.
type IndexReader interface {
	Len() int
	At(i int) uint32
}

const (
	flagTexcoords = 1 << 0
	flagNormals   = 1 << 1
)

// ToFile writes m to the named file.
func ToFile(m Model, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return objerr.NewIO(objerr.IOOpen, filename, err)
	}
	defer f.Close()
	return ToWriter(m, f)
}

// ToWriter writes m as a Wavefront OBJ text stream: vertex data (one v/vt/vn
// triple per unique interleaved vertex, ungrouped since the Model no longer
// carries per-attribute indices), then one "g"/"usemtl"/"f..." run per mesh.
func ToWriter(m Model, w io.Writer) error {
	fmt.Fprintf(w, "# exported by objzwrite\n\n")

	flags := m.GetFlags()
	stride := m.GetStride()
	vertices := m.GetVertices()
	numVertices := 0
	if stride > 0 {
		numVertices = len(vertices) / int(stride)
	}

	for i := 0; i < numVertices; i++ {
		base := uint32(i) * stride
		px := readFloat(vertices, base+0)
		py := readFloat(vertices, base+4)
		pz := readFloat(vertices, base+8)
		fmt.Fprintf(w, "v %g %g %g\n", px, py, pz)
		if flags&flagTexcoords != 0 {
			tu := readFloat(vertices, base+12)
			tv := readFloat(vertices, base+16)
			fmt.Fprintf(w, "vt %g %g\n", tu, tv)
		}
		if flags&flagNormals != 0 {
			nx := readFloat(vertices, base+20)
			ny := readFloat(vertices, base+24)
			nz := readFloat(vertices, base+28)
			fmt.Fprintf(w, "vn %g %g %g\n", nx, ny, nz)
		}
	}

	materials := m.GetMaterials()
	indices := m.GetIndices()
	for _, o := range m.GetObjects() {
		if o.Name != "" {
			fmt.Fprintf(w, "o %s\n", o.Name)
		}
		for mi := o.FirstMesh; mi < o.FirstMesh+o.NumMeshes; mi++ {
			mesh := m.GetMeshes()[mi]
			if mesh.MaterialIndex >= 0 && int(mesh.MaterialIndex) < len(materials) {
				fmt.Fprintf(w, "usemtl %s\n", materials[mesh.MaterialIndex].Name)
			}
			if mesh.NumIndices%3 != 0 {
				return fmt.Errorf("objzwrite: mesh has %d indices, not a multiple of 3", mesh.NumIndices)
			}
			for s := mesh.FirstIndex; s < mesh.FirstIndex+mesh.NumIndices; s += 3 {
				i0, i1, i2 := indices.At(int(s))+1, indices.At(int(s+1))+1, indices.At(int(s+2))+1
				fmt.Fprint(w, "f")
				writeFaceVertex(w, flags, i0)
				writeFaceVertex(w, flags, i1)
				writeFaceVertex(w, flags, i2)
				fmt.Fprint(w, "\n")
			}
		}
	}
	return nil
}

func writeFaceVertex(w io.Writer, flags uint32, idx uint32) {
	hasT := flags&flagTexcoords != 0
	hasN := flags&flagNormals != 0
	switch {
	case hasT && hasN:
		fmt.Fprintf(w, " %d/%d/%d", idx, idx, idx)
	case hasT:
		fmt.Fprintf(w, " %d/%d", idx, idx)
	case hasN:
		fmt.Fprintf(w, " %d//%d", idx, idx)
	default:
		fmt.Fprintf(w, " %d", idx)
	}
}

func readFloat(buf []byte, off uint32) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
}
