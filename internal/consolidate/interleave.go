package consolidate

import (
	"encoding/binary"
	"math"

	"github.com/udhos/objz/internal/dedupe"
)

func putFloat32(dst []byte, off uint32, v float32) {
	binary.LittleEndian.PutUint32(dst[off:], math.Float32bits(v))
}

// interleaveDefault packs the deduper's vertices into the fixed
// (pos[3], texcoord[2], normal[3]) layout, 4-byte little-endian floats.
func interleaveDefault(vertices []dedupe.Vertex) []byte {
	const stride = 8 * 4
	buf := make([]byte, len(vertices)*stride)
	for i, v := range vertices {
		base := uint32(i * stride)
		putFloat32(buf, base+0, v.Pos[0])
		putFloat32(buf, base+4, v.Pos[1])
		putFloat32(buf, base+8, v.Pos[2])
		putFloat32(buf, base+12, v.Texcoord[0])
		putFloat32(buf, base+16, v.Texcoord[1])
		putFloat32(buf, base+20, v.Normal[0])
		putFloat32(buf, base+24, v.Normal[1])
		putFloat32(buf, base+28, v.Normal[2])
	}
	return buf
}

// interleaveCustom packs vertices into a caller-requested stride, skipping
// any attribute whose offset is OffsetOmit.
func interleaveCustom(vertices []dedupe.Vertex, layout *VertexLayout) []byte {
	buf := make([]byte, uint32(len(vertices))*layout.Stride)
	for i, v := range vertices {
		base := uint32(i) * layout.Stride
		if layout.PositionOffset != OffsetOmit {
			off := base + layout.PositionOffset
			putFloat32(buf, off+0, v.Pos[0])
			putFloat32(buf, off+4, v.Pos[1])
			putFloat32(buf, off+8, v.Pos[2])
		}
		if layout.TexcoordOffset != OffsetOmit {
			off := base + layout.TexcoordOffset
			putFloat32(buf, off+0, v.Texcoord[0])
			putFloat32(buf, off+4, v.Texcoord[1])
		}
		if layout.NormalOffset != OffsetOmit {
			off := base + layout.NormalOffset
			putFloat32(buf, off+0, v.Normal[0])
			putFloat32(buf, off+4, v.Normal[1])
			putFloat32(buf, off+8, v.Normal[2])
		}
	}
	return buf
}
