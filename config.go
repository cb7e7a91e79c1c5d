package objz

import "math"

// IndexFormat selects the width of the output index buffer.
type IndexFormat int

const (
	// IndexFormatAuto narrows to 16-bit indices unless any emitted index
	// is >= 65536, in which case 32-bit is used automatically. Default.
	IndexFormatAuto IndexFormat = iota
	// IndexFormatU32 forces 32-bit indices unconditionally.
	IndexFormatU32
)

// OffsetOmit as a VertexLayout field value means "do not write this
// attribute into the interleaved buffer".
const OffsetOmit = math.MaxUint32

// VertexLayout requests a custom interleaved vertex format in place of the
// default (pos[3], texcoord[2], normal[3]) layout.
type VertexLayout struct {
	Stride                                        uint32
	PositionOffset, TexcoordOffset, NormalOffset uint32
}

// Config controls a single Load call. The zero value (or a nil *Config)
// behaves as IndexFormatAuto with the default vertex layout, the same
// convenience gwob gives callers with an empty ObjParserOptions{}.
type Config struct {
	IndexFormat  IndexFormat
	VertexLayout *VertexLayout // nil == default internal layout

	// AllowHomogeneousW makes "v" lines that carry a 4th (homogeneous w)
	// component divide x/y/z by w; 3-component lines are read as usual.
	// Off by default: only the first 3 components of a "v" line are read
	// and anything after them is ignored.
	AllowHomogeneousW bool

	// Logger, if set, receives every non-fatal warning as it happens, in
	// addition to it being collected into Model.Warnings.
	Logger func(string)
}

func (c *Config) orDefault() *Config {
	if c == nil {
		return &Config{}
	}
	return c
}
