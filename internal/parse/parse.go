// Package parse drives the lexer over a whole OBJ buffer, dispatching on
// line keywords and accumulating the temporary attribute/face/object arrays
// that the consolidator later turns into a Model.
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/udhos/objz/internal/lexer"
	"github.com/udhos/objz/internal/objerr"
	"github.com/udhos/objz/internal/triangulate"
	"github.com/udhos/objz/material"
)

// IndexTriplet is a face corner's absolute, 0-based attribute reference.
// lexer.Omitted marks a missing texcoord/normal.
type IndexTriplet struct {
	V, VT, VN uint32
}

// TempFace is a single triangle awaiting consolidation into a mesh.
type TempFace struct {
	MaterialIndex int32 // -1 == no material
	Indices       [3]IndexTriplet
}

// TempObject groups a contiguous run of Faces under a declared (or
// implicit, empty-named) object name.
type TempObject struct {
	Name              string
	FirstFace, NumFaces uint32
}

// Stats mirrors the diagnostic counters the reference parser logs.
type Stats struct {
	Lines            int
	VertexLines      int
	TexcoordLines    int
	NormalLines      int
	FaceLines        int
	TrianglesEmitted int
}

const (
	FlagTexcoords uint32 = 1 << 0
	FlagNormals   uint32 = 1 << 1
)

// Options configures parsing behavior beyond the OBJ/MTL grammar itself.
type Options struct {
	// AllowHomogeneousW makes "v" lines with a 4th (w) component divide
	// x/y/z by w. Off by default, in which case only the first 3
	// components are read and anything after them is ignored.
	AllowHomogeneousW bool
	// Logger, if non-nil, is called with every non-fatal warning as it is
	// produced, in addition to it being collected into Result.Warnings.
	Logger func(string)
}

// Result holds everything the consolidator needs.
type Result struct {
	Positions [][3]float32
	Texcoords [][2]float32
	Normals   [][3]float32
	Materials []material.Material
	Objects   []TempObject
	Faces     []TempFace
	Flags     uint32
	Warnings  []string
	Stats     Stats
}


// Parse runs the full OBJ grammar over buf. baseDir resolves any mtllib
// reference (see material.ResolvePath); opts.Logger may be nil.
func Parse(buf []byte, baseDir string, opts Options) (*Result, error) {
	res := &Result{}
	lx := lexer.New(buf)

	warn := func(format string, args ...any) {
		msg := fmt.Sprintf(format, args...)
		res.Warnings = append(res.Warnings, msg)
		if opts.Logger != nil {
			opts.Logger(msg)
		}
	}

	currentMaterialIndex := int32(-1)

	for {
		res.Stats.Lines++
		tok := lx.Next(false)
		if tok.Empty() {
			if lx.IsEOF() {
				break
			}
			lx.SkipLine()
			continue
		}

		switch {
		case tok.Text[0] == '#':
			// comment

		case strings.EqualFold(tok.Text, "v"):
			res.Stats.VertexLines++
			v, err := lx.ParseFloats(3)
			if err != nil {
				return nil, err
			}
			if opts.AllowHomogeneousW {
				if wtok := lx.Next(false); !wtok.Empty() {
					w64, err := strconv.ParseFloat(wtok.Text, 32)
					if err != nil {
						return nil, objerr.New(objerr.ParseFloat, wtok.Line, wtok.Col)
					}
					if w := float32(w64); w != 0 && w != 1 {
						v[0], v[1], v[2] = v[0]/w, v[1]/w, v[2]/w
					}
				}
			}
			res.Positions = append(res.Positions, [3]float32{v[0], v[1], v[2]})

		case strings.EqualFold(tok.Text, "vt"):
			res.Stats.TexcoordLines++
			v, err := lx.ParseFloats(2)
			if err != nil {
				return nil, err
			}
			res.Texcoords = append(res.Texcoords, [2]float32{v[0], v[1]})
			res.Flags |= FlagTexcoords

		case strings.EqualFold(tok.Text, "vn"):
			res.Stats.NormalLines++
			v, err := lx.ParseFloats(3)
			if err != nil {
				return nil, err
			}
			res.Normals = append(res.Normals, [3]float32{v[0], v[1], v[2]})
			res.Flags |= FlagNormals

		case strings.EqualFold(tok.Text, "mtllib"):
			name := lx.Next(true)
			if name.Empty() {
				return nil, objerr.NewNamed(name.Line, name.Col, "mtllib")
			}
			path := material.ResolvePath(baseDir, strings.TrimSpace(name.Text))
			mats, err := material.LoadFile(path)
			if err != nil {
				var pe *objerr.ParseError
				if errors.As(err, &pe) && pe.Kind == objerr.IOOpen {
					warn("mtllib '%s' could not be opened, continuing without its materials", path)
				} else {
					return nil, err
				}
			} else {
				res.Materials = append(res.Materials, mats...)
			}

		case strings.EqualFold(tok.Text, "o"):
			name := lx.Next(false)
			if name.Empty() {
				return nil, objerr.NewNamed(name.Line, name.Col, "o")
			}
			res.Objects = append(res.Objects, TempObject{
				Name:      name.Text,
				FirstFace: uint32(len(res.Faces)),
			})

		case strings.EqualFold(tok.Text, "usemtl"):
			name := lx.Next(false)
			if name.Empty() {
				return nil, objerr.NewNamed(name.Line, name.Col, "usemtl")
			}
			idx := material.FindByName(res.Materials, name.Text)
			if idx < 0 {
				warn("usemtl '%s' not found, using no material", name.Text)
			}
			currentMaterialIndex = int32(idx)

		case strings.EqualFold(tok.Text, "f"):
			res.Stats.FaceLines++
			if len(res.Objects) == 0 {
				res.Objects = append(res.Objects, TempObject{})
			}
			obj := &res.Objects[len(res.Objects)-1]

			var triplets []lexer.Triplet
			for {
				ttok := lx.Next(false)
				if ttok.Empty() {
					break
				}
				tr, err := lexer.ParseTriplet(ttok)
				if err != nil {
					return nil, objerr.New(objerr.ParseFace, ttok.Line, ttok.Col)
				}
				triplets = append(triplets, tr)
			}
			if len(triplets) < 3 {
				return nil, objerr.New(objerr.FaceTooShort, tok.Line, tok.Col)
			}

			corners := make([]IndexTriplet, len(triplets))
			for i, tr := range triplets {
				corners[i] = IndexTriplet{
					V:  lexer.Normalize(tr.V, len(res.Positions)),
					VT: lexer.Normalize(tr.VT, len(res.Texcoords)),
					VN: lexer.Normalize(tr.VN, len(res.Normals)),
				}
			}

			before := len(res.Faces)
			if len(corners) == 3 {
				res.Faces = append(res.Faces, TempFace{
					MaterialIndex: currentMaterialIndex,
					Indices:       [3]IndexTriplet{corners[0], corners[1], corners[2]},
				})
			} else {
				poly := make([]triangulate.Corner[IndexTriplet], len(corners))
				for i, c := range corners {
					poly[i] = triangulate.Corner[IndexTriplet]{
						Payload: c,
						Pos:     res.Positions[c.V],
					}
				}
				triangulate.Triangulate(poly, func(a, b, c IndexTriplet) {
					res.Faces = append(res.Faces, TempFace{
						MaterialIndex: currentMaterialIndex,
						Indices:       [3]IndexTriplet{a, b, c},
					})
				})
			}
			emitted := len(res.Faces) - before
			obj.NumFaces += uint32(emitted)
			res.Stats.TrianglesEmitted += emitted

		default:
			// unknown keyword: tolerated
		}

		lx.SkipLine()
	}

	return res, nil
}
