// Package material parses Wavefront MTL material libraries.
package material

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/udhos/objz/internal/lexer"
	"github.com/udhos/objz/internal/objerr"
)

// Material is a fixed-shape material record. Missing fields default to
// their zero value.
type Material struct {
	Name string

	Ambient  [3]float32 // Ka
	Diffuse  [3]float32 // Kd
	Emission [3]float32 // Ke
	Specular [3]float32 // Ks

	SpecularExponent float32 // Ns
	Opacity          float32 // d
	OpticalDensity   float32 // Ni
	Illum            int     // illum

	AmbientTexture          string // map_Ka
	BumpTexture             string // map_Bump
	DiffuseTexture          string // map_Kd
	SpecularTexture         string // map_Ks
	SpecularExponentTexture string // map_Ns
	OpacityTexture          string // map_d
}

// ResolvePath resolves a mtllib filename against the base directory of the
// OBJ file that referenced it, the way the reference loader does: split the
// OBJ path on its last separator and join the MTL name to that directory.
// An empty baseDir means the OBJ had no directory component, so the MTL
// name is used as-is.
func ResolvePath(baseDir, mtlName string) string {
	if baseDir == "" || baseDir == "." {
		return mtlName
	}
	return filepath.Join(baseDir, mtlName)
}

// LoadFile reads and parses the material library at path. A failure to open
// the file is reported distinctly (via objerr.IOOpen) so callers can treat
// it as the soft, non-fatal tolerance the OBJ loader wants; a syntax error
// once the file is open is a hard failure.
func LoadFile(path string) ([]Material, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, objerr.NewIO(objerr.IOOpen, path, err)
	}
	defer f.Close()
	buf, err := io.ReadAll(f)
	if err != nil {
		return nil, objerr.NewIO(objerr.IORead, path, err)
	}
	return Parse(buf)
}

// Parse parses material library text already read into memory.
func Parse(buf []byte) ([]Material, error) {
	lx := lexer.New(buf)
	var materials []Material
	var cur Material
	for {
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
			// comment: skip remainder of line
		case strings.EqualFold(tok.Text, "newmtl"):
			name := lx.Next(false)
			if name.Empty() {
				return nil, objerr.NewNamed(name.Line, name.Col, "newmtl")
			}
			if cur.Name != "" {
				materials = append(materials, cur)
			}
			cur = Material{Name: name.Text}
		case strings.EqualFold(tok.Text, "d"):
			v, err := lx.ParseFloats(1)
			if err != nil {
				return nil, err
			}
			cur.Opacity = v[0]
		case strings.EqualFold(tok.Text, "illum"):
			v, err := lx.ParseInt()
			if err != nil {
				return nil, err
			}
			cur.Illum = v
		case strings.EqualFold(tok.Text, "Ka"):
			v, err := lx.ParseFloats(3)
			if err != nil {
				return nil, err
			}
			cur.Ambient = [3]float32{v[0], v[1], v[2]}
		case strings.EqualFold(tok.Text, "Kd"):
			v, err := lx.ParseFloats(3)
			if err != nil {
				return nil, err
			}
			cur.Diffuse = [3]float32{v[0], v[1], v[2]}
		case strings.EqualFold(tok.Text, "Ke"):
			v, err := lx.ParseFloats(3)
			if err != nil {
				return nil, err
			}
			cur.Emission = [3]float32{v[0], v[1], v[2]}
		case strings.EqualFold(tok.Text, "Ks"):
			v, err := lx.ParseFloats(3)
			if err != nil {
				return nil, err
			}
			cur.Specular = [3]float32{v[0], v[1], v[2]}
		case strings.EqualFold(tok.Text, "Ni"):
			v, err := lx.ParseFloats(1)
			if err != nil {
				return nil, err
			}
			cur.OpticalDensity = v[0]
		case strings.EqualFold(tok.Text, "Ns"):
			v, err := lx.ParseFloats(1)
			if err != nil {
				return nil, err
			}
			cur.SpecularExponent = v[0]
		case strings.EqualFold(tok.Text, "map_Bump"), strings.EqualFold(tok.Text, "bump"):
			name := lx.Next(true)
			if name.Empty() {
				return nil, objerr.NewNamed(name.Line, name.Col, "map_Bump")
			}
			cur.BumpTexture = name.Text
		case strings.EqualFold(tok.Text, "map_Ka"):
			name := lx.Next(true)
			if name.Empty() {
				return nil, objerr.NewNamed(name.Line, name.Col, "map_Ka")
			}
			cur.AmbientTexture = name.Text
		case strings.EqualFold(tok.Text, "map_Kd"):
			name := lx.Next(true)
			if name.Empty() {
				return nil, objerr.NewNamed(name.Line, name.Col, "map_Kd")
			}
			cur.DiffuseTexture = name.Text
		case strings.EqualFold(tok.Text, "map_Ks"):
			name := lx.Next(true)
			if name.Empty() {
				return nil, objerr.NewNamed(name.Line, name.Col, "map_Ks")
			}
			cur.SpecularTexture = name.Text
		case strings.EqualFold(tok.Text, "map_Ns"):
			name := lx.Next(true)
			if name.Empty() {
				return nil, objerr.NewNamed(name.Line, name.Col, "map_Ns")
			}
			cur.SpecularExponentTexture = name.Text
		case strings.EqualFold(tok.Text, "map_d"):
			name := lx.Next(true)
			if name.Empty() {
				return nil, objerr.NewNamed(name.Line, name.Col, "map_d")
			}
			cur.OpacityTexture = name.Text
		default:
			// unknown keyword: tolerated, skip remainder of line
		}
		lx.SkipLine()
	}
	if cur.Name != "" {
		materials = append(materials, cur)
	}
	return materials, nil
}

// FindByName returns the index of the material whose name matches (case
// insensitively), or -1 if there is none.
func FindByName(materials []Material, name string) int {
	for i := range materials {
		if strings.EqualFold(materials[i].Name, name) {
			return i
		}
	}
	return -1
}
