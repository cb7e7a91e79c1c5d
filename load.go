package objz

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/udhos/objz/internal/consolidate"
	"github.com/udhos/objz/internal/objerr"
	"github.com/udhos/objz/internal/parse"
)

// Load reads and parses the OBJ file at path, resolving any mtllib
// reference relative to path's directory, and returns the consolidated
// Model. A nil cfg behaves as &Config{}.
func Load(path string, cfg *Config) (*Model, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		kind := objerr.IORead
		if os.IsNotExist(err) {
			kind = objerr.IOOpen
		}
		return nil, objerr.NewIO(kind, path, err)
	}
	if len(buf) == 0 {
		return nil, objerr.NewIO(objerr.IORead, path, nil)
	}
	return build(buf, filepath.Dir(path), cfg)
}

// LoadReader parses OBJ data from r. baseDir resolves any mtllib reference
// (see material.ResolvePath); pass "" if the OBJ has no meaningful
// directory context. This is the core entry point for callers who already
// have the bytes in memory or are not reading from the local filesystem;
// Load reads the file with os.ReadFile and then takes the same parsing path.
func LoadReader(r io.Reader, baseDir string, cfg *Config) (*Model, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, objerr.NewIO(objerr.IORead, baseDir, err)
	}
	return build(buf.Bytes(), baseDir, cfg)
}

func build(buf []byte, baseDir string, cfg *Config) (*Model, error) {
	cfg = cfg.orDefault()

	res, err := parse.Parse(buf, baseDir, parse.Options{
		AllowHomogeneousW: cfg.AllowHomogeneousW,
		Logger:            cfg.Logger,
	})
	if err != nil {
		return nil, err
	}

	copts := consolidate.Options{ForceIndex32: cfg.IndexFormat == IndexFormatU32}
	if cfg.VertexLayout != nil {
		copts.VertexLayout = &consolidate.VertexLayout{
			Stride:         cfg.VertexLayout.Stride,
			PositionOffset: cfg.VertexLayout.PositionOffset,
			TexcoordOffset: cfg.VertexLayout.TexcoordOffset,
			NormalOffset:   cfg.VertexLayout.NormalOffset,
		}
	}
	cr := consolidate.Build(res, copts)

	model := &Model{
		Materials:   res.Materials,
		Vertices:    cr.Vertices,
		Stride:      cr.Stride,
		NumVertices: cr.NumVertices,
		Warnings:    res.Warnings,
		Stats: Stats{
			Lines:            res.Stats.Lines,
			VertexLines:      res.Stats.VertexLines,
			TexcoordLines:    res.Stats.TexcoordLines,
			NormalLines:      res.Stats.NormalLines,
			FaceLines:        res.Stats.FaceLines,
			TrianglesEmitted: res.Stats.TrianglesEmitted,
		},
	}

	if res.Flags&parse.FlagTexcoords != 0 {
		model.Flags |= FlagTexcoords
	}
	if res.Flags&parse.FlagNormals != 0 {
		model.Flags |= FlagNormals
	}
	if cr.IndexWidth == 32 {
		model.Flags |= FlagIndex32
		model.Indices.U32 = cr.Indices32
	} else {
		model.Indices.U16 = cr.Indices16
	}

	model.Meshes = make([]Mesh, len(cr.Meshes))
	for i, m := range cr.Meshes {
		model.Meshes[i] = Mesh{MaterialIndex: m.MaterialIndex, FirstIndex: m.FirstIndex, NumIndices: m.NumIndices}
	}
	model.Objects = make([]Object, len(cr.Objects))
	for i, o := range cr.Objects {
		model.Objects[i] = Object{
			Name:        o.Name,
			FirstMesh:   o.FirstMesh,
			NumMeshes:   o.NumMeshes,
			FirstIndex:  o.FirstIndex,
			NumIndices:  o.NumIndices,
			FirstVertex: o.FirstVertex,
			NumVertices: o.NumVertices,
		}
	}

	return model, nil
}
