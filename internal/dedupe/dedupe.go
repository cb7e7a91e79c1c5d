// Package dedupe deduplicates per-attribute (position, texcoord, normal)
// index triplets into unique interleaved vertices, keyed additionally by
// object id so that vertices are never shared across objects.
//
// The reference implementation (objzero) hand-rolls a chained hash table
// over an SDBM byte hash; a native Go map specialized to the same key
// achieves the identical contract (one entry per unique key, insertion
// order preserved in a side list) without re-implementing hashing by hand.
package dedupe

import "github.com/udhos/objz/internal/lexer"

// Vertex is a realized interleaved (position, texcoord, normal) vertex.
// Missing texcoord/normal are filled with zeros.
type Vertex struct {
	Pos      [3]float32
	Texcoord [2]float32
	Normal   [3]float32
}

type key struct {
	object, pos, texcoord, normal uint32
}

// Map is the vertex deduplication table for a single load. Positions,
// texcoords and normals are the full parsed attribute arrays; pos/texcoord/
// normal indices passed to Insert index into them directly (Omitted sentinel
// for a missing texcoord/normal).
type Map struct {
	table     map[key]uint32
	Vertices  []Vertex
	positions [][3]float32
	texcoords [][2]float32
	normals   [][3]float32
}

// New builds a Map sized for the given attribute arrays.
func New(positions [][3]float32, texcoords [][2]float32, normals [][3]float32) *Map {
	return &Map{
		table:     make(map[key]uint32, len(positions)*2),
		Vertices:  make([]Vertex, 0, len(positions)),
		positions: positions,
		texcoords: texcoords,
		normals:   normals,
	}
}

// Insert returns the unique vertex index for (object, pos, texcoord,
// normal), allocating a new interleaved Vertex on first sight of the key.
func (m *Map) Insert(object, pos, texcoord, normal uint32) uint32 {
	k := key{object: object, pos: pos, texcoord: texcoord, normal: normal}
	if idx, ok := m.table[k]; ok {
		return idx
	}
	var v Vertex
	v.Pos = m.positions[pos]
	if texcoord != lexer.Omitted {
		v.Texcoord = m.texcoords[texcoord]
	}
	if normal != lexer.Omitted {
		v.Normal = m.normals[normal]
	}
	idx := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, v)
	m.table[k] = idx
	return idx
}
