package triangulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriangleIsEmittedDirectly(t *testing.T) {
	poly := []Corner[int]{
		{Payload: 0, Pos: [3]float32{0, 0, 0}},
		{Payload: 1, Pos: [3]float32{1, 0, 0}},
		{Payload: 2, Pos: [3]float32{0, 1, 0}},
	}
	var tris [][3]int
	Triangulate(poly, func(a, b, c int) { tris = append(tris, [3]int{a, b, c}) })
	assert.Equal(t, [][3]int{{0, 1, 2}}, tris)
}

func TestConvexQuadProducesTwoTriangles(t *testing.T) {
	// unit square in the XY plane, CCW.
	poly := []Corner[int]{
		{Payload: 0, Pos: [3]float32{0, 0, 0}},
		{Payload: 1, Pos: [3]float32{1, 0, 0}},
		{Payload: 2, Pos: [3]float32{1, 1, 0}},
		{Payload: 3, Pos: [3]float32{0, 1, 0}},
	}
	var tris [][3]int
	Triangulate(poly, func(a, b, c int) { tris = append(tris, [3]int{a, b, c}) })
	assert.Len(t, tris, 2)

	covered := map[int]bool{}
	for _, tri := range tris {
		for _, v := range tri {
			covered[v] = true
		}
	}
	assert.Len(t, covered, 4, "every quad corner must appear in some triangle")
}

func TestConcavePolygonTriangulates(t *testing.T) {
	// An "L" shaped concave hexagon in the XY plane.
	poly := []Corner[int]{
		{Payload: 0, Pos: [3]float32{0, 0, 0}},
		{Payload: 1, Pos: [3]float32{2, 0, 0}},
		{Payload: 2, Pos: [3]float32{2, 1, 0}},
		{Payload: 3, Pos: [3]float32{1, 1, 0}},
		{Payload: 4, Pos: [3]float32{1, 2, 0}},
		{Payload: 5, Pos: [3]float32{0, 2, 0}},
	}
	var tris [][3]int
	Triangulate(poly, func(a, b, c int) { tris = append(tris, [3]int{a, b, c}) })
	assert.Len(t, tris, 4, "n-2 triangles for a concave hexagon")
}
