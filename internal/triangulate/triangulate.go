// Package triangulate converts arbitrary (possibly concave) polygons into
// triangles using ear clipping in a chosen 2-D projection, ported from the
// reference objzero C implementation (itself adapted from tinyobjloader).
package triangulate

import "math"

// Corner is the minimal per-vertex information the triangulator needs: an
// opaque payload (the caller's v/vt/vn triplet) plus the 3-D position used
// for the geometric tests.
type Corner[T any] struct {
	Payload T
	Pos     [3]float32
}

func sub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

const epsilon = float32(1.1920929e-7) // FLT_EPSILON

// pickAxes finds the two axes to work in by examining successive edge pairs
// until a non-degenerate cross product is found, choosing the pair of
// coordinates orthogonal to the largest-magnitude component of that cross
// product. Defaults to (1, 2) when no such triple exists.
func pickAxes[T any](poly []Corner[T]) [2]int {
	axes := [2]int{1, 2}
	n := len(poly)
	for i := 0; i < n; i++ {
		v0 := poly[i].Pos
		v1 := poly[(i+1)%n].Pos
		v2 := poly[(i+2)%n].Pos
		e0 := sub(v1, v0)
		e1 := sub(v2, v1)
		c := cross(e0, e1)
		ax, ay, az := float32(math.Abs(float64(c[0]))), float32(math.Abs(float64(c[1]))), float32(math.Abs(float64(c[2])))
		if ax > epsilon || ay > epsilon || az > epsilon {
			if !(ax > ay && ax > az) {
				axes[0] = 0
				if az > ax && az > ay {
					axes[1] = 1
				}
			}
			break
		}
	}
	return axes
}

func signedArea[T any](poly []Corner[T], axes [2]int) float32 {
	n := len(poly)
	var area float32
	for i := 0; i < n; i++ {
		v0 := poly[i].Pos
		v1 := poly[(i+1)%n].Pos
		area += (v0[axes[0]]*v1[axes[1]] - v0[axes[1]]*v1[axes[0]]) * 0.5
	}
	return area
}

// pnpoly is the standard point-in-polygon crossing test.
// code from https://wrf.ecse.rpi.edu//Research/Short_Notes/pnpoly.html
func pnpoly(vx, vy [3]float32, testx, testy float32) bool {
	c := false
	j := 2
	for i := 0; i < 3; i++ {
		if (vy[i] > testy) != (vy[j] > testy) {
			if testx < (vx[j]-vx[i])*(testy-vy[i])/(vy[j]-vy[i])+vx[i] {
				c = !c
			}
		}
		j = i
	}
	return c
}

// Triangulate emits the triangles of an n-vertex (n>=3) polygon as triples
// of Corner payloads. For n==3 the single triangle is emitted directly. For
// n>3 it performs ear clipping exactly as the reference implementation:
// reflex corners are skipped, ears are tested for overlap with remaining
// vertices, and a stalled cursor (no ear found for a full pass) bails out
// without emitting further triangles.
func Triangulate[T any](poly []Corner[T], emit func(a, b, c T)) {
	n := len(poly)
	if n < 3 {
		return
	}
	if n == 3 {
		emit(poly[0].Payload, poly[1].Payload, poly[2].Payload)
		return
	}
	axes := pickAxes(poly)
	area := signedArea(poly, axes)

	remaining := make([]Corner[T], n)
	copy(remaining, poly)

	remainingIterations := len(remaining)
	previousRemaining := len(remaining)
	guess := 0

	for len(remaining) > 3 && remainingIterations > 0 {
		if guess >= len(remaining) {
			guess -= len(remaining)
		}
		if previousRemaining != len(remaining) {
			previousRemaining = len(remaining)
			remainingIterations = len(remaining)
		} else {
			remainingIterations--
		}

		i0 := remaining[guess%len(remaining)]
		i1 := remaining[(guess+1)%len(remaining)]
		i2 := remaining[(guess+2)%len(remaining)]

		vx := [3]float32{i0.Pos[axes[0]], i1.Pos[axes[0]], i2.Pos[axes[0]]}
		vy := [3]float32{i0.Pos[axes[1]], i1.Pos[axes[1]], i2.Pos[axes[1]]}

		e0x, e0y := vx[1]-vx[0], vy[1]-vy[0]
		e1x, e1y := vx[2]-vx[1], vy[2]-vy[1]
		crossZ := e0x*e1y - e0y*e1x

		if crossZ*area < 0 {
			guess++
			continue
		}

		overlap := false
		for other := 3; other < len(remaining); other++ {
			idx := (guess + other) % len(remaining)
			p := remaining[idx].Pos
			tx, ty := p[axes[0]], p[axes[1]]
			if pnpoly(vx, vy, tx, ty) {
				overlap = true
				break
			}
		}
		if overlap {
			guess++
			continue
		}

		// Ear found: emit it and remove the middle vertex.
		emit(i0.Payload, i1.Payload, i2.Payload)
		removed := (guess + 1) % len(remaining)
		remaining = append(remaining[:removed], remaining[removed+1:]...)
	}

	if len(remaining) == 3 {
		emit(remaining[0].Payload, remaining[1].Payload, remaining[2].Payload)
	}
}
