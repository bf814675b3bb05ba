package models

import "github.com/taigrr/tracer/pkg/math3d"

// NewCube returns an axis-aligned cube centered on the origin with
// half-extent 1: 8 vertices and 12 outward-facing triangles.
func NewCube() *Mesh {
	vertices := []math3d.Vec3{
		{X: 1, Y: -1, Z: -1},
		{X: 1, Y: -1, Z: 1},
		{X: -1, Y: -1, Z: 1},
		{X: -1, Y: -1, Z: -1},
		{X: 1, Y: 1, Z: -1},
		{X: 1, Y: 1, Z: 1},
		{X: -1, Y: 1, Z: 1},
		{X: -1, Y: 1, Z: -1},
	}
	faces := []Face{
		{V: [3]int{1, 2, 3}},
		{V: [3]int{7, 6, 5}},
		{V: [3]int{4, 5, 1}},
		{V: [3]int{5, 6, 2}},
		{V: [3]int{2, 6, 7}},
		{V: [3]int{0, 3, 7}},
		{V: [3]int{0, 1, 3}},
		{V: [3]int{4, 7, 5}},
		{V: [3]int{0, 4, 1}},
		{V: [3]int{1, 5, 2}},
		{V: [3]int{3, 2, 7}},
		{V: [3]int{4, 0, 7}},
	}
	return NewMeshFrom("cube", vertices, faces)
}

// NewOctahedron returns a regular octahedron with its six vertices on the
// unit axes.
func NewOctahedron() *Mesh {
	vertices := []math3d.Vec3{
		{X: 1, Y: 0, Z: 0},
		{X: -1, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: -1},
		{X: 0, Y: 0, Z: 1},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: -1, Z: 0},
	}
	faces := []Face{
		{V: [3]int{4, 0, 2}},
		{V: [3]int{4, 2, 1}},
		{V: [3]int{4, 1, 3}},
		{V: [3]int{4, 3, 0}},
		{V: [3]int{5, 2, 0}},
		{V: [3]int{5, 1, 2}},
		{V: [3]int{5, 3, 1}},
		{V: [3]int{5, 0, 3}},
	}
	return NewMeshFrom("octahedron", vertices, faces)
}

// NewRectangle returns a unit square in the XY plane, centered on the
// origin and facing +Z.
func NewRectangle() *Mesh {
	vertices := []math3d.Vec3{
		{X: -0.5, Y: -0.5, Z: 0},
		{X: 0.5, Y: -0.5, Z: 0},
		{X: 0.5, Y: 0.5, Z: 0},
		{X: -0.5, Y: 0.5, Z: 0},
	}
	faces := []Face{
		{V: [3]int{0, 1, 2}},
		{V: [3]int{0, 2, 3}},
	}
	return NewMeshFrom("rectangle", vertices, faces)
}
