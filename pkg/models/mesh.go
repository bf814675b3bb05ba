// Package models provides triangle meshes, the scene they live in, and
// loaders for building them from primitives or glTF files.
package models

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/taigrr/tracer/pkg/math3d"
)

// ErrFaceIndex is returned when a face references a vertex that does not exist.
var ErrFaceIndex = errors.New("face index out of range")

// Mesh is an indexed triangle mesh. Vertices are stored in world space;
// transforms are baked into them rather than kept as a separate matrix.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Faces    []Face

	// Bounding box (recalculated after every transform)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// Face is a triangle given by three indices into Mesh.Vertices.
// Counter-clockwise order (seen from the front) defines the outward normal.
type Face struct {
	V [3]int
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]math3d.Vec3, 0),
		Faces:    make([]Face, 0),
	}
}

// NewMeshFrom creates a mesh over the given vertices and faces and computes
// its bounds. The slices are used directly, not copied.
func NewMeshFrom(name string, vertices []math3d.Vec3, faces []Face) *Mesh {
	m := &Mesh{Name: name, Vertices: vertices, Faces: faces}
	m.CalculateBounds()
	return m
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		m.BoundsMin, m.BoundsMax = math3d.Zero3(), math3d.Zero3()
		return
	}

	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v)
		m.BoundsMax = m.BoundsMax.Max(v)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Triangle returns the three vertex positions of face i.
func (m *Mesh) Triangle(i int) (a, b, c math3d.Vec3) {
	f := m.Faces[i].V
	return m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
}

// Validate checks that every face index refers to an existing vertex.
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for i, f := range m.Faces {
		for _, idx := range f.V {
			if idx < 0 || idx >= n {
				return fmt.Errorf("mesh %q face %d: vertex %d of %d: %w", m.Name, i, idx, n, ErrFaceIndex)
			}
		}
	}
	return nil
}

// Transform applies a transformation matrix to all vertices.
func (m *Mesh) Transform(mat math3d.Mat4) *Mesh {
	for i := range m.Vertices {
		m.Vertices[i] = mat.MulVec3(m.Vertices[i])
	}
	m.CalculateBounds()
	return m
}

// Translate moves every vertex by (x, y, z).
func (m *Mesh) Translate(x, y, z float64) *Mesh {
	return m.Transform(math3d.Translate(math3d.V3(x, y, z)))
}

// Rotate rotates every vertex about the origin by the given angles in
// radians about X, Y and Z. Z is applied first, then X, then Y.
func (m *Mesh) Rotate(x, y, z float64) *Mesh {
	return m.Transform(math3d.RotateEuler(x, y, z))
}

// Scale scales every vertex about the origin.
func (m *Mesh) Scale(x, y, z float64) *Mesh {
	return m.Transform(math3d.Scale(math3d.V3(x, y, z)))
}

// FlipWinding reverses the vertex order of every face, which negates the
// face normals.
func (m *Mesh) FlipWinding() *Mesh {
	for i := range m.Faces {
		f := &m.Faces[i].V
		f[1], f[2] = f[2], f[1]
	}
	return m
}

// Normalize centers the mesh on its bounding-box center and divides each
// axis by its half-extent, so large models fit a unit cube around the
// origin. Axes with a half-extent below one are left unscaled.
func (m *Mesh) Normalize() *Mesh {
	if len(m.Vertices) == 0 {
		return m
	}
	m.CalculateBounds()
	center := m.Center()
	extent := m.Size().Scale(0.5).Max(math3d.One3())

	for i := range m.Vertices {
		m.Vertices[i] = m.Vertices[i].Sub(center).Quo(extent)
	}
	m.CalculateBounds()
	return m
}

// SortFacesByAvgZ orders faces by the mean Z of their vertices, lowest
// first. Faces with equal mean Z keep their relative order.
func (m *Mesh) SortFacesByAvgZ() *Mesh {
	avgZ := func(f Face) float64 {
		return (m.Vertices[f.V[0]].Z + m.Vertices[f.V[1]].Z + m.Vertices[f.V[2]].Z) / 3
	}
	slices.SortStableFunc(m.Faces, func(a, b Face) int {
		return cmp.Compare(avgZ(a), avgZ(b))
	})
	return m
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]math3d.Vec3, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	return clone
}
