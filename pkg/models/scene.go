package models

import "fmt"

// Scene is an ordered list of meshes. The order is stable for the lifetime
// of the scene and decides which of two equally distant faces is reported
// first.
type Scene struct {
	Meshes []*Mesh
}

// NewScene creates a scene holding the given meshes in order.
func NewScene(meshes ...*Mesh) *Scene {
	return &Scene{Meshes: meshes}
}

// Add appends a mesh and returns its index.
func (s *Scene) Add(m *Mesh) int {
	s.Meshes = append(s.Meshes, m)
	return len(s.Meshes) - 1
}

// Len returns the number of meshes.
func (s *Scene) Len() int {
	return len(s.Meshes)
}

// TriangleCount returns the total number of triangles across all meshes.
func (s *Scene) TriangleCount() int {
	n := 0
	for _, m := range s.Meshes {
		n += m.TriangleCount()
	}
	return n
}

// Validate checks every mesh in the scene.
func (s *Scene) Validate() error {
	for i, m := range s.Meshes {
		if m == nil {
			return fmt.Errorf("mesh %d is nil", i)
		}
		if err := m.Validate(); err != nil {
			return fmt.Errorf("mesh %d: %w", i, err)
		}
	}
	return nil
}
