package models

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/tracer/pkg/math3d"
	"golang.org/x/exp/mmap"
)

// GLTFLoader loads binary glTF (.glb) files into Mesh format.
type GLTFLoader struct {
	// Options
	FlipWinding bool // Reverse face order (for clockwise exporters)
	Normalize   bool // Center and fit the mesh into a unit cube
}

// NewGLTFLoader creates a new glTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		Normalize: true,
	}
}

// LoadGLB loads a binary glTF (.glb) file with default options.
func LoadGLB(path string) (*Mesh, error) {
	loader := NewGLTFLoader()
	return loader.Load(path)
}

// Load memory-maps a glTF binary and returns all of its triangle
// primitives merged into one Mesh.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	defer reader.Close()

	return l.Decode(filepath.Base(path), io.NewSectionReader(reader, 0, int64(reader.Len())))
}

// Decode reads a glTF binary from r. Buffers must be embedded.
func (l *GLTFLoader) Decode(name string, r io.Reader) (*Mesh, error) {
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("decode gltf: %w", err)
	}

	mesh := NewMesh(name)

	// Process all meshes in the document
	for _, m := range doc.Meshes {
		if err := l.processMesh(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}

	if err := mesh.Validate(); err != nil {
		return nil, err
	}

	if l.FlipWinding {
		mesh.FlipWinding()
	}
	if l.Normalize {
		mesh.Normalize()
	}
	mesh.CalculateBounds()

	return mesh, nil
}

// processMesh extracts geometry from a glTF mesh.
func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for i, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			slog.Warn("skipping non-triangle primitive", "mesh", m.Name, "primitive", i, "mode", prim.Mode)
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			slog.Warn("skipping primitive without positions", "mesh", m.Name, "primitive", i)
			continue
		}
		if posIdx < 0 || posIdx >= len(doc.Accessors) {
			return fmt.Errorf("primitive %d: position accessor %d out of range", i, posIdx)
		}

		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		// Base vertex index for this primitive
		baseVertex := len(mesh.Vertices)

		for _, p := range positions {
			mesh.Vertices = append(mesh.Vertices, math3d.V3(float64(p[0]), float64(p[1]), float64(p[2])))
		}

		if prim.Indices != nil {
			idx := *prim.Indices
			if idx < 0 || idx >= len(doc.Accessors) {
				return fmt.Errorf("primitive %d: index accessor %d out of range", i, idx)
			}
			indices, err := modeler.ReadIndices(doc, doc.Accessors[idx], nil)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}

			for j := 0; j+2 < len(indices); j += 3 {
				mesh.Faces = append(mesh.Faces, Face{
					V: [3]int{
						baseVertex + int(indices[j]),
						baseVertex + int(indices[j+1]),
						baseVertex + int(indices[j+2]),
					},
				})
			}
		} else {
			// No indices, assume sequential triangles
			for j := 0; j+2 < len(positions); j += 3 {
				mesh.Faces = append(mesh.Faces, Face{
					V: [3]int{baseVertex + j, baseVertex + j + 1, baseVertex + j + 2},
				})
			}
		}
	}

	return nil
}
