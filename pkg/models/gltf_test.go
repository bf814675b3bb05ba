package models

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/tracer/pkg/math3d"
)

// writeGLB saves a single-primitive GLB with the given positions and indices.
func writeGLB(t *testing.T, path string, positions [][3]float32, indices []uint16) {
	t.Helper()

	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, positions)
	prim := &gltf.Primitive{
		Attributes: map[string]int{gltf.POSITION: pos},
	}
	if indices != nil {
		prim.Indices = gltf.Index(modeler.WriteIndices(doc, indices))
	}
	doc.Meshes = []*gltf.Mesh{{Name: "test", Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Name: "test", Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	if err := gltf.SaveBinary(doc, path); err != nil {
		t.Fatalf("SaveBinary: %v", err)
	}
}

var quadPositions = [][3]float32{
	{-2, -2, 0},
	{2, -2, 0},
	{2, 2, 0},
	{-2, 2, 0},
}

func TestLoadGLBInvalidPath(t *testing.T) {
	_, err := LoadGLB("/nonexistent/path.glb")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestGLTFLoaderCreation(t *testing.T) {
	loader := NewGLTFLoader()
	if loader == nil {
		t.Fatal("NewGLTFLoader returned nil")
	}
	if !loader.Normalize {
		t.Error("Normalize should default to true")
	}
	if loader.FlipWinding {
		t.Error("FlipWinding should default to false")
	}
}

func TestLoadGLBIndexed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.glb")
	writeGLB(t, path, quadPositions, []uint16{0, 1, 2, 0, 2, 3})

	loader := &GLTFLoader{}
	mesh, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if mesh.Name != "quad.glb" {
		t.Errorf("Name = %q, want quad.glb", mesh.Name)
	}
	if mesh.VertexCount() != 4 || mesh.TriangleCount() != 2 {
		t.Fatalf("got %d vertices / %d triangles, want 4 / 2", mesh.VertexCount(), mesh.TriangleCount())
	}
	if mesh.Faces[1].V != [3]int{0, 2, 3} {
		t.Errorf("face 1 = %v, want [0 2 3]", mesh.Faces[1].V)
	}
	if mesh.Vertices[2] != math3d.V3(2, 2, 0) {
		t.Errorf("vertex 2 = %v, want (2, 2, 0)", mesh.Vertices[2])
	}
	if got := mesh.Size(); got != math3d.V3(4, 4, 0) {
		t.Errorf("Size = %v, want (4, 4, 0)", got)
	}
}

func TestLoadGLBSequential(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.glb")
	writeGLB(t, path, quadPositions[:3], nil)

	mesh, err := (&GLTFLoader{FlipWinding: true}).Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if mesh.TriangleCount() != 1 {
		t.Fatalf("TriangleCount = %d, want 1", mesh.TriangleCount())
	}
	if mesh.Faces[0].V != [3]int{0, 2, 1} {
		t.Errorf("flipped face = %v, want [0 2 1]", mesh.Faces[0].V)
	}
}

func TestLoadGLBNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.glb")
	writeGLB(t, path, quadPositions, []uint16{0, 1, 2, 0, 2, 3})

	mesh, err := LoadGLB(path)
	if err != nil {
		t.Fatalf("LoadGLB: %v", err)
	}
	lo, hi := mesh.BoundsMin, mesh.BoundsMax
	if lo != math3d.V3(-1, -1, 0) || hi != math3d.V3(1, 1, 0) {
		t.Errorf("bounds = %v..%v, want (-1,-1,0)..(1,1,0)", lo, hi)
	}
}

func TestLoadGLBBadIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.glb")
	writeGLB(t, path, quadPositions, []uint16{0, 1, 9})

	_, err := LoadGLB(path)
	if !errors.Is(err, ErrFaceIndex) {
		t.Errorf("LoadGLB = %v, want ErrFaceIndex", err)
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, err := NewGLTFLoader().Decode("junk", bytes.NewReader([]byte("definitely not gltf")))
	if err == nil {
		t.Error("Decode accepted garbage input")
	}
}

func TestDecodeMatchesLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.glb")
	writeGLB(t, path, quadPositions, []uint16{0, 1, 2, 0, 2, 3})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	loader := &GLTFLoader{}
	fromBytes, err := loader.Decode("quad.glb", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	fromFile, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i := range fromFile.Vertices {
		if fromBytes.Vertices[i] != fromFile.Vertices[i] {
			t.Errorf("vertex %d differs: %v vs %v", i, fromBytes.Vertices[i], fromFile.Vertices[i])
		}
	}
}
