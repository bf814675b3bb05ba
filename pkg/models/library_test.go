package models

import (
	"path/filepath"
	"testing"

	"github.com/taigrr/tracer/pkg/math3d"
)

func TestLibraryReturnsClones(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.glb")
	writeGLB(t, path, quadPositions, []uint16{0, 1, 2, 0, 2, 3})

	lib, err := NewLibrary(&GLTFLoader{}, 4)
	if err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}

	first, err := lib.Get(path)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	first.Translate(100, 0, 0)

	second, err := lib.Get(path)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if second.Vertices[0] != math3d.V3(-2, -2, 0) {
		t.Errorf("cached mesh was mutated through a clone: %v", second.Vertices[0])
	}
	if lib.Len() != 1 {
		t.Errorf("Len = %d, want 1", lib.Len())
	}

	lib.Purge()
	if lib.Len() != 0 {
		t.Errorf("Len after Purge = %d, want 0", lib.Len())
	}
}

func TestLibraryEvicts(t *testing.T) {
	dir := t.TempDir()
	lib, err := NewLibrary(nil, 2)
	if err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}

	for _, name := range []string{"a.glb", "b.glb", "c.glb"} {
		path := filepath.Join(dir, name)
		writeGLB(t, path, quadPositions[:3], nil)
		if _, err := lib.Get(path); err != nil {
			t.Fatalf("Get(%s): %v", name, err)
		}
	}
	if lib.Len() != 2 {
		t.Errorf("Len = %d, want 2", lib.Len())
	}
}

func TestLibraryMissingFile(t *testing.T) {
	lib, err := NewLibrary(nil, 0)
	if err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}
	if _, err := lib.Get("/nonexistent/model.glb"); err == nil {
		t.Error("Get returned no error for a missing file")
	}
	if lib.Len() != 0 {
		t.Errorf("failed load was cached")
	}
}
