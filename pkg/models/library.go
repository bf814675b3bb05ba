package models

import (
	"fmt"
	"log/slog"
	"sync"

	lru "github.com/hashicorp/golang-lru"
)

// DefaultLibrarySize is the number of meshes a Library keeps by default.
const DefaultLibrarySize = 16

// Library caches loaded meshes by path. Every Get returns a private clone,
// so callers may transform the result freely.
type Library struct {
	loader *GLTFLoader
	cache  *lru.Cache // path -> *Mesh
	mu     sync.Mutex // serializes loads of the same path
}

// NewLibrary creates a library holding at most size meshes.
func NewLibrary(loader *GLTFLoader, size int) (*Library, error) {
	if loader == nil {
		loader = NewGLTFLoader()
	}
	if size <= 0 {
		size = DefaultLibrarySize
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("create mesh cache: %w", err)
	}
	return &Library{loader: loader, cache: cache}, nil
}

// Get returns a copy of the mesh at path, loading it on first use.
func (l *Library) Get(path string) (*Mesh, error) {
	if val, ok := l.cache.Get(path); ok {
		slog.Debug("mesh cache hit", "path", path)
		return val.(*Mesh).Clone(), nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Another caller may have loaded it while we waited.
	if val, ok := l.cache.Get(path); ok {
		return val.(*Mesh).Clone(), nil
	}

	mesh, err := l.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	slog.Info("loaded model", "path", path, "vertices", mesh.VertexCount(), "triangles", mesh.TriangleCount())
	l.cache.Add(path, mesh)

	return mesh.Clone(), nil
}

// Len returns the number of cached meshes.
func (l *Library) Len() int {
	return l.cache.Len()
}

// Purge drops every cached mesh.
func (l *Library) Purge() {
	l.cache.Purge()
}
