// Package demo builds the sample scene and drives it frame by frame for the
// interactive viewers.
package demo

import (
	"math"

	"github.com/taigrr/tracer/pkg/math3d"
	"github.com/taigrr/tracer/pkg/models"
	"github.com/taigrr/tracer/pkg/trace"
)

// SpinRate is how far the spinning cube turns about Y each frame, in radians.
const SpinRate = 0.2

// Index of the spinning cube in the scene returned by NewScene.
const spinner = 2

// NewScene returns three cubes, an octahedron, a floor and a back wall.
// All transforms are baked into the vertices.
func NewScene() *models.Scene {
	cube1 := models.NewCube().Translate(0, 0, -4)
	cube2 := models.NewCube().Translate(0, 2, -8)
	cube3 := models.NewCube().Rotate(0, 0.2, 0).Scale(3, 3, 3).Translate(0, -2, -16)
	octa := models.NewOctahedron().Rotate(0.2, 0.2, 0.1).Translate(0, 2, -32)
	floor := models.NewRectangle().Rotate(math.Pi/2, 0, 0).Scale(256, 1, 256).Translate(0, -8, -2)
	wall := models.NewRectangle().Scale(256, 256, 1).Translate(0, 120, -130)

	cube1.Name, cube2.Name, cube3.Name = "cube 1", "cube 2", "cube 3"
	floor.Name, wall.Name = "floor", "wall"

	return models.NewScene(cube1, cube2, cube3, octa, floor, wall)
}

// Lights returns a single light just in front of the camera.
func Lights() []trace.Light {
	return []trace.Light{{Position: math3d.V3(0, 0, -1)}}
}

// Animate advances the scene by one frame. It must not run while a frame
// is being traced.
func Animate(scene *models.Scene) {
	if spinner < scene.Len() {
		scene.Meshes[spinner].Rotate(0, SpinRate, 0)
	}
}

// PlaceModel fits a loaded mesh into the scene to the left of the first
// cube and returns its index.
func PlaceModel(scene *models.Scene, mesh *models.Mesh) int {
	mesh.Normalize().Translate(-3, 0, -6)
	return scene.Add(mesh)
}
