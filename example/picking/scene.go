package main

import (
	"fmt"
	"os"

	"github.com/akmonengine/rayaabb/actor"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pelletier/go-toml/v2"
)

// Scene is the TOML description of one picking ray and the boxes it is
// checked against.
type Scene struct {
	Ray   RayConfig   `toml:"ray"`
	Boxes []BoxConfig `toml:"boxes"`
}

type RayConfig struct {
	Origin    [3]float64 `toml:"origin"`
	Direction [3]float64 `toml:"direction"`
}

// BoxConfig is a local box, optionally placed by a translation and a
// rotation of Angle degrees around Axis.
type BoxConfig struct {
	Name     string     `toml:"name"`
	Min      [3]float64 `toml:"min"`
	Max      [3]float64 `toml:"max"`
	Position [3]float64 `toml:"position"`
	Angle    float64    `toml:"angle"`
	Axis     [3]float64 `toml:"axis"`
}

const defaultScene = `
[ray]
origin = [-5.0, 0.5, 0.5]
direction = [1.0, 0.0, 0.0]

[[boxes]]
name = "crate"
min = [0.0, 0.0, 0.0]
max = [1.0, 1.0, 1.0]

[[boxes]]
name = "shelf"
min = [2.0, 0.0, 0.0]
max = [3.0, 1.0, 1.0]

[[boxes]]
name = "lamp"
min = [0.0, 2.0, 0.0]
max = [1.0, 3.0, 1.0]

[[boxes]]
name = "door"
min = [-0.5, -1.0, -0.1]
max = [0.5, 1.0, 0.1]
position = [-8.0, 0.5, 0.5]
angle = 45.0
axis = [0.0, 1.0, 0.0]
`

func parseScene(data []byte) (Scene, error) {
	var scene Scene
	if err := toml.Unmarshal(data, &scene); err != nil {
		return Scene{}, fmt.Errorf("decoding scene: %w", err)
	}
	if len(scene.Boxes) == 0 {
		return Scene{}, fmt.Errorf("scene has no boxes")
	}
	return scene, nil
}

func loadScene(path string) (Scene, error) {
	if path == "" {
		return parseScene([]byte(defaultScene))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("reading scene %s: %w", path, err)
	}
	return parseScene(data)
}

// AABB returns the world-space box
func (b BoxConfig) AABB() actor.AABB {
	local := actor.NewAABB(mgl64.Vec3(b.Min), mgl64.Vec3(b.Max))

	axis := mgl64.Vec3(b.Axis)
	if b.Angle == 0 || axis.Len() == 0 {
		return actor.AABB{
			Min: local.Min.Add(mgl64.Vec3(b.Position)),
			Max: local.Max.Add(mgl64.Vec3(b.Position)),
		}
	}

	return local.Transform(actor.NewTransformAt(mgl64.Vec3(b.Position), mgl64.DegToRad(b.Angle), axis))
}
