package main

import (
	"flag"
	"os"
	"time"

	"github.com/akmonengine/rayaabb"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
)

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "picking",
	})
}

// Result is the outcome of one box against the scene ray
type Result struct {
	Name    string
	Line    bool
	Forward bool
}

func pick(scene Scene) []Result {
	ray := rayaabb.NewFromVectors(mgl64.Vec3(scene.Ray.Origin), mgl64.Vec3(scene.Ray.Direction))

	results := make([]Result, 0, len(scene.Boxes))
	for _, b := range scene.Boxes {
		box := b.AABB()
		results = append(results, Result{
			Name:    b.Name,
			Line:    ray.TestAABB(box),
			Forward: ray.TestRayAABB(box),
		})
	}
	return results
}

func main() {
	path := flag.String("scene", "", "TOML scene file (built-in scene when empty)")
	debug := flag.Bool("debug", false, "log every box")
	flag.Parse()

	logger := newLogger()
	if *debug {
		logger.SetLevel(log.DebugLevel)
	}

	scene, err := loadScene(*path)
	if err != nil {
		logger.Fatal("cannot load scene", "err", err)
	}

	logger.Info("ray", "origin", scene.Ray.Origin, "direction", scene.Ray.Direction,
		"classification", rayaabb.Classify(scene.Ray.Direction[0], scene.Ray.Direction[1], scene.Ray.Direction[2]))

	hits := 0
	for i, r := range pick(scene) {
		logger.Debug("box", "name", r.Name, "aabb", scene.Boxes[i].AABB(), "line", r.Line, "forward", r.Forward)
		if r.Forward {
			hits++
			logger.Info("hit", "name", r.Name)
		} else if r.Line {
			logger.Info("behind origin", "name", r.Name)
		}
	}

	logger.Info("done", "boxes", len(scene.Boxes), "hits", hits)
}
