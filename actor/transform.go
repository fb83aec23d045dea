package actor

import "github.com/go-gl/mathgl/mgl64"

// Transform places a local box in world space
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
	}
}

// NewTransformAt creates a translated, rotated transform. The rotation is
// given as an angle in radians around axis.
func NewTransformAt(position mgl64.Vec3, angle float64, axis mgl64.Vec3) Transform {
	return Transform{
		Position: position,
		Rotation: mgl64.QuatRotate(angle, axis.Normalize()),
	}
}
