// Package rayaabb tests a ray against axis-aligned bounding boxes using
// precomputed ray slopes.
//
// Setting a ray costs three divisions, twelve multiply-adds and a sign
// classification. Each box test after that is a fixed sequence of
// comparisons chosen by the classification, with no division and no
// per-axis branching. The technique follows:
//   - Eisemann, Grosch, Müller, Magnor: "Fast Ray/Axis-Aligned Bounding Box
//     Overlap Tests using Ray Slopes" (2007)
//
// A RayAabIntersection is meant to be set once per ray and reused against
// many boxes. It is not safe for concurrent use; give each goroutine its own.
package rayaabb

import (
	"github.com/akmonengine/rayaabb/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// Bounded is anything exposing the six bounds of an axis-aligned box.
// actor.AABB implements it.
type Bounded interface {
	Bounds() (minX, minY, minZ, maxX, maxY, maxZ float64)
}

// RayAabIntersection holds a ray and the data derived from it.
//
// The zero value has no ray: every test returns false until Set is called.
type RayAabIntersection struct {
	originX, originY, originZ float64
	dirX, dirY, dirZ          float64

	// slope of the ray projected on a plane, e.g. sXY = dirY / dirX
	sXY, sYX, sZY, sYZ, sXZ, sZX float64
	// matching intercept, e.g. cXY = originY - sXY*originX
	cXY, cYX, cZY, cYZ, cXZ, cZX float64

	classification uint8
	body           testFunc
}

// New returns a RayAabIntersection with no ray set
func New() *RayAabIntersection {
	return &RayAabIntersection{}
}

// NewRayAabIntersection creates a RayAabIntersection for the given ray
func NewRayAabIntersection(originX, originY, originZ, dirX, dirY, dirZ float64) *RayAabIntersection {
	r := &RayAabIntersection{}
	r.Set(originX, originY, originZ, dirX, dirY, dirZ)
	return r
}

// NewFromVectors creates a RayAabIntersection from an origin and a direction
func NewFromVectors(origin, dir mgl64.Vec3) *RayAabIntersection {
	r := &RayAabIntersection{}
	r.SetVectors(origin, dir)
	return r
}

// Set replaces the ray and recomputes every derived value.
//
// The direction does not need to be normalized. Zero components are valid:
// the resulting infinite slopes are never compared, the classification routes
// those axes to a plain slab check instead.
func (r *RayAabIntersection) Set(originX, originY, originZ, dirX, dirY, dirZ float64) {
	r.originX = originX
	r.originY = originY
	r.originZ = originZ
	r.dirX = dirX
	r.dirY = dirY
	r.dirZ = dirZ
	r.precomputeSlope()
}

// SetVectors is Set for mgl64 vectors
func (r *RayAabIntersection) SetVectors(origin, dir mgl64.Vec3) {
	r.Set(origin.X(), origin.Y(), origin.Z(), dir.X(), dir.Y(), dir.Z())
}

func (r *RayAabIntersection) precomputeSlope() {
	// Raw IEEE division: a zero component yields ±Inf here on purpose.
	invDirX := 1.0 / r.dirX
	invDirY := 1.0 / r.dirY
	invDirZ := 1.0 / r.dirZ

	r.sYX = r.dirX * invDirY
	r.sXY = r.dirY * invDirX
	r.sZY = r.dirY * invDirZ
	r.sYZ = r.dirZ * invDirY
	r.sXZ = r.dirZ * invDirX
	r.sZX = r.dirX * invDirZ

	r.cXY = r.originY - r.sXY*r.originX
	r.cYX = r.originX - r.sYX*r.originY
	r.cZY = r.originY - r.sZY*r.originZ
	r.cYZ = r.originZ - r.sYZ*r.originY
	r.cXZ = r.originZ - r.sXZ*r.originX
	r.cZX = r.originX - r.sZX*r.originZ

	r.classification = Classify(r.dirX, r.dirY, r.dirZ)
	r.body = dispatch(r.classification)
}

// Origin returns the ray origin
func (r *RayAabIntersection) Origin() mgl64.Vec3 {
	return mgl64.Vec3{r.originX, r.originY, r.originZ}
}

// Direction returns the ray direction as it was set
func (r *RayAabIntersection) Direction() mgl64.Vec3 {
	return mgl64.Vec3{r.dirX, r.dirY, r.dirZ}
}

// Classification returns the packed sign code of the direction, see Classify
func (r *RayAabIntersection) Classification() uint8 {
	return r.classification
}

// Test reports whether the line carrying the ray crosses the box
// [minX,maxX]x[minY,maxY]x[minZ,maxZ]. The parameter along the ray is not
// restricted, so boxes behind the origin count. Touching the boundary counts.
func (r *RayAabIntersection) Test(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	if r.body == nil {
		return false
	}
	return r.body(r, minX, minY, minZ, maxX, maxY, maxZ)
}

// TestAABB is Test for an actor.AABB
func (r *RayAabIntersection) TestAABB(box actor.AABB) bool {
	return r.Test(box.Min.X(), box.Min.Y(), box.Min.Z(), box.Max.X(), box.Max.Y(), box.Max.Z())
}

// TestBounds is Test for any Bounded value
func (r *RayAabIntersection) TestBounds(box Bounded) bool {
	return r.Test(box.Bounds())
}

// TestRay is like Test but only accepts intersections in front of the
// origin (t >= 0). A box containing the origin always passes.
func (r *RayAabIntersection) TestRay(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.inFront(minX, minY, minZ, maxX, maxY, maxZ) &&
		r.Test(minX, minY, minZ, maxX, maxY, maxZ)
}

// TestRayAABB is TestRay for an actor.AABB
func (r *RayAabIntersection) TestRayAABB(box actor.AABB) bool {
	return r.TestRay(box.Min.X(), box.Min.Y(), box.Min.Z(), box.Max.X(), box.Max.Y(), box.Max.Z())
}

// inFront checks, for each moving axis, that the box is not entirely behind
// the origin on that axis.
func (r *RayAabIntersection) inFront(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	c := r.classification
	return axisInFront(c&3, r.originX, minX, maxX) &&
		axisInFront((c>>2)&3, r.originY, minY, maxY) &&
		axisInFront((c>>4)&3, r.originZ, minZ, maxZ)
}

func axisInFront(code uint8, origin, min, max float64) bool {
	switch code {
	case signNegative:
		return origin >= min
	case signPositive:
		return origin <= max
	default:
		return true
	}
}
