// Package shape holds the value types the overlap engine works on.
//
// 3D shapes only need to expose a support function: the farthest point of the shape
// along a direction. GJK and EPA never look at anything else, so any convex shape
// implementing Support can be tested against any other.
//
// 2D shapes (Polygon, Circle) are plain values consumed by the SAT engine in package sat.
package shape

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Support is implemented by every 3D convex shape.
//
// Support returns a boundary point of the shape that maximizes the dot product with
// direction. When several vertices tie, any of them may be returned; callers may only
// rely on the returned point attaining the maximum.
//
// The zero vector is not a valid direction.
type Support interface {
	Support(direction mgl64.Vec3) mgl64.Vec3
}

// Hull is a convex point set translated by Offset.
// The winding or triangulation of Points is irrelevant: the support function of a point
// set is the support function of its convex hull.
type Hull struct {
	Points []mgl64.Vec3
	Offset mgl64.Vec3
}

// Support scans every point; the first vertex reaching the maximum wins.
func (h Hull) Support(direction mgl64.Vec3) mgl64.Vec3 {
	best := 0
	bestDot := h.Points[0].Dot(direction)

	for i := 1; i < len(h.Points); i++ {
		if d := h.Points[i].Dot(direction); d > bestDot {
			best = i
			bestDot = d
		}
	}

	return h.Points[best].Add(h.Offset)
}

// Sphere represents a spherical collision shape
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}

func (s Sphere) Support(direction mgl64.Vec3) mgl64.Vec3 {
	return s.Center.Add(direction.Normalize().Mul(s.Radius))
}

// Box represents an oriented box collision shape
// The box is defined by its half-extents (half-width, half-height, half-depth),
// rotated by Rotation around Center. A zero Rotation is read as the identity.
type Box struct {
	Center      mgl64.Vec3
	HalfExtents mgl64.Vec3
	Rotation    mgl64.Quat
}

func (b Box) rotation() mgl64.Quat {
	if b.Rotation == (mgl64.Quat{}) {
		return mgl64.QuatIdent()
	}
	return b.Rotation
}

func (b Box) Support(direction mgl64.Vec3) mgl64.Vec3 {
	rotation := b.rotation()
	local := rotation.Conjugate().Rotate(direction)

	hx, hy, hz := b.HalfExtents.X(), b.HalfExtents.Y(), b.HalfExtents.Z()
	if local.X() < 0 {
		hx = -hx
	}
	if local.Y() < 0 {
		hy = -hy
	}
	if local.Z() < 0 {
		hz = -hz
	}

	return b.Center.Add(rotation.Rotate(mgl64.Vec3{hx, hy, hz}))
}

// Corners returns the 8 world-space corners of the box.
func (b Box) Corners() [8]mgl64.Vec3 {
	rotation := b.rotation()
	hx, hy, hz := b.HalfExtents.X(), b.HalfExtents.Y(), b.HalfExtents.Z()

	local := [8]mgl64.Vec3{
		{-hx, -hy, -hz},
		{+hx, -hy, -hz},
		{-hx, +hy, -hz},
		{+hx, +hy, -hz},
		{-hx, -hy, +hz},
		{+hx, -hy, +hz},
		{-hx, +hy, +hz},
		{+hx, +hy, +hz},
	}

	var corners [8]mgl64.Vec3
	for i, c := range local {
		corners[i] = b.Center.Add(rotation.Rotate(c))
	}
	return corners
}

// Hull converts the box into an equivalent point set.
func (b Box) Hull() Hull {
	corners := b.Corners()
	return Hull{Points: corners[:]}
}
