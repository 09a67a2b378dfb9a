// Package sat implements exact 2D intersection of convex shapes with the Separating
// Axis Theorem.
//
// Two convex shapes are disjoint iff their projections onto some axis do not overlap.
// For polygons it is enough to test every edge normal of both shapes. Circles add one
// curved axis per polygon vertex (vertex toward circle center), or the center-to-center
// axis when both shapes are circles.
//
// Algorithm overview:
//  1. Enumerate candidate axes
//  2. Project both shapes, overlap = min(maxA, maxB) - max(minA, minB)
//  3. Any negative overlap → disjoint, stop immediately
//  4. Otherwise depth = min(maxB - minA, maxA - minB), the shorter way out along the axis
//  5. Keep the axis with the smallest depth (minimum translation vector), oriented
//     toward that shorter way out
//  6. Polygon pairs: clip the incident edge against the reference edge for 0-2 contacts
//
// Inputs must satisfy shape.Polygon.Validate / shape.Circle.Validate; nothing here
// re-checks them.
package sat

import (
	"math"

	"github.com/akmonengine/overlap/manifold"
	"github.com/akmonengine/overlap/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// projector is any shape that can be projected onto a unit axis.
type projector interface {
	Project(axis mgl64.Vec2) (min, max float64)
}

// mtv tracks the axis of least penetration seen so far.
// sign is +1 when A escapes along +axis, -1 along -axis, 0 when both ways cost the same.
type mtv struct {
	axis  mgl64.Vec2
	depth float64
	sign  int
	found bool
}

// test projects a and b onto axis and records the depth needed to separate them along it.
// It returns false when the axis separates the shapes.
func (m *mtv) test(axis mgl64.Vec2, a, b projector) bool {
	axis = canonicalAxis(axis)

	minA, maxA := a.Project(axis)
	minB, maxB := b.Project(axis)

	if math.Min(maxA, maxB)-math.Max(minA, minB) < 0 {
		return false
	}

	// Moving A along +axis must clear maxB; along -axis it must clear minB. When one
	// interval contains the other these differ from the plain overlap.
	forward := maxB - minA
	backward := maxA - minB
	depth, sign := forward, 1
	switch {
	case backward < forward:
		depth, sign = backward, -1
	case backward == forward:
		sign = 0
	}

	// Exact ties go to the canonically smaller axis so that swapping A and B never
	// changes which axis wins.
	if !m.found || depth < m.depth || (depth == m.depth && axisLess(axis, m.axis)) {
		m.axis = axis
		m.depth = depth
		m.sign = sign
		m.found = true
	}
	return true
}

// orient turns the winning axis into a normal pointing from B toward A.
func (m *mtv) orient(a, b interface {
	projector
	Center() mgl64.Vec2
}) mgl64.Vec2 {
	d := float64(m.sign)
	if d == 0 {
		d = a.Center().Sub(b.Center()).Dot(m.axis)
	}
	if d == 0 {
		minA, maxA := a.Project(m.axis)
		minB, maxB := b.Project(m.axis)
		d = (minA + maxA) - (minB + maxB)
	}
	if d < 0 {
		return positiveZero(m.axis.Mul(-1))
	}
	return m.axis
}

// canonicalAxis picks the representative of ±axis with a positive X (or positive Y on
// the vertical axis).
func canonicalAxis(axis mgl64.Vec2) mgl64.Vec2 {
	if axis.X() < 0 || (axis.X() == 0 && axis.Y() < 0) {
		axis = axis.Mul(-1)
	}
	return positiveZero(axis)
}

// positiveZero replaces -0 components with +0.
func positiveZero(v mgl64.Vec2) mgl64.Vec2 {
	for i := range v {
		if v[i] == 0 {
			v[i] = 0
		}
	}
	return v
}

func axisLess(a, b mgl64.Vec2) bool {
	if a.X() != b.X() {
		return a.X() < b.X()
	}
	return a.Y() < b.Y()
}

// Polygons tests two convex polygons.
func Polygons(a, b shape.Polygon) (bool, manifold.Manifold2D) {
	var best mtv

	for i := 0; i < a.Len(); i++ {
		if !best.test(a.EdgeNormal(i), a, b) {
			return false, manifold.Manifold2D{}
		}
	}
	for i := 0; i < b.Len(); i++ {
		if !best.test(b.EdgeNormal(i), a, b) {
			return false, manifold.Manifold2D{}
		}
	}

	result := manifold.Manifold2D{
		Normal:      best.orient(a, b),
		Penetration: best.depth,
	}
	clipContacts(&result, a, b)

	return true, result
}

// PolygonCircle tests a convex polygon (A) against a circle (B).
// Besides the polygon's edge normals, every vertex contributes the axis from that vertex
// toward the circle center, which stands in for the circle's curvature.
func PolygonCircle(p shape.Polygon, c shape.Circle) (bool, manifold.Manifold2D) {
	var best mtv

	for i := 0; i < p.Len(); i++ {
		if !best.test(p.EdgeNormal(i), p, c) {
			return false, manifold.Manifold2D{}
		}
	}
	for i := 0; i < p.Len(); i++ {
		toCenter := c.Position.Sub(p.Vertex(i))
		if toCenter.LenSqr() == 0 {
			continue
		}
		if !best.test(toCenter.Normalize(), p, c) {
			return false, manifold.Manifold2D{}
		}
	}

	result := manifold.Manifold2D{
		Normal:      best.orient(p, c),
		Penetration: best.depth,
	}
	// Deepest point of the circle inside the polygon.
	result.AddContact(c.Position.Add(result.Normal.Mul(c.Radius)))

	return true, result
}

// CirclePolygon tests a circle (A) against a convex polygon (B).
func CirclePolygon(c shape.Circle, p shape.Polygon) (bool, manifold.Manifold2D) {
	hit, result := PolygonCircle(p, c)
	if !hit {
		return false, result
	}
	return true, result.Flipped()
}

// Circles tests two circles along their center-to-center axis.
// Concentric circles fall back to the +X axis.
func Circles(a, b shape.Circle) (bool, manifold.Manifold2D) {
	var best mtv

	axis := a.Position.Sub(b.Position)
	if axis.LenSqr() == 0 {
		axis = mgl64.Vec2{1, 0}
	}
	if !best.test(axis.Normalize(), a, b) {
		return false, manifold.Manifold2D{}
	}

	result := manifold.Manifold2D{
		Normal:      best.orient(a, b),
		Penetration: best.depth,
	}
	result.AddContact(b.Position.Add(result.Normal.Mul(b.Radius)))

	return true, result
}

// Intersect dispatches on the concrete shape types.
func Intersect(a, b shape.Shape2D) (bool, manifold.Manifold2D) {
	switch a := a.(type) {
	case *shape.Polygon:
		return Intersect(*a, b)
	case *shape.Circle:
		return Intersect(*a, b)
	case shape.Polygon:
		switch b := b.(type) {
		case shape.Polygon:
			return Polygons(a, b)
		case *shape.Polygon:
			return Polygons(a, *b)
		case shape.Circle:
			return PolygonCircle(a, b)
		case *shape.Circle:
			return PolygonCircle(a, *b)
		}
	case shape.Circle:
		switch b := b.(type) {
		case shape.Polygon:
			return CirclePolygon(a, b)
		case *shape.Polygon:
			return CirclePolygon(a, *b)
		case shape.Circle:
			return Circles(a, b)
		case *shape.Circle:
			return Circles(a, *b)
		}
	}

	return false, manifold.Manifold2D{}
}
