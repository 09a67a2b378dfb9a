// Package gjk implements the Gilbert-Johnson-Keerthi (GJK) algorithm for collision detection.
//
// GJK detects whether two convex shapes overlap by testing if their Minkowski difference
// contains the origin. The algorithm builds a simplex incrementally, converging toward
// the origin in typically 3-6 iterations.
//
// Shapes only need to provide a support function (see shape.Support), so any pair of
// convex shapes can be tested without exposing their geometry.
//
// References:
//   - Gilbert, Johnson, Keerthi: "A Fast Procedure for Computing the Distance Between
//     Complex Objects in Three-Dimensional Space" (1988)
//   - Van den Bergen: "Collision Detection in Interactive 3D Environments" (2003)
package gjk

import (
	"math"
	"sync"

	"github.com/akmonengine/overlap/shape"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// MaxIterations bounds the number of support queries of a single GJK run.
	// Running out is treated as "no intersection".
	MaxIterations = 64

	// TouchTolerance is the distance under which the origin is considered to lie on the
	// current simplex feature. Shapes closer than this are reported as touching.
	TouchTolerance = 1e-10

	// degenerateTolerance is the squared sine of the angle below which two simplex
	// edges are treated as parallel.
	degenerateTolerance = 1e-12
)

// Simplex represents a set of 1-4 points in the Minkowski difference space.
// The simplex evolves during GJK iterations, always containing the most recent support points.
// Points[Count-1] is the newest point, Points[0] the oldest.
// Size progression: 1 point → 2 points (line) → 3 points (triangle) → 4 points (tetrahedron)
type Simplex struct {
	Points [4]mgl64.Vec3
	Count  int
}

func (s *Simplex) Reset() {
	s.Count = 0
}

// Slice returns the active points, oldest first.
func (s *Simplex) Slice() []mgl64.Vec3 {
	return s.Points[:s.Count]
}

func (s *Simplex) push(p mgl64.Vec3) {
	s.Points[s.Count] = p
	s.Count++
}

func simplexOf(points ...mgl64.Vec3) Simplex {
	var s Simplex
	for _, p := range points {
		s.push(p)
	}
	return s
}

var SimplexPool = sync.Pool{
	New: func() interface{} {
		return &Simplex{}
	},
}

// MinkowskiSupport computes a support point in the Minkowski difference (A - B).
//
// The Minkowski difference A - B is the set of all vectors (a - b) where a ∈ A and b ∈ B.
// For collision detection, we only need the extreme points (support points) in any direction.
//
// Returns:
//
//	Support point: furthestPoint(A, direction) - furthestPoint(B, -direction)
func MinkowskiSupport(a, b shape.Support, direction mgl64.Vec3) mgl64.Vec3 {
	supportA := a.Support(direction)
	supportB := b.Support(direction.Mul(-1))
	return supportA.Sub(supportB)
}

// initialDirection seeds the search. Any non-zero direction works.
var initialDirection = mgl64.Vec3{0, 1, 0}

// GJK performs collision detection between two convex shapes.
//
// Algorithm overview:
//  1. Get a first support point along +Y
//  2. Search toward the origin from the simplex feature closest to it
//  3. If the new support point does not pass the origin → no collision
//  4. If the simplex becomes a tetrahedron enclosing the origin → collision
//  5. Otherwise reduce the simplex to its closest feature and repeat
//
// Returns:
//   - bool: true if collision detected, false otherwise
//
// On a collision the simplex is normally a tetrahedron (4 points) enclosing the origin,
// which EPA uses as its initial polytope. When the shapes merely touch, the origin can
// land exactly on a point or edge of a smaller simplex; GJK then reports a collision
// with Count < 4.
func GJK(a, b shape.Support, simplex *Simplex) bool {
	simplex.Reset()
	simplex.push(MinkowskiSupport(a, b, initialDirection))

	// New direction towards the origin from this first point
	direction := simplex.Points[0].Mul(-1)
	if direction.Len() < TouchTolerance {
		return true
	}

	for i := 0; i < MaxIterations; i++ {
		newPoint := MinkowskiSupport(a, b, direction)

		// If the new point doesn't pass the origin in the search direction,
		// the origin cannot be reached, therefore no collision.
		if newPoint.Dot(direction) < 0 {
			return false
		}

		next := *simplex
		next.push(newPoint)

		var enclosed bool
		*simplex, direction, enclosed = evolve(next)
		if enclosed {
			return true
		}
	}

	return false
}

// evolve reduces the simplex to the feature closest to the origin and returns the next
// search direction. It reports true once the origin is enclosed (or touched).
func evolve(s Simplex) (Simplex, mgl64.Vec3, bool) {
	switch s.Count {
	case 2:
		return line(s)
	case 3:
		return triangle(s)
	case 4:
		return tetrahedron(s)
	}
	return s, s.Points[0].Mul(-1), false
}

// line handles the line simplex case (2 points: A newest, B oldest).
//
// Tests which Voronoi region contains the origin:
//   - Region A: Origin is closest to point A alone
//   - Region AB: Origin is closest to the line segment AB
func line(s Simplex) (Simplex, mgl64.Vec3, bool) {
	a := s.Points[1]
	b := s.Points[0]

	ab := b.Sub(a)
	ao := a.Mul(-1)

	// Origin on the newest point.
	if ao.Len() < TouchTolerance {
		return simplexOf(a), ao, true
	}

	// Identical points: keep the newest.
	if ab.LenSqr() < degenerateTolerance*ao.LenSqr() {
		return simplexOf(a), ao, false
	}

	if ab.Dot(ao) <= 0 {
		return simplexOf(a), ao, false
	}

	// Origin beyond the oldest point. GJK never produces this (B was reached while
	// searching toward the origin) but the region test stays total.
	if ab.Dot(ao) >= ab.LenSqr() {
		bo := b.Mul(-1)
		return simplexOf(b), bo, bo.Len() < TouchTolerance
	}

	abPerp := ab.Cross(ao).Cross(ab)

	// |abPerp| = |ab|² · distance(origin, line)
	if abPerp.Len() < TouchTolerance*ab.LenSqr() {
		return s, abPerp, true
	}

	return s, abPerp, false
}

// triangle handles the triangle simplex case (3 points: A newest, then B, then C).
//
// Tests which Voronoi region contains the origin:
//   - Region AB: Origin closest to edge AB
//   - Region AC: Origin closest to edge AC
//   - Region ABC (above): Origin above triangle plane
//   - Region ABC (below): Origin below triangle plane, winding flipped
//
// Degenerate case: If points are collinear (flat triangle), treats as line instead.
func triangle(s Simplex) (Simplex, mgl64.Vec3, bool) {
	a := s.Points[2]
	b := s.Points[1]
	c := s.Points[0]

	ab := b.Sub(a)
	ac := c.Sub(a)
	ao := a.Mul(-1)

	abc := ab.Cross(ac)

	if abc.LenSqr() <= degenerateTolerance*ab.LenSqr()*ac.LenSqr() {
		return line(simplexOf(b, a))
	}

	// Region AB (edge)
	if ab.Cross(abc).Dot(ao) > 0 {
		return line(simplexOf(b, a))
	}

	// Region AC (edge)
	if abc.Cross(ac).Dot(ao) > 0 {
		return line(simplexOf(c, a))
	}

	// Origin in the triangle's plane and inside its edges: touching.
	side := abc.Dot(ao)
	if math.Abs(side) < TouchTolerance*abc.Len() {
		return s, abc, true
	}

	if side > 0 {
		return s, abc, false
	}

	// Below: reverse the winding so the next point lands on the positive side.
	return simplexOf(b, c, a), abc.Mul(-1), false
}

// tetrahedron handles the tetrahedron simplex case (4 points: A newest, then B, C, D).
//
// This is the only case that can enclose the origin.
//
// Tests if origin is inside the tetrahedron by checking which side of each face
// the origin lies on:
//   - If outside face ABC → reduce to triangle ABC
//   - If outside face ACD → reduce to triangle ACD
//   - If outside face ADB → reduce to triangle ADB
//   - If inside all faces → origin contained, collision!
//
// The base face BCD never needs testing: the previous step already placed the origin
// on the side of BCD facing A.
func tetrahedron(s Simplex) (Simplex, mgl64.Vec3, bool) {
	a := s.Points[3]
	b := s.Points[2]
	c := s.Points[1]
	d := s.Points[0]

	ab := b.Sub(a)
	ac := c.Sub(a)
	ad := d.Sub(a)
	ao := a.Mul(-1)

	// Flat tetrahedron: drop D and continue from the newest triangle.
	volume := ab.Cross(ac).Dot(ad)
	if volume*volume <= degenerateTolerance*ab.LenSqr()*ac.LenSqr()*ad.LenSqr() {
		return triangle(simplexOf(c, b, a))
	}

	// Face normals must point AWAY from the opposite vertex
	abc := ab.Cross(ac)
	if abc.Dot(ad) > 0 {
		abc = abc.Mul(-1)
	}
	acd := ac.Cross(ad)
	if acd.Dot(ab) > 0 {
		acd = acd.Mul(-1)
	}
	adb := ad.Cross(ab)
	if adb.Dot(ac) > 0 {
		adb = adb.Mul(-1)
	}

	if abc.Dot(ao) > 0 {
		return triangle(simplexOf(c, b, a))
	}
	if acd.Dot(ao) > 0 {
		return triangle(simplexOf(d, c, a))
	}
	if adb.Dot(ao) > 0 {
		return triangle(simplexOf(b, d, a))
	}

	return s, mgl64.Vec3{}, true
}
