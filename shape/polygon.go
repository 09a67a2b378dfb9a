package shape

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Precondition violations reported by Validate. The intersection routines never check
// these themselves; see the overlapdebug build tag in the root package.
var (
	ErrTooFewVertices    = errors.New("polygon needs at least 3 vertices")
	ErrZeroLengthEdge    = errors.New("zero-length edge")
	ErrClockwise         = errors.New("polygon is wound clockwise")
	ErrNotConvex         = errors.New("polygon is not convex")
	ErrNonPositiveRadius = errors.New("radius must be positive")
)

const edgeEpsilon = 1e-12

// Shape2D is the closed set of shapes understood by the 2D SAT engine:
// Polygon and Circle.
type Shape2D interface {
	Center() mgl64.Vec2
	Validate() error
	shape2D()
}

// Polygon is a convex polygon: counter-clockwise local vertices translated by Offset.
type Polygon struct {
	Points []mgl64.Vec2
	Offset mgl64.Vec2
}

func (Polygon) shape2D() {}

// Len returns the number of vertices.
func (p Polygon) Len() int {
	return len(p.Points)
}

// Vertex returns vertex i in world space. Indices wrap around.
func (p Polygon) Vertex(i int) mgl64.Vec2 {
	n := len(p.Points)
	return p.Points[((i%n)+n)%n].Add(p.Offset)
}

// Center returns the vertex average in world space.
func (p Polygon) Center() mgl64.Vec2 {
	var sum mgl64.Vec2
	for _, v := range p.Points {
		sum = sum.Add(v)
	}
	return sum.Mul(1.0 / float64(len(p.Points))).Add(p.Offset)
}

// EdgeNormal returns the outward unit normal of the edge from vertex i to vertex i+1.
func (p Polygon) EdgeNormal(i int) mgl64.Vec2 {
	e := p.Vertex(i + 1).Sub(p.Vertex(i))
	return mgl64.Vec2{e.Y(), -e.X()}.Normalize()
}

// Project returns the extent of the polygon along axis.
func (p Polygon) Project(axis mgl64.Vec2) (min, max float64) {
	min = p.Vertex(0).Dot(axis)
	max = min
	for i := 1; i < len(p.Points); i++ {
		d := p.Vertex(i).Dot(axis)
		min = math.Min(min, d)
		max = math.Max(max, d)
	}
	return min, max
}

// Support returns the world vertex farthest along direction; ties keep the first vertex.
func (p Polygon) Support(direction mgl64.Vec2) (int, mgl64.Vec2) {
	best := 0
	bestDot := p.Vertex(0).Dot(direction)
	for i := 1; i < len(p.Points); i++ {
		if d := p.Vertex(i).Dot(direction); d > bestDot {
			best = i
			bestDot = d
		}
	}
	return best, p.Vertex(best)
}

// Area returns the signed area; positive for counter-clockwise winding.
func (p Polygon) Area() float64 {
	area := 0.0
	n := len(p.Points)
	for i := 0; i < n; i++ {
		a, b := p.Points[i], p.Points[(i+1)%n]
		area += a.X()*b.Y() - b.X()*a.Y()
	}
	return area / 2
}

// Validate checks the caller preconditions of the SAT engine.
func (p Polygon) Validate() error {
	n := len(p.Points)
	if n < 3 {
		return fmt.Errorf("%w: got %d", ErrTooFewVertices, n)
	}

	for i := 0; i < n; i++ {
		if p.Points[(i+1)%n].Sub(p.Points[i]).LenSqr() < edgeEpsilon {
			return fmt.Errorf("%w: between vertices %d and %d", ErrZeroLengthEdge, i, (i+1)%n)
		}
	}

	if p.Area() < 0 {
		return ErrClockwise
	}

	for i := 0; i < n; i++ {
		e1 := p.Points[(i+1)%n].Sub(p.Points[i])
		e2 := p.Points[(i+2)%n].Sub(p.Points[(i+1)%n])
		if cross2(e1, e2) < -edgeEpsilon {
			return fmt.Errorf("%w: reflex vertex %d", ErrNotConvex, (i+1)%n)
		}
	}

	return nil
}

// Circle is a disc in the plane.
type Circle struct {
	Position mgl64.Vec2
	Radius   float64
}

func (Circle) shape2D() {}

func (c Circle) Center() mgl64.Vec2 {
	return c.Position
}

// Project returns the extent of the circle along a unit axis.
func (c Circle) Project(axis mgl64.Vec2) (min, max float64) {
	d := c.Position.Dot(axis)
	return d - c.Radius, d + c.Radius
}

func (c Circle) Validate() error {
	if c.Radius <= 0 {
		return fmt.Errorf("%w: got %v", ErrNonPositiveRadius, c.Radius)
	}
	return nil
}

// Rect builds an axis-aligned rectangle centered on center.
func Rect(center, size mgl64.Vec2) Polygon {
	return OrientedRect(center, size, 0)
}

// OrientedRect builds a rectangle rotated by angle radians around its center.
func OrientedRect(center, size mgl64.Vec2, angle float64) Polygon {
	hx, hy := size.X()/2, size.Y()/2
	rot := mgl64.Rotate2D(angle)

	corners := [4]mgl64.Vec2{{-hx, -hy}, {hx, -hy}, {hx, hy}, {-hx, hy}}
	points := make([]mgl64.Vec2, 4)
	for i, c := range corners {
		points[i] = rot.Mul2x1(c)
	}

	return Polygon{Points: points, Offset: center}
}

// RegularPolygon builds a regular polygon with the given circumradius.
// The first vertex sits on the +X axis.
func RegularPolygon(center mgl64.Vec2, radius float64, sides int) Polygon {
	points := make([]mgl64.Vec2, sides)
	for i := range points {
		theta := 2 * math.Pi * float64(i) / float64(sides)
		points[i] = mgl64.Vec2{radius * math.Cos(theta), radius * math.Sin(theta)}
	}
	return Polygon{Points: points, Offset: center}
}

func cross2(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}
