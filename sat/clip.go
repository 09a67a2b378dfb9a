package sat

import (
	"math"

	"github.com/akmonengine/overlap/manifold"
	"github.com/akmonengine/overlap/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// ContactSlop is how far in front of the reference face a clipped point may sit and
// still be reported as a contact.
const ContactSlop = 1e-9

// edge is a polygon edge in world space, wound like its polygon (v1 → v2), together
// with the vertex that was farthest along the query direction.
type edge struct {
	max    mgl64.Vec2
	v1, v2 mgl64.Vec2
}

func (e edge) direction() mgl64.Vec2 {
	return e.v2.Sub(e.v1)
}

// bestEdge finds the edge of p that faces direction the most: start from the farthest
// vertex and keep whichever adjacent edge is closer to perpendicular to direction.
func bestEdge(p shape.Polygon, direction mgl64.Vec2) edge {
	i, v := p.Support(direction)
	prev := p.Vertex(i - 1)
	next := p.Vertex(i + 1)

	left := v.Sub(prev).Normalize()
	right := next.Sub(v).Normalize()

	if math.Abs(right.Dot(direction)) <= math.Abs(left.Dot(direction)) {
		return edge{max: v, v1: v, v2: next}
	}
	return edge{max: v, v1: prev, v2: v}
}

// clipSegment keeps the part of segment v1-v2 where n·p >= o.
func clipSegment(v1, v2, n mgl64.Vec2, o float64) ([2]mgl64.Vec2, int) {
	var out [2]mgl64.Vec2
	count := 0

	d1 := n.Dot(v1) - o
	d2 := n.Dot(v2) - o

	if d1 >= 0 {
		out[count] = v1
		count++
	}
	if d2 >= 0 {
		out[count] = v2
		count++
	}

	// Endpoints on opposite sides: push the crossing point.
	if d1*d2 < 0 && count < 2 {
		u := d1 / (d1 - d2)
		out[count] = v1.Add(v2.Sub(v1).Mul(u))
		count++
	}

	return out, count
}

// clipContacts fills m.Contacts from the reference/incident edge pair of a and b.
// m.Normal must already point from b toward a.
func clipContacts(m *manifold.Manifold2D, a, b shape.Polygon) {
	n := m.Normal

	// a faces b along -n, b faces a along +n.
	e1 := bestEdge(a, n.Mul(-1))
	e2 := bestEdge(b, n)

	ref, inc := e1, e2
	if math.Abs(e2.direction().Normalize().Dot(n)) < math.Abs(e1.direction().Normalize().Dot(n)) {
		ref, inc = e2, e1
	}

	refv := ref.direction().Normalize()

	o1 := refv.Dot(ref.v1)
	clipped, count := clipSegment(inc.v1, inc.v2, refv, o1)

	// A single survivor sits exactly on the first side plane and has no segment left
	// to clip against the second one.
	o2 := refv.Dot(ref.v2)
	switch count {
	case 0:
		return
	case 1:
		if refv.Dot(clipped[0]) > o2 {
			return
		}
	default:
		clipped, count = clipSegment(clipped[0], clipped[1], refv.Mul(-1), -o2)
	}

	// Outward normal of a counter-clockwise edge.
	outward := mgl64.Vec2{refv.Y(), -refv.X()}
	face := outward.Dot(ref.v1)

	for _, p := range clipped[:count] {
		if outward.Dot(p)-face <= ContactSlop {
			m.AddContact(p)
		}
	}
}
