package epa

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Face is a triangle of the polytope.
// Normal points away from the polytope interior and Distance is the distance from the
// origin to the face plane, never negative. Degenerate (zero-area) faces have a zero
// Normal and a zero Distance; they are never picked as the closest face.
type Face struct {
	Points   [3]mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
}

// Degenerate reports whether the face has no usable normal.
func (f *Face) Degenerate() bool {
	return f.Normal == (mgl64.Vec3{})
}

// createFace creates a Face with normal pointing outward from the polytope.
// interior is any point strictly inside the polytope (the opposite vertex of the seed
// tetrahedron, or the centroid of the vertices).
//
// Algorithm:
//  1. Compute normal via cross product: (p1-p0) × (p2-p0)
//  2. Flip it if it points toward interior
//  3. Flip again if the origin ends up in front of the face (distance < 0)
//  4. Snap near-zero components for numerical stability
func createFace(p0, p1, p2, interior mgl64.Vec3) Face {
	face := Face{Points: [3]mgl64.Vec3{p0, p1, p2}}

	if degenerateTriangle(p0, p1, p2) {
		return face
	}
	normal := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()

	if normal.Dot(interior.Sub(p0)) > 0 {
		normal = normal.Mul(-1)
	}

	if p0.Dot(normal) < 0 {
		normal = normal.Mul(-1)
	}

	face.Normal = snapNormalToAxis(normal)
	face.Distance = math.Max(0, p0.Dot(face.Normal))

	return face
}

// degenerateTriangle reports whether p0, p1, p2 are (nearly) collinear.
// |e1 × e2| = |e1||e2|·sin(angle): a vanishing sine means collinear vertices.
func degenerateTriangle(p0, p1, p2 mgl64.Vec3) bool {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	normalLength := e1.Cross(e2).Len()
	return normalLength == 0 || normalLength <= DegenerateFaceSine*e1.Len()*e2.Len()
}

// snapNormalToAxis clamps nearly-zero components of a normal vector to exactly zero.
//
// This keeps axis-aligned contacts (box on box) exactly axis-aligned instead of carrying
// 1e-17 noise into the tangent directions. The result is renormalized.
func snapNormalToAxis(normal mgl64.Vec3) mgl64.Vec3 {
	for i := range normal {
		if math.Abs(normal[i]) < NormalSnapThreshold {
			normal[i] = 0
		}
	}
	return normal.Normalize()
}

// compareVec3 orders vectors lexicographically (x, then y, then z).
func compareVec3(a, b mgl64.Vec3) int {
	for i := 0; i < 3; i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}
