// Package epa implements the Expanding Polytope Algorithm for computing penetration depth.
//
// EPA is run after GJK detects a collision to determine:
//   - Penetration depth (how far shapes overlap)
//   - Contact normal (direction to separate shapes)
//
// The algorithm expands a polytope (starting from GJK's final simplex) toward the
// boundary of the Minkowski difference, finding the face closest to the origin, which
// gives the Minimum Translation Vector (MTV) separating the shapes.
//
// EPA does not produce contact points. A 3D contact manifold would need clipping of
// the shapes' features, which shapes exposing only a support function cannot provide.
//
// References:
//   - Van den Bergen: "Proximity Queries and Penetration Depth Computation on 3D Game Objects" (2001)
package epa

import (
	"math"

	"github.com/akmonengine/overlap/gjk"
	"github.com/akmonengine/overlap/manifold"
	"github.com/akmonengine/overlap/shape"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// MaxIterations limits polytope expansion.
	// If this limit is reached, EPA returns its best estimate so far.
	MaxIterations = 64

	// ConvergenceTolerance defines when EPA has converged.
	// If the distance to a new support point improves by less than this threshold,
	// we've found the closest face to the origin.
	ConvergenceTolerance = 1e-5

	// NormalSnapThreshold is used to clamp nearly-zero normal components to exactly zero.
	NormalSnapThreshold = 1e-8

	// DegenerateFaceSine is the sine of the smallest corner angle a face may have before
	// it is treated as zero-area.
	DegenerateFaceSine = 1e-12

	// completionTolerance is the minimum distance a support point must add to a
	// degenerate simplex to be accepted as a new vertex.
	completionTolerance = 1e-10

	polytopeInitialCapacity = 16
)

// fallbackNormal is reported when the Minkowski difference has no volume at all
// (e.g. two points at the same position): any direction separates the shapes.
var fallbackNormal = mgl64.Vec3{0, 1, 0}

// EPA computes penetration depth and normal for overlapping convex shapes.
//
// Algorithm overview:
//  1. Start with simplex from GJK (tetrahedron containing origin)
//  2. Build initial polytope faces from simplex
//  3. Find face closest to origin
//  4. If its normal did not change since the last iteration → done
//  5. Get support point in face normal direction
//  6. If converged (new point doesn't improve distance) → done
//  7. If the point is already a vertex, or the expansion would break the polytope → done
//  8. Otherwise, expand polytope by adding support point
//  9. Repeat from step 3
//
// Parameters:
//   - a, b: The two colliding shapes
//   - simplex: Final simplex from GJK. Fewer than 4 points happen when the shapes only
//     touch; the simplex is then completed with extra support queries.
//
// The returned normal points from B toward A and the penetration is never negative.
// Running out of iterations is not an error: the last closest face is returned as a
// best-effort estimate, which mostly happens with curved shapes such as spheres.
func EPA(a, b shape.Support, simplex *gjk.Simplex) manifold.Manifold3D {
	tetrahedron, ok := completeSimplex(a, b, simplex)
	if !ok {
		return manifold.Manifold3D{Normal: fallbackNormal}
	}

	builder := polytopeBuilderPool.Get().(*PolytopeBuilder)
	defer polytopeBuilderPool.Put(builder)
	builder.Reset()

	builder.BuildInitialFaces(tetrahedron)

	var normal mgl64.Vec3
	var distance float64

	for i := 0; i < MaxIterations; i++ {
		closestFaceIndex := builder.FindClosestFaceIndex()
		if closestFaceIndex < 0 {
			break
		}
		closestFace := builder.faces[closestFaceIndex]

		// The same direction twice in a row: curved supports can keep producing new
		// points without ever moving the closest plane.
		if i > 0 && closestFace.Normal == normal {
			break
		}
		normal = closestFace.Normal
		distance = closestFace.Distance

		support := gjk.MinkowskiSupport(a, b, normal)
		if support.Dot(normal)-distance < ConvergenceTolerance {
			break
		}

		// A known vertex adds no volume; re-adding it would only create slivers.
		if builder.HasVertex(support, ConvergenceTolerance) {
			break
		}

		// The polytope is left intact on error: keep the current closest face.
		if err := builder.AddPointAndRebuildFaces(support); err != nil {
			break
		}
	}

	if normal == (mgl64.Vec3{}) {
		return manifold.Manifold3D{Normal: fallbackNormal}
	}

	// EPA's normal points from A toward B in Minkowski space (A - B); flip it.
	return manifold.Manifold3D{
		Normal:      normal.Mul(-1),
		Penetration: distance,
	}
}

// completeSimplex turns the GJK simplex into a tetrahedron of support points.
//
// GJK stops early when the origin lands on a point, segment or triangle of the simplex
// (touching shapes). The missing vertices are found by querying support points along
// directions orthogonal to the current simplex, so every vertex is still a genuine point
// of the Minkowski difference. ok is false when the Minkowski difference is flat.
func completeSimplex(a, b shape.Support, simplex *gjk.Simplex) ([4]mgl64.Vec3, bool) {
	var points [4]mgl64.Vec3
	count := copy(points[:], simplex.Slice())

	if count == 0 {
		points[0] = gjk.MinkowskiSupport(a, b, fallbackNormal)
		count = 1
	}

	axes := [6]mgl64.Vec3{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}

	if count == 1 {
		for _, axis := range axes {
			p := gjk.MinkowskiSupport(a, b, axis)
			if p.Sub(points[0]).Len() > completionTolerance {
				points[1] = p
				count = 2
				break
			}
		}
	}

	if count == 2 {
		dir := points[1].Sub(points[0]).Normalize()
		side := dir.Cross(leastAlignedAxis(dir)).Normalize()
		up := dir.Cross(side)

		for _, search := range [4]mgl64.Vec3{side, side.Mul(-1), up, up.Mul(-1)} {
			p := gjk.MinkowskiSupport(a, b, search)
			// Distance from p to the line through the first two points.
			if p.Sub(points[0]).Cross(dir).Len() > completionTolerance {
				points[2] = p
				count = 3
				break
			}
		}
	}

	if count == 3 {
		n := points[1].Sub(points[0]).Cross(points[2].Sub(points[0])).Normalize()

		for _, search := range [2]mgl64.Vec3{n, n.Mul(-1)} {
			p := gjk.MinkowskiSupport(a, b, search)
			if math.Abs(p.Sub(points[0]).Dot(n)) > completionTolerance {
				points[3] = p
				count = 4
				break
			}
		}
	}

	return points, count == 4
}

// leastAlignedAxis returns the coordinate axis most perpendicular to dir.
func leastAlignedAxis(dir mgl64.Vec3) mgl64.Vec3 {
	x, y, z := math.Abs(dir.X()), math.Abs(dir.Y()), math.Abs(dir.Z())
	switch {
	case x <= y && x <= z:
		return mgl64.Vec3{1, 0, 0}
	case y <= z:
		return mgl64.Vec3{0, 1, 0}
	default:
		return mgl64.Vec3{0, 0, 1}
	}
}
