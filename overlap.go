// Package overlap decides whether two convex shapes intersect and, when they do,
// describes how to pull them apart.
//
// Two engines share the manifold result types:
//   - Intersect2D: exact Separating Axis Theorem over polygons and circles, with
//     reference/incident clipping for up to two contact points.
//   - Intersect3D: GJK boolean test on support functions, followed by EPA for the
//     penetration normal and depth.
//
// Every query is synchronous and self-contained: shapes are read-only inputs, working
// state lives for the duration of the call, and both GJK and EPA have hard iteration
// caps. Queries on independent shape pairs may run concurrently without locking.
//
// Normals always point from B toward A: moving A by Normal*Penetration separates the
// pair, and swapping the arguments negates the normal.
package overlap

import (
	"github.com/akmonengine/overlap/epa"
	"github.com/akmonengine/overlap/gjk"
	"github.com/akmonengine/overlap/manifold"
	"github.com/akmonengine/overlap/sat"
	"github.com/akmonengine/overlap/shape"
)

// Intersect2D tests two convex 2D shapes (shape.Polygon or shape.Circle).
// Polygons must be convex, counter-clockwise and free of zero-length edges; build with
// the overlapdebug tag to have these preconditions asserted.
func Intersect2D(a, b shape.Shape2D) (bool, manifold.Manifold2D) {
	assert2D(a, b)
	return sat.Intersect(a, b)
}

// Intersect3D tests two convex 3D shapes through their support functions.
func Intersect3D(a, b shape.Support) (bool, manifold.Manifold3D) {
	assert3D(a, b)

	simplex := gjk.SimplexPool.Get().(*gjk.Simplex)
	defer gjk.SimplexPool.Put(simplex)
	simplex.Reset()

	if !gjk.GJK(a, b, simplex) {
		return false, manifold.Manifold3D{}
	}

	return true, epa.EPA(a, b, simplex)
}
