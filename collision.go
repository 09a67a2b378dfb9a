package overlap

import (
	"github.com/akmonengine/overlap/manifold"
	"github.com/akmonengine/overlap/shape"
)

// DefaultWorkers is used when a batch call asks for fewer than one worker.
const DefaultWorkers = 1

// Pair2D is a pair of 2D shapes to test against each other.
type Pair2D struct {
	A, B shape.Shape2D
}

// Pair3D is a pair of 3D shapes to test against each other.
type Pair3D struct {
	A, B shape.Support
}

// Result2D is the outcome of one Pair2D query.
type Result2D struct {
	Hit      bool
	Manifold manifold.Manifold2D
}

// Result3D is the outcome of one Pair3D query.
type Result3D struct {
	Hit      bool
	Manifold manifold.Manifold3D
}

// IntersectAll2D runs Intersect2D on every pair, spread over workersCount goroutines.
// results[i] belongs to pairs[i]. The shapes must not be mutated until it returns.
func IntersectAll2D(pairs []Pair2D, workersCount int) []Result2D {
	results := make([]Result2D, len(pairs))

	task(max(DefaultWorkers, workersCount), pairs, func(i int, p Pair2D) {
		hit, m := Intersect2D(p.A, p.B)
		results[i] = Result2D{Hit: hit, Manifold: m}
	})

	return results
}

// IntersectAll3D runs Intersect3D on every pair, spread over workersCount goroutines.
// results[i] belongs to pairs[i]. The shapes must not be mutated until it returns.
func IntersectAll3D(pairs []Pair3D, workersCount int) []Result3D {
	results := make([]Result3D, len(pairs))

	task(max(DefaultWorkers, workersCount), pairs, func(i int, p Pair3D) {
		hit, m := Intersect3D(p.A, p.B)
		results[i] = Result3D{Hit: hit, Manifold: m}
	})

	return results
}
