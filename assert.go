//go:build !overlapdebug

package overlap

import "github.com/akmonengine/overlap/shape"

// Release builds trust the caller; see assert_debug.go.
func assert2D(a, b shape.Shape2D) {}

func assert3D(a, b shape.Support) {}
