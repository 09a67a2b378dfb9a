//go:build overlapdebug

package overlap

import (
	"fmt"

	"github.com/akmonengine/overlap/shape"
)

func assert2D(a, b shape.Shape2D) {
	if err := a.Validate(); err != nil {
		panic(fmt.Errorf("overlap: shape A: %w", err))
	}
	if err := b.Validate(); err != nil {
		panic(fmt.Errorf("overlap: shape B: %w", err))
	}
}

func assert3D(a, b shape.Support) {
	if a == nil || b == nil {
		panic("overlap: nil shape")
	}
}
