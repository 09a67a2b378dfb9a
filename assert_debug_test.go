//go:build overlapdebug

package overlap

import (
	"testing"

	"github.com/akmonengine/overlap/shape"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestIntersect2D_RejectsInvalidShapes(t *testing.T) {
	valid := shape.Rect(mgl64.Vec2{0, 0}, mgl64.Vec2{2, 2})
	clockwise := shape.Polygon{Points: []mgl64.Vec2{{0, 0}, {0, 1}, {1, 0}}}

	assert.Panics(t, func() { Intersect2D(valid, clockwise) })
	assert.Panics(t, func() { Intersect2D(shape.Circle{Radius: 0}, valid) })
	assert.NotPanics(t, func() { Intersect2D(valid, valid) })
}

func TestIntersect3D_RejectsNilShapes(t *testing.T) {
	assert.Panics(t, func() { Intersect3D(nil, shape.Sphere{Radius: 1}) })
}
