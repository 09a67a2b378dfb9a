package shape

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolygonValidate(t *testing.T) {
	tests := []struct {
		name    string
		polygon Polygon
		err     error
	}{
		{"square", Rect(mgl64.Vec2{0, 0}, mgl64.Vec2{2, 2}), nil},
		{"rotated square", OrientedRect(mgl64.Vec2{3, -1}, mgl64.Vec2{2, 1}, 0.7), nil},
		{"hexagon", RegularPolygon(mgl64.Vec2{0, 0}, 1, 6), nil},
		{"two vertices", Polygon{Points: []mgl64.Vec2{{0, 0}, {1, 0}}}, ErrTooFewVertices},
		{"repeated vertex", Polygon{Points: []mgl64.Vec2{{0, 0}, {1, 0}, {1, 0}, {0, 1}}}, ErrZeroLengthEdge},
		{"clockwise", Polygon{Points: []mgl64.Vec2{{0, 0}, {0, 1}, {1, 0}}}, ErrClockwise},
		{"reflex vertex", Polygon{Points: []mgl64.Vec2{{0, 0}, {2, 0}, {1, 0.5}, {2, 2}, {0, 2}}}, ErrNotConvex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.polygon.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestCircleValidate(t *testing.T) {
	assert.NoError(t, Circle{Radius: 1}.Validate())
	assert.ErrorIs(t, Circle{Radius: 0}.Validate(), ErrNonPositiveRadius)
	assert.ErrorIs(t, Circle{Radius: -2}.Validate(), ErrNonPositiveRadius)
}

func TestPolygonGeometry(t *testing.T) {
	square := Rect(mgl64.Vec2{1, 2}, mgl64.Vec2{2, 4})

	t.Run("vertices wrap and include offset", func(t *testing.T) {
		assert.Equal(t, mgl64.Vec2{0, 0}, square.Vertex(0))
		assert.Equal(t, mgl64.Vec2{2, 0}, square.Vertex(1))
		assert.Equal(t, square.Vertex(0), square.Vertex(4))
		assert.Equal(t, square.Vertex(3), square.Vertex(-1))
	})

	t.Run("center", func(t *testing.T) {
		assert.Equal(t, mgl64.Vec2{1, 2}, square.Center())
	})

	t.Run("edge normals point outward", func(t *testing.T) {
		assert.Equal(t, mgl64.Vec2{0, -1}, square.EdgeNormal(0))
		assert.Equal(t, mgl64.Vec2{1, 0}, square.EdgeNormal(1))
		assert.Equal(t, mgl64.Vec2{0, 1}, square.EdgeNormal(2))
		assert.Equal(t, mgl64.Vec2{-1, 0}, square.EdgeNormal(3))
	})

	t.Run("projection", func(t *testing.T) {
		lo, hi := square.Project(mgl64.Vec2{1, 0})
		assert.Equal(t, 0.0, lo)
		assert.Equal(t, 2.0, hi)

		lo, hi = square.Project(mgl64.Vec2{0, -1})
		assert.Equal(t, -4.0, lo)
		assert.Equal(t, 0.0, hi)
	})

	t.Run("support keeps the first maximal vertex", func(t *testing.T) {
		i, v := square.Support(mgl64.Vec2{1, 0})
		assert.Equal(t, 1, i)
		assert.Equal(t, mgl64.Vec2{2, 0}, v)

		i, v = square.Support(mgl64.Vec2{-1, -1})
		assert.Equal(t, 0, i)
		assert.Equal(t, mgl64.Vec2{0, 0}, v)
	})

	t.Run("area", func(t *testing.T) {
		assert.InDelta(t, 8.0, square.Area(), 1e-12)
		assert.InDelta(t, 3*math.Sqrt(3)/2, RegularPolygon(mgl64.Vec2{}, 1, 6).Area(), 1e-12)
	})
}

func TestOrientedRect(t *testing.T) {
	rect := OrientedRect(mgl64.Vec2{0, 0}, mgl64.Vec2{2, 2}, math.Pi/4)

	require.Equal(t, 4, rect.Len())
	assert.InDelta(t, 0.0, rect.Vertex(0).X(), 1e-12)
	assert.InDelta(t, -math.Sqrt2, rect.Vertex(0).Y(), 1e-12)
	assert.InDelta(t, 4.0, rect.Area(), 1e-12)
	assert.NoError(t, rect.Validate())
}

func TestRegularPolygon(t *testing.T) {
	p := RegularPolygon(mgl64.Vec2{5, 5}, 2, 3)

	require.Equal(t, 3, p.Len())
	assert.Equal(t, mgl64.Vec2{7, 5}, p.Vertex(0))
	for i := 0; i < p.Len(); i++ {
		assert.InDelta(t, 2.0, p.Vertex(i).Sub(p.Offset).Len(), 1e-12)
	}
}

func TestCircleProject(t *testing.T) {
	c := Circle{Position: mgl64.Vec2{3, 4}, Radius: 1}

	lo, hi := c.Project(mgl64.Vec2{1, 0})
	assert.Equal(t, 2.0, lo)
	assert.Equal(t, 4.0, hi)
	assert.Equal(t, mgl64.Vec2{3, 4}, c.Center())
}

func TestSphereSupport(t *testing.T) {
	s := Sphere{Center: mgl64.Vec3{1, 2, 3}, Radius: 2}

	assert.True(t, s.Support(mgl64.Vec3{0, 0, 5}).ApproxEqual(mgl64.Vec3{1, 2, 5}))
	assert.True(t, s.Support(mgl64.Vec3{-1, 0, 0}).ApproxEqual(mgl64.Vec3{-1, 2, 3}))
}

func TestBoxSupport(t *testing.T) {
	t.Run("axis aligned", func(t *testing.T) {
		b := Box{Center: mgl64.Vec3{1, 0, 0}, HalfExtents: mgl64.Vec3{1, 2, 3}}

		assert.Equal(t, mgl64.Vec3{2, 2, 3}, b.Support(mgl64.Vec3{1, 1, 1}))
		assert.Equal(t, mgl64.Vec3{0, -2, 3}, b.Support(mgl64.Vec3{-1, -1, 1}))
	})

	t.Run("rotated", func(t *testing.T) {
		b := Box{
			HalfExtents: mgl64.Vec3{2, 1, 1},
			Rotation:    mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1}),
		}

		// The long axis now lies along Y.
		p := b.Support(mgl64.Vec3{0, 1, 0})
		assert.InDelta(t, 2.0, p.Y(), 1e-12)
		p = b.Support(mgl64.Vec3{1, 0, 0})
		assert.InDelta(t, 1.0, p.X(), 1e-12)
	})

	t.Run("matches its hull", func(t *testing.T) {
		b := Box{
			Center:      mgl64.Vec3{0.5, -1, 2},
			HalfExtents: mgl64.Vec3{1, 2, 0.5},
			Rotation:    mgl64.QuatRotate(0.4, mgl64.Vec3{1, 1, 0}.Normalize()),
		}
		hull := b.Hull()

		for _, d := range []mgl64.Vec3{{1, 0, 0}, {0, -1, 0}, {0.3, 0.2, -0.9}, {-1, 1, 1}} {
			assert.InDelta(t, hull.Support(d).Dot(d), b.Support(d).Dot(d), 1e-9, "direction %v", d)
		}
	})
}

func TestHullSupport(t *testing.T) {
	h := Hull{
		Points: []mgl64.Vec3{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {1, 0, 0}},
		Offset: mgl64.Vec3{0, 0, 10},
	}

	assert.Equal(t, mgl64.Vec3{1, 0, 10}, h.Support(mgl64.Vec3{1, 0, 0}))
	assert.Equal(t, mgl64.Vec3{0, 1, 10}, h.Support(mgl64.Vec3{0, 1, 0}))
}

func TestNoisyHull(t *testing.T) {
	center := mgl64.Vec3{4, 0, -2}

	a := NoisyHull(7, center, 1, 6, 8, 0.2)
	b := NoisyHull(7, center, 1, 6, 8, 0.2)
	other := NoisyHull(8, center, 1, 6, 8, 0.2)

	require.Len(t, a.Points, 5*8+2)
	assert.Equal(t, a, b, "the same seed must produce the same hull")
	assert.NotEqual(t, a.Points, other.Points)

	for _, p := range a.Points {
		r := p.Len()
		assert.GreaterOrEqual(t, r, 0.75)
		assert.LessOrEqual(t, r, 1.25)
	}

	plain := NoisyHull(1, center, 2, 4, 4, 0)
	for _, p := range plain.Points {
		assert.InDelta(t, 2.0, p.Len(), 1e-12)
	}
}
