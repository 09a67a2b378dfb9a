package main

import (
	"fmt"

	"github.com/akmonengine/overlap"
	"github.com/akmonengine/overlap/manifold"
	"github.com/akmonengine/overlap/sat"
	"github.com/akmonengine/overlap/shape"
	"github.com/go-gl/mathgl/mgl64"
)

func print2D(name string, a, b shape.Shape2D) {
	hit, m := overlap.Intersect2D(a, b)
	fmt.Printf("🔍 %s\n", name)
	if !hit {
		fmt.Printf("   no intersection\n")
		return
	}
	printManifold2D(m)
}

func printManifold2D(m manifold.Manifold2D) {
	fmt.Printf("   Normal: %v\n", m.Normal)
	fmt.Printf("   Penetration: %.6f\n", m.Penetration)
	for i, p := range m.Points() {
		fmt.Printf("   Contact %d: %v\n", i, p)
	}
}

func print3D(name string, a, b shape.Support) {
	hit, m := overlap.Intersect3D(a, b)
	fmt.Printf("🔧 %s\n", name)
	if !hit {
		fmt.Printf("   no intersection\n")
		return
	}
	fmt.Printf("   Normal: %v\n", m.Normal)
	fmt.Printf("   Penetration: %.6f\n", m.Penetration)
}

func main() {
	square := shape.Rect(mgl64.Vec2{0, 0}, mgl64.Vec2{2, 2})
	hexagon := shape.RegularPolygon(mgl64.Vec2{0, 0}, 2, 6)
	triangle := shape.Polygon{Points: []mgl64.Vec2{{1.5, 0}, {3, -1}, {3, 1}}}

	print2D("squares overlapping by 1", square, shape.Rect(mgl64.Vec2{1, 0}, mgl64.Vec2{2, 2}))
	print2D("squares 1 unit apart", square, shape.Rect(mgl64.Vec2{3, 0}, mgl64.Vec2{2, 2}))
	print2D("hexagon and triangle", hexagon, triangle)
	fmt.Printf("   Overlap area: %.6f\n", sat.OverlapArea(hexagon, triangle))
	print2D("square and circle", square, shape.Circle{Position: mgl64.Vec2{1.5, 1.5}, Radius: 1})

	unit := mgl64.Vec3{1, 1, 1}
	print3D("spheres overlapping by 0.5",
		shape.Sphere{Radius: 1},
		shape.Sphere{Center: mgl64.Vec3{1.5, 0, 0}, Radius: 1})
	print3D("spheres 1 unit apart",
		shape.Sphere{Radius: 1},
		shape.Sphere{Center: mgl64.Vec3{3, 0, 0}, Radius: 1})
	print3D("cubes 1e-7 apart",
		shape.Box{HalfExtents: unit},
		shape.Box{Center: mgl64.Vec3{2 + 1e-7, 0, 0}, HalfExtents: unit})
	print3D("noisy hulls",
		shape.NoisyHull(1, mgl64.Vec3{0, 0, 0}, 1, 6, 8, 0.2),
		shape.NoisyHull(2, mgl64.Vec3{1.5, 0.2, 0}, 1, 6, 8, 0.2))

	pairs := make([]overlap.Pair3D, 0, 10)
	for i := 0; i < 10; i++ {
		pairs = append(pairs, overlap.Pair3D{
			A: shape.Sphere{Radius: 1},
			B: shape.Box{Center: mgl64.Vec3{float64(i) * 0.4, 0, 0}, HalfExtents: unit},
		})
	}
	for i, r := range overlap.IntersectAll3D(pairs, 4) {
		fmt.Printf("⚙️  pair %d: hit=%v penetration=%.4f\n", i, r.Hit, r.Manifold.Penetration)
	}
}
