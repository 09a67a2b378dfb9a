package shape

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/ojrac/opensimplex-go"
)

// NoisyHull builds a sphere-like point cloud whose vertices are pushed in or out by
// OpenSimplex noise. The same seed always yields the same hull.
//
// rings is the number of latitude bands (>= 2) and segments the number of longitude
// steps (>= 3). amplitude scales the radial jitter relative to radius: 0 gives a plain
// UV sphere, 0.2 moves vertices by up to 20%.
//
// Every point set describes a convex shape through its hull, so the jitter never
// produces an invalid Support.
func NoisyHull(seed int64, center mgl64.Vec3, radius float64, rings, segments int, amplitude float64) Hull {
	noise := opensimplex.New(seed)
	points := make([]mgl64.Vec3, 0, (rings-1)*segments+2)

	displace := func(dir mgl64.Vec3) mgl64.Vec3 {
		r := radius * (1 + amplitude*noise.Eval3(dir.X()*1.7, dir.Y()*1.7, dir.Z()*1.7))
		return dir.Mul(r)
	}

	points = append(points, displace(mgl64.Vec3{0, 1, 0}))
	for i := 1; i < rings; i++ {
		phi := math.Pi * float64(i) / float64(rings)
		for j := 0; j < segments; j++ {
			theta := 2 * math.Pi * float64(j) / float64(segments)
			dir := mgl64.Vec3{
				math.Sin(phi) * math.Cos(theta),
				math.Cos(phi),
				math.Sin(phi) * math.Sin(theta),
			}
			points = append(points, displace(dir))
		}
	}
	points = append(points, displace(mgl64.Vec3{0, -1, 0}))

	return Hull{Points: points, Offset: center}
}
