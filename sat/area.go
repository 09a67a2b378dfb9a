package sat

import (
	"math"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/akmonengine/overlap/shape"
)

// OverlapArea returns the exact area of the region shared by a and b.
//
// Unlike Polygons it builds the intersection polygon, so it is far more expensive;
// it is meant for callers weighting a response by overlapped area and for checking
// the SAT result against an independent construction.
func OverlapArea(a, b shape.Polygon) float64 {
	region := toPolyclip(a).Construct(polyclip.INTERSECTION, toPolyclip(b))

	area := 0.0
	for _, contour := range region {
		area += contourArea(contour)
	}
	return area
}

func toPolyclip(p shape.Polygon) polyclip.Polygon {
	contour := make(polyclip.Contour, p.Len())
	for i := range contour {
		v := p.Vertex(i)
		contour[i] = polyclip.Point{X: v.X(), Y: v.Y()}
	}
	return polyclip.Polygon{contour}
}

// contourArea is the unsigned shoelace area; the intersection of two convex polygons
// is a single convex contour, so orientation never needs to be reconciled.
func contourArea(c polyclip.Contour) float64 {
	area := 0.0
	for i := range c {
		j := (i + 1) % len(c)
		area += c[i].X*c[j].Y - c[j].X*c[i].Y
	}
	return math.Abs(area) / 2
}
