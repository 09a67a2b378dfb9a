package epa

import (
	"errors"
	"slices"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// PolytopeBuilder manages polytope expansion with dynamic buffers and initial capacity.
// A builder is scoped to a single EPA run; between runs it is kept in a pool.
type PolytopeBuilder struct {
	// Stores all faces in the current polytope
	faces []Face

	// Every support point added so far. Their average is always inside the polytope,
	// since the polytope only grows.
	vertices []mgl64.Vec3

	// Edge tracking for horizon detection
	// Normalized edges (A < B) with occurrence count
	edges []EdgeEntry

	// Visible face tracking
	visibleIndices []int
}

// EdgeEntry represents an edge with occurrence counting for horizon detection.
// An edge is on the horizon if it appears exactly once (count == 1): it borders one
// removed face and one kept face. Count 2 means both neighbours were removed.
// Edges are normalized so A < B lexicographically for consistent deduplication.
type EdgeEntry struct {
	A, B  mgl64.Vec3
	Count int
}

var (
	// ErrNoVisibleFace is returned when the support point lies behind every face.
	ErrNoVisibleFace = errors.New("support point sees no face")
	// ErrAllFacesVisible is returned when expanding would remove the whole polytope.
	ErrAllFacesVisible = errors.New("support point sees every face")
	// ErrDegenerateFace is returned when the expansion would create a zero-area face.
	ErrDegenerateFace = errors.New("expansion creates a degenerate face")
)

// polytopeBuilderPool eliminates allocation of builder structures between EPA runs.
var polytopeBuilderPool = sync.Pool{
	New: func() interface{} {
		return &PolytopeBuilder{
			faces:          make([]Face, 0, polytopeInitialCapacity),
			vertices:       make([]mgl64.Vec3, 0, polytopeInitialCapacity),
			edges:          make([]EdgeEntry, 0, polytopeInitialCapacity),
			visibleIndices: make([]int, 0, polytopeInitialCapacity),
		}
	},
}

// Reset prepares the builder for reuse by clearing all slices.
func (b *PolytopeBuilder) Reset() {
	b.faces = b.faces[:0]
	b.vertices = b.vertices[:0]
	b.edges = b.edges[:0]
	b.visibleIndices = b.visibleIndices[:0]
}

// Faces returns the current faces. The slice is only valid until the next call on b.
func (b *PolytopeBuilder) Faces() []Face {
	return b.faces
}

// BuildInitialFaces creates the initial polytope from a tetrahedron.
// Each face is oriented away from the vertex it does not contain.
func (b *PolytopeBuilder) BuildInitialFaces(tetrahedron [4]mgl64.Vec3) {
	p0, p1, p2, p3 := tetrahedron[0], tetrahedron[1], tetrahedron[2], tetrahedron[3]

	b.vertices = append(b.vertices, p0, p1, p2, p3)
	b.faces = append(b.faces,
		createFace(p0, p1, p2, p3), // Face ABC, opposite point is D
		createFace(p0, p2, p3, p1), // Face ACD, opposite point is B
		createFace(p0, p3, p1, p2), // Face ADB, opposite point is C
		createFace(p1, p3, p2, p0), // Face BDC, opposite point is A
	)
}

// FindClosestFaceIndex returns the index of the non-degenerate face closest to the
// origin, or -1 if there is none. Ties keep the lowest index.
func (b *PolytopeBuilder) FindClosestFaceIndex() int {
	closestIndex := -1

	for i := range b.faces {
		if b.faces[i].Degenerate() {
			continue
		}
		if closestIndex < 0 || b.faces[i].Distance < b.faces[closestIndex].Distance {
			closestIndex = i
		}
	}

	return closestIndex
}

// centroid is the average of every vertex added so far.
func (b *PolytopeBuilder) centroid() mgl64.Vec3 {
	var sum mgl64.Vec3
	for _, v := range b.vertices {
		sum = sum.Add(v)
	}
	return sum.Mul(1.0 / float64(len(b.vertices)))
}

// findVisibleFaces populates visibleIndices with faces visible from the support point.
// A face is visible if the support point lies in front of its plane.
func (b *PolytopeBuilder) findVisibleFaces(support mgl64.Vec3) {
	b.visibleIndices = b.visibleIndices[:0]

	for i := range b.faces {
		face := &b.faces[i]
		if support.Sub(face.Points[0]).Dot(face.Normal) > 0 {
			b.visibleIndices = append(b.visibleIndices, i)
		}
	}
}

// findHorizonEdges counts every edge of the visible faces.
// Edges seen once form the horizon; edges seen twice are interior to the removed region.
func (b *PolytopeBuilder) findHorizonEdges() {
	b.edges = b.edges[:0]

	for _, faceIdx := range b.visibleIndices {
		face := &b.faces[faceIdx]

		edges := [3][2]mgl64.Vec3{
			{face.Points[0], face.Points[1]},
			{face.Points[1], face.Points[2]},
			{face.Points[2], face.Points[0]},
		}

		for _, edge := range edges {
			edgeA, edgeB := edge[0], edge[1]
			if compareVec3(edgeA, edgeB) > 0 {
				edgeA, edgeB = edgeB, edgeA
			}

			if edgeIdx := b.findEdgeIndex(edgeA, edgeB); edgeIdx >= 0 {
				b.edges[edgeIdx].Count++
			} else {
				b.edges = append(b.edges, EdgeEntry{A: edgeA, B: edgeB, Count: 1})
			}
		}
	}
}

// findEdgeIndex performs linear search for an edge in the edges buffer.
// Linear search is efficient for small edge counts (typically < 30).
func (b *PolytopeBuilder) findEdgeIndex(edgeA, edgeB mgl64.Vec3) int {
	for i := range b.edges {
		if b.edges[i].A == edgeA && b.edges[i].B == edgeB {
			return i
		}
	}
	return -1
}

// removeVisibleFaces removes faces marked in visibleIndices using swap-with-last.
// Indices are processed in descending order so no pending index is invalidated.
func (b *PolytopeBuilder) removeVisibleFaces() {
	slices.SortFunc(b.visibleIndices, func(x, y int) int { return y - x })

	for _, idx := range b.visibleIndices {
		last := len(b.faces) - 1
		b.faces[idx] = b.faces[last]
		b.faces = b.faces[:last]
	}
}

// addHorizonFaces connects every horizon edge to the support point.
func (b *PolytopeBuilder) addHorizonFaces(support, interior mgl64.Vec3) {
	for i := range b.edges {
		edge := &b.edges[i]
		if edge.Count != 1 {
			continue
		}
		b.faces = append(b.faces, createFace(edge.A, edge.B, support, interior))
	}
}

// AddPointAndRebuildFaces expands the polytope by adding a support point.
// This is the main EPA expansion step that:
//  1. Finds visible faces from the support point
//  2. Identifies the horizon edges of the visible region
//  3. Checks that every new face would have a usable normal
//  4. Removes visible faces
//  5. Creates new faces connecting horizon edges to the support point
//
// On error the polytope is left untouched.
func (b *PolytopeBuilder) AddPointAndRebuildFaces(support mgl64.Vec3) error {
	b.findVisibleFaces(support)

	if len(b.visibleIndices) == 0 {
		return ErrNoVisibleFace
	}
	if len(b.visibleIndices) >= len(b.faces) {
		return ErrAllFacesVisible
	}

	b.findHorizonEdges()
	if err := b.checkHorizon(support); err != nil {
		return err
	}

	b.removeVisibleFaces()

	b.vertices = append(b.vertices, support)
	b.addHorizonFaces(support, b.centroid())

	return nil
}

// checkHorizon rejects an expansion that would leave a hole or a zero-area face.
func (b *PolytopeBuilder) checkHorizon(support mgl64.Vec3) error {
	horizon := 0
	for i := range b.edges {
		if b.edges[i].Count != 1 {
			continue
		}
		if degenerateTriangle(b.edges[i].A, b.edges[i].B, support) {
			return ErrDegenerateFace
		}
		horizon++
	}

	if horizon < 3 {
		return ErrDegenerateFace
	}
	return nil
}

// HasVertex reports whether p lies within tolerance of a polytope vertex.
func (b *PolytopeBuilder) HasVertex(p mgl64.Vec3, tolerance float64) bool {
	for _, v := range b.vertices {
		if p.Sub(v).Len() <= tolerance {
			return true
		}
	}
	return false
}
