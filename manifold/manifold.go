// Package manifold defines the collision results produced by the overlap engine.
//
// Both result types share the same conventions:
//   - Normal is a unit vector pointing from shape B toward shape A.
//   - Penetration is the minimum overlap distance along Normal, never negative.
//   - Moving A by Normal*Penetration (or B by the opposite) separates the shapes.
//
// Only the 2D result carries contact points. The 3D result is a normal/depth pair.
package manifold

import "github.com/go-gl/mathgl/mgl64"

// MaxContacts2D is the largest number of contact points a 2D manifold can hold.
const MaxContacts2D = 2

// Manifold2D is the result of a 2D intersection query.
type Manifold2D struct {
	Normal       mgl64.Vec2
	Penetration  float64
	Contacts     [MaxContacts2D]mgl64.Vec2
	ContactCount int
}

// AddContact appends a contact point, ignoring it once the manifold is full.
func (m *Manifold2D) AddContact(p mgl64.Vec2) {
	if m.ContactCount >= MaxContacts2D {
		return
	}
	m.Contacts[m.ContactCount] = p
	m.ContactCount++
}

// Points returns the valid contact points.
func (m Manifold2D) Points() []mgl64.Vec2 {
	return m.Contacts[:m.ContactCount]
}

// Flipped returns the manifold as seen with A and B swapped.
func (m Manifold2D) Flipped() Manifold2D {
	m.Normal = m.Normal.Mul(-1)
	return m
}

// Separation returns the translation to apply to A to resolve the overlap.
func (m Manifold2D) Separation() mgl64.Vec2 {
	return m.Normal.Mul(m.Penetration)
}

// Manifold3D is the result of a 3D intersection query.
type Manifold3D struct {
	Normal      mgl64.Vec3
	Penetration float64
}

// Flipped returns the manifold as seen with A and B swapped.
func (m Manifold3D) Flipped() Manifold3D {
	m.Normal = m.Normal.Mul(-1)
	return m
}

// Separation returns the translation to apply to A to resolve the overlap.
func (m Manifold3D) Separation() mgl64.Vec3 {
	return m.Normal.Mul(m.Penetration)
}
