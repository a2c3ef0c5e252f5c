// Package collision contains reference collision checkers for configuration space planning: axis
// aligned boxes and spheres of any dimension, joint limit bounds, and combinations of them.
package collision

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"
)

// Geometry is a region of configuration space.
type Geometry interface {
	Dim() int
	Contains(q []float64) bool
}

// Box is an axis aligned box. Points on its boundary are contained.
type Box struct {
	Center   []float64
	HalfSize []float64
}

// NewBox instantiates a new box Geometry.
func NewBox(center, halfSize []float64) (*Box, error) {
	if len(center) == 0 || len(center) != len(halfSize) {
		return nil, newBadGeometryDimensionsError("box", len(center), len(halfSize))
	}
	for i, h := range halfSize {
		// Zero half sizes are allowed for degenerate boxes.
		if h < 0 || math.IsNaN(h) {
			return nil, fmt.Errorf("box half size %d must not be negative, got %v", i, h)
		}
	}
	return &Box{Center: append([]float64(nil), center...), HalfSize: append([]float64(nil), halfSize...)}, nil
}

// NewBoxFromVector instantiates a 3D box from r3 vectors.
func NewBoxFromVector(center, halfSize r3.Vector) (*Box, error) {
	return NewBox([]float64{center.X, center.Y, center.Z}, []float64{halfSize.X, halfSize.Y, halfSize.Z})
}

// Dim returns the dimension of the box.
func (b *Box) Dim() int {
	return len(b.Center)
}

// Contains reports whether q lies inside or on the box. A point of another dimension is never
// contained.
func (b *Box) Contains(q []float64) bool {
	if len(q) != len(b.Center) {
		return false
	}
	for i, c := range b.Center {
		if q[i] < c-b.HalfSize[i] || q[i] > c+b.HalfSize[i] {
			return false
		}
	}
	return true
}

func (b *Box) String() string {
	return fmt.Sprintf("box{center: %v, half size: %v}", b.Center, b.HalfSize)
}

// Sphere is a euclidean ball. Points on its surface are contained.
type Sphere struct {
	Center []float64
	Radius float64
}

// NewSphere instantiates a new sphere Geometry.
func NewSphere(center []float64, radius float64) (*Sphere, error) {
	if len(center) == 0 {
		return nil, errors.New("sphere center must have at least one value")
	}
	if radius < 0 || math.IsNaN(radius) {
		return nil, fmt.Errorf("sphere radius must not be negative, got %v", radius)
	}
	return &Sphere{Center: append([]float64(nil), center...), Radius: radius}, nil
}

// NewSphereFromVector instantiates a 3D sphere centered on an r3 vector.
func NewSphereFromVector(center r3.Vector, radius float64) (*Sphere, error) {
	return NewSphere([]float64{center.X, center.Y, center.Z}, radius)
}

// Dim returns the dimension of the sphere.
func (s *Sphere) Dim() int {
	return len(s.Center)
}

// Contains reports whether q lies inside or on the sphere. A point of another dimension is never
// contained.
func (s *Sphere) Contains(q []float64) bool {
	if len(q) != len(s.Center) {
		return false
	}
	return floats.Distance(s.Center, q, 2) <= s.Radius
}

func (s *Sphere) String() string {
	return fmt.Sprintf("sphere{center: %v, radius: %v}", s.Center, s.Radius)
}

func newBadGeometryDimensionsError(kind string, centerDim, sizeDim int) error {
	return fmt.Errorf("invalid %s dimensions: center has %d values, size has %d", kind, centerDim, sizeDim)
}
