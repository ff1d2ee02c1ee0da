package material

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	mathpkg "github.com/df07/go-phong-raytracer/pkg/math"
)

// PatternKind selects how a pattern maps points to colours
type PatternKind int

const (
	Solid    PatternKind = iota // one colour everywhere
	Stripe                      // two colours alternating along x
	Stripes                     // three colours, each a third of a unit along x
	Gradient                    // linear blend along x within each unit cell
	Ring                        // two colours alternating by distance from the y axis
	Rings                       // three colours cycling by distance from the y axis
	Checkers                    // two colours alternating in unit cubes
)

var patternNames = map[PatternKind]string{
	Solid:    "solid",
	Stripe:   "stripe",
	Stripes:  "stripes",
	Gradient: "gradient",
	Ring:     "ring",
	Rings:    "rings",
	Checkers: "checkers",
}

func (k PatternKind) String() string {
	if name, ok := patternNames[k]; ok {
		return name
	}
	return fmt.Sprintf("PatternKind(%d)", int(k))
}

// colourCount returns how many colours the kind uses
func (k PatternKind) colourCount() int {
	switch k {
	case Solid:
		return 1
	case Stripes, Rings:
		return 3
	default:
		return 2
	}
}

// Pattern is a closed set of procedural colourings with a transform of
// its own, independent of the shape it is applied to
type Pattern struct {
	Kind      PatternKind
	Colours   [3]core.Colour
	transform mathpkg.Invertible
}

// NewPattern creates a pattern of the given kind. The number of colours
// must match the kind, and the transform must be invertible.
func NewPattern(kind PatternKind, transform mathpkg.Matrix4, colours ...core.Colour) (Pattern, error) {
	if _, ok := patternNames[kind]; !ok {
		return Pattern{}, fmt.Errorf("unknown pattern kind %d", int(kind))
	}
	if len(colours) != kind.colourCount() {
		return Pattern{}, fmt.Errorf("%s pattern needs %d colours, got %d", kind, kind.colourCount(), len(colours))
	}
	inv, err := mathpkg.NewInvertible(transform)
	if err != nil {
		return Pattern{}, fmt.Errorf("%s pattern: %w", kind, err)
	}
	p := Pattern{Kind: kind, transform: inv}
	copy(p.Colours[:], colours)
	return p, nil
}

func untransformed(kind PatternKind, colours ...core.Colour) Pattern {
	p := Pattern{Kind: kind, transform: mathpkg.IdentityInvertible()}
	copy(p.Colours[:], colours)
	return p
}

// NewSolidPattern creates a single-colour pattern
func NewSolidPattern(c core.Colour) Pattern {
	return untransformed(Solid, c)
}

// NewStripePattern alternates a and b every unit along x
func NewStripePattern(a, b core.Colour) Pattern {
	return untransformed(Stripe, a, b)
}

// NewStripesPattern cycles a, b, c in thirds of a unit along x
func NewStripesPattern(a, b, c core.Colour) Pattern {
	return untransformed(Stripes, a, b, c)
}

// NewGradientPattern blends from a to b across each unit along x
func NewGradientPattern(a, b core.Colour) Pattern {
	return untransformed(Gradient, a, b)
}

// NewRingPattern alternates a and b in concentric unit rings in the xz plane
func NewRingPattern(a, b core.Colour) Pattern {
	return untransformed(Ring, a, b)
}

// NewRingsPattern cycles a, b, c in concentric unit rings in the xz plane
func NewRingsPattern(a, b, c core.Colour) Pattern {
	return untransformed(Rings, a, b, c)
}

// NewCheckersPattern alternates a and b in unit cubes
func NewCheckersPattern(a, b core.Colour) Pattern {
	return untransformed(Checkers, a, b)
}

// WithTransform returns a copy of p using the given pattern-space transform
func (p Pattern) WithTransform(transform mathpkg.Matrix4) (Pattern, error) {
	inv, err := mathpkg.NewInvertible(transform)
	if err != nil {
		return Pattern{}, fmt.Errorf("%s pattern: %w", p.Kind, err)
	}
	p.transform = inv
	return p, nil
}

// Transform returns the pattern-space transform
func (p Pattern) Transform() mathpkg.Matrix4 {
	return p.transform.Matrix
}

// InverseTransform returns the precomputed inverse of the pattern transform
func (p Pattern) InverseTransform() mathpkg.Matrix4 {
	return p.transform.Inverse
}

func isEven(v float64) bool {
	return math.Mod(v, 2) == 0
}

// ColourAt evaluates the pattern at a point already in pattern space
func (p Pattern) ColourAt(point core.Point) core.Colour {
	switch p.Kind {
	case Solid:
		return p.Colours[0]
	case Stripe:
		if isEven(math.Floor(point.X())) {
			return p.Colours[0]
		}
		return p.Colours[1]
	case Stripes:
		fraction := point.X() - math.Floor(point.X())
		switch {
		case fraction < 1.0/3.0:
			return p.Colours[0]
		case fraction < 2.0/3.0:
			return p.Colours[1]
		default:
			return p.Colours[2]
		}
	case Gradient:
		fraction := point.X() - math.Floor(point.X())
		distance := p.Colours[1].Subtract(p.Colours[0])
		return p.Colours[0].Add(distance.Multiply(fraction))
	case Ring:
		if isEven(math.Floor(math.Hypot(point.X(), point.Z()))) {
			return p.Colours[0]
		}
		return p.Colours[1]
	case Rings:
		ring := int(math.Floor(math.Hypot(point.X(), point.Z())))
		return p.Colours[ring%3]
	case Checkers:
		if isEven(math.Floor(point.X()) + math.Floor(point.Y()) + math.Floor(point.Z())) {
			return p.Colours[0]
		}
		return p.Colours[1]
	}
	return core.Black
}

// ColourAtObject maps a world point into the owning shape's object space
// using its inverse transform, then into pattern space, and evaluates there.
// Solid patterns skip the mapping since they do not vary in space.
func (p Pattern) ColourAtObject(objectInverse mathpkg.Matrix4, worldPoint core.Point) core.Colour {
	if p.Kind == Solid {
		return p.Colours[0]
	}
	objectPoint := objectInverse.MultiplyPoint(worldPoint)
	patternPoint := p.transform.Inverse.MultiplyPoint(objectPoint)
	return p.ColourAt(patternPoint)
}
