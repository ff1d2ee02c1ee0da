package core

// Colour is an RGB triple. Components are unbounded; clamping only
// happens when a colour is quantised for output.
type Colour [3]float64

// Black is the colour returned for rays that hit nothing
var Black = Colour{0, 0, 0}

// White is full intensity on every channel
var White = Colour{1, 1, 1}

// NewColour creates a new Colour
func NewColour(r, g, b float64) Colour {
	return Colour{r, g, b}
}

// R returns the red channel
func (c Colour) R() float64 { return c[0] }

// G returns the green channel
func (c Colour) G() float64 { return c[1] }

// B returns the blue channel
func (c Colour) B() float64 { return c[2] }

// Add returns the sum of two colours
func (c Colour) Add(other Colour) Colour {
	return AddTuples(c, other)
}

// Subtract returns the difference of two colours
func (c Colour) Subtract(other Colour) Colour {
	return SubtractTuples(c, other)
}

// Multiply returns the colour scaled by a scalar
func (c Colour) Multiply(scalar float64) Colour {
	return ScaleTuple(c, scalar)
}

// MultiplyColour returns component-wise multiplication of two colours
func (c Colour) MultiplyColour(other Colour) Colour {
	return HadamardTuples(c, other)
}

// Clamp returns a colour with channels clamped to [minVal, maxVal]
func (c Colour) Clamp(minVal, maxVal float64) Colour {
	return Colour{
		max(minVal, min(maxVal, c[0])),
		max(minVal, min(maxVal, c[1])),
		max(minVal, min(maxVal, c[2])),
	}
}

// ApproxEqual compares two colours within Epsilon
func (c Colour) ApproxEqual(other Colour) bool {
	return TuplesApproxEqual(c, other)
}
