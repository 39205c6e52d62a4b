package edge

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Norm selects how Gx and Gy combine into a magnitude.
type Norm int

const (
	// NormL1 is |Gx| + |Gy|.
	NormL1 Norm = iota + 1
	// NormL2 is sqrt(Gx² + Gy²).
	NormL2
)

func (n Norm) String() string {
	switch n {
	case NormL1:
		return "l1"
	case NormL2:
		return "l2"
	default:
		return fmt.Sprintf("Norm(%d)", int(n))
	}
}

func (n Norm) valid() bool {
	return n == NormL1 || n == NormL2
}

// ParseNorm accepts "l1" and "l2" in any case. An empty string means L2.
func ParseNorm(s string) (Norm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "l2":
		return NormL2, nil
	case "l1":
		return NormL1, nil
	default:
		return 0, fmt.Errorf("%w: unknown norm %q", ErrInvalidConfig, s)
	}
}

// Magnitude combines a gradient pair under n.
func (n Norm) Magnitude(gx, gy float64) float64 {
	if n == NormL1 {
		return math.Abs(gx) + math.Abs(gy)
	}
	return math.Sqrt(gx*gx + gy*gy)
}

// Direction is the gradient direction rounded to the nearest 45 degrees.
type Direction uint8

const (
	Horizontal Direction = iota
	Vertical
	DiagUpLeft
	DiagUpRight
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case DiagUpLeft:
		return "diag-up-left"
	case DiagUpRight:
		return "diag-up-right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Bin boundaries, in radians, for atan(Gy/Gx).
var (
	flatTilt = 22.5 * math.Pi / 180
	upTilt   = 67.5 * math.Pi / 180
)

// DirectionOf bins the gradient (gx, gy). When gx is zero the angle is
// undefined: the result is Vertical, or Horizontal if gy is also zero.
func DirectionOf(gx, gy float64) Direction {
	if gx == 0 {
		if gy == 0 {
			return Horizontal
		}
		return Vertical
	}
	theta := math.Atan(gy / gx)
	abs := math.Abs(theta)
	switch {
	case abs >= upTilt:
		return Vertical
	case abs <= flatTilt:
		return Horizontal
	case theta > 0:
		return DiagUpRight
	default:
		return DiagUpLeft
	}
}

// Neighbours returns the two (row, col) offsets lying along d.
func (d Direction) Neighbours() (dr1, dc1, dr2, dc2 int) {
	switch d {
	case Vertical:
		return -1, 0, 1, 0
	case Horizontal:
		return 0, -1, 0, 1
	case DiagUpLeft:
		return -1, -1, 1, 1
	default:
		return -1, 1, 1, -1
	}
}

// GradientSample is the derived gradient at a single pixel.
type GradientSample struct {
	Gx        float64
	Gy        float64
	Magnitude float64
	Direction Direction
}

// GradientField holds the per-pixel gradient of a plane. Direction is stored
// row-major.
type GradientField struct {
	Gx        *mat.Dense
	Gy        *mat.Dense
	Magnitude *mat.Dense
	Direction []Direction
}

// Dims returns the field's rows and columns.
func (f *GradientField) Dims() (rows, cols int) {
	return f.Magnitude.Dims()
}

// At returns the sample at (row, col).
func (f *GradientField) At(row, col int) GradientSample {
	_, cols := f.Dims()
	return GradientSample{
		Gx:        f.Gx.At(row, col),
		Gy:        f.Gy.At(row, col),
		Magnitude: f.Magnitude.At(row, col),
		Direction: f.Direction[row*cols+col],
	}
}

// ComputeGradient convolves src with both kernels of ks and derives the
// magnitude under norm and the binned direction for every pixel. Rows are
// evaluated concurrently when workers > 1.
func ComputeGradient(src *mat.Dense, ks KernelSet, norm Norm, border BorderPolicy, workers int) (*GradientField, error) {
	if src == nil || src.IsEmpty() {
		return nil, fmt.Errorf("%w: empty plane", ErrInvalidInput)
	}
	if err := ks.Validate(); err != nil {
		return nil, err
	}
	if !norm.valid() {
		return nil, fmt.Errorf("%w: unknown norm %d", ErrInvalidConfig, int(norm))
	}
	if !border.valid() {
		return nil, fmt.Errorf("%w: unknown border policy %d", ErrInvalidConfig, int(border))
	}
	return computeGradient(src, ks, norm, border, workers), nil
}

func computeGradient(src *mat.Dense, ks KernelSet, norm Norm, border BorderPolicy, workers int) *GradientField {
	rows, cols := src.Dims()
	f := &GradientField{
		Gx:        mat.NewDense(rows, cols, nil),
		Gy:        mat.NewDense(rows, cols, nil),
		Magnitude: mat.NewDense(rows, cols, nil),
		Direction: make([]Direction, rows*cols),
	}
	forEachRow(rows, workers, func(i int) {
		for j := 0; j < cols; j++ {
			gx := Convolve(src, ks.X, i, j, border)
			gy := Convolve(src, ks.Y, i, j, border)
			f.Gx.Set(i, j, gx)
			f.Gy.Set(i, j, gy)
			f.Magnitude.Set(i, j, norm.Magnitude(gx, gy))
			f.Direction[i*cols+j] = DirectionOf(gx, gy)
		}
	})
	return f
}
