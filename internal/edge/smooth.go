package edge

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/combin"
)

// DefaultBlurSize is the side length of the default smoothing kernel.
const DefaultBlurSize = 5

// Smoother blurs a plane with a normalised binomial approximation of a
// Gaussian before gradients are estimated.
type Smoother struct {
	kernel *mat.Dense
	border BorderPolicy
}

// NewSmoother returns a smoother with a size x size kernel. size must be 3, 5
// or 7; the 5x5 kernel approximates sigma of about 1.
func NewSmoother(size int, border BorderPolicy) (*Smoother, error) {
	if !border.valid() {
		return nil, fmt.Errorf("%w: unknown border policy %d", ErrInvalidConfig, int(border))
	}
	k, err := GaussianKernel(size)
	if err != nil {
		return nil, err
	}
	return &Smoother{kernel: k, border: border}, nil
}

// GaussianKernel returns the size x size outer product of the binomial row
// C(size-1, k), normalised to sum to 1. For size 5 the weights are
//
//	1  4  6  4 1
//	4 16 24 16 4
//	6 24 36 24 6
//	4 16 24 16 4
//	1  4  6  4 1
//
// divided by 256.
func GaussianKernel(size int) (*mat.Dense, error) {
	switch size {
	case 3, 5, 7:
	default:
		return nil, fmt.Errorf("%w: blur size %d, want 3, 5 or 7", ErrInvalidConfig, size)
	}

	w := make([]float64, size)
	for k := range w {
		w[k] = float64(combin.Binomial(size-1, k))
	}
	v := mat.NewVecDense(size, w)

	var k mat.Dense
	k.Outer(1, v, v)
	k.Scale(1/mat.Sum(&k), &k)
	return &k, nil
}

// Kernel returns a copy of the smoothing kernel.
func (s *Smoother) Kernel() *mat.Dense {
	return mat.DenseCopyOf(s.kernel)
}

// Smooth returns a blurred copy of src with identical dimensions.
func (s *Smoother) Smooth(src *mat.Dense) *mat.Dense {
	return s.smooth(src, 1)
}

// SmoothGrid validates g and returns its blurred float plane.
func (s *Smoother) SmoothGrid(g PixelGrid) (*mat.Dense, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return s.smooth(g.plane(), 1), nil
}

func (s *Smoother) smooth(src *mat.Dense, workers int) *mat.Dense {
	rows, cols := src.Dims()
	dst := mat.NewDense(rows, cols, nil)
	forEachRow(rows, workers, func(i int) {
		for j := 0; j < cols; j++ {
			dst.Set(i, j, Convolve(src, s.kernel, i, j, s.border))
		}
	})
	return dst
}
