package edge

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// BorderPolicy decides what a kernel sees past the edge of the grid.
type BorderPolicy int

const (
	// BorderZero treats out-of-bounds neighbours as contributing nothing.
	// Gradients near the border are therefore weaker for bright content and
	// a constant non-zero image shows a frame of edges along its border.
	BorderZero BorderPolicy = iota

	// BorderClamp replicates the nearest in-bounds sample.
	BorderClamp
)

func (b BorderPolicy) String() string {
	switch b {
	case BorderZero:
		return "zero"
	case BorderClamp:
		return "clamp"
	default:
		return fmt.Sprintf("BorderPolicy(%d)", int(b))
	}
}

func (b BorderPolicy) valid() bool {
	return b == BorderZero || b == BorderClamp
}

// ParseBorderPolicy accepts "zero" and "clamp". An empty string means zero.
func ParseBorderPolicy(s string) (BorderPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "zero":
		return BorderZero, nil
	case "clamp", "replicate":
		return BorderClamp, nil
	default:
		return 0, fmt.Errorf("%w: unknown border policy %q", ErrInvalidConfig, s)
	}
}

// Convolve returns the kernel-weighted sum of src around (row, col).
//
// The kernel is anchored at (kr/2, kc/2): a 3x3 kernel covers the full
// 8-neighbourhood, a 2x2 kernel covers the pixel and its upper and left
// neighbours. The kernel is applied as written, without flipping.
func Convolve(src, kernel mat.Matrix, row, col int, border BorderPolicy) float64 {
	rows, cols := src.Dims()
	kr, kc := kernel.Dims()
	offR, offC := kr/2, kc/2

	var sum float64
	for ki := 0; ki < kr; ki++ {
		r := row + ki - offR
		if r < 0 || r >= rows {
			if border == BorderZero {
				continue
			}
			r = clamp(r, 0, rows-1)
		}
		for kj := 0; kj < kc; kj++ {
			c := col + kj - offC
			if c < 0 || c >= cols {
				if border == BorderZero {
					continue
				}
				c = clamp(c, 0, cols-1)
			}
			sum += src.At(r, c) * kernel.At(ki, kj)
		}
	}
	return sum
}

// clamp constrains val to [lo, hi].
func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
