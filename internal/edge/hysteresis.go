package edge

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Strength is the hysteresis class of a pixel.
type Strength uint8

const (
	Rejected Strength = iota
	Weak
	Strong
)

func (s Strength) String() string {
	switch s {
	case Weak:
		return "weak"
	case Strong:
		return "strong"
	default:
		return "rejected"
	}
}

// Classify places a pixel into a hysteresis class. Pixels removed by
// non-maximum suppression and pixels with no gradient at all are always
// Rejected, whatever the thresholds.
func Classify(magnitude float64, candidate bool, low, high float64) Strength {
	switch {
	case !candidate, magnitude <= 0:
		return Rejected
	case magnitude >= high:
		return Strong
	case magnitude >= low:
		return Weak
	default:
		return Rejected
	}
}

// Stats summarises one detection run.
type Stats struct {
	Rows       int `json:"rows"`
	Cols       int `json:"cols"`
	Candidates int `json:"candidates"`
	Strong     int `json:"strong"`
	Weak       int `json:"weak"`
	Components int `json:"components"`
	Pruned     int `json:"pruned"`
	EdgePixels int `json:"edge_pixels"`
}

// Trace runs hysteresis over the candidates: every 8-connected component
// grown from a Strong pixel through Strong or Weak pixels is kept when it has
// at least minEdgeSize pixels. Weak pixels that no Strong pixel reaches are
// dropped.
func Trace(magnitude mat.Matrix, candidates EdgeMask, low, high float64, minEdgeSize int) (EdgeMask, error) {
	rows, cols := magnitude.Dims()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: empty magnitude plane", ErrInvalidInput)
	}
	if cr, cc := candidates.Dims(); cr != rows || cc != cols {
		return nil, fmt.Errorf("%w: candidate mask is %dx%d, magnitude plane is %dx%d", ErrInvalidInput, cr, cc, rows, cols)
	}
	if err := validateHysteresis(low, high, minEdgeSize); err != nil {
		return nil, err
	}
	out, _ := trace(magnitude, candidates, low, high, minEdgeSize)
	return out, nil
}

func validateHysteresis(low, high float64, minEdgeSize int) error {
	if math.IsNaN(low) || math.IsNaN(high) || low < 0 || high < 0 {
		return fmt.Errorf("%w: thresholds must be non-negative, got low=%v high=%v", ErrInvalidConfig, low, high)
	}
	if low > high {
		return fmt.Errorf("%w: low threshold %v exceeds high threshold %v", ErrInvalidConfig, low, high)
	}
	if minEdgeSize < 1 {
		return fmt.Errorf("%w: minimum edge size %d, want >= 1", ErrInvalidConfig, minEdgeSize)
	}
	return nil
}

// trace works on flat row-major scratch buffers that live for one call.
func trace(magnitude mat.Matrix, candidates EdgeMask, low, high float64, minEdgeSize int) (EdgeMask, Stats) {
	rows, cols := magnitude.Dims()
	n := rows * cols
	stats := Stats{Rows: rows, Cols: cols}

	strength := make([]Strength, n)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if candidates[i][j] {
				stats.Candidates++
			}
			s := Classify(magnitude.At(i, j), candidates[i][j], low, high)
			switch s {
			case Strong:
				stats.Strong++
			case Weak:
				stats.Weak++
			}
			strength[i*cols+j] = s
		}
	}

	out := NewEdgeMask(rows, cols)
	visited := make([]bool, n)
	var stack, component []int

	for seed := 0; seed < n; seed++ {
		if strength[seed] != Strong || visited[seed] {
			continue
		}

		component = component[:0]
		stack = append(stack[:0], seed)
		visited[seed] = true
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			component = append(component, p)

			r, c := p/cols, p%cols
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr, nc := r+dr, c+dc
					if !inBounds(nr, nc, rows, cols) {
						continue
					}
					q := nr*cols + nc
					if visited[q] || strength[q] == Rejected {
						continue
					}
					visited[q] = true
					stack = append(stack, q)
				}
			}
		}

		stats.Components++
		if len(component) < minEdgeSize {
			stats.Pruned++
			continue
		}
		for _, p := range component {
			out[p/cols][p%cols] = true
		}
		stats.EdgePixels += len(component)
	}

	return out, stats
}
