package edge

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Suppress thins a gradient field to its ridge lines. A pixel stays a
// candidate unless one of its two in-bounds neighbours along its direction
// has a strictly greater magnitude; equal magnitudes never suppress, and
// out-of-bounds neighbours are ignored.
func Suppress(magnitude mat.Matrix, directions []Direction) (EdgeMask, error) {
	rows, cols := magnitude.Dims()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: empty magnitude plane", ErrInvalidInput)
	}
	if len(directions) != rows*cols {
		return nil, fmt.Errorf("%w: %d directions for a %dx%d plane", ErrInvalidInput, len(directions), rows, cols)
	}
	return suppress(magnitude, directions, 1), nil
}

func suppress(magnitude mat.Matrix, directions []Direction, workers int) EdgeMask {
	rows, cols := magnitude.Dims()
	out := NewEdgeMask(rows, cols)
	forEachRow(rows, workers, func(i int) {
		for j := 0; j < cols; j++ {
			out[i][j] = isLocalMax(magnitude, directions[i*cols+j], i, j, rows, cols)
		}
	})
	return out
}

func isLocalMax(magnitude mat.Matrix, d Direction, i, j, rows, cols int) bool {
	mag := magnitude.At(i, j)
	dr1, dc1, dr2, dc2 := d.Neighbours()
	if inBounds(i+dr1, j+dc1, rows, cols) && magnitude.At(i+dr1, j+dc1) > mag {
		return false
	}
	if inBounds(i+dr2, j+dc2, rows, cols) && magnitude.At(i+dr2, j+dc2) > mag {
		return false
	}
	return true
}

func inBounds(i, j, rows, cols int) bool {
	return i >= 0 && i < rows && j >= 0 && j < cols
}
