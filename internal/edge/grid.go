package edge

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// PixelGrid is a rectangular grid of single-channel intensity samples indexed
// as grid[row][col]. Values are conventionally in [0, 255] but the range is
// not enforced. The detector never writes to a PixelGrid it is given.
type PixelGrid [][]int

// Dims returns the number of rows and the length of the first row.
func (g PixelGrid) Dims() (rows, cols int) {
	if len(g) == 0 {
		return 0, 0
	}
	return len(g), len(g[0])
}

// Validate returns an error wrapping ErrInvalidInput when the grid has no
// rows, no columns, or rows of differing lengths.
func (g PixelGrid) Validate() error {
	if len(g) == 0 {
		return fmt.Errorf("%w: grid has no rows", ErrInvalidInput)
	}
	cols := len(g[0])
	if cols == 0 {
		return fmt.Errorf("%w: grid has no columns", ErrInvalidInput)
	}
	for i, row := range g {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidInput, i, len(row), cols)
		}
	}
	return nil
}

// plane copies a validated grid into a fresh float plane.
func (g PixelGrid) plane() *mat.Dense {
	rows, cols := g.Dims()
	data := make([]float64, rows*cols)
	for i, row := range g {
		for j, v := range row {
			data[i*cols+j] = float64(v)
		}
	}
	return mat.NewDense(rows, cols, data)
}

// EdgeMask marks detected edge pixels. It always has the dimensions of the
// grid it was computed from and is owned by the caller once returned.
type EdgeMask [][]bool

// NewEdgeMask allocates an all-false mask backed by a single slice.
func NewEdgeMask(rows, cols int) EdgeMask {
	backing := make([]bool, rows*cols)
	m := make(EdgeMask, rows)
	for i := range m {
		m[i] = backing[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return m
}

// Dims returns the number of rows and the length of the first row.
func (m EdgeMask) Dims() (rows, cols int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m), len(m[0])
}

// Count returns the number of true pixels.
func (m EdgeMask) Count() int {
	n := 0
	for _, row := range m {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// Equal reports whether both masks have the same shape and contents.
func (m EdgeMask) Equal(other EdgeMask) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if len(m[i]) != len(other[i]) {
			return false
		}
		for j := range m[i] {
			if m[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// Contains reports whether every true pixel of other is also true in m.
func (m EdgeMask) Contains(other EdgeMask) bool {
	for i := range other {
		for j, v := range other[i] {
			if v && (i >= len(m) || j >= len(m[i]) || !m[i][j]) {
				return false
			}
		}
	}
	return true
}

// String renders the mask one row per line, '1' for edges and '0' otherwise.
func (m EdgeMask) String() string {
	var b strings.Builder
	for i, row := range m {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(rowString(row))
	}
	return b.String()
}

// Rows renders each row as a string of '0' and '1'.
func (m EdgeMask) Rows() []string {
	out := make([]string, len(m))
	for i, row := range m {
		out[i] = rowString(row)
	}
	return out
}

func rowString(row []bool) string {
	buf := make([]byte, len(row))
	for j, v := range row {
		if v {
			buf[j] = '1'
		} else {
			buf[j] = '0'
		}
	}
	return string(buf)
}
