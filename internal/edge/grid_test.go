package edge

import (
	"errors"
	"testing"
)

func TestPixelGrid_Validate(t *testing.T) {
	tests := []struct {
		name    string
		grid    PixelGrid
		wantErr bool
	}{
		{"nil grid", nil, true},
		{"no rows", PixelGrid{}, true},
		{"no columns", PixelGrid{{}, {}}, true},
		{"ragged", PixelGrid{{1, 2, 3}, {1, 2}}, true},
		{"single pixel", PixelGrid{{7}}, false},
		{"rectangular", PixelGrid{{1, 2}, {3, 4}, {5, 6}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.grid.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("Validate(): got %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate(): unexpected error %v", err)
			}
		})
	}
}

func TestPixelGrid_Plane(t *testing.T) {
	g := PixelGrid{{1, 2, 3}, {4, 5, 6}}
	p := g.plane()

	rows, cols := p.Dims()
	if rows != 2 || cols != 3 {
		t.Fatalf("plane dims: got %dx%d, want 2x3", rows, cols)
	}
	if p.At(1, 2) != 6 {
		t.Errorf("plane(1,2): got %v, want 6", p.At(1, 2))
	}

	p.Set(0, 0, 99)
	if g[0][0] != 1 {
		t.Error("plane must not alias the grid")
	}
}

func TestEdgeMask_Basics(t *testing.T) {
	m := NewEdgeMask(2, 3)
	if rows, cols := m.Dims(); rows != 2 || cols != 3 {
		t.Fatalf("Dims: got %dx%d, want 2x3", rows, cols)
	}
	if m.Count() != 0 {
		t.Errorf("Count on new mask: got %d, want 0", m.Count())
	}

	m[0][1] = true
	m[1][2] = true
	if m.Count() != 2 {
		t.Errorf("Count: got %d, want 2", m.Count())
	}
	if got := m.String(); got != "010\n001" {
		t.Errorf("String: got %q", got)
	}
	rows := m.Rows()
	if len(rows) != 2 || rows[0] != "010" || rows[1] != "001" {
		t.Errorf("Rows: got %v", rows)
	}

	// Writing one row must not bleed into the next.
	m[0][2] = true
	if m[1][0] {
		t.Error("rows share cells")
	}
}

func TestEdgeMask_EqualAndContains(t *testing.T) {
	a := NewEdgeMask(2, 2)
	b := NewEdgeMask(2, 2)
	a[0][0], a[1][1] = true, true
	b[0][0] = true

	if a.Equal(b) {
		t.Error("Equal: masks differ but reported equal")
	}
	if !a.Contains(b) {
		t.Error("Contains: a should contain b")
	}
	if b.Contains(a) {
		t.Error("Contains: b should not contain a")
	}

	b[1][1] = true
	if !a.Equal(b) {
		t.Error("Equal: identical masks reported different")
	}
	if a.Equal(NewEdgeMask(2, 3)) {
		t.Error("Equal: different shapes reported equal")
	}
}
