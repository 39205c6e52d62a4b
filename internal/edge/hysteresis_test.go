package edge

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func allCandidates(rows, cols int) EdgeMask {
	m := NewEdgeMask(rows, cols)
	for i := range m {
		for j := range m[i] {
			m[i][j] = true
		}
	}
	return m
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		mag       float64
		candidate bool
		want      Strength
	}{
		{"strong", 200, true, Strong},
		{"exactly high", 150, true, Strong},
		{"weak", 100, true, Weak},
		{"exactly low", 50, true, Weak},
		{"below low", 49, true, Rejected},
		{"suppressed strong", 200, false, Rejected},
		{"zero", 0, true, Rejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.mag, tt.candidate, 50, 150); got != tt.want {
				t.Errorf("Classify(%v, %v): got %s, want %s", tt.mag, tt.candidate, got, tt.want)
			}
		})
	}

	if got := Classify(0, true, 0, 0); got != Rejected {
		t.Errorf("zero magnitude with zero thresholds: got %s, want rejected", got)
	}
}

func TestTrace_IsolatedStrongPixel(t *testing.T) {
	mag := mat.NewDense(5, 5, nil)
	mag.Set(2, 2, 200)
	candidates := allCandidates(5, 5)

	kept, err := Trace(mag, candidates, 50, 150, 1)
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	if kept.Count() != 1 || !kept[2][2] {
		t.Errorf("minEdgeSize 1: got\n%s\nwant only (2,2)", kept)
	}

	pruned, err := Trace(mag, candidates, 50, 150, 2)
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	if pruned.Count() != 0 {
		t.Errorf("minEdgeSize 2: got %d pixels, want 0", pruned.Count())
	}
}

func TestTrace_WeakChains(t *testing.T) {
	// A strong seed at (0,0) reaches the weak diagonal chain; the weak pixel
	// at (4,0) is cut off from every strong pixel.
	mag := mat.NewDense(5, 5, []float64{
		200, 0, 0, 0, 0,
		0, 80, 0, 0, 0,
		0, 0, 80, 0, 0,
		0, 0, 0, 80, 0,
		80, 0, 0, 0, 0,
	})

	got, err := Trace(mag, allCandidates(5, 5), 50, 150, 1)
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	for _, p := range [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}} {
		if !got[p[0]][p[1]] {
			t.Errorf("(%d,%d) should be traced from the seed", p[0], p[1])
		}
	}
	if got[4][0] {
		t.Error("unreachable weak pixel must be excluded")
	}
	if got.Count() != 4 {
		t.Errorf("Count: got %d, want 4", got.Count())
	}
}

func TestTrace_NonCandidatesBreakChains(t *testing.T) {
	mag := mat.NewDense(1, 4, []float64{200, 200, 80, 80})
	candidates := allCandidates(1, 4)
	candidates[0][1] = false

	got, _ := Trace(mag, candidates, 50, 150, 1)
	if want := "1000"; got.String() != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestTrace_PrunesSmallComponents(t *testing.T) {
	mag := mat.NewDense(3, 7, []float64{
		200, 200, 200, 0, 0, 0, 200,
		0, 0, 0, 0, 0, 0, 80,
		0, 0, 0, 0, 0, 0, 0,
	})

	_, stats := trace(mag, allCandidates(3, 7), 50, 150, 3)
	if stats.Components != 2 || stats.Pruned != 1 || stats.EdgePixels != 3 {
		t.Errorf("stats: got %+v", stats)
	}
	if stats.Strong != 4 || stats.Weak != 1 {
		t.Errorf("strong/weak: got %d/%d, want 4/1", stats.Strong, stats.Weak)
	}

	got, _ := Trace(mag, allCandidates(3, 7), 50, 150, 3)
	if got.String() != "1110000\n0000000\n0000000" {
		t.Errorf("got\n%s", got)
	}

	got, _ = Trace(mag, allCandidates(3, 7), 50, 150, 2)
	if got.Count() != 5 {
		t.Errorf("minEdgeSize 2: got %d pixels, want 5", got.Count())
	}
}

func TestTrace_Errors(t *testing.T) {
	mag := mat.NewDense(2, 2, nil)
	cand := allCandidates(2, 2)

	tests := []struct {
		name      string
		mag       mat.Matrix
		cand      EdgeMask
		low, high float64
		minSize   int
		want      error
	}{
		{"shape mismatch", mag, allCandidates(2, 3), 1, 2, 1, ErrInvalidInput},
		{"low above high", mag, cand, 3, 2, 1, ErrInvalidConfig},
		{"negative", mag, cand, -1, 2, 1, ErrInvalidConfig},
		{"min size zero", mag, cand, 1, 2, 0, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Trace(tt.mag, tt.cand, tt.low, tt.high, tt.minSize)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}
