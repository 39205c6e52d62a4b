package edge

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// KernelSet is the pair of convolution kernels that defines a gradient
// operator. X responds to intensity increasing toward higher column indices;
// Y responds to intensity increasing toward row 0 (upward), which is the
// orientation DirectionOf assumes when binning diagonals.
type KernelSet struct {
	Name string
	X    *mat.Dense
	Y    *mat.Dense
}

var (
	sobelX = [][]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [][]float64{
		{1, 2, 1},
		{0, 0, 0},
		{-1, -2, -1},
	}

	prewittX = [][]float64{
		{-1, 0, 1},
		{-1, 0, 1},
		{-1, 0, 1},
	}
	prewittY = [][]float64{
		{1, 1, 1},
		{0, 0, 0},
		{-1, -1, -1},
	}

	robertsX = [][]float64{
		{1, 0},
		{0, -1},
	}
	robertsY = [][]float64{
		{0, -1},
		{1, 0},
	}
)

// Kernel set names accepted by KernelSetByName.
const (
	KernelSobel   = "sobel"
	KernelPrewitt = "prewitt"
	KernelRoberts = "roberts"
)

// Sobel returns the 3x3 Sobel operator.
func Sobel() KernelSet { return mustKernelSet(KernelSobel, sobelX, sobelY) }

// Prewitt returns the 3x3 Prewitt operator.
func Prewitt() KernelSet { return mustKernelSet(KernelPrewitt, prewittX, prewittY) }

// RobertsCross returns the 2x2 Roberts Cross operator.
func RobertsCross() KernelSet { return mustKernelSet(KernelRoberts, robertsX, robertsY) }

// KernelNames lists the built-in kernel sets.
func KernelNames() []string {
	return []string{KernelSobel, KernelPrewitt, KernelRoberts}
}

// KernelSetByName returns a built-in kernel set. Matching is case-insensitive
// and "roberts-cross" / "roberts_cross" are accepted aliases for "roberts".
func KernelSetByName(name string) (KernelSet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case KernelSobel:
		return Sobel(), nil
	case KernelPrewitt:
		return Prewitt(), nil
	case KernelRoberts, "roberts-cross", "roberts_cross", "robertscross":
		return RobertsCross(), nil
	default:
		return KernelSet{}, fmt.Errorf("%w: unknown kernel set %q", ErrInvalidConfig, name)
	}
}

// NewKernelSet builds a kernel set from row-major literals. Both kernels must
// be non-empty, rectangular and of identical dimensions.
func NewKernelSet(name string, x, y [][]float64) (KernelSet, error) {
	kx, err := denseFromRows(x)
	if err != nil {
		return KernelSet{}, fmt.Errorf("x kernel: %w", err)
	}
	ky, err := denseFromRows(y)
	if err != nil {
		return KernelSet{}, fmt.Errorf("y kernel: %w", err)
	}
	ks := KernelSet{Name: name, X: kx, Y: ky}
	if err := ks.Validate(); err != nil {
		return KernelSet{}, err
	}
	return ks, nil
}

// Validate checks that both kernels are present and share dimensions.
func (k KernelSet) Validate() error {
	if k.X == nil || k.Y == nil {
		return fmt.Errorf("%w: kernel set %q is missing a kernel", ErrInvalidConfig, k.Name)
	}
	xr, xc := k.X.Dims()
	yr, yc := k.Y.Dims()
	if xr != yr || xc != yc {
		return fmt.Errorf("%w: kernel set %q has mismatched kernels %dx%d and %dx%d",
			ErrInvalidConfig, k.Name, xr, xc, yr, yc)
	}
	return nil
}

func denseFromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty kernel", ErrInvalidConfig)
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: kernel row %d has %d entries, want %d", ErrInvalidConfig, i, len(row), cols)
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), cols, data), nil
}

func mustKernelSet(name string, x, y [][]float64) KernelSet {
	ks, err := NewKernelSet(name, x, y)
	if err != nil {
		panic(err)
	}
	return ks
}
