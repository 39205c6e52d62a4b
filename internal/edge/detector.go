package edge

import (
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"
)

// classifier turns a gradient field into the final mask.
type classifier interface {
	classify(f *GradientField, workers int) (EdgeMask, Stats)
}

// cannyClassifier runs non-maximum suppression followed by hysteresis.
type cannyClassifier struct {
	low, high   float64
	minEdgeSize int
}

func (c cannyClassifier) classify(f *GradientField, workers int) (EdgeMask, Stats) {
	candidates := suppress(f.Magnitude, f.Direction, workers)
	return trace(f.Magnitude, candidates, c.low, c.high, c.minEdgeSize)
}

// thresholdClassifier marks every pixel at or above a single magnitude.
// Zero-gradient pixels are never marked.
type thresholdClassifier struct {
	threshold float64
}

func (c thresholdClassifier) classify(f *GradientField, workers int) (EdgeMask, Stats) {
	rows, cols := f.Dims()
	out := NewEdgeMask(rows, cols)
	forEachRow(rows, workers, func(i int) {
		for j := 0; j < cols; j++ {
			mag := f.Magnitude.At(i, j)
			out[i][j] = mag > 0 && mag >= c.threshold
		}
	})
	n := out.Count()
	return out, Stats{Rows: rows, Cols: cols, Candidates: rows * cols, Strong: n, EdgePixels: n}
}

// Detector runs the configured edge-detection pipeline. A Detector holds no
// per-run state and may be shared by concurrent callers.
type Detector struct {
	cfg        Config
	smoother   *Smoother
	classifier classifier
	log        zerolog.Logger
}

// DetectorOption adjusts a Detector under construction.
type DetectorOption func(*Detector)

// WithLogger attaches a logger that receives Debug events for each stage.
func WithLogger(l zerolog.Logger) DetectorOption {
	return func(d *Detector) { d.log = l }
}

// NewDetector validates cfg and prepares a detector for it.
func NewDetector(cfg Config, opts ...DetectorOption) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d := &Detector{cfg: cfg, log: zerolog.Nop()}
	if cfg.blur {
		s, err := NewSmoother(cfg.blurSize, cfg.border)
		if err != nil {
			return nil, err
		}
		d.smoother = s
	}
	switch cfg.mode {
	case ModeThreshold:
		d.classifier = thresholdClassifier{threshold: cfg.threshold}
	default:
		d.classifier = cannyClassifier{low: cfg.low, high: cfg.high, minEdgeSize: cfg.minEdgeSize}
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// NewCanny returns a Canny detector built from DefaultConfig and opts.
func NewCanny(opts ...Option) (*Detector, error) {
	return newWith(append([]Option{WithMode(ModeCanny)}, opts...))
}

// NewSobel returns a single-threshold Sobel detector.
func NewSobel(threshold float64, opts ...Option) (*Detector, error) {
	return newSimple(Sobel(), threshold, opts)
}

// NewPrewitt returns a single-threshold Prewitt detector.
func NewPrewitt(threshold float64, opts ...Option) (*Detector, error) {
	return newSimple(Prewitt(), threshold, opts)
}

// NewRobertsCross returns a single-threshold Roberts Cross detector.
func NewRobertsCross(threshold float64, opts ...Option) (*Detector, error) {
	return newSimple(RobertsCross(), threshold, opts)
}

func newSimple(ks KernelSet, threshold float64, opts []Option) (*Detector, error) {
	base := []Option{WithKernels(ks), WithMode(ModeThreshold), WithThreshold(threshold)}
	return newWith(append(base, opts...))
}

func newWith(opts []Option) (*Detector, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return NewDetector(cfg)
}

// Config returns the detector's configuration.
func (d *Detector) Config() Config {
	return d.cfg
}

// Detect runs the pipeline on grid and returns a freshly allocated mask.
// grid is never modified.
func (d *Detector) Detect(grid PixelGrid) (EdgeMask, error) {
	mask, _, err := d.DetectWithStats(grid)
	return mask, err
}

// DetectWithStats is Detect plus counters describing the run.
func (d *Detector) DetectWithStats(grid PixelGrid) (EdgeMask, Stats, error) {
	if err := grid.Validate(); err != nil {
		return nil, Stats{}, err
	}
	rows, cols := grid.Dims()
	workers := d.cfg.workers

	var src *mat.Dense
	if d.smoother != nil {
		src = d.smoother.smooth(grid.plane(), workers)
	} else {
		src = grid.plane()
	}
	d.log.Debug().
		Int("rows", rows).
		Int("cols", cols).
		Bool("blur", d.smoother != nil).
		Msg("plane prepared")

	field := computeGradient(src, d.cfg.kernels, d.cfg.norm, d.cfg.border, workers)
	d.log.Debug().
		Str("kernels", d.cfg.kernels.Name).
		Stringer("norm", d.cfg.norm).
		Float64("max_magnitude", mat.Max(field.Magnitude)).
		Msg("gradient computed")

	mask, stats := d.classifier.classify(field, workers)
	d.log.Debug().
		Stringer("mode", d.cfg.mode).
		Int("candidates", stats.Candidates).
		Int("strong", stats.Strong).
		Int("weak", stats.Weak).
		Int("components", stats.Components).
		Int("pruned", stats.Pruned).
		Int("edge_pixels", stats.EdgePixels).
		Msg("edges classified")

	return mask, stats, nil
}

// Detect validates cfg and runs a single detection on grid.
func Detect(grid PixelGrid, cfg Config) (EdgeMask, error) {
	d, err := NewDetector(cfg)
	if err != nil {
		return nil, err
	}
	return d.Detect(grid)
}
