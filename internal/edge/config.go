package edge

import (
	"fmt"
	"math"
	"strings"
)

// Mode selects how a gradient field is turned into an edge mask.
type Mode int

const (
	// ModeCanny applies non-maximum suppression and hysteresis tracing.
	ModeCanny Mode = iota
	// ModeThreshold marks every pixel whose magnitude reaches a single
	// threshold. This is how the plain Sobel, Prewitt and Roberts Cross
	// detectors classify.
	ModeThreshold
)

func (m Mode) String() string {
	switch m {
	case ModeCanny:
		return "canny"
	case ModeThreshold:
		return "threshold"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "canny" and "threshold". An empty string means canny.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "canny":
		return ModeCanny, nil
	case "threshold", "simple":
		return ModeThreshold, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, s)
	}
}

// Defaults used by DefaultConfig.
const (
	DefaultLowThreshold  = 50.0
	DefaultHighThreshold = 150.0
	DefaultThreshold     = 100.0
	DefaultMinEdgeSize   = 1
)

// Config is an immutable detector configuration. Build one with NewConfig;
// the zero value is not runnable.
type Config struct {
	kernels     KernelSet
	norm        Norm
	low         float64
	high        float64
	minEdgeSize int
	blur        bool
	blurSize    int
	border      BorderPolicy
	mode        Mode
	threshold   float64
	workers     int
}

// Option adjusts a Config under construction.
type Option func(*Config)

// WithKernels selects the gradient operator.
func WithKernels(ks KernelSet) Option {
	return func(c *Config) { c.kernels = ks }
}

// WithNorm selects the magnitude norm.
func WithNorm(n Norm) Option {
	return func(c *Config) { c.norm = n }
}

// WithThresholds sets the hysteresis thresholds.
func WithThresholds(low, high float64) Option {
	return func(c *Config) {
		c.low = low
		c.high = high
	}
}

// WithMinEdgeSize sets the smallest component kept by tracing. 1 disables
// pruning.
func WithMinEdgeSize(n int) Option {
	return func(c *Config) { c.minEdgeSize = n }
}

// WithGaussianBlur turns pre-smoothing on or off.
func WithGaussianBlur(on bool) Option {
	return func(c *Config) { c.blur = on }
}

// WithBlurSize sets the smoothing kernel side length (3, 5 or 7).
func WithBlurSize(n int) Option {
	return func(c *Config) { c.blurSize = n }
}

// WithBorder sets the border policy for every convolution in the run.
func WithBorder(b BorderPolicy) Option {
	return func(c *Config) { c.border = b }
}

// WithMode selects Canny or single-threshold classification.
func WithMode(m Mode) Option {
	return func(c *Config) { c.mode = m }
}

// WithThreshold sets the single magnitude threshold used by ModeThreshold.
func WithThreshold(t float64) Option {
	return func(c *Config) { c.threshold = t }
}

// WithWorkers sets how many goroutines evaluate per-pixel stages.
func WithWorkers(n int) Option {
	return func(c *Config) { c.workers = n }
}

// DefaultConfig returns the documented defaults: Sobel, L2, thresholds 50 and
// 150, no pruning, 5x5 blur, zero border, Canny, one worker.
func DefaultConfig() Config {
	return Config{
		kernels:     Sobel(),
		norm:        NormL2,
		low:         DefaultLowThreshold,
		high:        DefaultHighThreshold,
		minEdgeSize: DefaultMinEdgeSize,
		blur:        true,
		blurSize:    DefaultBlurSize,
		border:      BorderZero,
		mode:        ModeCanny,
		threshold:   DefaultThreshold,
		workers:     1,
	}
}

// NewConfig applies opts over DefaultConfig and validates the result.
func NewConfig(opts ...Option) (Config, error) {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports the first problem that would stop a run, wrapped in
// ErrInvalidConfig.
func (c Config) Validate() error {
	if err := c.kernels.Validate(); err != nil {
		return err
	}
	if !c.norm.valid() {
		return fmt.Errorf("%w: unknown norm %d", ErrInvalidConfig, int(c.norm))
	}
	if err := validateHysteresis(c.low, c.high, c.minEdgeSize); err != nil {
		return err
	}
	if c.blur {
		if _, err := GaussianKernel(c.blurSize); err != nil {
			return err
		}
	}
	if !c.border.valid() {
		return fmt.Errorf("%w: unknown border policy %d", ErrInvalidConfig, int(c.border))
	}
	if c.mode != ModeCanny && c.mode != ModeThreshold {
		return fmt.Errorf("%w: unknown mode %d", ErrInvalidConfig, int(c.mode))
	}
	if math.IsNaN(c.threshold) || c.threshold < 0 {
		return fmt.Errorf("%w: threshold must be non-negative, got %v", ErrInvalidConfig, c.threshold)
	}
	if c.workers < 1 {
		return fmt.Errorf("%w: workers %d, want >= 1", ErrInvalidConfig, c.workers)
	}
	return nil
}

func (c Config) Kernels() KernelSet     { return c.kernels }
func (c Config) Norm() Norm             { return c.norm }
func (c Config) LowThreshold() float64  { return c.low }
func (c Config) HighThreshold() float64 { return c.high }
func (c Config) MinEdgeSize() int       { return c.minEdgeSize }
func (c Config) GaussianBlur() bool     { return c.blur }
func (c Config) BlurSize() int          { return c.blurSize }
func (c Config) Border() BorderPolicy   { return c.border }
func (c Config) Mode() Mode             { return c.mode }
func (c Config) Threshold() float64     { return c.threshold }
func (c Config) Workers() int           { return c.workers }
