package edge

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig(): %v", err)
	}
	if c.Norm() != NormL2 {
		t.Errorf("Norm: got %s, want l2", c.Norm())
	}
	if c.MinEdgeSize() != 1 {
		t.Errorf("MinEdgeSize: got %d, want 1", c.MinEdgeSize())
	}
	if c.Kernels().Name != KernelSobel {
		t.Errorf("Kernels: got %s, want sobel", c.Kernels().Name)
	}
	if c.LowThreshold() != 50 || c.HighThreshold() != 150 {
		t.Errorf("thresholds: got %v/%v, want 50/150", c.LowThreshold(), c.HighThreshold())
	}
	if !c.GaussianBlur() || c.BlurSize() != 5 {
		t.Errorf("blur: got %v size %d", c.GaussianBlur(), c.BlurSize())
	}
	if c.Border() != BorderZero || c.Mode() != ModeCanny || c.Workers() != 1 {
		t.Errorf("border/mode/workers: got %s/%s/%d", c.Border(), c.Mode(), c.Workers())
	}
}

func TestNewConfig_Options(t *testing.T) {
	c, err := NewConfig(
		WithKernels(RobertsCross()),
		WithNorm(NormL1),
		WithThresholds(10, 20),
		WithMinEdgeSize(4),
		WithGaussianBlur(false),
		WithBorder(BorderClamp),
		WithWorkers(3),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if c.Kernels().Name != KernelRoberts || c.Norm() != NormL1 {
		t.Errorf("kernel/norm: got %s/%s", c.Kernels().Name, c.Norm())
	}
	if c.LowThreshold() != 10 || c.HighThreshold() != 20 || c.MinEdgeSize() != 4 {
		t.Errorf("hysteresis: got %v/%v/%d", c.LowThreshold(), c.HighThreshold(), c.MinEdgeSize())
	}
	if c.GaussianBlur() || c.Border() != BorderClamp || c.Workers() != 3 {
		t.Errorf("blur/border/workers: got %v/%s/%d", c.GaussianBlur(), c.Border(), c.Workers())
	}
}

func TestNewConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"low above high", []Option{WithThresholds(151, 150)}},
		{"negative low", []Option{WithThresholds(-1, 150)}},
		{"NaN high", []Option{WithThresholds(0, math.NaN())}},
		{"min edge size zero", []Option{WithMinEdgeSize(0)}},
		{"min edge size negative", []Option{WithMinEdgeSize(-3)}},
		{"unknown norm", []Option{WithNorm(Norm(7))}},
		{"bad blur size", []Option{WithBlurSize(4)}},
		{"unknown border", []Option{WithBorder(BorderPolicy(3))}},
		{"unknown mode", []Option{WithMode(Mode(9))}},
		{"negative threshold", []Option{WithThreshold(-5)}},
		{"no workers", []Option{WithWorkers(0)}},
		{"missing kernels", []Option{WithKernels(KernelSet{Name: "none"})}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(tt.opts...)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("got %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestNewConfig_BlurSizeIgnoredWithoutBlur(t *testing.T) {
	if _, err := NewConfig(WithGaussianBlur(false), WithBlurSize(4)); err != nil {
		t.Errorf("blur size should not be checked when blur is off: %v", err)
	}
}

func TestConfig_ZeroValueInvalid(t *testing.T) {
	if err := (Config{}).Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero Config: got %v, want ErrInvalidConfig", err)
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode(""); err != nil || m != ModeCanny {
		t.Errorf(`ParseMode(""): got %s, %v`, m, err)
	}
	if m, err := ParseMode("Threshold"); err != nil || m != ModeThreshold {
		t.Errorf(`ParseMode("Threshold"): got %s, %v`, m, err)
	}
	if _, err := ParseMode("sobel"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf(`ParseMode("sobel"): got %v, want ErrInvalidConfig`, err)
	}
}
