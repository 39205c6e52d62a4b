package imaging

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/anthonynsimon/bild/effect"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/edge-detect-mcp/internal/edge"
)

// GrayMode selects how color pixels collapse to a single intensity.
type GrayMode string

const (
	// GrayAverage is the unweighted mean of the 8-bit R, G and B channels,
	// truncated to an integer. Fully transparent pixels become 0.
	GrayAverage GrayMode = "average"

	// GrayLuma weights the channels by perceived brightness.
	GrayLuma GrayMode = "luma"
)

// ParseGrayMode accepts "average" and "luma". An empty string means average.
func ParseGrayMode(s string) (GrayMode, error) {
	switch GrayMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", GrayAverage:
		return GrayAverage, nil
	case GrayLuma:
		return GrayLuma, nil
	default:
		return "", fmt.Errorf("unknown grayscale mode %q (want average or luma)", s)
	}
}

// ToPixelGrid converts img into a PixelGrid with one row per image row.
//
// Returns an error wrapping edge.ErrInvalidInput if the image has no pixels.
func ToPixelGrid(img image.Image, mode GrayMode) (edge.PixelGrid, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image is %dx%d", edge.ErrInvalidInput, width, height)
	}

	grid := make(edge.PixelGrid, height)
	switch mode {
	case GrayLuma:
		gray := effect.Grayscale(img)
		gb := gray.Bounds()
		for y := 0; y < height; y++ {
			grid[y] = make([]int, width)
			for x := 0; x < width; x++ {
				grid[y][x] = int(gray.RGBAAt(gb.Min.X+x, gb.Min.Y+y).R)
			}
		}
	case GrayAverage, "":
		for y := 0; y < height; y++ {
			grid[y] = make([]int, width)
			for x := 0; x < width; x++ {
				grid[y][x] = averageIntensity(img, bounds.Min.X+x, bounds.Min.Y+y)
			}
		}
	default:
		return nil, fmt.Errorf("unknown grayscale mode %q", mode)
	}
	return grid, nil
}

func averageIntensity(img image.Image, x, y int) int {
	c, ok := colorful.MakeColor(img.At(x, y))
	if !ok {
		return 0
	}
	r := int(math.Round(c.R * 255))
	g := int(math.Round(c.G * 255))
	b := int(math.Round(c.B * 255))
	return (r + g + b) / 3
}
