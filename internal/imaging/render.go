package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/ironsheep/edge-detect-mcp/internal/edge"
)

// EdgeDetectResult contains an edge mask rendered as a base64 PNG.
//
// The image is grayscale: white pixels (255) are edges and black pixels (0)
// are not.
type EdgeDetectResult struct {
	// Width of the output image in pixels (same as the analysed region).
	Width int `json:"width"`

	// Height of the output image in pixels (same as the analysed region).
	Height int `json:"height"`

	// EdgePixels is the number of pixels marked as edges.
	EdgePixels int `json:"edge_pixels"`

	// Stats describes the detection run.
	Stats edge.Stats `json:"stats"`

	// ImageBase64 is the edge image encoded as base64 PNG.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`

	// OutputPath is set when the image was also written to disk.
	OutputPath string `json:"output_path,omitempty"`
}

// MaskImage renders mask as a grayscale image, edges white on black.
func MaskImage(mask edge.EdgeMask) *image.Gray {
	rows, cols := mask.Dims()
	img := image.NewGray(image.Rect(0, 0, cols, rows))
	for y, row := range mask {
		for x, on := range row {
			if on {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

// EncodeMask renders mask and encodes it as a base64 PNG result.
//
// Returns:
//   - *EdgeDetectResult: The encoded image and pixel counts.
//   - error: Non-nil if PNG encoding fails.
func EncodeMask(mask edge.EdgeMask, stats edge.Stats) (*EdgeDetectResult, error) {
	img := MaskImage(mask)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode edge image: %w", err)
	}

	return &EdgeDetectResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		EdgePixels:  mask.Count(),
		Stats:       stats,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// SaveMask writes mask to path as a PNG file.
func SaveMask(mask edge.EdgeMask, path string) error {
	if err := imgio.Save(path, MaskImage(mask), imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save edge image: %w", err)
	}
	return nil
}
