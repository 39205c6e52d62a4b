package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Region is a rectangle in image coordinates. (X1,Y1) is inclusive and
// (X2,Y2) is exclusive.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Prepare narrows img to the area that will be analysed.
//
// Parameters:
//   - img: Source image.
//   - region: Optional rectangle to crop to. Nil keeps the whole image.
//   - scale: Resize factor applied after cropping. Values of 0 or 1 leave
//     the size unchanged; negative values are rejected.
//
// Returns the prepared image, which is never the caller's image when a crop
// or resize took place.
func Prepare(img image.Image, region *Region, scale float64) (image.Image, error) {
	if scale < 0 {
		return nil, fmt.Errorf("invalid scale %v: must be positive", scale)
	}

	out := img
	if region != nil {
		bounds := img.Bounds()
		if region.X1 < bounds.Min.X || region.Y1 < bounds.Min.Y || region.X2 > bounds.Max.X || region.Y2 > bounds.Max.Y {
			return nil, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
				region.X1, region.Y1, region.X2, region.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
		}
		if region.X1 >= region.X2 || region.Y1 >= region.Y2 {
			return nil, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
		}
		out = imaging.Crop(img, image.Rect(region.X1, region.Y1, region.X2, region.Y2))
	}

	if scale != 0 && scale != 1 {
		w := int(float64(out.Bounds().Dx()) * scale)
		h := int(float64(out.Bounds().Dy()) * scale)
		if w < 1 || h < 1 {
			return nil, fmt.Errorf("scale %v reduces the image to %dx%d", scale, w, h)
		}
		out = imaging.Resize(out, w, h, imaging.Lanczos)
	}
	return out, nil
}
