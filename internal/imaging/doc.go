// Package imaging adapts image files to and from the edge detector.
//
// On the way in, images are decoded (and cached) from disk, optionally
// cropped to a region and rescaled, and collapsed to a single-channel
// edge.PixelGrid. On the way out, an edge.EdgeMask is rendered as a grayscale
// image with edges in white, then returned as base64 PNG and optionally
// written to disk.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner. Image row
// y becomes grid row y and image column x becomes grid column x. Regions are
// inclusive at (x1,y1) and exclusive at (x2,y2).
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The conversion and rendering
// functions are stateless.
package imaging
