// Package edge detects intensity edges in a grid of single-channel samples.
//
// The Canny pipeline runs in four strictly sequential stages:
//
//  1. Optional Gaussian smoothing with a normalised binomial kernel (3x3,
//     5x5 or 7x7).
//
//  2. Gradient computation: each pixel is convolved with the X and Y kernels
//     of a KernelSet (Sobel, Prewitt, Roberts Cross or a custom pair). The
//     magnitude is the L1 or L2 norm of (Gx, Gy) and the direction is
//     atan(Gy/Gx) rounded to the nearest 45 degrees.
//
//  3. Non-maximum suppression: a pixel survives unless a neighbour along its
//     direction has a strictly greater magnitude.
//
//  4. Hysteresis: surviving pixels at or above the high threshold seed
//     8-connected components that grow through pixels at or above the low
//     threshold. Components smaller than the minimum edge size are dropped.
//
// The plain Sobel, Prewitt and Roberts Cross detectors share stages 1 and 2
// and replace 3 and 4 with a single magnitude threshold (ModeThreshold).
//
// # Coordinates
//
// Grids are indexed [row][col] with row 0 at the top. X kernels respond to
// intensity increasing to the right and Y kernels to intensity increasing
// upward; custom kernel sets must follow the same orientation for the
// diagonal direction bins to line up with their neighbours.
//
// # Borders
//
// BorderZero, the default, treats samples outside the grid as 0, so bright
// content touching the border produces edges along it. BorderClamp
// replicates the nearest sample instead.
//
// # Errors
//
// Every failure wraps ErrInvalidInput or ErrInvalidConfig and is reported
// before any pixel is processed. There is no partial output.
//
// # Concurrency
//
// A Detector is immutable and safe for concurrent use. All scratch planes are
// allocated per call. With WithWorkers(n) the smoothing, gradient,
// suppression and single-threshold stages split rows across n goroutines;
// tracing is always sequential and results do not depend on n.
package edge
