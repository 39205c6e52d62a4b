// Package server implements the MCP (Model Context Protocol) server for edge detection.
//
// This package provides a JSON-RPC 2.0 server that exposes the edge detection
// pipeline through the MCP protocol, so MCP-compatible clients can extract
// structural edges from images or from inline intensity grids.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Edge Detection:
//   - edge_kernels: List the built-in gradient kernel sets
//   - edge_detect_canny: Canny detection on an image or region
//   - edge_detect_gradient: Single-threshold Sobel, Prewitt or Roberts Cross
//   - edge_detect_grid: Detection on an inline integer grid
//
// Optional arguments follow a zero-value convention: an omitted argument
// takes the detector default (Sobel, L2, thresholds 50/150, Gaussian blur
// of size 5, zero border).
//
// # Image Caching
//
// Images are decoded once and cached by path for the lifetime of the
// process. Region and scale are applied per call to the cached image.
//
// # Error Handling
//
// Tool errors are returned as JSON-RPC error responses with:
//   - code: -32602 for undecodable arguments, invalid detector configuration
//     or an invalid grid; -32000 for any other tool failure
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New(server.WithLogger(log))
//	if err := srv.Run(); err != nil {
//	    log.Fatal().Err(err).Msg("server error")
//	}
package server
