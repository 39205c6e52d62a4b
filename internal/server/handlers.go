package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/ironsheep/edge-detect-mcp/internal/edge"
	"github.com/ironsheep/edge-detect-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "edge_detect_canny").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// errBadArguments marks tool calls whose arguments cannot be decoded or
// describe an invalid detector configuration. They are reported with
// JSON-RPC code -32602 rather than as execution failures.
var errBadArguments = errors.New("invalid arguments")

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Undecodable arguments, invalid detector configuration and invalid grids
// return code -32602. Any other tool failure returns code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	s.log.Debug().Str("tool", params.Name).Msg("tool call")

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.Debug().Str("tool", params.Name).Err(err).Msg("tool call failed")
		if errors.Is(err, errBadArguments) || errors.Is(err, edge.ErrInvalidConfig) || errors.Is(err, edge.ErrInvalidInput) {
			return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads and prepares images from cache as needed
//  4. Runs the configured edge detector
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Edge Detection
	case "edge_kernels":
		return s.handleEdgeKernels(args)
	case "edge_detect_canny":
		return s.handleEdgeDetectCanny(args)
	case "edge_detect_gradient":
		return s.handleEdgeDetectGradient(args)
	case "edge_detect_grid":
		return s.handleEdgeDetectGrid(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments, treating an absent object as empty.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", errBadArguments, err)
	}
	return nil
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Edge Detection Handlers ===

// kernelInfo describes one built-in kernel set.
type kernelInfo struct {
	Name string      `json:"name"`
	Rows int         `json:"rows"`
	Cols int         `json:"cols"`
	X    [][]float64 `json:"x"`
	Y    [][]float64 `json:"y"`
}

func (s *Server) handleEdgeKernels(json.RawMessage) (interface{}, error) {
	names := edge.KernelNames()
	out := make([]kernelInfo, 0, len(names))
	for _, name := range names {
		ks, err := edge.KernelSetByName(name)
		if err != nil {
			return nil, err
		}
		r, c := ks.X.Dims()
		out = append(out, kernelInfo{Name: ks.Name, Rows: r, Cols: c, X: denseRows(ks.X), Y: denseRows(ks.Y)})
	}
	return map[string]interface{}{"kernels": out}, nil
}

func denseRows(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = m.At(i, j)
		}
	}
	return rows
}

// pipelineArgs are the options shared by every detection tool. Pointer
// fields distinguish an explicit zero from an omitted value.
type pipelineArgs struct {
	Kernel   string `json:"kernel"`
	Norm     string `json:"norm"`
	Blur     *bool  `json:"blur"`
	BlurSize int    `json:"blur_size"`
	Border   string `json:"border"`
	Workers  int    `json:"workers"`
}

type cannyArgs struct {
	ThresholdLow  *float64 `json:"threshold_low"`
	ThresholdHigh *float64 `json:"threshold_high"`
	MinEdgeSize   int      `json:"min_edge_size"`
}

type thresholdArgs struct {
	Threshold *float64 `json:"threshold"`
}

type imageSourceArgs struct {
	Path       string          `json:"path"`
	Region     *imaging.Region `json:"region"`
	Scale      float64         `json:"scale"`
	Grayscale  string          `json:"grayscale"`
	OutputPath string          `json:"output_path"`
}

func (a pipelineArgs) options() ([]edge.Option, error) {
	name := a.Kernel
	if name == "" {
		name = edge.KernelSobel
	}
	ks, err := edge.KernelSetByName(name)
	if err != nil {
		return nil, err
	}
	norm, err := edge.ParseNorm(a.Norm)
	if err != nil {
		return nil, err
	}
	border, err := edge.ParseBorderPolicy(a.Border)
	if err != nil {
		return nil, err
	}

	opts := []edge.Option{edge.WithKernels(ks), edge.WithNorm(norm), edge.WithBorder(border)}
	if a.Blur != nil {
		opts = append(opts, edge.WithGaussianBlur(*a.Blur))
	}
	if a.BlurSize != 0 {
		opts = append(opts, edge.WithBlurSize(a.BlurSize))
	}
	if a.Workers != 0 {
		opts = append(opts, edge.WithWorkers(a.Workers))
	}
	return opts, nil
}

func (a cannyArgs) options() []edge.Option {
	low, high := edge.DefaultLowThreshold, edge.DefaultHighThreshold
	if a.ThresholdLow != nil {
		low = *a.ThresholdLow
	}
	if a.ThresholdHigh != nil {
		high = *a.ThresholdHigh
	}
	opts := []edge.Option{edge.WithMode(edge.ModeCanny), edge.WithThresholds(low, high)}
	if a.MinEdgeSize != 0 {
		opts = append(opts, edge.WithMinEdgeSize(a.MinEdgeSize))
	}
	return opts
}

func (a thresholdArgs) options() []edge.Option {
	threshold := edge.DefaultThreshold
	if a.Threshold != nil {
		threshold = *a.Threshold
	}
	return []edge.Option{edge.WithMode(edge.ModeThreshold), edge.WithThreshold(threshold)}
}

// detector builds a detector that logs through the server's logger.
func (s *Server) detector(opts []edge.Option) (*edge.Detector, error) {
	cfg, err := edge.NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return edge.NewDetector(cfg, edge.WithLogger(s.log))
}

// detectImage loads, prepares and converts the source image, runs d on it
// and renders the mask.
func (s *Server) detectImage(src imageSourceArgs, opts []edge.Option) (*imaging.EdgeDetectResult, error) {
	mode, err := imaging.ParseGrayMode(src.Grayscale)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadArguments, err)
	}
	d, err := s.detector(opts)
	if err != nil {
		return nil, err
	}

	img, err := s.cache.Load(src.Path)
	if err != nil {
		return nil, err
	}
	img, err = imaging.Prepare(img, src.Region, src.Scale)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadArguments, err)
	}
	grid, err := imaging.ToPixelGrid(img, mode)
	if err != nil {
		return nil, err
	}

	mask, stats, err := d.DetectWithStats(grid)
	if err != nil {
		return nil, err
	}
	result, err := imaging.EncodeMask(mask, stats)
	if err != nil {
		return nil, err
	}
	if src.OutputPath != "" {
		if err := imaging.SaveMask(mask, src.OutputPath); err != nil {
			return nil, err
		}
		result.OutputPath = src.OutputPath
	}
	return result, nil
}

type edgeDetectCannyArgs struct {
	imageSourceArgs
	pipelineArgs
	cannyArgs
}

func (s *Server) handleEdgeDetectCanny(args json.RawMessage) (interface{}, error) {
	var a edgeDetectCannyArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	opts, err := a.pipelineArgs.options()
	if err != nil {
		return nil, err
	}
	return s.detectImage(a.imageSourceArgs, append(opts, a.cannyArgs.options()...))
}

type edgeDetectGradientArgs struct {
	imageSourceArgs
	pipelineArgs
	thresholdArgs
}

func (s *Server) handleEdgeDetectGradient(args json.RawMessage) (interface{}, error) {
	var a edgeDetectGradientArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	opts, err := a.pipelineArgs.options()
	if err != nil {
		return nil, err
	}
	return s.detectImage(a.imageSourceArgs, append(opts, a.thresholdArgs.options()...))
}

type edgeDetectGridArgs struct {
	Grid edge.PixelGrid `json:"grid"`
	Mode string         `json:"mode"`
	pipelineArgs
	cannyArgs
	thresholdArgs
}

// GridDetectResult is the edge_detect_grid response.
type GridDetectResult struct {
	// Mask holds one string of '0'/'1' characters per grid row.
	Mask  []string   `json:"mask"`
	Stats edge.Stats `json:"stats"`
}

func (s *Server) handleEdgeDetectGrid(args json.RawMessage) (interface{}, error) {
	var a edgeDetectGridArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	mode, err := edge.ParseMode(a.Mode)
	if err != nil {
		return nil, err
	}
	opts, err := a.pipelineArgs.options()
	if err != nil {
		return nil, err
	}
	if mode == edge.ModeThreshold {
		opts = append(opts, a.thresholdArgs.options()...)
	} else {
		opts = append(opts, a.cannyArgs.options()...)
	}

	d, err := s.detector(opts)
	if err != nil {
		return nil, err
	}
	mask, stats, err := d.DetectWithStats(a.Grid)
	if err != nil {
		return nil, err
	}
	return &GridDetectResult{Mask: mask.Rows(), Stats: stats}, nil
}
