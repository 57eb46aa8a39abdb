package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/ironsheep/edge-tools-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "edge_sobel").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// Defaults for optional tool arguments.
const (
	defaultMask      = 2
	defaultOperator  = imaging.OperatorSobel
	defaultColor     = "#FF0000"
	defaultThreshold = 64
)

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
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
// Each edge tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads, crops and scales the image
//  4. Runs the operator through the imaging package
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	case "edge_laplace":
		return s.handleEdgeLaplace(args)
	case "edge_sobel":
		return s.handleEdgeSobel(args)
	case "edge_prewitt":
		return s.handleEdgePrewitt(args)
	case "edge_canny":
		return s.handleEdgeCanny(args)
	case "edge_overlay":
		return s.handleEdgeOverlay(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response. An empty data string is
// omitted from the response.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{
		Code:    code,
		Message: message,
	}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   e,
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments, treating missing arguments as {}.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
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

// === Edge Operator Handlers ===

// sourceArgs are the arguments shared by every edge tool.
type sourceArgs struct {
	Path   string          `json:"path"`
	Region *imaging.Region `json:"region,omitempty"`
	Scale  float64         `json:"scale"`
}

// source loads the image for a and applies its region and scale.
func (s *Server) source(a sourceArgs) (image.Image, error) {
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Prepare(img, a.Region, a.Scale)
}

type edgeLaplaceArgs struct {
	sourceArgs
	Mask *int `json:"mask"`
}

func (s *Server) handleEdgeLaplace(args json.RawMessage) (interface{}, error) {
	var a edgeLaplaceArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.source(a.sourceArgs)
	if err != nil {
		return nil, err
	}
	return imaging.Detect(img, imaging.DetectOptions{
		Operator: imaging.OperatorLaplace,
		Mask:     intOr(a.Mask, defaultMask),
	})
}

type edgeSobelArgs struct {
	sourceArgs
	Accelerated *bool `json:"accelerated"`
}

func (s *Server) handleEdgeSobel(args json.RawMessage) (interface{}, error) {
	var a edgeSobelArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.source(a.sourceArgs)
	if err != nil {
		return nil, err
	}
	return imaging.Detect(img, imaging.DetectOptions{
		Operator:    imaging.OperatorSobel,
		Accelerated: s.accelerated(a.Accelerated),
	})
}

func (s *Server) handleEdgePrewitt(args json.RawMessage) (interface{}, error) {
	var a sourceArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.source(a)
	if err != nil {
		return nil, err
	}
	return imaging.Detect(img, imaging.DetectOptions{Operator: imaging.OperatorPrewitt})
}

func (s *Server) handleEdgeCanny(args json.RawMessage) (interface{}, error) {
	var a sourceArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.source(sourceArgs{Path: a.Path})
	if err != nil {
		return nil, err
	}
	return imaging.Detect(img, imaging.DetectOptions{Operator: imaging.OperatorCanny})
}

type edgeOverlayArgs struct {
	sourceArgs
	Operator    string `json:"operator"`
	Mask        *int   `json:"mask"`
	Color       string `json:"color"`
	Threshold   *int   `json:"threshold"`
	Accelerated *bool  `json:"accelerated"`
}

func (s *Server) handleEdgeOverlay(args json.RawMessage) (interface{}, error) {
	var a edgeOverlayArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Operator == "" {
		a.Operator = defaultOperator
	}
	if a.Operator == imaging.OperatorCanny {
		return nil, fmt.Errorf("overlay does not support operator %s", a.Operator)
	}
	if a.Color == "" {
		a.Color = defaultColor
	}
	img, err := s.source(a.sourceArgs)
	if err != nil {
		return nil, err
	}
	return imaging.DetectOverlay(img, imaging.DetectOptions{
		Operator:    a.Operator,
		Mask:        intOr(a.Mask, defaultMask),
		Accelerated: s.accelerated(a.Accelerated),
	}, a.Color, intOr(a.Threshold, defaultThreshold))
}

func (s *Server) accelerated(v *bool) bool {
	if v == nil {
		return s.accelerate
	}
	return *v
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
