// Package server implements the MCP (Model Context Protocol) server for the
// edge detection tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - notifications/initialized: Acknowledged without a response
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
// Edge Operators (optional region crop and scale before grayscale conversion):
//   - edge_laplace: Laplace response, cross (1) or box (2) mask
//   - edge_sobel: Sobel gradient magnitude, optionally accelerated
//   - edge_prewitt: Prewitt gradient magnitude
//   - edge_canny: Validates its input, then reports "not implemented"
//   - edge_overlay: Source image with strong responses tinted
//
// Every operator result carries the response as a base64 PNG and the
// interior statistics (max, mean, nonzero and saturated counts).
//
// # Acceleration
//
// WithAcceleration sets whether Sobel requests are marked accelerator-eligible
// by default. The accelerator itself is registered process-wide with
// edge.RegisterAccelerator; without one the flag has no effect.
//
// # Error Handling
//
// Failures are returned as JSON-RPC error responses:
//   - -32601: unknown method
//   - -32602: tools/call params that are not an object
//   - -32000: tool execution failure, with the Go error string as data
//
// # Usage
//
//	srv := server.New(server.WithAcceleration(true))
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
