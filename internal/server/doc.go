// Package server implements the MCP (Model Context Protocol) server for palette tools.
//
// This package provides a JSON-RPC 2.0 server that exposes palette extraction,
// tint blending and color frequency analysis through the MCP protocol.
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
//   - image_load: Load an image and report its size, format and sampled size
//   - extract_palette: Seeded k-means++ palette in CIE Lab
//   - add_matching_tint: Blend a palette's average HSL toward a base color
//   - get_dominant_color: Most frequent exact pixel colors
//   - palette_swatch: Extract a palette and render it as a PNG strip
//
// Image tools accept either a file path or inline base64 image data.
//
// # Image Caching
//
// Images named by path are decoded once and cached for the lifetime of the
// server process. Inline images are decoded per call and never cached.
//
// # Error Handling
//
// Tool errors are returned as JSON-RPC error responses:
//   - -32602: invalid arguments (missing or out-of-range values, unknown tool)
//   - -32000: tool execution failure (unreadable file, undecodable image)
//   - -32601: unknown method
//   - -32700: request line is not JSON
//
// # Usage
//
//	srv := server.New(cfg, logger)
//	if err := srv.Serve(os.Stdin, os.Stdout); err != nil {
//	    logger.Error("server error", "error", err)
//	}
package server
