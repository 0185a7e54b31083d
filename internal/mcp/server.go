package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/hyunwoo/naver-mail-mcp/internal/config"
	"github.com/hyunwoo/naver-mail-mcp/internal/tools"
)

// Server speaks the MCP protocol over stdio and dispatches tool calls.
type Server struct {
	cfg    *config.Config
	logger *logrus.Logger
	tools  *tools.Registry
}

// NewServer creates a new MCP server instance.
func NewServer(cfg *config.Config, registry *tools.Registry, logger *logrus.Logger) *Server {
	return &Server{
		cfg:    cfg,
		logger: logger,
		tools:  registry,
	}
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("Starting MCP server with stdio transport")

	decoder := json.NewDecoder(os.Stdin)
	encoder := json.NewEncoder(os.Stdout)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			var req map[string]interface{}
			if err := decoder.Decode(&req); err != nil {
				if err == io.EOF {
					return nil
				}
				s.logger.WithError(err).Error("Failed to decode request")
				continue
			}

			resp := s.handleRequest(req)
			if err := encoder.Encode(resp); err != nil {
				s.logger.WithError(err).Error("Failed to encode response")
				continue
			}
		}
	}
}

// handleRequest processes one MCP request.
func (s *Server) handleRequest(req map[string]interface{}) map[string]interface{} {
	method, _ := req["method"].(string)
	id := req["id"]

	switch method {
	case "initialize":
		return map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      id,
			"result": map[string]interface{}{
				"protocolVersion": "2024-11-05",
				"capabilities": map[string]interface{}{
					"tools": map[string]interface{}{},
				},
				"serverInfo": map[string]interface{}{
					"name":    "naver-mail-mcp",
					"version": "0.1.0",
				},
			},
		}

	case "tools/list":
		return map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      id,
			"result": map[string]interface{}{
				"tools": s.tools.GetToolDefinitions(),
			},
		}

	case "tools/call":
		params, _ := req["params"].(map[string]interface{})
		toolName, _ := params["name"].(string)
		arguments, _ := params["arguments"].(map[string]interface{})
		return textResult(id, s.callTool(toolName, arguments))
	}

	return map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      id,
		"error": map[string]interface{}{
			"code":    -32601,
			"message": fmt.Sprintf("Method not found: %s", method),
		},
	}
}

// callTool runs one tool and returns the user-visible response text. Every
// failure is converted into text here; tool calls never surface as protocol
// errors or crash the process.
func (s *Server) callTool(name string, arguments map[string]interface{}) string {
	if !s.cfg.HasCredentials() {
		return tools.MissingCredentialsText
	}

	tool, exists := s.tools.GetTool(name)
	if !exists {
		s.logger.WithField("tool", name).Warn("Unknown tool requested")
		return tools.UnknownOperationText(name)
	}

	text, err := tool.Execute(arguments)
	if err != nil {
		s.logger.WithError(err).WithField("tool", name).Error("Tool execution failed")
		return tools.ErrorText(name, arguments, err)
	}
	return text
}

func textResult(id interface{}, text string) map[string]interface{} {
	return map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      id,
		"result": map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": text,
				},
			},
		},
	}
}
