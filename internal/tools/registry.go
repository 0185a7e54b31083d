package tools

import (
	"github.com/sirupsen/logrus"

	"github.com/hyunwoo/naver-mail-mcp/internal/mail"
)

// Tool represents one MCP tool. Execute decodes its arguments once into the
// tool's typed parameters and returns the rendered response text.
type Tool interface {
	Name() string
	Description() string
	InputSchema() map[string]interface{}
	Execute(params map[string]interface{}) (string, error)
}

// Registry manages the closed set of mailbox tools.
type Registry struct {
	logger *logrus.Logger
	tools  map[string]Tool
	names  []string
}

// NewRegistry creates a registry with every mailbox tool registered.
func NewRegistry(service *mail.Service, logger *logrus.Logger) *Registry {
	r := &Registry{
		logger: logger,
		tools:  make(map[string]Tool),
	}

	r.register(
		NewListMailsTool(service),
		NewListMailsPaginatedTool(service),
		NewGetMailDetailTool(service),
		NewListFoldersTool(service),
		NewCreateFolderTool(service),
		NewDeleteFolderTool(service),
		NewRenameFolderTool(service),
		NewMoveMailsTool(service),
		NewCopyMailsTool(service),
		NewDeleteMailsTool(service),
	)
	r.register(markTools(service)...)
	r.register(NewPingTool())

	logger.WithField("count", len(r.tools)).Info("Registered tools")
	return r
}

func (r *Registry) register(tools ...Tool) {
	for _, tool := range tools {
		r.tools[tool.Name()] = tool
		r.names = append(r.names, tool.Name())
		r.logger.WithField("tool", tool.Name()).Debug("Registered tool")
	}
}

// GetTool returns a tool by name.
func (r *Registry) GetTool(name string) (Tool, bool) {
	tool, exists := r.tools[name]
	return tool, exists
}

// GetToolDefinitions returns tool definitions for MCP, in registration order.
func (r *Registry) GetToolDefinitions() []map[string]interface{} {
	definitions := make([]map[string]interface{}, 0, len(r.names))
	for _, name := range r.names {
		tool := r.tools[name]
		definitions = append(definitions, map[string]interface{}{
			"name":        tool.Name(),
			"description": tool.Description(),
			"inputSchema": tool.InputSchema(),
		})
	}
	return definitions
}
