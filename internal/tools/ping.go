package tools

// PingTool reports that the server is alive.
type PingTool struct{}

// NewPingTool creates a new ping tool.
func NewPingTool() *PingTool {
	return &PingTool{}
}

// Name returns the tool name.
func (t *PingTool) Name() string {
	return "ping"
}

// Description returns the tool description.
func (t *PingTool) Description() string {
	return "서버 상태 확인"
}

// InputSchema returns the JSON schema for tool inputs.
func (t *PingTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":                 "object",
		"properties":           map[string]interface{}{},
		"additionalProperties": false,
	}
}

// Execute executes the tool.
func (t *PingTool) Execute(params map[string]interface{}) (string, error) {
	return "MCP Server is running", nil
}
