package tools

import (
	"strconv"

	"github.com/hyunwoo/naver-mail-mcp/internal/mail"
)

// Argument decoding helpers. JSON numbers arrive as float64 and some clients
// send numbers as strings, so the numeric helpers accept both.

func stringParam(params map[string]interface{}, key, defaultValue string) string {
	if value, ok := params[key].(string); ok && value != "" {
		return value
	}
	return defaultValue
}

func requireStringParam(params map[string]interface{}, key string) (string, error) {
	value, ok := params[key].(string)
	if !ok || value == "" {
		return "", mail.Errorf(mail.KindInvalidArgument, "%s is required", key)
	}
	return value, nil
}

func intParam(params map[string]interface{}, key string, defaultValue int) int {
	switch value := params[key].(type) {
	case float64:
		return int(value)
	case string:
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func requireStringSliceParam(params map[string]interface{}, key string) ([]string, error) {
	raw, ok := params[key].([]interface{})
	if !ok {
		return nil, mail.Errorf(mail.KindInvalidArgument, "%s is required", key)
	}
	if len(raw) == 0 {
		return nil, mail.Errorf(mail.KindInvalidArgument, "%s must not be empty", key)
	}

	values := make([]string, 0, len(raw))
	for _, item := range raw {
		value, ok := item.(string)
		if !ok {
			return nil, mail.Errorf(mail.KindInvalidArgument, "%s must be a list of strings", key)
		}
		values = append(values, value)
	}
	return values, nil
}

// formatParam returns "json" or "text"; anything else falls back to the
// default, and an unsupported default falls back to text.
func formatParam(params map[string]interface{}, defaultFormat string) string {
	format := stringParam(params, "format", defaultFormat)
	if format != "json" && format != "text" {
		return "text"
	}
	return format
}
