package tools

import (
	"github.com/hyunwoo/naver-mail-mcp/internal/mail"
	"github.com/hyunwoo/naver-mail-mcp/internal/render"
)

// GetMailDetailTool fetches one mail by UID.
type GetMailDetailTool struct {
	service *mail.Service
}

type getMailDetailParams struct {
	UID    string
	Format string
}

// NewGetMailDetailTool creates a new mail detail tool.
func NewGetMailDetailTool(service *mail.Service) *GetMailDetailTool {
	return &GetMailDetailTool{service: service}
}

// Name returns the tool name.
func (t *GetMailDetailTool) Name() string {
	return "get_mail_detail"
}

// Description returns the tool description.
func (t *GetMailDetailTool) Description() string {
	return "특정 메일의 상세 정보 조회"
}

// InputSchema returns the JSON schema for tool inputs.
func (t *GetMailDetailTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"uid": map[string]interface{}{
				"type":        "string",
				"description": "조회할 메일의 UID",
			},
			"format": formatSchema("json"),
		},
		"required": []string{"uid"},
	}
}

// Execute executes the tool.
func (t *GetMailDetailTool) Execute(params map[string]interface{}) (string, error) {
	uid, err := requireStringParam(params, "uid")
	if err != nil {
		return "", err
	}
	p := getMailDetailParams{
		UID:    uid,
		Format: formatParam(params, "json"),
	}

	m, err := t.service.GetMailDetail(p.UID)
	if err != nil {
		return "", err
	}

	if p.Format == "json" {
		return render.MailJSON(m)
	}
	return render.DetailText(m), nil
}
