package tools

import (
	"github.com/hyunwoo/naver-mail-mcp/internal/mail"
	"github.com/hyunwoo/naver-mail-mcp/internal/render"
)

// ListMailsTool lists the newest N mails.
type ListMailsTool struct {
	service *mail.Service
}

type listMailsParams struct {
	MaxCount int
	Format   string
}

// NewListMailsTool creates a new list mails tool.
func NewListMailsTool(service *mail.Service) *ListMailsTool {
	return &ListMailsTool{service: service}
}

// Name returns the tool name.
func (t *ListMailsTool) Name() string {
	return "list_mails"
}

// Description returns the tool description.
func (t *ListMailsTool) Description() string {
	return "최근 N개 메일 목록 조회 (JSON 또는 텍스트 형태)"
}

// InputSchema returns the JSON schema for tool inputs.
func (t *ListMailsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"max_count": map[string]interface{}{
				"type":        "number",
				"default":     10,
				"description": "가져올 메일 개수",
			},
			"format": formatSchema("text"),
		},
		"required": []string{},
	}
}

// Execute executes the tool.
func (t *ListMailsTool) Execute(params map[string]interface{}) (string, error) {
	p := listMailsParams{
		MaxCount: intParam(params, "max_count", 10),
		Format:   formatParam(params, "text"),
	}

	mails, err := t.service.ListMails(p.MaxCount)
	if err != nil {
		return "", err
	}

	if p.Format == "json" {
		return render.ListJSON(mails, nil)
	}
	return render.ListText(mails, nil), nil
}

// ListMailsPaginatedTool lists mails one cursor page at a time.
type ListMailsPaginatedTool struct {
	service *mail.Service
}

type listMailsPaginatedParams struct {
	PageSize int
	LastUID  string
	Format   string
}

// NewListMailsPaginatedTool creates a new paginated list tool.
func NewListMailsPaginatedTool(service *mail.Service) *ListMailsPaginatedTool {
	return &ListMailsPaginatedTool{service: service}
}

// Name returns the tool name.
func (t *ListMailsPaginatedTool) Name() string {
	return "list_mails_paginated"
}

// Description returns the tool description.
func (t *ListMailsPaginatedTool) Description() string {
	return "페이징을 지원하는 메일 목록 조회"
}

// InputSchema returns the JSON schema for tool inputs.
func (t *ListMailsPaginatedTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"page_size": map[string]interface{}{
				"type":        "number",
				"default":     10,
				"description": "한 페이지당 메일 개수",
			},
			"last_uid": map[string]interface{}{
				"type":        "string",
				"description": "이전 페이지의 마지막 UID (다음 페이지 요청시 사용)",
			},
			"format": formatSchema("text"),
		},
		"required": []string{},
	}
}

// Execute executes the tool.
func (t *ListMailsPaginatedTool) Execute(params map[string]interface{}) (string, error) {
	p := listMailsPaginatedParams{
		PageSize: intParam(params, "page_size", 10),
		LastUID:  stringParam(params, "last_uid", ""),
		Format:   formatParam(params, "text"),
	}

	page, err := t.service.ListMailsPaginated(p.PageSize, p.LastUID)
	if err != nil {
		return "", err
	}

	pageInfo := map[string]interface{}{
		"last_uid": page.Cursor.LastUID,
		"has_more": page.Cursor.HasMore,
	}

	if p.Format == "json" {
		return render.ListJSON(page.Mails, pageInfo)
	}
	return render.ListText(page.Mails, pageInfo), nil
}

func formatSchema(defaultFormat string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        []string{"json", "text"},
		"default":     defaultFormat,
		"description": "출력 형태 (json: JSON 형태, text: 읽기 쉬운 텍스트)",
	}
}
