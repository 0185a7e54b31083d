package tools

import (
	"fmt"

	"github.com/hyunwoo/naver-mail-mcp/internal/mail"
)

// MoveMailsTool moves a set of mails into another folder.
type MoveMailsTool struct {
	service *mail.Service
}

// NewMoveMailsTool creates a new move mails tool.
func NewMoveMailsTool(service *mail.Service) *MoveMailsTool {
	return &MoveMailsTool{service: service}
}

// Name returns the tool name.
func (t *MoveMailsTool) Name() string {
	return "move_mails"
}

// Description returns the tool description.
func (t *MoveMailsTool) Description() string {
	return "메일을 다른 폴더로 이동"
}

// InputSchema returns the JSON schema for tool inputs.
func (t *MoveMailsTool) InputSchema() map[string]interface{} {
	return uidsAndFolderSchema("이동")
}

// Execute executes the tool.
func (t *MoveMailsTool) Execute(params map[string]interface{}) (string, error) {
	uids, folder, err := uidsAndFolderParams(params)
	if err != nil {
		return "", err
	}

	count, err := t.service.MoveMails(uids, folder)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d개 메일을 '%s' 폴더로 이동했습니다.", count, folder), nil
}

// CopyMailsTool copies a set of mails into another folder.
type CopyMailsTool struct {
	service *mail.Service
}

// NewCopyMailsTool creates a new copy mails tool.
func NewCopyMailsTool(service *mail.Service) *CopyMailsTool {
	return &CopyMailsTool{service: service}
}

// Name returns the tool name.
func (t *CopyMailsTool) Name() string {
	return "copy_mails"
}

// Description returns the tool description.
func (t *CopyMailsTool) Description() string {
	return "메일을 다른 폴더로 복사"
}

// InputSchema returns the JSON schema for tool inputs.
func (t *CopyMailsTool) InputSchema() map[string]interface{} {
	return uidsAndFolderSchema("복사")
}

// Execute executes the tool.
func (t *CopyMailsTool) Execute(params map[string]interface{}) (string, error) {
	uids, folder, err := uidsAndFolderParams(params)
	if err != nil {
		return "", err
	}

	count, err := t.service.CopyMails(uids, folder)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d개 메일을 '%s' 폴더로 복사했습니다.", count, folder), nil
}

// DeleteMailsTool deletes a set of mails.
type DeleteMailsTool struct {
	service *mail.Service
}

// NewDeleteMailsTool creates a new delete mails tool.
func NewDeleteMailsTool(service *mail.Service) *DeleteMailsTool {
	return &DeleteMailsTool{service: service}
}

// Name returns the tool name.
func (t *DeleteMailsTool) Name() string {
	return "delete_mails"
}

// Description returns the tool description.
func (t *DeleteMailsTool) Description() string {
	return "메일 삭제"
}

// InputSchema returns the JSON schema for tool inputs.
func (t *DeleteMailsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"mail_uids": uidsSchema(),
		},
		"required": []string{"mail_uids"},
	}
}

// Execute executes the tool.
func (t *DeleteMailsTool) Execute(params map[string]interface{}) (string, error) {
	uids, err := requireStringSliceParam(params, "mail_uids")
	if err != nil {
		return "", err
	}

	count, err := t.service.DeleteMails(uids)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d개 메일을 삭제했습니다.", count), nil
}

func uidsAndFolderParams(params map[string]interface{}) ([]string, string, error) {
	uids, err := requireStringSliceParam(params, "mail_uids")
	if err != nil {
		return nil, "", err
	}
	folder, err := requireStringParam(params, "folder_name")
	if err != nil {
		return nil, "", err
	}
	return uids, folder, nil
}

func uidsAndFolderSchema(verb string) map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"mail_uids": uidsSchema(),
			"folder_name": map[string]interface{}{
				"type":        "string",
				"description": fmt.Sprintf("%s할 대상 폴더 이름", verb),
			},
		},
		"required": []string{"mail_uids", "folder_name"},
	}
}

func uidsSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"items":       map[string]interface{}{"type": "string"},
		"description": "대상 메일 UID 목록",
	}
}
