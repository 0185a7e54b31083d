package tools

import (
	"fmt"

	"github.com/hyunwoo/naver-mail-mcp/internal/mail"
	"github.com/hyunwoo/naver-mail-mcp/internal/render"
)

// ListFoldersTool lists the account's folders.
type ListFoldersTool struct {
	service *mail.Service
}

// NewListFoldersTool creates a new list folders tool.
func NewListFoldersTool(service *mail.Service) *ListFoldersTool {
	return &ListFoldersTool{service: service}
}

// Name returns the tool name.
func (t *ListFoldersTool) Name() string {
	return "list_folders"
}

// Description returns the tool description.
func (t *ListFoldersTool) Description() string {
	return "메일 폴더 목록 조회"
}

// InputSchema returns the JSON schema for tool inputs.
func (t *ListFoldersTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":                 "object",
		"properties":           map[string]interface{}{},
		"additionalProperties": false,
	}
}

// Execute executes the tool.
func (t *ListFoldersTool) Execute(params map[string]interface{}) (string, error) {
	folders, err := t.service.ListFolders()
	if err != nil {
		return "", err
	}
	return render.FoldersJSON(folders)
}

// CreateFolderTool creates a folder.
type CreateFolderTool struct {
	service *mail.Service
}

// NewCreateFolderTool creates a new create folder tool.
func NewCreateFolderTool(service *mail.Service) *CreateFolderTool {
	return &CreateFolderTool{service: service}
}

// Name returns the tool name.
func (t *CreateFolderTool) Name() string {
	return "create_folder"
}

// Description returns the tool description.
func (t *CreateFolderTool) Description() string {
	return "새 메일 폴더 생성"
}

// InputSchema returns the JSON schema for tool inputs.
func (t *CreateFolderTool) InputSchema() map[string]interface{} {
	return folderNameSchema("생성할 폴더 이름")
}

// Execute executes the tool.
func (t *CreateFolderTool) Execute(params map[string]interface{}) (string, error) {
	name, err := requireStringParam(params, "folder_name")
	if err != nil {
		return "", err
	}

	if err := t.service.CreateFolder(name); err != nil {
		return "", err
	}
	return fmt.Sprintf("폴더 '%s'를 생성했습니다.", name), nil
}

// DeleteFolderTool deletes a folder.
type DeleteFolderTool struct {
	service *mail.Service
}

// NewDeleteFolderTool creates a new delete folder tool.
func NewDeleteFolderTool(service *mail.Service) *DeleteFolderTool {
	return &DeleteFolderTool{service: service}
}

// Name returns the tool name.
func (t *DeleteFolderTool) Name() string {
	return "delete_folder"
}

// Description returns the tool description.
func (t *DeleteFolderTool) Description() string {
	return "메일 폴더 삭제"
}

// InputSchema returns the JSON schema for tool inputs.
func (t *DeleteFolderTool) InputSchema() map[string]interface{} {
	return folderNameSchema("삭제할 폴더 이름")
}

// Execute executes the tool.
func (t *DeleteFolderTool) Execute(params map[string]interface{}) (string, error) {
	name, err := requireStringParam(params, "folder_name")
	if err != nil {
		return "", err
	}

	if err := t.service.DeleteFolder(name); err != nil {
		return "", err
	}
	return fmt.Sprintf("폴더 '%s'를 삭제했습니다.", name), nil
}

// RenameFolderTool renames a folder.
type RenameFolderTool struct {
	service *mail.Service
}

// NewRenameFolderTool creates a new rename folder tool.
func NewRenameFolderTool(service *mail.Service) *RenameFolderTool {
	return &RenameFolderTool{service: service}
}

// Name returns the tool name.
func (t *RenameFolderTool) Name() string {
	return "rename_folder"
}

// Description returns the tool description.
func (t *RenameFolderTool) Description() string {
	return "메일 폴더 이름 변경"
}

// InputSchema returns the JSON schema for tool inputs.
func (t *RenameFolderTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"old_folder_name": map[string]interface{}{
				"type":        "string",
				"description": "현재 폴더 이름",
			},
			"new_folder_name": map[string]interface{}{
				"type":        "string",
				"description": "새 폴더 이름",
			},
		},
		"required": []string{"old_folder_name", "new_folder_name"},
	}
}

// Execute executes the tool.
func (t *RenameFolderTool) Execute(params map[string]interface{}) (string, error) {
	oldName, err := requireStringParam(params, "old_folder_name")
	if err != nil {
		return "", err
	}
	newName, err := requireStringParam(params, "new_folder_name")
	if err != nil {
		return "", err
	}

	if err := t.service.RenameFolder(oldName, newName); err != nil {
		return "", err
	}
	return fmt.Sprintf("폴더 '%s'를 '%s'(으)로 변경했습니다.", oldName, newName), nil
}

func folderNameSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"folder_name": map[string]interface{}{
				"type":        "string",
				"description": description,
			},
		},
		"required": []string{"folder_name"},
	}
}
