package tools

import (
	"fmt"

	"github.com/hyunwoo/naver-mail-mcp/internal/mail"
)

// MarkMailsTool sets or clears one flag on a set of mails. The four mark
// operations differ only in which flag they touch and in which direction, so
// they share one implementation.
type MarkMailsTool struct {
	service     *mail.Service
	name        string
	description string
	flag        string
	set         bool
	doneFormat  string
}

func markTools(service *mail.Service) []Tool {
	return []Tool{
		&MarkMailsTool{
			service:     service,
			name:        "mark_mails_read",
			description: "메일을 읽음으로 표시",
			flag:        mail.FlagSeen,
			set:         true,
			doneFormat:  "%d개 메일을 읽음으로 표시했습니다.",
		},
		&MarkMailsTool{
			service:     service,
			name:        "mark_mails_unread",
			description: "메일을 읽지 않음으로 표시",
			flag:        mail.FlagSeen,
			set:         false,
			doneFormat:  "%d개 메일을 읽지 않음으로 표시했습니다.",
		},
		&MarkMailsTool{
			service:     service,
			name:        "mark_mails_important",
			description: "메일을 중요 메일로 표시",
			flag:        mail.FlagImportant,
			set:         true,
			doneFormat:  "%d개 메일을 중요 메일로 표시했습니다.",
		},
		&MarkMailsTool{
			service:     service,
			name:        "mark_mails_unimportant",
			description: "메일의 중요 표시 해제",
			flag:        mail.FlagImportant,
			set:         false,
			doneFormat:  "%d개 메일의 중요 표시를 해제했습니다.",
		},
	}
}

// Name returns the tool name.
func (t *MarkMailsTool) Name() string {
	return t.name
}

// Description returns the tool description.
func (t *MarkMailsTool) Description() string {
	return t.description
}

// InputSchema returns the JSON schema for tool inputs.
func (t *MarkMailsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"mail_uids": uidsSchema(),
		},
		"required": []string{"mail_uids"},
	}
}

// Execute executes the tool.
func (t *MarkMailsTool) Execute(params map[string]interface{}) (string, error) {
	uids, err := requireStringSliceParam(params, "mail_uids")
	if err != nil {
		return "", err
	}

	count, err := t.service.MarkMails(uids, t.flag, t.set)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(t.doneFormat, count), nil
}
