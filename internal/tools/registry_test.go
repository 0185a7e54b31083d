package tools

import (
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/hyunwoo/naver-mail-mcp/internal/config"
	"github.com/hyunwoo/naver-mail-mcp/internal/mail"
)

// stubFactory fails every session acquisition the way an unreachable IMAP
// server would, and counts how often it was asked.
type stubFactory struct {
	calls int
}

func (f *stubFactory) WithSession(folder string, fn func(mail.Session) error) error {
	f.calls++
	return mail.Errorf(mail.KindConnectivity, "failed to dial imap.naver.com:993")
}

func newTestRegistry() (*Registry, *stubFactory) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{
		NaverID:       "user",
		NaverPassword: "secret",
		IMAPHost:      "imap.naver.com",
		IMAPPort:      993,
		DefaultFolder: "INBOX",
	}

	factory := &stubFactory{}
	service := mail.NewService(cfg, factory, logger)
	return NewRegistry(service, logger), factory
}

func TestRegistryToolSet(t *testing.T) {
	registry, _ := newTestRegistry()

	want := []string{
		"list_mails",
		"list_mails_paginated",
		"get_mail_detail",
		"list_folders",
		"create_folder",
		"delete_folder",
		"rename_folder",
		"move_mails",
		"copy_mails",
		"delete_mails",
		"mark_mails_read",
		"mark_mails_unread",
		"mark_mails_important",
		"mark_mails_unimportant",
		"ping",
	}

	definitions := registry.GetToolDefinitions()
	if len(definitions) != len(want) {
		t.Fatalf("registered %d tools, want %d", len(definitions), len(want))
	}
	for i, def := range definitions {
		if def["name"] != want[i] {
			t.Errorf("definition[%d] = %v, want %s", i, def["name"], want[i])
		}
		if def["description"] == "" || def["inputSchema"] == nil {
			t.Errorf("%s has an incomplete definition", want[i])
		}
	}

	for _, name := range want {
		if _, ok := registry.GetTool(name); !ok {
			t.Errorf("GetTool(%s) not found", name)
		}
	}
	if _, ok := registry.GetTool("send_mail"); ok {
		t.Error("GetTool(send_mail) found, want absent")
	}
}

func TestMarkMailsToolRejectsEmptySetBeforeSession(t *testing.T) {
	registry, factory := newTestRegistry()
	tool, _ := registry.GetTool("mark_mails_read")

	for name, params := range map[string]map[string]interface{}{
		"missing": {},
		"empty":   {"mail_uids": []interface{}{}},
	} {
		_, err := tool.Execute(params)
		if !mail.IsKind(err, mail.KindInvalidArgument) {
			t.Errorf("%s: error = %v, want invalid_argument", name, err)
		}
	}
	if factory.calls != 0 {
		t.Errorf("factory acquired %d sessions for invalid input, want 0", factory.calls)
	}
}

func TestToolsSurfaceConnectivityErrors(t *testing.T) {
	registry, factory := newTestRegistry()

	calls := map[string]map[string]interface{}{
		"list_mails":      {},
		"get_mail_detail": {"uid": "1"},
		"mark_mails_read": {"mail_uids": []interface{}{"1"}},
		"move_mails":      {"mail_uids": []interface{}{"1"}, "folder_name": "Archive"},
		"create_folder":   {"folder_name": "Archive"},
	}

	for name, params := range calls {
		tool, ok := registry.GetTool(name)
		if !ok {
			t.Fatalf("GetTool(%s) not found", name)
		}
		_, err := tool.Execute(params)
		if !mail.IsKind(err, mail.KindConnectivity) {
			t.Errorf("%s: error = %v, want connectivity", name, err)
		}
	}
	if factory.calls != len(calls) {
		t.Errorf("factory calls = %d, want %d", factory.calls, len(calls))
	}
}

func TestPingToolNeedsNoSession(t *testing.T) {
	registry, factory := newTestRegistry()
	tool, _ := registry.GetTool("ping")

	got, err := tool.Execute(nil)
	if err != nil {
		t.Fatalf("Execute() = %v", err)
	}
	if got != "MCP Server is running" {
		t.Errorf("ping = %q", got)
	}
	if factory.calls != 0 {
		t.Errorf("ping acquired %d sessions, want 0", factory.calls)
	}
}

func TestErrorText(t *testing.T) {
	err := mail.Errorf(mail.KindNotFound, "mail 42 not found")
	got := ErrorText("get_mail_detail", map[string]interface{}{"uid": "42"}, err)

	for _, want := range []string{
		"오류가 발생했습니다 [not_found]",
		"작업: get_mail_detail",
		"uid",
		"mail 42 not found",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ErrorText() missing %q:\n%s", want, got)
		}
	}
}

func TestErrorTextUnwrappedCauseDefaultsToConnectivity(t *testing.T) {
	got := ErrorText("list_mails", nil, io.ErrUnexpectedEOF)
	if !strings.Contains(got, "[connectivity]") {
		t.Errorf("ErrorText() = %q, want connectivity kind for untyped errors", got)
	}
}

func TestUnknownOperationText(t *testing.T) {
	got := UnknownOperationText("send_mail")
	if !strings.Contains(got, "send_mail") || !strings.Contains(got, string(mail.KindUnknownOperation)) {
		t.Errorf("UnknownOperationText() = %q", got)
	}
}
