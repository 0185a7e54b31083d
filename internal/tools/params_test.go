package tools

import (
	"testing"

	"github.com/hyunwoo/naver-mail-mcp/internal/mail"
)

func TestStringParam(t *testing.T) {
	params := map[string]interface{}{"folder": "Archive", "empty": "", "number": 3.0}

	if got := stringParam(params, "folder", "INBOX"); got != "Archive" {
		t.Errorf("stringParam(folder) = %q", got)
	}
	if got := stringParam(params, "empty", "INBOX"); got != "INBOX" {
		t.Errorf("stringParam(empty) = %q, want default", got)
	}
	if got := stringParam(params, "missing", "INBOX"); got != "INBOX" {
		t.Errorf("stringParam(missing) = %q, want default", got)
	}
	if got := stringParam(params, "number", "INBOX"); got != "INBOX" {
		t.Errorf("stringParam(non-string) = %q, want default", got)
	}
}

func TestRequireStringParam(t *testing.T) {
	params := map[string]interface{}{"folder_name": "Archive", "empty": ""}

	if got, err := requireStringParam(params, "folder_name"); err != nil || got != "Archive" {
		t.Errorf("requireStringParam(folder_name) = (%q, %v)", got, err)
	}
	if _, err := requireStringParam(params, "empty"); !mail.IsKind(err, mail.KindInvalidArgument) {
		t.Errorf("requireStringParam(empty) error = %v, want invalid_argument", err)
	}
	if _, err := requireStringParam(params, "missing"); !mail.IsKind(err, mail.KindInvalidArgument) {
		t.Errorf("requireStringParam(missing) error = %v, want invalid_argument", err)
	}
}

func TestIntParam(t *testing.T) {
	params := map[string]interface{}{
		"count":     25.0, // JSON numbers decode to float64
		"as_string": "7",
		"garbage":   "seven",
	}

	if got := intParam(params, "count", 10); got != 25 {
		t.Errorf("intParam(count) = %d", got)
	}
	if got := intParam(params, "as_string", 10); got != 7 {
		t.Errorf("intParam(as_string) = %d", got)
	}
	if got := intParam(params, "garbage", 10); got != 10 {
		t.Errorf("intParam(garbage) = %d, want default", got)
	}
	if got := intParam(params, "missing", 10); got != 10 {
		t.Errorf("intParam(missing) = %d, want default", got)
	}
}

func TestRequireStringSliceParam(t *testing.T) {
	good := map[string]interface{}{"mail_uids": []interface{}{"1", "2"}}
	uids, err := requireStringSliceParam(good, "mail_uids")
	if err != nil {
		t.Fatalf("requireStringSliceParam() = %v", err)
	}
	if len(uids) != 2 || uids[0] != "1" || uids[1] != "2" {
		t.Errorf("uids = %v", uids)
	}

	for name, params := range map[string]map[string]interface{}{
		"missing":     {},
		"empty":       {"mail_uids": []interface{}{}},
		"wrong type":  {"mail_uids": "1"},
		"mixed items": {"mail_uids": []interface{}{"1", 2.0}},
	} {
		if _, err := requireStringSliceParam(params, "mail_uids"); !mail.IsKind(err, mail.KindInvalidArgument) {
			t.Errorf("%s: error = %v, want invalid_argument", name, err)
		}
	}
}

func TestFormatParam(t *testing.T) {
	if got := formatParam(map[string]interface{}{"format": "json"}, "text"); got != "json" {
		t.Errorf("formatParam(json) = %q", got)
	}
	if got := formatParam(map[string]interface{}{}, "json"); got != "json" {
		t.Errorf("formatParam(default json) = %q", got)
	}
	if got := formatParam(map[string]interface{}{"format": "xml"}, "json"); got != "text" {
		t.Errorf("formatParam(unsupported) = %q, want text", got)
	}
}
