// Package render turns normalized mail values into the textual and JSON
// outputs returned to tool callers. All functions are pure.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jaytaylor/html2text"

	"github.com/hyunwoo/naver-mail-mcp/pkg/types"
)

const previewLimit = 200

// SummaryText renders one mail as a single list line:
// date | display name | subject, plus an attachment note when present.
func SummaryText(m *types.Mail) string {
	date := "Unknown"
	if m.Date != "" {
		date = m.Date
		if len(date) > 19 { // keep YYYY-MM-DDTHH:MM:SS, drop the zone offset
			date = date[:19]
		}
	}

	display := m.FromName
	if display == "" {
		display = m.FromEmail
	}

	suffix := ""
	if m.HasAttachments {
		suffix = fmt.Sprintf(" (%d개 첨부)", m.AttachmentCount)
	}

	return fmt.Sprintf("%s | %s | %s%s", date, display, m.Subject, suffix)
}

// DetailText renders one mail as a labeled multi-line block.
func DetailText(m *types.Mail) string {
	lines := []string{
		fmt.Sprintf("UID: %s", m.UID),
		fmt.Sprintf("제목: %s", m.Subject),
	}

	if m.FromName != "" {
		lines = append(lines, fmt.Sprintf("발신자: %s <%s>", m.FromName, m.FromEmail))
	} else {
		lines = append(lines, fmt.Sprintf("발신자: %s", m.FromEmail))
	}

	lines = append(lines, fmt.Sprintf("수신자: %s", strings.Join(m.ToEmails, ", ")))
	if len(m.CcEmails) > 0 {
		lines = append(lines, fmt.Sprintf("참조: %s", strings.Join(m.CcEmails, ", ")))
	}

	lines = append(lines, fmt.Sprintf("날짜: %s", m.Date))
	lines = append(lines, fmt.Sprintf("크기: %s bytes", humanize.Comma(int64(m.Size))))

	if m.HasAttachments {
		lines = append(lines, fmt.Sprintf("첨부파일: %d개", m.AttachmentCount))
	} else {
		lines = append(lines, "첨부파일: 없음")
	}

	if len(m.Flags) > 0 {
		lines = append(lines, fmt.Sprintf("플래그: %s", strings.Join(m.Flags, ", ")))
	} else {
		lines = append(lines, "플래그: 없음")
	}

	if preview := contentPreview(m); preview != "" {
		lines = append(lines, fmt.Sprintf("내용 미리보기:\n%s", preview))
	}

	return strings.Join(lines, "\n")
}

// contentPreview returns the first previewLimit characters of the text
// content. Mails carrying only HTML get a text-converted preview instead.
func contentPreview(m *types.Mail) string {
	text := m.TextContent
	if text == "" && m.HTMLContent != "" {
		if converted, err := html2text.FromString(m.HTMLContent); err == nil {
			text = converted
		}
	}
	if text == "" {
		return ""
	}

	runes := []rune(text)
	if len(runes) > previewLimit {
		return string(runes[:previewLimit]) + "..."
	}
	return text
}

// MailJSON renders one mail as indented JSON.
func MailJSON(m *types.Mail) (string, error) {
	return encode(m)
}

// ListJSON renders a mail collection with its total count and the opaque
// page info supplied by the caller.
func ListJSON(mails []*types.Mail, pageInfo map[string]interface{}) (string, error) {
	if mails == nil {
		mails = []*types.Mail{}
	}
	if pageInfo == nil {
		pageInfo = map[string]interface{}{}
	}
	return encode(map[string]interface{}{
		"mails":       mails,
		"total_count": len(mails),
		"page_info":   pageInfo,
	})
}

// ListText renders a mail collection as a numbered summary list.
func ListText(mails []*types.Mail, pageInfo map[string]interface{}) string {
	if len(mails) == 0 {
		return "메일이 없습니다."
	}

	header := fmt.Sprintf("메일 %d개", len(mails))
	if more, ok := pageInfo["has_more"].(bool); ok && more {
		header += " (다음 페이지 있음)"
	}

	lines := []string{header, strings.Repeat("-", 50)}
	for i, m := range mails {
		lines = append(lines, fmt.Sprintf("%2d. %s", i+1, SummaryText(m)))
	}
	return strings.Join(lines, "\n")
}

// FoldersJSON renders the folder list as a JSON array.
func FoldersJSON(folders []types.Folder) (string, error) {
	if folders == nil {
		folders = []types.Folder{}
	}
	return encode(folders)
}

// encode serializes without escaping non-ASCII or HTML characters, so Korean
// subjects survive literally.
func encode(v interface{}) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("failed to encode JSON: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
