package mail

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/emersion/go-imap"
	"github.com/jhillyerd/enmime"

	"github.com/hyunwoo/naver-mail-mcp/pkg/types"
)

// Normalize converts one raw IMAP message into a Mail value. It is total over
// any well-formed message: absent fields map to empty values, never to an
// error.
func Normalize(msg *imap.Message) *types.Mail {
	m := &types.Mail{
		UID:       strconv.FormatUint(uint64(msg.Uid), 10),
		ToEmails:  []string{},
		CcEmails:  []string{},
		BccEmails: []string{},
		Flags:     []string{},
		Size:      int(msg.Size),
	}

	if env := msg.Envelope; env != nil {
		m.Subject = env.Subject
		m.FromName, m.FromEmail = SplitSender(rawSender(env.From))
		m.ToEmails = addressList(env.To)
		m.CcEmails = addressList(env.Cc)
		m.BccEmails = addressList(env.Bcc)
		if !env.Date.IsZero() {
			m.Date = env.Date.Format(time.RFC3339)
		}
	}

	m.Flags = append(m.Flags, msg.Flags...)

	if body := readBody(msg); len(body) > 0 {
		if env, err := enmime.ReadEnvelope(bytes.NewReader(body)); err == nil {
			m.TextContent = env.Text
			m.HTMLContent = env.HTML
			m.AttachmentCount = len(env.Attachments)
		} else {
			// Not valid MIME, keep the raw body as text.
			m.TextContent = string(body)
		}
	}
	m.HasAttachments = m.AttachmentCount > 0

	return m
}

// SplitSender splits a raw sender header on the angle-bracket delimiter.
// Without a delimiter the whole value is the email and the name is absent.
func SplitSender(raw string) (name, email string) {
	if !strings.Contains(raw, "<") {
		return "", raw
	}

	parts := strings.SplitN(raw, "<", 2)
	name = strings.Trim(strings.TrimSpace(parts[0]), `"`)
	email = strings.TrimRight(parts[1], ">")
	return name, email
}

func rawSender(from []*imap.Address) string {
	if len(from) == 0 {
		return ""
	}

	addr := from[0]
	if addr.PersonalName != "" {
		return fmt.Sprintf("%s <%s>", addr.PersonalName, addr.Address())
	}
	return addr.Address()
}

func addressList(addrs []*imap.Address) []string {
	emails := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		emails = append(emails, addr.Address())
	}
	return emails
}

// readBody extracts the RFC822 literal from a fetched message. Servers differ
// in which section key they report, so try the known forms in order.
func readBody(msg *imap.Message) []byte {
	if msg.Body == nil {
		return nil
	}

	if literal, ok := msg.Body[nil]; ok {
		return readLiteral(literal)
	}

	// Section keys are pointers, so the literal cannot be addressed by value;
	// take the first section carrying data.
	for _, literal := range msg.Body {
		if body := readLiteral(literal); len(body) > 0 {
			return body
		}
	}
	return nil
}

func readLiteral(literal imap.Literal) []byte {
	if literal == nil {
		return nil
	}

	body := make([]byte, 0, 8192)
	buf := make([]byte, 1024)
	for {
		n, err := literal.Read(buf)
		if n > 0 {
			body = append(body, buf[:n]...)
		}
		if err != nil {
			if err != io.EOF {
				return nil
			}
			break
		}
	}
	return body
}
