package types

// Mail is a normalized mail record. Values are constructed fresh for every
// operation and never mutated after construction.
type Mail struct {
	UID             string   `json:"uid"`
	Subject         string   `json:"subject"`
	FromEmail       string   `json:"from_email"`
	FromName        string   `json:"from_name,omitempty"`
	ToEmails        []string `json:"to_emails"`
	CcEmails        []string `json:"cc_emails"`
	BccEmails       []string `json:"bcc_emails"`
	Date            string   `json:"date"`
	TextContent     string   `json:"text_content,omitempty"`
	HTMLContent     string   `json:"html_content,omitempty"`
	HasAttachments  bool     `json:"has_attachments"`
	AttachmentCount int      `json:"attachment_count"`
	Flags           []string `json:"flags"`
	Size            int      `json:"size"`
}

// PageCursor marks the boundary of a delivered page. LastUID is empty iff the
// page is empty.
type PageCursor struct {
	LastUID string `json:"last_uid,omitempty"`
	HasMore bool   `json:"has_more"`
}

// MailPage is one page of mails ordered newest-first.
type MailPage struct {
	Mails  []*Mail    `json:"mails"`
	Cursor PageCursor `json:"cursor"`
}

// Folder describes a mailbox folder as reported by the IMAP server. Folders
// are read on demand and have no identity beyond their name.
type Folder struct {
	Name      string   `json:"name"`
	Delimiter string   `json:"delimiter"`
	Flags     []string `json:"flags"`
}
