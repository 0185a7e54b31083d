package mail

import (
	"crypto/tls"
	"fmt"
	"sort"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/sirupsen/logrus"

	"github.com/hyunwoo/naver-mail-mcp/internal/config"
	"github.com/hyunwoo/naver-mail-mcp/pkg/types"
)

// Session exposes the primitive mailbox operations available while a
// connection is authenticated and selected on one folder.
type Session interface {
	SearchUIDs(criteria *imap.SearchCriteria) ([]uint32, error)
	FetchMails(uids []uint32) ([]*imap.Message, error)
	AddFlags(uids []uint32, flags ...string) error
	RemoveFlags(uids []uint32, flags ...string) error
	Move(uids []uint32, folder string) error
	Copy(uids []uint32, folder string) error
	Delete(uids []uint32) error
	ListFolders() ([]types.Folder, error)
	CreateFolder(name string) error
	DeleteFolder(name string) error
	RenameFolder(oldName, newName string) error
	FolderExists(name string) (bool, error)
}

// Factory produces scoped sessions. One session serves exactly one logical
// operation; sessions are never reused or pooled.
type Factory interface {
	WithSession(folder string, fn func(Session) error) error
}

// SessionFactory dials the configured IMAP server for every session.
type SessionFactory struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSessionFactory creates a session factory bound to the process
// configuration.
func NewSessionFactory(cfg *config.Config, logger *logrus.Logger) *SessionFactory {
	return &SessionFactory{cfg: cfg, logger: logger}
}

// WithSession connects, authenticates and selects folder, then runs fn. The
// connection is logged out exactly once no matter how fn returns.
func (f *SessionFactory) WithSession(folder string, fn func(Session) error) error {
	addr := fmt.Sprintf("%s:%d", f.cfg.IMAPHost, f.cfg.IMAPPort)

	c, err := client.DialTLS(addr, &tls.Config{
		ServerName: f.cfg.IMAPHost,
		MinVersion: tls.VersionTLS12,
	})
	if err != nil {
		return Wrap(KindConnectivity, err, "failed to connect to IMAP server %s", addr)
	}
	defer c.Logout() //nolint:errcheck

	if err := c.Login(f.cfg.NaverID, f.cfg.NaverPassword); err != nil {
		return Wrap(KindAuthentication, err, "login rejected for %s", f.cfg.NaverID)
	}

	if _, err := c.Select(folder, false); err != nil {
		return Wrap(KindFolderSelect, err, "cannot select folder %s", folder)
	}

	f.logger.WithField("folder", folder).Debug("IMAP session opened")

	return fn(&imapSession{client: c, logger: f.logger})
}

// imapSession adapts a logged-in go-imap client to the Session interface.
type imapSession struct {
	client *client.Client
	logger *logrus.Logger
}

func (s *imapSession) SearchUIDs(criteria *imap.SearchCriteria) ([]uint32, error) {
	if criteria == nil {
		criteria = imap.NewSearchCriteria()
	}

	uids, err := s.client.UidSearch(criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to search mails: %w", err)
	}

	sort.Slice(uids, func(i, j int) bool { return uids[i] < uids[j] })
	return uids, nil
}

func (s *imapSession) FetchMails(uids []uint32) ([]*imap.Message, error) {
	if len(uids) == 0 {
		return nil, nil
	}

	seqSet := uidSet(uids)
	items := []imap.FetchItem{
		imap.FetchEnvelope,
		imap.FetchFlags,
		imap.FetchInternalDate,
		imap.FetchRFC822Size,
		imap.FetchUid,
		imap.FetchRFC822,
	}

	messages := make(chan *imap.Message, 10)
	done := make(chan error, 1)

	go func() {
		done <- s.client.UidFetch(seqSet, items, messages)
	}()

	var msgs []*imap.Message
	for msg := range messages {
		msgs = append(msgs, msg)
	}

	if err := <-done; err != nil {
		return nil, fmt.Errorf("failed to fetch mails: %w", err)
	}

	return msgs, nil
}

func (s *imapSession) AddFlags(uids []uint32, flags ...string) error {
	return s.storeFlags(uids, imap.AddFlags, flags)
}

func (s *imapSession) RemoveFlags(uids []uint32, flags ...string) error {
	return s.storeFlags(uids, imap.RemoveFlags, flags)
}

func (s *imapSession) storeFlags(uids []uint32, op imap.FlagsOp, flags []string) error {
	item := imap.FormatFlagsOp(op, true)
	values := make([]interface{}, len(flags))
	for i, flag := range flags {
		values[i] = flag
	}

	if err := s.client.UidStore(uidSet(uids), item, values, nil); err != nil {
		return fmt.Errorf("failed to store flags: %w", err)
	}
	return nil
}

func (s *imapSession) Move(uids []uint32, folder string) error {
	if err := s.client.UidMove(uidSet(uids), folder); err != nil {
		return fmt.Errorf("failed to move mails to %s: %w", folder, err)
	}
	return nil
}

func (s *imapSession) Copy(uids []uint32, folder string) error {
	if err := s.client.UidCopy(uidSet(uids), folder); err != nil {
		return fmt.Errorf("failed to copy mails to %s: %w", folder, err)
	}
	return nil
}

func (s *imapSession) Delete(uids []uint32) error {
	if err := s.AddFlags(uids, imap.DeletedFlag); err != nil {
		return err
	}
	if err := s.client.Expunge(nil); err != nil {
		return fmt.Errorf("failed to expunge mails: %w", err)
	}
	return nil
}

func (s *imapSession) ListFolders() ([]types.Folder, error) {
	mailboxes := make(chan *imap.MailboxInfo, 10)
	done := make(chan error, 1)

	go func() {
		done <- s.client.List("", "*", mailboxes)
	}()

	var folders []types.Folder
	for m := range mailboxes {
		folders = append(folders, types.Folder{
			Name:      m.Name,
			Delimiter: m.Delimiter,
			Flags:     append([]string{}, m.Attributes...),
		})
	}

	if err := <-done; err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}

	return folders, nil
}

func (s *imapSession) CreateFolder(name string) error {
	if err := s.client.Create(name); err != nil {
		return fmt.Errorf("failed to create folder %s: %w", name, err)
	}
	return nil
}

func (s *imapSession) DeleteFolder(name string) error {
	if err := s.client.Delete(name); err != nil {
		return fmt.Errorf("failed to delete folder %s: %w", name, err)
	}
	return nil
}

func (s *imapSession) RenameFolder(oldName, newName string) error {
	if err := s.client.Rename(oldName, newName); err != nil {
		return fmt.Errorf("failed to rename folder %s to %s: %w", oldName, newName, err)
	}
	return nil
}

func (s *imapSession) FolderExists(name string) (bool, error) {
	mailboxes := make(chan *imap.MailboxInfo, 10)
	done := make(chan error, 1)

	go func() {
		done <- s.client.List("", name, mailboxes)
	}()

	exists := false
	for m := range mailboxes {
		if m.Name == name {
			exists = true
		}
	}

	if err := <-done; err != nil {
		return false, fmt.Errorf("failed to check folder %s: %w", name, err)
	}

	return exists, nil
}

func uidSet(uids []uint32) *imap.SeqSet {
	seqSet := new(imap.SeqSet)
	seqSet.AddNum(uids...)
	return seqSet
}
