package mail

import (
	"strconv"

	"github.com/emersion/go-imap"
	"github.com/sirupsen/logrus"

	"github.com/hyunwoo/naver-mail-mcp/internal/config"
	"github.com/hyunwoo/naver-mail-mcp/pkg/types"
)

// Flags used by the mark operations.
const (
	FlagSeen      = imap.SeenFlag
	FlagImportant = imap.FlaggedFlag
)

// Service orchestrates mailbox operations. Every method acquires its own
// scoped session, performs exactly one mailbox action and releases the
// connection; nothing is shared between concurrent calls.
type Service struct {
	cfg     *config.Config
	factory Factory
	logger  *logrus.Logger
}

// NewService creates a mailbox operation service.
func NewService(cfg *config.Config, factory Factory, logger *logrus.Logger) *Service {
	return &Service{cfg: cfg, factory: factory, logger: logger}
}

// ListMails returns the newest maxCount mails from the default folder.
func (s *Service) ListMails(maxCount int) ([]*types.Mail, error) {
	if maxCount <= 0 {
		return nil, Errorf(KindInvalidArgument, "max_count must be positive, got %d", maxCount)
	}

	var mails []*types.Mail
	err := s.factory.WithSession(s.cfg.DefaultFolder, func(sess Session) error {
		var err error
		mails, err = Recent(sess, maxCount)
		return err
	})
	if err != nil {
		return nil, err
	}
	return mails, nil
}

// ListMailsPaginated returns one page of mails plus the cursor for the next.
func (s *Service) ListMailsPaginated(pageSize int, lastUID string) (*types.MailPage, error) {
	if pageSize <= 0 {
		return nil, Errorf(KindInvalidArgument, "page_size must be positive, got %d", pageSize)
	}

	var page *types.MailPage
	err := s.factory.WithSession(s.cfg.DefaultFolder, func(sess Session) error {
		var err error
		page, err = Page(sess, pageSize, lastUID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return page, nil
}

// ListMailsByRange returns count mails starting at startIndex, newest first.
// Prefer ListMailsPaginated; see ByRange for why index paging is unstable.
func (s *Service) ListMailsByRange(startIndex, count int) ([]*types.Mail, error) {
	if startIndex < 0 || count <= 0 {
		return nil, Errorf(KindInvalidArgument, "invalid range [%d, %d)", startIndex, startIndex+count)
	}

	var mails []*types.Mail
	err := s.factory.WithSession(s.cfg.DefaultFolder, func(sess Session) error {
		var err error
		mails, err = ByRange(sess, startIndex, count)
		return err
	})
	if err != nil {
		return nil, err
	}
	return mails, nil
}

// GetMailDetail fetches one mail by UID.
func (s *Service) GetMailDetail(uid string) (*types.Mail, error) {
	n, err := parseUID(uid)
	if err != nil {
		return nil, err
	}

	var mail *types.Mail
	err = s.factory.WithSession(s.cfg.DefaultFolder, func(sess Session) error {
		msgs, err := sess.FetchMails([]uint32{n})
		if err != nil {
			return err
		}
		if len(msgs) == 0 {
			return Errorf(KindNotFound, "no mail found for uid %s", uid)
		}
		mail = Normalize(msgs[0])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mail, nil
}

// ListFolders lists all folders of the account.
func (s *Service) ListFolders() ([]types.Folder, error) {
	var folders []types.Folder
	err := s.factory.WithSession(s.cfg.DefaultFolder, func(sess Session) error {
		var err error
		folders, err = sess.ListFolders()
		return err
	})
	if err != nil {
		return nil, err
	}
	return folders, nil
}

// CreateFolder creates a new folder.
func (s *Service) CreateFolder(name string) error {
	if name == "" {
		return Errorf(KindInvalidArgument, "folder_name must not be empty")
	}
	return s.factory.WithSession(s.cfg.DefaultFolder, func(sess Session) error {
		return sess.CreateFolder(name)
	})
}

// DeleteFolder deletes a folder.
func (s *Service) DeleteFolder(name string) error {
	if name == "" {
		return Errorf(KindInvalidArgument, "folder_name must not be empty")
	}
	return s.factory.WithSession(s.cfg.DefaultFolder, func(sess Session) error {
		return sess.DeleteFolder(name)
	})
}

// RenameFolder renames oldName to newName. The source folder must exist; the
// check and the rename are separate round trips, another client can still win
// the race between them.
func (s *Service) RenameFolder(oldName, newName string) error {
	if oldName == "" || newName == "" {
		return Errorf(KindInvalidArgument, "old_folder_name and new_folder_name must not be empty")
	}
	return s.factory.WithSession(s.cfg.DefaultFolder, func(sess Session) error {
		exists, err := sess.FolderExists(oldName)
		if err != nil {
			return err
		}
		if !exists {
			return Errorf(KindNotFound, "folder %q does not exist", oldName)
		}
		return sess.RenameFolder(oldName, newName)
	})
}

// MoveMails moves the given UIDs into folder and returns the affected count.
func (s *Service) MoveMails(uids []string, folder string) (int, error) {
	return s.transferMails(uids, folder, Session.Move)
}

// CopyMails copies the given UIDs into folder and returns the affected count.
func (s *Service) CopyMails(uids []string, folder string) (int, error) {
	return s.transferMails(uids, folder, Session.Copy)
}

func (s *Service) transferMails(uids []string, folder string, op func(Session, []uint32, string) error) (int, error) {
	parsed, err := parseUIDs(uids)
	if err != nil {
		return 0, err
	}
	if folder == "" {
		return 0, Errorf(KindInvalidArgument, "folder_name must not be empty")
	}

	err = s.factory.WithSession(s.cfg.DefaultFolder, func(sess Session) error {
		exists, err := sess.FolderExists(folder)
		if err != nil {
			return err
		}
		if !exists {
			return Errorf(KindNotFound, "folder %q does not exist", folder)
		}
		return op(sess, parsed, folder)
	})
	if err != nil {
		return 0, err
	}
	return len(parsed), nil
}

// DeleteMails deletes the given UIDs and returns the affected count.
func (s *Service) DeleteMails(uids []string) (int, error) {
	parsed, err := parseUIDs(uids)
	if err != nil {
		return 0, err
	}

	err = s.factory.WithSession(s.cfg.DefaultFolder, func(sess Session) error {
		return sess.Delete(parsed)
	})
	if err != nil {
		return 0, err
	}
	return len(parsed), nil
}

// MarkMails sets or clears flag on the given UIDs and returns the affected
// count.
func (s *Service) MarkMails(uids []string, flag string, set bool) (int, error) {
	parsed, err := parseUIDs(uids)
	if err != nil {
		return 0, err
	}

	err = s.factory.WithSession(s.cfg.DefaultFolder, func(sess Session) error {
		if set {
			return sess.AddFlags(parsed, flag)
		}
		return sess.RemoveFlags(parsed, flag)
	})
	if err != nil {
		return 0, err
	}
	return len(parsed), nil
}

func parseUID(uid string) (uint32, error) {
	n, err := strconv.ParseUint(uid, 10, 32)
	if err != nil {
		return 0, Errorf(KindInvalidArgument, "invalid uid %q", uid)
	}
	return uint32(n), nil
}

func parseUIDs(uids []string) ([]uint32, error) {
	if len(uids) == 0 {
		return nil, Errorf(KindInvalidArgument, "mail_uids must not be empty")
	}

	parsed := make([]uint32, 0, len(uids))
	for _, uid := range uids {
		n, err := parseUID(uid)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, n)
	}
	return parsed, nil
}
