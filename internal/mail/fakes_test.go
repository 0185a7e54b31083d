package mail

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/emersion/go-imap"
	"github.com/sirupsen/logrus"

	"github.com/hyunwoo/naver-mail-mcp/internal/config"
	"github.com/hyunwoo/naver-mail-mcp/pkg/types"
)

func testConfig() *config.Config {
	return &config.Config{
		NaverID:       "user",
		NaverPassword: "secret",
		IMAPHost:      "imap.naver.com",
		IMAPPort:      993,
		DefaultFolder: "INBOX",
		LogLevel:      "info",
	}
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type flagCall struct {
	uids  []uint32
	flags []string
	add   bool
}

type transferCall struct {
	uids   []uint32
	folder string
}

// fakeSession is an in-memory Session recording every mutation call.
type fakeSession struct {
	uids     []uint32 // ascending
	msgs     map[uint32]*imap.Message
	existing map[string]bool
	folders  []types.Folder

	fetchCalls [][]uint32
	flagCalls  []flagCall
	moves      []transferCall
	copies     []transferCall
	deletes    [][]uint32
	created    []string
	removed    []string
	renames    [][2]string
}

func newFakeSession(uids ...uint32) *fakeSession {
	sort.Slice(uids, func(i, j int) bool { return uids[i] < uids[j] })

	msgs := make(map[uint32]*imap.Message, len(uids))
	for _, uid := range uids {
		msgs[uid] = &imap.Message{
			Uid:  uid,
			Size: 100,
			Envelope: &imap.Envelope{
				Subject: fmt.Sprintf("mail %d", uid),
				Date:    time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
				From:    []*imap.Address{{PersonalName: "Jane Doe", MailboxName: "jane", HostName: "x.com"}},
				To:      []*imap.Address{{MailboxName: "me", HostName: "naver.com"}},
			},
		}
	}

	return &fakeSession{
		uids:     uids,
		msgs:     msgs,
		existing: map[string]bool{"INBOX": true},
	}
}

func (f *fakeSession) SearchUIDs(criteria *imap.SearchCriteria) ([]uint32, error) {
	out := []uint32{}
	for _, uid := range f.uids {
		if criteria != nil && criteria.Uid != nil && !criteria.Uid.Contains(uid) {
			continue
		}
		out = append(out, uid)
	}
	return out, nil
}

func (f *fakeSession) FetchMails(uids []uint32) ([]*imap.Message, error) {
	f.fetchCalls = append(f.fetchCalls, append([]uint32(nil), uids...))

	var msgs []*imap.Message
	for _, uid := range uids {
		if msg, ok := f.msgs[uid]; ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs, nil
}

func (f *fakeSession) AddFlags(uids []uint32, flags ...string) error {
	f.flagCalls = append(f.flagCalls, flagCall{uids: uids, flags: flags, add: true})
	return nil
}

func (f *fakeSession) RemoveFlags(uids []uint32, flags ...string) error {
	f.flagCalls = append(f.flagCalls, flagCall{uids: uids, flags: flags, add: false})
	return nil
}

func (f *fakeSession) Move(uids []uint32, folder string) error {
	f.moves = append(f.moves, transferCall{uids: uids, folder: folder})
	return nil
}

func (f *fakeSession) Copy(uids []uint32, folder string) error {
	f.copies = append(f.copies, transferCall{uids: uids, folder: folder})
	return nil
}

func (f *fakeSession) Delete(uids []uint32) error {
	f.deletes = append(f.deletes, uids)
	return nil
}

func (f *fakeSession) ListFolders() ([]types.Folder, error) {
	return f.folders, nil
}

func (f *fakeSession) CreateFolder(name string) error {
	f.created = append(f.created, name)
	return nil
}

func (f *fakeSession) DeleteFolder(name string) error {
	f.removed = append(f.removed, name)
	return nil
}

func (f *fakeSession) RenameFolder(oldName, newName string) error {
	f.renames = append(f.renames, [2]string{oldName, newName})
	return nil
}

func (f *fakeSession) FolderExists(name string) (bool, error) {
	return f.existing[name], nil
}

// fakeFactory hands the same fake session to every operation and counts
// acquisitions.
type fakeFactory struct {
	sess    *fakeSession
	calls   int
	folders []string
}

func (f *fakeFactory) WithSession(folder string, fn func(Session) error) error {
	f.calls++
	f.folders = append(f.folders, folder)
	return fn(f.sess)
}
