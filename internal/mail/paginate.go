package mail

import (
	"sort"
	"strconv"

	"github.com/emersion/go-imap"

	"github.com/hyunwoo/naver-mail-mcp/pkg/types"
)

// Page fetches one page of mails using UID keyset pagination, newest first.
// An empty lastUID requests the first page; otherwise the fetch is restricted
// to UIDs at or below the cursor and the boundary record itself is excluded,
// so insertions and deletions between requests cannot skip or duplicate mails.
func Page(s Session, pageSize int, lastUID string) (*types.MailPage, error) {
	if pageSize <= 0 {
		return nil, Errorf(KindInvalidArgument, "page_size must be positive, got %d", pageSize)
	}

	var boundary uint32
	if lastUID != "" {
		n, err := strconv.ParseUint(lastUID, 10, 32)
		if err != nil {
			return nil, Errorf(KindInvalidArgument, "invalid last_uid %q", lastUID)
		}
		boundary = uint32(n)
	}

	criteria := imap.NewSearchCriteria()
	if boundary > 0 {
		set := new(imap.SeqSet)
		set.AddRange(1, boundary)
		criteria.Uid = set
	}

	uids, err := s.SearchUIDs(criteria)
	if err != nil {
		return nil, err
	}

	// The boundary record was already delivered on the previous page. UIDs
	// are compared numerically, so a different string form of the same UID
	// cannot slip past this filter.
	if boundary > 0 {
		filtered := uids[:0]
		for _, uid := range uids {
			if uid != boundary {
				filtered = append(filtered, uid)
			}
		}
		uids = filtered
	}

	hasMore := len(uids) > pageSize
	if hasMore {
		uids = uids[len(uids)-pageSize:]
	}

	mails, err := fetchNewestFirst(s, uids)
	if err != nil {
		return nil, err
	}

	page := &types.MailPage{
		Mails:  mails,
		Cursor: types.PageCursor{HasMore: hasMore},
	}
	if len(mails) > 0 {
		page.Cursor.LastUID = mails[len(mails)-1].UID
	}
	return page, nil
}

// Recent fetches the newest maxCount mails without cursor bookkeeping.
func Recent(s Session, maxCount int) ([]*types.Mail, error) {
	if maxCount <= 0 {
		return nil, Errorf(KindInvalidArgument, "max_count must be positive, got %d", maxCount)
	}

	uids, err := s.SearchUIDs(nil)
	if err != nil {
		return nil, err
	}
	if len(uids) > maxCount {
		uids = uids[len(uids)-maxCount:]
	}

	return fetchNewestFirst(s, uids)
}

// ByRange fetches count mails starting at startIndex in newest-first order.
//
// Deprecated: index positions shift whenever a mail arrives or vanishes, so
// results are unstable while the mailbox mutates. Use Page instead; this
// exists only for callers that genuinely need positional access.
func ByRange(s Session, startIndex, count int) ([]*types.Mail, error) {
	if startIndex < 0 {
		return nil, Errorf(KindInvalidArgument, "start_index must not be negative, got %d", startIndex)
	}
	if count <= 0 {
		return nil, Errorf(KindInvalidArgument, "count must be positive, got %d", count)
	}

	uids, err := s.SearchUIDs(nil)
	if err != nil {
		return nil, err
	}

	// Newest first, then slice the requested window.
	for i, j := 0, len(uids)-1; i < j; i, j = i+1, j-1 {
		uids[i], uids[j] = uids[j], uids[i]
	}
	if startIndex >= len(uids) {
		return []*types.Mail{}, nil
	}
	end := startIndex + count
	if end > len(uids) {
		end = len(uids)
	}

	return fetchNewestFirst(s, uids[startIndex:end])
}

// fetchNewestFirst fetches the given UIDs and normalizes them into mails
// ordered by descending UID.
func fetchNewestFirst(s Session, uids []uint32) ([]*types.Mail, error) {
	mails := make([]*types.Mail, 0, len(uids))
	if len(uids) == 0 {
		return mails, nil
	}

	msgs, err := s.FetchMails(uids)
	if err != nil {
		return nil, err
	}

	sort.Slice(msgs, func(i, j int) bool { return msgs[i].Uid > msgs[j].Uid })
	for _, msg := range msgs {
		mails = append(mails, Normalize(msg))
	}
	return mails, nil
}
