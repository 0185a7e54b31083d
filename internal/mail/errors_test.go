package mail

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestKindOf(t *testing.T) {
	if got := KindOf(Errorf(KindNotFound, "gone")); got != KindNotFound {
		t.Errorf("KindOf(not_found) = %s", got)
	}
	if got := KindOf(io.ErrUnexpectedEOF); got != KindConnectivity {
		t.Errorf("KindOf(untyped) = %s, want connectivity", got)
	}

	// The classification survives further wrapping.
	wrapped := fmt.Errorf("outer: %w", Errorf(KindAuthentication, "login rejected"))
	if got := KindOf(wrapped); got != KindAuthentication {
		t.Errorf("KindOf(wrapped) = %s, want authentication", got)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := io.ErrClosedPipe
	err := Wrap(KindConnectivity, cause, "failed to dial %s", "imap.naver.com:993")

	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
	if !strings.Contains(err.Error(), "imap.naver.com:993") || !strings.Contains(err.Error(), cause.Error()) {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestIsKind(t *testing.T) {
	err := Errorf(KindInvalidArgument, "bad uid")

	if !IsKind(err, KindInvalidArgument) {
		t.Error("IsKind() = false for a matching kind")
	}
	if IsKind(err, KindNotFound) {
		t.Error("IsKind() = true for a different kind")
	}
	if IsKind(nil, KindConnectivity) {
		t.Error("IsKind(nil) = true")
	}
}
