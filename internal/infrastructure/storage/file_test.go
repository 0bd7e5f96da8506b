package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/markethub/storefront-core/internal/core/domain"
)

func newFileStorage(t *testing.T) (*FileStorage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	fs, err := NewFileStorage(path)
	if err != nil {
		t.Fatalf("NewFileStorage: %v", err)
	}
	return fs, path
}

func TestFileStorage_EmptySession(t *testing.T) {
	fs, _ := newFileStorage(t)

	if fs.AccessToken() != "" || fs.RefreshToken() != "" {
		t.Fatalf("fresh storage must read as empty")
	}
	u, err := fs.LoadUser()
	if err != nil || u != nil {
		t.Fatalf("expected no user, got %v %v", u, err)
	}
}

func TestFileStorage_TokensSurviveReopen(t *testing.T) {
	fs, path := newFileStorage(t)
	if err := fs.SetTokens("acc", "ref"); err != nil {
		t.Fatalf("SetTokens: %v", err)
	}

	reopened, err := NewFileStorage(path)
	if err != nil {
		t.Fatalf("NewFileStorage: %v", err)
	}
	if reopened.AccessToken() != "acc" || reopened.RefreshToken() != "ref" {
		t.Fatalf("tokens did not survive reopen")
	}
}

func TestFileStorage_SetAccessTokenKeepsRefresh(t *testing.T) {
	fs, _ := newFileStorage(t)
	mustNoErr(t, fs.SetTokens("old", "ref"))

	mustNoErr(t, fs.SetAccessToken("new"))

	if fs.AccessToken() != "new" {
		t.Fatalf("access token not replaced")
	}
	if fs.RefreshToken() != "ref" {
		t.Fatalf("refresh token must survive an access-only update")
	}
}

func TestFileStorage_UserRoundTrip(t *testing.T) {
	fs, _ := newFileStorage(t)
	mustNoErr(t, fs.SaveUser(&domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com", IsStaff: true}))

	u, err := fs.LoadUser()
	if err != nil {
		t.Fatalf("LoadUser: %v", err)
	}
	if u == nil || u.ID != "u1" || !u.IsStaff {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestFileStorage_ClearTokensKeepsUser(t *testing.T) {
	fs, _ := newFileStorage(t)
	mustNoErr(t, fs.SetTokens("acc", "ref"))
	mustNoErr(t, fs.SaveUser(&domain.User{ID: "u1"}))

	mustNoErr(t, fs.ClearTokens())

	if fs.AccessToken() != "" || fs.RefreshToken() != "" {
		t.Fatalf("tokens not cleared")
	}
	u, err := fs.LoadUser()
	if err != nil || u == nil {
		t.Fatalf("user must survive ClearTokens, got %v %v", u, err)
	}
}

func TestFileStorage_ClearRemovesFile(t *testing.T) {
	fs, path := newFileStorage(t)
	mustNoErr(t, fs.SetTokens("acc", "ref"))

	mustNoErr(t, fs.Clear())
	mustNoErr(t, fs.Clear()) // idempotent

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected session file removed, stat err=%v", err)
	}
	if fs.AccessToken() != "" {
		t.Fatalf("cleared storage must read as empty")
	}
}

func TestFileStorage_CorruptFileReadsAsEmpty(t *testing.T) {
	fs, path := newFileStorage(t)
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	if fs.AccessToken() != "" {
		t.Fatalf("corrupt file must read as an empty session")
	}
	// And writes must recover the file.
	mustNoErr(t, fs.SetTokens("acc", "ref"))
	if fs.AccessToken() != "acc" {
		t.Fatalf("storage did not recover from corrupt file")
	}
}

func mustNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
