package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sliitsesc/event-navigation-dashboard/exhibition"
)

type fakeAuth struct {
	user *exhibition.User
	err  error
}

func (f *fakeAuth) SignIn(ctx context.Context, email, password string) (*exhibition.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u := *f.user
	u.Email = email
	return &u, nil
}

func validUser() *exhibition.User {
	return &exhibition.User{
		ID:           1,
		Email:        "admin@sliitsesc.org",
		AccessToken:  "access-abc",
		RefreshToken: "refresh-def",
	}
}

func sessionPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.json")
}

func TestNew_NoSessionFile(t *testing.T) {
	store := New(sessionPath(t), &fakeAuth{})

	assert.False(t, store.LoggedIn())
	assert.Nil(t, store.Current())
	assert.Empty(t, store.AccessToken())
}

func TestLogin_PersistsAndRestores(t *testing.T) {
	path := sessionPath(t)
	store := New(path, &fakeAuth{user: validUser()})

	err := store.Login(context.Background(), "admin@sliitsesc.org", "secret")
	require.NoError(t, err)
	require.True(t, store.LoggedIn())
	assert.Equal(t, "access-abc", store.AccessToken())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// A fresh store restores the same session from disk.
	restored := New(path, &fakeAuth{})
	require.True(t, restored.LoggedIn())
	assert.Equal(t, "admin@sliitsesc.org", restored.Current().Email)
	assert.Equal(t, "refresh-def", restored.Current().RefreshToken)
}

func TestLogin_FailureLeavesPriorSession(t *testing.T) {
	path := sessionPath(t)
	store := New(path, &fakeAuth{user: validUser()})
	require.NoError(t, store.Login(context.Background(), "admin@sliitsesc.org", "secret"))

	store.auth = &fakeAuth{err: &exhibition.Error{Message: "Invalid email or password"}}
	err := store.Login(context.Background(), "admin@sliitsesc.org", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid email or password")

	// Prior session untouched, in memory and on disk.
	assert.True(t, store.LoggedIn())
	restored := New(path, &fakeAuth{})
	assert.True(t, restored.LoggedIn())
}

func TestLogin_FailureWithNoPriorSession(t *testing.T) {
	store := New(sessionPath(t), &fakeAuth{err: &exhibition.Error{Message: "Invalid email or password"}})

	err := store.Login(context.Background(), "admin@sliitsesc.org", "wrong")
	require.Error(t, err)
	assert.False(t, store.LoggedIn())
	assert.Nil(t, store.Current())
}

func TestLogout_RemovesFile(t *testing.T) {
	path := sessionPath(t)
	store := New(path, &fakeAuth{user: validUser()})
	require.NoError(t, store.Login(context.Background(), "admin@sliitsesc.org", "secret"))

	require.NoError(t, store.Logout())
	assert.False(t, store.LoggedIn())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Logging out twice is fine.
	require.NoError(t, store.Logout())
}

func TestNew_CorruptFilePurged(t *testing.T) {
	path := sessionPath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := New(path, &fakeAuth{})
	assert.False(t, store.LoggedIn())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "corrupt session file should be removed")
}

func TestNew_IncompleteRecordPurged(t *testing.T) {
	path := sessionPath(t)
	// Parsable but missing tokens: not a usable session.
	require.NoError(t, os.WriteFile(path, []byte(`{"id":1,"email":"admin@sliitsesc.org"}`), 0o600))

	store := New(path, &fakeAuth{})
	assert.False(t, store.LoggedIn())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "incomplete session file should be removed")
}

func TestCurrent_ReturnsCopy(t *testing.T) {
	store := New(sessionPath(t), &fakeAuth{user: validUser()})
	require.NoError(t, store.Login(context.Background(), "admin@sliitsesc.org", "secret"))

	u := store.Current()
	u.AccessToken = "tampered"
	assert.Equal(t, "access-abc", store.AccessToken())
}
