package storage

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeGitConfig struct {
	values map[string]string
	err    error
	calls  int
}

func (f *fakeGitConfig) get(ctx context.Context, key string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.values[key], nil
}

func TestGlobalUser(t *testing.T) {
	git := &fakeGitConfig{values: map[string]string{"user.name": "foo", "user.email": "foo@example.com"}}
	r := NewGitUserResolverFunc(time.Minute, git.get)

	user, err := r.GlobalUser(context.Background())
	require.NoError(t, err)
	require.Equal(t, &GitUser{Name: "foo", Email: "foo@example.com"}, user)
}

func TestGlobalUserCached(t *testing.T) {
	git := &fakeGitConfig{values: map[string]string{"user.name": "foo"}}
	r := NewGitUserResolverFunc(time.Minute, git.get)

	_, err := r.GlobalUser(context.Background())
	require.NoError(t, err)
	_, err = r.GlobalUser(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, git.calls, "name and email are read once")

	git.values["user.name"] = "bar"
	r.Invalidate()
	user, err := r.GlobalUser(context.Background())
	require.NoError(t, err)
	require.Equal(t, "bar", user.Name)
}

func TestGlobalUserNotConfigured(t *testing.T) {
	r := NewGitUserResolverFunc(time.Minute, (&fakeGitConfig{}).get)

	user, err := r.GlobalUser(context.Background())
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestGlobalUserGitMissing(t *testing.T) {
	r := NewGitUserResolverFunc(time.Minute, (&fakeGitConfig{err: &exec.Error{Name: "git", Err: exec.ErrNotFound}}).get)

	user, err := r.GlobalUser(context.Background())
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestGlobalUserError(t *testing.T) {
	r := NewGitUserResolverFunc(time.Minute, (&fakeGitConfig{err: errors.New("fatal: bad config")}).get)

	_, err := r.GlobalUser(context.Background())
	require.ErrorIs(t, err, ErrGitConfig)
}

func TestExecGitConfigCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ExecGitConfig(ctx, "user.name")
	require.ErrorIs(t, err, context.Canceled)
}

func TestGlobalUserCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewGitUserResolver(time.Minute)
	_, err := r.GlobalUser(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, err, ErrGitConfig)
}
