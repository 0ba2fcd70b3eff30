package storage

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/Lumerin-protocol/flow-editor-api/internal/lib"
	"github.com/patrickmn/go-cache"
)

const gitUserCacheKey = "global"

var ErrGitConfig = errors.New("cannot read git config")

type GitUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// GitConfigFunc returns the value of a global git config key, empty string if it is not set
type GitConfigFunc func(ctx context.Context, key string) (string, error)

// GitUserResolver reads the global git identity, caching it for a while
// since every editor load asks for it
type GitUserResolver struct {
	cache     *cache.Cache
	gitConfig GitConfigFunc
}

func NewGitUserResolver(ttl time.Duration) *GitUserResolver {
	return NewGitUserResolverFunc(ttl, ExecGitConfig)
}

func NewGitUserResolverFunc(ttl time.Duration, gitConfig GitConfigFunc) *GitUserResolver {
	return &GitUserResolver{
		cache:     cache.New(ttl, 2*ttl),
		gitConfig: gitConfig,
	}
}

func (g *GitUserResolver) GlobalUser(ctx context.Context) (*GitUser, error) {
	if cached, ok := g.cache.Get(gitUserCacheKey); ok {
		return toUserPtr(cached.(GitUser)), nil
	}

	name, err := g.gitConfig(ctx, "user.name")
	if errors.Is(err, exec.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, lib.WrapError(ErrGitConfig, err)
	}
	email, err := g.gitConfig(ctx, "user.email")
	if err != nil {
		return nil, lib.WrapError(ErrGitConfig, err)
	}

	user := GitUser{Name: name, Email: email}
	g.cache.SetDefault(gitUserCacheKey, user)
	return toUserPtr(user), nil
}

// Invalidate drops the cached identity, e.g. after the user has changed it
func (g *GitUserResolver) Invalidate() {
	g.cache.Delete(gitUserCacheKey)
}

func toUserPtr(u GitUser) *GitUser {
	if u.Name == "" && u.Email == "" {
		return nil
	}
	return &u
}

// ExecGitConfig runs git config --global --get key
func ExecGitConfig(ctx context.Context, key string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "git", "config", "--global", "--get", key)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 && stderr.Len() == 0 {
		// key is not set
		return "", nil
	}
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", errors.New(msg)
		}
		return "", err
	}
	return strings.TrimSpace(stdout.String()), nil
}
