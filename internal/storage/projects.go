package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/Lumerin-protocol/flow-editor-api/internal/lib"
	jsoniter "github.com/json-iterator/go"
)

var (
	ErrProjectsConfig = errors.New("cannot read projects config")
	ErrFlowFileStat   = errors.New("cannot stat flow file")
)

type projectsConfig struct {
	ActiveProject string `json:"activeProject"`
}

// Projects is the read-only view of the projects subsystem needed by the editor
type Projects struct {
	fs      *LocalFS
	gitUser *GitUserResolver
}

// ActiveProject returns the name of the active project, or empty string if there is none
func (p *Projects) ActiveProject(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(filepath.Join(p.fs.userDir, projectsConfigFile))
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", lib.WrapError(ErrProjectsConfig, err)
	}

	var cfg projectsConfig
	err = jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &cfg)
	if err != nil {
		return "", lib.WrapError(ErrProjectsConfig, err)
	}
	return cfg.ActiveProject, nil
}

func (p *Projects) FlowFileExists(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	info, err := os.Stat(p.fs.flowFile)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, lib.WrapError(ErrFlowFileStat, err)
	}
	return !info.IsDir(), nil
}

func (p *Projects) FlowFilename() string {
	return filepath.Base(p.fs.flowFile)
}

func (p *Projects) CredentialsFilename() string {
	return filepath.Base(p.fs.credsFile)
}

// GlobalGitUser returns nil if neither user.name nor user.email is configured
func (p *Projects) GlobalGitUser(ctx context.Context) (*GitUser, error) {
	if p.gitUser == nil {
		return nil, nil
	}
	return p.gitUser.GlobalUser(ctx)
}
