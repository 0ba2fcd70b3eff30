package storage

import (
	"path/filepath"
	"strings"
)

const (
	DefaultFlowFile    = "flows.json"
	projectsConfigFile = ".config.projects.json"
)

type SettingsReader interface {
	String(key string) (string, bool)
	Path(keys ...string) (any, bool)
}

// LocalFS is the storage of flows in the user directory on the local filesystem
type LocalFS struct {
	userDir   string
	flowFile  string // absolute path
	credsFile string // absolute path
	projects  *Projects
}

// NewLocalFS resolves the storage locations from the settings. userDir is used
// when the settings don't define one
func NewLocalFS(s SettingsReader, userDir string, gitUser *GitUserResolver) *LocalFS {
	if dir, ok := s.String("userDir"); ok && dir != "" {
		userDir = dir
	}

	flowFile, ok := s.String("flowFile")
	if !ok || flowFile == "" {
		flowFile = DefaultFlowFile
	}
	flowFile = resolve(userDir, flowFile)

	credsFile, ok := s.String("credentialsFile")
	if ok && credsFile != "" {
		credsFile = resolve(userDir, credsFile)
	} else {
		credsFile = CredentialsFileFor(flowFile)
	}

	fs := &LocalFS{
		userDir:   userDir,
		flowFile:  flowFile,
		credsFile: credsFile,
	}

	if enabled, _ := s.Path("editorTheme", "projects", "enabled"); enabled == true {
		fs.projects = &Projects{fs: fs, gitUser: gitUser}
	}

	return fs
}

// CredentialsFileFor derives the credentials file from the flow file: flows.json -> flows_cred.json
func CredentialsFileFor(flowFile string) string {
	ext := filepath.Ext(flowFile)
	return strings.TrimSuffix(flowFile, ext) + "_cred" + ext
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

func (fs *LocalFS) UserDir() string {
	return fs.userDir
}

// Projects returns the projects capability, ok is false when projects are disabled
func (fs *LocalFS) Projects() (*Projects, bool) {
	return fs.projects, fs.projects != nil
}
