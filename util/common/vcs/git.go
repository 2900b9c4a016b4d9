package vcs

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/harness/pubcheck/util/common/errors"
	"github.com/harness/pubcheck/util/common/fileutil"

	"gopkg.in/ini.v1"
)

// Remote is a parsed git remote URL
type Remote struct {
	Host  string
	Owner string
	Repo  string
}

// GitRepository represents a Git repository
type GitRepository struct {
	path string
}

// NewGitRepository returns the repository rooted at path, or nil when path
// has no .git directory.
func NewGitRepository(path string) *GitRepository {
	if path == "" || !fileutil.IsDir(filepath.Join(path, ".git")) {
		return nil
	}
	return &GitRepository{path: path}
}

// FindRepository walks up from dir to the first directory holding a .git
// directory.
func FindRepository(dir string) *GitRepository {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil
	}
	for {
		if repo := NewGitRepository(dir); repo != nil {
			return repo
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil
		}
		dir = parent
	}
}

// GetRemoteURL returns the remote URL of the repository.
// It reads the repository's config file and extracts the URL
// of the 'origin' remote.
func (g *GitRepository) GetRemoteURL() (string, error) {
	if g == nil || g.path == "" {
		return "", errors.NewVCSError("validate", "<nil>", errors.ErrInvalidOperation)
	}

	configPath := filepath.Join(g.path, ".git", "config")
	if !fileutil.IsFile(configPath) {
		return "", errors.NewVCSError("read_config", g.path, errors.ErrNotFound)
	}

	cfg, err := ini.Load(configPath)
	if err != nil {
		return "", errors.NewVCSError("read_config", g.path, err)
	}

	if !cfg.HasSection(`remote "origin"`) {
		return "", errors.NewVCSError("validate_remote", g.path, errors.ErrNotFound)
	}
	u := cfg.Section(`remote "origin"`).Key("url").String()
	if u == "" {
		return "", errors.NewVCSError("validate_remote", g.path, errors.ErrNotFound)
	}
	return u, nil
}

// Origin returns the parsed origin remote.
func (g *GitRepository) Origin() (Remote, error) {
	u, err := g.GetRemoteURL()
	if err != nil {
		return Remote{}, err
	}
	return ParseRemoteURL(u)
}

// ParseRemoteURL splits a remote URL into host, owner and repository.
// Both URL forms (https://host/owner/repo.git, ssh://git@host/owner/repo)
// and scp-like forms (git@host:owner/repo.git) are accepted.
func ParseRemoteURL(remote string) (Remote, error) {
	remote = strings.TrimSpace(remote)
	if remote == "" {
		return Remote{}, errors.NewValidationError("remote", "remote URL cannot be empty")
	}

	var host, path string
	if strings.Contains(remote, "://") {
		u, err := url.Parse(remote)
		if err != nil {
			return Remote{}, errors.NewValidationError("remote", err.Error())
		}
		host, path = u.Hostname(), u.Path
	} else {
		at := strings.LastIndex(remote, "@")
		colon := strings.Index(remote, ":")
		if colon < 0 || colon < at {
			return Remote{}, errors.NewValidationError("remote", "unrecognised remote URL "+remote)
		}
		host, path = remote[at+1:colon], remote[colon+1:]
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	parts := strings.Split(path, "/")
	if host == "" || len(parts) < 2 || parts[0] == "" || parts[len(parts)-1] == "" {
		return Remote{}, errors.NewValidationError("remote", "remote URL has no owner/repo path: "+remote)
	}

	return Remote{
		Host:  host,
		Owner: strings.Join(parts[:len(parts)-1], "/"),
		Repo:  parts[len(parts)-1],
	}, nil
}
