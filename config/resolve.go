package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/ini.v1"

	"github.com/harness/pubcheck/util/common/errors"
	"github.com/harness/pubcheck/util/common/fileutil"
	"github.com/harness/pubcheck/util/common/vcs"
)

// Resolve fills the settings that can be derived from the local checkout and
// the user's npm configuration, then validates the result. workDir is where
// the git remote is looked up, homeDir where .npmrc is read from.
func (c *VerifyConfig) Resolve(workDir, homeDir string) error {
	if c.GithubOwner == "" || c.GiteaOwner == "" {
		if repo := vcs.FindRepository(workDir); repo != nil {
			remote, err := repo.Origin()
			if err != nil {
				log.Debug().Err(err).Msg("Could not derive owner from git remote")
			} else {
				if c.GithubOwner == "" {
					c.GithubOwner = remote.Owner
				}
				if c.GiteaOwner == "" {
					c.GiteaOwner = remote.Owner
				}
				log.Debug().Str("host", remote.Host).Str("owner", remote.Owner).Msg("Derived owner from git remote")
			}
		}
	}

	if c.NpmScope == "" && c.GithubOwner != "" {
		c.NpmScope = strings.ToLower(c.GithubOwner)
	}
	c.NpmScope = strings.TrimPrefix(c.NpmScope, "@")

	if c.NpmRegistry == "" {
		c.NpmRegistry = npmrcRegistry(filepath.Join(homeDir, ".npmrc"), c.NpmScope)
	}
	if c.NpmRegistry == "" {
		c.NpmRegistry = DefaultNpmRegistry
	}

	if c.MavenGroup == "" && c.GithubOwner != "" {
		c.MavenGroup = "io.github." + strings.ToLower(c.GithubOwner)
	}
	for _, s := range []struct{ name, value string }{
		{"github-owner", c.GithubOwner},
		{"gitea-owner", c.GiteaOwner},
		{"maven-group", c.MavenGroup},
	} {
		if s.value == "" {
			log.Warn().Str("setting", s.name).Msg("Not configured and not derivable; registry URLs will contain empty segments")
		}
	}
	if c.GithubOwnerType == "" {
		c.GithubOwnerType = "users"
	}
	if c.ContainerProbe == "" {
		c.ContainerProbe = ProbeAPI
	}

	return c.validate()
}

func (c *VerifyConfig) validate() error {
	if c.Concurrency <= 0 {
		return errors.NewValidationError("concurrency", "must be greater than 0")
	}
	if c.Retries < 0 {
		return errors.NewValidationError("retries", "cannot be negative")
	}
	if c.RequestTimeout <= 0 {
		return errors.NewValidationError("request-timeout", "must be greater than 0")
	}
	if c.Timeout <= 0 {
		return errors.NewValidationError("timeout", "must be greater than 0")
	}

	switch strings.ToLower(c.GithubOwnerType) {
	case "users", "orgs":
		c.GithubOwnerType = strings.ToLower(c.GithubOwnerType)
	default:
		return errors.NewValidationError("github-owner-type",
			fmt.Sprintf("invalid value %s, must be 'users' or 'orgs'", c.GithubOwnerType))
	}

	switch strings.ToLower(c.ContainerProbe) {
	case ProbeAPI, ProbeManifest:
		c.ContainerProbe = strings.ToLower(c.ContainerProbe)
	default:
		return errors.NewValidationError("container-probe",
			fmt.Sprintf("invalid value %s, must be '%s' or '%s'", c.ContainerProbe, ProbeAPI, ProbeManifest))
	}

	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	return nil
}

// npmrcRegistry returns the registry configured in an .npmrc file, preferring
// the scope-specific entry.
func npmrcRegistry(path, scope string) string {
	if !fileutil.IsFile(path) {
		return ""
	}
	// npmrc keys contain ':' so only '=' separates key and value.
	cfg, err := ini.LoadSources(ini.LoadOptions{KeyValueDelimiters: "="}, path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("Ignoring unreadable .npmrc")
		return ""
	}
	section := cfg.Section(ini.DefaultSection)
	if scope != "" {
		if v := section.Key("@" + scope + ":registry").String(); v != "" {
			return strings.TrimSuffix(v, "/")
		}
	}
	return strings.TrimSuffix(section.Key("registry").String(), "/")
}
