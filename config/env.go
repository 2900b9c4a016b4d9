package config

import (
	"strconv"
	"strings"
	"time"
)

// Credentials holds the bearer tokens of the three authenticated services.
// An empty token means the service is unauthenticated.
type Credentials struct {
	Gitea      string
	Github     string
	Reposilite string
}

// Environment variable fallback chains, first non-empty wins.
var (
	GiteaTokenEnv      = []string{"GITEA_TOKEN", "GITEA_ACCESS_TOKEN", "GITEA_PAT"}
	GithubTokenEnv     = []string{"GITHUB_TOKEN", "GH_TOKEN", "GITHUB_PAT"}
	ReposiliteTokenEnv = []string{"REPOSILITE_TOKEN", "REPOSILITE_PASSWORD", "MAVEN_TOKEN"}
)

// FirstEnv returns the first non-empty value among names.
func FirstEnv(getenv func(string) string, names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

// LoadCredentials resolves every credential chain.
func LoadCredentials(getenv func(string) string) Credentials {
	return Credentials{
		Gitea:      FirstEnv(getenv, GiteaTokenEnv...),
		Github:     FirstEnv(getenv, GithubTokenEnv...),
		Reposilite: FirstEnv(getenv, ReposiliteTokenEnv...),
	}
}

// ApplyEnv overrides settings from PUBCHECK_* variables. It runs after flag
// defaults are registered and before flags are parsed, so explicit flags win.
func (c *VerifyConfig) ApplyEnv(getenv func(string) string) {
	str := map[string]*string{
		"PUBCHECK_GITEA_URL":             &c.GiteaURL,
		"PUBCHECK_GITEA_OWNER":           &c.GiteaOwner,
		"PUBCHECK_GITHUB_API_URL":        &c.GithubAPIURL,
		"PUBCHECK_GITHUB_CONTAINER_HOST": &c.GithubContainerHost,
		"PUBCHECK_GITHUB_OWNER":          &c.GithubOwner,
		"PUBCHECK_GITHUB_OWNER_TYPE":     &c.GithubOwnerType,
		"PUBCHECK_REPOSILITE_URL":        &c.ReposiliteURL,
		"PUBCHECK_REPOSILITE_REPOSITORY": &c.ReposiliteRepository,
		"PUBCHECK_MAVEN_GROUP":           &c.MavenGroup,
		"PUBCHECK_NPM_REGISTRY":          &c.NpmRegistry,
		"PUBCHECK_NPM_SCOPE":             &c.NpmScope,
		"PUBCHECK_CONTAINER_TAG":         &c.ContainerTag,
		"PUBCHECK_CONTAINER_PROBE":       &c.ContainerProbe,
		"PUBCHECK_OUTPUT_DIR":            &c.OutputDir,
		"PUBCHECK_CATALOG":               &c.CatalogPath,
	}
	for name, field := range str {
		if v := strings.TrimSpace(getenv(name)); v != "" {
			*field = v
		}
	}

	if v := getenv("PUBCHECK_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Concurrency = n
		}
	}
	if v := getenv("PUBCHECK_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = d
		}
	}
	if v := getenv("PUBCHECK_STRICT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Strict = b
		}
	}
}
