package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadCredentialsFallbackChains(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Credentials
	}{
		{
			name: "none set",
			env:  map[string]string{},
			want: Credentials{},
		},
		{
			name: "primary names win",
			env: map[string]string{
				"GITEA_TOKEN": "g1", "GITEA_PAT": "g3",
				"GITHUB_TOKEN": "h1", "GH_TOKEN": "h2",
				"REPOSILITE_TOKEN": "r1", "MAVEN_TOKEN": "r3",
			},
			want: Credentials{Gitea: "g1", Github: "h1", Reposilite: "r1"},
		},
		{
			name: "secondary names",
			env: map[string]string{
				"GITEA_ACCESS_TOKEN":  "g2",
				"GH_TOKEN":            "h2",
				"REPOSILITE_PASSWORD": "r2",
			},
			want: Credentials{Gitea: "g2", Github: "h2", Reposilite: "r2"},
		},
		{
			name: "tertiary names and blank primaries",
			env: map[string]string{
				"GITEA_TOKEN": "  ",
				"GITEA_PAT":   "g3",
				"GITHUB_PAT":  "h3",
				"MAVEN_TOKEN": "r3",
			},
			want: Credentials{Gitea: "g3", Github: "h3", Reposilite: "r3"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LoadCredentials(envMap(tt.env)))
		})
	}
}

func TestApplyEnv(t *testing.T) {
	c := VerifyConfig{GiteaURL: DefaultGiteaURL, Concurrency: 4, Timeout: time.Minute}
	c.ApplyEnv(envMap(map[string]string{
		"PUBCHECK_GITEA_URL":    "https://git.internal",
		"PUBCHECK_NPM_SCOPE":    "acme",
		"PUBCHECK_CONCURRENCY":  "8",
		"PUBCHECK_TIMEOUT":      "30s",
		"PUBCHECK_STRICT":       "true",
		"PUBCHECK_GITHUB_OWNER": "",
	}))
	assert.Equal(t, "https://git.internal", c.GiteaURL)
	assert.Equal(t, "acme", c.NpmScope)
	assert.Equal(t, 8, c.Concurrency)
	assert.Equal(t, 30*time.Second, c.Timeout)
	assert.True(t, c.Strict)
	assert.Empty(t, c.GithubOwner)

	c.ApplyEnv(envMap(map[string]string{"PUBCHECK_CONCURRENCY": "many"}))
	assert.Equal(t, 8, c.Concurrency)
}

func validConfig() VerifyConfig {
	return VerifyConfig{
		Concurrency:    DefaultConcurrency,
		Retries:        DefaultRetries,
		RequestTimeout: DefaultRequestTimeout,
		Timeout:        DefaultTimeout,
	}
}

func TestResolveFromGitRemoteAndNpmrc(t *testing.T) {
	work := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(work, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(work, ".git", "config"),
		[]byte("[remote \"origin\"]\n\turl = https://github.com/Acme/platform.git\n"), 0o644))

	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, ".npmrc"), []byte(
		"registry=https://registry.example.com/\n"+
			"@acme:registry=https://npm.acme.dev/\n"+
			"//npm.acme.dev/:_authToken=secret\n"), 0o644))

	c := validConfig()
	require.NoError(t, c.Resolve(work, home))
	assert.Equal(t, "Acme", c.GithubOwner)
	assert.Equal(t, "Acme", c.GiteaOwner)
	assert.Equal(t, "acme", c.NpmScope)
	assert.Equal(t, "https://npm.acme.dev", c.NpmRegistry)
	assert.Equal(t, "io.github.acme", c.MavenGroup)
	assert.Equal(t, "users", c.GithubOwnerType)
	assert.Equal(t, ProbeAPI, c.ContainerProbe)
	assert.Equal(t, ".", c.OutputDir)
}

func TestResolveKeepsExplicitValues(t *testing.T) {
	c := validConfig()
	c.GithubOwner = "octo"
	c.GiteaOwner = "team"
	c.NpmScope = "@web"
	c.MavenGroup = "com.octo"
	c.GithubOwnerType = "ORGS"
	c.ContainerProbe = "Manifest"

	require.NoError(t, c.Resolve(t.TempDir(), t.TempDir()))
	assert.Equal(t, "octo", c.GithubOwner)
	assert.Equal(t, "team", c.GiteaOwner)
	assert.Equal(t, "web", c.NpmScope)
	assert.Equal(t, DefaultNpmRegistry, c.NpmRegistry)
	assert.Equal(t, "com.octo", c.MavenGroup)
	assert.Equal(t, "orgs", c.GithubOwnerType)
	assert.Equal(t, ProbeManifest, c.ContainerProbe)
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func TestResolveWarnsOnMissingOwnerAndGroup(t *testing.T) {
	buf := captureLog(t)
	c := validConfig()
	require.NoError(t, c.Resolve(t.TempDir(), t.TempDir()))

	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"setting":"github-owner"`)
	assert.Contains(t, out, `"setting":"gitea-owner"`)
	assert.Contains(t, out, `"setting":"maven-group"`)
}

func TestResolveQuietWhenOwnerIsSet(t *testing.T) {
	buf := captureLog(t)
	c := validConfig()
	c.GithubOwner = "octo"
	c.GiteaOwner = "octo"
	require.NoError(t, c.Resolve(t.TempDir(), t.TempDir()))
	assert.NotContains(t, buf.String(), `"level":"warn"`)
}

func TestResolveValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*VerifyConfig)
		errMsg string
	}{
		{"concurrency", func(c *VerifyConfig) { c.Concurrency = 0 }, "concurrency"},
		{"retries", func(c *VerifyConfig) { c.Retries = -1 }, "retries"},
		{"request timeout", func(c *VerifyConfig) { c.RequestTimeout = 0 }, "request-timeout"},
		{"timeout", func(c *VerifyConfig) { c.Timeout = 0 }, "timeout"},
		{"owner type", func(c *VerifyConfig) { c.GithubOwnerType = "teams" }, "github-owner-type"},
		{"probe", func(c *VerifyConfig) { c.ContainerProbe = "ping" }, "container-probe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			c.GithubOwner = "octo"
			tt.mutate(&c)
			assert.ErrorContains(t, c.Resolve(t.TempDir(), t.TempDir()), tt.errMsg)
		})
	}
}
