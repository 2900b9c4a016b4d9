package config

import "time"

// GlobalFlags contains common flags used across commands
type GlobalFlags struct {
	Verbose bool
	NoColor bool

	// Verify holds the settings of the publish sweep
	Verify VerifyConfig

	// Credentials are resolved once from the environment at startup.
	Credentials Credentials
}

// Container probe modes.
const (
	ProbeAPI      = "api"
	ProbeManifest = "manifest"
)

// VerifyConfig holds the registry endpoints and run settings of a sweep
type VerifyConfig struct {
	// Internal Git host (Gitea) serving the container registry and package API
	GiteaURL   string
	GiteaOwner string

	// Public code host
	GithubAPIURL        string
	GithubContainerHost string
	GithubOwner         string
	// GithubOwnerType is "users" or "orgs"; it selects the packages endpoint.
	GithubOwnerType string

	// Internal Maven proxy
	ReposiliteURL        string
	ReposiliteRepository string
	MavenGroup           string

	NpmRegistry string
	NpmScope    string

	ContainerTag   string
	ContainerProbe string

	Concurrency    int
	Retries        int
	RequestTimeout time.Duration
	Timeout        time.Duration

	OutputDir   string
	CatalogPath string
	Only        []string
	Strict      bool
	HTML        bool
}

// Defaults used when neither a flag nor an environment variable is set.
const (
	DefaultGiteaURL             = "http://localhost:3000"
	DefaultGithubAPIURL         = "https://api.github.com"
	DefaultGithubContainerHost  = "ghcr.io"
	DefaultReposiliteURL        = "http://localhost:8080"
	DefaultReposiliteRepository = "releases"
	DefaultNpmRegistry          = "https://registry.npmjs.org"
	DefaultContainerTag         = "latest"
	DefaultConcurrency          = 4
	DefaultRetries              = 2
	DefaultRequestTimeout       = 10 * time.Second
	DefaultTimeout              = 5 * time.Minute
)

// Global is the shared instance of GlobalFlags
var Global = GlobalFlags{}
