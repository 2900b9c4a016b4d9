package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/harness/pubcheck/config"
	"github.com/harness/pubcheck/internal/style"
	"github.com/harness/pubcheck/internal/terminal"
)

// version is set via ldflags during build
var version = "dev"

// app carries the process environment so commands can run against a fake one
// in tests.
type app struct {
	getenv  func(string) string
	workDir string
	homeDir string
	now     func() time.Time
}

func newApp() *app {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return &app{getenv: os.Getenv, workDir: wd, homeDir: home, now: time.Now}
}

func main() {
	rootCmd := newRootCmd(newApp())
	if err := rootCmd.Execute(); err != nil {
		if style.Enabled {
			fmt.Fprintln(os.Stderr, style.Error.Render("Error: "+err.Error()))
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	verify := &config.Global.Verify

	rootCmd := &cobra.Command{
		Use:           "pubcheck",
		Short:         "Verify that every artifact of a release is published",
		SilenceUsage:  true,
		SilenceErrors: true, //prevent duplicate printing of errors
		Long: heredoc.Doc(`
			pubcheck checks every artifact of the release catalog against the
			registries it is expected in: the Gitea container registry, the GitHub
			container and Maven package registries, the Reposilite Maven proxy and
			the NPM registry.

			Every failed lookup counts as "not published". The run always writes a
			Markdown report named validation-report-<timestamp>.md and echoes it to
			stdout. Progress goes to stderr.

			Credentials are read from the environment:
			  Gitea:      GITEA_TOKEN, GITEA_ACCESS_TOKEN, GITEA_PAT
			  GitHub:     GITHUB_TOKEN, GH_TOKEN, GITHUB_PAT
			  Reposilite: REPOSILITE_TOKEN, REPOSILITE_PASSWORD, MAVEN_TOKEN
		`),
		Example: heredoc.Doc(`
			# Check the built-in catalog, owners taken from the git origin remote
			$ pubcheck

			# Only the services, fail the build unless everything is published
			$ pubcheck --only '*-service' --only api-gateway --strict

			# Use a catalog file and probe container manifests directly
			$ pubcheck --catalog release.yaml --container-probe manifest --html
		`),
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			termInfo := terminal.Detect(config.Global.NoColor)
			style.Init(termInfo.ColorEnabled)
			if !termInfo.ColorEnabled {
				pterm.DisableColor()
			}

			if config.Global.Verbose {
				logWriter := zerolog.ConsoleWriter{
					Out:        cmd.ErrOrStderr(),
					TimeFormat: time.RFC3339,
					NoColor:    !termInfo.ColorEnabled,
				}
				log.Logger = log.Output(logWriter)
			} else {
				log.Logger = zerolog.Nop()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSweep(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&config.Global.Verbose, "verbose", "v", false, "Enable verbose logging to console")
	pf.BoolVar(&config.Global.NoColor, "no-color", false, "Disable colour output (also respects NO_COLOR env)")
	pf.StringVarP(&verify.CatalogPath, "catalog", "c", "",
		"YAML or TOML catalog file (default: built-in catalog)")
	pf.StringArrayVar(&verify.Only, "only", nil, "Only check artifacts whose name matches one of these glob patterns")

	f := rootCmd.Flags()
	f.StringVar(&verify.GiteaURL, "gitea-url", config.DefaultGiteaURL, "Base URL of the Gitea instance")
	f.StringVar(&verify.GiteaOwner, "gitea-owner", "", "Gitea package owner (default: owner of the git origin remote)")
	f.StringVar(&verify.GithubAPIURL, "github-api-url", config.DefaultGithubAPIURL, "Base URL of the GitHub REST API")
	f.StringVar(&verify.GithubContainerHost, "github-container-host", config.DefaultGithubContainerHost,
		"GitHub container registry host, used by the manifest probe")
	f.StringVar(&verify.GithubOwner, "github-owner", "", "GitHub package owner (default: owner of the git origin remote)")
	f.StringVar(&verify.GithubOwnerType, "github-owner-type", "", `GitHub owner type, "users" or "orgs" (default "users")`)
	f.StringVar(&verify.ReposiliteURL, "reposilite-url", config.DefaultReposiliteURL, "Base URL of the Reposilite instance")
	f.StringVar(&verify.ReposiliteRepository, "reposilite-repository", config.DefaultReposiliteRepository,
		"Reposilite repository holding releases")
	f.StringVar(&verify.MavenGroup, "maven-group", "", "Maven group ID (default: io.github.<github owner>)")
	f.StringVar(&verify.NpmRegistry, "npm-registry", "",
		"NPM registry URL (default: from ~/.npmrc, else "+config.DefaultNpmRegistry+")")
	f.StringVar(&verify.NpmScope, "npm-scope", "", "NPM package scope (default: github owner)")
	f.StringVar(&verify.ContainerTag, "container-tag", config.DefaultContainerTag, "Image tag checked by the manifest probe")
	f.StringVar(&verify.ContainerProbe, "container-probe", "",
		`How container targets are checked, "api" or "manifest" (default "api")`)
	f.IntVar(&verify.Concurrency, "concurrency", config.DefaultConcurrency, "Number of checks run in parallel")
	f.IntVar(&verify.Retries, "retries", config.DefaultRetries, "Retries per request on 5xx and connection errors")
	f.DurationVar(&verify.RequestTimeout, "request-timeout", config.DefaultRequestTimeout, "Timeout of a single request")
	f.DurationVar(&verify.Timeout, "timeout", config.DefaultTimeout, "Timeout of the whole run")
	f.StringVarP(&verify.OutputDir, "output-dir", "o", ".", "Directory the report is written to")
	f.BoolVar(&verify.Strict, "strict", false, "Exit with status 1 unless every check passed")
	f.BoolVar(&verify.HTML, "html", false, "Also write an HTML rendering of the report")

	// Environment overrides defaults; flags parsed by Execute override both.
	verify.ApplyEnv(a.getenv)

	rootCmd.AddCommand(catalogCmd())
	rootCmd.AddCommand(versionCmd())
	return rootCmd
}

// writerFile returns w as an *os.File when it is one.
func writerFile(w io.Writer) (*os.File, bool) {
	f, ok := w.(*os.File)
	return f, ok
}
