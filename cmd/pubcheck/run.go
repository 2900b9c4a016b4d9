package main

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/harness/pubcheck/config"
	"github.com/harness/pubcheck/internal/catalog"
	"github.com/harness/pubcheck/internal/registry"
	"github.com/harness/pubcheck/internal/report"
	"github.com/harness/pubcheck/internal/style"
	"github.com/harness/pubcheck/internal/sweep"
	"github.com/harness/pubcheck/util/common/errors"
	"github.com/harness/pubcheck/util/common/progress"
)

// loadCatalog returns the catalog file at path, or the built-in catalog when
// path is empty, narrowed to the only patterns.
func loadCatalog(path string, only []string) (catalog.Catalog, error) {
	c := catalog.Default()
	if path != "" {
		var err error
		if c, err = catalog.Load(path); err != nil {
			return nil, err
		}
	}
	return c.Filter(only)
}

func newReporter(w io.Writer) progress.Reporter {
	if f, ok := writerFile(w); ok {
		return progress.NewAutoReporter(f)
	}
	return progress.NewConsoleReporter(w)
}

func (a *app) runSweep(ctx context.Context, out, errOut io.Writer) error {
	cfg := &config.Global.Verify
	config.Global.Credentials = config.LoadCredentials(a.getenv)
	creds := config.Global.Credentials

	if err := cfg.Resolve(a.workDir, a.homeDir); err != nil {
		return err
	}
	c, err := loadCatalog(cfg.CatalogPath, cfg.Only)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	runID := uuid.NewString()
	started := a.now()
	log.Info().Str("run_id", runID).Int("artifacts", len(c)).Int("checks", c.CheckCount()).
		Str("github_owner", cfg.GithubOwner).Str("gitea_owner", cfg.GiteaOwner).
		Bool("github_token", creds.Github != "").Bool("gitea_token", creds.Gitea != "").
		Bool("reposilite_token", creds.Reposilite != "").
		Msg("Starting publish verification")

	rep := newReporter(errOut)
	rep.Start(fmt.Sprintf("Checking %d artifacts against %d registry targets", len(c), c.CheckCount()))
	for _, k := range []catalog.Kind{catalog.Service, catalog.Library, catalog.Special} {
		if sub := c.OfKind(k); len(sub) > 0 {
			rep.Step(fmt.Sprintf("%s: %d artifacts, %d checks", k, len(sub), sub.CheckCount()))
		}
	}

	driver := sweep.NewDriver(registry.New(*cfg, creds),
		sweep.WithConcurrency(cfg.Concurrency),
		sweep.WithObserver(func(r registry.Result) {
			msg := r.Artifact.Name + " " + r.Target.Label()
			if r.Exists {
				rep.Success(msg)
				return
			}
			rep.Error(fmt.Sprintf("%s (%s)", msg, r.Reason))
		}),
	)
	outcome := driver.Run(ctx, c)
	s := outcome.Summary
	rep.End(fmt.Sprintf("%d/%d checks passed, success rate %s", s.Passed, s.Total, style.Rate(s.SuccessRate())))

	md := report.Render(report.Document{RunID: runID, GeneratedAt: started, Outcome: outcome})
	written, err := report.Write(cfg.OutputDir, started, md, cfg.HTML)
	if err != nil {
		return errors.Wrap(err, "failed to write report")
	}

	fmt.Fprint(out, md)
	fmt.Fprintln(errOut, style.Hint("Report written to "+written.Markdown))
	if written.HTML != "" {
		fmt.Fprintln(errOut, style.Hint("HTML report written to "+written.HTML))
	}

	if !outcome.Complete() {
		incomplete := 0
		for _, row := range outcome.Rows {
			if !row.Complete {
				incomplete++
			}
		}
		fmt.Fprintf(errOut, "%s %d of %d artifacts are not fully published\n",
			style.WarningIcon(), incomplete, len(outcome.Rows))
	}

	if cfg.Strict && !outcome.Complete() {
		return fmt.Errorf("strict mode: %d of %d checks failed", s.Failed(), s.Total)
	}
	return nil
}
