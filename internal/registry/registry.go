// Package registry checks whether an artifact is published to a registry
// target. Every check returns a Result; failures of any kind come back as
// Exists=false with a Reason, never as an error.
package registry

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/harness/pubcheck/config"
	"github.com/harness/pubcheck/internal/catalog"
	"github.com/harness/pubcheck/internal/httpclient"
)

const userAgent = "pubcheck"

// Checker verifies one registry target.
type Checker interface {
	Check(ctx context.Context, e catalog.Entry) Result
}

// Registry dispatches checks to the checker of each target.
type Registry struct {
	giteaContainer  Checker
	githubContainer Checker
	reposiliteJar   Checker
	githubJar       Checker
	npm             Checker
}

// New builds the checkers for every target from the sweep settings.
func New(cfg config.VerifyConfig, creds config.Credentials) *Registry {
	client := httpclient.NewClient(httpclient.Options{
		Retries:   cfg.Retries,
		Timeout:   cfg.RequestTimeout,
		UserAgent: userAgent,
	})
	ep := newEndpoints(cfg)

	r := &Registry{
		giteaContainer: &statusChecker{
			target: catalog.GiteaContainer,
			client: client,
			token:  creds.Gitea,
			url:    ep.giteaContainer,
		},
		githubContainer: &githubChecker{
			target: catalog.GithubContainer,
			client: client,
			token:  creds.Github,
			url:    ep.githubContainer,
		},
		reposiliteJar: &statusChecker{
			target: catalog.ReposiliteJar,
			client: client,
			token:  creds.Reposilite,
			url:    ep.reposiliteJar,
		},
		githubJar: &githubChecker{
			target: catalog.GithubJar,
			client: client,
			token:  creds.Github,
			url:    ep.githubJar,
		},
		npm: &npmChecker{
			client: client,
			url:    ep.npm,
		},
	}

	if cfg.ContainerProbe == config.ProbeManifest {
		r.giteaContainer = newManifestChecker(catalog.GiteaContainer, ep.giteaHost, ep.giteaInsecure,
			ep.giteaImage, creds.Gitea, cfg.RequestTimeout)
		r.githubContainer = newManifestChecker(catalog.GithubContainer, ep.githubHost, false,
			ep.githubImage, creds.Github, cfg.RequestTimeout)
	}
	return r
}

// Check runs the checker of target t against e.
func (r *Registry) Check(ctx context.Context, e catalog.Entry, t catalog.Target) (res Result) {
	defer func() {
		if p := recover(); p != nil {
			log.Error().Str("artifact", e.Name).Stringer("target", t).Msgf("checker panicked: %v", p)
			res = missing(e, t, "", ReasonNetwork)
		}
	}()

	c := r.checker(t)
	if c == nil {
		return missing(e, t, "", ReasonNotFound)
	}
	res = c.Check(ctx, e)
	if res.Exists {
		log.Debug().Str("artifact", e.Name).Stringer("target", t).Str("url", res.URL).Msg("Artifact found")
	} else {
		log.Debug().Str("artifact", e.Name).Stringer("target", t).Str("url", res.URL).
			Str("reason", string(res.Reason)).Msg("Artifact missing")
	}
	return res
}

func (r *Registry) checker(t catalog.Target) Checker {
	switch t {
	case catalog.GiteaContainer:
		return r.giteaContainer
	case catalog.GithubContainer:
		return r.githubContainer
	case catalog.ReposiliteJar:
		return r.reposiliteJar
	case catalog.GithubJar:
		return r.githubJar
	case catalog.Npm:
		return r.npm
	}
	return nil
}
