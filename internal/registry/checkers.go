package registry

import (
	"context"
	"encoding/json"

	"github.com/harness/pubcheck/internal/catalog"
	"github.com/harness/pubcheck/internal/httpclient"
	"github.com/harness/pubcheck/util/common/errors"
)

// statusChecker issues a GET and treats any 2xx as published. The token is
// optional; without one the request goes out anonymously.
type statusChecker struct {
	target catalog.Target
	client *httpclient.Client
	token  string
	url    func(catalog.Entry) string
}

func (c *statusChecker) Check(ctx context.Context, e catalog.Entry) Result {
	u := c.url(e)
	if _, err := c.client.GetOK(ctx, u, httpclient.NewBearerAuthorizer(c.token)); err != nil {
		return missing(e, c.target, u, classify(err))
	}
	return found(e, c.target, u)
}

// githubChecker queries the GitHub package-metadata API. The API refuses
// anonymous package lookups, so a missing token fails the check without a
// request.
type githubChecker struct {
	target catalog.Target
	client *httpclient.Client
	token  string
	url    func(catalog.Entry) string
}

func (c *githubChecker) Check(ctx context.Context, e catalog.Entry) Result {
	u := c.url(e)
	if c.token == "" {
		return missing(e, c.target, u, classify(errors.ErrNoCredential))
	}
	_, err := c.client.GetOK(ctx, u,
		httpclient.NewBearerAuthorizer(c.token),
		httpclient.WithHeader("Accept", "application/vnd.github+json"),
		httpclient.WithHeader("X-GitHub-Api-Version", "2022-11-28"),
	)
	if err != nil {
		return missing(e, c.target, u, classify(err))
	}
	return found(e, c.target, u)
}

// npmChecker reads the public registry metadata document. A package exists
// when the document parses and names the package.
type npmChecker struct {
	client *httpclient.Client
	url    func(catalog.Entry) string
}

type npmMetadata struct {
	Name string `json:"name"`
}

func (c *npmChecker) Check(ctx context.Context, e catalog.Entry) Result {
	u := c.url(e)
	body, err := c.client.GetOK(ctx, u)
	if err != nil {
		return missing(e, catalog.Npm, u, classify(err))
	}

	var meta npmMetadata
	if err := json.Unmarshal(body, &meta); err != nil || meta.Name == "" {
		return missing(e, catalog.Npm, u, classify(errors.ErrMalformed))
	}
	return found(e, catalog.Npm, u)
}
