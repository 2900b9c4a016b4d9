package registry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/go-containerregistry/pkg/authn"
	"github.com/google/go-containerregistry/pkg/name"
	"github.com/google/go-containerregistry/pkg/v1/remote"

	"github.com/harness/pubcheck/internal/catalog"
)

// manifestChecker looks the image manifest up over the OCI distribution API
// instead of the host's package API.
type manifestChecker struct {
	target   catalog.Target
	insecure bool
	image    func(catalog.Entry) string
	keychain authn.Keychain
	timeout  time.Duration
}

func newManifestChecker(
	target catalog.Target,
	host string,
	insecure bool,
	image func(catalog.Entry) string,
	token string,
	timeout time.Duration,
) *manifestChecker {
	return &manifestChecker{
		target:   target,
		insecure: insecure,
		image:    image,
		keychain: NewTokenKeychain(host, token),
		timeout:  timeout,
	}
}

func (c *manifestChecker) Check(ctx context.Context, e catalog.Entry) Result {
	image := c.image(e)

	var opts []name.Option
	if c.insecure {
		opts = append(opts, name.Insecure)
	}
	ref, err := name.ParseReference(image, opts...)
	if err != nil {
		return missing(e, c.target, image, ReasonMalformed)
	}
	u := manifestURL(ref)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	_, err = remote.Head(ref,
		remote.WithContext(ctx),
		remote.WithUserAgent(userAgent),
		remote.WithAuthFromKeychain(c.keychain),
	)
	if err != nil {
		return missing(e, c.target, u, classify(err))
	}
	return found(e, c.target, u)
}

func manifestURL(ref name.Reference) string {
	repo := ref.Context()
	return fmt.Sprintf("%s://%s/v2/%s/manifests/%s",
		repo.Scheme(), repo.RegistryStr(), repo.RepositoryStr(), ref.Identifier())
}

type tokenKeychain struct {
	host  string
	token string
}

// NewTokenKeychain returns a keychain presenting token to host only. Other
// registries are accessed anonymously.
func NewTokenKeychain(host, token string) authn.Keychain {
	return tokenKeychain{host: host, token: token}
}

func (k tokenKeychain) Resolve(r authn.Resource) (authn.Authenticator, error) {
	if k.token == "" || !strings.EqualFold(r.RegistryStr(), k.host) {
		return authn.Anonymous, nil
	}
	return &authn.Basic{Username: userAgent, Password: k.token}, nil
}
