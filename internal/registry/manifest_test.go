package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-containerregistry/pkg/authn"
	"github.com/google/go-containerregistry/pkg/name"
	ggcrregistry "github.com/google/go-containerregistry/pkg/registry"
	"github.com/google/go-containerregistry/pkg/v1/random"
	"github.com/google/go-containerregistry/pkg/v1/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harness/pubcheck/config"
	"github.com/harness/pubcheck/internal/catalog"
)

func pushRandomImage(t *testing.T, ref string) {
	t.Helper()
	img, err := random.Image(256, 1)
	require.NoError(t, err)
	r, err := name.ParseReference(ref, name.Insecure)
	require.NoError(t, err)
	require.NoError(t, remote.Write(r, img))
}

func TestManifestProbe(t *testing.T) {
	srv := httptest.NewServer(ggcrregistry.New())
	defer srv.Close()
	host := strings.TrimPrefix(srv.URL, "http://")

	pushRandomImage(t, host+"/team/alpha:latest")

	cfg := testConfig("http://unused.invalid")
	cfg.GiteaURL = srv.URL
	cfg.ContainerProbe = config.ProbeManifest

	r := New(cfg, config.Credentials{Gitea: "token"})

	res := r.Check(context.Background(), alpha, catalog.GiteaContainer)
	assert.True(t, res.Exists)
	assert.Equal(t, "http://"+host+"/v2/team/alpha/manifests/latest", res.URL)

	beta := catalog.Entry{Name: "beta", Kind: catalog.Service}
	res = r.Check(context.Background(), beta, catalog.GiteaContainer)
	assert.False(t, res.Exists)
	assert.Equal(t, ReasonNotFound, res.Reason)
}

func TestManifestProbeUnauthorized(t *testing.T) {
	inner := ggcrregistry.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, pass, ok := r.BasicAuth(); !ok || pass != "right" {
			w.Header().Set("WWW-Authenticate", `Basic realm="test"`)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		inner.ServeHTTP(w, r)
	}))
	defer srv.Close()

	cfg := testConfig("http://unused.invalid")
	cfg.GiteaURL = srv.URL
	cfg.ContainerProbe = config.ProbeManifest

	res := New(cfg, config.Credentials{Gitea: "wrong"}).Check(context.Background(), alpha, catalog.GiteaContainer)
	assert.False(t, res.Exists)
	assert.Equal(t, ReasonUnauthorized, res.Reason)
}

func TestManifestProbeBadReference(t *testing.T) {
	cfg := testConfig("http://h.invalid")
	cfg.ContainerTag = "not a tag"
	cfg.ContainerProbe = config.ProbeManifest

	res := New(cfg, config.Credentials{}).Check(context.Background(), alpha, catalog.GiteaContainer)
	assert.False(t, res.Exists)
	assert.Equal(t, ReasonMalformed, res.Reason)
}

type fakeResource string

func (r fakeResource) String() string      { return string(r) }
func (r fakeResource) RegistryStr() string { return string(r) }

func TestTokenKeychain(t *testing.T) {
	kc := NewTokenKeychain("ghcr.io", "pat")

	auth, err := kc.Resolve(fakeResource("GHCR.io"))
	require.NoError(t, err)
	cfg, err := auth.Authorization()
	require.NoError(t, err)
	assert.Equal(t, "pat", cfg.Password)

	auth, err = kc.Resolve(fakeResource("docker.io"))
	require.NoError(t, err)
	assert.Equal(t, authn.Anonymous, auth)

	auth, err = NewTokenKeychain("ghcr.io", "").Resolve(fakeResource("ghcr.io"))
	require.NoError(t, err)
	assert.Equal(t, authn.Anonymous, auth)
}
