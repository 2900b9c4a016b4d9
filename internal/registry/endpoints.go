package registry

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/harness/pubcheck/config"
	"github.com/harness/pubcheck/internal/catalog"
)

// endpoints builds target URLs from the sweep settings.
type endpoints struct {
	giteaURL      string
	giteaOwner    string
	giteaHost     string
	giteaInsecure bool

	githubAPI       string
	githubHost      string
	githubOwner     string
	githubOwnerType string

	reposiliteURL  string
	reposiliteRepo string
	mavenGroup     string

	npmRegistry string
	npmScope    string

	tag string
}

func newEndpoints(cfg config.VerifyConfig) endpoints {
	ep := endpoints{
		giteaURL:        strings.TrimSuffix(cfg.GiteaURL, "/"),
		giteaOwner:      cfg.GiteaOwner,
		githubAPI:       strings.TrimSuffix(cfg.GithubAPIURL, "/"),
		githubHost:      cfg.GithubContainerHost,
		githubOwner:     cfg.GithubOwner,
		githubOwnerType: cfg.GithubOwnerType,
		reposiliteURL:   strings.TrimSuffix(cfg.ReposiliteURL, "/"),
		reposiliteRepo:  strings.Trim(cfg.ReposiliteRepository, "/"),
		mavenGroup:      cfg.MavenGroup,
		npmRegistry:     strings.TrimSuffix(cfg.NpmRegistry, "/"),
		npmScope:        strings.TrimPrefix(cfg.NpmScope, "@"),
		tag:             cfg.ContainerTag,
	}
	if ep.githubOwnerType == "" {
		ep.githubOwnerType = "users"
	}
	if ep.tag == "" {
		ep.tag = config.DefaultContainerTag
	}
	if u, err := url.Parse(ep.giteaURL); err == nil {
		ep.giteaHost = u.Host
		ep.giteaInsecure = u.Scheme == "http"
	}
	return ep
}

func (ep endpoints) giteaContainer(e catalog.Entry) string {
	return fmt.Sprintf("%s/api/v1/packages/%s/container/%s",
		ep.giteaURL, url.PathEscape(ep.giteaOwner), url.PathEscape(e.Name))
}

func (ep endpoints) githubContainer(e catalog.Entry) string {
	return fmt.Sprintf("%s/%s/%s/packages/container/%s",
		ep.githubAPI, ep.githubOwnerType, url.PathEscape(ep.githubOwner), url.PathEscape(e.Name))
}

func (ep endpoints) reposiliteJar(e catalog.Entry) string {
	group := strings.ReplaceAll(ep.mavenGroup, ".", "/")
	return fmt.Sprintf("%s/%s/%s/%s/maven-metadata.xml",
		ep.reposiliteURL, ep.reposiliteRepo, group, url.PathEscape(e.Name))
}

func (ep endpoints) githubJar(e catalog.Entry) string {
	pkg := e.Name
	if ep.mavenGroup != "" {
		pkg = ep.mavenGroup + "." + e.Name
	}
	return fmt.Sprintf("%s/%s/%s/packages/maven/%s",
		ep.githubAPI, ep.githubOwnerType, url.PathEscape(ep.githubOwner), url.PathEscape(pkg))
}

func (ep endpoints) npmPackage(e catalog.Entry) string {
	if ep.npmScope == "" {
		return e.Name
	}
	return "@" + ep.npmScope + "/" + e.Name
}

func (ep endpoints) npm(e catalog.Entry) string {
	return ep.npmRegistry + "/" + url.PathEscape(ep.npmPackage(e))
}

// giteaImage and githubImage are image references for the manifest probe;
// repository names are lowercased as registries require.
func (ep endpoints) giteaImage(e catalog.Entry) string {
	return fmt.Sprintf("%s/%s:%s", ep.giteaHost, strings.ToLower(ep.giteaOwner+"/"+e.Name), ep.tag)
}

func (ep endpoints) githubImage(e catalog.Entry) string {
	return fmt.Sprintf("%s/%s:%s", ep.githubHost, strings.ToLower(ep.githubOwner+"/"+e.Name), ep.tag)
}
