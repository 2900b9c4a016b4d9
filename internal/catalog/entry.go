// Package catalog holds the list of artifacts the publish sweep verifies and
// the rule deciding which registries each artifact is expected in.
package catalog

import (
	"fmt"
	"strings"
)

// Kind classifies an artifact by what the build produces for it.
type Kind int

const (
	// Service projects ship a container image and a jar.
	Service Kind = iota + 1
	// Library sub-projects ship a jar only.
	Library
	// Special projects ship jars and, for some of them, an NPM package.
	Special
)

var kindNames = map[Kind]string{
	Service: "service",
	Library: "library",
	Special: "special",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("unknown artifact kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so catalog files can
// spell kinds as plain strings.
func (k *Kind) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for kind, name := range kindNames {
		if name == s {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown artifact kind %q", string(text))
}

// Entry is one artifact of the catalog.
type Entry struct {
	Name string `yaml:"name" toml:"name" json:"name"`
	Kind Kind   `yaml:"kind" toml:"kind" json:"kind"`
	// NPM marks a Special entry that is also published to the NPM registry.
	NPM bool `yaml:"npm,omitempty" toml:"npm,omitempty" json:"npm,omitempty"`
}

// Target is a registry the artifact is expected to be published to.
type Target int

const (
	GiteaContainer Target = iota + 1
	GithubContainer
	ReposiliteJar
	GithubJar
	Npm
)

// AllTargets lists every target in report column order.
var AllTargets = []Target{GiteaContainer, GithubContainer, ReposiliteJar, GithubJar, Npm}

func (t Target) String() string {
	switch t {
	case GiteaContainer:
		return "gitea-container"
	case GithubContainer:
		return "github-container"
	case ReposiliteJar:
		return "reposilite-jar"
	case GithubJar:
		return "github-jar"
	case Npm:
		return "npm"
	}
	return fmt.Sprintf("target(%d)", int(t))
}

// Label is the column heading used in reports.
func (t Target) Label() string {
	switch t {
	case GiteaContainer:
		return "Gitea Container"
	case GithubContainer:
		return "GitHub Container"
	case ReposiliteJar:
		return "Reposilite JAR"
	case GithubJar:
		return "GitHub JAR"
	case Npm:
		return "NPM"
	}
	return t.String()
}
