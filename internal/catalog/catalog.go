package catalog

import (
	"fmt"

	"github.com/harness/pubcheck/util/common/errors"
)

// Catalog is an ordered list of artifacts. Order is significant: reports
// list rows in catalog order.
type Catalog []Entry

// Default returns the built-in catalog of the monorepo.
func Default() Catalog {
	return Catalog{
		{Name: "api-gateway", Kind: Service},
		{Name: "user-service", Kind: Service},
		{Name: "order-service", Kind: Service},
		{Name: "inventory-service", Kind: Service},
		{Name: "payment-service", Kind: Service},
		{Name: "notification-service", Kind: Service},

		{Name: "common-grpc", Kind: Library},
		{Name: "common-kafka", Kind: Library},
		{Name: "common-observability", Kind: Library},
		{Name: "common-testing", Kind: Library},

		{Name: "stubs", Kind: Special, NPM: true},
		{Name: "proto", Kind: Special},
		{Name: "bom", Kind: Special},
	}
}

// Targets returns the registries e must be published to, in report column
// order.
func Targets(e Entry) []Target {
	switch e.Kind {
	case Service:
		return []Target{GiteaContainer, GithubContainer, ReposiliteJar, GithubJar}
	case Library:
		return []Target{ReposiliteJar, GithubJar}
	case Special:
		if e.NPM {
			return []Target{ReposiliteJar, GithubJar, Npm}
		}
		return []Target{ReposiliteJar, GithubJar}
	}
	return nil
}

// CheckCount is the number of checks a full sweep over c performs.
func (c Catalog) CheckCount() int {
	n := 0
	for _, e := range c {
		n += len(Targets(e))
	}
	return n
}

// OfKind returns the entries of kind k, preserving order.
func (c Catalog) OfKind(k Kind) Catalog {
	var out Catalog
	for _, e := range c {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

// Validate reports the first malformed entry.
func (c Catalog) Validate() error {
	seen := make(map[string]bool, len(c))
	for i, e := range c {
		field := fmt.Sprintf("artifacts[%d]", i)
		if e.Name == "" {
			return errors.NewValidationError(field, "name cannot be empty")
		}
		if !e.Kind.Valid() {
			return errors.NewValidationError(field, fmt.Sprintf("unknown kind for %s", e.Name))
		}
		if e.NPM && e.Kind != Special {
			return errors.NewValidationError(field, fmt.Sprintf("%s: npm is only allowed on special artifacts", e.Name))
		}
		if seen[e.Name] {
			return errors.NewValidationError(field, fmt.Sprintf("duplicate artifact %s", e.Name))
		}
		seen[e.Name] = true
	}
	return nil
}
