package registry

import (
	"github.com/google/go-containerregistry/pkg/v1/remote/transport"

	"github.com/harness/pubcheck/internal/catalog"
	"github.com/harness/pubcheck/util/common/errors"
)

// Reason tags why a check came back negative. It is diagnostic only: the
// report renders Exists.
type Reason string

const (
	ReasonNone         Reason = ""
	ReasonNoCredential Reason = "no-credential"
	ReasonNetwork      Reason = "network"
	ReasonUnauthorized Reason = "unauthorized"
	ReasonNotFound     Reason = "not-found"
	ReasonStatus       Reason = "unexpected-status"
	ReasonMalformed    Reason = "malformed"
)

// Result is the outcome of one existence check.
type Result struct {
	Artifact catalog.Entry
	Target   catalog.Target
	URL      string
	Exists   bool
	Reason   Reason
}

func found(e catalog.Entry, t catalog.Target, url string) Result {
	return Result{Artifact: e, Target: t, URL: url, Exists: true}
}

func missing(e catalog.Entry, t catalog.Target, url string, reason Reason) Result {
	return Result{Artifact: e, Target: t, URL: url, Reason: reason}
}

// classify maps a checker error onto a Reason.
func classify(err error) Reason {
	if err == nil {
		return ReasonNone
	}

	var terr *transport.Error
	if errors.As(err, &terr) {
		switch terr.StatusCode {
		case 401, 403:
			return ReasonUnauthorized
		case 404:
			return ReasonNotFound
		case 0:
			return ReasonNetwork
		}
		return ReasonStatus
	}

	var serr *errors.StatusError
	switch {
	case errors.Is(err, errors.ErrNoCredential):
		return ReasonNoCredential
	case errors.Is(err, errors.ErrUnauthorized):
		return ReasonUnauthorized
	case errors.Is(err, errors.ErrNotFound):
		return ReasonNotFound
	case errors.Is(err, errors.ErrMalformed):
		return ReasonMalformed
	case errors.As(err, &serr):
		return ReasonStatus
	}

	// Anything left failed in transport, including an expired deadline.
	return ReasonNetwork
}
