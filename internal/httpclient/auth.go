package httpclient

import (
	"fmt"
	"net/http"
)

// NewBearerAuthorizer returns a modifier adding a bearer token header.
// An empty token yields a modifier that leaves the request untouched.
func NewBearerAuthorizer(token string) Modifier {
	return &bearerAuthorizer{token: token}
}

type bearerAuthorizer struct {
	token string
}

func (a *bearerAuthorizer) Modify(req *http.Request) error {
	if a.token == "" {
		return nil
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", a.token))
	return nil
}

// WithHeader returns a modifier setting a single header.
func WithHeader(key, value string) Modifier {
	return ModifierFunc(func(req *http.Request) error {
		req.Header.Set(key, value)
		return nil
	})
}
