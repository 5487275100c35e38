package jira

import "net/http"

// basicAuthTransport attaches HTTP Basic credentials to every outgoing request.
type basicAuthTransport struct {
	user   string
	secret string
	base   http.RoundTripper
}

func newBasicAuthTransport(user, secret string, base http.RoundTripper) *basicAuthTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &basicAuthTransport{user: user, secret: secret, base: base}
}

// RoundTrip implements http.RoundTripper.
// The original request is not modified.
func (t *basicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	authReq := req.Clone(req.Context())
	authReq.SetBasicAuth(t.user, t.secret)
	return t.base.RoundTrip(authReq)
}
