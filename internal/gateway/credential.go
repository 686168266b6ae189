package gateway

import (
	"errors"
	"strings"
)

// ErrEmptyCredential is returned when a workflow has no stored credential.
var ErrEmptyCredential = errors.New("stored credential is empty")

const (
	bearerPrefix = "Bearer "
	apiPrefix    = "api "
)

// NormalizeCredential canonicalizes a stored raw credential into the exact
// Authorization header value the upstream service expects. Users paste
// credentials in inconsistent forms (bare key, "api "-prefixed key, or a
// fully formed header value); the result always carries exactly one
// "Bearer " prefix, and normalizing twice is a no-op.
func NormalizeCredential(raw string) (string, error) {
	if raw == "" {
		return "", ErrEmptyCredential
	}

	token := strings.TrimPrefix(raw, apiPrefix)
	if strings.HasPrefix(token, bearerPrefix) {
		return token, nil
	}
	return bearerPrefix + token, nil
}
