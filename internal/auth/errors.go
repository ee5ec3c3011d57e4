package auth

import (
	"errors"
)

var (
	// ErrOIDCDisabled is returned when OIDC is disabled via configuration.
	ErrOIDCDisabled = errors.New("oidc authentication is disabled")

	// ErrNoIDToken is returned when the token exchange response carries no ID token.
	ErrNoIDToken = errors.New("no id_token in token response")
)
