// Package auth resolves the caller identity for incoming requests. Identity
// comes from an OIDC ID token when a provider is configured; callers without
// a verifiable token can fall back to a shared anonymous identity.
package auth

// AnonymousSub is the subject used for callers without a verified identity.
// All anonymous callers share one author on the editing service.
const AnonymousSub = "AnonymousUser"

// Identity describes the authenticated caller.
type Identity struct {
	// Sub is the stable subject identifier from the ID token.
	Sub string
	// Email is the caller's email address.
	Email string
}

// Anonymous returns the shared anonymous identity.
func Anonymous() Identity {
	return Identity{Sub: AnonymousSub, Email: "anonymous"}
}

// IsAnonymous reports whether the identity is the shared anonymous one.
func (i Identity) IsAnonymous() bool {
	return i.Sub == AnonymousSub || i.Sub == ""
}
