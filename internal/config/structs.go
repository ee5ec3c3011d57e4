package config

import (
	"github.com/Greengage-project/interlinker-ceditor/internal/logger"
)

// Variant names for the two shipped backends.
const (
	// VariantCeditor is the full collaborative editor backend.
	VariantCeditor = "ceditor"
	// VariantWrapper is the legacy wrapper backend (routes under /api/v1).
	VariantWrapper = "wrapper"
)

// Session policy names.
const (
	// SessionPolicySliding expires sessions a TTL after each view.
	SessionPolicySliding = "sliding"
	// SessionPolicyFixed expires all sessions at one absolute deadline.
	SessionPolicyFixed = "fixed"
)

// Session settings control the expiry of editing sessions opened on the
// remote service.
type Session struct {
	// Policy selects the expiry policy: "sliding" (now + TTL) or "fixed"
	// (hard deadline). Empty selects the variant default.
	Policy string
	// TTL is the session lifetime in seconds under the sliding policy.
	TTL int
	// FixedDeadline is the unix timestamp used by the fixed policy.
	FixedDeadline int64
}

// Etherpad holds the connection settings for the external editing service.
type Etherpad struct {
	// APIURL is the base URL of the HTTP API (e.g. "http://etherpad:9001").
	APIURL string
	// PublicURL is the browser-facing base URL used to build iframe URLs.
	// Defaults to APIURL.
	PublicURL string
	// APIKey authenticates every API call.
	APIKey string
	// Timeout bounds a single API call, in seconds.
	Timeout int
}

// OIDC holds the OpenID Connect settings for resolving user identities.
type OIDC struct {
	Enabled      bool
	ProviderURL  string
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// Auth groups the authentication collaborator settings.
type Auth struct {
	OIDC OIDC
}

// Config overall data structure.
type Config struct {
	DevMode   bool   // enable dev mode for development
	Variant   string // which backend to serve, set by the command
	Title     string
	DB        DB
	Log       logger.Log
	Webserver Webserver
	Etherpad  Etherpad
	Auth      Auth
	Session   Session
}

// Webserver implement webserver settings.
type Webserver struct {
	Domain       string // domain name for the webserver
	Port         int    // listening port for the webserver
	ShutDownTime int    // wait time for shutdown
	URL          string // base url for the webserver
}
