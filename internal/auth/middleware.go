package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

const (
	// TokenCookie is the cookie carrying the raw ID token after login.
	TokenCookie = "token"

	identityLocalsKey = "auth.identity"
)

// Verifier verifies a raw ID token into a caller identity. *OIDCProvider
// implements it.
type Verifier interface {
	IdentityFromToken(ctx context.Context, rawToken string) (Identity, error)
}

// Middleware resolves the caller identity from a bearer token or the login
// cookie and stores it in the request locals. Requests without a verifiable
// token pass through without an identity; route handlers decide whether an
// anonymous caller is acceptable.
func Middleware(verifier Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if verifier == nil {
			return c.Next()
		}

		rawToken := tokenFromRequest(c)
		if rawToken == "" {
			return c.Next()
		}

		identity, err := verifier.IdentityFromToken(c.UserContext(), rawToken)
		if err != nil {
			log.Debug().Err(err).Msg("token verification failed")
			return c.Next()
		}

		c.Locals(identityLocalsKey, identity)

		return c.Next()
	}
}

// IdentityFrom returns the caller identity resolved by Middleware, if any.
func IdentityFrom(c *fiber.Ctx) (Identity, bool) {
	identity, ok := c.Locals(identityLocalsKey).(Identity)
	return identity, ok
}

func tokenFromRequest(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	return c.Cookies(TokenCookie)
}
