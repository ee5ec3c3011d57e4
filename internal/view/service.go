// Package view opens editing sessions on the remote service and hands out
// the embeddable pad URL. Session lifetime is pluggable via Policy.
package view

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Greengage-project/interlinker-ceditor/internal/auth"
	"github.com/Greengage-project/interlinker-ceditor/internal/db/models"
	"github.com/Greengage-project/interlinker-ceditor/internal/etherpad"
)

// Session is the result of opening a view on an asset. The browser needs
// both: the URL to embed and the session id as a cookie for the editing
// service domain.
type Session struct {
	// URL is the embeddable pad URL.
	URL string
	// SessionID authorizes the browser for the pad's group.
	SessionID string
}

// Service opens editing sessions for assets.
type Service struct {
	pad    *etherpad.Client
	policy Policy
}

// NewService creates a new view service with the given session policy.
func NewService(pad *etherpad.Client, policy Policy) *Service {
	if pad == nil {
		panic("etherpad client cannot be nil")
	}

	if policy == nil {
		panic("policy cannot be nil")
	}

	return &Service{pad: pad, policy: policy}
}

// Open ensures the caller has an author on the editing service and opens a
// session for the asset's group. Every call creates a fresh session; the
// author mapping is idempotent per identity.
func (s *Service) Open(ctx context.Context, asset *models.Asset, identity auth.Identity) (*Session, error) {
	authorID, err := s.pad.CreateAuthorIfNotExistsFor(ctx, identity.Email, identity.Sub)
	if err != nil {
		return nil, err
	}

	validUntil := s.policy.ValidUntil(time.Now())

	sessionID, err := s.pad.CreateSession(ctx, asset.GroupID, authorID, validUntil)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("asset_id", asset.ID).
		Str("author_id", authorID).
		Int64("valid_until", validUntil).
		Msg("opened editing session")

	return &Session{
		URL:       s.pad.PadURL(asset.PadID),
		SessionID: sessionID,
	}, nil
}
