package view

import (
	"time"

	"github.com/Greengage-project/interlinker-ceditor/internal/config"
)

const (
	// DefaultTTL is the sliding session lifetime when none is configured.
	DefaultTTL = 5 * time.Hour

	// DefaultFixedDeadline is the unix timestamp used by the fixed policy
	// when no deadline is configured (2034-01-28).
	DefaultFixedDeadline int64 = 2022201246
)

// Policy decides how long a newly opened editing session stays valid.
type Policy interface {
	// ValidUntil returns the session expiry as a unix timestamp.
	ValidUntil(now time.Time) int64
}

// SlidingPolicy expires sessions a fixed duration after they are opened.
// Every new view pushes the expiry forward.
type SlidingPolicy struct {
	TTL time.Duration
}

// ValidUntil implements Policy.
func (p SlidingPolicy) ValidUntil(now time.Time) int64 {
	ttl := p.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return now.Add(ttl).Unix()
}

// FixedPolicy expires all sessions at one absolute deadline regardless of
// when they are opened.
type FixedPolicy struct {
	Deadline int64
}

// ValidUntil implements Policy.
func (p FixedPolicy) ValidUntil(time.Time) int64 {
	if p.Deadline == 0 {
		return DefaultFixedDeadline
	}

	return p.Deadline
}

// PolicyFromConfig builds the session policy for the given configuration.
// Unknown policy names fall back to the sliding policy.
func PolicyFromConfig(cfg config.Session) Policy {
	if cfg.Policy == config.SessionPolicyFixed {
		return FixedPolicy{Deadline: cfg.FixedDeadline}
	}

	return SlidingPolicy{TTL: time.Duration(cfg.TTL) * time.Second}
}
