package view_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Greengage-project/interlinker-ceditor/internal/auth"
	"github.com/Greengage-project/interlinker-ceditor/internal/config"
	"github.com/Greengage-project/interlinker-ceditor/internal/db/models"
	"github.com/Greengage-project/interlinker-ceditor/internal/etherpad"
	"github.com/Greengage-project/interlinker-ceditor/internal/etherpad/etherpadtest"
	"github.com/Greengage-project/interlinker-ceditor/internal/view"
)

func newViewService(t *testing.T, policy view.Policy) (*view.Service, *etherpadtest.Server) {
	t.Helper()

	fake := etherpadtest.New()
	t.Cleanup(fake.Close)

	client := etherpad.New(etherpad.Config{
		APIURL:    fake.URL,
		PublicURL: "https://pad.example.com",
		APIKey:    "testkey",
	})

	return view.NewService(client, policy), fake
}

func testAsset() *models.Asset {
	return &models.Asset{
		ID:      "a1b2c3",
		Name:    "Meeting Notes",
		GroupID: "g.abcdefghij",
		PadID:   "g.abcdefghij$Meeting Notes",
	}
}

func TestOpenSlidingPolicy(t *testing.T) {
	svc, fake := newViewService(t, view.SlidingPolicy{TTL: 5 * time.Hour})

	before := time.Now().Add(5 * time.Hour).Unix()

	session, err := svc.Open(context.Background(), testAsset(), auth.Identity{
		Sub:   "user-1",
		Email: "ada@example.com",
	})
	require.NoError(t, err)

	after := time.Now().Add(5 * time.Hour).Unix()

	assert.Equal(t, "https://pad.example.com/p/g.abcdefghij$Meeting%20Notes", session.URL)
	assert.NotEmpty(t, session.SessionID)

	require.Len(t, fake.Sessions, 1)
	assert.Equal(t, "g.abcdefghij", fake.Sessions[0].GroupID)
	assert.Equal(t, "a.user-1", fake.Sessions[0].AuthorID)
	assert.GreaterOrEqual(t, fake.Sessions[0].ValidUntil, before)
	assert.LessOrEqual(t, fake.Sessions[0].ValidUntil, after)
}

func TestOpenFixedPolicy(t *testing.T) {
	svc, fake := newViewService(t, view.FixedPolicy{})

	_, err := svc.Open(context.Background(), testAsset(), auth.Anonymous())
	require.NoError(t, err)

	require.Len(t, fake.Sessions, 1)
	assert.Equal(t, view.DefaultFixedDeadline, fake.Sessions[0].ValidUntil)

	// all anonymous callers share one author
	assert.Equal(t, "a.AnonymousUser", fake.Sessions[0].AuthorID)
}

func TestOpenEachViewCreatesFreshSession(t *testing.T) {
	svc, fake := newViewService(t, view.SlidingPolicy{})

	first, err := svc.Open(context.Background(), testAsset(), auth.Anonymous())
	require.NoError(t, err)

	second, err := svc.Open(context.Background(), testAsset(), auth.Anonymous())
	require.NoError(t, err)

	assert.NotEqual(t, first.SessionID, second.SessionID)
	assert.Len(t, fake.Sessions, 2)

	// the author mapping stays idempotent across views
	assert.Len(t, fake.Authors, 1)
}

func TestOpenUpstreamFailure(t *testing.T) {
	svc, fake := newViewService(t, view.SlidingPolicy{})
	fake.FailFunction = "createSession"

	_, err := svc.Open(context.Background(), testAsset(), auth.Anonymous())
	require.Error(t, err)
	assert.True(t, etherpad.IsAPIError(err))
}

func TestPolicyFromConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Session
		want int64
	}{
		{
			name: "fixed policy with deadline",
			cfg:  config.Session{Policy: config.SessionPolicyFixed, FixedDeadline: 1700000000},
			want: 1700000000,
		},
		{
			name: "fixed policy default deadline",
			cfg:  config.Session{Policy: config.SessionPolicyFixed},
			want: view.DefaultFixedDeadline,
		},
		{
			name: "sliding policy",
			cfg:  config.Session{Policy: config.SessionPolicySliding, TTL: 3600},
			want: time.Unix(0, 0).Add(time.Hour).Unix(),
		},
		{
			name: "unknown policy falls back to sliding default",
			cfg:  config.Session{Policy: "bogus"},
			want: time.Unix(0, 0).Add(view.DefaultTTL).Unix(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := view.PolicyFromConfig(tt.cfg)
			assert.Equal(t, tt.want, policy.ValidUntil(time.Unix(0, 0)))
		})
	}
}
