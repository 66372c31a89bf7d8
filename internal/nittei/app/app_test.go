package app

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aussiebroadwan/nittei/pkg/nitteisdk"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()

	cfg := DefaultConfig()
	cfg.AdminSecret = "app-admin-secret"
	cfg.SiteURL = "https://nittei.example"
	cfg.DatabaseFile = filepath.Join(t.TempDir(), "nittei.db")
	cfg.LogLevel = "error"
	return cfg
}

func TestApplicationServesAPI(t *testing.T) {
	application, err := New(testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Shutdown() })

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)

	ctx := context.Background()
	client := nitteisdk.NewSDKClient(srv.URL)

	ready, err := client.GetReadiness(ctx)
	require.NoError(t, err)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)

	created, err := client.CreateEvent(ctx, nitteisdk.Credentials{AdminKey: "app-admin-secret"}, nitteisdk.CreateEventRequest{
		Title:       "Quarterly planning",
		DurationMin: 60,
		Slots: []nitteisdk.SlotRange{
			{StartAt: "2030-06-01T09:00:00Z", EndAt: "2030-06-01T10:00:00Z"},
		},
		Participants: []nitteisdk.ParticipantRequest{{Name: "Dee"}},
	})
	require.NoError(t, err)
	require.Equal(t, "Asia/Tokyo", created.Event.Timezone)
	require.Len(t, created.Invites, 1)
	require.True(t, strings.HasPrefix(created.Invites[0].URL, "https://nittei.example/event/"+created.Event.ID+"?t="))

	// Public creation is off, so anonymous callers are refused.
	_, err = client.CreateEvent(ctx, nitteisdk.Credentials{}, nitteisdk.CreateEventRequest{Title: "x"})
	require.True(t, nitteisdk.IsCode(err, nitteisdk.ErrorCodeUnauthorized))
}

func TestOpenStoreRejectsUnknownDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.DatabaseDriver = "mysql"

	_, err := OpenStore(cfg, NewLogger(cfg, "test"))
	require.ErrorContains(t, err, "unknown database driver")
}
