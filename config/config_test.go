package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DATABASE_PATH", "HTTP_ADDR", "TIMEZONE", "DIGEST_TIME", "DEAL_REMINDER_TIME",
		"TELEGRAM_BOT_TOKEN", "CALDAV_URL", "CALDAV_USERNAME", "CALDAV_PASSWORD",
		"CALDAV_CALENDAR_ID", "CALDAV_FAMILY_ID",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "./data/familyplanner.db", cfg.DatabasePath)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "Europe/Berlin", cfg.Timezone.String())
	assert.Equal(t, "07:30", cfg.DigestTime)
	assert.Equal(t, "17:00", cfg.DealReminderTime)
	assert.Equal(t, int64(1), cfg.CalDAVFamilyID)
	assert.False(t, cfg.HasTelegram())
	assert.False(t, cfg.HasCalDAV())
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_PATH", "/tmp/test.db")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("DIGEST_TIME", "06:00")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("CALDAV_URL", "https://dav.example.org")
	t.Setenv("CALDAV_USERNAME", "familie")
	t.Setenv("CALDAV_PASSWORD", "geheim")
	t.Setenv("CALDAV_FAMILY_ID", "7")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test.db", cfg.DatabasePath)
	assert.Equal(t, "UTC", cfg.Timezone.String())
	assert.Equal(t, "06:00", cfg.DigestTime)
	assert.Equal(t, int64(7), cfg.CalDAVFamilyID)
	assert.True(t, cfg.HasTelegram())
	assert.True(t, cfg.HasCalDAV())
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("TIMEZONE", "Mars/Olympus")
	_, err := Load()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("CALDAV_FAMILY_ID", "sieben")
	_, err = Load()
	assert.Error(t, err)
}
