package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[server]
http_port = 9090

[logs]
level = "debug"

[store]
driver = "airtable"
timeout = 5

[airtable]
base_id = "appTest"
api_key = "from-file"

[booking]
hourly_rate = 20
timezone = "UTC"
cache_ttl = 15

[policy.public]
open_hour = 8
close_hour = 20
slot_minutes = 60

[policy.admin]
open_hour = 6
close_hour = 22
closed_weekday = "Sunday"
slot_minutes = 60

[admin]
password = "file-secret"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout, "defaults are kept for missing keys")
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "Bookings", cfg.Airtable.Table)
	assert.Equal(t, "https://api.airtable.com/v0", cfg.Airtable.URL)
	assert.Equal(t, 20.0, cfg.Booking.HourlyRate)
	assert.Equal(t, 15*time.Second, cfg.Booking.CacheTTLDuration())

	loc, err := cfg.Booking.Location()
	require.NoError(t, err)

	admin, err := cfg.Policy.Admin.ToDomain(loc)
	require.NoError(t, err)
	require.NotNil(t, admin.ClosedWeekday)
	assert.Equal(t, time.Sunday, *admin.ClosedWeekday)
	assert.Equal(t, time.Hour, admin.SlotGranularity)

	public, err := cfg.Policy.Public.ToDomain(loc)
	require.NoError(t, err)
	assert.Nil(t, public.ClosedWeekday)
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "env-secret")
	t.Setenv("AIRTABLE_API_KEY", "env-key")
	t.Setenv("AIRTABLE_TABLE_NAME", "Buchungen")

	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Admin.Password)
	assert.Equal(t, "env-key", cfg.Airtable.APIKey)
	assert.Equal(t, "Buchungen", cfg.Airtable.Table)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[server\nhttp_port = "))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := defaults()
		cfg.Airtable.BaseID = "appTest"
		cfg.Airtable.APIKey = "key"
		return cfg
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown driver", func(c *Config) { c.Store.Driver = "mongo" }},
		{"airtable without key", func(c *Config) { c.Airtable.APIKey = "" }},
		{"postgres without db name", func(c *Config) { c.Store.Driver = StoreDriverPostgres }},
		{"zero rate", func(c *Config) { c.Booking.HourlyRate = 0 }},
		{"bad timezone", func(c *Config) { c.Booking.Timezone = "Mars/Olympus" }},
		{"inverted policy", func(c *Config) { c.Policy.Public.OpenHour = 21 }},
		{"close after midnight", func(c *Config) { c.Policy.Admin.CloseHour = 25 }},
		{"bad weekday", func(c *Config) { c.Policy.Admin.ClosedWeekday = "Sonntag" }},
		{"bad block key", func(c *Config) { c.Admin.SessionBlockKey = "short" }},
		{"payments without key", func(c *Config) { c.Payments.Enabled = true }},
		{"notifications without sender", func(c *Config) {
			c.Notifications.Enabled = true
			c.Notifications.APIKey = "SG.x"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "lift", Password: "pw", DBName: "lift", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=lift password=pw dbname=lift sslmode=disable", d.DSN())
}
