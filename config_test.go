package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		port:           8080,
		sessionTimeout: time.Hour,
		store:          storeMemory,
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"tls pair", func(c *Config) { c.tlsCert, c.tlsKey = "cert.pem", "key.pem" }, ""},
		{"cert without key", func(c *Config) { c.tlsCert = "cert.pem" }, "--tls-cert and --tls-key"},
		{"key without cert", func(c *Config) { c.tlsKey = "key.pem" }, "--tls-cert and --tls-key"},
		{"port zero", func(c *Config) { c.port = 0 }, "invalid port"},
		{"port too large", func(c *Config) { c.port = 70000 }, "invalid port"},
		{"zero session timeout", func(c *Config) { c.sessionTimeout = 0 }, "invalid session timeout"},
		{"unknown store", func(c *Config) { c.store = "etcd" }, "invalid store"},
		{"redis without url", func(c *Config) { c.store = storeRedis }, "--redis-url"},
		{"redis with url", func(c *Config) { c.store, c.redisURL = storeRedis, "redis://localhost:6379/0" }, ""},
		{"postgres without url", func(c *Config) { c.store = storePostgres }, "--database-url"},
		{"postgres with url", func(c *Config) { c.store, c.databaseURL = storePostgres, "postgres://localhost/codenames" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigScheme(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, "http", cfg.scheme())

	cfg.tlsCert, cfg.tlsKey = "cert.pem", "key.pem"
	assert.Equal(t, "https", cfg.scheme())
}

func TestNewCmdDefaults(t *testing.T) {
	cfg := &Config{}
	newCmd(cfg)

	assert.Equal(t, "0.0.0.0", cfg.bind)
	assert.Equal(t, 8080, cfg.port)
	assert.Equal(t, storeMemory, cfg.store)
	assert.Equal(t, time.Hour, cfg.sessionTimeout)
	assert.False(t, cfg.insecure)
	assert.NoError(t, cfg.validate())
}

func TestNewCmdEnvironment(t *testing.T) {
	t.Setenv("CODENAMES_PORT", "9090")
	t.Setenv("CODENAMES_STORE", "redis")
	t.Setenv("CODENAMES_REDIS_URL", "redis://cache:6379/1")
	t.Setenv("CODENAMES_SESSION_TIMEOUT", "15m")
	t.Setenv("CODENAMES_INSECURE", "true")

	cfg := &Config{}
	newCmd(cfg)

	assert.Equal(t, 9090, cfg.port)
	assert.Equal(t, storeRedis, cfg.store)
	assert.Equal(t, "redis://cache:6379/1", cfg.redisURL)
	assert.Equal(t, 15*time.Minute, cfg.sessionTimeout)
	assert.True(t, cfg.insecure)
}

func TestNewCmdFlags(t *testing.T) {
	t.Setenv("CODENAMES_PORT", "9090")

	cfg := &Config{}
	cmd := newCmd(cfg)
	require.NoError(t, cmd.ParseFlags([]string{"--port", "7000", "--session_timeout", "5m", "-v"}))

	assert.Equal(t, 7000, cfg.port, "flags override the environment")
	assert.Equal(t, 5*time.Minute, cfg.sessionTimeout)
	assert.True(t, cfg.verbose)
}
