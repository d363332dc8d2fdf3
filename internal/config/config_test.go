package config

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"RUN_ADDRESS", "DATABASE_URL", "MIGRATIONS_DIR", "JWT_SECRET", "KEEPALIVE_URL", "KEEPALIVE_INTERVAL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	conf, err := load([]string{"-d", "postgres://localhost/dues", "-j", "secret"})
	require.NoError(t, err)
	assert.Equal(t, defaultRunAddress, conf.RunAddress)
	assert.Equal(t, defaultMigrationsDir, conf.MigrationsDir)
	assert.Equal(t, defaultKeepAliveInterval, conf.KeepAliveInterval)
	assert.Empty(t, conf.KeepAliveURL)
}

func TestLoadEnvWinsOverFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("RUN_ADDRESS", ":9000")
	t.Setenv("DATABASE_URL", "postgres://env/dues")
	t.Setenv("JWT_SECRET", "env secret")
	t.Setenv("KEEPALIVE_INTERVAL", "30s")

	conf, err := load([]string{"-a", ":7000", "-d", "postgres://flag/dues", "-i", "5m", "-k", "http://ping"})
	require.NoError(t, err)
	assert.Equal(t, ":9000", conf.RunAddress)
	assert.Equal(t, "postgres://env/dues", conf.DatabaseDSN)
	assert.Equal(t, "env secret", conf.JWTUserSecret)
	assert.Equal(t, 30*time.Second, conf.KeepAliveInterval)
	assert.Equal(t, "http://ping", conf.KeepAliveURL)
}

func TestLoadRequiredValues(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "no dsn", args: []string{"-j", "secret"}, wantErr: "database DSN is not set"},
		{name: "no secret", args: []string{"-d", "postgres://localhost/dues"}, wantErr: "JWT secret is not set"},
		{name: "unknown flag", args: []string{"-x"}, wantErr: "parse flags"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			_, err := load(tc.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestConfigStringHidesSecrets(t *testing.T) {
	conf := &Config{RunAddress: ":5000", DatabaseDSN: "postgres://user:pass@db/dues", JWTUserSecret: "top secret"}
	out := fmt.Sprintf("%+v", conf)
	assert.Contains(t, out, ":5000")
	assert.NotContains(t, out, "pass@db")
	assert.NotContains(t, out, "top secret")
}

func TestDefaultIfBlank(t *testing.T) {
	assert.Equal(t, "fallback", defaultIfBlank("", "fallback"))
	assert.Equal(t, "value", defaultIfBlank("value", "fallback"))
}
