package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Vovarama1992/bestelerim/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func Test_Load_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg, err := config.Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "main", cfg.Branch)
	assert.Equal(t, "https://api.github.com", cfg.GitHubAPIURL)
	assert.Equal(t, "https://raw.githubusercontent.com", cfg.RawContentURL)
	assert.Equal(t, 30*time.Second, cfg.RemoteTimeout)
	assert.Equal(t, 100, cfg.StatsLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.NotEmpty(t, cfg.Repo)
	assert.False(t, cfg.EngagementEnabled())
}

func Test_Load_EnvOverrides(t *testing.T) {
	t.Setenv("MEDIA_REPO", "someone/tracks")
	t.Setenv("MEDIA_BRANCH", "master")
	t.Setenv("REMOTE_TIMEOUT", "5s")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/db")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	cfg, err := config.Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "someone/tracks", cfg.Repo)
	assert.Equal(t, "master", cfg.Branch)
	assert.Equal(t, 5*time.Second, cfg.RemoteTimeout)
	assert.True(t, cfg.EngagementEnabled())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func Test_Load_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("MEDIA_BRANCH=release\nSTATS_LIMIT=25\n"), 0o600))

	// godotenv does not override variables that are already set
	for _, k := range []string{"MEDIA_BRANCH", "STATS_LIMIT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	t.Cleanup(func() {
		os.Unsetenv("MEDIA_BRANCH")
		os.Unsetenv("STATS_LIMIT")
	})

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "release", cfg.Branch)
	assert.Equal(t, 25, cfg.StatsLimit)
}
