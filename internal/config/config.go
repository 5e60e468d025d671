package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string `env:"PORT" env-default:"8080"`

	// Remote repository. Branch is an input, not an invariant: a wrong
	// value makes every generated URL 404.
	Repo          string        `env:"MEDIA_REPO" env-default:"bestelerim/sarkilar"`
	Branch        string        `env:"MEDIA_BRANCH" env-default:"main"`
	GitHubAPIURL  string        `env:"GITHUB_API_URL" env-default:"https://api.github.com"`
	RawContentURL string        `env:"RAW_CONTENT_URL" env-default:"https://raw.githubusercontent.com"`
	GitHubToken   string        `env:"GITHUB_TOKEN"`
	RemoteTimeout time.Duration `env:"REMOTE_TIMEOUT" env-default:"30s"`

	// Empty DatabaseURL disables plays, likes and stats.
	DatabaseURL string `env:"DATABASE_URL"`
	StatsLimit  int    `env:"STATS_LIMIT" env-default:"100"`

	CORSOrigins []string `env:"CORS_ORIGINS" env-separator:"," env-default:"*"`
}

// Load reads an optional .env file (values already in the environment win)
// and then the environment itself.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if cfg.Repo == "" {
		return nil, errors.New("MEDIA_REPO must not be empty")
	}
	return &cfg, nil
}

func (c *Config) EngagementEnabled() bool { return c.DatabaseURL != "" }
