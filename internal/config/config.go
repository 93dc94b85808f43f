package config

import "github.com/caarlos0/env/v11"

type Config struct {
	GithubPAT  string `env:"GITHUB_PAT,required"`
	GhcrToken  string `env:"GHCR_TOKEN,required"`
	UpdateRepo string `env:"UPDATE_REPO" envDefault:"neboman11/argocd-definitions"`
	DryRun     bool   `env:"DRY_RUN" envDefault:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
