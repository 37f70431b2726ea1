package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/at-ishikawa/yesno/internal/answer"
	"github.com/at-ishikawa/yesno/internal/config"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Display.NoColor {
		color.NoColor = true
	}
	return cfg, nil
}

func newAnswerClient(cfg *config.Config) *answer.HTTPClient {
	return answer.NewHTTPClient(cfg.API.Endpoint, cfg.API.UserAgent)
}
