// Package config assembles the quizbot configuration from a YAML file
// with environment overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coreconfig "github.com/m3rciful/quizbot/core/config"
	"github.com/m3rciful/quizbot/core/database"
)

// QuizConfig holds the quiz-specific settings: the gated channel, its
// invite link shown on the subscription prompt, the psychologist contact
// offered on the result screen, and broadcast pacing.
type QuizConfig struct {
	ChannelID            string `yaml:"channel_id" envconfig:"CHANNEL_ID"`
	ChannelInviteLink    string `yaml:"channel_invite_link" envconfig:"CHANNEL_INVITE_LINK"`
	PsychologistUsername string `yaml:"psychologist_username" envconfig:"PSYCHOLOGIST_USERNAME"`
	BroadcastPacingMS    int    `yaml:"broadcast_pacing_ms" envconfig:"BROADCAST_PACING_MS"`
}

// Config aggregates core, database, and quiz settings.
type Config struct {
	Core     coreconfig.Config `yaml:",inline"`
	Database database.Config   `yaml:"database"`
	Quiz     QuizConfig        `yaml:"quiz"`
}

// CoreConfig exposes the embedded core configuration for the runner.
func (c *Config) CoreConfig() *coreconfig.Config {
	return &c.Core
}

// Load reads configuration from a YAML file and environment variables.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := coreconfig.Normalize(&cfg.Core); err != nil {
		return nil, err
	}
	if err := normalizeQuiz(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func normalizeQuiz(cfg *Config) error {
	if cfg.Core.Telegram.AdminID == 0 {
		return fmt.Errorf("telegram.admin_id is required")
	}

	cfg.Quiz.ChannelID = strings.TrimSpace(cfg.Quiz.ChannelID)
	if cfg.Quiz.ChannelID == "" {
		return fmt.Errorf("quiz.channel_id is required")
	}

	contact := strings.TrimSpace(cfg.Quiz.PsychologistUsername)
	if contact == "" {
		contact = "@psychologist"
	}
	if !strings.HasPrefix(contact, "@") {
		return fmt.Errorf("quiz.psychologist_username must start with @")
	}
	cfg.Quiz.PsychologistUsername = contact

	if cfg.Quiz.BroadcastPacingMS < 0 {
		return fmt.Errorf("quiz.broadcast_pacing_ms must be >= 0")
	}
	return nil
}
