package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/m3rciful/quizbot/bot"
	"github.com/m3rciful/quizbot/config"
	"github.com/m3rciful/quizbot/core/cmd"
)

func main() {
	// A missing .env is fine: configuration also comes from the YAML
	// file and the real environment.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	err := cmd.Run(cmd.Options{
		ConfigEnvVar:      "CONFIG_PATH",
		DefaultConfigPath: "config.yaml",
		LoadConfig: func(path string) (cmd.ConfigCarrier, error) {
			return config.Load(path)
		},
		Bootstrap: func(cfg cmd.ConfigCarrier) (cmd.TelegramApp, error) {
			return bot.NewApp(cfg.(*config.Config))
		},
	})
	if err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
