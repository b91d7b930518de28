package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/meghashyamc/dreamgolf/config"
	"github.com/meghashyamc/dreamgolf/game"
	"github.com/meghashyamc/dreamgolf/logger"
)

func main() {
	env := pflag.String("env", "", "config environment, reads config/config.<env>.yaml")
	configFile := pflag.String("config", "", "explicit config file, overrides --env")
	pflag.Parse()

	cfg, err := loadConfig(*env, *configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}

	log := logger.NewWithLevel(cfg.GetLogLevel())
	g, err := game.NewGame(cfg, log)
	if err != nil {
		log.Error("failed to create game", "err", err.Error())
		os.Exit(1)
	}
	cfg.Watch(g.RequestReload)

	if err := g.Run(); err != nil {
		slog.Error("error running game", "err", err)
		os.Exit(1)
	}
}

func loadConfig(env, file string) (*config.Config, error) {
	if len(file) > 0 {
		return config.LoadFile(file)
	}
	return config.Load(env)
}
