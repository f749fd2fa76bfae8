package main

import (
	"chrono/config"
	"chrono/shared/constant"
	"chrono/shared/logger"
	"chrono/shared/timezone"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	var (
		dir      string
		prefix   string
		withTime bool
		debug    bool
	)

	pflag.StringVarP(&dir, "dir", "D", "", "zoneinfo directory to scan instead of the system ones")
	pflag.StringVarP(&prefix, "prefix", "p", "", "only list zones starting with this prefix, e.g. Europe/")
	pflag.BoolVarP(&withTime, "time", "t", false, "print the current time in each zone")
	pflag.BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg.Server.Env = constant.ServerEnvDevelopment
	if debug {
		cfg.Server.LogLevel = "debug"
	} else {
		cfg.Server.LogLevel = "warn"
	}

	if dir != "" {
		cfg.App.ZoneinfoDir = dir
	}

	logger.InitLogger(cfg)
	logger.SetLogLevel(cfg)

	catalog := timezone.NewCatalog(cfg)
	clock := timezone.NewClock()

	names := catalog.Names()
	if len(names) == 0 {
		log.Warn().Msg("No zoneinfo directory found, nothing to list")
	}

	for _, name := range names {
		if !strings.HasPrefix(name, prefix) {
			continue
		}

		if !withTime {
			fmt.Println(name)

			continue
		}

		loc, err := catalog.Resolve(name)
		if err != nil {
			log.Debug().Err(err).Str("timezone", name).Msg("Skipping zone")

			continue
		}

		fmt.Printf("%-32s %s\n", name, timezone.Format(clock.Now().In(loc)))
	}
}
