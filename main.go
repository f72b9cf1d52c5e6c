package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/xbind-dev/xbind/internal/commands"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	ctrl := &commands.Controller{
		Flags: &commands.Flags{},
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.Command{
		Name:    "xbind",
		Usage:   `Generate cross-language bridging code from a type-checked interface definition.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("XBIND_LOG_LEVEL"),
				Value:       "info",
				Destination: &ctrl.Flags.LogLevel,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return ctx, fmt.Errorf("failed to parse log level: %w", err)
			}

			log.Logger = log.Level(level)

			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Run every enabled backend against the parsed interface definition",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "config",
						Usage:       "path to xbind.json (default: discover from the working directory upward)",
						Destination: &ctrl.Flags.Config,
					},
					&cli.StringFlag{
						Name:        "ast",
						Usage:       "path to the parsed declaration document (overrides the config file)",
						Destination: &ctrl.Flags.AST,
					},
					&cli.StringFlag{
						Name:        "manifest",
						Usage:       "write the list of generated files to this path",
						Destination: &ctrl.Flags.Manifest,
					},
					&cli.BoolFlag{
						Name:        "dry-run",
						Usage:       "record the manifest without writing any output files",
						Destination: &ctrl.Flags.DryRun,
					},
					&cli.BoolFlag{
						Name:        "watch",
						Usage:       "keep running and regenerate when the declaration document changes",
						Destination: &ctrl.Flags.Watch,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Generate(ctx)
				},
			},
		},
	}

	ctx := context.Background()

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run xbind")
	}
}
