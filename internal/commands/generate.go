package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/xbind-dev/xbind/internal/codegen"
	"github.com/xbind-dev/xbind/internal/config"
	"github.com/xbind-dev/xbind/internal/idl"
)

// Generate runs every enabled backend once, or repeatedly when --watch is
// set.
func (c *Controller) Generate(ctx context.Context) error {
	cfg, dir, err := c.loadConfig()
	if err != nil {
		return err
	}

	astPath := c.Flags.AST
	if astPath == "" {
		astPath = cfg.AST
	}
	if astPath == "" {
		return fmt.Errorf("no AST file configured: set \"ast\" in xbind.json or pass --ast")
	}
	if !filepath.IsAbs(astPath) {
		astPath = filepath.Join(dir, astPath)
	}

	if err := c.runOnce(cfg, astPath); err != nil {
		if !c.Flags.Watch {
			return err
		}
		// In watch mode a failed run is reported and watched for a fix.
		log.Error().Err(err).Msg("generation failed")
	}

	if c.Flags.Watch {
		return c.watch(ctx, cfg, astPath)
	}
	return nil
}

func (c *Controller) loadConfig() (*config.Config, string, error) {
	if c.Flags.Config != "" {
		cfg, err := config.LoadConfigFromPath(c.Flags.Config)
		if err != nil {
			return nil, "", err
		}
		return cfg, filepath.Dir(c.Flags.Config), nil
	}
	return config.LoadConfig()
}

// runOnce builds a fresh generator configuration and session and runs the
// full backend sequence against the current AST.
func (c *Controller) runOnce(cfg *config.Config, astPath string) error {
	decls, err := idl.LoadFile(astPath)
	if err != nil {
		return err
	}

	genCfg, err := cfg.Build()
	if err != nil {
		return err
	}
	genCfg.SkipGeneration = c.Flags.DryRun

	manifestPath := c.Flags.Manifest
	if manifestPath == "" {
		manifestPath = cfg.Manifest
	}
	if manifestPath != "" {
		f, err := os.Create(manifestPath)
		if err != nil {
			return fmt.Errorf("failed to create manifest file: %w", err)
		}
		defer f.Close()
		genCfg.Manifest = f
	}

	if err := codegen.Run(&genCfg, decls, log.Logger); err != nil {
		return err
	}

	log.Info().Int("declarations", len(decls)).Bool("dryRun", c.Flags.DryRun).Msg("generation complete")
	return nil
}
