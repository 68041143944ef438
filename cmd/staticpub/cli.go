package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"golang.org/x/text/language"

	"github.com/3-lines-studio/staticpub/internal/adapters/cli"
	"github.com/3-lines-studio/staticpub/internal/adapters/env"
	"github.com/3-lines-studio/staticpub/internal/config"
	"github.com/3-lines-studio/staticpub/internal/logging"
)

// Global carries per-run state into every command.
type Global struct {
	Ctx   context.Context
	RunID string
	Out   *cli.Output
}

type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (default: staticpub.yaml if present)" type:"path"`
	EnvFile string           `name:"env-file" help:"Dotenv file loaded before reading STATICPUB_* variables" default:".env"`
	Verbose bool             `short:"v" help:"Enable debug logging"`
	Lang    string           `name:"lang" help:"Console language (zh or en)"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Publish PublishCmd `cmd:"" default:"withargs" help:"Render the page and copy assets into the output directory (default)"`
	Check   CheckCmd   `cmd:"" help:"Show what publish would do without writing anything"`
	Init    InitCmd    `cmd:"" help:"Write a staticpub.yaml scaffold and the asset directory"`
}

// AfterApply sets up logging before any command runs. The level is refined
// once the configuration is loaded.
func (c *CLI) AfterApply(g *Global) error {
	level := "info"
	if c.Verbose {
		level = "debug"
	}
	return c.setupLogging(g, level)
}

func (c *CLI) setupLogging(g *Global, level string) error {
	logger, err := logging.Setup(level, os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger.With(logging.RunID(g.RunID)))
	return nil
}

// configOverrides are command flags that take precedence over every other
// configuration layer.
type configOverrides struct {
	App       string
	OutputDir string
	SourceDir string
	Assets    []string
	Timeout   time.Duration
}

// loadConfig builds the effective configuration, then switches logging and
// console language to it.
func (c *CLI) loadConfig(g *Global, o configOverrides) (*config.Config, error) {
	var envFiles []string
	if c.EnvFile != "" {
		envFiles = append(envFiles, c.EnvFile)
	}

	cfg, err := config.Load(config.LoadOptions{
		Path:     c.Config,
		Required: c.Config != "",
		EnvFiles: envFiles,
	})
	if err != nil {
		return nil, err
	}

	if o.App != "" {
		cfg.App = o.App
	}
	if o.OutputDir != "" {
		cfg.OutputDir = o.OutputDir
	}
	if o.SourceDir != "" {
		cfg.SourceDir = o.SourceDir
	}
	if len(o.Assets) > 0 {
		cfg.Assets = o.Assets
	}
	if o.Timeout > 0 {
		cfg.RequestTimeout = o.Timeout
	}
	if c.Lang != "" {
		cfg.Language = c.Lang
	}
	if c.Verbose {
		cfg.LogLevel = "debug"
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := c.setupLogging(g, cfg.LogLevel); err != nil {
		return nil, err
	}
	g.Out = cli.NewOutput(consoleLanguage(cfg.Language))

	slog.Debug("configuration loaded",
		logging.App(cfg.App),
		"output_dir", cfg.OutputDir,
		"source_dir", cfg.SourceDir,
		"assets", cfg.Assets,
		"language", cfg.Language,
	)
	return cfg, nil
}

func consoleLanguage(configured string) language.Tag {
	if configured != "" {
		if tag, err := language.Parse(configured); err == nil {
			return tag
		}
	}
	return env.DetectLanguage(language.Chinese)
}
