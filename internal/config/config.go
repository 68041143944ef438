package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/3-lines-studio/staticpub/internal/core"
	"github.com/3-lines-studio/staticpub/internal/logging"
)

const DefaultFile = "staticpub.yaml"

// Config holds everything a publish run needs. Values are layered: defaults,
// then the YAML file, then .env, then STATICPUB_* environment variables, then
// command line flags.
type Config struct {
	App            string        `yaml:"app"`
	OutputDir      string        `yaml:"output_dir"`
	SourceDir      string        `yaml:"source_dir"`
	Assets         []string      `yaml:"assets"`
	Language       string        `yaml:"language"`
	LogLevel       string        `yaml:"log_level"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	Deploy         Deploy        `yaml:"deploy"`
}

type Deploy struct {
	Remote string `yaml:"remote"`
	Branch string `yaml:"branch"`
}

// envOverrides uses pointers so an unset variable leaves the lower layer alone.
type envOverrides struct {
	App            *string        `envconfig:"STATICPUB_APP"`
	OutputDir      *string        `envconfig:"STATICPUB_OUTPUT_DIR"`
	SourceDir      *string        `envconfig:"STATICPUB_SOURCE_DIR"`
	Assets         []string       `envconfig:"STATICPUB_ASSETS"`
	Language       *string        `envconfig:"STATICPUB_LANGUAGE"`
	LogLevel       *string        `envconfig:"STATICPUB_LOG_LEVEL"`
	RequestTimeout *time.Duration `envconfig:"STATICPUB_REQUEST_TIMEOUT"`
	DeployRemote   *string        `envconfig:"STATICPUB_DEPLOY_REMOTE"`
	DeployBranch   *string        `envconfig:"STATICPUB_DEPLOY_BRANCH"`
}

func Default() *Config {
	return &Config{
		App:       "homepage",
		OutputDir: ".",
		SourceDir: "static_build",
		Assets:    []string{"background.jpg"},
		LogLevel:  "info",
		Deploy: Deploy{
			Remote: core.DefaultRemote,
			Branch: core.DefaultDeployBranch,
		},
	}
}

type LoadOptions struct {
	// Path of the YAML file. Empty means DefaultFile.
	Path string
	// Required makes a missing file an error instead of falling back to
	// defaults. Set when the user named the file explicitly.
	Required bool
	// EnvFiles are loaded with godotenv before reading the environment.
	// Real environment variables always win.
	EnvFiles []string
}

func Load(opts LoadOptions) (*Config, error) {
	cfg := Default()

	path := opts.Path
	if path == "" {
		path = DefaultFile
	}

	if err := cfg.loadFile(path, opts.Required); err != nil {
		return nil, err
	}

	for _, f := range opts.EnvFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			slog.Warn("failed to load .env file", "file", f, logging.Error(err))
		} else {
			slog.Debug("loaded .env file", "file", f)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			slog.Debug("no config file, using defaults", logging.Path(path))
			return nil
		}
		return core.NewError(core.KindConfig, "read config", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return core.NewError(core.KindConfig, "parse config "+path, err)
	}

	slog.Debug("loaded config file", logging.Path(path))
	return nil
}

func (c *Config) applyEnv() error {
	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return core.NewError(core.KindConfig, "process env config", err)
	}

	setString(&c.App, env.App)
	setString(&c.OutputDir, env.OutputDir)
	setString(&c.SourceDir, env.SourceDir)
	setString(&c.Language, env.Language)
	setString(&c.LogLevel, env.LogLevel)
	setString(&c.Deploy.Remote, env.DeployRemote)
	setString(&c.Deploy.Branch, env.DeployBranch)
	if env.Assets != nil {
		c.Assets = env.Assets
	}
	if env.RequestTimeout != nil {
		c.RequestTimeout = *env.RequestTimeout
	}

	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// Normalize trims and de-duplicates the asset list.
func (c *Config) Normalize() {
	c.Assets = core.NormalizeAssets(c.Assets)
}

func (c *Config) Validate() error {
	if c.App == "" {
		return invalid("app must be set")
	}
	if c.OutputDir == "" {
		return invalid("output_dir must be set")
	}
	for _, name := range c.Assets {
		if err := core.ValidateAssetName(name); err != nil {
			return core.NewError(core.KindConfig, "validate config", fmt.Errorf("%w: %w", core.ErrInvalidConfig, err))
		}
	}
	if c.Language != "" {
		if _, err := language.Parse(c.Language); err != nil {
			return invalid(fmt.Sprintf("language %q: %v", c.Language, err))
		}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return invalid(err.Error())
	}
	if c.RequestTimeout < 0 {
		return invalid(fmt.Sprintf("request_timeout must not be negative, got %s", c.RequestTimeout))
	}
	if c.Deploy.Branch == "" {
		return invalid("deploy.branch must be set")
	}
	return nil
}

func invalid(msg string) error {
	return core.NewError(core.KindConfig, "validate config", fmt.Errorf("%w: %s", core.ErrInvalidConfig, msg))
}

// Dirs returns the absolute output directory and the secondary source
// directory, which is resolved against the output directory when relative.
func (c *Config) Dirs() (outputDir, sourceDir string, err error) {
	outputDir, err = filepath.Abs(c.OutputDir)
	if err != nil {
		return "", "", core.NewError(core.KindConfig, "resolve output_dir", err)
	}
	return outputDir, core.ResolveDir(outputDir, c.SourceDir), nil
}
