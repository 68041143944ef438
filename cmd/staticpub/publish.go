package main

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/3-lines-studio/staticpub"
	"github.com/3-lines-studio/staticpub/internal/adapters/cli"
	"github.com/3-lines-studio/staticpub/internal/adapters/fs"
	"github.com/3-lines-studio/staticpub/internal/adapters/git"
	apphttp "github.com/3-lines-studio/staticpub/internal/adapters/http"
	"github.com/3-lines-studio/staticpub/internal/core"
	"github.com/3-lines-studio/staticpub/internal/logging"
	"github.com/3-lines-studio/staticpub/internal/usecase"
)

type PublishCmd struct {
	App     string        `short:"a" help:"Registered app to render"`
	Output  string        `short:"o" help:"Output directory (must exist)" type:"path"`
	Source  string        `short:"s" help:"Secondary asset directory, relative to the output directory"`
	Asset   []string      `name:"asset" help:"Asset file name to copy (repeatable)"`
	Timeout time.Duration `help:"Upper bound for rendering the page"`
}

func (c *PublishCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig(g, configOverrides{
		App:       c.App,
		OutputDir: c.Output,
		SourceDir: c.Source,
		Assets:    c.Asset,
		Timeout:   c.Timeout,
	})
	if err != nil {
		return err
	}

	outputDir, sourceDir, err := cfg.Dirs()
	if err != nil {
		return err
	}

	app, err := staticpub.Load(cfg.App)
	if err != nil {
		return err
	}
	slog.Info("publishing", logging.App(app.Name), logging.Path(outputDir))

	report := cli.NewPublishReport(g.Out, outputDir)
	svc := usecase.NewPublishService(fs.NewOSFileSystem(), apphttp.NewInProcessClient(), g.Out)
	result := svc.Publish(g.Ctx, usecase.PublishInput{
		App:       app,
		OutputDir: outputDir,
		SourceDir: sourceDir,
		Assets:    cfg.Assets,
		Timeout:   cfg.RequestTimeout,
	})
	if result.Error != nil {
		return result.Error
	}

	report.SetPage(result.Retrieval.Strategy, result.Page)
	report.AddAssets(result.Assets...)
	report.Render()

	info, err := git.NewRepoInspector().DeployInfo(outputDir, cfg.Deploy.Remote, cfg.Deploy.Branch)
	if err != nil {
		slog.Warn("could not inspect git repository, using placeholders", logging.Error(err))
	}
	info.Files = result.Files()
	g.Out.PrintDeployInstructions(filepath.Join(outputDir, core.PageFile), info)

	return nil
}
