package main

import (
	"github.com/3-lines-studio/staticpub"
	"github.com/3-lines-studio/staticpub/internal/adapters/fs"
	"github.com/3-lines-studio/staticpub/internal/usecase"
)

type CheckCmd struct {
	App    string   `short:"a" help:"Registered app to check"`
	Output string   `short:"o" help:"Output directory (must exist)" type:"path"`
	Source string   `short:"s" help:"Secondary asset directory, relative to the output directory"`
	Asset  []string `name:"asset" help:"Asset file name to check (repeatable)"`
}

func (c *CheckCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig(g, configOverrides{
		App:       c.App,
		OutputDir: c.Output,
		SourceDir: c.Source,
		Assets:    c.Asset,
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

	result := usecase.NewCheckService(fs.NewOSFileSystem(), g.Out).Check(usecase.CheckInput{
		App:       app,
		OutputDir: outputDir,
		SourceDir: sourceDir,
		Assets:    cfg.Assets,
	})
	if result.Error != nil {
		return result.Error
	}

	g.Out.PrintDone("Plan looks good")
	return nil
}
