package main

import (
	"path/filepath"

	"github.com/3-lines-studio/staticpub/internal/adapters/cli"
	"github.com/3-lines-studio/staticpub/internal/adapters/fs"
	"github.com/3-lines-studio/staticpub/internal/core"
	"github.com/3-lines-studio/staticpub/internal/usecase"
)

type InitCmd struct {
	Dir    string `arg:"" optional:"" help:"Project directory" default:"." type:"path"`
	App    string `short:"a" help:"App to put in the configuration" default:"homepage"`
	Source string `short:"s" help:"Secondary asset directory" default:"static_build"`
	Branch string `help:"Branch GitHub Pages deploys from" default:"gh-pages"`
	Force  bool   `help:"Overwrite an existing staticpub.yaml"`
}

func (c *InitCmd) Run(g *Global, root *CLI) error {
	if root.Lang != "" {
		g.Out = cli.NewOutput(consoleLanguage(root.Lang))
	}

	dir, err := filepath.Abs(c.Dir)
	if err != nil {
		return core.NewError(core.KindConfig, "resolve project directory", err)
	}

	result := usecase.NewInitService(fs.NewOSFileSystem(), g.Out).Init(usecase.InitInput{
		ProjectDir:   dir,
		App:          c.App,
		SourceDir:    c.Source,
		DeployBranch: c.Branch,
		Force:        c.Force,
	})
	if result.Error != nil {
		return result.Error
	}

	return nil
}
