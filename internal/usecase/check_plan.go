package usecase

import (
	"fmt"
	"path/filepath"

	"github.com/3-lines-studio/staticpub"
	"github.com/3-lines-studio/staticpub/internal/core"
)

type CheckInput struct {
	App       *staticpub.App
	OutputDir string
	SourceDir string
	Assets    []string
}

// AssetPlan describes what a publish run would do with one asset.
type AssetPlan struct {
	Name   string
	Source string
	Origin core.AssetOrigin
	Action core.WriteAction
}

type CheckOutput struct {
	Strategy     core.Strategy
	PageBackedUp bool
	Assets       []AssetPlan
	Error        error
}

// CheckService reports what Publish would do without writing anything.
type CheckService struct {
	fs       FileSystem
	cli      CLIOutput
	writer   *BackupWriter
	resolver *AssetResolver
}

func NewCheckService(fs FileSystem, cli CLIOutput) *CheckService {
	return &CheckService{
		fs:       fs,
		cli:      cli,
		writer:   NewBackupWriter(fs, cli),
		resolver: NewAssetResolver(fs),
	}
}

func (s *CheckService) Check(input CheckInput) CheckOutput {
	var output CheckOutput

	if input.App == nil {
		output.Error = core.NewError(core.KindLoad, "check", fmt.Errorf("no app given"))
		return output
	}

	s.cli.PrintHeader("Checking publish plan for: %s", input.OutputDir)

	if err := validateOutputDir(s.fs, input.OutputDir); err != nil {
		output.Error = err
		return output
	}
	s.cli.PrintSuccess("Output directory is ready: %s", input.OutputDir)

	output.Strategy = core.ChooseStrategy(input.App.Capabilities())
	switch output.Strategy {
	case core.StrategyGenerate:
		s.cli.PrintSuccess("App %s generates its own files", input.App.Name)
	case core.StrategyRequest:
		s.cli.PrintSuccess("App %s will be rendered with an in-process request", input.App.Name)
	default:
		output.Error = core.NewError(core.KindCapability, "check "+input.App.Name, core.ErrNoCapability)
		return output
	}

	pagePath := filepath.Join(input.OutputDir, core.PageFile)
	exists, err := s.fs.Exists(pagePath)
	if err != nil {
		output.Error = core.FilesystemError("stat", pagePath, err)
		return output
	}
	output.PageBackedUp = exists
	if exists {
		s.cli.PrintStep("%s would be backed up to %s", pagePath, core.BackupPath(pagePath))
	}

	for _, name := range core.NormalizeAssets(input.Assets) {
		plan, err := s.planAsset(name, input.SourceDir, input.OutputDir)
		output.Assets = append(output.Assets, plan)
		if err != nil {
			output.Error = err
			return output
		}
	}

	return output
}

func (s *CheckService) planAsset(name, sourceDir, outputDir string) (AssetPlan, error) {
	asset, err := s.resolver.Resolve(name, sourceDir, outputDir)
	plan := AssetPlan{Name: name, Source: asset.Source, Origin: asset.Origin}
	if err != nil {
		return plan, err
	}

	if asset.Origin == core.OriginMissing {
		s.cli.PrintWarning("Asset not found, it would be skipped: %s", name)
		return plan, nil
	}

	plan.Action, err = s.writer.PlanCopy(asset.Source, filepath.Join(outputDir, name))
	if err != nil {
		return plan, err
	}

	switch plan.Action {
	case core.ActionSkipSameFile:
		s.cli.PrintStep("%s is already in place, copy would be skipped", name)
	case core.ActionBackupAndWrite:
		s.cli.PrintStep("%s would be copied from %s with a backup", name, asset.Source)
	default:
		s.cli.PrintStep("%s would be copied from %s", name, asset.Source)
	}

	return plan, nil
}
