package usecase

import (
	"fmt"
	iofs "io/fs"
	"path/filepath"

	"github.com/3-lines-studio/staticpub/internal/core"
	"github.com/3-lines-studio/staticpub/internal/templates"
)

type InitInput struct {
	ProjectDir   string
	App          string
	SourceDir    string
	DeployBranch string
	Force        bool
}

type InitOutput struct {
	Created []string
	Error   error
}

type InitService struct {
	fs  FileSystem
	cli CLIOutput
}

func NewInitService(fs FileSystem, cli CLIOutput) *InitService {
	return &InitService{
		fs:  fs,
		cli: cli,
	}
}

// Init writes the configuration scaffold into ProjectDir and creates the asset
// source directory. An existing configuration is only replaced with Force.
func (s *InitService) Init(input InitInput) InitOutput {
	var output InitOutput

	s.cli.PrintHeader("Initializing staticpub in: %s", input.ProjectDir)

	if err := s.fs.MkdirAll(input.ProjectDir, 0755); err != nil {
		output.Error = core.FilesystemError("create directory", input.ProjectDir, err)
		return output
	}

	scaffold, err := templates.Scaffold()
	if err != nil {
		output.Error = core.NewError(core.KindInternal, "load scaffold", err)
		return output
	}

	data := templates.TemplateData{
		App:          input.App,
		SourceDir:    input.SourceDir,
		DeployBranch: input.DeployBranch,
	}

	err = iofs.WalkDir(scaffold, ".", func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := iofs.ReadFile(scaffold, path)
		if err != nil {
			return core.NewError(core.KindInternal, "read scaffold "+path, err)
		}

		targetName, isTemplate := templates.ProcessFilename(path)
		targetPath := filepath.Join(input.ProjectDir, targetName)

		exists, err := s.fs.Exists(targetPath)
		if err != nil {
			return core.FilesystemError("stat", targetPath, err)
		}
		if exists && !input.Force {
			return &core.Error{
				Kind: core.KindConfig,
				Op:   "init",
				Path: targetPath,
				Err:  fmt.Errorf("%w: file already exists, use --force to overwrite", core.ErrInvalidConfig),
			}
		}

		if err := s.fs.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
			return core.FilesystemError("create directory", filepath.Dir(targetPath), err)
		}
		if err := s.fs.WriteFile(targetPath, templates.ProcessContent(content, isTemplate, data), 0644); err != nil {
			return core.FilesystemError("write", targetPath, err)
		}

		output.Created = append(output.Created, targetPath)
		s.cli.PrintFile(targetPath)
		return nil
	})
	if err != nil {
		output.Error = err
		return output
	}

	sourceDir := core.ResolveDir(input.ProjectDir, input.SourceDir)
	if err := s.fs.MkdirAll(sourceDir, 0755); err != nil {
		output.Error = core.FilesystemError("create directory", sourceDir, err)
		return output
	}

	keep := filepath.Join(sourceDir, templates.GitKeep)
	exists, err := s.fs.Exists(keep)
	if err != nil {
		output.Error = core.FilesystemError("stat", keep, err)
		return output
	}
	if !exists {
		if err := s.fs.WriteFile(keep, nil, 0644); err != nil {
			output.Error = core.FilesystemError("write", keep, err)
			return output
		}
		output.Created = append(output.Created, keep)
		s.cli.PrintFile(keep)
	}

	s.cli.PrintDone("Put your assets in %s and run staticpub", sourceDir)
	return output
}
