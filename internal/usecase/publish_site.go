package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/3-lines-studio/staticpub"
	"github.com/3-lines-studio/staticpub/internal/core"
	"github.com/3-lines-studio/staticpub/internal/logging"
)

type PublishInput struct {
	App       *staticpub.App
	OutputDir string
	SourceDir string
	Assets    []string
	Timeout   time.Duration
}

type PublishOutput struct {
	Retrieval core.Retrieval
	Page      core.WriteResult
	Assets    []core.AssetResult
	Error     error
}

// Files lists what a deploy commit should contain.
func (o PublishOutput) Files() []string {
	return core.PublishedFiles(o.Assets)
}

type PublishService struct {
	fs        FileSystem
	cli       CLIOutput
	writer    *BackupWriter
	retriever *PageRetriever
	resolver  *AssetResolver
}

func NewPublishService(fs FileSystem, client PageClient, cli CLIOutput) *PublishService {
	writer := NewBackupWriter(fs, cli)
	return &PublishService{
		fs:        fs,
		cli:       cli,
		writer:    writer,
		retriever: NewPageRetriever(client, writer, cli),
		resolver:  NewAssetResolver(fs),
	}
}

// Publish renders the app's page into OutputDir and copies the asset list
// next to it. The first failure stops the run.
func (s *PublishService) Publish(ctx context.Context, input PublishInput) PublishOutput {
	var output PublishOutput

	if input.App == nil {
		output.Error = core.NewError(core.KindLoad, "publish", fmt.Errorf("no app given"))
		return output
	}

	if err := validateOutputDir(s.fs, input.OutputDir); err != nil {
		output.Error = err
		return output
	}

	s.cli.PrintHeader("Generating static files in: %s", input.OutputDir)
	s.cli.PrintStep("Preparing to generate static files...")

	retrieveCtx := ctx
	if input.Timeout > 0 {
		var cancel context.CancelFunc
		retrieveCtx, cancel = context.WithTimeout(ctx, input.Timeout)
		defer cancel()
	}

	retrieval, err := s.retriever.Retrieve(retrieveCtx, input.App, input.OutputDir)
	output.Retrieval = retrieval
	if err != nil {
		output.Error = err
		return output
	}
	// A generator may ignore ctx and finish late; the deadline still applies.
	if err := retrieveCtx.Err(); err != nil {
		output.Error = core.NewError(core.KindRetrieval, "retrieve page from "+input.App.Name, err)
		return output
	}

	pagePath := filepath.Join(input.OutputDir, core.PageFile)
	if retrieval.Strategy == core.StrategyRequest {
		page, err := s.writer.WriteFile(pagePath, retrieval.Page)
		output.Page = page
		if err != nil {
			output.Error = err
			return output
		}
	} else {
		output.Page = retrieval.Backup
	}
	s.cli.PrintSuccess("Static HTML saved to: %s", pagePath)
	slog.Debug("page written", logging.Path(pagePath), logging.Strategy(string(retrieval.Strategy)))

	s.cli.PrintStep("Copying other static assets...")
	for _, name := range core.NormalizeAssets(input.Assets) {
		if err := ctx.Err(); err != nil {
			output.Error = core.NewError(core.KindInternal, "copy assets", err)
			return output
		}

		asset, err := s.copyAsset(name, input.SourceDir, input.OutputDir)
		output.Assets = append(output.Assets, asset)
		if err != nil {
			output.Error = err
			return output
		}
	}

	s.cli.PrintDone("Static build complete!")
	return output
}

func (s *PublishService) copyAsset(name, sourceDir, outputDir string) (core.AssetResult, error) {
	asset, err := s.resolver.Resolve(name, sourceDir, outputDir)
	if err != nil || asset.Origin == core.OriginMissing {
		return asset, err
	}

	dst := filepath.Join(outputDir, name)
	write, err := s.writer.CopyFile(asset.Source, dst)
	asset.Write = write
	if err != nil {
		return asset, err
	}

	if write.Skipped {
		s.cli.PrintWarning("Source and destination are the same file, skipping copy: %s", name)
	} else {
		s.cli.PrintSuccess("Copied asset: %s", name)
	}
	slog.Debug("asset handled",
		logging.Asset(name),
		logging.Origin(string(asset.Origin)),
		"skipped", write.Skipped,
		"backed_up", write.BackedUp,
	)

	return asset, nil
}

func validateOutputDir(fs FileSystem, dir string) error {
	if dir == "" {
		return core.NewError(core.KindConfig, "validate output dir", fmt.Errorf("%w: empty path", core.ErrOutputDirInvalid))
	}

	info, err := fs.Stat(dir)
	if err != nil {
		return &core.Error{
			Kind: core.KindConfig,
			Op:   "validate output dir",
			Path: dir,
			Err:  fmt.Errorf("%w: %w", core.ErrOutputDirInvalid, err),
		}
	}
	if !info.IsDir() {
		return &core.Error{
			Kind: core.KindConfig,
			Op:   "validate output dir",
			Path: dir,
			Err:  fmt.Errorf("%w: not a directory", core.ErrOutputDirInvalid),
		}
	}

	return nil
}
