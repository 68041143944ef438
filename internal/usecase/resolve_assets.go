package usecase

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/3-lines-studio/staticpub/internal/core"
	"github.com/3-lines-studio/staticpub/internal/logging"
)

// AssetResolver finds where each asset should be copied from: the source
// directory first, then the output directory itself.
type AssetResolver struct {
	fs FileSystem
}

func NewAssetResolver(fs FileSystem) *AssetResolver {
	return &AssetResolver{fs: fs}
}

func (r *AssetResolver) Resolve(name, sourceDir, outputDir string) (core.AssetResult, error) {
	result := core.AssetResult{Name: name, Origin: core.OriginMissing}

	if err := core.ValidateAssetName(name); err != nil {
		return result, core.NewError(core.KindConfig, "resolve asset", err)
	}

	inSource := filepath.Join(sourceDir, name)
	inOutput := filepath.Join(outputDir, name)

	foundInSource, err := r.fs.Exists(inSource)
	if err != nil {
		return result, core.FilesystemError("stat", inSource, err)
	}
	foundInOutput := false
	if !foundInSource {
		foundInOutput, err = r.fs.Exists(inOutput)
		if err != nil {
			return result, core.FilesystemError("stat", inOutput, err)
		}
	}

	result.Origin = core.DecideAssetOrigin(foundInSource, foundInOutput)
	switch result.Origin {
	case core.OriginSourceDir:
		result.Source = inSource
	case core.OriginOutputDir:
		result.Source = inOutput
	default:
		slog.Debug("asset not found, skipping", logging.Asset(name), "source_dir", sourceDir, "output_dir", outputDir)
		return result, nil
	}

	info, err := r.fs.Stat(result.Source)
	if err != nil {
		return result, core.FilesystemError("stat", result.Source, err)
	}
	if !info.Mode().IsRegular() {
		return result, core.FilesystemError("resolve asset", result.Source,
			fmt.Errorf("%w: %s", core.ErrNotRegularFile, info.Mode().Type()))
	}

	slog.Debug("asset resolved", logging.Asset(name), logging.Origin(string(result.Origin)), logging.Path(result.Source))
	return result, nil
}
