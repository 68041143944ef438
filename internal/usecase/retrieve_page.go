package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"runtime/debug"

	"github.com/3-lines-studio/staticpub"
	"github.com/3-lines-studio/staticpub/internal/core"
	"github.com/3-lines-studio/staticpub/internal/logging"
)

// PageRetriever obtains the rendered page from an app, preferring the app's
// own generator over an in-process request.
type PageRetriever struct {
	client PageClient
	writer *BackupWriter
	cli    CLIOutput
}

func NewPageRetriever(client PageClient, writer *BackupWriter, cli CLIOutput) *PageRetriever {
	return &PageRetriever{
		client: client,
		writer: writer,
		cli:    cli,
	}
}

func (r *PageRetriever) Retrieve(ctx context.Context, app *staticpub.App, outputDir string) (core.Retrieval, error) {
	strategy := core.ChooseStrategy(app.Capabilities())
	slog.Debug("retrieving page", logging.App(app.Name), logging.Strategy(string(strategy)))

	switch strategy {
	case core.StrategyGenerate:
		return r.generate(ctx, app, outputDir)
	case core.StrategyRequest:
		return r.request(ctx, app)
	default:
		return core.Retrieval{}, core.NewError(core.KindCapability, "retrieve page from "+app.Name, core.ErrNoCapability)
	}
}

func (r *PageRetriever) generate(ctx context.Context, app *staticpub.App, outputDir string) (core.Retrieval, error) {
	retrieval := core.Retrieval{Strategy: core.StrategyGenerate}

	// The generator overwrites index.html itself, so the backup has to be
	// taken before handing over.
	backup, err := r.writer.Backup(filepath.Join(outputDir, core.PageFile))
	if err != nil {
		return retrieval, err
	}
	retrieval.Backup = backup

	r.cli.PrintStep("Generating static files with the app generator...")

	ok, err := callGenerate(ctx, app.Generate, outputDir)
	if err != nil {
		var coreErr *core.Error
		if errors.As(err, &coreErr) {
			return retrieval, err
		}
		return retrieval, core.NewError(core.KindRetrieval, "generate "+app.Name, err)
	}
	if !ok {
		return retrieval, core.NewError(core.KindRetrieval, "generate "+app.Name, core.ErrGenerateFailed)
	}

	return retrieval, nil
}

func callGenerate(ctx context.Context, generate staticpub.GenerateFunc, outputDir string) (ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			ok = false
			err = &core.Error{
				Kind:  core.KindRetrieval,
				Op:    "generate",
				Err:   fmt.Errorf("%w: %v", core.ErrPanic, rec),
				Stack: debug.Stack(),
			}
		}
	}()

	return generate(ctx, outputDir)
}

func (r *PageRetriever) request(ctx context.Context, app *staticpub.App) (core.Retrieval, error) {
	retrieval := core.Retrieval{Strategy: core.StrategyRequest}

	r.cli.PrintStep("Fetching page content with an in-process request...")

	resp, err := r.client.Get(ctx, app.Handler, core.PageRoute)
	if err != nil {
		var coreErr *core.Error
		if errors.As(err, &coreErr) {
			return retrieval, err
		}
		return retrieval, core.NewError(core.KindRetrieval, "GET "+core.PageRoute, err)
	}

	retrieval.Status = resp.Status
	if resp.Status != http.StatusOK {
		return retrieval, &core.Error{
			Kind:   core.KindRetrieval,
			Op:     "GET " + core.PageRoute,
			Status: resp.Status,
			Err:    core.ErrUnexpectedStatus,
		}
	}

	retrieval.Page = resp.Body
	return retrieval, nil
}
