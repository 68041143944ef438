package usecase

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3-lines-studio/staticpub"
	"github.com/3-lines-studio/staticpub/internal/core"
)

func publishInput(app *staticpub.App, outputDir string) PublishInput {
	return PublishInput{
		App:       app,
		OutputDir: outputDir,
		SourceDir: filepath.Join(outputDir, "static_build"),
		Assets:    []string{"background.jpg"},
	}
}

func TestPublish_WritesPageAndCopiesAssetFromSourceDir(t *testing.T) {
	out := t.TempDir()
	writeFile(t, filepath.Join(out, "static_build", "background.jpg"), "jpeg-bytes")

	svc, cli := newTestPublishService()
	result := svc.Publish(context.Background(), publishInput(handlerApp(pageHandler(testPage)), out))
	require.NoError(t, result.Error)

	assert.Equal(t, core.StrategyRequest, result.Retrieval.Strategy)
	assert.Equal(t, http.StatusOK, result.Retrieval.Status)
	assert.Equal(t, testPage, readFile(t, filepath.Join(out, "index.html")))
	assert.Equal(t, "jpeg-bytes", readFile(t, filepath.Join(out, "background.jpg")))
	assert.False(t, fileExists(t, filepath.Join(out, "index.html.bak")))

	require.Len(t, result.Assets, 1)
	assert.Equal(t, core.OriginSourceDir, result.Assets[0].Origin)
	assert.True(t, result.Assets[0].Copied())
	assert.Equal(t, []string{"index.html", "background.jpg"}, result.Files())
	assert.Contains(t, cli.texts("success"), "Copied asset: background.jpg")
	assert.Equal(t, []string{"Static build complete!"}, cli.texts("done"))
}

func TestPublish_IsIdempotent(t *testing.T) {
	out := t.TempDir()
	writeFile(t, filepath.Join(out, "static_build", "background.jpg"), "jpeg-bytes")
	input := publishInput(handlerApp(pageHandler(testPage)), out)

	svc, _ := newTestPublishService()
	require.NoError(t, svc.Publish(context.Background(), input).Error)
	second := svc.Publish(context.Background(), input)
	require.NoError(t, second.Error)

	assert.Equal(t, testPage, readFile(t, filepath.Join(out, "index.html")))
	assert.Equal(t, testPage, readFile(t, filepath.Join(out, "index.html.bak")))
	assert.Equal(t, "jpeg-bytes", readFile(t, filepath.Join(out, "background.jpg")))
	assert.Equal(t, "jpeg-bytes", readFile(t, filepath.Join(out, "background.jpg.bak")))
	assert.True(t, second.Page.BackedUp)
}

func TestPublish_BacksUpBeforeOverwrite(t *testing.T) {
	out := t.TempDir()
	writeFile(t, filepath.Join(out, "index.html"), "old page")
	writeFile(t, filepath.Join(out, "background.jpg"), "old image")
	writeFile(t, filepath.Join(out, "static_build", "background.jpg"), "new image")

	svc, cli := newTestPublishService()
	result := svc.Publish(context.Background(), publishInput(handlerApp(pageHandler(testPage)), out))
	require.NoError(t, result.Error)

	assert.Equal(t, "old page", readFile(t, filepath.Join(out, "index.html.bak")))
	assert.Equal(t, testPage, readFile(t, filepath.Join(out, "index.html")))
	assert.Equal(t, "old image", readFile(t, filepath.Join(out, "background.jpg.bak")))
	assert.Equal(t, "new image", readFile(t, filepath.Join(out, "background.jpg")))

	assert.Equal(t, filepath.Join(out, "index.html.bak"), result.Page.BackupPath)
	assert.Contains(t, cli.texts("step"), "Backed up existing file to: "+filepath.Join(out, "index.html.bak"))
}

func TestPublish_BackupKeepsOneGeneration(t *testing.T) {
	out := t.TempDir()
	writeFile(t, filepath.Join(out, "index.html"), "first")
	writeFile(t, filepath.Join(out, "index.html.bak"), "zeroth")

	svc, _ := newTestPublishService()
	input := publishInput(handlerApp(pageHandler(testPage)), out)
	input.Assets = nil
	require.NoError(t, svc.Publish(context.Background(), input).Error)

	assert.Equal(t, "first", readFile(t, filepath.Join(out, "index.html.bak")))
}

func TestPublish_IdentitySkip(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, out string)
	}{
		{
			name: "asset only in output dir",
			setup: func(t *testing.T, out string) {
				writeFile(t, filepath.Join(out, "background.jpg"), "image")
			},
		},
		{
			name: "hardlink in source dir",
			setup: func(t *testing.T, out string) {
				writeFile(t, filepath.Join(out, "background.jpg"), "image")
				require.NoError(t, os.MkdirAll(filepath.Join(out, "static_build"), 0755))
				require.NoError(t, os.Link(filepath.Join(out, "background.jpg"), filepath.Join(out, "static_build", "background.jpg")))
			},
		},
		{
			name: "symlink in source dir",
			setup: func(t *testing.T, out string) {
				writeFile(t, filepath.Join(out, "background.jpg"), "image")
				require.NoError(t, os.MkdirAll(filepath.Join(out, "static_build"), 0755))
				require.NoError(t, os.Symlink(filepath.Join(out, "background.jpg"), filepath.Join(out, "static_build", "background.jpg")))
			},
		},
		{
			name: "source dir is the output dir",
			setup: func(t *testing.T, out string) {
				writeFile(t, filepath.Join(out, "background.jpg"), "image")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := t.TempDir()
			tt.setup(t, out)

			input := publishInput(handlerApp(pageHandler(testPage)), out)
			if tt.name == "source dir is the output dir" {
				input.SourceDir = out
			}

			svc, cli := newTestPublishService()
			result := svc.Publish(context.Background(), input)
			require.NoError(t, result.Error)

			require.Len(t, result.Assets, 1)
			assert.True(t, result.Assets[0].Write.Skipped)
			assert.False(t, result.Assets[0].Write.BackedUp)
			assert.False(t, fileExists(t, filepath.Join(out, "background.jpg.bak")))
			assert.Equal(t, "image", readFile(t, filepath.Join(out, "background.jpg")))
			assert.Contains(t, cli.texts("warning"), "Source and destination are the same file, skipping copy: background.jpg")
			assert.Equal(t, []string{"index.html", "background.jpg"}, result.Files())
		})
	}
}

func TestPublish_SourceDirPreferredOverOutputDir(t *testing.T) {
	out := t.TempDir()
	writeFile(t, filepath.Join(out, "static_build", "background.jpg"), "from source")
	writeFile(t, filepath.Join(out, "background.jpg"), "from output")

	svc, _ := newTestPublishService()
	result := svc.Publish(context.Background(), publishInput(handlerApp(pageHandler(testPage)), out))
	require.NoError(t, result.Error)

	require.Len(t, result.Assets, 1)
	assert.Equal(t, core.OriginSourceDir, result.Assets[0].Origin)
	assert.Equal(t, filepath.Join(out, "static_build", "background.jpg"), result.Assets[0].Source)
	assert.Equal(t, "from source", readFile(t, filepath.Join(out, "background.jpg")))
}

func TestPublish_MissingAssetIsTolerated(t *testing.T) {
	out := t.TempDir()

	svc, cli := newTestPublishService()
	result := svc.Publish(context.Background(), publishInput(handlerApp(pageHandler(testPage)), out))
	require.NoError(t, result.Error)

	require.Len(t, result.Assets, 1)
	assert.Equal(t, core.OriginMissing, result.Assets[0].Origin)
	assert.False(t, result.Assets[0].Copied())
	assert.False(t, fileExists(t, filepath.Join(out, "background.jpg")))
	assert.Equal(t, []string{"index.html"}, result.Files())
	assert.Empty(t, cli.texts("warning"))
	assert.Empty(t, cli.texts("error"))
}

func TestPublish_NonOKStatusWritesNothing(t *testing.T) {
	out := t.TempDir()
	writeFile(t, filepath.Join(out, "static_build", "background.jpg"), "image")

	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	svc, _ := newTestPublishService()
	result := svc.Publish(context.Background(), publishInput(handlerApp(notFound), out))
	require.Error(t, result.Error)

	assert.Equal(t, core.KindRetrieval, core.KindOf(result.Error))
	assert.True(t, errors.Is(result.Error, core.ErrUnexpectedStatus))
	var coreErr *core.Error
	require.True(t, errors.As(result.Error, &coreErr))
	assert.Equal(t, http.StatusNotFound, coreErr.Status)
	assert.Equal(t, 1, core.ExitCode(result.Error))

	assert.False(t, fileExists(t, filepath.Join(out, "index.html")))
	assert.False(t, fileExists(t, filepath.Join(out, "background.jpg")))
	assert.Empty(t, result.Assets)
}

func TestPublish_GeneratorPreferredOverHandler(t *testing.T) {
	out := t.TempDir()
	writeFile(t, filepath.Join(out, "index.html"), "old page")

	handlerCalled := false
	app := &staticpub.App{
		Name: "both",
		Generate: func(ctx context.Context, outputDir string) (bool, error) {
			return true, os.WriteFile(filepath.Join(outputDir, "index.html"), []byte("generated"), 0644)
		},
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
		}),
	}

	svc, _ := newTestPublishService()
	result := svc.Publish(context.Background(), publishInput(app, out))
	require.NoError(t, result.Error)

	assert.False(t, handlerCalled)
	assert.Equal(t, core.StrategyGenerate, result.Retrieval.Strategy)
	assert.Equal(t, "generated", readFile(t, filepath.Join(out, "index.html")))
	assert.Equal(t, "old page", readFile(t, filepath.Join(out, "index.html.bak")))
	assert.True(t, result.Page.BackedUp)
}

func TestPublish_GeneratorCopiesAssets(t *testing.T) {
	out := t.TempDir()
	writeFile(t, filepath.Join(out, "static_build", "background.jpg"), "image")

	app := &staticpub.App{
		Name: "gen",
		Generate: func(ctx context.Context, outputDir string) (bool, error) {
			return true, os.WriteFile(filepath.Join(outputDir, "index.html"), []byte("generated"), 0644)
		},
	}

	svc, _ := newTestPublishService()
	result := svc.Publish(context.Background(), publishInput(app, out))
	require.NoError(t, result.Error)
	assert.Equal(t, "image", readFile(t, filepath.Join(out, "background.jpg")))
}

func TestPublish_RetrievalFailures(t *testing.T) {
	tests := []struct {
		name     string
		app      *staticpub.App
		wantKind core.Kind
		wantErr  error
	}{
		{
			name: "generator reports failure",
			app: &staticpub.App{Name: "gen", Generate: func(context.Context, string) (bool, error) {
				return false, nil
			}},
			wantKind: core.KindRetrieval,
			wantErr:  core.ErrGenerateFailed,
		},
		{
			name: "generator returns error",
			app: &staticpub.App{Name: "gen", Generate: func(context.Context, string) (bool, error) {
				return false, os.ErrPermission
			}},
			wantKind: core.KindRetrieval,
			wantErr:  os.ErrPermission,
		},
		{
			name: "generator panics",
			app: &staticpub.App{Name: "gen", Generate: func(context.Context, string) (bool, error) {
				panic("boom")
			}},
			wantKind: core.KindRetrieval,
			wantErr:  core.ErrPanic,
		},
		{
			name: "handler panics",
			app: handlerApp(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				panic("boom")
			})),
			wantKind: core.KindRetrieval,
			wantErr:  core.ErrPanic,
		},
		{
			name:     "no capability",
			app:      &staticpub.App{Name: "empty"},
			wantKind: core.KindCapability,
			wantErr:  core.ErrNoCapability,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := t.TempDir()

			svc, _ := newTestPublishService()
			result := svc.Publish(context.Background(), publishInput(tt.app, out))
			require.Error(t, result.Error)

			assert.Equal(t, tt.wantKind, core.KindOf(result.Error))
			assert.ErrorIs(t, result.Error, tt.wantErr)
			assert.False(t, fileExists(t, filepath.Join(out, "index.html")))
			if errors.Is(tt.wantErr, core.ErrPanic) {
				assert.NotEmpty(t, core.StackOf(result.Error))
			}
		})
	}
}

func TestPublish_InvalidOutputDir(t *testing.T) {
	base := t.TempDir()
	notDir := filepath.Join(base, "file")
	writeFile(t, notDir, "x")

	for name, dir := range map[string]string{
		"missing": filepath.Join(base, "missing"),
		"not dir": notDir,
		"empty":   "",
	} {
		t.Run(name, func(t *testing.T) {
			svc, _ := newTestPublishService()
			result := svc.Publish(context.Background(), publishInput(handlerApp(pageHandler(testPage)), dir))

			assert.Equal(t, core.KindConfig, core.KindOf(result.Error))
			assert.ErrorIs(t, result.Error, core.ErrOutputDirInvalid)
		})
	}
	assert.False(t, fileExists(t, filepath.Join(base, "missing")))
}

func TestPublish_AssetThatIsADirectoryFails(t *testing.T) {
	out := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(out, "static_build", "background.jpg"), 0755))

	svc, _ := newTestPublishService()
	result := svc.Publish(context.Background(), publishInput(handlerApp(pageHandler(testPage)), out))

	assert.Equal(t, core.KindFilesystem, core.KindOf(result.Error))
	assert.ErrorIs(t, result.Error, core.ErrNotRegularFile)
}

func TestPublish_InvalidAssetName(t *testing.T) {
	out := t.TempDir()
	input := publishInput(handlerApp(pageHandler(testPage)), out)
	input.Assets = []string{"../secret"}

	svc, _ := newTestPublishService()
	result := svc.Publish(context.Background(), input)

	assert.Equal(t, core.KindConfig, core.KindOf(result.Error))
	assert.ErrorIs(t, result.Error, core.ErrInvalidAssetName)
}

func TestPublish_DuplicateAssetsHandledOnce(t *testing.T) {
	out := t.TempDir()
	writeFile(t, filepath.Join(out, "static_build", "background.jpg"), "image")
	input := publishInput(handlerApp(pageHandler(testPage)), out)
	input.Assets = []string{"background.jpg", "background.jpg"}

	svc, _ := newTestPublishService()
	result := svc.Publish(context.Background(), input)
	require.NoError(t, result.Error)

	assert.Len(t, result.Assets, 1)
	assert.False(t, fileExists(t, filepath.Join(out, "background.jpg.bak")))
}

func TestPublish_TimeoutAbortsSlowHandler(t *testing.T) {
	out := t.TempDir()
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	input := publishInput(handlerApp(slow), out)
	input.Timeout = 10 * time.Millisecond

	svc, _ := newTestPublishService()
	result := svc.Publish(context.Background(), input)

	assert.Equal(t, core.KindRetrieval, core.KindOf(result.Error))
	assert.ErrorIs(t, result.Error, context.DeadlineExceeded)
	assert.False(t, fileExists(t, filepath.Join(out, "index.html")))
}

func TestPublish_TimeoutAppliesToGenerator(t *testing.T) {
	out := t.TempDir()
	writeFile(t, filepath.Join(out, "static_build", "background.jpg"), "image")

	app := &staticpub.App{
		Name: "slow-gen",
		Generate: func(ctx context.Context, outputDir string) (bool, error) {
			time.Sleep(100 * time.Millisecond)
			return true, os.WriteFile(filepath.Join(outputDir, "index.html"), []byte("late"), 0644)
		},
	}

	input := publishInput(app, out)
	input.Timeout = 10 * time.Millisecond

	svc, _ := newTestPublishService()
	result := svc.Publish(context.Background(), input)

	assert.Equal(t, core.KindRetrieval, core.KindOf(result.Error))
	assert.ErrorIs(t, result.Error, context.DeadlineExceeded)
	assert.Empty(t, result.Assets)
	assert.False(t, fileExists(t, filepath.Join(out, "background.jpg")))
}

func TestPublish_NilApp(t *testing.T) {
	svc, _ := newTestPublishService()
	result := svc.Publish(context.Background(), PublishInput{OutputDir: t.TempDir()})
	assert.Equal(t, core.KindLoad, core.KindOf(result.Error))
}
