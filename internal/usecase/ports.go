package usecase

import (
	"context"
	"net/http"

	"github.com/3-lines-studio/staticpub/internal/adapters/fs"
	apphttp "github.com/3-lines-studio/staticpub/internal/adapters/http"
	"github.com/3-lines-studio/staticpub/internal/core"
)

type PageClient interface {
	Get(ctx context.Context, handler http.Handler, path string) (apphttp.Response, error)
}

type RepoInspector interface {
	DeployInfo(dir, remoteName, deployBranch string) (core.DeployInfo, error)
}

type CLIOutput interface {
	PrintHeader(msg string, args ...any)
	PrintStep(msg string, args ...any)
	PrintSuccess(msg string, args ...any)
	PrintWarning(msg string, args ...any)
	PrintError(msg string, args ...any)
	PrintFile(path string)
	PrintDone(msg string, args ...any)
}

type FileSystem = fs.FileSystem
