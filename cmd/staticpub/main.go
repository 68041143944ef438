package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/3-lines-studio/staticpub/internal/adapters/cli"
	"github.com/3-lines-studio/staticpub/internal/adapters/env"
	"github.com/3-lines-studio/staticpub/internal/core"
	"github.com/3-lines-studio/staticpub/internal/logging"

	_ "github.com/3-lines-studio/staticpub/internal/homepage"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var root CLI
	global := &Global{
		Ctx:   ctx,
		RunID: uuid.NewString(),
		Out:   cli.NewOutput(env.DetectLanguage(language.Chinese)),
	}

	parser, err := kong.New(&root,
		kong.Name("staticpub"),
		kong.Description("Render a page into a static index.html and prepare it for GitHub Pages."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
		kong.Bind(global),
	)
	if err != nil {
		global.Out.PrintError("Error: %v", err)
		return 1
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		global.Out.PrintError("Error: %v", err)
		return 1
	}

	err = kctx.Run(&root)
	return handleError(global, failureMessage(kctx.Command()), err)
}

// failureMessage picks the console line for a failed command, as reported by
// kong ("publish", "init <dir>", ...).
func failureMessage(command string) string {
	name, _, _ := strings.Cut(command, " ")
	switch name {
	case "publish":
		return "Publish failed: %v"
	case "check":
		return "Check failed: %v"
	case "init":
		return "Init failed: %v"
	default:
		return "Error: %v"
	}
}

func handleError(g *Global, msg string, err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, context.Canceled) {
		slog.Warn("interrupted", logging.RunID(g.RunID))
	}

	attrs := []any{
		logging.Kind(string(core.KindOf(err))),
		logging.Error(err),
	}
	var coreErr *core.Error
	if errors.As(err, &coreErr) {
		if coreErr.Path != "" {
			attrs = append(attrs, logging.Path(coreErr.Path))
		}
		if coreErr.Status != 0 {
			attrs = append(attrs, logging.Status(coreErr.Status))
		}
	}
	slog.Error("run failed", attrs...)

	g.Out.PrintError(msg, err)
	g.Out.PrintStack(core.StackOf(err))

	return core.ExitCode(err)
}
