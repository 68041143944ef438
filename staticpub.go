// Package staticpub publishes a single dynamically rendered page as a static
// site: it loads a registered app, obtains the page either by letting the app
// generate its own files or by an in-process GET of "/", writes index.html with
// a one-generation .bak backup, and copies a fixed list of assets next to it.
package staticpub

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"sort"
	"sync"

	"github.com/3-lines-studio/staticpub/internal/core"
)

// GenerateFunc writes every file the site needs into outputDir. A false
// result without an error is still a failed run.
type GenerateFunc func(ctx context.Context, outputDir string) (bool, error)

// App is a page-producing unit. Set Generate, Handler or both; Generate wins
// when both are present.
type App struct {
	Name     string
	Generate GenerateFunc
	Handler  http.Handler
}

func (a *App) Capabilities() core.Capabilities {
	if a == nil {
		return core.Capabilities{}
	}
	return core.Capabilities{
		CanGenerate: a.Generate != nil,
		CanServe:    a.Handler != nil,
	}
}

// Factory builds an App. It runs once per publish, when the app is loaded.
type Factory func() (*App, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register makes an app available under name. It panics on an empty name, a
// nil factory or a duplicate registration, like database/sql.Register.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if name == "" {
		panic("staticpub: Register called with empty name")
	}
	if factory == nil {
		panic("staticpub: Register factory is nil for " + name)
	}
	if _, dup := registry[name]; dup {
		panic("staticpub: Register called twice for " + name)
	}
	registry[name] = factory
}

// Names returns the registered app names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load instantiates the app registered under name. Every failure is a
// core.KindLoad error.
func Load(name string) (app *App, err error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, &core.Error{
			Kind: core.KindLoad,
			Op:   "load app " + name,
			Err:  fmt.Errorf("%w (registered: %v)", core.ErrAppNotFound, Names()),
		}
	}

	defer func() {
		if r := recover(); r != nil {
			app = nil
			err = &core.Error{
				Kind:  core.KindLoad,
				Op:    "load app " + name,
				Err:   fmt.Errorf("%w: %v", core.ErrPanic, r),
				Stack: debug.Stack(),
			}
		}
	}()

	app, err = factory()
	if err != nil {
		return nil, core.NewError(core.KindLoad, "load app "+name, err)
	}
	if app == nil {
		return nil, core.NewError(core.KindLoad, "load app "+name, fmt.Errorf("factory returned no app"))
	}
	if app.Name == "" {
		app.Name = name
	}

	return app, nil
}
