// Package homepage is the bundled demo app: a single personal start page
// served by a chi router. It registers itself twice, once exposing only its
// HTTP handler and once with a generator that writes index.html directly.
package homepage

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/3-lines-studio/staticpub"
)

const (
	Name         = "homepage"
	GenerateName = "homepage-generate"
)

//go:embed templates/index.html
var templateFS embed.FS

type Link struct {
	Label string
	URL   string
}

type Options struct {
	Lang       string
	Title      string
	Tagline    string
	Background string
	Links      []Link

	// AssetDir is served under / for files the page references, such as
	// the background image. Only used by the live handler.
	AssetDir string
}

func DefaultOptions() Options {
	return Options{
		Lang:       "zh-CN",
		Title:      "我的主页",
		Tagline:    "欢迎来到我的个人主页",
		Background: "background.jpg",
		Links: []Link{
			{Label: "GitHub", URL: "https://github.com/"},
			{Label: "Blog", URL: "https://github.com/blog"},
		},
		AssetDir: "static_build",
	}
}

type Site struct {
	opts Options
	tmpl *template.Template
}

func New(opts Options) (*Site, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse homepage template: %w", err)
	}
	return &Site{opts: opts, tmpl: tmpl}, nil
}

// Render produces the page. The output depends only on the options, so
// repeated renders are byte-identical.
func (s *Site) Render() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "index.html", s.opts); err != nil {
		return nil, fmt.Errorf("render homepage: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *Site) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.SetHeader("X-Content-Type-Options", "nosniff"))

	r.Get("/", s.handleIndex)
	if s.opts.AssetDir != "" && s.opts.Background != "" {
		r.Get("/"+s.opts.Background, s.handleBackground)
	}

	return r
}

func (s *Site) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := s.Render()
	if err != nil {
		slog.Error("homepage render failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func (s *Site) handleBackground(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(s.opts.AssetDir, s.opts.Background))
}

// Generate writes index.html into outputDir.
func (s *Site) Generate(ctx context.Context, outputDir string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	page, err := s.Render()
	if err != nil {
		return false, err
	}

	path := filepath.Join(outputDir, "index.html")
	if err := os.WriteFile(path, page, 0644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}

func init() {
	staticpub.Register(Name, func() (*staticpub.App, error) {
		site, err := New(DefaultOptions())
		if err != nil {
			return nil, err
		}
		return &staticpub.App{Name: Name, Handler: site.Handler()}, nil
	})

	staticpub.Register(GenerateName, func() (*staticpub.App, error) {
		site, err := New(DefaultOptions())
		if err != nil {
			return nil, err
		}
		return &staticpub.App{Name: GenerateName, Generate: site.Generate}, nil
	})
}
