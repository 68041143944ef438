package usecase

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/3-lines-studio/staticpub"
	"github.com/3-lines-studio/staticpub/internal/adapters/fs"
	apphttp "github.com/3-lines-studio/staticpub/internal/adapters/http"
)

type recordedLine struct {
	level string
	text  string
}

type recordingCLI struct {
	lines []recordedLine
}

func (c *recordingCLI) add(level, msg string, args ...any) {
	c.lines = append(c.lines, recordedLine{level: level, text: fmt.Sprintf(msg, args...)})
}

func (c *recordingCLI) PrintHeader(msg string, args ...any) { c.add("header", msg, args...) }
func (c *recordingCLI) PrintStep(msg string, args ...any) { c.add("step", msg, args...) }
func (c *recordingCLI) PrintSuccess(msg string, args ...any) { c.add("success", msg, args...) }
func (c *recordingCLI) PrintWarning(msg string, args ...any) { c.add("warning", msg, args...) }
func (c *recordingCLI) PrintError(msg string, args ...any) { c.add("error", msg, args...) }
func (c *recordingCLI) PrintFile(path string) { c.add("file", "%s", path) }
func (c *recordingCLI) PrintDone(msg string, args ...any) { c.add("done", msg, args...) }

func (c *recordingCLI) texts(level string) []string {
	var out []string
	for _, l := range c.lines {
		if l.level == level {
			out = append(out, l.text)
		}
	}
	return out
}

const testPage = "<!doctype html><html><body>hello</body></html>"

func pageHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(body))
	})
}

func handlerApp(h http.Handler) *staticpub.App {
	return &staticpub.App{Name: "test", Handler: h}
}

func newTestPublishService() (*PublishService, *recordingCLI) {
	cli := &recordingCLI{}
	return NewPublishService(fs.NewOSFileSystem(), apphttp.NewInProcessClient(), cli), cli
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func fileExists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	require.NoError(t, err)
	return true
}
