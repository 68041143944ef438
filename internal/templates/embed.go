package templates

import (
	"embed"
	"io/fs"
	"strings"
)

//go:embed all:scaffold
var scaffoldFS embed.FS

// GitKeep is created inside the asset source directory so it can be committed
// while still empty.
const GitKeep = ".gitkeep"

func Scaffold() (fs.FS, error) {
	return fs.Sub(scaffoldFS, "scaffold")
}

type TemplateData struct {
	App          string
	SourceDir    string
	DeployBranch string
}

func ProcessFilename(filename string) (string, bool) {
	if before, ok := strings.CutSuffix(filename, ".tmpl"); ok {
		return before, true
	}
	return filename, false
}

func ProcessContent(content []byte, isTemplate bool, data TemplateData) []byte {
	if !isTemplate {
		return content
	}

	result := string(content)
	result = strings.ReplaceAll(result, "{{.App}}", data.App)
	result = strings.ReplaceAll(result, "{{.SourceDir}}", data.SourceDir)
	result = strings.ReplaceAll(result, "{{.DeployBranch}}", data.DeployBranch)

	return []byte(result)
}
