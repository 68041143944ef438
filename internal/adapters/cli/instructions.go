package cli

import (
	"fmt"
	"strings"

	"github.com/3-lines-studio/staticpub/internal/core"
)

// PrintDeployInstructions explains how to push the published files to a
// GitHub Pages branch. Nothing is executed.
func (o *Output) PrintDeployInstructions(pagePath string, info core.DeployInfo) {
	w := o.stdout
	line := func(msg string, args ...any) {
		fmt.Fprintln(w, o.Sprintf(msg, args...))
	}
	numbered := func(items []string) {
		for i, item := range items {
			fmt.Fprintf(w, "%d. %s\n", i+1, item)
		}
	}

	fmt.Fprintln(w)
	line("Static HTML generated at: %s", pagePath)

	fmt.Fprintln(w)
	fmt.Fprintln(w, o.Bold(o.Sprintf("How to deploy to GitHub Pages:")))
	line("Option 1: manual deployment")
	numbered([]string{
		o.Sprintf("Make sure you are in the project root"),
		o.Sprintf("Add and commit all files"),
		o.Sprintf("Push the files to the %s branch of your GitHub repository", info.DeployBranch),
	})

	fmt.Fprintln(w)
	line("Example commands:")
	for _, cmd := range deployCommands(info) {
		fmt.Fprintln(w, o.Gray(cmd))
	}

	fmt.Fprintln(w)
	line("Option 2: automatic deployment (GitHub Actions)")
	numbered([]string{
		o.Sprintf("GitHub Actions runs every day at 00:00 UTC (08:00 Beijing time)"),
		o.Sprintf("It can also be triggered manually from the Actions page of the repository"),
		o.Sprintf("The automated build regenerates the static files and commits them to the current branch"),
	})

	fmt.Fprintln(w)
	fmt.Fprintln(w, o.Yellow(o.Sprintf("Notes:")))
	var notes []string
	if info.UsesPlaceholders() {
		notes = append(notes, o.Sprintf("Replace %s and %s with your GitHub user name and repository name", core.PlaceholderOwner, core.PlaceholderRepo))
	}
	notes = append(notes,
		o.Sprintf("Make sure the repository permissions are configured; GitHub Actions can read the repository by default"),
		o.Sprintf("Private repositories may need additional secrets"),
	)
	numbered(notes)
}

func deployCommands(info core.DeployInfo) []string {
	files := info.Files
	if len(files) == 0 {
		files = []string{core.PageFile}
	}

	remote := info.RemoteName
	if remote == "" {
		remote = core.DefaultRemote
	}
	local := info.LocalBranch
	if local == "" {
		local = core.DefaultLocalBranch
	}
	target := info.DeployBranch
	if target == "" {
		target = core.DefaultDeployBranch
	}

	cmds := []string{
		"git add " + strings.Join(files, " "),
		"git commit -m 'Deploy to GitHub Pages'",
	}
	if !info.HasRemote {
		cmds = append(cmds, fmt.Sprintf("git remote add %s %s", remote, info.PlaceholderURL()))
	}
	cmds = append(cmds, fmt.Sprintf("git push %s %s:%s", remote, local, target))
	return cmds
}
