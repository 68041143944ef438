package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/3-lines-studio/staticpub/internal/core"
)

// RepoInspector reads, never writes, the git repository enclosing a
// directory. Deployment commands are only printed for the user to run.
type RepoInspector struct{}

func NewRepoInspector() *RepoInspector {
	return &RepoInspector{}
}

// DeployInfo fills remote and branch details for the repository containing
// dir. Outside a repository, or without the named remote, it falls back to
// placeholders and the default local branch.
func (i *RepoInspector) DeployInfo(dir, remoteName, deployBranch string) (core.DeployInfo, error) {
	if remoteName == "" {
		remoteName = core.DefaultRemote
	}
	if deployBranch == "" {
		deployBranch = core.DefaultDeployBranch
	}

	info := core.DeployInfo{
		RemoteName:   remoteName,
		RemoteURL:    "https://github.com/" + core.PlaceholderOwner + "/" + core.PlaceholderRepo + ".git",
		Owner:        core.PlaceholderOwner,
		Repo:         core.PlaceholderRepo,
		LocalBranch:  core.DefaultLocalBranch,
		DeployBranch: deployBranch,
	}

	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return info, nil
		}
		return info, fmt.Errorf("open repository at %s: %w", dir, err)
	}

	if branch, ok := currentBranch(repo); ok {
		info.LocalBranch = branch
	}

	remote, err := repo.Remote(remoteName)
	if err != nil {
		if errors.Is(err, gogit.ErrRemoteNotFound) {
			return info, nil
		}
		return info, fmt.Errorf("read remote %s: %w", remoteName, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return info, nil
	}

	info.HasRemote = true
	info.RemoteURL = urls[0]
	if owner, name, ok := core.ParseGitHubRemote(urls[0]); ok {
		info.Owner = owner
		info.Repo = name
	} else {
		info.Owner = ""
		info.Repo = ""
	}

	return info, nil
}

func currentBranch(repo *gogit.Repository) (string, bool) {
	head, err := repo.Head()
	if err == nil {
		if head.Name().IsBranch() {
			return head.Name().Short(), true
		}
		return "", false
	}

	// A fresh repository has no commits yet, so HEAD is a symbolic ref to an
	// unborn branch.
	ref, err := repo.Storer.Reference(plumbing.HEAD)
	if err != nil || ref.Type() != plumbing.SymbolicReference {
		return "", false
	}
	if !ref.Target().IsBranch() {
		return "", false
	}
	return ref.Target().Short(), true
}
