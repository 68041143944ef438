package core

import (
	"strings"
)

const (
	DefaultRemote       = "origin"
	DefaultDeployBranch = "gh-pages"
	DefaultLocalBranch  = "master"
	PlaceholderOwner    = "YOUR_USERNAME"
	PlaceholderRepo     = "YOUR_REPO"
)

type DeployInfo struct {
	Files        []string
	RemoteName   string
	RemoteURL    string
	Owner        string
	Repo         string
	LocalBranch  string
	DeployBranch string
	HasRemote    bool
}

func (d DeployInfo) UsesPlaceholders() bool {
	return !d.HasRemote
}

func (d DeployInfo) PlaceholderURL() string {
	return "https://github.com/" + PlaceholderOwner + "/" + PlaceholderRepo + ".git"
}

// ParseGitHubRemote extracts owner and repository from the https, ssh and
// scp-like URL forms git accepts for github.com.
func ParseGitHubRemote(url string) (owner, repo string, ok bool) {
	url = strings.TrimSpace(url)

	var path string
	switch {
	case strings.HasPrefix(url, "git@github.com:"):
		path = strings.TrimPrefix(url, "git@github.com:")
	case strings.HasPrefix(url, "ssh://git@github.com/"):
		path = strings.TrimPrefix(url, "ssh://git@github.com/")
	case strings.HasPrefix(url, "https://github.com/"):
		path = strings.TrimPrefix(url, "https://github.com/")
	case strings.HasPrefix(url, "http://github.com/"):
		path = strings.TrimPrefix(url, "http://github.com/")
	default:
		return "", "", false
	}

	path = strings.TrimSuffix(strings.TrimSuffix(path, "/"), ".git")
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}

	return parts[0], parts[1], true
}
