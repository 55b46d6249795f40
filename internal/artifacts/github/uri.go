package github

import (
	"fmt"
	"strings"
)

// Ref addresses one file in a repository.
// URI form: github://owner/repo/blob/<ref>/<path>.
type Ref struct {
	Owner string
	Repo  string
	Ref   string
	Path  string
}

// ParseURI splits a github:// dataset URI into its parts.
func ParseURI(uri string) (*Ref, error) {
	rest, ok := strings.CutPrefix(uri, "github://")
	if !ok {
		return nil, fmt.Errorf("not a github reference: %q", uri)
	}

	parts := strings.SplitN(rest, "/", 5)
	if len(parts) < 5 || parts[2] != "blob" {
		return nil, fmt.Errorf("github reference %q: want github://owner/repo/blob/ref/path", uri)
	}
	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("github reference %q: empty segment", uri)
		}
	}

	return &Ref{
		Owner: parts[0],
		Repo:  parts[1],
		Ref:   parts[3],
		Path:  parts[4],
	}, nil
}
