package model

import "fmt"

// RepositoryHandle identifies a newly created repository. It is returned by
// repository creation and consumed unchanged by every subsequent step.
type RepositoryHandle struct {
	FullName   string // owner/name
	HTMLURL    string
	OwnerLogin string
	Name       string
}

// PagesURL derives the GitHub Pages URL for the repository. The URL is
// deterministic and does not depend on Pages being enabled yet.
func (x *RepositoryHandle) PagesURL() string {
	return fmt.Sprintf("https://%s.github.io/%s/", x.OwnerLogin, x.Name)
}

// FileWrite describes a single file commit. Content is plain text; the
// repository client base64-encodes it for the contents API.
type FileWrite struct {
	Path    string
	Message string
	Content string
}

// Commit is a single entry of a repository's commit history
type Commit struct {
	SHA string
}
