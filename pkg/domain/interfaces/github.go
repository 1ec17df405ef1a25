package interfaces

import (
	"context"

	"github.com/m-mizutani/foundry/pkg/domain/model"
)

// RepositoryClient defines the operations the provisioning workflow needs
// from the repository hosting API.
type RepositoryClient interface {
	// CreateRepository creates a new repository owned by the authenticated
	// user and returns its handle
	CreateRepository(ctx context.Context, name, description string, private bool) (*model.RepositoryHandle, error)

	// WriteFile creates or overwrites a single file in the repository,
	// identified by its full name (owner/name)
	WriteFile(ctx context.Context, repoFullName string, file *model.FileWrite) error

	// ListCommits returns the repository's commit history, most recent first
	ListCommits(ctx context.Context, repoFullName string) ([]*model.Commit, error)

	// EnablePages enables GitHub Pages for the repository on the main branch
	EnablePages(ctx context.Context, repoFullName string) error
}
