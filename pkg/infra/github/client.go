package github

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"

	"github.com/m-mizutani/foundry/pkg/domain/interfaces"
	"github.com/m-mizutani/foundry/pkg/domain/model"
	"github.com/m-mizutani/foundry/pkg/domain/types"
)

type client struct {
	gh *github.Client
}

// NewClient creates a repository hosting client authenticated with a bearer
// token. An empty apiURL targets the public GitHub API; any other value (e.g.
// a GHES or stub endpoint) overrides the base URL.
func NewClient(apiURL, token string) (interfaces.RepositoryClient, error) {
	httpClient := http.DefaultClient
	if token != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), src)
	}

	gh := github.NewClient(httpClient)
	if apiURL != "" {
		baseURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid hosting API base URL", goerr.V("url", apiURL))
		}
		// go-github requires a trailing slash to resolve relative paths
		if !strings.HasSuffix(baseURL.Path, "/") {
			baseURL.Path += "/"
		}
		gh.BaseURL = baseURL
	}

	return &client{gh: gh}, nil
}

// CreateRepository creates a public or private repository for the
// authenticated user
func (x *client) CreateRepository(ctx context.Context, name, description string, private bool) (*model.RepositoryHandle, error) {
	repo, _, err := x.gh.Repositories.Create(ctx, "", &github.Repository{
		Name:        github.Ptr(name),
		Description: github.Ptr(description),
		Private:     github.Ptr(private),
	})
	if err != nil {
		return nil, classify(err, "failed to create repository", goerr.V("name", name))
	}

	return &model.RepositoryHandle{
		FullName:   repo.GetFullName(),
		HTMLURL:    repo.GetHTMLURL(),
		OwnerLogin: repo.GetOwner().GetLogin(),
		Name:       repo.GetName(),
	}, nil
}

// WriteFile commits a single file via the contents API. go-github
// base64-encodes the content on the wire.
func (x *client) WriteFile(ctx context.Context, repoFullName string, file *model.FileWrite) error {
	owner, repo, err := splitFullName(repoFullName)
	if err != nil {
		return err
	}

	_, _, err = x.gh.Repositories.CreateFile(ctx, owner, repo, file.Path, &github.RepositoryContentFileOptions{
		Message: github.Ptr(file.Message),
		Content: []byte(file.Content),
	})
	if err != nil {
		return classify(err, "failed to write file",
			goerr.V("repo", repoFullName), goerr.V("path", file.Path))
	}

	return nil
}

// ListCommits returns the repository's commit history, most recent first
func (x *client) ListCommits(ctx context.Context, repoFullName string) ([]*model.Commit, error) {
	owner, repo, err := splitFullName(repoFullName)
	if err != nil {
		return nil, err
	}

	commits, _, err := x.gh.Repositories.ListCommits(ctx, owner, repo, nil)
	if err != nil {
		return nil, classify(err, "failed to list commits", goerr.V("repo", repoFullName))
	}

	result := make([]*model.Commit, 0, len(commits))
	for _, c := range commits {
		result = append(result, &model.Commit{SHA: c.GetSHA()})
	}
	return result, nil
}

// EnablePages enables GitHub Pages serving from the main branch
func (x *client) EnablePages(ctx context.Context, repoFullName string) error {
	owner, repo, err := splitFullName(repoFullName)
	if err != nil {
		return err
	}

	_, _, err = x.gh.Repositories.EnablePages(ctx, owner, repo, &github.Pages{
		Source: &github.PagesSource{
			Branch: github.Ptr("main"),
		},
	})
	if err != nil {
		return classify(err, "failed to enable pages", goerr.V("repo", repoFullName))
	}

	return nil
}

func splitFullName(fullName string) (string, string, error) {
	owner, repo, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || repo == "" {
		return "", "", goerr.New("invalid repository full name", goerr.V("full_name", fullName))
	}
	return owner, repo, nil
}

// classify tags an API error as either a non-2xx remote response or a
// transport failure. No finer taxonomy is exposed.
func classify(err error, msg string, values ...goerr.Option) error {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) {
		values = append(values,
			goerr.T(types.TagRemoteStatus),
			goerr.V("status", errResp.Response.StatusCode))
		return goerr.Wrap(err, msg, values...)
	}

	values = append(values, goerr.T(types.TagTransport))
	return goerr.Wrap(err, msg, values...)
}
