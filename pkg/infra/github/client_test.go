package github_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/foundry/pkg/domain/model"
	"github.com/m-mizutani/foundry/pkg/domain/types"
	"github.com/m-mizutani/foundry/pkg/infra/github"
)

func newStubServer(t *testing.T) (*httptest.Server, *http.ServeMux) {
	t.Helper()
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, mux
}

func TestClient_CreateRepository(t *testing.T) {
	srv, mux := newStubServer(t)

	var gotAuth string
	var gotBody map[string]any
	mux.HandleFunc("POST /user/repos", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"name": "demo-repo",
			"full_name": "octocat/demo-repo",
			"html_url": "https://github.com/octocat/demo-repo",
			"owner": {"login": "octocat"}
		}`))
	})

	client := gt.R1(github.NewClient(srv.URL, "test-token")).NoError(t)

	repo := gt.R1(client.CreateRepository(context.Background(), "demo-repo", "test description", false)).NoError(t)

	gt.Equal(t, repo.FullName, "octocat/demo-repo")
	gt.Equal(t, repo.HTMLURL, "https://github.com/octocat/demo-repo")
	gt.Equal(t, repo.OwnerLogin, "octocat")
	gt.Equal(t, repo.Name, "demo-repo")

	gt.Equal(t, gotAuth, "Bearer test-token")
	gt.Equal(t, gotBody["name"], "demo-repo")
	gt.Equal(t, gotBody["private"], false)
}

func TestClient_CreateRepository_RemoteStatus(t *testing.T) {
	srv, mux := newStubServer(t)

	mux.HandleFunc("POST /user/repos", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message": "name already exists"}`))
	})

	client := gt.R1(github.NewClient(srv.URL, "test-token")).NoError(t)

	_, err := client.CreateRepository(context.Background(), "demo-repo", "test description", false)
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, types.TagRemoteStatus))
	gt.False(t, goerr.HasTag(err, types.TagTransport))
}

func TestClient_CreateRepository_Transport(t *testing.T) {
	srv, _ := newStubServer(t)
	client := gt.R1(github.NewClient(srv.URL, "test-token")).NoError(t)
	srv.Close()

	_, err := client.CreateRepository(context.Background(), "demo-repo", "test description", false)
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, types.TagTransport))
}

func TestClient_WriteFile(t *testing.T) {
	srv, mux := newStubServer(t)

	var gotBody struct {
		Message string `json:"message"`
		Content string `json:"content"`
	}
	mux.HandleFunc("PUT /repos/octocat/demo-repo/contents/LICENSE", func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"content": {"path": "LICENSE"}}`))
	})

	client := gt.R1(github.NewClient(srv.URL, "test-token")).NoError(t)

	err := client.WriteFile(context.Background(), "octocat/demo-repo", &model.FileWrite{
		Path:    "LICENSE",
		Message: "Add MIT License",
		Content: "MIT License\n",
	})
	gt.NoError(t, err)

	gt.Equal(t, gotBody.Message, "Add MIT License")

	decoded := gt.R1(base64.StdEncoding.DecodeString(gotBody.Content)).NoError(t)
	gt.Equal(t, string(decoded), "MIT License\n")
}

func TestClient_WriteFile_InvalidFullName(t *testing.T) {
	srv, _ := newStubServer(t)
	client := gt.R1(github.NewClient(srv.URL, "test-token")).NoError(t)

	err := client.WriteFile(context.Background(), "not-a-full-name", &model.FileWrite{Path: "x"})
	gt.Error(t, err)
}

func TestClient_ListCommits(t *testing.T) {
	srv, mux := newStubServer(t)

	mux.HandleFunc("GET /repos/octocat/demo-repo/commits", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"sha": "cafe01"}, {"sha": "cafe00"}]`))
	})

	client := gt.R1(github.NewClient(srv.URL, "test-token")).NoError(t)

	commits := gt.R1(client.ListCommits(context.Background(), "octocat/demo-repo")).NoError(t)
	gt.Equal(t, len(commits), 2)
	gt.Equal(t, commits[0].SHA, "cafe01")
	gt.Equal(t, commits[1].SHA, "cafe00")
}

func TestClient_EnablePages(t *testing.T) {
	srv, mux := newStubServer(t)

	var gotBody map[string]any
	mux.HandleFunc("POST /repos/octocat/demo-repo/pages", func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"url": "https://api.github.com/repos/octocat/demo-repo/pages"}`))
	})

	client := gt.R1(github.NewClient(srv.URL, "test-token")).NoError(t)

	gt.NoError(t, client.EnablePages(context.Background(), "octocat/demo-repo"))

	source, ok := gotBody["source"].(map[string]any)
	gt.True(t, ok)
	gt.Equal(t, source["branch"], "main")
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := github.NewClient("://bad-url", "token")
	gt.Error(t, err)
}

func TestNewClient_TrailingSlash(t *testing.T) {
	srv, mux := newStubServer(t)

	called := false
	mux.HandleFunc("GET /repos/octocat/demo-repo/commits", func(w http.ResponseWriter, r *http.Request) {
		called = true
		gt.False(t, strings.Contains(r.URL.Path, "//"))
		_, _ = w.Write([]byte(`[]`))
	})

	// Explicit trailing slash must not produce double slashes in request paths
	client := gt.R1(github.NewClient(srv.URL+"/", "test-token")).NoError(t)
	_ = gt.R1(client.ListCommits(context.Background(), "octocat/demo-repo")).NoError(t)
	gt.True(t, called)
}
