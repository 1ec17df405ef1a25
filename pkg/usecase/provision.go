package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/foundry/pkg/contents"
	"github.com/m-mizutani/foundry/pkg/domain/interfaces"
	"github.com/m-mizutani/foundry/pkg/domain/model"
)

type provisionUseCase struct {
	repoClient interfaces.RepositoryClient
	notifier   interfaces.Notifier
}

// NewProvision creates a new instance of ProvisionUseCase
func NewProvision(repoClient interfaces.RepositoryClient, notifier interfaces.Notifier) interfaces.ProvisionUseCase {
	return &provisionUseCase{
		repoClient: repoClient,
		notifier:   notifier,
	}
}

// HandleTask runs the provisioning workflow for a request and delivers the
// result to the request's evaluation URL. Any failing step aborts the whole
// workflow; already-created resources are left as-is (no rollback).
func (uc *provisionUseCase) HandleTask(ctx context.Context, req *model.ProvisionRequest) error {
	logger := ctxlog.From(ctx)

	logger.Info("starting provisioning workflow",
		"request_id", req.ID,
		"task", req.Task,
		"round", req.Round,
	)

	payload, err := uc.provision(ctx, req)
	if err != nil {
		return goerr.Wrap(err, "provisioning workflow aborted",
			goerr.V("request_id", req.ID),
			goerr.V("task", req.Task),
		)
	}

	if err := uc.notifier.Notify(ctx, req.EvaluationURL, payload); err != nil {
		return goerr.Wrap(err, "failed to deliver evaluation payload",
			goerr.V("request_id", req.ID),
			goerr.V("task", req.Task),
		)
	}

	return nil
}

func (uc *provisionUseCase) provision(ctx context.Context, req *model.ProvisionRequest) (*model.EvaluationPayload, error) {
	logger := ctxlog.From(ctx)

	repo, err := uc.repoClient.CreateRepository(ctx, req.Task, contents.Description, false)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create repository")
	}

	logger.Info("repository created",
		"full_name", repo.FullName,
		"html_url", repo.HTMLURL,
	)

	// License, README and placeholders have no ordering dependency among
	// themselves, but all must be attempted before the history lookup
	files := []*model.FileWrite{
		{Path: "LICENSE", Message: "Add MIT License", Content: contents.License()},
		{Path: "README.md", Message: "Add README.md", Content: contents.Readme(repo.Name, repo.FullName)},
	}
	files = append(files, contents.PlaceholderFiles()...)

	for _, file := range files {
		if err := uc.repoClient.WriteFile(ctx, repo.FullName, file); err != nil {
			return nil, goerr.Wrap(err, "failed to commit file", goerr.V("path", file.Path))
		}
		logger.Debug("file committed", "full_name", repo.FullName, "path", file.Path)
	}

	// Best-effort: the pages URL in the payload is derived, not read back
	if err := uc.repoClient.EnablePages(ctx, repo.FullName); err != nil {
		logger.Warn("failed to enable pages",
			"full_name", repo.FullName,
			"error", err,
		)
	}

	commits, err := uc.repoClient.ListCommits(ctx, repo.FullName)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list commits")
	}
	if len(commits) == 0 {
		return nil, goerr.New("repository has no commits", goerr.V("full_name", repo.FullName))
	}

	head := commits[0].SHA
	logger.Info("resolved head commit", "full_name", repo.FullName, "commit_sha", head)

	return model.NewEvaluationPayload(req, repo, head), nil
}
