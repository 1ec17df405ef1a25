package model_test

import (
	"testing"

	"github.com/m-mizutani/foundry/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestProvisionRequest_Validate(t *testing.T) {
	valid := func() model.ProvisionRequest {
		return model.ProvisionRequest{
			Email:         "student@example.com",
			Task:          "demo-repo",
			Round:         1,
			Nonce:         "ab12",
			EvaluationURL: "http://cb/eval",
		}
	}

	t.Run("valid request passes", func(t *testing.T) {
		req := valid()
		gt.NoError(t, req.Validate())
	})

	t.Run("brief and secret are optional", func(t *testing.T) {
		req := valid()
		req.Brief = ""
		req.Secret = ""
		gt.NoError(t, req.Validate())
	})

	tests := []struct {
		name   string
		mutate func(*model.ProvisionRequest)
	}{
		{"missing email", func(r *model.ProvisionRequest) { r.Email = "" }},
		{"missing task", func(r *model.ProvisionRequest) { r.Task = "" }},
		{"missing round", func(r *model.ProvisionRequest) { r.Round = 0 }},
		{"missing nonce", func(r *model.ProvisionRequest) { r.Nonce = "" }},
		{"missing evaluationURL", func(r *model.ProvisionRequest) { r.EvaluationURL = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)
			gt.Error(t, req.Validate())
		})
	}
}

func TestRepositoryHandle_PagesURL(t *testing.T) {
	repo := &model.RepositoryHandle{
		FullName:   "octocat/demo-repo",
		OwnerLogin: "octocat",
		Name:       "demo-repo",
	}
	gt.Equal(t, repo.PagesURL(), "https://octocat.github.io/demo-repo/")
}
