package model

// EvaluationPayload is the result of a completed provisioning workflow,
// delivered to the caller-supplied evaluation URL.
type EvaluationPayload struct {
	Email     string `json:"email"`
	Task      string `json:"task"`
	Round     int    `json:"round"`
	Nonce     string `json:"nonce"`
	RepoURL   string `json:"repo_url"`
	CommitSHA string `json:"commit_sha"`
	PagesURL  string `json:"pages_url"`
}

// NewEvaluationPayload assembles the payload from the original request, the
// created repository and the resolved head commit.
func NewEvaluationPayload(req *ProvisionRequest, repo *RepositoryHandle, commitSHA string) *EvaluationPayload {
	return &EvaluationPayload{
		Email:     req.Email,
		Task:      req.Task,
		Round:     req.Round,
		Nonce:     req.Nonce,
		RepoURL:   repo.HTMLURL,
		CommitSHA: commitSHA,
		PagesURL:  repo.PagesURL(),
	}
}
