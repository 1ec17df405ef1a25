package model

import "github.com/m-mizutani/goerr/v2"

// ProvisionRequest represents an inbound task-creation request. A request
// lives only for the duration of its background workflow and is never
// persisted.
type ProvisionRequest struct {
	ID            string `json:"-"` // Internal log-correlation ID, assigned on receipt
	Email         string `json:"email"`
	Secret        string `json:"secret,omitempty"`
	Task          string `json:"task"` // Doubles as the repository name
	Round         int    `json:"round"`
	Nonce         string `json:"nonce"`
	EvaluationURL string `json:"evaluationURL"`
	Brief         string `json:"brief,omitempty"`
}

// Validate checks the presence of all fields required to run the provisioning
// workflow. Round 0 is treated as absent because the JSON zero value is
// indistinguishable from a missing field.
func (x *ProvisionRequest) Validate() error {
	var missing []string

	if x.Email == "" {
		missing = append(missing, "email")
	}
	if x.Task == "" {
		missing = append(missing, "task")
	}
	if x.Round == 0 {
		missing = append(missing, "round")
	}
	if x.Nonce == "" {
		missing = append(missing, "nonce")
	}
	if x.EvaluationURL == "" {
		missing = append(missing, "evaluationURL")
	}

	if len(missing) > 0 {
		return goerr.New("missing required fields", goerr.V("fields", missing))
	}

	return nil
}
