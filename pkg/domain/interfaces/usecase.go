package interfaces

import (
	"context"

	"github.com/m-mizutani/foundry/pkg/domain/model"
)

// ProvisionUseCase defines the interface for the provisioning workflow
type ProvisionUseCase interface {
	// HandleTask provisions a repository for the request and delivers the
	// result to the request's evaluation URL. Intended to run as a detached
	// background unit; the returned error is for logging only.
	HandleTask(ctx context.Context, req *model.ProvisionRequest) error
}

// Notifier delivers an evaluation payload to a caller-supplied URL
type Notifier interface {
	Notify(ctx context.Context, url string, payload *model.EvaluationPayload) error
}
