package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"

	"github.com/m-mizutani/foundry/pkg/domain/interfaces"
	"github.com/m-mizutani/foundry/pkg/domain/model"
	"github.com/m-mizutani/foundry/pkg/utils/async"
)

// TaskHandler accepts task-creation requests and schedules the provisioning
// workflow as a detached background unit. The caller always gets its
// acknowledgment before any remote call happens; background failures are
// invisible to it.
type TaskHandler struct {
	secretKey   string
	provisionUC interfaces.ProvisionUseCase
	dispatcher  *async.Dispatcher
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(secretKey string, provisionUC interfaces.ProvisionUseCase, dispatcher *async.Dispatcher) *TaskHandler {
	return &TaskHandler{
		secretKey:   secretKey,
		provisionUC: provisionUC,
		dispatcher:  dispatcher,
	}
}

// Handle processes a task-creation request
func (h *TaskHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Error("Failed to read request body", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
		return
	}
	defer r.Body.Close()

	var req model.ProvisionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		logger.Error("Failed to parse request body", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
		return
	}

	if h.secretKey != "" && req.Secret != h.secretKey {
		logger.Warn("Rejected request with invalid secret", "task", req.Task)
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "Forbidden"})
		return
	}

	req.ID = uuid.NewString()

	// Acknowledge first. The caller only ever sees the usercode echo; the
	// outcome of the workflow is reported to the evaluation URL instead.
	writeJSON(w, http.StatusOK, map[string]string{"usercode": req.Task})

	if err := req.Validate(); err != nil {
		logger.Warn("Task request not processed", "request_id", req.ID, "error", err)
		return
	}

	logger.Info("Task request accepted",
		"request_id", req.ID,
		"task", req.Task,
		"round", req.Round,
	)

	h.dispatcher.Dispatch(ctx, func(ctx context.Context) error {
		return h.provisionUC.HandleTask(ctx, &req)
	})
}
