package http

import (
	"net/http"

	"github.com/m-mizutani/foundry/pkg/domain/model"
	"github.com/m-mizutani/foundry/pkg/domain/types"
)

// handleRoot is the liveness probe kept for compatibility with existing
// callers of the task intake API
func handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello, World!"})
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, &model.HealthStatus{
		Status:  "healthy",
		Service: types.ServiceName,
		Version: types.Version,
	})
}
