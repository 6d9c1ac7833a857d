package endpoints

import (
	"net/http"
	"os"

	"github.com/breeqa/breeqa-server/pkg/server"
	"github.com/breeqa/breeqa-server/pkg/server/store"
)

// StatusResponse represents the response from the /status endpoint
type StatusResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Database string `json:"database"`
}

// RegisterStatusEndpoints registers the status endpoint. No auth
// required; used by load balancer health checks.
func RegisterStatusEndpoints(s *server.Server) {
	s.Router.HandleFunc("/status", handleStatus(s.Health)).Methods("GET")
}

func handleStatus(health store.HealthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := os.Getenv("BREEQA_VERSION_DISPLAY")
		if version == "" {
			version = "0.1.0"
		}

		if err := health.Ping(); err != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, StatusResponse{
				Status:   "error",
				Version:  version,
				Database: "unreachable",
			})
			return
		}

		respondWithJSON(w, http.StatusOK, StatusResponse{
			Status:   "ok",
			Version:  version,
			Database: "ok",
		})
	}
}
