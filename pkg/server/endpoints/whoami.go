package endpoints

import (
	"net/http"
	"time"

	"github.com/breeqa/breeqa-server/pkg/identity"
	"github.com/breeqa/breeqa-server/pkg/server"
)

// WhoamiResponse represents the response from the /whoami endpoint
type WhoamiResponse struct {
	UserID   string    `json:"user_id"`
	Email    string    `json:"email"`
	ClientIP string    `json:"client_ip,omitempty"`
	TokenIAT time.Time `json:"token_iat,omitempty"`
	TokenExp time.Time `json:"token_exp,omitempty"`
}

// RegisterWhoamiEndpoint registers the /whoami endpoint
func RegisterWhoamiEndpoint(s *server.Server) {
	whoamiRouter := s.Router.PathPrefix("/whoami").Subrouter()
	whoamiRouter.Use(s.Session.Middleware)

	whoamiRouter.HandleFunc("", handleWhoami()).Methods("GET")
}

func handleWhoami() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "unable to determine identity")
			return
		}

		resp := WhoamiResponse{
			UserID:   id.UserID,
			Email:    id.Email,
			TokenIAT: id.IssuedAt,
			TokenExp: id.ExpiresAt,
		}
		if id.RemoteIP != nil {
			resp.ClientIP = id.RemoteIP.String()
		}

		respondWithData(w, http.StatusOK, resp)
	}
}
