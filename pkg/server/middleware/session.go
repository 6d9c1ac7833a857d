package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/breeqa/breeqa-server/pkg/audit"
	"github.com/breeqa/breeqa-server/pkg/config"
	"github.com/breeqa/breeqa-server/pkg/identity"
)

// SessionClaims are the JWT claims carried by a session token
type SessionClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// SessionAuthenticator is middleware that validates session tokens and
// places the resulting identity in the request context.
type SessionAuthenticator struct {
	key []byte
	cfg *config.BreeqaConfig
}

// NewSessionAuthenticator creates a session authenticator with the
// given HMAC signing key.
func NewSessionAuthenticator(key []byte, cfg *config.BreeqaConfig) *SessionAuthenticator {
	return &SessionAuthenticator{key: key, cfg: cfg}
}

// IssueToken signs a session token for the user. Used by the CLI and
// by tests; production tokens normally come from the identity provider
// sharing the same key.
func (s *SessionAuthenticator) IssueToken(userID, email string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := SessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

// Middleware returns an HTTP middleware that validates session tokens
func (s *SessionAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		remoteIP := s.remoteIP(r)

		authHeader := r.Header.Get("Authorization")
		if len(authHeader) == 0 {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("Authorization missing"))
			return
		}

		tokenStr, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("Malformed authorization header"))
			return
		}

		claims := &SessionClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.key, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid || claims.Subject == "" {
			audit.Log(audit.AuthenticateEvent{
				UserID:       claims.Subject,
				Email:        claims.Email,
				ClientIP:     remoteIP.String(),
				Success:      false,
				ErrorMessage: errMessage(err),
			})
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("Invalid or expired token"))
			return
		}

		id := &identity.Identity{
			UserID: claims.Subject,
			Email:  claims.Email,
		}
		if claims.IssuedAt != nil {
			id.IssuedAt = claims.IssuedAt.Time
		}
		if claims.ExpiresAt != nil {
			id.ExpiresAt = claims.ExpiresAt.Time
		}
		id.WithRemoteIP(remoteIP)

		next.ServeHTTP(w, r.WithContext(identity.Set(r.Context(), id)))
	})
}

// remoteIP resolves the client address, honoring X-Forwarded-For only
// when the direct peer is a trusted proxy.
func (s *SessionAuthenticator) remoteIP(r *http.Request) net.IP {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	if s.cfg != nil && s.cfg.IsTrustedProxy(host) {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			// Leftmost address is the original client
			first := strings.TrimSpace(strings.Split(fwd, ",")[0])
			if ip := net.ParseIP(first); ip != nil {
				return ip
			}
		}
	}

	return net.ParseIP(host)
}

func errMessage(err error) string {
	if err == nil {
		return "invalid token"
	}
	return err.Error()
}
