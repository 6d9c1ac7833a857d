package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/breeqa/breeqa-server/pkg/audit"
	"github.com/breeqa/breeqa-server/pkg/identity"
	"github.com/breeqa/breeqa-server/pkg/rbac"
)

func TestMain(m *testing.M) {
	audit.SetEnabled(false)
	m.Run()
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func rolePtr(r rbac.Role) *rbac.Role {
	return &r
}

// serve routes one request through a fresh router so mux path
// variables resolve, with the identity already in the context.
func serve(t *testing.T, method, pattern, target string, body string, id *identity.Identity, handler http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	router := mux.NewRouter()
	router.HandleFunc(pattern, handler).Methods(method)

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if id != nil {
		req = req.WithContext(identity.Set(req.Context(), id))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}
