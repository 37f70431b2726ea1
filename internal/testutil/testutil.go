// Package testutil provides shared test helpers for config files and a fake answer API.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig writes a config file pointing at endpoint and returns its path.
func SetupTestConfig(t *testing.T, tmpDir, endpoint string) string {
	t.Helper()

	configContent := fmt.Sprintf(`api:
  endpoint: %s
  user_agent: yesno-test
display:
  no_color: true
  format: text
`, endpoint)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// Response is one canned reply of the fake answer API.
type Response struct {
	StatusCode int
	Body       string
}

// AnswerServer replays Responses in order and repeats the last one once they run out.
type AnswerServer struct {
	*httptest.Server
	calls atomic.Int32
}

// NewAnswerServer starts a fake answer API that is closed when the test ends.
func NewAnswerServer(t *testing.T, responses ...Response) *AnswerServer {
	t.Helper()
	require.NotEmpty(t, responses)

	server := &AnswerServer{}
	server.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		index := int(server.calls.Add(1)) - 1
		if index >= len(responses) {
			index = len(responses) - 1
		}
		response := responses[index]

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(response.StatusCode)
		_, _ = w.Write([]byte(response.Body))
	}))
	t.Cleanup(server.Close)
	return server
}

// Calls returns how many requests the server has received.
func (server *AnswerServer) Calls() int {
	return int(server.calls.Load())
}
