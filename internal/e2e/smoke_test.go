package e2e

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	require.NoError(t, writeSessionFixture(home))

	var votes atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			assert.Equal(t, "7", r.Header.Get("X-User-Id"))
			votes.Add(1)
			_, _ = io.WriteString(w, `{"success":true}`)
		default:
			_, _ = fmt.Fprintf(w, `{"nominations":[{"id":3,"title":"Breakthrough of the year","votes":%d}]}`, 4+votes.Load())
		}
	}))
	defer server.Close()

	stdout, stderr, err := runAwards(t, binaryPath, home, server.URL, "nominations")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Breakthrough of the year")
	assert.Contains(t, stdout, "Signed in as Grace (id 7)")

	stdout, stderr, err = runAwards(t, binaryPath, home, server.URL, "vote", "3")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Your vote has been counted!")
	assert.Contains(t, stdout, "5 votes")
	assert.Equal(t, int64(1), votes.Load())

	stdout, stderr, err = runAwards(t, binaryPath, home, server.URL, "logout")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "You have been logged out.")

	stdout, stderr, err = runAwards(t, binaryPath, home, server.URL, "whoami")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Not signed in")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "awards-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/awards")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build awards binary: %s", string(output))
	return binaryPath
}

func runAwards(t *testing.T, binaryPath, home, baseURL string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = home
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"AWARDS_API_BASE_URL="+baseURL,
		"AWARDS_SECRETS_BACKEND=file",
	)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeSessionFixture(home string) error {
	configDir := filepath.Join(home, ".awards")
	tokenDir := filepath.Join(configDir, "secrets", "awards", "voter", "7")
	if err := os.MkdirAll(tokenDir, 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(tokenDir, "token"), []byte("token-7"), 0o600); err != nil {
		return err
	}

	session := `version = 1

[voter]
id = 7
name = "Grace"
token_ref = "awards/voter/7/token"
`

	return os.WriteFile(filepath.Join(configDir, "session.toml"), []byte(session), 0o600)
}
