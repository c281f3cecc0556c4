package harness

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"os/exec"
	"sync"
	"testing"
	"time"
)

// startupTimeout bounds how long StartServer waits for /health
const startupTimeout = 15 * time.Second

// Server is a `fieldnotes serve` process running for one test
type Server struct {
	BaseURL string
	stderr  lockedBuffer
}

// Stderr returns what the server logged so far
func (s *Server) Stderr() string {
	return s.stderr.String()
}

// lockedBuffer is written by the exec copier while tests read it
type lockedBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// StartServer runs `fieldnotes serve` on a free loopback port and waits
// until /health answers. The process is stopped when the test ends.
func StartServer(tb testing.TB, env *TestEnvironment, args ...string) *Server {
	tb.Helper()

	addr := freeAddr(tb)
	srv := &Server{BaseURL: "http://" + addr}

	ctx, cancel := context.WithCancel(context.Background())
	cmd := exec.CommandContext(ctx, binaryPath, append([]string{"serve", "--addr", addr}, args...)...)
	cmd.Env = env.Environ()
	cmd.Stderr = &srv.stderr
	if err := cmd.Start(); err != nil {
		cancel()
		tb.Fatalf("Failed to start server: %v", err)
	}
	tb.Cleanup(func() {
		cancel()
		_ = cmd.Wait()
	})

	if err := waitHealthy(srv.BaseURL); err != nil {
		tb.Fatalf("Server did not become healthy: %v\nStderr: %s", err, srv.Stderr())
	}
	return srv
}

func freeAddr(tb testing.TB) string {
	tb.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		tb.Fatalf("Failed to reserve a port: %v", err)
	}
	defer l.Close()
	return l.Addr().String()
}

func waitHealthy(baseURL string) error {
	client := &http.Client{Timeout: time.Second}
	deadline := time.Now().Add(startupTimeout)
	for time.Now().Before(deadline) {
		resp, err := client.Get(baseURL + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("no answer from %s/health after %v", baseURL, startupTimeout)
}
