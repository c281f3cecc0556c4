package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"fieldnotes/internal/logging"
	"fieldnotes/internal/ports"
)

// shutdownTimeout bounds graceful shutdown of open SSH sessions
const shutdownTimeout = 30 * time.Second

// Config configures the SSH server
type Config struct {
	Addr               string
	AuthorizedKeysPath string // defaults to ~/.ssh/authorized_keys
	ErrorClearDelay    time.Duration
	HostKeyPath        string // generated on first start when missing
}

// Server serves the terminal UI over SSH using in-process services
type Server struct {
	authorizedKeysPath string
	config             Config
	dashboards         ports.DashboardAPI
	sessions           ports.SessionAPI
	wishServer         *ssh.Server
}

// NewServer creates a new SSH server instance
func NewServer(sessions ports.SessionAPI, dashboards ports.DashboardAPI, config Config) (*Server, error) {
	s := &Server{
		authorizedKeysPath: config.AuthorizedKeysPath,
		config:             config,
		dashboards:         dashboards,
		sessions:           sessions,
	}

	if s.authorizedKeysPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		s.authorizedKeysPath = filepath.Join(homeDir, ".ssh", "authorized_keys")
	}

	if err := os.MkdirAll(filepath.Dir(config.HostKeyPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(config.Addr),
		wish.WithHostKeyPath(config.HostKeyPath),
		wish.WithPublicKeyAuth(s.authorizePublicKey),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	logging.Logger.Info("Starting SSH server", "address", s.config.Addr)

	errCh := make(chan error, 1)
	go func() {
		if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("SSH server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down SSH server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}
