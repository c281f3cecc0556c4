package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"fieldnotes/internal/api"
	"fieldnotes/internal/config"
	"fieldnotes/internal/logging"
	"fieldnotes/internal/server"
	"fieldnotes/migrations"
)

// ServeCmd runs the HTTP API and, when an SSH address is set, the SSH terminal UI
type ServeCmd struct {
	Addr               string `help:"HTTP API listen address" env:"FIELDNOTES_API_ADDR" default:"127.0.0.1:7420"`
	AuthorizedKeysPath string `help:"authorized_keys file checked for SSH logins (default ~/.ssh/authorized_keys)" name:"authorized-keys"`
	ErrorClearDelay    int    `help:"Seconds before error messages auto-clear in SSH sessions" default:"10"`
	HostKeyPath        string `help:"SSH host key path, generated when missing" name:"host-key"`
	Migrate            bool   `help:"Apply the embedded migrations before serving"`
	Quiet              bool   `help:"Do not echo server logs to stderr" short:"q"`
	SSHAddr            string `help:"Also serve the terminal UI over SSH on this address" name:"ssh-addr" env:"FIELDNOTES_SSH_ADDR"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	s.applySettings(cli.settings)
	if !s.Quiet {
		logging.AttachConsole(os.Stderr, slog.LevelInfo)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if s.Migrate {
		logging.Logger.Info("Applying embedded migrations before serving")
		service := cli.Container.NewMigrationService(os.Stdout)
		if _, err := service.Apply(ctx, migrations.Files, migrations.Ordered); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	svc, err := cli.Container.Services(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	apiServer := api.NewServer(svc.Sessions, svc.Projects, svc.Dashboard, api.Config{Addr: s.Addr})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return apiServer.ListenAndServe(gctx)
	})

	if s.SSHAddr != "" {
		sshServer, err := server.NewServer(svc.Sessions, svc.Dashboard, server.Config{
			Addr:               s.SSHAddr,
			AuthorizedKeysPath: s.AuthorizedKeysPath,
			ErrorClearDelay:    time.Duration(s.ErrorClearDelay) * time.Second,
			HostKeyPath:        s.HostKeyPath,
		})
		if err != nil {
			return err
		}
		g.Go(func() error {
			return sshServer.Start(gctx)
		})
	}

	fmt.Printf("fieldnotes API listening on http://%s\n", s.Addr)
	if s.SSHAddr != "" {
		fmt.Printf("fieldnotes terminal UI available over SSH on %s\n", s.SSHAddr)
	}

	return g.Wait()
}

// applySettings fills flags still at their defaults from settings.json
func (s *ServeCmd) applySettings(settings *config.Settings) {
	if settings != nil {
		if s.Addr == config.DefaultAPIAddr {
			if _, hasEnv := os.LookupEnv("FIELDNOTES_API_ADDR"); !hasEnv && settings.APIAddr != "" {
				s.Addr = settings.APIAddr
			}
		}
		if s.SSHAddr == "" && settings.SSHAddr != "" {
			s.SSHAddr = settings.SSHAddr
		}
		if s.HostKeyPath == "" && settings.SSHHostKeyPath != "" {
			s.HostKeyPath = settings.SSHHostKeyPath
		}
		if s.ErrorClearDelay == config.DefaultErrorClearDelay && settings.ErrorClearDelay != nil {
			s.ErrorClearDelay = *settings.ErrorClearDelay
		}
	}

	if s.HostKeyPath == "" {
		s.HostKeyPath = config.GetHostKeyPath()
	}
	s.HostKeyPath = config.ExpandPath(s.HostKeyPath)
	if s.AuthorizedKeysPath != "" {
		s.AuthorizedKeysPath = config.ExpandPath(s.AuthorizedKeysPath)
	}
}
