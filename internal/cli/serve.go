package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rmagbanua/propstore/internal/auth"
	"github.com/rmagbanua/propstore/internal/config"
	"github.com/rmagbanua/propstore/internal/logging"
	"github.com/rmagbanua/propstore/internal/store"
	"github.com/rmagbanua/propstore/internal/store/jsonstore"
	"github.com/rmagbanua/propstore/internal/store/remote"
	"github.com/rmagbanua/propstore/internal/store/sqlitestore"
	"github.com/rmagbanua/propstore/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the property store API",
		Long:  "Start the HTTP server backing the public site and the admin console.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "port to listen on (default: PROPSTORE_PORT or 4000)")

	return cmd
}

func runServe(port int) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if port != 0 {
		cfg.Port = port
	}

	logging.Setup(cfg.DevMode, cfg.LogLevel)

	props, users, authLog, err := openStores(cfg)
	if err != nil {
		return err
	}

	srv := web.NewServer(props, users, authLog, auth.NewMemorySessions())
	return srv.ListenAndServe(cfg.Port)
}

// openStores builds the persistence layer for the configured backend.
// The json and sqlite backends serve all three collections; the remote
// backend serves properties from the hosted store while admin identities
// and the auth log stay in local files.
func openStores(cfg config.Config) (store.Properties, store.Users, store.AuthLog, error) {
	adminUser, adminPass := bootstrapCredentials(cfg)

	switch cfg.Backend {
	case config.BackendSQLite:
		s, err := sqlitestore.Open(filepath.Join(cfg.DataDir, "propstore.db"), adminUser, adminPass)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return s, s, s, nil

	case config.BackendRemote:
		local, err := jsonstore.Open(cfg.DataDir, adminUser, adminPass)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("opening local store: %w", err)
		}
		var props store.Properties = remote.New(cfg.RemoteURL, cfg.RemoteAPIKey)
		if cfg.RemoteFallback {
			props = &store.FallbackProperties{Primary: props, Local: local}
		}
		return props, local, local, nil

	default:
		s, err := jsonstore.Open(cfg.DataDir, adminUser, adminPass)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("opening json store: %w", err)
		}
		return s, s, s, nil
	}
}

func bootstrapCredentials(cfg config.Config) (string, string) {
	user, pass := cfg.AdminUsername, cfg.AdminPassword
	if user == "" {
		user = auth.BootstrapUsername
	}
	if pass == "" {
		pass = auth.BootstrapPassword
		slog.Warn("using default bootstrap admin password, change it immediately", "username", user)
	}
	return user, pass
}
