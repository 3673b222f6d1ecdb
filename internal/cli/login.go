package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rmagbanua/propstore/internal/client"
)

func newLoginCmd() *cobra.Command {
	var server string
	var username string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as an admin and store the session token",
		Long:  "Authenticates against the property store API and stores the issued session token for subsequent admin commands. Tokens expire after eight hours.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(server, username)
		},
	}

	cmd.Flags().StringVar(&server, "server", "", "server URL (default: from config or http://localhost:4000)")
	cmd.Flags().StringVar(&username, "username", "", "admin username (prompted when omitted)")

	return cmd
}

func runLogin(serverFlag, username string) error {
	serverURL := serverFlag
	if serverURL == "" {
		serverURL = getServerURL()
	}

	if username == "" {
		fmt.Print("Username: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		username = strings.TrimSpace(line)
	}
	if username == "" {
		return fmt.Errorf("username is required")
	}

	password, err := readPassword()
	if err != nil {
		return err
	}

	api := client.New(strings.TrimRight(serverURL, "/"), "")
	resp, err := api.Login(username, password)
	if err != nil {
		if err == client.ErrUnauthorized {
			return fmt.Errorf("invalid credentials")
		}
		return err
	}

	// Load existing config to preserve other fields
	cfg, err := loadConfig()
	if err != nil {
		cfg = CLIConfig{}
	}

	cfg.Token = resp.Token
	cfg.Username = resp.Username
	if serverFlag != "" {
		cfg.ServerURL = strings.TrimRight(serverFlag, "/")
	}

	if err := saveConfig(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("✓ Logged in as %s.\n", resp.Username)
	return nil
}

// readPassword prompts for a password without echoing it. Falls back to a
// plain line read when stdin is not a terminal (piped input, tests).
func readPassword() (string, error) {
	fmt.Print("Password: ")

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(raw), nil
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
