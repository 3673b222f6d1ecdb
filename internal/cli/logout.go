package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session token",
		Long:  "Removes the stored session token from the config file. The server-side session simply expires.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout()
		},
	}
}

func runLogout() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.Token == "" {
		fmt.Println("Not logged in.")
		return nil
	}

	if err := clearToken(); err != nil {
		return fmt.Errorf("clearing token: %w", err)
	}

	fmt.Println("✓ Logged out.")
	return nil
}
