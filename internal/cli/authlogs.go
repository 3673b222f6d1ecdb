package cli

import (
	"github.com/spf13/cobra"
)

func newAuthLogsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "authlogs",
		Short: "Show recent login attempts",
		Long:  "Shows the retained login attempts, newest first. The server keeps the most recent 500.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthLogs()
		},
	}
}

func runAuthLogs() error {
	api, err := newAdminClient()
	if err != nil {
		return err
	}

	logs, err := api.AuthLogs()
	if err != nil {
		return adminErr(err)
	}

	if isJSON() {
		return printJSON(logs)
	}
	return printAuthLogTable(logs)
}
