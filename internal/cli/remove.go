package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a property listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid property id: %s", args[0])
			}
			return runRemove(id)
		},
	}
}

func runRemove(id int64) error {
	api, err := newAdminClient()
	if err != nil {
		return err
	}

	removed, err := api.DeleteProperty(id)
	if err != nil {
		return adminErr(err)
	}

	if isJSON() {
		return printJSON(removed)
	}
	fmt.Printf("✓ Removed #%d %s\n", removed.ID, removed.Name)
	return nil
}
