package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rmagbanua/propstore/internal/property"
)

func newUpdateCmd() *cobra.Command {
	var flags propertyFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a property listing",
		Long:  "Applies a partial update to an existing listing. Only the flags you set are changed; everything else is preserved.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid property id: %s", args[0])
			}
			return runUpdate(id, flags.patch(cmd))
		},
	}

	flags.register(cmd)

	return cmd
}

func runUpdate(id int64, pt property.Patch) error {
	api, err := newAdminClient()
	if err != nil {
		return err
	}

	updated, err := api.UpdateProperty(id, pt)
	if err != nil {
		return adminErr(err)
	}

	if isJSON() {
		return printJSON(updated)
	}
	printPropertyDetail(*updated)
	return nil
}
