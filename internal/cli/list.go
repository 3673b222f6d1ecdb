package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rmagbanua/propstore/internal/property"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the public property catalogue",
		Long:  "Lists the public catalogue from the server. When the server is unreachable the bundled default catalogue is shown instead of failing.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
}

func runList() error {
	props, err := newPublicClient().ListProperties()
	if err != nil {
		// A page render never hard-fails on backend unavailability;
		// neither does the public listing here.
		fmt.Fprintf(os.Stderr, "warning: %v (showing bundled catalogue)\n", err)
		props = property.DefaultCatalogue()
	}

	if isJSON() {
		return printJSON(props)
	}

	return printPropertyTable(props)
}
