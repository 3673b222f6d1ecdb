package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid property id: %s", args[0])
			}
			return runShow(id)
		},
	}
}

func runShow(id int64) error {
	props, err := newPublicClient().ListProperties()
	if err != nil {
		return err
	}

	for _, p := range props {
		if p.ID == id {
			if isJSON() {
				return printJSON(p)
			}
			printPropertyDetail(p)
			return nil
		}
	}

	return fmt.Errorf("property %d not found", id)
}
