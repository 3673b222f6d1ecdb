// Package cli defines the cobra command tree for the property store.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmagbanua/propstore/internal/client"
)

var flagFormat string

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "propstore",
		Short:         "Property listing store and admin console",
		Long:          "Run the property store API and manage its listings: browse the public catalogue, log in as an admin, and create, update, or remove property records.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")

	root.AddCommand(
		newServeCmd(),
		newListCmd(),
		newShowCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newStatusCmd(),
		newAddCmd(),
		newUpdateCmd(),
		newRemoveCmd(),
		newAuthLogsCmd(),
		newVersionCmd(),
	)

	return root
}

// newPublicClient creates an API client without credentials.
func newPublicClient() *client.Client {
	return client.New(getServerURL(), "")
}

// newAdminClient creates an API client with the stored session token.
// Fails when no token is stored.
func newAdminClient() (*client.Client, error) {
	token := getToken()
	if token == "" {
		return nil, fmt.Errorf("not logged in, run 'propstore login' first")
	}
	return client.New(getServerURL(), token), nil
}

// adminErr translates a 401 into a logout: the stored token is discarded
// and the user is told to authenticate again.
func adminErr(err error) error {
	if errors.Is(err, client.ErrUnauthorized) {
		if clearErr := clearToken(); clearErr != nil {
			return fmt.Errorf("session rejected (and clearing stored token failed: %v), run 'propstore login'", clearErr)
		}
		return fmt.Errorf("session expired or invalid, run 'propstore login'")
	}
	return err
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}
