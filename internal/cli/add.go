package cli

import (
	"github.com/spf13/cobra"

	"github.com/rmagbanua/propstore/internal/property"
)

// propertyFlags collects the writable fields shared by add and update.
type propertyFlags struct {
	name      string
	propType  string
	location  string
	price     float64
	size      string
	bedrooms  float64
	bathrooms float64
	features  string
	status    string
	images    []string
}

func (f *propertyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "listing name")
	cmd.Flags().StringVar(&f.propType, "type", "", "property type (e.g. 'House & Lot')")
	cmd.Flags().StringVar(&f.location, "location", "", "city or municipality")
	cmd.Flags().Float64Var(&f.price, "price", 0, "asking price in PHP")
	cmd.Flags().StringVar(&f.size, "size", "", "floor or lot size (e.g. '120 sqm')")
	cmd.Flags().Float64Var(&f.bedrooms, "bedrooms", 0, "number of bedrooms")
	cmd.Flags().Float64Var(&f.bathrooms, "bathrooms", 0, "number of bathrooms")
	cmd.Flags().StringVar(&f.features, "features", "", "comma-separated feature list")
	cmd.Flags().StringVar(&f.status, "status", "", "listing status (Available | Under OCU)")
	cmd.Flags().StringArrayVar(&f.images, "image", nil, "image URL or data URI (repeatable, max 10)")
}

// patch builds a Patch carrying only the flags the user actually set.
func (f *propertyFlags) patch(cmd *cobra.Command) property.Patch {
	var pt property.Patch
	if cmd.Flags().Changed("name") {
		pt.Name = &f.name
	}
	if cmd.Flags().Changed("type") {
		pt.Type = &f.propType
	}
	if cmd.Flags().Changed("location") {
		pt.Location = &f.location
	}
	if cmd.Flags().Changed("price") {
		pt.Price = &f.price
	}
	if cmd.Flags().Changed("size") {
		pt.Size = &f.size
	}
	if cmd.Flags().Changed("bedrooms") {
		pt.Bedrooms = &f.bedrooms
	}
	if cmd.Flags().Changed("bathrooms") {
		pt.Bathrooms = &f.bathrooms
	}
	if cmd.Flags().Changed("features") {
		pt.Features = &f.features
	}
	if cmd.Flags().Changed("status") {
		pt.Status = &f.status
	}
	if cmd.Flags().Changed("image") {
		pt.ImageURLs = &f.images
	}
	return pt
}

func newAddCmd() *cobra.Command {
	var flags propertyFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a property listing",
		Long:  "Creates a new property listing through the admin API. Requires a stored session token.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(flags.patch(cmd))
		},
	}

	flags.register(cmd)

	return cmd
}

func runAdd(pt property.Patch) error {
	api, err := newAdminClient()
	if err != nil {
		return err
	}

	created, err := api.CreateProperty(pt)
	if err != nil {
		return adminErr(err)
	}

	if isJSON() {
		return printJSON(created)
	}
	printPropertyDetail(*created)
	return nil
}
