package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rmagbanua/propstore/internal/auth"
	"github.com/rmagbanua/propstore/internal/property"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printPropertyDetail prints a single property in text format.
func printPropertyDetail(p property.Property) {
	fmt.Printf("Property #%d\n", p.ID)
	fmt.Printf("  Name:      %s\n", p.Name)
	fmt.Printf("  Type:      %s\n", p.Type)
	fmt.Printf("  Location:  %s\n", p.Location)
	fmt.Printf("  Price:     ₱%s\n", formatPrice(p.Price))
	fmt.Printf("  Size:      %s\n", p.Size)
	fmt.Printf("  Beds:      %d\n", p.Bedrooms)
	fmt.Printf("  Baths:     %d\n", p.Bathrooms)
	fmt.Printf("  Features:  %s\n", p.Features)
	fmt.Printf("  Status:    %s\n", p.Status)
	if len(p.ImageURLs) > 0 {
		fmt.Printf("  Images:    %d\n", len(p.ImageURLs))
	}
}

// printPropertyTable prints a list of properties as a formatted table.
func printPropertyTable(props []property.Property) error {
	if len(props) == 0 {
		fmt.Println("No properties found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNAME\tTYPE\tLOCATION\tPRICE\tBED\tBATH\tSTATUS"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t----\t----\t--------\t-----\t---\t----\t------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, p := range props {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t₱%s\t%d\t%d\t%s\n",
			p.ID, p.Name, p.Type, p.Location, formatPrice(p.Price),
			p.Bedrooms, p.Bathrooms, p.Status,
		); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	return w.Flush()
}

// printAuthLogTable prints login attempts as a formatted table.
func printAuthLogTable(logs []auth.LogEntry) error {
	if len(logs) == 0 {
		fmt.Println("No login attempts recorded.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "TIME\tUSERNAME\tRESULT\tIP"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}

	for _, e := range logs {
		result := "FAIL"
		if e.Success {
			result = "ok"
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			e.Timestamp.Format("2006-01-02 15:04:05"), e.Username, result, e.IP,
		); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	return w.Flush()
}

// formatPrice renders a price with thousands separators. Prices in the
// catalogue are whole pesos; fractional amounts keep two decimals.
func formatPrice(price float64) string {
	whole := int64(price)
	s := fmt.Sprintf("%d", whole)
	if len(s) > 3 {
		var parts []string
		for len(s) > 3 {
			parts = append([]string{s[len(s)-3:]}, parts...)
			s = s[:len(s)-3]
		}
		parts = append([]string{s}, parts...)
		s = strings.Join(parts, ",")
	}
	if frac := price - float64(whole); frac != 0 {
		return s + fmt.Sprintf("%.2f", frac)[1:]
	}
	return s
}
