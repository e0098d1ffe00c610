package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecowaste/site/internal/notify"
)

var topicsOutputFormat string

// topicsCmd represents the topics command
var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the events published on the notification bus",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch topicsOutputFormat {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(notify.Catalog)
		case "table":
			fmt.Fprintln(out, titleStyle.Render("Notification topics"))
			for _, ev := range notify.Catalog {
				fmt.Fprintf(out, "%s\n  %s\n  %s\n", ev.Name, mutedStyle.Render("published by "+ev.Publisher), ev.Description)
			}
			return nil
		default:
			return fmt.Errorf("unknown format %q, valid formats: table, json", topicsOutputFormat)
		}
	},
}

func init() {
	topicsCmd.Flags().StringVarP(&topicsOutputFormat, "format", "f", "table", "Output format (table, json)")
	rootCmd.AddCommand(topicsCmd)
}
