package cmd

import (
	"encoding/json"
	"fmt"

	"netcollector/core/logger"

	"github.com/spf13/cobra"
)

// parseCmd parses output offline with the rule index, without touching the inventory.
var parseCmd = &cobra.Command{
	Use:   "parse <command> [file|-]",
	Short: "Parse command output locally and print the records",
	Long: `Picks the template for the command from the rule index, parses the output
and prints the records with their count. Nothing is written to the inventory.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context(), &logger.Config{Level: "warn", Format: "console"})
		if err != nil {
			return err
		}

		command := args[0]
		rule, ok := rt.index.MatchCommand(command)
		if parseVendor != "" {
			rule, ok = rt.index.Match(parseVendor, command)
		}
		if !ok {
			return fmt.Errorf("no rule for command %q", command)
		}

		data, err := readInput(cmd.InOrStdin(), args[1:])
		if err != nil {
			return err
		}

		records, err := rt.engine.Parse(cmd.Context(), rule.Template, string(data))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Template: %s, handler: %s\n", rule.Template, rule.Handler)
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return err
		}
		fmt.Fprintf(out, "Count: %d\n", len(records))
		return nil
	},
}

var parseVendor string

func init() {
	parseCmd.Flags().StringVar(&parseVendor, "vendor", "", "Vendor to match rules against (default: first rule for the command)")
	RootCmd.AddCommand(parseCmd)
}
