package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"netcollector/feature/collector"

	"github.com/spf13/cobra"
)

var clientFlags collector.Credentials

func newClient() (*collector.Client, error) {
	creds, err := collector.LoadCredentials(clientFlags, collector.DefaultTokenFile())
	if err != nil {
		return nil, err
	}
	return collector.NewClient(creds, 0), nil
}

// syncCmd submits command output to a running collector.
var syncCmd = &cobra.Command{
	Use:   "sync <hostname> <command> [file|-]",
	Short: "Sync one device from captured command output",
	Long: `Sends the output of a command captured on a device to the collector server.
The output is read from the file argument, or from stdin when it is absent or "-".`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd.InOrStdin(), args[2:])
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		res, err := client.Sync(collector.Request{Hostname: args[0], Command: args[1], Data: string(data)})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Result: %t\n", res.Result)
		fmt.Fprintf(out, "Reason: %s\n", res.Detail)
		if !res.Result {
			return errors.New("sync failed")
		}
		return nil
	},
}

// commandsCmd lists the commands a running collector understands.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the commands supported by the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		cmds, err := client.Commands()
		if err != nil {
			return err
		}

		names := make([]string, 0, len(cmds))
		for name := range cmds {
			names = append(names, name)
		}
		sort.Strings(names)

		out := cmd.OutOrStdout()
		for _, name := range names {
			fmt.Fprintf(out, "Command: %s\n\t%s\n", name, cmds[name])
		}
		return nil
	},
}

func readInput(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read command output: %w", err)
	}
	return data, nil
}

func init() {
	for _, c := range []*cobra.Command{syncCmd, commandsCmd} {
		c.Flags().StringVarP(&clientFlags.Token, "token", "t", "", "API token")
		c.Flags().StringVarP(&clientFlags.URL, "url", "u", "", "Collector base URL")
		RootCmd.AddCommand(c)
	}
}
