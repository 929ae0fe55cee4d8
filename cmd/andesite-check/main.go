// Command andesite-check runs live scenarios against Andesite nodes: connection and resume handshakes,
// ping and stats round trips, guild migration inside a pool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"myandesite/scenario"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
)

// errScenarioFailed is returned after the result block was printed, so main only sets the exit code.
var errScenarioFailed = errors.New("scenario failed")

func main() {
	root := newRootCmd(os.Stderr)
	if err := root.Execute(); err != nil {
		var unknown *scenario.UnknownScenarioError
		switch {
		case errors.As(err, &unknown):
			os.Exit(2)
		case errors.Is(err, errScenarioFailed):
			os.Exit(1)
		default:
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

// newRootCmd builds the command tree. Logs go to logOut; results go to the command's output.
func newRootCmd(logOut io.Writer) *cobra.Command {
	v := newViper()
	var verbose bool

	root := &cobra.Command{
		Use:           "andesite-check",
		Short:         "Run live checks against Andesite nodes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.String("config", "", "YAML file with the node list (same format as the daemon's CONFIG_PATH)")
	flags.Uint64("user-id", 0, "bot user id presented to the nodes")
	flags.String("guild-id", defaultGuildID, "guild used for requests")
	flags.Duration("timeout", defaultTimeout, "request timeout")
	flags.Duration("deadline", defaultDeadline, "overall scenario deadline")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log client debug output")
	_ = v.BindPFlags(flags)

	newLogger := func() log.Logger {
		logger := log.NewLogfmtLogger(log.NewSyncWriter(logOut))
		logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
		if verbose {
			return level.NewFilter(logger, level.AllowDebug())
		}
		return level.NewFilter(logger, level.AllowWarn())
	}

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available scenarios",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range scenario.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "run <scenario>",
		Short: "Run one scenario and print its result",
		Long: `Runs the named scenario against the nodes of --config and prints a result block.

Settings can also come from ANDESITE_* environment variables, e.g. ANDESITE_USER_ID
or ANDESITE_GUILD_ID. Exit code 1 means the scenario failed, 2 that it does not exist.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadScenarioConfig(v, newLogger())
			if err != nil {
				return err
			}
			cfg.Out = cmd.OutOrStdout()
			ctx, cancel := context.WithTimeout(cmd.Context(), v.GetDuration("deadline"))
			defer cancel()
			return runAndReport(ctx, cmd.OutOrStdout(), args[0], cfg)
		},
	})
	return root
}

// runAndReport runs name and prints the result block. Returns the scenario error for unknown
// scenarios and errScenarioFailed for failed ones.
func runAndReport(ctx context.Context, out io.Writer, name string, cfg *scenario.Config) error {
	err := scenario.Run(ctx, name, cfg)

	fmt.Fprintln(out, "\n=== Scenario Result ===")
	fmt.Fprintf(out, "Scenario: %s\n", name)
	defer fmt.Fprintln(out, "=====================")
	if err == nil {
		fmt.Fprintln(out, "Status: PASSED")
		return nil
	}
	fmt.Fprintln(out, "Status: FAILED")
	fmt.Fprintf(out, "Error: %v\n", err)

	var unknown *scenario.UnknownScenarioError
	if errors.As(err, &unknown) {
		fmt.Fprintf(out, "Available: %s\n", strings.Join(scenario.Names(), ", "))
		return err
	}
	return errScenarioFailed
}
