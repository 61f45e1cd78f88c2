package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ventureos/internal/cli/formatter"
	"github.com/alexanderramin/ventureos/internal/service"
	"github.com/alexanderramin/ventureos/internal/session"
	"github.com/spf13/cobra"
)

func newGenerateCmd(state *rootState) *cobra.Command {
	var (
		format string
		quiet  bool
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:   "generate <idea...>",
		Short: "Generate a venture headlessly and print it",
		Long: "Runs the same build log and generation as the TUI without a terminal UI.\n" +
			"Log lines go to stderr; the venture record goes to stdout.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != service.FormatJSON && format != service.FormatYAML {
				return fmt.Errorf("unsupported format %q (want json or yaml)", format)
			}
			app, closeApp, err := state.load(true)
			if err != nil {
				return err
			}
			defer closeApp()

			sim := app.Simulator
			if cmd.Flags().Changed("seed") {
				sim = session.NewSimulator(nil, app.Config.Simulation, session.WithSeed(seed), session.WithClock(app.now))
			}

			stderr := cmd.ErrOrStderr()
			var spin *formatter.Spinner
			if !quiet {
				spin = formatter.NewSpinner(stderr, "architecting venture...")
				spin.Start()
				defer spin.Stop()
			}

			runner := &session.Runner{
				Controller: app.NewController(),
				Simulator:  sim,
				Generator:  app.Generator,
			}
			if spin != nil {
				revealed := 0
				runner.OnLog = func(line string) {
					revealed++
					spin.Println(line)
					spin.SetMessage(fmt.Sprintf("architecting venture... %d/%d", revealed, sim.Len()))
				}
			}

			idea := strings.Join(args, " ")
			data, err := runner.Run(cmd.Context(), idea)
			if spin != nil {
				spin.Stop()
			}
			if err != nil {
				return err
			}

			if app.Archive != nil {
				if _, err := app.Archive.Record(cmd.Context(), idea, data); err != nil {
					app.logger().Warn("archive_failed", "error", err)
				}
			}
			return service.EncodeVenture(cmd.OutOrStdout(), format, data)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", service.FormatJSON, "output format: json or yaml")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the build log")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "fix the build log timing (0 = random)")
	return cmd
}
