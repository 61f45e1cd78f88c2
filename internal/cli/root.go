package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/ventureos/internal/config"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// Version is reported by the version command. It is set at link time.
var Version = "dev"

// Bootstrap builds the App from loaded configuration. headless is true for
// commands that print to stdout, where logs default to stderr. The returned
// close func releases what Bootstrap opened and is never nil.
type Bootstrap func(cfg config.Config, headless bool) (*App, func() error, error)

// errNotInteractive is returned when the TUI is requested without a terminal.
var errNotInteractive = errors.New("stdin is not a terminal; run `ventureos generate <idea>` for headless use")

type rootState struct {
	cfgFile string
	boot    Bootstrap
}

// load reads configuration and bootstraps the App for one command run.
func (s *rootState) load(headless bool) (*App, func() error, error) {
	cfg, err := config.Load(s.cfgFile)
	if err != nil {
		return nil, nil, err
	}
	return s.boot(cfg, headless)
}

// NewRootCmd creates the top-level "ventureos" command. Without a
// subcommand it launches the TUI.
func NewRootCmd(boot Bootstrap) *cobra.Command {
	state := &rootState{boot: boot}

	root := &cobra.Command{
		Use:           "ventureos",
		Short:         "Turn a startup idea into a synchronized venture architecture",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, closeApp, err := state.load(false)
			if err != nil {
				return err
			}
			defer closeApp()
			if !app.interactive() {
				fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
				return errNotInteractive
			}
			return RunTUI(cmd.Context(), app)
		},
	}
	root.PersistentFlags().StringVar(&state.cfgFile, "config", "", "config file (default ./ventureos.yaml or ~/.config/ventureos/ventureos.yaml)")

	root.AddCommand(
		newGenerateCmd(state),
		newHistoryCmd(state),
		newVersionCmd(),
	)
	return root
}

// RunTUI runs the interactive program until the user quits.
func RunTUI(ctx context.Context, app *App) error {
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(newAppModel(ctx, app), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if m, ok := final.(appModel); ok {
		m.stopGeneration()
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ventureos %s\n", Version)
		},
	}
}
