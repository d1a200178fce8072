package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"crewdesk/internal/model"
	"crewdesk/internal/store"
	"crewdesk/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "crewdesk [dataset]",
		Short:        "Back-office data browser (TUI + export CLI)",
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		Example: strings.TrimSpace(`
  # Browse the workspace interactively
  crewdesk

  # Jump straight to one dataset
  crewdesk expenses

  # Scriptable export of the current books
  crewdesk export expenses --query catering --sort amount --desc

  # First run: load the demo workspace
  crewdesk seed
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			var initial model.Dataset
			if len(args) == 1 {
				initial = model.Dataset(strings.ToLower(args[0]))
				if !initial.Valid() {
					return fmt.Errorf("unknown dataset %q (expected one of: employees, events, expenses)", args[0])
				}
			}
			return runTUI(app, initial)
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("CREWDESK_DIR", ""), "Path to the workspace dir (default: ~/.crewdesk)")

	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newSeedCmd(app))

	return cmd
}

func runTUI(app *App, initial model.Dataset) error {
	st, db, err := openDB(context.Background(), app)
	if err != nil {
		return err
	}
	defer db.Close()
	return tui.Run(st, db, initial)
}

// openDB resolves the workspace directory, creates it when missing, and
// opens the database inside it.
func openDB(ctx context.Context, app *App) (store.Store, *store.DB, error) {
	dir, err := store.ResolveDir(app.Dir)
	if err != nil {
		return store.Store{}, nil, err
	}
	st := store.Store{Dir: dir}
	db, err := st.Open(ctx)
	if err != nil {
		return st, nil, err
	}
	return st, db, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
