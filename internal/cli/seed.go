package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo employees, events, and expenses into the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, db, err := openDB(ctx, app)
			if err != nil {
				return err
			}
			defer db.Close()

			seeded, err := db.Seed(ctx, force)
			if err != nil {
				return err
			}
			if !seeded {
				fmt.Fprintln(cmd.OutOrStdout(), "workspace already has data; pass --force to replace it")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded demo data into %s\n", st.Dir)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Replace existing rows")

	return cmd
}
