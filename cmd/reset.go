package cmd

import (
	"fmt"

	"github.com/abhisek/safeguard/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget saved preferences so the GPS prompt shows again",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.FlagRepo().Clear(cmd.Context()); err != nil {
			return fmt.Errorf("clear flags: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved preferences cleared.")
		return nil
	},
}
