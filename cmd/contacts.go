package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/safeguard/internal/config"
	"github.com/abhisek/safeguard/internal/content"
	"github.com/abhisek/safeguard/internal/ui/theme"
)

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Print emergency contacts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := content.Open(resolveContentPath(cmd, config.Load()))
		if err != nil {
			return fmt.Errorf("load content: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), contactsTable(catalog.Contacts()))
		return nil
	},
}

// contactsTable renders contacts as a bordered table.
func contactsTable(contacts []content.Contact) string {
	header := lipgloss.NewStyle().Bold(true).Foreground(theme.Emergency).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("SERVICE", "NUMBER", "FOR", "DIAL").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	for _, c := range contacts {
		t.Row(c.Name, c.Number, c.Description, c.TelURI())
	}
	return t.Render()
}
