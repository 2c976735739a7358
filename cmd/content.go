package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/safeguard/internal/content"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect training content",
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a content file (the built-in content when omitted)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		catalog, err := content.Open(path)
		out := cmd.OutOrStdout()

		var verr *content.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(out, "invalid content (%s):\n", verr.Stage)
			for _, p := range verr.Problems {
				fmt.Fprintf(out, "  - %s\n", p)
			}
			return err
		}
		if err != nil {
			return err
		}

		fmt.Fprint(out, contentSummary(path, catalog))
		return nil
	},
}

func init() {
	contentCmd.AddCommand(contentValidateCmd)
}

func contentSummary(path string, c *content.Catalog) string {
	if path == "" {
		path = "built-in"
	}
	return fmt.Sprintf("%s: ok\n  version   %s\n  modules   %d (%d lessons)\n  questions %d\n  contacts  %d\n",
		path, c.Version(), len(c.Modules()), c.TotalLessons(), len(c.QuizQuestions()), len(c.Contacts()))
}
