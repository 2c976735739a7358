package cmd

import (
	"github.com/abhisek/safeguard/internal/app"
	"github.com/abhisek/safeguard/internal/nav"
	"github.com/spf13/cobra"
)

var learnCmd = &cobra.Command{
	Use:   "learn [module-id]",
	Short: "Open the learning modules, or one module directly",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return runApp(cmd, app.ModuleStart(args[0]))
		}
		return runApp(cmd, app.SectionStart(nav.SectionLearn))
	},
}

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Start the training quiz",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, app.SectionStart(nav.SectionTraining))
	},
}
