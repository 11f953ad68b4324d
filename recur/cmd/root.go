package cmd

import (
	"os"
	"time"

	"github.com/hako/durafmt"
	"github.com/howeyc/recur"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// rootCmd posts recurring transactions
var rootCmd = &cobra.Command{
	Use:   "recur <ledger-file> [target-date] <config-file>",
	Short: "Post recurring transactions to a ledger file",
	Long: `Generates every recurring transaction in the config file that is due on or
before the target date (default today), appends them to the ledger file in
date order and writes the next due dates back to the config file.

A recurring transaction starts with its next due date and period:

  2024/01/31 (1m) Rent
      Expenses:Rent      1200.00
      Assets:Checking

Periods are a count followed by y (years), m (months), w (weeks) or d (days).`,
	Example:       "  recur ledger.dat 2024/06/30 recurring.dat\n  recur ledger.dat recurring.dat",
	Args:          cobra.RangeArgs(2, 3),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		l, err := newLogger(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		ledgerFile, targetString, configFile := splitArgs(args)

		var target time.Time
		if targetString != "" {
			var err error
			if target, err = recur.ParseDate(targetString); err != nil {
				return err
			}
		}

		return post(ledgerFile, target, configFile)
	},
}

// Execute runs the root command, logging any error.
func Execute() error {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		cc.Init(&cc.Config{
			RootCmd:  rootCmd,
			Headings: cc.HiCyan + cc.Bold + cc.Underline,
			Commands: cc.HiYellow + cc.Bold,
			Example:  cc.Italic,
			ExecName: cc.Bold,
			Flags:    cc.Bold,
		})
	}

	err := rootCmd.Execute()
	if err != nil {
		logger.Error(err)
	}
	return err
}

// splitArgs maps the positional arguments. With two arguments there is no
// target date.
func splitArgs(args []string) (ledgerFile, targetString, configFile string) {
	if len(args) == 2 {
		return args[0], "", args[1]
	}
	return args[0], args[1], args[2]
}

func post(ledgerFile string, target time.Time, configFile string) error {
	ds, err := recur.NewDataset(ledgerFile, target, configFile)
	if err != nil {
		return err
	}

	for _, t := range ds.Overdue() {
		logger.Debug("due", "template", t.DueText, "period", t.Period,
			"behind", durafmt.Parse(ds.Target.Sub(t.Due)).LimitFirstN(2))
	}

	entries, err := ds.Post()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		logger.Info("nothing to post", "target", recur.FormatDate(ds.Target))
		return nil
	}
	logger.Info("posted", "entries", len(entries), "ledger", ledgerFile,
		"target", recur.FormatDate(ds.Target))
	return nil
}
