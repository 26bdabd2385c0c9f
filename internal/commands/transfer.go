package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/balkashynov/blueprint/internal/errors"
	"github.com/balkashynov/blueprint/internal/parser"
	"github.com/balkashynov/blueprint/internal/tracker"
	"github.com/balkashynov/blueprint/internal/transfer"
	"github.com/balkashynov/blueprint/internal/tui"
)

var (
	exportStdout bool
	importYes    bool
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write a JSON backup of history, weekly stats and catalogs",
	Long: `Write a JSON backup. The default file name is
blueprint-backup-YYYY-MM-DD.json in the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: withTracker(func(cmd *cobra.Command, args []string, t *tracker.Tracker) error {
		bundle := t.ExportBundle()
		if exportStdout {
			return transfer.Encode(cmd.OutOrStdout(), bundle)
		}

		path := transfer.FileName(t.Now())
		if len(args) == 1 {
			path = args[0]
		}
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrap(err, "failed to create backup file")
		}
		if err := transfer.Encode(f, bundle); err != nil {
			_ = f.Close()
			return errors.Wrap(err, "failed to write backup")
		}
		if err := f.Close(); err != nil {
			return errors.Wrap(err, "failed to write backup")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %d sessions → %s\n",
			tui.SuccessStyle.Render("Exported"), len(bundle.History), path)
		return nil
	}),
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace history, weekly stats and customizations from a backup",
	Long: `Replace history, weekly stats and exercise customizations with the
contents of a backup file. "-" reads from stdin. Today's unsaved draft is
kept. A malformed file changes nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: withTracker(runImport),
}

func runImport(cmd *cobra.Command, args []string, t *tracker.Tracker) error {
	var (
		raw []byte
		err error
	)
	if args[0] == "-" {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(args[0])
	}
	if err != nil {
		return errors.Wrap(err, "failed to read backup file")
	}

	// reject a bad file before asking anything
	if _, err := transfer.Decode(raw); err != nil {
		return err
	}

	ok, err := confirm("Replace all saved data?",
		fmt.Sprintf("History, weekly stats and customizations are overwritten by %s.", args[0]), importYes)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "Import cancelled")
		return nil
	}

	bundle, err := t.ImportBundle(cmd.Context(), raw)
	if err != nil {
		return err
	}

	ledger := t.Ledger()
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d sessions · week %s min zone 2 · %s min vigorous\n",
		tui.SuccessStyle.Render("Imported"), len(bundle.History),
		parser.FormatMinutes(ledger.Zone2Minutes), parser.FormatMinutes(ledger.VigorousMinutes))
	return nil
}

func init() {
	exportCmd.Flags().BoolVar(&exportStdout, "stdout", false, "write the backup to stdout")
	importCmd.Flags().BoolVarP(&importYes, "yes", "y", false, "skip the confirmation prompt")
}
