package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Show help for blueprint",
	Long:  `Display an overview of every blueprint command, or the help of one command.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if target, _, err := rootCmd.Find(args); err == nil && target != rootCmd {
				_ = target.Help()
				return
			}
		}
		showCustomHelp(cmd.OutOrStdout())
	},
}

func showCustomHelp(w io.Writer) {
	fmt.Fprint(w, `
██████╗ ██╗     ██╗   ██╗███████╗██████╗ ██████╗ ██╗███╗   ██╗████████╗
██╔══██╗██║     ██║   ██║██╔════╝██╔══██╗██╔══██╗██║████╗  ██║╚══██╔══╝
██████╔╝██║     ██║   ██║█████╗  ██████╔╝██████╔╝██║██╔██╗ ██║   ██║
██╔══██╗██║     ██║   ██║██╔══╝  ██╔═══╝ ██╔══██╗██║██║╚██╗██║   ██║
██████╔╝███████╗╚██████╔╝███████╗██║     ██║  ██║██║██║ ╚████║   ██║
╚═════╝ ╚══════╝ ╚═════╝ ╚══════╝╚═╝     ╚═╝  ╚═╝╚═╝╚═╝  ╚═══╝   ╚═╝

blueprint - CLI strength + cardio tracker

WEEK:
  Mon / Wed / Fri   strength
  Tue / Thu / Sat   cardio
  Sun               rest

COMMANDS:

  today                   Open today's checklist
    --strength            Open the strength checklist
    --cardio              Open the cardio checklist
    --no-ui               Print instead of opening the TUI

    Keys:
      ↑/↓ j/k       Navigate
      space/x       Check / uncheck
      w             Log a set (25x8, BW x 10)
      u             Substitute / clear substitution
      z / v         Set zone 2 / vigorous minutes
      s             Save the session
      esc/q         Quit (the draft is kept)

  check <exercise>...     Check exercises (id or name)
  uncheck <exercise>...   Uncheck exercises
  log <exercise> [set]    Log weight and reps, checks the exercise
    --weight              Weight only
    --reps                Reps only
  sub <exercise> <name>   Substitute an exercise for today
  unsub <exercise>        Clear a substitution
    -y, --yes             Skip the prompt

  cardio [item]...        Check cardio items
    --zone2               Set today's zone 2 minutes (45, 1:10, 1h10m)
    --vigorous            Set today's vigorous minutes
  timer                   Stopwatch, adds minutes when stopped
    --vigorous            Count as vigorous
    --add                 Add a duration without the stopwatch

  save                    Save the draft to history
    --strength, --cardio  Override the weekday
  reset                   Discard the draft
    -y, --yes             Skip the prompt

  history                 Saved sessions, newest first
    -n, --limit           Number of sessions (0 for all)
    --json                JSON output
  progress                Weekly zone 2 / vigorous minutes vs targets
    --json                JSON output

  export [file]           JSON backup (blueprint-backup-YYYY-MM-DD.json)
    --stdout              Write to stdout
  import <file>           Replace saved data from a backup
    -y, --yes             Skip the prompt

  customize [exercise]    Rename an exercise or change its sets
    --name                New name
    --sets                New prescription

  version                 Print the version
  help                    Show this help

GLOBAL FLAGS:
  --config                Config file (default ~/.blueprint/config.yaml)
  --data-dir              Directory holding blueprint.db
  -v, --verbose           Log to stderr

`)
}
