package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Fire any due read reminder",
	Long: `Deliver the pending reminder if its time has passed, then clear it.

Intended to be run from a cron or systemd timer, e.g. every 15 minutes:
  */15 * * * * pagestreak remind

This command does not count as opening the app, so it never cancels the
reminder it is about to deliver.`,
	Run: func(cmd *cobra.Command, args []string) {
		openApp()
		defer store.Close()

		if show, _ := cmd.Flags().GetBool("show"); show {
			pending, err := store.PendingReminder()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if pending == nil {
				fmt.Println("No reminder scheduled.")
				return
			}
			fmt.Printf("Reminder scheduled for %s: %s\n",
				pending.FireAt.Local().Format(time.RFC1123), pending.Body)
			return
		}

		fired, err := sched.FireDue()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if fired > 0 {
			fmt.Printf("🔔 Delivered %d reminder(s)\n", fired)
		}
	},
}

func init() {
	remindCmd.Flags().Bool("show", false, "Show the pending reminder instead of firing")
}
