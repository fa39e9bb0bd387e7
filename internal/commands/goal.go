package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal [minutes]",
	Short: "Show or change your reading goals",
	Long: `Show the current daily goal and reminder settings, or change them.

Examples:
  pagestreak goal                      # show current settings
  pagestreak goal 45                   # read 45 minutes per day
  pagestreak goal --reminder-hours 12  # nudge 12h after last open
  pagestreak goal --notifications off`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		changed := false

		if len(args) == 1 {
			minutes, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Printf("Error: invalid goal '%s'\n", args[0])
				return
			}
			if _, err := store.SetDailyGoal(minutes); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Printf("🎯 Daily goal set to %d minutes\n", minutes)
			changed = true
		}

		if cmd.Flags().Changed("reminder-hours") {
			hours, _ := cmd.Flags().GetInt("reminder-hours")
			if _, err := store.SetReminderHours(hours); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Printf("⏰ Reminder target set to %d hours after last open\n", hours)
			changed = true
		}

		if cmd.Flags().Changed("notifications") {
			value, _ := cmd.Flags().GetString("notifications")
			var enabled bool
			switch value {
			case "on", "true":
				enabled = true
			case "off", "false":
				enabled = false
			default:
				fmt.Printf("Error: invalid value '%s'. Use: on, off\n", value)
				return
			}
			if _, err := store.SetNotificationsEnabled(enabled); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if enabled {
				fmt.Println("🔔 Reminder notifications enabled")
			} else {
				fmt.Println("🔕 Reminder notifications disabled")
			}
			changed = true
		}

		if changed {
			return
		}

		prefs, err := store.GetPreferences()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Daily goal: %d minutes\n", prefs.DailyGoalMinutes)
		fmt.Printf("Reminder: %d hours after last open\n", prefs.ReminderHours)
		if prefs.NotificationsEnabled {
			fmt.Println("Notifications: on")
		} else {
			fmt.Println("Notifications: off")
		}
	},
}

func init() {
	goalCmd.Flags().Int("reminder-hours", 0, "Hours after last open before a reminder fires")
	goalCmd.Flags().String("notifications", "", "Reminder notifications: on or off")
}
