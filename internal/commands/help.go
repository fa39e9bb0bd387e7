package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for pagestreak",
	Long:  `Display detailed help for all pagestreak commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
┌─┐┌─┐┌─┐┌─┐┌─┐┌┬┐┬─┐┌─┐┌─┐┬┌─
├─┘├─┤│ ┬├┤ └─┐ │ ├┬┘├┤ ├─┤├┴┐
┴  ┴ ┴└─┘└─┘└─┘ ┴ ┴└─└─┘┴ ┴┴ ┴

pagestreak - CLI Reading Tracker

COMMANDS:

  add <title>             Add a book with smart parsing
    -a, --author          Author name
    -p, --pages           Total page count
    --year                Publication year
    --isbn                ISBN (10 or 13 digits)
    --publisher           Publisher
    --note                Additional notes
    -i, --interactive     Interactive form

    Smart syntax:
      @Author Name  Author (runs until the next marker)
      pages:412     Total pages
      year:1965     Publication year
      isbn:978...   ISBN
      pub:Chilton   Publisher

    Example:
      pagestreak add "Dune @Frank Herbert pages:412 year:1965"

  lookup <query>          Search Open Library and add a result
    -l, --limit           Maximum number of results

  ls                      Browse your library interactively
    -s, --status          Filter by status: want|reading|read
    --no-ui               Plain table output

    Quick actions:
      ↑/↓           Navigate books
      s             Start reading / shelve
      f             Mark finished
      d             Delete book
      esc/q         Quit

  search <query>          Search books by title, author or notes
    --exact               Exact match
    --prefix              Prefix match

  log <id> <minutes>      Log a reading session
    -p, --pages           Pages read
    -d, --date            Session day: today, yesterday, X days ago, dd/mm/yyyy
    --note                Session notes

  read <id>               Interactive reading timer (logs on stop)

  start <id>              Mark a book as currently reading
  finish <id>             Mark a book as read
  shelve <id>             Move a book back to want-to-read

  rm <id>                 Delete a book and its sessions
    -f, --force           Skip confirmation

  stats                   Today's minutes, streak, weekly chart, book progress

  goal [minutes]          Show or set the daily goal
    --reminder-hours      Hours after last open before a reminder
    --notifications       on|off

  remind                  Fire due reminders (for cron/systemd timers)
    --show                Show the pending reminder

  help                    Show this help

`)
}
