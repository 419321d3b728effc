package cli

import (
	"errors"
	"fmt"

	"github.com/andy/rolodex/internal/app"
	"github.com/andy/rolodex/internal/domain"
	"github.com/spf13/cobra"
)

var appInstance *app.App

// usageMessage is the fixed text shown for any field validation failure,
// mirroring the assistant bot this tool replaces.
const usageMessage = `Invalid input. Format:
  add <name> <phone_number>
  change <name> <old_phone> <new_phone>
  phone <name>
  delete <name>
  add-birthday <name> <DD.MM.YYYY>
  show-birthday <name>
  birthdays
  all`

var rootCmd = &cobra.Command{
	Use:   "rolodex",
	Short: "A CLI contact manager with birthday reminders",
	Long: `Rolodex keeps your contacts, their phone numbers, and their birthdays.

By default, running rolodex without arguments launches the interactive TUI.
Use subcommands for CLI operations.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior: launch TUI
		launchTUI(cmd, args)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

// renderErr maps validation failures to the fixed usage message and passes
// everything else through.
func renderErr(err error) error {
	if errors.Is(err, domain.ErrInvalidName) ||
		errors.Is(err, domain.ErrInvalidPhone) ||
		errors.Is(err, domain.ErrInvalidBirthday) {
		return fmt.Errorf("%w\n%s", err, usageMessage)
	}
	return err
}

var helloCmd = &cobra.Command{
	Use:   "hello",
	Short: "Greet the assistant",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("How can I help you?")
	},
}

func init() {
	// Add all subcommands
	rootCmd.AddCommand(helloCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(changeCmd)
	rootCmd.AddCommand(phoneCmd)
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(addBirthdayCmd)
	rootCmd.AddCommand(showBirthdayCmd)
	rootCmd.AddCommand(birthdaysCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(tuiCmd)
}
