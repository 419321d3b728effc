package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addBirthdayCmd = &cobra.Command{
	Use:   "add-birthday [name] [DD.MM.YYYY]",
	Short: "Set a contact's birthday",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := appInstance.Book.SetBirthday(args[0], args[1]); err != nil {
			return renderErr(err)
		}

		fmt.Println("✓ Birthday added.")
		return nil
	},
}

var showBirthdayCmd = &cobra.Command{
	Use:   "show-birthday [name]",
	Short: "Show a contact's birthday",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		birthday, err := appInstance.Book.Birthday(args[0])
		if err != nil {
			return renderErr(err)
		}
		if birthday == nil {
			fmt.Println("Birthday not set.")
			return nil
		}

		fmt.Printf("%s's birthday is on %s.\n", args[0], birthday)
		return nil
	},
}

var birthdaysCmd = &cobra.Command{
	Use:   "birthdays",
	Short: "Show contacts with birthdays in the coming week",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		if !cmd.Flags().Changed("days") {
			days = appInstance.Config.Book.BirthdayWindowDays
		}

		upcoming := appInstance.Book.UpcomingBirthdays(days)
		if len(upcoming) == 0 {
			fmt.Println("No upcoming birthdays.")
			return nil
		}

		fmt.Printf("Upcoming birthdays (next %d days):\n", days)
		for _, u := range upcoming {
			fmt.Printf("  %-20s congratulate on %s\n", u.Record.Name, u.Date.Format("Monday, 02.01.2006"))
		}
		return nil
	},
}

func init() {
	birthdaysCmd.Flags().Int("days", 7, "Size of the reminder window in days")
}
