package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [name] [phone]",
	Short: "Add a contact, or add a phone to an existing contact",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		created, err := appInstance.Book.AddContact(args[0], args[1])
		if err != nil {
			return renderErr(err)
		}

		if created {
			fmt.Println("✓ Contact added.")
		} else {
			fmt.Println("✓ Contact updated.")
		}
		return nil
	},
}

var changeCmd = &cobra.Command{
	Use:   "change [name] [old_phone] [new_phone]",
	Short: "Replace one of a contact's phone numbers",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := appInstance.Book.ChangePhone(args[0], args[1], args[2]); err != nil {
			return renderErr(err)
		}

		fmt.Println("✓ Contact updated.")
		return nil
	},
}

var phoneCmd = &cobra.Command{
	Use:   "phone [name]",
	Short: "Show a contact's phone numbers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := appInstance.Book.Find(args[0])
		if err != nil {
			return renderErr(err)
		}
		if rec == nil {
			fmt.Println("Contact not found.")
			return nil
		}

		fmt.Println(rec)
		return nil
	},
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "List all contacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		records := appInstance.Book.Book().Records()
		if len(records) == 0 {
			fmt.Println("No contacts available.")
			return nil
		}

		for _, rec := range records {
			fmt.Println(rec)
		}
		fmt.Printf("\nTotal: %d contact(s)\n", len(records))
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := appInstance.Book.Delete(args[0]); err != nil {
			return renderErr(err)
		}

		fmt.Printf("✓ Contact deleted: %s\n", args[0])
		return nil
	},
}
