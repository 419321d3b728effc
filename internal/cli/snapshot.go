package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save [filename]",
	Short: "Save the address book to a snapshot file",
	Long:  `Save the address book. Without a filename the configured default snapshot path is used.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}

		if err := appInstance.Book.Save(path); err != nil {
			return fmt.Errorf("failed to save address book: %w", err)
		}

		fmt.Println("✓ Data saved.")
		return nil
	},
}

var loadCmd = &cobra.Command{
	Use:   "load [filename]",
	Short: "Load the address book from a snapshot file",
	Long: `Load the address book, replacing the current contents. Without a filename the
configured default snapshot path is used. A missing file loads an empty book.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}

		if err := appInstance.Book.Load(path); err != nil {
			return fmt.Errorf("failed to load address book: %w", err)
		}

		fmt.Printf("✓ Data loaded: %d contact(s).\n", appInstance.Book.Book().Len())
		return nil
	},
}
