package cli

import (
	"context"
	"fmt"

	"github.com/andy/rolodex/internal/crypto"
	"github.com/spf13/cobra"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Manage the encrypted contact archive",
	Long:  `Export the address book to, or import it from, an encrypted SQLite archive.`,
}

var archiveExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the address book into the encrypted archive",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		archive, err := appInstance.OpenArchive(ctx)
		if err != nil {
			return err
		}

		if err := archive.Export(ctx, appInstance.Book.Book()); err != nil {
			return fmt.Errorf("failed to export archive: %w", err)
		}

		fmt.Printf("✓ Archived %d contact(s) to %s\n", appInstance.Book.Book().Len(), appInstance.Config.Archive.Path)
		return nil
	},
}

var archiveImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the address book with the archive contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		archive, err := appInstance.OpenArchive(ctx)
		if err != nil {
			return err
		}

		imported, err := archive.Import(ctx)
		if err != nil {
			return fmt.Errorf("failed to import archive: %w", err)
		}

		// Swap the imported book in; it is persisted to the default
		// snapshot when the app closes.
		appInstance.Book.Replace(imported)

		fmt.Printf("✓ Imported %d contact(s) from %s\n", imported.Len(), appInstance.Config.Archive.Path)
		return nil
	},
}

var archiveResetKeyCmd = &cobra.Command{
	Use:   "reset-key",
	Short: "Forget the stored archive encryption key",
	RunE: func(cmd *cobra.Command, args []string) error {
		keyring := crypto.NewKeyring()
		if err := keyring.DeleteKey(); err != nil {
			return fmt.Errorf("failed to delete encryption key: %w", err)
		}

		fmt.Println("✓ Archive encryption key removed from keyring")
		fmt.Println("  You will be prompted for a new password on next archive use.")
		fmt.Println("  The existing archive file can only be read with the old password.")
		return nil
	},
}

func init() {
	archiveCmd.AddCommand(archiveExportCmd)
	archiveCmd.AddCommand(archiveImportCmd)
	archiveCmd.AddCommand(archiveResetKeyCmd)
}
