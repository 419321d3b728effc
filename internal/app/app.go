package app

import (
	"context"
	"fmt"
	"syscall"

	"github.com/andy/rolodex/internal/config"
	"github.com/andy/rolodex/internal/crypto"
	"github.com/andy/rolodex/internal/db"
	"github.com/andy/rolodex/internal/repository"
	"github.com/andy/rolodex/internal/service"
	"github.com/andy/rolodex/internal/snapshot"
	"golang.org/x/term"
)

// App is the dependency injection container for all application components
type App struct {
	Config *config.Config
	Store  snapshot.Store
	Book   service.BookService

	// Encrypted archive, opened lazily by OpenArchive
	archiveDB *db.DB
}

// New creates a new App instance, initializing all dependencies
// It handles:
// 1. Loading config
// 2. Creating the snapshot store
// 3. Loading the address book from the default snapshot
func New(ctx context.Context) (*App, error) {
	// Load config from default path
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewWithConfig(ctx, cfg)
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(ctx context.Context, cfg *config.Config) (*App, error) {
	// Ensure all necessary directories exist
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	store := snapshot.NewFileStore(cfg.Book.Path)

	// Missing snapshot means a fresh empty book; a corrupt one is an error
	loaded, err := store.Load("")
	if err != nil {
		return nil, fmt.Errorf("failed to load address book: %w", err)
	}

	return &App{
		Config: cfg,
		Store:  store,
		Book:   service.NewBookService(loaded, store),
	}, nil
}

// Close persists the address book and shuts the app down
func (a *App) Close() error {
	var firstErr error
	if a.Book != nil {
		if err := a.Book.Save(""); err != nil {
			firstErr = fmt.Errorf("failed to save address book: %w", err)
		}
	}
	if a.archiveDB != nil {
		if err := a.archiveDB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// OpenArchive opens the encrypted archive, prompting for a passphrase on
// first use. Only the archive commands pay this cost.
func (a *App) OpenArchive(ctx context.Context) (repository.ContactArchive, error) {
	if a.archiveDB == nil {
		// Get keyring for secure password storage
		keyring := crypto.NewKeyring()

		// Try to get existing encryption key
		password, err := keyring.GetKey()
		if err != nil {
			// No key exists, prompt user to set one
			fmt.Println("Setting up archive encryption for the first time...")
			password, err = promptForPassword()
			if err != nil {
				return nil, fmt.Errorf("failed to set password: %w", err)
			}

			// Store the key in keyring
			if err := keyring.SetKey(password); err != nil {
				return nil, fmt.Errorf("failed to store encryption key: %w", err)
			}
		}

		// Open the database with encryption
		database, err := db.Open(a.Config.Archive.Path, password)
		if err != nil {
			return nil, fmt.Errorf("failed to open archive: %w", err)
		}

		// Run migrations to ensure schema is up to date
		if err := database.RunMigrations(); err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		a.archiveDB = database
	}

	return repository.NewSQLiteArchive(a.archiveDB), nil
}

// SaveConfig saves the current configuration to disk
func (a *App) SaveConfig() error {
	return a.Config.Save(config.DefaultConfigPath())
}

// promptForPassword prompts user for a new archive password (first run)
// This should be called when keyring has no stored key
func promptForPassword() (string, error) {
	fmt.Println()
	fmt.Println("Your contact archive will be encrypted with a password.")
	fmt.Println("This password will be stored securely in your system keyring.")
	fmt.Println()
	fmt.Print("Enter a password for archive encryption: ")

	// Read password securely (no echo)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // New line after password input
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if len(password) == 0 {
		return "", fmt.Errorf("password cannot be empty")
	}

	// Confirm password
	fmt.Print("Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // New line after confirmation
	if err != nil {
		return "", fmt.Errorf("failed to read confirmation: %w", err)
	}

	// Check if passwords match
	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}

	fmt.Println()
	fmt.Println("✓ Archive encryption configured successfully")
	fmt.Println()

	return string(password), nil
}
