package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gameplan/internal/config"
	"gameplan/internal/models"
	"gameplan/internal/planner"
	"gameplan/internal/store"
	"gameplan/internal/tui"
	"gameplan/internal/util"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	ctx := context.Background()

	dataRoot := util.DataDir(config.AppName)
	_ = os.MkdirAll(dataRoot, 0o755)
	dbPath := filepath.Join(dataRoot, config.DBFileName)

	kv, err := store.Open(ctx, dbPath)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer kv.Close()

	settings := loadSettings(ctx, kv)
	if settings.PassphraseHash == "" {
		settings = maybeSetPassphrase(ctx, kv, settings)
	} else if !unlock(settings.PassphraseHash) {
		fmt.Println("Too many failed attempts. Exiting.")
		os.Exit(1)
	}

	model := tui.NewDashboardModel(ctx, kv)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}

func loadSettings(ctx context.Context, kv store.KV) models.Settings {
	return planner.Load(ctx, kv).Settings()
}

// maybeSetPassphrase offers a privacy lock on first run. Declining is fine;
// the planner works unlocked.
func maybeSetPassphrase(ctx context.Context, kv store.KV, settings models.Settings) models.Settings {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return settings
	}
	for {
		pass, err := promptForKey("Set privacy passphrase (leave empty to skip): ")
		if err != nil || pass == "" {
			return settings
		}
		if err := util.ValidatePassphrase(pass); err != nil {
			fmt.Printf("Passphrase too weak: %v\n", err)
			continue
		}
		hash, err := util.HashPassphrase(pass)
		if err != nil {
			util.LogError("hash passphrase", err)
			return settings
		}
		settings.PassphraseHash = hash
		util.LogError("persist settings", kv.Save(ctx, config.KeySettings, settings))
		return settings
	}
}

func unlock(hash string) bool {
	for tries := 0; tries < config.MaxPassphraseAttempts; tries++ {
		pass, err := promptForKey("Enter passphrase: ")
		if err != nil {
			return false
		}
		if util.CheckPassphrase(hash, pass) {
			return true
		}
		fmt.Println("Incorrect passphrase.")
	}
	return false
}

func promptForKey(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	return strings.TrimSpace(string(pass)), err
}
