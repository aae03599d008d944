package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/theirongolddev/mealtab/internal/cli"
	"github.com/theirongolddev/mealtab/internal/config"
	"github.com/theirongolddev/mealtab/internal/session"
	"github.com/theirongolddev/mealtab/internal/store"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to mealtab!")
	fmt.Println()

	// 1. Username
	fmt.Println("  1. Username")
	if cfg.General.DefaultUser != "" {
		fmt.Printf("     Current: %s\n", cfg.General.DefaultUser)
	}
	fmt.Print("     > ")
	username, _ := reader.ReadString('\n')
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		username = cfg.General.DefaultUser
	}
	if username == "" {
		return fmt.Errorf("a username is required")
	}
	cfg.General.DefaultUser = username
	fmt.Println()

	// 2. Starting balance (only for new accounts; set once, immutable after)
	st, err := store.Open(dbPath(cfg))
	if err != nil {
		return err
	}
	defer st.Close()

	acct, found, err := st.LoadAccount(username)
	if err != nil {
		return err
	}
	if found {
		fmt.Printf("  2. Starting balance: %s (already set, cannot change)\n", cli.FormatMoney(acct.StartingBalance))
		fmt.Println()
	} else {
		fmt.Println("  2. Starting balance")
		fmt.Println("     The dining-dollar amount on your account for this semester.")
		fmt.Print("     > $")
		balanceStr, _ := reader.ReadString('\n')
		balance, err := strconv.ParseFloat(strings.TrimSpace(balanceStr), 64)
		if err != nil || balance <= 0 {
			return fmt.Errorf("starting balance must be a positive amount")
		}
		if _, err := session.Create(st, loadCatalog(cfg), username, balance); err != nil {
			return err
		}
		fmt.Println()
	}

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Campus Green")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "campus-green"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `mealtab setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
