package cmd

import (
	"fmt"

	"github.com/theirongolddev/mealtab/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Config file:  %s", config.ConfigPath())
	if !config.Exists() {
		fmt.Print("  (not created yet)")
	}
	fmt.Println()
	fmt.Printf("  Database:     %s\n", dbPath(cfg))
	fmt.Println()

	user := cfg.General.DefaultUser
	if user == "" {
		user = "(unset)"
	}
	fmt.Printf("  default_user: %s\n", user)
	fmt.Printf("  theme:        %s\n", cfg.Appearance.Theme)

	if config.SemesterOverride(cfg) {
		fmt.Printf("  semester:     %s (%s .. %s)\n",
			cfg.Semester.Name, cfg.Semester.StartDate, cfg.Semester.EndDate)
	} else {
		sem := loadCatalog(cfg).Semester
		fmt.Printf("  semester:     %s (%s .. %s) [built-in]\n",
			sem.Name, sem.StartDate, sem.EndDate)
	}
	fmt.Println()

	return nil
}
