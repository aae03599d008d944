package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/theirongolddev/mealtab/internal/catalog"
	"github.com/theirongolddev/mealtab/internal/config"
	"github.com/theirongolddev/mealtab/internal/model"
	"github.com/theirongolddev/mealtab/internal/session"
	"github.com/theirongolddev/mealtab/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagUser    string
	flagDataDir string
	flagDate    string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "mealtab",
	Short: "Dining-dollar balance tracker",
	Long:  "Track dining-hall purchases, balances, and whether your dollars will last the semester.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagUser, "user", "u", "", "Account username (defaults to config)")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory override")
	rootCmd.PersistentFlags().StringVar(&flagDate, "date", "", "Project as of this date (YYYY-MM-DD) instead of today")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress notes on stderr")
}

func dbPath(cfg config.Config) string {
	if flagDataDir != "" {
		return filepath.Join(flagDataDir, "mealtab.db")
	}
	return config.DBPath(cfg)
}

// loadCatalog applies the config's semester override to the built-in
// reference data.
func loadCatalog(cfg config.Config) *catalog.Catalog {
	cat := catalog.Default()
	if !config.SemesterOverride(cfg) {
		return cat
	}
	sem := model.Semester{
		ID:        cat.Semester.ID,
		Name:      cfg.Semester.Name,
		StartDate: cfg.Semester.StartDate,
		EndDate:   cfg.Semester.EndDate,
	}
	return catalog.New(sem, cat.Vendors, cat.Categories, cat.Items)
}

func resolveUser(cfg config.Config) (string, error) {
	if flagUser != "" {
		return flagUser, nil
	}
	if cfg.General.DefaultUser != "" {
		return cfg.General.DefaultUser, nil
	}
	return "", errors.New("no user selected: pass --user or run `mealtab setup`")
}

// openSession is the shared load path used by all commands. The caller
// owns the returned store and must Close it.
func openSession() (*session.Session, *store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	username, err := resolveUser(cfg)
	if err != nil {
		return nil, nil, err
	}

	st, err := store.Open(dbPath(cfg))
	if err != nil {
		return nil, nil, err
	}

	s, err := session.Open(st, loadCatalog(cfg), username)
	if err != nil {
		_ = st.Close()
		if errors.Is(err, session.ErrNoAccount) {
			return nil, nil, fmt.Errorf("no account for %q: run `mealtab setup` to set a starting balance", username)
		}
		return nil, nil, err
	}

	if flagDate != "" {
		asOf, parseErr := time.Parse("2006-01-02", flagDate)
		if parseErr != nil {
			_ = st.Close()
			return nil, nil, fmt.Errorf("invalid --date %q: want YYYY-MM-DD", flagDate)
		}
		s.SetClock(func() time.Time { return asOf })
	}
	if flagQuiet {
		s.SetLogger(nil)
	}

	return s, st, nil
}

func note(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// sortedByAmountDesc is the display order for the unordered groupings.
func sortedByAmountDesc[T any](items []T, amount func(T) float64) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return amount(out[i]) > amount(out[j])
	})
	return out
}
