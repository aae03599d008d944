// Package tui provides the interactive Bubble Tea dashboard for mealtab.
package tui

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/theirongolddev/mealtab/internal/catalog"
	"github.com/theirongolddev/mealtab/internal/cli"
	"github.com/theirongolddev/mealtab/internal/ledger"
	"github.com/theirongolddev/mealtab/internal/model"
	"github.com/theirongolddev/mealtab/internal/session"
	"github.com/theirongolddev/mealtab/internal/store"
	"github.com/theirongolddev/mealtab/internal/tui/components"
	"github.com/theirongolddev/mealtab/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Options configures a new App.
type Options struct {
	Username string
	DBPath   string
	Catalog  *catalog.Catalog
	Clock    func() time.Time
}

// dataLoadedMsg is sent when the store and session are ready.
type dataLoadedMsg struct {
	st   *store.Store
	sess *session.Session
}

// needSetupMsg is sent when no account exists for the configured user.
type needSetupMsg struct {
	st *store.Store
}

// loadFailedMsg is sent when the store cannot be opened.
type loadFailedMsg struct {
	err error
}

// App is the root Bubble Tea model.
type App struct {
	opts Options

	st      *store.Store
	sess    *session.Session
	loaded  bool
	loadErr error

	// Pre-computed from the current transaction list
	summary    model.BalanceSummary
	daily      []model.DailySpend
	categories []model.CategorySpend
	vendors    []model.VendorTotal
	items      []model.ItemTotal
	trends     []model.ItemTrend

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	histState  historyState
	staffState staffState
	settings   settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	// Add-purchase form
	addForm *huh.Form
	addVals addValues
	adding  bool

	spinner spinner.Model
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 150

	minContentHeight = 5
)

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		opts:    opts,
		spinner: sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		loadDataCmd(a.opts),
		a.spinner.Tick,
	)
}

// loadDataCmd opens the store and session in a background goroutine.
func loadDataCmd(opts Options) tea.Cmd {
	return func() tea.Msg {
		st, err := store.Open(opts.DBPath)
		if err != nil {
			return loadFailedMsg{err: err}
		}

		if opts.Username == "" {
			return needSetupMsg{st: st}
		}

		sess, err := session.Open(st, opts.Catalog, opts.Username)
		if err != nil {
			if errors.Is(err, session.ErrNoAccount) {
				return needSetupMsg{st: st}
			}
			_ = st.Close()
			return loadFailedMsg{err: err}
		}

		if opts.Clock != nil {
			sess.SetClock(opts.Clock)
		}
		sess.SetLogger(nil)

		return dataLoadedMsg{st: st, sess: sess}
	}
}

func (a *App) recompute() {
	if a.sess == nil {
		return
	}

	txs := a.sess.Transactions()
	cat := a.sess.Catalog()

	a.summary = a.sess.Summary()
	a.daily = ledger.DailySpending(txs, cat)
	a.categories = ledger.CategorySpending(txs, cat)
	a.vendors = ledger.VendorTotals(txs, cat)
	a.items = ledger.ItemTotals(txs, cat)
	a.trends = ledger.ItemTrends(txs, cat)

	sort.SliceStable(a.categories, func(i, j int) bool {
		return a.categories[i].Amount > a.categories[j].Amount
	})
	sort.SliceStable(a.vendors, func(i, j int) bool {
		return a.vendors[i].Amount > a.vendors[j].Amount
	})
	sort.SliceStable(a.items, func(i, j int) bool {
		return a.items[i].Amount > a.items[j].Amount
	})

	// Clamp history cursor to the new transaction list bounds
	if a.histState.cursor >= len(txs) {
		a.histState.cursor = len(txs) - 1
	}
	if a.histState.cursor < 0 {
		a.histState.cursor = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		if a.addForm != nil {
			a.addForm = a.addForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			if a.loadErr != nil && key == "q" {
				return a, tea.Quit
			}
			return a, nil
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Add-purchase form intercepts all keys
		if a.adding && a.addForm != nil {
			return a.updateAddForm(msg)
		}

		// Staff tab text input intercepts keys while editing
		if a.activeTab == tabStaff && a.staffState.editing {
			return a.updateStaffInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Open the add-purchase form from any tab
		if key == "a" {
			a.adding = true
			a.addVals = addValues{
				qty:  "1",
				date: a.sess.Today(),
				time: "12:00",
			}
			a.addForm = newAddForm(a.sess.Catalog(), &a.addVals)
			if a.width > 0 {
				a.addForm = a.addForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.addForm.Init()
		}

		// Per-tab keybindings
		switch a.activeTab {
		case tabHistory:
			if handled, m, cmd := a.updateHistory(key); handled {
				return m, cmd
			}
		case tabStaff:
			if handled, m, cmd := a.updateStaff(key); handled {
				return m, cmd
			}
		case tabSettings:
			if handled, m, cmd := a.updateSettings(key); handled {
				return m, cmd
			}
		}

		// Tab navigation
		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}
		return a, nil

	case dataLoadedMsg:
		a.st = msg.st
		a.sess = msg.sess
		a.loaded = true
		a.recompute()
		return a, nil

	case needSetupMsg:
		a.st = msg.st
		a.loaded = true
		a.needSetup = true
		a.setupVals = setupValues{username: a.opts.Username}
		a.setupForm = newSetupForm(&a.setupVals)
		if a.width > 0 {
			a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
		}
		return a, a.setupForm.Init()

	case loadFailedMsg:
		a.loadErr = msg.err
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to active forms (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.adding && a.addForm != nil {
		return a.updateAddForm(msg)
	}

	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		sess, err := a.setupVals.createAccount(a.st, a.opts.Catalog)
		if err != nil {
			a.loadErr = err
			a.loaded = false
			a.needSetup = false
			a.setupForm = nil
			return a, nil
		}
		if a.opts.Clock != nil {
			sess.SetClock(a.opts.Clock)
		}
		sess.SetLogger(nil)
		a.sess = sess
		a.needSetup = false
		a.setupForm = nil
		a.recompute()
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		return a, tea.Quit
	}

	return a, cmd
}

func (a App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.addForm = f
	}

	if a.addForm.State == huh.StateCompleted {
		a.addVals.record(a.sess)
		a.adding = false
		a.addForm = nil
		a.recompute()
		return a, nil
	}

	if a.addForm.State == huh.StateAborted {
		a.adding = false
		a.addForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.loadErr != nil {
		return a.viewLoadError()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.adding && a.addForm != nil {
		return a.addForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  mealtab needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoadError() string {
	t := theme.Active

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Red).
		Padding(1, 3)

	body := lipgloss.NewStyle().Foreground(t.Red).Bold(true).Render("Failed to open data") +
		"\n\n" +
		lipgloss.NewStyle().Foreground(t.TextMuted).Render(a.loadErr.Error()) +
		"\n\n" +
		lipgloss.NewStyle().Foreground(t.TextDim).Render("Press q to quit")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card.Render(body))
}

func (a App) viewLoading() string {
	t := theme.Active

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(2, 4)

	logo := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true).Render("◈ mealtab")
	subtitle := lipgloss.NewStyle().Foreground(t.TextMuted).Render(" · Dining Balance Tracker")

	body := logo + subtitle + "\n\n" +
		lipgloss.NewStyle().Foreground(t.Accent).Render(a.spinner.View()) +
		lipgloss.NewStyle().Foreground(t.TextMuted).Render(" Opening ledger...")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card.Render(body),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Blue).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"b s h f x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate lists"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"a", "Add a purchase"},
		{"n", "New closed day (staff tab)"},
		{"d", "Delete closed day (staff tab)"},
		{"Enter", "Confirm"},
		{"Esc", "Back / Cancel"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab) + "\n"

	statusBar := components.RenderStatusBar(w,
		a.sess.Account().Username,
		cli.FormatMoney(a.summary.RemainingBalance))

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabBalance:
		content = a.renderBalanceTab(cw)
	case tabSpending:
		content = a.renderSpendingTab(cw)
	case tabHistory:
		content = a.renderHistoryTab(cw, contentH)
	case tabStaff:
		content = a.renderStaffTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// Tab indices, matching components.Tabs order.
const (
	tabBalance = iota
	tabSpending
	tabHistory
	tabStaff
	tabSettings
)

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
