// Package tui provides the interactive Bubble Tea dashboard for drip.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"drip/internal/config"
	"drip/internal/engine"
	"drip/internal/market"
	"drip/internal/store"
	"drip/internal/tui/components"
	"drip/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// historyLoadedMsg is sent when the saved-run history finishes loading.
type historyLoadedMsg struct {
	runs []store.Run
	err  error
}

// runSavedMsg is sent when a scenario save completes.
type runSavedMsg struct {
	err error
}

// animTickMsg drives the headline number animation.
type animTickMsg time.Time

// Projection input fields, in j/k cursor order.
const (
	fieldContribution = iota
	fieldCadence
	fieldYears
	fieldBenchmark
	fieldCount // sentinel
)

// Input bounds for the interactive sliders.
const (
	contributionStep    = 25
	contributionBigStep = 100
	maxContribution     = 5000
	yearsBigStep        = 5
	maxYears            = 50
)

// App is the root Bubble Tea model.
type App struct {
	cfg        config.Config
	benchmarks []market.Benchmark

	// Projection inputs. cadence carries the raw frequency so custom
	// integer cadences from config or saved runs survive intact.
	contribution float64
	cadence      market.Cadence
	years        int
	benchIdx     int
	returnPct    float64

	// Current projection
	result  engine.Result
	projErr error

	// Headline number animation
	anim      animator
	animating bool

	// Scenario history (nil when disabled)
	history *store.History
	runs    []store.Run
	histErr error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	note      string

	// Per-tab state
	focusField   int // projection input cursor
	yearlyScroll int
	benchCursor  int
	histCursor   int
	settings     settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

const (
	minTerminalWidth = 72
	maxContentWidth  = 120
	minContentHeight = 5
)

// loadConfigOrDefault loads config, returning defaults on error so the
// TUI can always start.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.Default()
	}
	return cfg
}

// NewApp creates the TUI app model. history may be nil when scenario
// persistence is disabled.
func NewApp(cfg config.Config, history *store.History) App {
	a := App{
		cfg:        cfg,
		benchmarks: cfg.BenchmarkSet(),
		history:    history,
		needSetup:  !config.Exists(),
	}

	a.contribution = cfg.Defaults.Contribution
	if a.contribution < 0 {
		a.contribution = 0
	}

	cad, err := market.ParseCadence(cfg.Defaults.Cadence)
	if err != nil {
		cad, _ = market.ParseCadence(market.DefaultCadence)
	}
	a.cadence = cad

	a.years = cfg.Defaults.Years
	if a.years < 1 {
		a.years = 1
	}
	if a.years > maxYears {
		a.years = maxYears
	}

	sym := cfg.Defaults.Benchmark
	if sym == "" {
		sym = market.DefaultBenchmark
	}
	for i, b := range a.benchmarks {
		if b.Symbol == sym {
			a.benchIdx = i
		}
	}
	a.returnPct = a.benchmarks[a.benchIdx].AnnualReturnPct
	if cfg.Defaults.ReturnPct != nil {
		a.returnPct = *cfg.Defaults.ReturnPct
	}

	a.anim = newAnimator(0)
	a.recompute(time.Now())

	if a.needSetup {
		a.setupForm = newSetupForm(&a.setupVals, cfg)
	}

	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnableMouseCellMotion,
		animTickCmd(),
	}
	if a.history != nil {
		cmds = append(cmds, loadHistoryCmd(a.history))
	}
	if a.needSetup && a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// recompute reruns the projection for the current inputs and retargets
// the headline animation.
func (a *App) recompute(now time.Time) {
	in := engine.Input{
		Contribution:    a.contribution,
		Frequency:       a.cadence.PeriodsPerYear,
		Years:           a.years,
		AnnualReturnPct: a.returnPct,
	}
	result, err := engine.Project(in)
	a.projErr = err
	if err != nil {
		return
	}
	a.result = result
	a.anim.retarget(result.Total, now)
	a.animating = !a.anim.done(now)

	if a.yearlyScroll > len(result.YearEnd)-1 {
		a.yearlyScroll = 0
	}
}

func (a App) benchmark() market.Benchmark {
	return a.benchmarks[a.benchIdx]
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
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Settings tab text input intercepts all keys
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		return a.updateKey(key)

	case historyLoadedMsg:
		a.runs = msg.runs
		a.histErr = msg.err
		if a.histCursor >= len(a.runs) {
			a.histCursor = 0
		}
		return a, nil

	case runSavedMsg:
		if msg.err != nil {
			a.note = "save failed"
			return a, nil
		}
		a.note = "saved"
		if a.history != nil {
			return a, loadHistoryCmd(a.history)
		}
		return a, nil

	case animTickMsg:
		if !a.animating {
			return a, animTickCmd()
		}
		if a.anim.done(time.Time(msg)) {
			a.animating = false
		}
		return a, animTickCmd()
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.activeTab == tabSettings && a.settings.editing {
		var cmd tea.Cmd
		a.settings.input, cmd = a.settings.input.Update(msg)
		return a, cmd
	}

	return a, nil
}

// Tab indices, matching components.Tabs order.
const (
	tabProjection = iota
	tabYearly
	tabBenchmarks
	tabHistory
	tabSettings
)

func (a App) updateKey(key string) (tea.Model, tea.Cmd) {
	now := time.Now()

	// Projection tab input editing
	if a.activeTab == tabProjection {
		switch key {
		case "j", "down":
			if a.focusField < fieldCount-1 {
				a.focusField++
			}
			return a, nil
		case "k", "up":
			if a.focusField > 0 {
				a.focusField--
			}
			return a, nil
		case "h", "left":
			a.adjustField(-1, now)
			return a, nil
		case "l", "right":
			a.adjustField(1, now)
			return a, nil
		case "H", "shift+left":
			a.adjustField(-bigStepMultiplier(a.focusField), now)
			return a, nil
		case "L", "shift+right":
			a.adjustField(bigStepMultiplier(a.focusField), now)
			return a, nil
		}
	}

	// Yearly tab scrolling
	if a.activeTab == tabYearly {
		switch key {
		case "j", "down":
			if a.yearlyScroll < len(a.result.YearEnd)-1 {
				a.yearlyScroll++
			}
			return a, nil
		case "k", "up":
			if a.yearlyScroll > 0 {
				a.yearlyScroll--
			}
			return a, nil
		case "g":
			a.yearlyScroll = 0
			return a, nil
		case "G":
			a.yearlyScroll = len(a.result.YearEnd) - 1
			if a.yearlyScroll < 0 {
				a.yearlyScroll = 0
			}
			return a, nil
		}
	}

	// Benchmarks tab: browse and apply
	if a.activeTab == tabBenchmarks {
		switch key {
		case "j", "down":
			if a.benchCursor < len(a.benchmarks)-1 {
				a.benchCursor++
			}
			return a, nil
		case "k", "up":
			if a.benchCursor > 0 {
				a.benchCursor--
			}
			return a, nil
		case "enter":
			a.benchIdx = a.benchCursor
			a.returnPct = a.benchmarks[a.benchIdx].AnnualReturnPct
			a.recompute(now)
			a.activeTab = tabProjection
			return a, nil
		}
	}

	// History tab navigation
	if a.activeTab == tabHistory {
		switch key {
		case "j", "down":
			if a.histCursor < len(a.runs)-1 {
				a.histCursor++
			}
			return a, nil
		case "k", "up":
			if a.histCursor > 0 {
				a.histCursor--
			}
			return a, nil
		case "enter":
			// Restore the selected scenario as the current inputs
			if a.histCursor < len(a.runs) {
				a.restoreRun(a.runs[a.histCursor], now)
				a.activeTab = tabProjection
			}
			return a, nil
		}
	}

	// Settings tab navigation (non-editing mode)
	if a.activeTab == tabSettings {
		switch key {
		case "j", "down":
			if a.settings.cursor < settingsFieldCount-1 {
				a.settings.cursor++
			}
			return a, nil
		case "k", "up":
			if a.settings.cursor > 0 {
				a.settings.cursor--
			}
			return a, nil
		case "enter":
			return a.settingsStartEdit()
		}
	}

	switch key {
	case "q", "esc":
		return a, tea.Quit

	case "s":
		return a.saveCurrentRun()

	case "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	case "shift+tab":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "1", "2", "3", "4", "5":
		a.activeTab = int(key[0] - '1')
	default:
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
		}
	}
	return a, nil
}

// bigStepMultiplier maps a field to its H/L step in units of the small step.
func bigStepMultiplier(field int) int {
	switch field {
	case fieldContribution:
		return contributionBigStep / contributionStep
	case fieldYears:
		return yearsBigStep
	default:
		return 1
	}
}

// cycleCadence steps through the named cadences. A custom frequency keeps
// projecting as-is until adjusted, then snaps to the nearest named cadence.
func cycleCadence(cur market.Cadence, delta int) market.Cadence {
	n := len(market.Cadences)
	for i, c := range market.Cadences {
		if c.PeriodsPerYear == cur.PeriodsPerYear {
			return market.Cadences[((i+delta)%n+n)%n]
		}
	}
	best, bestDiff := 0, -1
	for i, c := range market.Cadences {
		diff := c.PeriodsPerYear - cur.PeriodsPerYear
		if diff < 0 {
			diff = -diff
		}
		if bestDiff < 0 || diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	return market.Cadences[best]
}

// adjustField nudges the focused projection input by delta small steps.
func (a *App) adjustField(delta int, now time.Time) {
	switch a.focusField {
	case fieldContribution:
		a.contribution += float64(delta * contributionStep)
		if a.contribution < 0 {
			a.contribution = 0
		}
		if a.contribution > maxContribution {
			a.contribution = maxContribution
		}
	case fieldCadence:
		a.cadence = cycleCadence(a.cadence, delta)
	case fieldYears:
		a.years += delta
		if a.years < 1 {
			a.years = 1
		}
		if a.years > maxYears {
			a.years = maxYears
		}
	case fieldBenchmark:
		n := len(a.benchmarks)
		a.benchIdx = ((a.benchIdx+delta)%n + n) % n
		a.returnPct = a.benchmarks[a.benchIdx].AnnualReturnPct
	}
	a.recompute(now)
}

// restoreRun loads a saved scenario back into the projection inputs.
func (a *App) restoreRun(r store.Run, now time.Time) {
	a.contribution = r.Contribution
	if cad, err := market.ParseCadence(strconv.Itoa(r.Frequency)); err == nil {
		a.cadence = cad
	}
	a.years = r.Years
	if a.years > maxYears {
		a.years = maxYears
	}
	a.returnPct = r.ReturnPct
	for i, b := range a.benchmarks {
		if b.Symbol == r.Benchmark {
			a.benchIdx = i
		}
	}
	a.recompute(now)
}

func (a App) saveCurrentRun() (tea.Model, tea.Cmd) {
	if a.history == nil {
		a.note = "history disabled"
		return a, nil
	}
	if a.projErr != nil {
		a.note = "nothing to save"
		return a, nil
	}

	run := store.Run{
		Contribution: a.contribution,
		Frequency:    a.cadence.PeriodsPerYear,
		Years:        a.years,
		ReturnPct:    a.returnPct,
		Benchmark:    a.benchmark().Symbol,
		Total:        a.result.Total,
		Contributed:  a.result.Contributed,
		Earnings:     a.result.Earnings,
	}
	return a, saveRunCmd(a.history, run)
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		switch a.activeTab {
		case tabYearly:
			if a.yearlyScroll > 0 {
				a.yearlyScroll--
			}
		case tabHistory:
			if a.histCursor > 0 {
				a.histCursor--
			}
		}
		return a, nil

	case tea.MouseButtonWheelDown:
		switch a.activeTab {
		case tabYearly:
			if a.yearlyScroll < len(a.result.YearEnd)-1 {
				a.yearlyScroll++
			}
		case tabHistory:
			if a.histCursor < len(a.runs)-1 {
				a.histCursor++
			}
		}
		return a, nil

	case tea.MouseButtonLeft:
		// Tab bar occupies the first line
		if msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil
	}
	return a, nil
}

// tabAtX returns the tab index at the given X coordinate, or -1.
// Hitboxes mirror RenderTabBar's layout: one leading space, two spaces
// between tabs.
func (a App) tabAtX(x int) int {
	pos := 1
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 2
	}
	return -1
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.applySetup()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
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

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
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
		"\n  Terminal too narrow (%d cols)\n\n  drip needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Blue).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"p y b i x", "Jump to tab"},
		{"1-5", "Jump to tab by number"},
		{"Tab S-Tab", "Next / Previous tab"},
		{"j k", "Move between fields / rows"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Projection"))
	b.WriteString("\n")
	projBindings := []struct{ key, desc string }{
		{"h l", "Adjust focused input"},
		{"H L", "Adjust in big steps"},
		{"s", "Save scenario to history"},
	}
	for _, bind := range projBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"Enter", "Apply / Restore / Edit"},
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

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab) + "\n"

	statusBar := components.RenderStatusBar(w, a.note)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabProjection:
		content = a.renderProjectionTab(cw, contentH)
	case tabYearly:
		content = a.renderYearlyTab(cw, contentH)
	case tabBenchmarks:
		content = a.renderBenchmarksTab(cw)
	case tabHistory:
		content = a.renderHistoryTab(cw, contentH)
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

// ─── Helpers ────────────────────────────────────────────────────

func animTickCmd() tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

func loadHistoryCmd(h *store.History) tea.Cmd {
	return func() tea.Msg {
		runs, err := h.ListRuns(0)
		return historyLoadedMsg{runs: runs, err: err}
	}
}

func saveRunCmd(h *store.History, r store.Run) tea.Cmd {
	return func() tea.Msg {
		_, err := h.SaveRun(r)
		return runSavedMsg{err: err}
	}
}

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

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
