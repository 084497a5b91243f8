// Package resultsui provides the Bubble Tea results dashboard.
package resultsui

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nvoloshin/prepterm/internal/evaluate"
	"github.com/nvoloshin/prepterm/internal/model"
	"github.com/nvoloshin/prepterm/internal/stats"
	"github.com/nvoloshin/prepterm/internal/store"
)

const (
	tabOverview = iota
	tabSkillTable
	tabSkillCurves
	tabHistory
	tabPeers
)

const (
	plotHeight        = 10
	defaultSkillCount = 5
	leaderboardLimit  = 20
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	modalStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
)

// LeaderboardBoundary fetches the remote leaderboard for the peers tab.
type LeaderboardBoundary interface {
	Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error)
}

// Model implements the Bubble Tea results dashboard.
type Model struct {
	store       *store.Store
	filter      model.HistoryFilter
	leaderboard LeaderboardBoundary

	report      stats.Report
	errMsg      string
	skillErrMsg string

	tabs        []string
	activeTab   int
	viewports   []viewport.Model
	skillTable  table.Model
	skillLayout tableLayout

	width  int
	height int

	filterMode   bool
	filterInputs []textinput.Model
	filterIndex  int
	filterError  string

	skillSelection       []string
	skillSelectionCustom bool
	skillPerSession      map[int64]map[string]int

	skillInputMode  bool
	skillInput      textinput.Model
	skillInputError string

	peers    []model.LeaderboardEntry
	peersErr string
}

type tableLayout struct {
	width    int
	height   int
	rowCount int
	colCount int
}

// NewModel constructs a results dashboard model. The leaderboard boundary is
// optional; without it the Peers tab reports that it is offline.
func NewModel(st *store.Store, filter model.HistoryFilter, leaderboard LeaderboardBoundary) *Model {
	m := &Model{
		store:       st,
		filter:      filter,
		leaderboard: leaderboard,
		tabs:        []string{"Overview", "Skill Table", "Skill Curves", "History", "Peers"},
	}
	m.initInputs()
	m.initSkillInput()
	m.initSkillTable()
	m.initViewports()
	m.loadLeaderboard()
	m.refreshReport()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		if m.activeTab == tabSkillTable {
			m.skillTable.Focus()
		} else {
			m.skillTable.Blur()
		}
		if m.filterMode {
			return m.updateFilter(msg)
		}
		if m.skillInputMode {
			return m.updateSkillInput(msg)
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "=":
			m.filter.CurveWindow = nextCurveWindow(m.filter.CurveWindow)
			m.refreshReport()
			m.updateLayout()
			return m, nil
		case "-":
			m.filter.CurveWindow = prevCurveWindow(m.filter.CurveWindow)
			m.refreshReport()
			m.updateLayout()
			return m, nil
		case "/":
			return m.startFilter()
		case "enter":
			if m.activeTab == tabSkillCurves {
				return m.startSkillInput()
			}
			return m, nil
		case "g", "home":
			if m.activeTab == tabSkillTable {
				m.skillTable.GotoTop()
			} else {
				m.viewports[m.activeTab].GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabSkillTable {
				m.skillTable.GotoBottom()
			} else {
				m.viewports[m.activeTab].GotoBottom()
			}
			return m, nil
		default:
			if m.activeTab == tabSkillTable {
				var cmd tea.Cmd
				m.skillTable, cmd = m.skillTable.Update(msg)
				return m, cmd
			}
			vp := m.viewports[m.activeTab]
			var cmd tea.Cmd
			vp, cmd = vp.Update(msg)
			m.viewports[m.activeTab] = vp
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.skillInputMode {
		return fitLines(m.renderSkillModal(), m.width, m.height)
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(bodyHeight), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) initViewports() {
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
}

func (m *Model) initInputs() {
	m.filterInputs = []textinput.Model{
		newFilterInput("Type: "),
		newFilterInput("Since (YYYY-MM-DD): "),
		newFilterInput("Last: "),
		newFilterInput("Curve window: "),
	}
	m.setInputsFromFilter()
}

func (m *Model) initSkillTable() {
	m.skillTable = buildSkillTable(nil, 0, 1)
}

func (m *Model) initSkillInput() {
	m.skillInput = newFilterInput("Skills: ")
	m.skillInput.Placeholder = "Communication, Leadership"
}

func newFilterInput(prompt string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight + 1
	footerHeight = 1
	if !m.filterMode && m.errMsg != "" {
		footerHeight++
	}
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) setInputsFromFilter() {
	if len(m.filterInputs) == 0 {
		return
	}
	m.filterInputs[0].SetValue(strings.TrimSpace(m.filter.InterviewType))
	if m.filter.Since != nil {
		m.filterInputs[1].SetValue(m.filter.Since.Format("2006-01-02"))
	} else {
		m.filterInputs[1].SetValue("")
	}
	if m.filter.Last > 0 {
		m.filterInputs[2].SetValue(strconv.Itoa(m.filter.Last))
	} else {
		m.filterInputs[2].SetValue("")
	}
	m.filterInputs[3].SetValue(strconv.Itoa(m.filter.CurveWindow))
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, vpHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = vpHeight
	}
	m.setSkillTableSize(m.width, vpHeight)
	for i := range m.filterInputs {
		promptWidth := lipgloss.Width(m.filterInputs[i].Prompt)
		m.filterInputs[i].Width = maxInt(10, m.width-promptWidth-2)
	}
	promptWidth := lipgloss.Width(m.skillInput.Prompt)
	m.skillInput.Width = maxInt(10, modalInnerWidth(m.width)-promptWidth)
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	if count == 0 {
		return
	}
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	if m.activeTab == tabSkillTable {
		m.skillTable.Focus()
	} else {
		m.skillTable.Blur()
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	tabs := padLines(m.renderTabs(), m.width)
	filters := padLines(m.renderFilterSummary(), m.width)
	return tabs + "\n" + filters
}

func (m *Model) renderFilterSummary() string {
	typ := m.filter.InterviewType
	if typ == "" {
		typ = "any"
	}
	since := "any"
	if m.filter.Since != nil {
		since = m.filter.Since.Format("2006-01-02")
	}
	last := "all"
	if m.filter.Last > 0 {
		last = strconv.Itoa(m.filter.Last)
	}
	summary := fmt.Sprintf("Filters: type=%s  since=%s  last=%s  window=%d", typ, since, last, m.filter.CurveWindow)
	summary = truncateLine(summary, m.width)
	return headerStyle.Render(summary)
}

func (m *Model) renderHelp() string {
	help := "Nav: left/right  Scroll: up/down/pgup/pgdn  Window: -/=  Filters: /  Quit: q"
	if m.activeTab == tabSkillCurves {
		help = "Nav: left/right  Scroll: up/down/pgup/pgdn  Edit skills: enter  Window: -/=  Filters: /  Quit: q"
	}
	return headerStyle.Render(help)
}

func (m *Model) renderFilterHelp() string {
	return headerStyle.Render("tab/shift+tab: next field  enter: apply  esc: cancel  quit: q")
}

func (m *Model) renderFooter() string {
	if m.filterMode {
		return m.renderFilterHelp()
	}
	if m.errMsg != "" {
		return m.renderHelp() + "\n" + errorStyle.Render(m.errMsg)
	}
	return m.renderHelp()
}

func (m *Model) renderFilterForm() string {
	lines := []string{"Filters (enter to apply, esc to cancel)"}
	for _, input := range m.filterInputs {
		lines = append(lines, input.View())
	}
	if m.filterError != "" {
		lines = append(lines, errorStyle.Render(m.filterError))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderBody(height int) string {
	if m.filterMode {
		return fitLines(m.renderFilterForm(), m.width, height)
	}
	if m.activeTab == tabSkillTable {
		switch {
		case len(m.report.Sessions) == 0:
			return fitLines("No interviews found.", m.width, height)
		case len(m.report.SkillAggsAll) == 0:
			return fitLines("No skill scores found.", m.width, height)
		default:
			view := tableMutedStyle.Render(m.skillTable.View())
			return fitLines(view, m.width, height)
		}
	}
	return fitLines(m.viewports[m.activeTab].View(), m.width, height)
}

func (m *Model) refreshReport() {
	report, err := stats.BuildReport(context.Background(), m.store, m.filter)
	if err != nil {
		m.errMsg = err.Error()
		m.skillErrMsg = ""
		for i := range m.viewports {
			m.viewports[i].SetContent("Failed to load results.")
		}
		return
	}
	m.errMsg = ""
	m.report = report
	if !m.skillSelectionCustom {
		m.skillSelection = stats.TopSkillsByCount(m.report.SkillAggsAll, defaultSkillCount)
	}
	m.loadSkillPerSession()
	width := m.width
	if width <= 0 {
		width = 80
	}
	_, bodyHeight, _ := m.layoutHeights()
	m.applySkillTable(width, bodyHeight, true)
	m.renderTabContents()
}

func (m *Model) renderTabContents() {
	if len(m.viewports) == 0 {
		return
	}
	if m.errMsg != "" {
		for i := range m.viewports {
			m.viewports[i].SetContent("Failed to load results.")
		}
		return
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.viewports[tabOverview].SetContent(renderOverview(m.report.Sessions, m.filter.CurveWindow, width))
	m.viewports[tabSkillCurves].SetContent(renderSkillCurves(m.report.Sessions, m.skillSelection, m.skillPerSession, m.filter.CurveWindow, width, m.skillErrMsg))
	m.viewports[tabHistory].SetContent(renderHistory(m.report.Sessions))
	m.viewports[tabPeers].SetContent(renderPeers(m.peers, m.peersErr))
}

func renderOverview(sessions []model.SessionRecord, window, width int) string {
	if len(sessions) == 0 {
		return "No interviews found."
	}
	summary := renderSummaryCards(sessions, width)
	curve := renderScoreCurve(sessions, window, width)
	return strings.TrimRight(summary+"\n\n"+curve, "\n")
}

func renderSummaryCards(sessions []model.SessionRecord, width int) string {
	s := stats.BuildSummary(sessions)
	cards := []string{
		metricCard("Interviews", fmt.Sprintf("%d", s.Sessions)),
		metricCard("Avg Score", fmt.Sprintf("%.1f", s.AvgScore)),
		metricCard("Best Score", fmt.Sprintf("%d", s.BestScore)),
		metricCard("Questions", fmt.Sprintf("%d", s.TotalQuestions)),
		metricCard("Avg Length", fmt.Sprintf("%.1f min", s.AvgMinutes)),
	}
	if width < 80 {
		return strings.Join(cards, "\n")
	}
	row1 := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1], cards[2])
	row2 := lipgloss.JoinHorizontal(lipgloss.Top, cards[3], cards[4])
	return lipgloss.JoinVertical(lipgloss.Left, row1, row2)
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func renderScoreCurve(sessions []model.SessionRecord, window, width int) string {
	var buf bytes.Buffer
	if err := stats.RenderScoreCurve(&buf, sessions, window, width, plotHeight, true); err != nil {
		return fmt.Sprintf("Failed to render score curve: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func renderSkillCurves(sessions []model.SessionRecord, skills []string, perSession map[int64]map[string]int, window, width int, errMsg string) string {
	if len(sessions) == 0 {
		return "No interviews found."
	}
	if errMsg != "" {
		return fmt.Sprintf("Failed to load skill curves: %s", errMsg)
	}
	if len(skills) == 0 {
		return "No skills selected. Press Enter to pick skills."
	}
	header := headerStyle.Render(fmt.Sprintf("Skills: %s", strings.Join(skills, ", ")))
	var buf bytes.Buffer
	if err := stats.RenderSkillCurves(&buf, sessions, perSession, skills, window, width, plotHeight, true); err != nil {
		return fmt.Sprintf("Failed to render skill curves: %v", err)
	}
	return strings.TrimRight(header+"\n"+buf.String(), "\n")
}

func renderHistory(sessions []model.SessionRecord) string {
	if len(sessions) == 0 {
		return "No interviews found."
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-17s  %-16s  %5s  %9s  %7s\n", "Completed", "Type", "Score", "Questions", "Length"))
	for i := len(sessions) - 1; i >= 0; i-- {
		rec := sessions[i]
		b.WriteString(fmt.Sprintf("%-17s  %-16s  %5d  %9d  %6.1fm\n",
			rec.CompletedAt.Local().Format("2006-01-02 15:04"),
			truncateLine(rec.InterviewType, 16),
			rec.OverallScore,
			rec.QuestionCount,
			float64(rec.DurationSeconds)/60.0,
		))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderPeers(entries []model.LeaderboardEntry, errMsg string) string {
	if errMsg != "" {
		return fmt.Sprintf("Leaderboard unavailable: %s", errMsg)
	}
	if len(entries) == 0 {
		return "Leaderboard is empty."
	}
	var buf bytes.Buffer
	if err := stats.RenderLeaderboard(&buf, entries); err != nil {
		return fmt.Sprintf("Failed to render leaderboard: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func buildSkillTable(aggs []model.SkillAggregate, width, height int) table.Model {
	cols, rows := buildSkillTableData(aggs)
	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(maxInt(1, height-1)),
	)
	t.SetWidth(width)
	t.SetStyles(skillTableStyles())
	return t
}

func buildSkillTableData(aggs []model.SkillAggregate) ([]table.Column, []table.Row) {
	columns := []table.Column{
		{Title: "Skill", Width: 24},
		{Title: "Avg Score", Width: 10},
		{Title: "vs Industry", Width: 12},
		{Title: "Interviews", Width: 10},
	}
	rows := make([]table.Row, 0, len(aggs))
	if len(aggs) == 0 {
		return columns, rows
	}
	sorted := sortSkillAggsByMean(aggs)
	for _, agg := range sorted {
		mean := agg.Mean()
		delta := mean - evaluate.IndustryAverage
		rows = append(rows, table.Row{
			agg.Skill,
			fmt.Sprintf("%.1f", mean),
			fmt.Sprintf("%+.1f", delta),
			fmt.Sprintf("%d", agg.Count),
		})
	}
	return columns, rows
}

func (m *Model) applySkillTable(width, height int, force bool) {
	cols, rows := buildSkillTableData(m.report.SkillAggsAll)
	viewportHeight := maxInt(1, height-1)
	if !force &&
		m.skillLayout.width == width &&
		m.skillLayout.height == viewportHeight &&
		m.skillLayout.rowCount == len(rows) &&
		m.skillLayout.colCount == len(cols) {
		return
	}
	m.skillTable.SetColumns(cols)
	m.skillTable.SetRows(rows)
	m.skillLayout.rowCount = len(rows)
	m.skillLayout.colCount = len(cols)
	m.setSkillTableSize(width, height)
}

func (m *Model) setSkillTableSize(width, height int) {
	viewportHeight := maxInt(1, height-1)
	if m.skillLayout.width == width && m.skillLayout.height == viewportHeight {
		return
	}
	m.skillLayout.width = width
	m.skillLayout.height = viewportHeight
	m.skillTable.SetWidth(width)
	m.skillTable.SetHeight(viewportHeight)
	viewportHeight = m.adjustSkillTableHeight(height)
	if m.skillLayout.height != viewportHeight {
		m.skillLayout.height = viewportHeight
		m.skillTable.SetHeight(viewportHeight)
	}
}

func skillTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func (m *Model) adjustSkillTableHeight(bodyHeight int) int {
	target := maxInt(1, bodyHeight)
	height := m.skillTable.Height()
	viewHeight := lipgloss.Height(m.skillTable.View())
	if viewHeight == target {
		return height
	}
	height += target - viewHeight
	if height < 1 {
		height = 1
	}
	m.skillTable.SetHeight(height)
	viewHeight = lipgloss.Height(m.skillTable.View())
	if viewHeight == target {
		return height
	}
	height += target - viewHeight
	if height < 1 {
		height = 1
	}
	return height
}

func (m *Model) startFilter() (tea.Model, tea.Cmd) {
	m.filterMode = true
	m.filterError = ""
	m.setInputsFromFilter()
	return m, m.setFilterIndex(0)
}

func (m *Model) startSkillInput() (tea.Model, tea.Cmd) {
	m.skillInputMode = true
	m.skillInputError = ""
	m.skillInput.SetValue(strings.Join(m.skillSelection, ", "))
	return m, m.skillInput.Focus()
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filterMode = false
		m.filterError = ""
		return m, nil
	case tea.KeyEnter:
		if err := m.applyFilter(); err != nil {
			m.filterError = err.Error()
			return m, nil
		}
		m.filterMode = false
		m.filterError = ""
		m.refreshReport()
		m.updateLayout()
		return m, nil
	case tea.KeyTab:
		return m, m.setFilterIndex(m.filterIndex + 1)
	case tea.KeyShiftTab:
		return m, m.setFilterIndex(m.filterIndex - 1)
	}
	var cmd tea.Cmd
	m.filterInputs[m.filterIndex], cmd = m.filterInputs[m.filterIndex].Update(msg)
	return m, cmd
}

func (m *Model) updateSkillInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.skillInputMode = false
		m.skillInputError = ""
		return m, nil
	case tea.KeyEnter:
		m.applySkillInput()
		m.skillInputMode = false
		m.skillInputError = ""
		m.loadSkillPerSession()
		m.renderTabContents()
		return m, nil
	}
	var cmd tea.Cmd
	m.skillInput, cmd = m.skillInput.Update(msg)
	return m, cmd
}

func (m *Model) setFilterIndex(idx int) tea.Cmd {
	count := len(m.filterInputs)
	if count == 0 {
		return nil
	}
	if idx < 0 {
		idx = count - 1
	}
	if idx >= count {
		idx = 0
	}
	m.filterIndex = idx
	var cmd tea.Cmd
	for i := range m.filterInputs {
		if i == m.filterIndex {
			cmd = m.filterInputs[i].Focus()
		} else {
			m.filterInputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) applyFilter() error {
	typ := strings.TrimSpace(m.filterInputs[0].Value())
	sinceInput := strings.TrimSpace(m.filterInputs[1].Value())
	var since *time.Time
	if sinceInput != "" {
		parsed, err := time.ParseInLocation("2006-01-02", sinceInput, time.Local)
		if err != nil {
			return fmt.Errorf("invalid since date (expected YYYY-MM-DD)")
		}
		since = &parsed
	}

	lastInput := strings.TrimSpace(m.filterInputs[2].Value())
	last := 0
	if lastInput != "" {
		parsed, err := strconv.Atoi(lastInput)
		if err != nil || parsed < 0 {
			return fmt.Errorf("invalid last value (use 0 or positive integer)")
		}
		last = parsed
	}

	windowInput := strings.TrimSpace(m.filterInputs[3].Value())
	window := 0
	if windowInput != "" {
		parsed, err := strconv.Atoi(windowInput)
		if err != nil {
			return fmt.Errorf("invalid curve window (use integer)")
		}
		if parsed < 1 {
			return fmt.Errorf("invalid curve window (use integer >= 1)")
		}
		window = parsed
	}

	m.filter = model.HistoryFilter{
		InterviewType: typ,
		Since:         since,
		Last:          last,
		CurveWindow:   window,
	}
	return nil
}

func (m *Model) applySkillInput() {
	skills := parseSkills(m.skillInput.Value())
	if len(skills) == 0 {
		m.skillSelectionCustom = false
		m.skillSelection = stats.TopSkillsByCount(m.report.SkillAggsAll, defaultSkillCount)
		return
	}
	m.skillSelectionCustom = true
	m.skillSelection = skills
}

func (m *Model) renderSkillModal() string {
	title := cardValueStyle.Render("Select Skills")
	body := []string{
		title,
		m.skillInput.View(),
		headerStyle.Render("Comma-separated skill names. Empty resets to the most scored skills."),
		headerStyle.Render("Enter to apply / Esc to cancel"),
	}
	if m.skillInputError != "" {
		body = append(body, errorStyle.Render(m.skillInputError))
	}
	box := modalStyle.Width(modalWidth(m.width)).Render(strings.Join(body, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) loadSkillPerSession() {
	m.skillErrMsg = ""
	m.skillPerSession = nil
	if len(m.report.Sessions) == 0 || len(m.skillSelection) == 0 {
		return
	}
	perSession, err := m.store.ListSkillScoresForSessions(context.Background(), recordIDs(m.report.Sessions), m.skillSelection)
	if err != nil {
		m.skillErrMsg = err.Error()
		return
	}
	m.skillPerSession = perSession
}

func (m *Model) loadLeaderboard() {
	if m.leaderboard == nil {
		m.peersErr = "not connected to a backend"
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	entries, err := m.leaderboard.Leaderboard(ctx, leaderboardLimit)
	if err != nil {
		m.peersErr = err.Error()
		return
	}
	m.peers = entries
}

func recordIDs(sessions []model.SessionRecord) []int64 {
	ids := make([]int64, len(sessions))
	for i, rec := range sessions {
		ids[i] = rec.RowID
	}
	return ids
}

func parseSkills(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

func sortSkillAggsByMean(aggs []model.SkillAggregate) []model.SkillAggregate {
	out := append([]model.SkillAggregate(nil), aggs...)
	sort.Slice(out, func(i, j int) bool {
		mi := out[i].Mean()
		mj := out[j].Mean()
		if mi == mj {
			return out[i].Skill < out[j].Skill
		}
		return mi < mj
	})
	return out
}

func nextCurveWindow(n int) int {
	if n < 5 {
		return 5
	}
	if n%5 == 0 {
		return n + 5
	}
	return ((n / 5) + 1) * 5
}

func prevCurveWindow(n int) int {
	if n <= 5 {
		return 1
	}
	if n%5 == 0 {
		return n - 5
	}
	return (n / 5) * 5
}

func modalWidth(width int) int {
	return maxInt(40, minInt(width-4, 80))
}

func modalInnerWidth(width int) int {
	w := modalWidth(width)
	w -= 6 // 2 border + 4 padding
	if w < 10 {
		return 10
	}
	return w
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
