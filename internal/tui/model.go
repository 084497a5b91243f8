// Package tui provides the Bubble Tea interview interface.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nvoloshin/prepterm/internal/evaluate"
	"github.com/nvoloshin/prepterm/internal/model"
	"github.com/nvoloshin/prepterm/internal/session"
	"github.com/nvoloshin/prepterm/internal/store"
	"github.com/nvoloshin/prepterm/internal/voice"
)

// Pause between a submitted answer and the next question.
const transitionDelay = 1500 * time.Millisecond

type tickMsg struct {
	index int
}

type transitionMsg struct{}

type voiceEventMsg struct {
	event voice.Event
	open  bool
}

type evalDoneMsg struct {
	sessionID string
	result    model.InterviewResult
}

type speakDoneMsg struct {
	err error
}

// Model implements the Bubble Tea interview UI. It drives the session
// controller with one-second ticks, mirrors voice transcripts into the
// answer field, and hands the completed session to the assembler.
type Model struct {
	ctrl      *session.Controller
	cfg       model.InterviewType
	capture   *voice.Capture
	speaker   voice.Speaker
	assembler *evaluate.Assembler
	history   *store.Store
	readAloud bool

	input textarea.Model
	spin  spinner.Model

	width  int
	height int

	events     <-chan voice.Event
	evaluating bool
	result     *model.InterviewResult
	inputNote  string
	voiceNote  string
}

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	metaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	clockStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	urgentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	recordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
)

// NewModel constructs the interview TUI around an idle controller. The
// controller is started here so the first countdown begins on Init.
func NewModel(ctrl *session.Controller, cfg model.InterviewType, capture *voice.Capture, speaker voice.Speaker, assembler *evaluate.Assembler, history *store.Store, readAloud bool) *Model {
	ta := textarea.New()
	ta.Placeholder = "Type your answer, or press ctrl+r to dictate..."
	ta.Focus()
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetHeight(8)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = clockStyle

	if speaker == nil {
		speaker = voice.NopSpeaker{}
	}

	m := &Model{
		ctrl:      ctrl,
		cfg:       cfg,
		capture:   capture,
		speaker:   speaker,
		assembler: assembler,
		history:   history,
		readAloud: readAloud,
		input:     ta,
		spin:      sp,
	}
	m.ctrl.Start()
	return m
}

// Result returns the assembled result once the session has completed.
func (m *Model) Result() *model.InterviewResult {
	return m.result
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink, m.tickCmd()}
	if m.readAloud {
		cmds = append(cmds, m.speakCmd())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(m.contentWidth())
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		return m.handleTick(msg)
	case transitionMsg:
		m.ctrl.BeginNext()
		cmds := []tea.Cmd{m.tickCmd()}
		if m.readAloud {
			cmds = append(cmds, m.speakCmd())
		}
		return m, tea.Batch(cmds...)
	case voiceEventMsg:
		return m.handleVoiceEvent(msg)
	case evalDoneMsg:
		if msg.sessionID != m.ctrl.SessionID() {
			return m, nil
		}
		m.evaluating = false
		m.result = &msg.result
		m.persistResult(msg.result)
		return m, nil
	case speakDoneMsg:
		if msg.err != nil {
			m.voiceNote = "read-aloud unavailable"
		}
		return m, nil
	case spinner.TickMsg:
		if !m.evaluating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.result != nil {
		switch msg.String() {
		case "q", "enter", "esc", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}
	if m.evaluating {
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.ctrl.State() {
	case session.StateExitPrompt:
		switch msg.String() {
		case "y", "Y":
			m.stopCapture()
			m.ctrl.ConfirmExit()
			return m, tea.Quit
		case "n", "N", "esc":
			m.ctrl.CancelExit()
		}
		return m, nil
	case session.StateActive:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.ctrl.RequestExit()
			return m, nil
		case tea.KeyCtrlS:
			return m.submit()
		case tea.KeyCtrlR:
			return m.toggleVoice()
		case tea.KeyCtrlP:
			return m, m.speakCmd()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.ctrl.SetDraft(m.input.Value())
		m.inputNote = ""
		return m, cmd
	default:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, nil
	}
}

func (m *Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	// A tick from a previous question's chain is stale; dropping it keeps a
	// single live chain per question.
	if msg.index != m.ctrl.Index() {
		return m, nil
	}
	switch m.ctrl.State() {
	case session.StateActive:
		m.ctrl.Tick()
		return m, m.tickCmd()
	case session.StateExitPrompt:
		// Countdown pauses; keep the chain alive for when the prompt closes.
		return m, m.tickCmd()
	default:
		return m, nil
	}
}

func (m *Model) submit() (tea.Model, tea.Cmd) {
	if m.capture != nil && m.capture.Active() {
		m.ctrl.StopVoice(m.capture.Stop())
	} else {
		m.ctrl.SetDraft(m.input.Value())
	}
	done, err := m.ctrl.Submit()
	if err != nil {
		if errors.Is(err, session.ErrEmptyAnswer) {
			m.inputNote = "Your answer is empty. Say or type something before submitting."
		}
		return m, nil
	}
	m.input.Reset()
	m.inputNote = ""
	m.voiceNote = ""
	if done {
		m.evaluating = true
		return m, tea.Batch(m.spin.Tick, m.evaluateCmd())
	}
	return m, tea.Tick(transitionDelay, func(time.Time) tea.Msg {
		return transitionMsg{}
	})
}

func (m *Model) toggleVoice() (tea.Model, tea.Cmd) {
	if m.capture == nil {
		m.voiceNote = "voice capture is not available"
		return m, nil
	}
	if m.capture.Active() {
		final := m.capture.Stop()
		m.ctrl.StopVoice(final)
		m.input.SetValue(m.ctrl.Draft())
		m.events = nil
		return m, nil
	}
	events, err := m.capture.Start(context.Background())
	if err != nil {
		if !errors.Is(err, voice.ErrAlreadyCapturing) {
			m.voiceNote = fmt.Sprintf("voice capture failed: %v", err)
		}
		return m, nil
	}
	m.ctrl.StartVoice()
	m.input.Reset()
	m.events = events
	m.voiceNote = ""
	return m, m.listenCmd()
}

func (m *Model) handleVoiceEvent(msg voiceEventMsg) (tea.Model, tea.Cmd) {
	if m.capture == nil || m.events == nil {
		return m, nil
	}
	if !msg.open {
		m.ctrl.StopVoice(m.capture.Stop())
		m.input.SetValue(m.ctrl.Draft())
		m.events = nil
		return m, nil
	}
	if msg.event.Err != nil {
		m.voiceNote = fmt.Sprintf("voice capture stopped: %v", msg.event.Err)
	}
	text := m.capture.Apply(msg.event)
	if m.capture.Active() {
		m.ctrl.ApplyTranscript(text)
		m.input.SetValue(text)
		return m, m.listenCmd()
	}
	m.ctrl.StopVoice(text)
	m.input.SetValue(m.ctrl.Draft())
	m.events = nil
	return m, nil
}

func (m *Model) stopCapture() {
	if m.capture != nil && m.capture.Active() {
		m.capture.Stop()
	}
	m.events = nil
}

func (m *Model) tickCmd() tea.Cmd {
	index := m.ctrl.Index()
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{index: index}
	})
}

func (m *Model) listenCmd() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		ev, ok := <-events
		return voiceEventMsg{event: ev, open: ok}
	}
}

func (m *Model) speakCmd() tea.Cmd {
	q, ok := m.ctrl.Current()
	if !ok {
		return nil
	}
	speaker := m.speaker
	return func() tea.Msg {
		return speakDoneMsg{err: speaker.Speak(context.Background(), q.Prompt)}
	}
}

func (m *Model) evaluateCmd() tea.Cmd {
	sessionID := m.ctrl.SessionID()
	cfg := m.cfg
	questions := m.ctrl.Questions()
	answers := m.ctrl.Answers()
	assembler := m.assembler
	return func() tea.Msg {
		result := assembler.Assemble(context.Background(), sessionID, cfg, questions, answers)
		return evalDoneMsg{sessionID: sessionID, result: result}
	}
}

func (m *Model) persistResult(result model.InterviewResult) {
	if m.history == nil {
		return
	}
	ctx := context.Background()
	if _, err := m.history.InsertResult(ctx, result, m.ctrl.Total(), m.ctrl.DurationSeconds()); err != nil {
		logErrf("failed to save interview result: %v\n", err)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	switch {
	case m.result != nil:
		content = m.renderResult()
	case m.evaluating:
		content = m.spin.View() + " Scoring your answers..."
	case m.ctrl.State() == session.StateExitPrompt:
		content = m.renderExitPrompt()
	case m.ctrl.State() == session.StateTransitioning:
		content = m.renderTransition()
	case m.ctrl.State() == session.StateActive:
		content = m.renderQuestion()
	default:
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 72
	}
	w := int(float64(m.width) * 0.70)
	if w < 20 {
		w = 20
	}
	return w
}

func (m *Model) renderQuestion() string {
	q, ok := m.ctrl.Current()
	if !ok {
		return ""
	}
	width := m.contentWidth()

	position := headerStyle.Render(fmt.Sprintf("Question %d of %d", m.ctrl.Index()+1, m.ctrl.Total()))
	meta := metaStyle.Render(fmt.Sprintf("%s · %s", q.Category, q.Difficulty))
	clock := clockStyle
	if m.ctrl.Remaining() <= 10 {
		clock = urgentStyle
	}
	timer := clock.Render(formatClock(m.ctrl.Remaining()))
	header := position + "  " + meta + "  " + timer

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render(wrapText(q.Prompt, width)))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.capture != nil && m.capture.Active() {
		b.WriteString(recordStyle.Render("● recording") + "\n")
	}
	if m.inputNote != "" {
		b.WriteString(noteStyle.Render(m.inputNote) + "\n")
	}
	if m.voiceNote != "" {
		b.WriteString(noteStyle.Render(m.voiceNote) + "\n")
	}
	b.WriteString(footerStyle.Render("ctrl+s submit · ctrl+r voice · ctrl+p read aloud · esc quit"))
	return b.String()
}

func (m *Model) renderTransition() string {
	return metaStyle.Render("Answer recorded.") + "\n" + footerStyle.Render("Next question coming up...")
}

func (m *Model) renderExitPrompt() string {
	return headerStyle.Render("Quit the interview?") + "\n" +
		metaStyle.Render("Answers from this attempt will be discarded.") + "\n\n" +
		footerStyle.Render("y quit · n keep going")
}

func (m *Model) renderResult() string {
	r := m.result
	width := m.contentWidth()

	var b strings.Builder
	b.WriteString(headerStyle.Render("Interview complete") + "\n\n")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Overall score: %d/100", r.OverallScore)) + "\n\n")
	for _, s := range r.SkillScores {
		b.WriteString(fmt.Sprintf("%-24s %3d  %s\n", s.Skill, s.Score, metaStyle.Render(s.Trend)))
	}
	if len(r.Strengths) > 0 {
		b.WriteString("\n" + headerStyle.Render("Strengths") + "\n")
		b.WriteString(wrapText(strings.Join(r.Strengths, ", "), width) + "\n")
	}
	if len(r.Improvements) > 0 {
		b.WriteString("\n" + headerStyle.Render("Focus areas") + "\n")
		b.WriteString(wrapText(strings.Join(r.Improvements, ", "), width) + "\n")
	}
	if r.Feedback != "" {
		b.WriteString("\n" + wrapText(r.Feedback, width) + "\n")
	}
	b.WriteString("\n" + footerStyle.Render("Run `prepterm results` for the full dashboard · enter to exit"))
	return b.String()
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
