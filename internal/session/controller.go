// Package session implements the interview session state machine.
package session

import (
	"errors"
	"strings"
	"time"

	"github.com/nvoloshin/prepterm/internal/model"
)

// State identifies the controller's position in the session lifecycle.
type State int

// Session states. Navigation is forward-only: once Active(i) is exited via
// submission the controller never returns to an earlier question within the
// same attempt. A retake constructs a fresh controller instead.
const (
	StateIdle State = iota
	StateActive
	StateTransitioning
	StateExitPrompt
	StateCompleted
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateTransitioning:
		return "transitioning"
	case StateExitPrompt:
		return "exit-prompt"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Controller errors.
var (
	ErrNoQuestions = errors.New("session has no questions")
	ErrEmptyAnswer = errors.New("answer is empty")
	ErrNotActive   = errors.New("no active question")
)

// Controller drives one interview attempt: question sequencing, the
// per-question countdown, answer collection, and exit handling. It performs
// no I/O; callers feed it ticks, edits, and transitions.
type Controller struct {
	sessionID string
	questions []model.Question
	answers   []model.Answer

	state     State
	index     int
	remaining int

	draft       string
	voiceActive bool
	usedVoice   bool

	startedAt time.Time
	now       func() time.Time
}

// New constructs a controller for a normalized question list. The question
// list is fixed for the controller's lifetime.
func New(sessionID string, questions []model.Question) (*Controller, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Controller{
		sessionID: sessionID,
		questions: questions,
		state:     StateIdle,
		now:       time.Now,
	}, nil
}

// SetClock overrides the wall clock, for tests.
func (c *Controller) SetClock(now func() time.Time) {
	c.now = now
}

// Start moves the controller from Idle to the first question.
func (c *Controller) Start() {
	if c.state != StateIdle {
		return
	}
	c.startedAt = c.now()
	c.index = 0
	c.enterQuestion()
}

// Tick advances the countdown by one second. Reaching zero does not
// auto-advance; the drafted answer is preserved until explicit submission.
func (c *Controller) Tick() {
	if c.state != StateActive {
		return
	}
	if c.remaining > 0 {
		c.remaining--
	}
}

// SetDraft replaces the drafted answer with a manual edit.
func (c *Controller) SetDraft(text string) {
	if c.state != StateActive {
		return
	}
	c.draft = text
}

// StartVoice begins voice capture for the current question, clearing any
// previous draft. Starting while already capturing is a no-op.
func (c *Controller) StartVoice() bool {
	if c.state != StateActive || c.voiceActive {
		return false
	}
	c.voiceActive = true
	c.usedVoice = true
	c.draft = ""
	return true
}

// ApplyTranscript mirrors the live transcript into the drafted answer while
// capture is active. The transcript overwrites manual edits made during
// capture; last writer wins. Intentional carry-over from the original flow,
// not a merge.
func (c *Controller) ApplyTranscript(text string) {
	if c.state != StateActive || !c.voiceActive {
		return
	}
	c.draft = text
}

// StopVoice finalizes capture, fixing the buffered transcript as the draft.
func (c *Controller) StopVoice(final string) {
	if !c.voiceActive {
		return
	}
	c.voiceActive = false
	if c.state == StateActive && strings.TrimSpace(final) != "" {
		c.draft = final
	}
}

// VoiceActive reports whether capture is running.
func (c *Controller) VoiceActive() bool {
	return c.voiceActive
}

// Submit records the drafted answer for the active question. Blank answers
// are rejected with no state change. Returns true when the session completed.
func (c *Controller) Submit() (bool, error) {
	if c.state != StateActive {
		return false, ErrNotActive
	}
	content := strings.TrimSpace(c.draft)
	if content == "" {
		return false, ErrEmptyAnswer
	}
	q := c.questions[c.index]
	elapsed := q.BudgetSeconds - c.remaining
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > q.BudgetSeconds {
		elapsed = q.BudgetSeconds
	}
	c.answers = append(c.answers, model.Answer{
		QuestionID:     q.ID,
		Content:        content,
		ElapsedSeconds: elapsed,
		AnsweredAt:     c.now(),
		UsedVoice:      c.usedVoice,
	})
	c.voiceActive = false
	if c.index+1 < len(c.questions) {
		c.state = StateTransitioning
		return false, nil
	}
	c.state = StateCompleted
	return true, nil
}

// BeginNext moves from Transitioning into the next question after the
// inter-question delay has elapsed.
func (c *Controller) BeginNext() {
	if c.state != StateTransitioning {
		return
	}
	c.index++
	c.enterQuestion()
}

// RequestExit opens the exit confirmation from an active question. The
// countdown pauses while the prompt is shown.
func (c *Controller) RequestExit() {
	if c.state != StateActive {
		return
	}
	c.state = StateExitPrompt
}

// CancelExit returns to the active question with the countdown intact.
func (c *Controller) CancelExit() {
	if c.state != StateExitPrompt {
		return
	}
	c.state = StateActive
}

// ConfirmExit abandons the attempt. Collected answers are discarded and the
// controller returns to Idle.
func (c *Controller) ConfirmExit() {
	if c.state != StateExitPrompt {
		return
	}
	c.answers = nil
	c.draft = ""
	c.voiceActive = false
	c.state = StateIdle
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// SessionID returns the attempt's session identifier.
func (c *Controller) SessionID() string {
	return c.sessionID
}

// Current returns the active question, if any. Valid in Active, ExitPrompt,
// and Transitioning (the just-answered question).
func (c *Controller) Current() (model.Question, bool) {
	if c.state == StateIdle || c.state == StateCompleted {
		return model.Question{}, false
	}
	return c.questions[c.index], true
}

// Index returns the zero-based position of the current question.
func (c *Controller) Index() int {
	return c.index
}

// Total returns the number of questions in the session.
func (c *Controller) Total() int {
	return len(c.questions)
}

// Remaining returns the countdown seconds left for the active question.
func (c *Controller) Remaining() int {
	return c.remaining
}

// Draft returns the answer text drafted so far.
func (c *Controller) Draft() string {
	return c.draft
}

// Questions returns the session's question list.
func (c *Controller) Questions() []model.Question {
	return c.questions
}

// Answers returns the ordered answers collected so far.
func (c *Controller) Answers() []model.Answer {
	return c.answers
}

// StartedAt returns when the attempt began.
func (c *Controller) StartedAt() time.Time {
	return c.startedAt
}

// DurationSeconds returns total answer time across collected answers.
func (c *Controller) DurationSeconds() int {
	total := 0
	for _, a := range c.answers {
		total += a.ElapsedSeconds
	}
	return total
}

func (c *Controller) enterQuestion() {
	c.state = StateActive
	c.remaining = c.questions[c.index].BudgetSeconds
	c.draft = ""
	c.usedVoice = false
	c.voiceActive = false
}
