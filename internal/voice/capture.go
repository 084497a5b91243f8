package voice

import (
	"context"
	"errors"
)

// ErrAlreadyCapturing reports a Start call while capture is running. Callers
// treat it as a toggle no-op rather than a failure.
var ErrAlreadyCapturing = errors.New("voice capture already running")

// Event is one transcript delta from the recognizer. A closed event channel
// means the recognizer finished or was cancelled.
type Event struct {
	Text  string
	Final bool
	Err   error
}

// Recognizer produces a single stream of transcript events. The concrete
// engine (OS speech service, backend streaming endpoint) is an external
// collaborator; implementations wrap it behind this interface.
type Recognizer interface {
	Start(ctx context.Context) (<-chan Event, error)
	Stop()
}

// Speaker reads a question aloud. Implementations may be no-ops.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// NopSpeaker ignores all requests.
type NopSpeaker struct{}

// Speak implements Speaker.
func (NopSpeaker) Speak(context.Context, string) error { return nil }

// Capture merges recognizer events into a transcript buffer. Single
// consumer, toggle-guarded: starting while active is rejected, so no two
// recognition streams are ever live at once.
type Capture struct {
	recognizer Recognizer
	buffer     Buffer
	active     bool
	cancel     context.CancelFunc
}

// NewCapture wraps a recognizer.
func NewCapture(r Recognizer) *Capture {
	return &Capture{recognizer: r}
}

// Start clears any previous transcript and begins continuous recognition.
// Returns the event stream for the caller to drain.
func (c *Capture) Start(ctx context.Context) (<-chan Event, error) {
	if c.active {
		return nil, ErrAlreadyCapturing
	}
	if c.recognizer == nil {
		return nil, errors.New("no recognizer configured")
	}
	c.buffer.Clear()
	ctx, cancel := context.WithCancel(ctx)
	events, err := c.recognizer.Start(ctx)
	if err != nil {
		cancel()
		return nil, err
	}
	c.cancel = cancel
	c.active = true
	return events, nil
}

// Apply merges one event and returns the running transcript. A recognition
// error stops capture but keeps previously finalized text.
func (c *Capture) Apply(ev Event) string {
	if !c.active {
		return c.buffer.Pending()
	}
	if ev.Err != nil {
		c.stop()
		return c.buffer.Final()
	}
	if ev.Final {
		c.buffer.Commit(ev.Text)
	} else {
		c.buffer.SetInterim(ev.Text)
	}
	return c.buffer.Pending()
}

// Stop cancels recognition and returns the finalized transcript.
func (c *Capture) Stop() string {
	c.stop()
	return c.buffer.Final()
}

// Active reports whether capture is running.
func (c *Capture) Active() bool {
	return c.active
}

// Transcript returns the current pending transcript without stopping.
func (c *Capture) Transcript() string {
	return c.buffer.Pending()
}

func (c *Capture) stop() {
	if !c.active {
		return
	}
	c.active = false
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if c.recognizer != nil {
		c.recognizer.Stop()
	}
}
