package voice

import (
	"context"
	"errors"
	"testing"
)

type fakeRecognizer struct {
	events  chan Event
	started int
	stopped int
	err     error
}

func newFakeRecognizer() *fakeRecognizer {
	return &fakeRecognizer{events: make(chan Event, 8)}
}

func (f *fakeRecognizer) Start(context.Context) (<-chan Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.started++
	return f.events, nil
}

func (f *fakeRecognizer) Stop() {
	f.stopped++
}

func TestCaptureToggleGuard(t *testing.T) {
	rec := newFakeRecognizer()
	c := NewCapture(rec)

	if _, err := c.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := c.Start(context.Background()); !errors.Is(err, ErrAlreadyCapturing) {
		t.Fatalf("expected ErrAlreadyCapturing, got %v", err)
	}
	if rec.started != 1 {
		t.Fatalf("recognizer started %d times, want 1", rec.started)
	}

	c.Stop()
	if c.Active() {
		t.Fatalf("capture still active after stop")
	}
	if _, err := c.Start(context.Background()); err != nil {
		t.Fatalf("restart after stop: %v", err)
	}
}

func TestCaptureApplyBuildsTranscript(t *testing.T) {
	rec := newFakeRecognizer()
	c := NewCapture(rec)
	if _, err := c.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	if got := c.Apply(Event{Text: "hello wor"}); got != "hello wor" {
		t.Fatalf("interim transcript = %q", got)
	}
	if got := c.Apply(Event{Text: "hello world", Final: true}); got != "hello world" {
		t.Fatalf("finalized transcript = %q", got)
	}
	if got := c.Apply(Event{Text: "again"}); got != "hello world again" {
		t.Fatalf("combined transcript = %q", got)
	}
	if got := c.Stop(); got != "hello world" {
		t.Fatalf("stop should return only finalized text, got %q", got)
	}
}

func TestCaptureErrorStopsButKeepsFinalized(t *testing.T) {
	rec := newFakeRecognizer()
	c := NewCapture(rec)
	if _, err := c.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	c.Apply(Event{Text: "kept segment", Final: true})
	c.Apply(Event{Text: "lost interim"})

	got := c.Apply(Event{Err: errors.New("microphone gone")})
	if got != "kept segment" {
		t.Fatalf("expected finalized text after error, got %q", got)
	}
	if c.Active() {
		t.Fatalf("capture should stop on recognition error")
	}
	if rec.stopped != 1 {
		t.Fatalf("recognizer stopped %d times, want 1", rec.stopped)
	}
}

func TestCaptureStartClearsPreviousTranscript(t *testing.T) {
	rec := newFakeRecognizer()
	c := NewCapture(rec)
	if _, err := c.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	c.Apply(Event{Text: "previous question answer", Final: true})
	c.Stop()

	if _, err := c.Start(context.Background()); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if got := c.Transcript(); got != "" {
		t.Fatalf("previous transcript survived restart: %q", got)
	}
}

func TestCaptureStartFailure(t *testing.T) {
	rec := newFakeRecognizer()
	rec.err = errors.New("no microphone")
	c := NewCapture(rec)
	if _, err := c.Start(context.Background()); err == nil {
		t.Fatalf("expected start error")
	}
	if c.Active() {
		t.Fatalf("capture active after failed start")
	}
}
