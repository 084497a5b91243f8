package voice

import (
	"bufio"
	"context"
	"errors"
	"os/exec"
	"strings"
)

// CommandRecognizer runs an external speech-to-text command and treats each
// line it prints as a finalized transcript segment. The command is expected
// to stream recognized phrases to stdout until cancelled.
type CommandRecognizer struct {
	name string
	args []string

	cancel context.CancelFunc
}

// NewCommandRecognizer parses a shell-like command line into a recognizer.
func NewCommandRecognizer(commandLine string) (*CommandRecognizer, error) {
	parts := strings.Fields(commandLine)
	if len(parts) == 0 {
		return nil, errors.New("voice capture command is empty")
	}
	return &CommandRecognizer{name: parts[0], args: parts[1:]}, nil
}

// Start implements Recognizer.
func (r *CommandRecognizer) Start(ctx context.Context) (<-chan Event, error) {
	ctx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(ctx, r.name, r.args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, err
	}
	r.cancel = cancel

	events := make(chan Event)
	go func() {
		defer close(events)
		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			select {
			case events <- Event{Text: line, Final: true}:
			case <-ctx.Done():
				_ = cmd.Wait()
				return
			}
		}
		if err := scanner.Err(); err != nil && ctx.Err() == nil {
			select {
			case events <- Event{Err: err}:
			case <-ctx.Done():
			}
		}
		_ = cmd.Wait()
	}()
	return events, nil
}

// Stop implements Recognizer.
func (r *CommandRecognizer) Stop() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

// CommandSpeaker reads text aloud via an external text-to-speech command.
// The text is passed as the final argument.
type CommandSpeaker struct {
	name string
	args []string
}

// NewCommandSpeaker parses a shell-like command line into a speaker.
func NewCommandSpeaker(commandLine string) (*CommandSpeaker, error) {
	parts := strings.Fields(commandLine)
	if len(parts) == 0 {
		return nil, errors.New("speak command is empty")
	}
	return &CommandSpeaker{name: parts[0], args: parts[1:]}, nil
}

// Speak implements Speaker.
func (s *CommandSpeaker) Speak(ctx context.Context, text string) error {
	cmd := exec.CommandContext(ctx, s.name, append(append([]string(nil), s.args...), text)...)
	return cmd.Run()
}
