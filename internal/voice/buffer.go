// Package voice adapts continuous speech capture to the session flow.
package voice

import "strings"

// Buffer accumulates finalized transcript segments plus a transient interim
// segment. Finalized text is append-only; the pending view is rebuilt on
// every recognition event. Cleared explicitly between questions.
type Buffer struct {
	finalized []string
	interim   string
}

// Commit appends a finalized segment and drops the interim view.
func (b *Buffer) Commit(segment string) {
	segment = strings.TrimSpace(segment)
	if segment != "" {
		b.finalized = append(b.finalized, segment)
	}
	b.interim = ""
}

// SetInterim replaces the transient segment.
func (b *Buffer) SetInterim(segment string) {
	b.interim = strings.TrimSpace(segment)
}

// Pending returns finalized text plus the current interim segment.
func (b *Buffer) Pending() string {
	if b.interim == "" {
		return b.Final()
	}
	parts := append(append([]string(nil), b.finalized...), b.interim)
	return strings.Join(parts, " ")
}

// Final returns only the finalized transcript.
func (b *Buffer) Final() string {
	return strings.Join(b.finalized, " ")
}

// Clear discards all accumulated text. A capture started after Clear never
// reintroduces pre-clear segments.
func (b *Buffer) Clear() {
	b.finalized = nil
	b.interim = ""
}
