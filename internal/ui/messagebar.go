package ui

import (
	"time"

	"github.com/ecrosby/tern/internal/core"
)

// DefaultMessageDuration is how long a message stays visible unless
// configured otherwise.
const DefaultMessageDuration = 10 * time.Second

// MessageBar shows transient one-line messages at the bottom of the
// screen. An expired message is cleared exactly once on the next draw.
type MessageBar struct {
	text               string
	setAt              time.Time
	duration           time.Duration
	needsRedraw        bool
	clearedAfterExpiry bool

	// now is replaceable in tests.
	now func() time.Time
}

// NewMessageBar creates a message bar with the given expiry duration; a
// non-positive duration falls back to DefaultMessageDuration.
func NewMessageBar(duration time.Duration) *MessageBar {
	if duration <= 0 {
		duration = DefaultMessageDuration
	}
	return &MessageBar{duration: duration, now: time.Now}
}

// UpdateMessage replaces the displayed message and restarts its expiry
// clock.
func (m *MessageBar) UpdateMessage(text string) {
	m.text = text
	m.setAt = m.now()
	m.clearedAfterExpiry = false
	m.MarkRedraw(true)
}

func (m *MessageBar) expired() bool {
	return m.now().Sub(m.setAt) > m.duration
}

// NeedsRedraw implements Component. An expired message that has not been
// cleared yet forces one more draw.
func (m *MessageBar) NeedsRedraw() bool {
	return m.needsRedraw || (!m.clearedAfterExpiry && m.expired())
}

// MarkRedraw implements Component.
func (m *MessageBar) MarkRedraw(value bool) {
	m.needsRedraw = value
}

// SetSize implements Component. The bar always spans one row; nothing to
// track.
func (m *MessageBar) SetSize(core.Size) {}

// Draw implements Component.
func (m *MessageBar) Draw(r Renderer, originRow int) error {
	text := m.text
	if m.expired() {
		m.clearedAfterExpiry = true
		text = ""
	}
	return r.PrintRow(originRow, text)
}
