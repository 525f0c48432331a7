package bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/hjkl"
)

// KeyEvent converts a Bubble Tea key message into an event for the dispatcher.
//
// Printable keys use their rune as the key. The terminal already reports
// shifted letters in upper case, so Shift is never set. Named keys use Bubble
// Tea's name for them ("ctrl+d", "enter", "up"). Pastes and multi-rune input
// carry no key.
func KeyEvent(msg tea.KeyMsg, target hjkl.Target) hjkl.Event {
	ev := hjkl.Event{Target: target}
	if msg.Paste {
		return ev
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return ev
		}
		key := string(msg.Runes[0])
		if msg.Alt {
			key = "alt+" + key
		}
		ev.Key = hjkl.Symbol(key)
	default:
		ev.Key = hjkl.Symbol(msg.String())
	}
	return ev
}
