package bubbletea

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/fwojciec/hjkl"
)

// PromptKeyMap defines the keys that close the search prompt.
type PromptKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultPromptKeyMap returns the default search prompt bindings.
func DefaultPromptKeyMap() PromptKeyMap {
	return PromptKeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// helpKeys converts the dispatcher's bindings into bubbles key bindings for
// the help view. Bindings without help text are left out.
func helpKeys(bindings []hjkl.Binding) []key.Binding {
	var out []key.Binding
	for _, b := range bindings {
		if b.Help == "" {
			continue
		}
		keys := displayKeys(b.Sequence)
		out = append(out, key.NewBinding(
			key.WithKeys(keys),
			key.WithHelp(keys, b.Help),
		))
	}
	return out
}

// displayKeys writes a sequence the way it is typed: "gg" for two runes,
// "ctrl+w j" when either key is named.
func displayKeys(seq hjkl.Sequence) string {
	keys := strings.Fields(seq.String())
	for _, k := range keys {
		if utf8.RuneCountInString(k) != 1 {
			return seq.String()
		}
	}
	return strings.Join(keys, "")
}
