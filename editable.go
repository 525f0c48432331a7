package hjkl

import "strings"

// TargetKind classifies the element a key event was delivered to.
type TargetKind int

// Target kinds.
const (
	TargetDocument  TargetKind = iota // the document body, or anything non-editable
	TargetTextInput                   // single-line text control
	TargetTextArea                    // multi-line text control
	TargetOther                       // focusable but not editable (buttons, lists)
)

// Target describes the event's target element.
type Target struct {
	Kind            TargetKind
	ContentEditable bool
}

// IsEditable reports whether keystrokes on t are text entry rather than navigation.
func IsEditable(t Target) bool {
	return t.ContentEditable || t.Kind == TargetTextInput || t.Kind == TargetTextArea
}

// Event is a host-independent description of a key press.
type Event struct {
	Target Target
	Key    Symbol // base key, before shift is applied
	Shift  bool
}

// Symbol returns the key to match: the upper-cased base key when Shift is held,
// otherwise the base key unchanged.
func (e Event) Symbol() Symbol {
	if e.Shift {
		return Symbol(strings.ToUpper(string(e.Key)))
	}
	return e.Key
}
