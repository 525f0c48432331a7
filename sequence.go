package hjkl

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidSequence is returned when a trigger is not one or two non-empty keys.
var ErrInvalidSequence = errors.New("invalid key sequence")

// Sequence is a one- or two-key trigger.
type Sequence struct {
	first  Symbol // NoSymbol for single-key triggers
	second Symbol
}

// NewSequence builds a Sequence from one or two keys.
func NewSequence(keys ...Symbol) (Sequence, error) {
	for _, k := range keys {
		if k == NoSymbol {
			return Sequence{}, fmt.Errorf("%w: empty key in %q", ErrInvalidSequence, keys)
		}
	}
	switch len(keys) {
	case 1:
		return Sequence{second: keys[0]}, nil
	case 2:
		return Sequence{first: keys[0], second: keys[1]}, nil
	default:
		return Sequence{}, fmt.Errorf("%w: want 1 or 2 keys, got %d", ErrInvalidSequence, len(keys))
	}
}

// ParseSequence parses a trigger written as text.
//
// Whitespace separates named keys ("ctrl+w j"). Without whitespace, a one- or
// two-rune string is read rune by rune ("gg", "G"), and anything longer is a
// single named key ("ctrl+d", "enter").
func ParseSequence(s string) (Sequence, error) {
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		fields := strings.Fields(s)
		keys := make([]Symbol, len(fields))
		for i, f := range fields {
			keys[i] = Symbol(f)
		}
		return NewSequence(keys...)
	}

	switch utf8.RuneCountInString(s) {
	case 0:
		return NewSequence()
	case 1, 2:
		var keys []Symbol
		for _, r := range s {
			keys = append(keys, Symbol(string(r)))
		}
		return NewSequence(keys...)
	default:
		return NewSequence(Symbol(s))
	}
}

// MustParseSequence is like ParseSequence but panics on error.
func MustParseSequence(s string) Sequence {
	seq, err := ParseSequence(s)
	if err != nil {
		panic(err)
	}
	return seq
}

// Matches reports whether the trigger fires for the given window.
// A single-key trigger ignores previous entirely.
func (s Sequence) Matches(previous, current Symbol) bool {
	if s.first == NoSymbol {
		return current == s.second
	}
	return previous == s.first && current == s.second
}

// Len returns the number of keys in the trigger.
func (s Sequence) Len() int {
	if s.first == NoSymbol {
		return 1
	}
	return 2
}

// String returns the trigger as space-separated keys, e.g. "g g".
func (s Sequence) String() string {
	if s.first == NoSymbol {
		return string(s.second)
	}
	return string(s.first) + " " + string(s.second)
}
