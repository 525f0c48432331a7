package hjkl_test

import (
	"testing"

	"github.com/fwojciec/hjkl"
	"github.com/stretchr/testify/assert"
)

func TestIsEditable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target hjkl.Target
		want   bool
	}{
		{name: "document", target: hjkl.Target{Kind: hjkl.TargetDocument}, want: false},
		{name: "other control", target: hjkl.Target{Kind: hjkl.TargetOther}, want: false},
		{name: "text input", target: hjkl.Target{Kind: hjkl.TargetTextInput}, want: true},
		{name: "text area", target: hjkl.Target{Kind: hjkl.TargetTextArea}, want: true},
		{name: "content editable", target: hjkl.Target{Kind: hjkl.TargetOther, ContentEditable: true}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, hjkl.IsEditable(tt.target))
		})
	}
}

func TestEvent_Symbol(t *testing.T) {
	t.Parallel()

	t.Run("returns the base key without shift", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, hjkl.Symbol("g"), hjkl.Event{Key: "g"}.Symbol())
	})

	t.Run("upper-cases the base key with shift", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, hjkl.Symbol("G"), hjkl.Event{Key: "g", Shift: true}.Symbol())
	})

	t.Run("leaves an already upper-case key alone", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, hjkl.Symbol("G"), hjkl.Event{Key: "G", Shift: true}.Symbol())
	})
}
