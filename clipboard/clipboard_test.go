package clipboard_test

import (
	"errors"
	"testing"

	atotto "github.com/atotto/clipboard"
	"github.com/fwojciec/hjkl/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem_Copy(t *testing.T) {
	t.Parallel()

	cb := clipboard.NewSystem()
	testContent := "test clipboard content from hjkl"

	err := cb.Copy(testContent)
	if errors.Is(err, clipboard.ErrUnsupported) {
		t.Skip("no clipboard utility available")
	}
	if err != nil {
		// Utilities such as xclip exist but fail without a display.
		t.Skipf("clipboard not usable here: %v", err)
	}

	out, err := atotto.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, testContent, out)
}
