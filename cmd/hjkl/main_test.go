package main_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/hjkl"
	main "github.com/fwojciec/hjkl/cmd/hjkl"
	"github.com/fwojciec/hjkl/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_Run_Success(t *testing.T) {
	t.Parallel()

	expected := &hjkl.Document{Name: "main.go", Content: "package main\n", Language: "Go"}

	var loadedPath string
	var viewed *hjkl.Document

	app := &main.App{
		Loader: &mock.Loader{
			LoadFn: func(_ context.Context, path string) (*hjkl.Document, error) {
				loadedPath = path
				return expected, nil
			},
		},
		Viewer: &mock.Viewer{
			ViewFn: func(_ context.Context, doc *hjkl.Document) error {
				viewed = doc
				return nil
			},
		},
	}

	err := app.Run(context.Background(), "main.go")

	require.NoError(t, err)
	assert.Equal(t, "main.go", loadedPath, "loader should receive the path")
	assert.Equal(t, expected, viewed, "viewer should receive the loaded document")
}

func TestApp_Run_LoadError(t *testing.T) {
	t.Parallel()

	app := &main.App{
		Loader: &mock.Loader{
			LoadFn: func(context.Context, string) (*hjkl.Document, error) {
				return nil, hjkl.ErrBinary
			},
		},
		Viewer: &mock.Viewer{},
	}

	err := app.Run(context.Background(), "image.png")

	require.ErrorIs(t, err, hjkl.ErrBinary)
}

func TestApp_Run_ViewError(t *testing.T) {
	t.Parallel()

	viewErr := errors.New("terminal error")
	app := &main.App{
		Loader: &mock.Loader{
			LoadFn: func(context.Context, string) (*hjkl.Document, error) {
				return &hjkl.Document{Name: "-", Content: "text\n"}, nil
			},
		},
		Viewer: &mock.Viewer{
			ViewFn: func(context.Context, *hjkl.Document) error {
				return viewErr
			},
		},
	}

	err := app.Run(context.Background(), "-")

	require.Error(t, err)
	assert.Equal(t, viewErr, err)
}

func TestApp_Run_EmptyDocument(t *testing.T) {
	t.Parallel()

	viewerCalled := false
	app := &main.App{
		Loader: &mock.Loader{
			LoadFn: func(context.Context, string) (*hjkl.Document, error) {
				return &hjkl.Document{Name: "-"}, nil
			},
		},
		Viewer: &mock.Viewer{
			ViewFn: func(context.Context, *hjkl.Document) error {
				viewerCalled = true
				return nil
			},
		},
	}

	err := app.Run(context.Background(), "-")

	require.ErrorIs(t, err, hjkl.ErrEmptyDocument)
	assert.Contains(t, err.Error(), "stdin")
	assert.False(t, viewerCalled, "viewer should not be called for an empty document")
}
