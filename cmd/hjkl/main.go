package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	goversion "github.com/caarlos0/go-version"
	"github.com/charmbracelet/log"
	"github.com/fwojciec/hjkl"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
	builtBy = ""
)

// ErrNoInput is returned when no file is given and stdin is a terminal.
var ErrNoInput = errors.New("no input: pass a file or pipe text to hjkl")

// App encapsulates the application logic for testing.
type App struct {
	Loader hjkl.Loader
	Viewer hjkl.Viewer
	Logger *log.Logger
}

// Run loads the document at path and pages it.
func (a *App) Run(ctx context.Context, path string) error {
	doc, err := a.Loader.Load(ctx, path)
	if err != nil {
		return err
	}
	if doc.Content == "" {
		return fmt.Errorf("%s: %w", displayName(path), hjkl.ErrEmptyDocument)
	}
	if a.Logger != nil {
		a.Logger.Info("opening document", "name", doc.Name, "language", doc.Language, "markdown", doc.Markdown)
	}
	return a.Viewer.View(ctx, doc)
}

func displayName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}

func main() {
	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCmd(buildVersion(version, commit, date, builtBy), os.Stdin)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "hjkl:", err)
		os.Exit(1)
	}
}

func buildVersion(version, commit, date, builtBy string) goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails("hjkl", "A terminal pager with vim-style navigation", "https://github.com/fwojciec/hjkl"),
		func(i *goversion.Info) {
			if commit != "" {
				i.GitCommit = commit
			}
			if date != "" {
				i.BuildDate = date
			}
			if version != "" {
				i.GitVersion = version
			}
			if builtBy != "" {
				i.BuiltBy = builtBy
			}
		},
	)
}
