package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	goversion "github.com/caarlos0/go-version"
	lipglosslib "github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/fwojciec/hjkl"
	"github.com/fwojciec/hjkl/bubbletea"
	"github.com/fwojciec/hjkl/chroma"
	"github.com/fwojciec/hjkl/clipboard"
	"github.com/fwojciec/hjkl/fs"
	"github.com/fwojciec/hjkl/glamour"
	"github.com/fwojciec/hjkl/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newRootCmd builds the hjkl command. Documents named "-", or no document
// at all, are read from stdin.
func newRootCmd(info goversion.Info, stdin *os.File) *cobra.Command {
	v := viper.New()
	var cfgFile string
	var debug bool

	cmd := &cobra.Command{
		Use:           "hjkl [file]",
		Short:         "A terminal pager with vim-style navigation",
		Long:          "hjkl pages a file or stdin. Move with h, j, k and l, jump with gg and G, search with /.",
		Args:          cobra.MaximumNArgs(1),
		Version:       info.GitVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, cfgFile)
			if err != nil {
				return err
			}

			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			if path == "-" && isTerminal(stdin) {
				return ErrNoInput
			}

			_, debugEnv := os.LookupEnv("HJKL_DEBUG")
			logger, closeLog, err := newLogger(cfg.Log, debug || debugEnv)
			if err != nil {
				return err
			}
			defer closeLog()

			app, err := newApp(cfg, stdin, logger)
			if err != nil {
				return err
			}
			return app.Run(cmd.Context(), path)
		},
	}

	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: $XDG_CONFIG_HOME/hjkl/config.yaml)")
	flags := cmd.Flags()
	flags.String("theme", "", "color theme: dark or light")
	flags.BoolP("follow", "f", false, "reload the file when it changes")
	flags.BoolP("line-numbers", "n", false, "show line numbers")
	flags.BoolVar(&debug, "debug", false, "write debug output to the log file")

	// Bind flags to viper
	_ = v.BindPFlag("theme", flags.Lookup("theme"))
	_ = v.BindPFlag("follow.enabled", flags.Lookup("follow"))
	_ = v.BindPFlag("ui.line_numbers", flags.Lookup("line-numbers"))

	cmd.SetVersionTemplate(`hjkl {{printf "version %s\n" .Version}}`)
	cmd.AddCommand(newVersionCmd(info))
	return cmd
}

func newVersionCmd(info goversion.Info) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), info.String())
			return err
		},
	}
}

// loadConfig layers flags, HJKL_ environment variables, the config file and
// defaults, in that order of precedence. A missing default config file is
// not an error; a missing explicit one is.
func loadConfig(v *viper.Viper, cfgFile string) (hjkl.Config, error) {
	defaults := hjkl.DefaultConfig()
	v.SetDefault("scroll.horizontal", defaults.Scroll.Horizontal)
	v.SetDefault("scroll.vertical", defaults.Scroll.Vertical)
	v.SetDefault("theme", defaults.Theme)
	v.SetDefault("markdown_style", defaults.MarkdownStyle)
	v.SetDefault("ui.line_numbers", defaults.UI.LineNumbers)
	v.SetDefault("ui.status_bar", defaults.UI.StatusBar)
	v.SetDefault("follow.enabled", defaults.Follow.Enabled)
	v.SetDefault("follow.debounce", defaults.Follow.Debounce)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("log.level", defaults.Log.Level)

	v.SetEnvPrefix("HJKL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(fs.DefaultConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return hjkl.Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg hjkl.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return hjkl.Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return hjkl.Config{}, err
	}
	return cfg, nil
}

// newLogger returns a logger writing to cfg.File when debug is set and
// discarding everything otherwise; the terminal belongs to the pager.
func newLogger(cfg hjkl.LogConfig, debug bool) (*log.Logger, func(), error) {
	if !debug {
		return log.New(io.Discard), func() {}, nil
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: log.level: %w", hjkl.ErrInvalidConfig, err)
	}
	f, err := os.OpenFile(cfg.File, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		Level:           level,
		Prefix:          "hjkl",
		ReportTimestamp: true,
		ReportCaller:    true,
		TimeFormat:      "15:04:05.000",
	})
	logger.Debug("logging to file", "path", cfg.File)
	return logger, func() { _ = f.Close() }, nil
}

// markdownStyle resolves "auto" to a concrete glamour style. It must run
// before the program starts: the background query reads from the terminal,
// and a reply arriving later is seen by the UI as key presses.
func markdownStyle(style string, hasDarkBackground func() bool) string {
	if style != "auto" {
		return style
	}
	if hasDarkBackground() {
		return "dark"
	}
	return "light"
}

// newApp wires the production implementations together.
func newApp(cfg hjkl.Config, stdin io.Reader, logger *log.Logger) (*App, error) {
	theme, err := lipgloss.ThemeByName(cfg.Theme)
	if err != nil {
		return nil, err
	}
	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(theme.Palette()))
	if err != nil {
		return nil, err
	}
	markdown, err := glamour.NewRenderer(markdownStyle(cfg.MarkdownStyle, lipglosslib.HasDarkBackground))
	if err != nil {
		return nil, err
	}
	loader := fs.NewLoader(stdin, chroma.NewDetector())

	opts := []bubbletea.Option{
		bubbletea.WithTheme(theme),
		bubbletea.WithTokenizer(tokenizer),
		bubbletea.WithMarkdownRenderer(markdown),
		bubbletea.WithClipboard(clipboard.NewSystem()),
		bubbletea.WithLogger(logger),
		bubbletea.WithStep(cfg.Scroll.Step()),
		bubbletea.WithLineNumbers(cfg.UI.LineNumbers),
		bubbletea.WithStatusBar(cfg.UI.StatusBar),
	}
	if cfg.Follow.Enabled {
		opts = append(opts, bubbletea.WithFollow(fs.NewWatcher(cfg.Follow.Debounce, logger), loader))
	}

	return &App{
		Loader: loader,
		Viewer: bubbletea.NewViewer(opts...),
		Logger: logger,
	}, nil
}

func isTerminal(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return stat.Mode()&os.ModeCharDevice != 0
}
