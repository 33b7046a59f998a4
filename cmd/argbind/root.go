package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/hashicorp/go-argbind"
	"github.com/hashicorp/go-argbind/internal/render"
)

// settings are the front-end flags shared by every command.
type settings struct {
	prefix        string
	caseSensitive bool
	allowUnknown  bool
	color         string
	logLevel      string
}

func newRootCommand() *cobra.Command {
	s := &settings{}

	rootCmd := &cobra.Command{
		Use:           "argbind",
		Short:         "Bind command-line tokens onto a sample configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&s.prefix, "prefix", argbind.DefaultOptionPrefix, "Prefix marking a token as an option")
	flags.BoolVar(&s.caseSensitive, "case-sensitive", false, "Match option names and booleans case sensitively")
	flags.BoolVar(&s.allowUnknown, "allow-unknown", false, "Ignore unknown options instead of reporting them")
	flags.StringVar(&s.color, "color", "auto", "Color output: auto, always or never")
	flags.StringVar(&s.logLevel, "log-level", "warn", "Log level: trace, debug, info, warn or error")

	rootCmd.AddCommand(newBindCommand(s))
	rootCmd.AddCommand(newSlotsCommand(s))

	return rootCmd
}

func (s *settings) validate() error {
	switch s.color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid --color %q: expected auto, always or never", s.color)
	}

	if s.prefix == "" {
		return fmt.Errorf("--prefix must not be empty")
	}

	if hclog.LevelFromString(s.logLevel) == hclog.NoLevel {
		return fmt.Errorf("invalid --log-level %q", s.logLevel)
	}

	return nil
}

func (s *settings) logger(w io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "cli",
		Level:  hclog.LevelFromString(s.logLevel),
		Output: w,
	})
}

func (s *settings) options(w io.Writer) []argbind.Option {
	return []argbind.Option{
		argbind.WithLogger(s.logger(w)),
		argbind.WithOptionPrefix(s.prefix),
		argbind.WithCaseSensitive(s.caseSensitive),
		argbind.WithAllowUnknownOptions(s.allowUnknown),
	}
}

// useColor resolves --color against the writer output goes to.
func (s *settings) useColor(w io.Writer) bool {
	switch strings.ToLower(s.color) {
	case "always":
		return true
	case "never":
		return false
	}

	f, ok := w.(*os.File)
	return ok && render.ColorEnabled(f)
}
