package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/BeatGlow/colors"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// app holds the global flags shared by all commands.
type app struct {
	debug   bool
	palette string
	log     *slog.Logger
}

func execute(args []string, stdout, stderr io.Writer) int {
	a := new(app)
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if stackFramer, ok := err.(interface{ ErrorStack() string }); a.debug && ok {
			fmt.Fprintln(stderr, stackFramer.ErrorStack())
		} else {
			fmt.Fprintln(stderr, "error: "+err.Error())
		}
		return 1
	}
	return 0
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           filepath.Base(os.Args[0]),
		Short:         "convert, compare and match RGB888 and RGB565 colors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if a.debug {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	a.debug = os.Getenv("COLORUTIL_DEBUG") != ""
	cmd.PersistentFlags().BoolVarP(&a.debug, "debug", "d", a.debug, "debug logging and error stacks")
	cmd.PersistentFlags().StringVarP(&a.palette, "palette", "p", "web", "named palette: web or svg")

	cmd.AddCommand(
		a.convertCmd(),
		a.compareCmd(),
		a.closestCmd(),
		a.lookupCmd(),
		a.listCmd(),
	)
	return cmd
}

// run wraps command errors with a stack trace.
func (a *app) run(fn func() error) error {
	if err := fn(); err != nil {
		a.log.Debug("command failed", "error", err)
		return errors.Wrap(err, 1)
	}
	return nil
}

func (a *app) selectedPalette() (colors.Palette888, error) {
	switch strings.ToLower(a.palette) {
	case "", "web":
		return colors.Web(), nil
	case "svg":
		return colors.SVG(), nil
	default:
		return nil, errors.Errorf("unsupported palette %q", a.palette)
	}
}
