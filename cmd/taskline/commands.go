package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/td0m/taskline/internal/config"
	"github.com/td0m/taskline/internal/ui"
)

func newREPLCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read commands line by line from stdin (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd, rt)
		},
	}
}

// runREPL handles lines until bye or the end of input.
func runREPL(cmd *cobra.Command, rt *runtime) error {
	s, err := rt.session()
	if err != nil {
		return err
	}
	r := rt.renderer(cmd.OutOrStdout())

	in := bufio.NewReader(cmd.InOrStdin())
	for {
		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if line != "" {
			reply := s.Handle(strings.TrimRight(line, "\r\n"))
			reply.Render(r)
			if reply.Exit {
				return nil
			}
		}
		if err != nil {
			return nil
		}
	}
}

func newTUICmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Full-screen prompt with a scrolling transcript",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			s, err := rt.session()
			if err != nil {
				return err
			}
			p := tea.NewProgram(
				ui.NewREPL(s, "taskline"),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
			)
			_, err = p.Run()
			return err
		},
	}
}

func newExecCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "exec <command> [args...]",
		Short:   "Run a single command and exit",
		Example: "  taskline exec deadline submit report /by 31-12-2024 23:59",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rt.session()
			if err != nil {
				return err
			}
			reply := s.Handle(strings.Join(args, " "))
			reply.Render(rt.renderer(cmd.OutOrStdout()))
			if reply.Error != "" {
				return errCommandFailed
			}
			return nil
		},
	}
}

func newConfigCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := config.Dump(rt.cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}
