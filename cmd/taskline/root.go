package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/td0m/taskline/internal/app"
	"github.com/td0m/taskline/internal/config"
	"github.com/td0m/taskline/internal/logging"
	"github.com/td0m/taskline/internal/ui"
	"github.com/td0m/taskline/pkg/persist"
)

var errCommandFailed = errors.New("command failed")

// globalFlags holds flags available to all commands.
type globalFlags struct {
	ConfigPath string
	File       string
	Ephemeral  bool
	Verbose    bool
	Quiet      bool

	// logOut replaces stderr for logs.
	logOut io.Writer
}

func addGlobalFlags(cmd *cobra.Command, flags *globalFlags) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.ConfigPath, "config", "", "config file (default "+config.DefaultPath+")")
	pf.StringVarP(&flags.File, "file", "f", "", "task file (default "+config.DefaultFile+")")
	pf.BoolVar(&flags.Ephemeral, "ephemeral", false, "keep tasks in memory only")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVarP(&flags.Quiet, "quiet", "q", false, "only log warnings and errors")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// runtime is what PersistentPreRunE prepares for the subcommands.
type runtime struct {
	flags  *globalFlags
	cfg    *config.Config
	logger zerolog.Logger
	closer io.Closer
}

func (r *runtime) store() persist.Persistor {
	if r.flags.Ephemeral {
		return persist.InMemory()
	}
	return persist.InFile(r.cfg.File).WithLockTimeout(r.cfg.LockTimeout)
}

func (r *runtime) session() (*app.Session, error) {
	return app.NewSession(r.store(), r.logger)
}

func (r *runtime) renderer(w io.Writer) app.Renderer {
	return ui.NewRenderer(w, r.cfg.UI.Color && isTerminal(w))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newRootCmd(flags *globalFlags) *cobra.Command {
	rt := &runtime{flags: flags}

	cmd := &cobra.Command{
		Use:   "taskline",
		Short: "Track todos, deadlines and events from the command line",
		Long: `taskline keeps a list of tasks in a plain text file.

Commands typed at the prompt:
  todo <description>
  deadline <description> /by dd-MM-yyyy HH:mm
  event <description> /at dd-MM-yyyy HH:mm
  list | find <term>[,<term>...] | mark <n> | unmark <n> | delete <n>
  clear | undo | bye`,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			cfg, err := config.LoadWithOverrides(flags.ConfigPath, &config.Config{File: flags.File})
			if err != nil {
				return err
			}
			logger, closer, err := logging.New(logging.Options{
				Level:   cfg.Log.Level,
				Verbose: flags.Verbose,
				Quiet:   flags.Quiet,
				File:    cfg.Log.File,
				Console: flags.logOut,
			})
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			rt.cfg, rt.logger, rt.closer = cfg, logger, closer
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if rt.closer == nil {
				return nil
			}
			return rt.closer.Close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd, rt)
		},
		SilenceUsage: true,
	}

	addGlobalFlags(cmd, flags)
	cmd.AddCommand(
		newREPLCmd(rt),
		newTUICmd(rt),
		newExecCmd(rt),
		newConfigCmd(rt),
	)
	return cmd
}
