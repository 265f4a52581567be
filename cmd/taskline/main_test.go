package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
)

// run executes the root command in an empty working directory.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd(&globalFlags{logOut: io.Discard})
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

func TestExec(t *testing.T) {
	is := is.New(t)
	file := filepath.Join(t.TempDir(), "tasks.txt")

	out, err := run(t, "", "exec", "--file", file, "todo", "read", "book")
	is.NoErr(err)
	is.True(strings.Contains(out, "[T][ ] read book"))
	is.True(strings.Contains(out, "1 TASK(S) NOW."))

	data, err := os.ReadFile(file)
	is.NoErr(err)
	is.Equal(string(data), "T | false | read book\n")

	out, err = run(t, "", "exec", "--file", file, "list")
	is.NoErr(err)
	is.Equal(out, "HERE ARE YOUR TASKS:\n1. [T][ ] read book\n")
}

func TestExec_Failure(t *testing.T) {
	is := is.New(t)
	file := filepath.Join(t.TempDir(), "tasks.txt")

	out, err := run(t, "", "exec", "--file", file, "delete", "3")
	is.True(errors.Is(err, errCommandFailed))
	is.Equal(out, "INVALID INDEX\n")
}

func TestREPL(t *testing.T) {
	is := is.New(t)
	file := filepath.Join(t.TempDir(), "tasks.txt")
	stdin := "todo a\nTODO b\ndelete 1\nundo\nbye\ntodo never\n"

	out, err := run(t, stdin, "--file", file)
	is.NoErr(err)
	is.True(strings.Contains(out, "TASK REMOVED:\n[T][ ] a\n1 TASK(S) NOW."))
	is.True(strings.Contains(out, "UNDO SUCCESSFUL. 2 TASK(S) NOW."))
	is.True(strings.HasSuffix(out, "BYE. HOPE TO SEE YOU AGAIN SOON!\n"))

	data, err := os.ReadFile(file)
	is.NoErr(err)
	is.Equal(string(data), "T | false | a\nT | false | b\n")
}

func TestREPL_EndOfInput(t *testing.T) {
	is := is.New(t)
	file := filepath.Join(t.TempDir(), "tasks.txt")

	out, err := run(t, "list\nblah", "repl", "--file", file)
	is.NoErr(err)
	is.Equal(out, "NO TASKS IN LIST.\nINVALID COMMAND\n")
}

func TestREPL_LongLine(t *testing.T) {
	is := is.New(t)
	file := filepath.Join(t.TempDir(), "tasks.txt")
	long := strings.Repeat("x", 70*1024)

	out, err := run(t, "todo "+long+"\r\nbye\n", "--file", file)
	is.NoErr(err)
	is.True(strings.Contains(out, "1 TASK(S) NOW."))
	is.True(strings.HasSuffix(out, "BYE. HOPE TO SEE YOU AGAIN SOON!\n"))

	out, err = run(t, "", "exec", "--file", file, "list")
	is.NoErr(err)
	is.Equal(out, "HERE ARE YOUR TASKS:\n1. [T][ ] "+long+"\n")
}

func TestExec_LineBreak(t *testing.T) {
	is := is.New(t)
	file := filepath.Join(t.TempDir(), "tasks.txt")

	out, err := run(t, "", "exec", "--file", file, "todo", "a\nb")
	is.True(errors.Is(err, errCommandFailed))
	is.Equal(out, "DESCRIPTION MUST FIT ON ONE LINE\n")

	_, err = os.Stat(file)
	is.True(errors.Is(err, os.ErrNotExist)) // nothing written

	_, err = run(t, "", "exec", "--file", file, "list")
	is.NoErr(err)
}

func TestEphemeral(t *testing.T) {
	is := is.New(t)
	file := filepath.Join(t.TempDir(), "tasks.txt")

	_, err := run(t, "todo a\nbye\n", "--ephemeral", "--file", file)
	is.NoErr(err)
	_, err = os.Stat(file)
	is.True(errors.Is(err, os.ErrNotExist))
}

func TestConfig(t *testing.T) {
	is := is.New(t)

	out, err := run(t, "", "config", "--file", "elsewhere.txt")
	is.NoErr(err)
	is.True(strings.Contains(out, "file: elsewhere.txt"))
	is.True(strings.Contains(out, "lock_timeout: 5s"))
	is.True(strings.Contains(out, "level: info"))
}

func TestVerboseQuietExclusive(t *testing.T) {
	is := is.New(t)
	_, err := run(t, "", "config", "-v", "-q")
	is.True(err != nil)
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
