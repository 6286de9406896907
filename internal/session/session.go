// Package session holds the mutable state a shell carries between
// pipelines: the working directory and the command history. It is an
// explicit value handed to builtins and the executor rather than ambient
// process state, so tests can run against a fabricated session.
package session

import (
	"fmt"
	"os"
	"path/filepath"
)

// Session is the per-shell state. It is only ever touched between
// pipeline executions, so it needs no locking.
type Session struct {
	// Cwd is the logical working directory. Child processes run here via
	// exec.Cmd.Dir; the shell process itself never chdirs.
	Cwd string

	// History is the append-only command log, oldest first.
	History []string

	// Getenv reads an environment variable. Defaults to os.Getenv.
	Getenv func(key string) string

	// Exit terminates the whole shell with the given status. Defaults to
	// os.Exit; tests replace it to observe the code.
	Exit func(code int)
}

// New returns a session rooted at the process working directory.
func New() (*Session, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	return &Session{
		Cwd:    cwd,
		Getenv: os.Getenv,
		Exit:   os.Exit,
	}, nil
}

// Append records one submitted command line.
func (s *Session) Append(line string) {
	s.History = append(s.History, line)
}

// Chdir switches the working directory. Relative paths resolve against
// the current session directory, not the process directory. On failure
// the working directory is left unchanged.
func (s *Session) Chdir(dir string) error {
	target := dir
	if !filepath.IsAbs(target) {
		target = filepath.Join(s.Cwd, target)
	}
	target = filepath.Clean(target)

	info, err := os.Stat(target)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory")
	}
	s.Cwd = target
	return nil
}

// Home returns the HOME directory, or "" when unset.
func (s *Session) Home() string {
	return s.Getenv("HOME")
}
