package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/gosh-shell/gosh/internal/builtin"
	"github.com/gosh-shell/gosh/internal/lookup"
	"github.com/gosh-shell/gosh/internal/session"
)

// Statuses for stages the executor could not run at all.
const (
	StatusSpawnFailure = 126
	StatusNotFound     = 127
)

// Executor runs pipelines, interleaving in-process builtins with spawned
// external processes in any combination. A single-stage pipeline goes
// through the same machinery with its streams simply left un-piped.
type Executor struct {
	Builtins *builtin.Registry
	Resolver *lookup.Resolver
	Session  *session.Session

	// Terminal streams. Nil fields default to the process's own.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the pipeline and returns its exit status: the last
// stage's process status if it is external, success if it is a builtin.
// Failures along the way are reported on stderr; Run never panics out
// and never returns while a process it spawned remains unreaped.
func (e *Executor) Run(p *Pipeline) int {
	if len(p.Stages) == 0 {
		return 0
	}

	termIn, termOut, termErr := e.terminal()

	var (
		procs    procSet
		prevPipe *os.File      // live read end from an upstream external
		prevBuf  *bytes.Reader // materialized output of an upstream builtin
		lastCmd  *exec.Cmd
	)
	last := len(p.Stages) - 1

	// Every early return funnels through here so already-spawned
	// processes are terminated and reaped and no pipe end leaks.
	fail := func(status int) int {
		if prevPipe != nil {
			prevPipe.Close()
		}
		procs.abort()
		return status
	}

	for i := range p.Stages {
		stage := &p.Stages[i]

		if b, ok := e.Builtins.Lookup(stage.Command); ok {
			var out bytes.Buffer
			var files closeFiles

			stdout := io.Writer(&out)
			if stage.Stdout != nil {
				f, err := stage.Stdout.open(e.Session.Cwd)
				if err != nil {
					fmt.Fprintln(termErr, err)
					return fail(1)
				}
				files = append(files, f)
				stdout = f
			} else if i == last {
				stdout = termOut
			}

			stderr := termErr
			if stage.Stderr != nil {
				f, err := stage.Stderr.open(e.Session.Cwd)
				if err != nil {
					files.close()
					fmt.Fprintln(termErr, err)
					return fail(1)
				}
				files = append(files, f)
				stderr = f
			}

			// Only a live pipe from an external feeds a builtin; a
			// previous builtin's buffer is discarded, not forwarded.
			var upstream io.Reader
			if prevPipe != nil {
				upstream = prevPipe
			}

			// I/O trouble inside a builtin never fails the pipeline.
			_ = b.Run(e.Session, stage.Args, upstream, stdout, stderr)
			builtin.Drain(upstream)

			if prevPipe != nil {
				prevPipe.Close()
				prevPipe = nil
			}
			files.close()

			prevBuf = bytes.NewReader(out.Bytes())
			continue
		}

		path, err := e.Resolver.Resolve(stage.Command)
		if err != nil {
			fmt.Fprintf(termErr, "%s: command not found\n", stage.Command)
			return fail(StatusNotFound)
		}

		cmd := exec.Command(path, stage.Args...)
		// argv[0] is the name the user typed, not the resolved path.
		cmd.Args[0] = stage.Command
		cmd.Dir = e.Session.Cwd

		switch {
		case prevPipe != nil:
			cmd.Stdin = prevPipe
		case prevBuf != nil:
			// Relay the builtin's buffered output into the child's
			// stdin. os/exec pushes non-file readers through an OS pipe
			// on its own goroutine, so a buffer larger than the kernel
			// pipe buffer cannot deadlock against a slow-starting child.
			cmd.Stdin = prevBuf
		case i == 0:
			cmd.Stdin = termIn
		}

		var files closeFiles
		var nextRead *os.File

		switch {
		case stage.Stdout != nil:
			f, err := stage.Stdout.open(e.Session.Cwd)
			if err != nil {
				fmt.Fprintln(termErr, err)
				return fail(1)
			}
			files = append(files, f)
			cmd.Stdout = f
		case i < last:
			r, w, err := os.Pipe()
			if err != nil {
				fmt.Fprintf(termErr, "pipe: %v\n", err)
				return fail(1)
			}
			files = append(files, w)
			nextRead = r
			cmd.Stdout = w
		default:
			cmd.Stdout = termOut
		}

		cmd.Stderr = termErr
		if stage.Stderr != nil {
			f, err := stage.Stderr.open(e.Session.Cwd)
			if err != nil {
				files.close()
				if nextRead != nil {
					nextRead.Close()
				}
				fmt.Fprintln(termErr, err)
				return fail(1)
			}
			files = append(files, f)
			cmd.Stderr = f
		}

		if err := cmd.Start(); err != nil {
			files.close()
			if nextRead != nil {
				nextRead.Close()
			}
			fmt.Fprintf(termErr, "%s: %v\n", stage.Command, err)
			return fail(StatusSpawnFailure)
		}
		procs = append(procs, cmd)

		// The child holds its own copies now; close ours so EOF and
		// EPIPE propagate along the pipeline.
		if prevPipe != nil {
			prevPipe.Close()
		}
		files.close()

		prevPipe = nextRead
		prevBuf = nil
		if i == last {
			lastCmd = cmd
		}
	}

	status := 0
	for _, c := range procs {
		err := c.Wait()
		if c == lastCmd {
			status = exitStatus(err)
		}
	}
	return status
}

func (e *Executor) terminal() (io.Reader, io.Writer, io.Writer) {
	stdin, stdout, stderr := e.Stdin, e.Stdout, e.Stderr
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return stdin, stdout, stderr
}

// procSet tracks every process spawned for one pipeline. Each is waited
// exactly once before Run returns; on an abort path each is signaled to
// terminate before the wait.
type procSet []*exec.Cmd

func (ps procSet) abort() {
	for _, c := range ps {
		if c.Process != nil {
			_ = c.Process.Kill()
		}
	}
	for _, c := range ps {
		_ = c.Wait()
	}
}

// closeFiles collects pipe ends and redirect files the parent must close
// once the stage owns them.
type closeFiles []*os.File

func (cf closeFiles) close() {
	for _, f := range cf {
		f.Close()
	}
}

// exitStatus maps a Wait error to a shell status: the child's exit code,
// or 128 plus the signal number when it was killed by one.
func exitStatus(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return 128 + int(ws.Signal())
		}
		return exitErr.ExitCode()
	}
	return 1
}
