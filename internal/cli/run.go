// Package cli wires the shell core to its entry points: the interactive
// loop, one-shot -c execution and the trace inspection commands.
package cli

import (
	"io"
	"time"

	"github.com/gosh-shell/gosh/internal/audit"
	"github.com/gosh-shell/gosh/internal/builtin"
	"github.com/gosh-shell/gosh/internal/lookup"
	"github.com/gosh-shell/gosh/internal/pipeline"
	"github.com/gosh-shell/gosh/internal/session"
)

// Shell bundles the pieces one interactive session needs: the session
// state, the builtin registry, the resolver and the optional trace log.
type Shell struct {
	Session  *session.Session
	Builtins *builtin.Registry
	Resolver *lookup.Resolver
	Trace    *audit.Logger

	// Terminal streams; nil means the process's own.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New builds a shell with the standard builtins registered.
func New(sess *session.Session) *Shell {
	resolver := lookup.NewResolver()
	reg := builtin.NewRegistry()
	builtin.RegisterAll(reg, resolver.Resolve)
	return &Shell{
		Session:  sess,
		Builtins: reg,
		Resolver: resolver,
	}
}

// Eval runs one raw input line through tokenizer, pipeline builder and
// executor, returning the pipeline's exit status. No failure inside a
// single line ever terminates the shell; only the exit builtin does that.
func (s *Shell) Eval(line string) int {
	p := pipeline.Parse(pipeline.Tokenize(line))
	if len(p.Stages) == 0 {
		return 0
	}

	exec := &pipeline.Executor{
		Builtins: s.Builtins,
		Resolver: s.Resolver,
		Session:  s.Session,
		Stdin:    s.Stdin,
		Stdout:   s.Stdout,
		Stderr:   s.Stderr,
	}

	start := time.Now()
	status := exec.Run(p)
	s.logTrace(line, p, status, time.Since(start))
	return status
}

// logTrace records the executed pipeline; best effort, a trace failure
// never fails the command.
func (s *Shell) logTrace(line string, p *pipeline.Pipeline, status int, duration time.Duration) {
	if s.Trace == nil {
		return
	}
	commands := make([]string, 0, len(p.Stages))
	for _, stage := range p.Stages {
		commands = append(commands, stage.Command)
	}
	_ = s.Trace.Log(line, commands, status, duration, s.Session.Cwd)
}
