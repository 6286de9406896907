// Package repl is the line source: it owns the prompt loop, line
// editing, history persistence and tab completion. The shell core only
// ever sees one trimmed line at a time.
package repl

import (
	"io"
	"os"
	"strings"

	"github.com/abiosoft/readline"

	"github.com/gosh-shell/gosh/internal/cli"
	"github.com/gosh-shell/gosh/internal/config"
)

// REPL drives an interactive session.
type REPL struct {
	shell  *cli.Shell
	cfg    *config.Config
	rl     *readline.Instance
	prompt string
}

// New builds the interactive loop: seeds the session history from the
// history file and sets up line editing with completion over builtin
// names and PATH executables.
func New(sh *cli.Shell, cfg *config.Config) (*REPL, error) {
	histPath := cfg.HistoryPath()
	seedHistory(sh, histPath)

	completer := &Completer{
		Builtins:    sh.Builtins.Names,
		Executables: sh.Resolver.Executables,
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:       cfg.Prompt,
		HistoryFile:  histPath,
		HistoryLimit: cfg.History.Limit,
		AutoComplete: completer,
	})
	if err != nil {
		return nil, err
	}

	return &REPL{shell: sh, cfg: cfg, rl: rl, prompt: cfg.Prompt}, nil
}

// Run reads and executes lines until end of input. End of input is a
// graceful exit with status 0; no pipeline failure ever ends the loop.
func (r *REPL) Run() int {
	defer r.rl.Close()

	for {
		r.rl.SetPrompt(renderPrompt(r.prompt, r.shell.Session))
		line, err := r.rl.Readline()

		switch {
		case err == io.EOF:
			return 0

		case err == readline.ErrInterrupt:
			continue // discard the partial line

		case err != nil:
			return 0

		default:
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			r.shell.Session.Append(line)
			r.shell.Eval(line)
		}
	}
}

// Close releases the terminal. The exit builtin's hook calls this before
// terminating so readline flushes its history file.
func (r *REPL) Close() {
	r.rl.Close()
}

// seedHistory loads previously saved commands into the session log so
// `history` covers past sessions too. Best effort.
func seedHistory(sh *cli.Shell, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			sh.Session.Append(line)
		}
	}
}
