package main

import (
	"fmt"
	"os"

	"github.com/gosh-shell/gosh/internal/audit"
	"github.com/gosh-shell/gosh/internal/cli"
	"github.com/gosh-shell/gosh/internal/config"
	"github.com/gosh-shell/gosh/internal/repl"
	"github.com/gosh-shell/gosh/internal/session"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gosh: config: %v\n", err)
		return 1
	}

	sess, err := session.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gosh: %v\n", err)
		return 1
	}

	sh := cli.New(sess)

	if cfg.Trace.Enabled {
		logger, err := audit.NewLogger(cfg.Trace.Path)
		if err != nil {
			// Continue without tracing.
			fmt.Fprintf(os.Stderr, "gosh: trace: %v\n", err)
		} else {
			sh.Trace = logger
		}
	}

	args := os.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "-c":
			if len(args) < 2 {
				fmt.Fprintln(os.Stderr, "gosh: -c: option requires an argument")
				return 2
			}
			sess.Append(args[1])
			return sh.Eval(args[1])
		case "--trace":
			return cli.RunTrace(os.Stdout, cfg.Trace.Path, args[1:])
		case "--help":
			return cli.RunHelp(os.Stdout)
		case "--version":
			fmt.Printf("gosh %s\n", version)
			return 0
		default:
			fmt.Fprintf(os.Stderr, "gosh: unknown option %q\n", args[0])
			return 2
		}
	}

	r, err := repl.New(sh, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gosh: %v\n", err)
		return 1
	}
	// exit must flush readline's history file before terminating.
	sess.Exit = func(code int) {
		r.Close()
		os.Exit(code)
	}
	return r.Run()
}
