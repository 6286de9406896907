package cli

import (
	"fmt"
	"io"
)

// RunHelp prints usage.
func RunHelp(w io.Writer) int {
	fmt.Fprintln(w, "gosh, a small interactive shell")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "usage:")
	fmt.Fprintln(w, "  gosh                       start an interactive session")
	fmt.Fprintln(w, "  gosh -c <command>          run one command line and exit")
	fmt.Fprintln(w, "  gosh --trace [--verify]    show or verify the execution trace log")
	fmt.Fprintln(w, "  gosh --version             print the version")
	fmt.Fprintln(w, "  gosh --help                show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "builtins: cd, echo, exit, history, pwd, type")
	return 0
}
