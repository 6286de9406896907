package builtin

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gosh-shell/gosh/internal/session"
)

// History lists the session command log, 1-indexed from the start. With a
// numeric argument it lists only the last n entries, numbered by their
// true original index.
type History struct{}

func (h *History) Name() string        { return "history" }
func (h *History) Description() string { return "display the command history" }

func (h *History) Run(sess *session.Session, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	defer Drain(stdin)

	entries := sess.History
	start := 0
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			fmt.Fprintf(stderr, "history: %s: numeric argument required\n", args[0])
			return nil
		}
		if n < len(entries) {
			start = len(entries) - n
		}
	}

	for i := start; i < len(entries); i++ {
		fmt.Fprintf(stdout, "%5d  %s\n", i+1, entries[i])
	}
	return nil
}
