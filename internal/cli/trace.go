package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gosh-shell/gosh/internal/audit"
)

// RunTrace handles gosh --trace [--verify|--tail n].
func RunTrace(w io.Writer, logPath string, args []string) int {
	if len(args) > 0 && args[0] == "--verify" {
		if err := audit.Verify(logPath); err != nil {
			fmt.Fprintf(w, "trace verification FAILED: %v\n", err)
			return 1
		}
		fmt.Fprintln(w, "trace log integrity verified")
		return 0
	}

	n := 20
	entries, err := audit.Tail(logPath, n)
	if err != nil {
		fmt.Fprintf(w, "gosh trace: %v\n", err)
		return 1
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "no trace entries")
		return 0
	}
	for _, e := range entries {
		data, _ := json.MarshalIndent(e, "", "  ")
		fmt.Fprintf(w, "%s\n", data)
	}
	return 0
}
