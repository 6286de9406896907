package repl

import (
	"sort"
	"strings"
)

// Completer supplies tab-completion candidates from the two sources the
// core exposes to the line source: the builtin-name list and the PATH
// executable scan.
type Completer struct {
	Builtins    func() []string
	Executables func(prefix string) []string
}

// Do implements readline.AutoCompleter. It completes the word under the
// cursor, returning candidate suffixes.
func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	start := pos
	for start > 0 && line[start-1] != ' ' && line[start-1] != '\t' {
		start--
	}
	word := string(line[start:pos])
	if word == "" {
		return nil, 0
	}

	seen := make(map[string]bool)
	var matches []string
	for _, name := range c.Builtins() {
		if strings.HasPrefix(name, word) && !seen[name] {
			seen[name] = true
			matches = append(matches, name)
		}
	}
	for _, name := range c.Executables(word) {
		if !seen[name] {
			seen[name] = true
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)

	completions := make([][]rune, 0, len(matches))
	for _, m := range matches {
		completions = append(completions, []rune(m[len(word):]+" "))
	}
	return completions, len(word)
}
