package pipeline

// Mode says what to do with a redirection target that already exists.
type Mode int

const (
	ModeTruncate Mode = iota
	ModeAppend
)

// Redirect names a file a stage's stdout or stderr is sent to. A stage
// carries at most one redirect per stream; a later operator for the same
// stream overwrites an earlier one.
type Redirect struct {
	Mode   Mode
	Target string
}

// Stage is one command within a pipeline: the command word, its
// arguments, and its redirects. Whether the command is a builtin or an
// external executable is decided at execution time, not at parse time.
type Stage struct {
	Command string
	Args    []string
	Stdout  *Redirect
	Stderr  *Redirect
}

// Pipeline is an ordered sequence of stages connected left to right.
// Empty stages never appear: consecutive, leading, or trailing pipe
// operators are dropped during parsing, so a lone `|` parses to zero
// stages and executes as a no-op.
type Pipeline struct {
	Stages []Stage
}
