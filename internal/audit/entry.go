package audit

import "time"

// Entry is a single trace record: one executed pipeline.
type Entry struct {
	Seq      uint64    `json:"seq"`
	Time     time.Time `json:"ts"`
	PrevHash string    `json:"prev_hash"`
	Line     string    `json:"line"`     // raw input line as typed
	Commands []string  `json:"commands"` // command word of each stage
	Status   int       `json:"status"`   // pipeline exit status, 0 = success
	Duration float64   `json:"duration_ms"`
	Cwd      string    `json:"cwd"`
	Hash     string    `json:"hash"` // SHA-256 of this entry with hash field empty
}
