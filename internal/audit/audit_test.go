package audit

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLogAndVerify(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.jsonl")

	logger, err := NewLogger(path)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 5; i++ {
		err := logger.Log(
			"echo hi | cat",
			[]string{"echo", "cat"},
			0,
			time.Duration(i)*time.Millisecond,
			"/tmp",
		)
		if err != nil {
			t.Fatalf("log entry %d: %v", i, err)
		}
	}

	if err := Verify(path); err != nil {
		t.Fatalf("verify failed: %v", err)
	}
}

func TestChainResumesAcrossLoggers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.jsonl")

	first, err := NewLogger(path)
	if err != nil {
		t.Fatal(err)
	}
	_ = first.Log("pwd", []string{"pwd"}, 0, time.Millisecond, "/")

	// A fresh logger picks up the chain where the old one left off.
	second, err := NewLogger(path)
	if err != nil {
		t.Fatal(err)
	}
	_ = second.Log("echo bye", []string{"echo"}, 0, time.Millisecond, "/")

	if err := Verify(path); err != nil {
		t.Fatalf("verify across loggers failed: %v", err)
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.jsonl")

	logger, err := NewLogger(path)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		_ = logger.Log("true", []string{"true"}, 0, time.Millisecond, "/tmp")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	mid := len(data) / 2
	if data[mid] == 'a' {
		data[mid] = 'b'
	} else {
		data[mid] = 'a'
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}

	if err := Verify(path); err == nil {
		t.Fatal("expected verify to detect tampering")
	}
}

func TestVerifyRewrittenHashFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.jsonl")

	// An attacker can rewrite hash fields to anything, including values
	// far shorter than a real digest. Verify must report a violation, not
	// crash formatting it.
	cases := []string{
		`{"seq":1,"ts":"2026-01-02T03:04:05Z","prev_hash":"","line":"true","commands":["true"],"status":0,"duration_ms":1,"cwd":"/","hash":"deadbeef"}`,
		`{"seq":1,"ts":"2026-01-02T03:04:05Z","prev_hash":"deadbeef","line":"true","commands":["true"],"status":0,"duration_ms":1,"cwd":"/","hash":""}`,
	}
	for _, line := range cases {
		if err := os.WriteFile(path, []byte(line+"\n"), 0600); err != nil {
			t.Fatal(err)
		}
		if err := Verify(path); err == nil {
			t.Fatalf("expected a violation for %s", line)
		}
	}
}

func TestVerifyDetectsDeletedEntry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.jsonl")

	logger, err := NewLogger(path)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 5; i++ {
		_ = logger.Log("true", []string{"true"}, 0, time.Millisecond, "/tmp")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := splitLines(data)
	remaining := append(lines[:2], lines[3:]...)
	var newData []byte
	for _, line := range remaining {
		newData = append(newData, line...)
		newData = append(newData, '\n')
	}
	if err := os.WriteFile(path, newData, 0600); err != nil {
		t.Fatal(err)
	}

	if err := Verify(path); err == nil {
		t.Fatal("expected verify to detect the missing entry")
	}
}

func TestVerifyEmptyLog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.jsonl")

	if err := os.WriteFile(path, []byte{}, 0600); err != nil {
		t.Fatal(err)
	}

	if err := Verify(path); err != nil {
		t.Fatalf("empty log should be valid: %v", err)
	}
}

func TestTail(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.jsonl")

	logger, err := NewLogger(path)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		_ = logger.Log("true", []string{"true"}, i, time.Millisecond, "/tmp")
	}

	entries, err := Tail(path, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Status != 7 || entries[2].Status != 9 {
		t.Fatalf("unexpected tail window: %+v", entries)
	}
}
