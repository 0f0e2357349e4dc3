// Package history records past draws to an append-only JSON-lines file.
// Each record carries a hash chained over its predecessor, so a history
// file that has been edited or truncated in the middle no longer
// verifies. Recording is best-effort: a failed write must never spoil
// the fortune itself.
package history

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Record is one remembered draw.
type Record struct {
	Timestamp   time.Time `json:"timestamp"`
	Year        uint32    `json:"year"`
	User        string    `json:"user"`
	Digest      string    `json:"digest"`
	Fingerprint string    `json:"fingerprint"`
	Forced      bool      `json:"forced,omitempty"`
	EntryHash   string    `json:"entry_hash"`
}

// Book is an open history file.
type Book struct {
	mu       sync.Mutex
	file     *os.File
	prevHash string
}

// Open opens (or creates) the history file at path, recovering the last
// entry hash so the chain continues across runs. The directory is
// created with 0700 and the file with 0600.
func Open(path string) (*Book, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("history: create dir %s: %w", dir, err)
	}

	prevHash := ""
	if data, err := os.ReadFile(path); err == nil {
		if last := lastLine(data); last != nil {
			var rec Record
			if json.Unmarshal(last, &rec) == nil {
				prevHash = rec.EntryHash
			}
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}
	return &Book{file: f, prevHash: prevHash}, nil
}

// Append writes one record, filling in its chain hash. A zero Timestamp
// is stamped with the current UTC time.
func (b *Book) Append(rec Record) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}

	// EntryHash = SHA256(prevHash + record serialized without its hash).
	rec.EntryHash = ""
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("history: marshal: %w", err)
	}
	sum := sha256.Sum256(append([]byte(b.prevHash), raw...))
	rec.EntryHash = fmt.Sprintf("%x", sum)

	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("history: marshal final: %w", err)
	}
	line = append(line, '\n')

	if _, err := b.file.Write(line); err != nil {
		return fmt.Errorf("history: write: %w", err)
	}
	b.prevHash = rec.EntryHash
	return nil
}

// Close closes the underlying file.
func (b *Book) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.file.Close()
}

// Verify re-reads a history file and checks every link of the hash
// chain. It returns the number of valid records, or an error naming the
// first line that does not verify.
func Verify(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("history: read %s: %w", path, err)
	}

	prevHash := ""
	count := 0
	for i, line := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return count, fmt.Errorf("history: line %d: %w", i+1, err)
		}

		want := rec.EntryHash
		rec.EntryHash = ""
		raw, err := json.Marshal(rec)
		if err != nil {
			return count, fmt.Errorf("history: line %d: %w", i+1, err)
		}
		sum := sha256.Sum256(append([]byte(prevHash), raw...))
		if got := fmt.Sprintf("%x", sum); got != want {
			return count, fmt.Errorf("history: line %d: hash chain broken", i+1)
		}
		prevHash = want
		count++
	}
	return count, nil
}

// lastLine returns the last non-empty line of data.
func lastLine(data []byte) []byte {
	lines := bytes.Split(data, []byte("\n"))
	for i := len(lines) - 1; i >= 0; i-- {
		if len(bytes.TrimSpace(lines[i])) > 0 {
			return lines[i]
		}
	}
	return nil
}
