package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LedgerEntry records the outcome of one completed daily puzzle.
// RevealedWords snapshots all five clues regardless of how many were
// shown during play; the reveal count is rebuilt from the guess count
// on restore.
type LedgerEntry struct {
	Success       bool     `json:"success"`
	RevealedWords []string `json:"revealedWords"`
	Guesses       []string `json:"guesses"`
}

// Ledger persists each session's daily results as a single JSON blob
// on disk, keyed by day bucket inside the blob. Storage failures never
// fail a request: a read error means "no prior record" and a write
// error means "could not save", both logged and swallowed.
type Ledger struct {
	Dir string
	mu  sync.Mutex
}

// NewLedger creates a ledger rooted at dir.
func NewLedger(dir string) *Ledger {
	return &Ledger{Dir: dir}
}

func (l *Ledger) blobPath(sessionID string) string {
	return filepath.Join(l.Dir, sessionID+".json")
}

// load reads a session's result blob. Any failure yields an empty map.
// Caller must hold l.mu.
func (l *Ledger) load(sessionID string) map[string]LedgerEntry {
	data, err := os.ReadFile(l.blobPath(sessionID))
	if err != nil {
		if !os.IsNotExist(err) {
			logWarn("Failed to read results for session %s: %v", sessionID, err)
		}
		return map[string]LedgerEntry{}
	}

	var results map[string]LedgerEntry
	if err := json.Unmarshal(data, &results); err != nil {
		logWarn("Results blob for session %s is corrupted, removing: %v", sessionID, err)
		if rmErr := os.Remove(l.blobPath(sessionID)); rmErr != nil {
			logWarn("Failed to remove corrupted results blob: %v", rmErr)
		}
		return map[string]LedgerEntry{}
	}
	if results == nil {
		return map[string]LedgerEntry{}
	}
	return results
}

// Lookup returns the entry recorded under day for this session.
func (l *Ledger) Lookup(sessionID, day string) (LedgerEntry, bool) {
	if !validSessionID(sessionID) {
		return LedgerEntry{}, false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	entry, ok := l.load(sessionID)[day]
	return entry, ok
}

// Record upserts the entry for day. Last write wins; there are no
// merge semantics.
func (l *Ledger) Record(sessionID, day string, entry LedgerEntry) {
	if !validSessionID(sessionID) {
		logWarn("Skipping result save for invalid session ID: %s", sessionID)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	results := l.load(sessionID)
	results[day] = entry

	if err := os.MkdirAll(l.Dir, 0755); err != nil {
		logWarn("Could not create results directory %s: %v", l.Dir, err)
		return
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		logWarn("Could not marshal results for session %s: %v", sessionID, err)
		return
	}
	if err := os.WriteFile(l.blobPath(sessionID), data, 0644); err != nil {
		logWarn("Could not save results for session %s: %v", sessionID, err)
		return
	}
	logInfo("Recorded daily result %s for session %s", day, sessionID)
}

// CleanupOld removes result blobs that have not been touched within
// maxAge. Runs at startup.
func (l *Ledger) CleanupOld(maxAge time.Duration) error {
	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			logWarn("Failed to stat results blob %s: %v", entry.Name(), err)
			continue
		}
		if info.ModTime().Before(cutoff) {
			path := filepath.Join(l.Dir, entry.Name())
			if err := os.Remove(path); err != nil {
				logWarn("Failed to remove old results blob %s: %v", path, err)
				continue
			}
			removed++
		}
	}
	if removed > 0 {
		logInfo("Removed %d stale result blobs", removed)
	}
	return nil
}

// validSessionID rejects IDs too short to be real session UUIDs, which
// keeps junk cookie values from creating files on disk.
func validSessionID(sessionID string) bool {
	return len(sessionID) >= 10 && filepath.Base(sessionID) == sessionID
}
