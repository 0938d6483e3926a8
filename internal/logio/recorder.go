package logio

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Record is one diagnostic captured by a Recorder.
type Record struct {
	Level   Level
	Message string
	Attrs   map[string]interface{}
}

func (rec Record) String() string {
	var sb strings.Builder
	sb.WriteString(LevelName(rec.Level))
	sb.WriteString(": ")
	sb.WriteString(rec.Message)
	for _, key := range sortedKeys(rec.Attrs) {
		fmt.Fprintf(&sb, " %v=%v", key, rec.Attrs[key])
	}
	return sb.String()
}

// Recorder is a Sink that retains every record it receives, so that tests
// may assert on emitted diagnostics.
type Recorder struct {
	mu      sync.Mutex
	records []Record
}

// Log appends a record; odd trailing args are kept under the "!BADKEY" key,
// as slog does.
func (rc *Recorder) Log(level Level, mess string, args ...interface{}) {
	rec := Record{Level: level, Message: mess}
	if len(args) > 0 {
		rec.Attrs = make(map[string]interface{}, len(args)/2+1)
		for i := 0; i < len(args); i += 2 {
			key, ok := args[i].(string)
			if !ok || i+1 >= len(args) {
				rec.Attrs["!BADKEY"] = args[i]
				i--
				continue
			}
			rec.Attrs[key] = args[i+1]
		}
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.records = append(rc.records, rec)
}

// Records returns a copy of all records logged so far.
func (rc *Recorder) Records() []Record {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return append([]Record(nil), rc.records...)
}

// AtLevel returns records whose level is at least level.
func (rc *Recorder) AtLevel(level Level) (recs []Record) {
	for _, rec := range rc.Records() {
		if rec.Level >= level {
			recs = append(recs, rec)
		}
	}
	return recs
}

// Messages returns the message of every record at or above level.
func (rc *Recorder) Messages(level Level) (messes []string) {
	for _, rec := range rc.AtLevel(level) {
		messes = append(messes, rec.Message)
	}
	return messes
}

// Reset drops all retained records.
func (rc *Recorder) Reset() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.records = nil
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
