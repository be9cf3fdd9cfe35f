package boundary

// Entry is one failure kept by a Journal.
type Entry struct {
	Err     error
	Context FailureContext
}

// Journal keeps the most recent failures in memory so they can be shown in
// the UI. Like the boundary, it is only touched from the event loop.
type Journal struct {
	limit   int
	entries []Entry
}

// NewJournal keeps at most limit entries; older ones are dropped first.
func NewJournal(limit int) *Journal {
	if limit <= 0 {
		limit = 1
	}
	return &Journal{limit: limit}
}

// Report implements Reporter.
func (j *Journal) Report(err error, fc FailureContext) {
	j.entries = append(j.entries, Entry{Err: err, Context: fc})
	if over := len(j.entries) - j.limit; over > 0 {
		j.entries = append(j.entries[:0], j.entries[over:]...)
	}
}

// Entries returns the kept failures, oldest first.
func (j *Journal) Entries() []Entry {
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Len returns the number of kept failures.
func (j *Journal) Len() int { return len(j.entries) }
