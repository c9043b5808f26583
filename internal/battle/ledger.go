package battle

import "time"

// LedgerEntry summarizes one concluded encounter.
type LedgerEntry struct {
	Timestamp        time.Time     `json:"timestamp"`
	ActorClass       OpponentClass `json:"actor_class"`
	PlayerWon        bool          `json:"player_won"`
	ResultKind       string        `json:"result_kind"`
	SnowballSnapshot float64       `json:"snowball_snapshot"`
}

// Ledger keeps a bounded history of past encounters. When the bound is
// exceeded the oldest entries are truncated from the front.
type Ledger struct {
	limit   int
	entries []LedgerEntry
}

func NewLedger(limit int) *Ledger {
	return &Ledger{limit: limit}
}

func (l *Ledger) Record(e LedgerEntry) {
	l.entries = append(l.entries, e)
	if len(l.entries) > l.limit {
		// Truncate from the front; copy so the backing array does not
		// pin evicted entries.
		kept := make([]LedgerEntry, l.limit)
		copy(kept, l.entries[len(l.entries)-l.limit:])
		l.entries = kept
	}
}

// Entries returns a copy of the history, oldest first.
func (l *Ledger) Entries() []LedgerEntry {
	out := make([]LedgerEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Ledger) Len() int { return len(l.entries) }

func (l *Ledger) replace(entries []LedgerEntry) {
	l.entries = nil
	for _, e := range entries {
		l.Record(e)
	}
}
