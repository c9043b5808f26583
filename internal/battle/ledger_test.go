package battle

import (
	"strconv"
	"testing"
	"time"
)

func TestLedgerEvictsOldestBeyondLimit(t *testing.T) {
	l := NewLedger(50)
	for i := 0; i < 51; i++ {
		l.Record(LedgerEntry{Timestamp: time.Unix(int64(i), 0), ResultKind: strconv.Itoa(i)})
	}
	if l.Len() != 50 {
		t.Fatalf("expected 50 entries, got %d", l.Len())
	}
	entries := l.Entries()
	if entries[0].ResultKind != "1" {
		t.Fatalf("oldest entry must be evicted, front is %q", entries[0].ResultKind)
	}
	if entries[len(entries)-1].ResultKind != "50" {
		t.Fatalf("newest entry missing, back is %q", entries[len(entries)-1].ResultKind)
	}
}

func TestLedgerEntriesReturnsCopy(t *testing.T) {
	l := NewLedger(10)
	l.Record(LedgerEntry{ResultKind: "normal"})
	entries := l.Entries()
	entries[0].ResultKind = "tampered"
	if l.Entries()[0].ResultKind != "normal" {
		t.Fatalf("Entries must not expose internal storage")
	}
}
