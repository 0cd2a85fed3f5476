package tasks

import (
	"testing"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/store"
)

type commandEntry struct {
	Seq int `json:"seq"`
}

func TestCompactTrimsToNewestEntries(t *testing.T) {
	st := store.NewMemory()
	for n := 0; n < maxLogEntries+100; n++ {
		if err := store.AppendLog(st, store.LogCommands, commandEntry{Seq: n}); err != nil {
			t.Fatalf("seed entry %d: %v", n, err)
		}
	}

	compact(st)

	var got []commandEntry
	store.ReadLog(st, store.LogCommands, &got)
	if len(got) != maxLogEntries {
		t.Fatalf("len after compaction = %d, want %d", len(got), maxLogEntries)
	}
	if got[0].Seq != 100 {
		t.Errorf("oldest kept entry = %d, want 100", got[0].Seq)
	}
	if got[len(got)-1].Seq != maxLogEntries+99 {
		t.Errorf("newest kept entry = %d, want %d", got[len(got)-1].Seq, maxLogEntries+99)
	}
}

func TestCompactLeavesSmallLogsAlone(t *testing.T) {
	st := store.NewMemory()
	for n := 0; n < 10; n++ {
		if err := store.AppendLog(st, store.LogFailures, commandEntry{Seq: n}); err != nil {
			t.Fatalf("seed entry %d: %v", n, err)
		}
	}

	compact(st)

	var got []commandEntry
	store.ReadLog(st, store.LogFailures, &got)
	if len(got) != 10 {
		t.Errorf("len after compaction = %d, want 10", len(got))
	}
}
