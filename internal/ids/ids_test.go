package ids

import (
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGeneratesDistinctValidIDs(t *testing.T) {
	var gen UUID
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := gen.NewID()
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("NewID() = %q is not a UUID: %v", id, err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestSequenceConcurrentUse(t *testing.T) {
	seq := NewSequence("e")

	var mu sync.Mutex
	seen := make(map[string]bool)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				id := seq.NewID()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != 800 {
		t.Errorf("expected 800 distinct ids, got %d", len(seen))
	}
}

func TestSequenceFormat(t *testing.T) {
	seq := NewSequence("g")
	if got := seq.NewID(); got != "g-1" {
		t.Errorf("first id = %q, want g-1", got)
	}
	if got := seq.NewID(); got != "g-2" {
		t.Errorf("second id = %q, want g-2", got)
	}
}
