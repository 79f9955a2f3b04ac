package queue

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ujsag/newspress/internal/core/domain"
)

// captureRepo records inserted entries in arrival order.
type captureRepo struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (r *captureRepo) Insert(_ context.Context, entry *domain.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *captureRepo) ListRecent(context.Context, int) ([]*domain.AuditEntry, error) {
	return nil, nil
}

func (r *captureRepo) snapshot() []domain.AuditEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

func waitFor(t *testing.T, repo *captureRepo, want int) []domain.AuditEntry {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		got := repo.snapshot()
		if len(got) >= want {
			return got
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d entries, have %d", want, len(repo.snapshot()))
	return nil
}

func TestDispatcher_PersistsEntries(t *testing.T) {
	repo := &captureRepo{}
	d := NewDispatcher(2, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Record(domain.AuditEntry{Entity: "article", EntityID: 1, Action: domain.AuditCreated, At: time.Now()})
	d.Record(domain.AuditEntry{Entity: "author", EntityID: 2, Action: domain.AuditCreated, At: time.Now()})

	got := waitFor(t, repo, 2)
	kinds := map[string]bool{}
	for _, e := range got {
		kinds[e.Entity] = true
	}
	if !kinds["article"] || !kinds["author"] {
		t.Fatalf("expected both entities persisted, got %+v", got)
	}
}

// Entries for the same entity id always land on the same worker, so their
// relative order survives the fan-out.
func TestDispatcher_PerEntityOrdering(t *testing.T) {
	repo := &captureRepo{}
	d := NewDispatcher(4, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	const n = 20
	for i := 0; i < n; i++ {
		d.Record(domain.AuditEntry{
			Entity:   "article",
			EntityID: 7,
			Action:   domain.AuditUpdated,
			Actor:    strconv.Itoa(i),
			At:       time.Now(),
		})
	}

	got := waitFor(t, repo, n)
	var sameEntity []domain.AuditEntry
	for _, e := range got {
		if e.EntityID == 7 {
			sameEntity = append(sameEntity, e)
		}
	}
	for i, e := range sameEntity {
		if e.Actor != strconv.Itoa(i) {
			t.Fatalf("order broken at %d: %+v", i, sameEntity)
		}
	}
}
