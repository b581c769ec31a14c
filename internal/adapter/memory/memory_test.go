package memory

import (
	"context"
	"errors"
	"testing"

	"weighttrack/internal/domain"
)

func TestUserRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	u, err := db.Create(ctx, "alice", "pub-1", "hash")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID == 0 {
		t.Error("expected non-zero ID")
	}

	// Duplicate username
	if _, err := db.Create(ctx, "alice", "pub-2", "hash"); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}

	// Usernames are case-sensitive-unique
	if _, err := db.Create(ctx, "Alice", "pub-3", "hash"); err != nil {
		t.Errorf("expected distinct-case username to register, got %v", err)
	}

	got, err := db.GetByUsername(ctx, "alice")
	if err != nil || got == nil || got.ID != u.ID {
		t.Errorf("GetByUsername = %v, %v", got, err)
	}

	got, err = db.GetByPublicID(ctx, "pub-1")
	if err != nil || got == nil || got.ID != u.ID {
		t.Errorf("GetByPublicID = %v, %v", got, err)
	}

	got, _ = db.GetByPublicID(ctx, "missing")
	if got != nil {
		t.Error("expected nil for unknown public id")
	}
}

func TestWeightUpsert(t *testing.T) {
	db := New()
	ctx := context.Background()

	w, created, err := db.Upsert(ctx, 1, "2024-01-15", 70)
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if !created {
		t.Error("expected first upsert to create")
	}
	if w.Value != 70 {
		t.Errorf("expected 70, got %f", w.Value)
	}

	// Second write for the same day updates in place
	w, created, err = db.Upsert(ctx, 1, "2024-01-15", 71)
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if created {
		t.Error("expected second upsert to update")
	}
	if w.Value != 71 {
		t.Errorf("expected 71, got %f", w.Value)
	}

	items, err := db.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(items))
	}
	if items[0].Value != 71 {
		t.Errorf("expected stored value 71, got %f", items[0].Value)
	}
}

func TestWeightListOrderAndIsolation(t *testing.T) {
	db := New()
	ctx := context.Background()

	for _, day := range []string{"2024-03-01", "2024-01-15", "2024-02-10"} {
		if _, _, err := db.Upsert(ctx, 1, day, 70); err != nil {
			t.Fatalf("Upsert(%s): %v", day, err)
		}
	}
	// Adjacent user id
	if _, _, err := db.Upsert(ctx, 2, "2024-01-15", 99); err != nil {
		t.Fatalf("Upsert user 2: %v", err)
	}

	items, err := db.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 records, got %d", len(items))
	}
	want := []string{"2024-01-15", "2024-02-10", "2024-03-01"}
	for i, day := range want {
		if items[i].Day != day {
			t.Errorf("position %d: expected %s, got %s", i, day, items[i].Day)
		}
	}
	for _, w := range items {
		if w.Value == 99 {
			t.Error("listing leaked another user's record")
		}
	}
}

func TestWeightDelete(t *testing.T) {
	db := New()
	ctx := context.Background()

	if _, _, err := db.Upsert(ctx, 1, "2024-01-15", 70); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	n, err := db.DeleteByDay(ctx, 1, "2024-01-15")
	if err != nil {
		t.Fatalf("DeleteByDay: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 deletion, got %d", n)
	}

	// Deleting again is a no-op
	n, err = db.DeleteByDay(ctx, 1, "2024-01-15")
	if err != nil {
		t.Fatalf("DeleteByDay: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 deletions, got %d", n)
	}

	got, _ := db.FindByDay(ctx, 1, "2024-01-15")
	if got != nil {
		t.Error("expected record to be gone")
	}
}
