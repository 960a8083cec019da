package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestOpen(t *testing.T) {
	st := openTestStore(t)

	var name string
	err := st.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='items'").Scan(&name)
	if err != nil {
		t.Fatalf("items table not created: %v", err)
	}
	if name != "items" {
		t.Errorf("expected table name 'items', got %q", name)
	}
}

func TestSaveItems(t *testing.T) {
	st := openTestStore(t)

	now := time.Now().UTC().Truncate(time.Second)
	items := []Item{
		{ID: "a", SourceName: "menu", Name: "Margherita", Description: "Domates, Mozzarella", Position: 0, Fetched: now},
		{ID: "b", SourceName: "menu", Name: "Funghi", Description: "Mantar, Mozzarella", Position: 1, Fetched: now},
	}

	n, err := st.SaveItems(items)
	if err != nil {
		t.Fatalf("SaveItems failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 new items, got %d", n)
	}

	// Re-import with changed text: no new rows, text refreshed.
	items[1].Description = "Mantar"
	n, err = st.SaveItems(items)
	if err != nil {
		t.Fatalf("second SaveItems failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 new items on re-import, got %d", n)
	}

	got, err := st.Items(context.Background())
	if err != nil {
		t.Fatalf("Items failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[1].Description != "Mantar" {
		t.Errorf("expected refreshed description, got %q", got[1].Description)
	}
}

func TestSaveItemsEmpty(t *testing.T) {
	st := openTestStore(t)

	n, err := st.SaveItems(nil)
	if err != nil {
		t.Fatalf("SaveItems(nil) failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0, got %d", n)
	}
}

func TestItemsOrder(t *testing.T) {
	st := openTestStore(t)

	now := time.Now()
	st.SaveItems([]Item{
		{ID: "3", SourceName: "b", Name: "third", Position: 0, Fetched: now},
		{ID: "2", SourceName: "a", Name: "second", Position: 1, Fetched: now},
		{ID: "1", SourceName: "a", Name: "first", Position: 0, Fetched: now},
	})

	got, err := st.Items(context.Background())
	if err != nil {
		t.Fatalf("Items failed: %v", err)
	}
	want := []string{"first", "second", "third"}
	for i, item := range got {
		if item.Name != want[i] {
			t.Errorf("item %d: expected %s, got %s", i, want[i], item.Name)
		}
	}
}

func TestSourcesAndDelete(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	now := time.Now()
	st.SaveItems([]Item{
		{ID: "1", SourceName: "feed", Name: "x", Fetched: now},
		{ID: "2", SourceName: "feed", Name: "y", Position: 1, Fetched: now},
		{ID: "3", SourceName: "menu", Name: "z", Fetched: now},
	})

	sources, err := st.Sources(ctx)
	if err != nil {
		t.Fatalf("Sources failed: %v", err)
	}
	if len(sources) != 2 || sources[0].Name != "feed" || sources[0].Count != 2 {
		t.Errorf("unexpected sources: %+v", sources)
	}

	removed, err := st.DeleteSource("feed")
	if err != nil {
		t.Fatalf("DeleteSource failed: %v", err)
	}
	if removed != 2 {
		t.Errorf("expected 2 removed, got %d", removed)
	}

	menu, err := st.ItemsBySource(ctx, "menu")
	if err != nil {
		t.Fatalf("ItemsBySource failed: %v", err)
	}
	if len(menu) != 1 || menu[0].ID != "3" {
		t.Errorf("unexpected menu items: %+v", menu)
	}

	if err := st.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	all, _ := st.Items(ctx)
	if len(all) != 0 {
		t.Errorf("expected empty catalog after Clear, got %d", len(all))
	}
}

func TestItemsCancelledContext(t *testing.T) {
	st := openTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := st.Items(ctx); err == nil {
		t.Error("expected error for cancelled context")
	}
}
