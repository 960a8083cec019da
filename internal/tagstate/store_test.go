package tagstate

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestToggleMembership(t *testing.T) {
	s := New()

	s.Toggle("cheese", Marked, true)
	if !s.IsMarked("cheese") {
		t.Error("cheese should be marked")
	}
	if s.IsHidden("cheese") {
		t.Error("cheese should not be hidden")
	}

	s.Toggle("cheese", Hidden, true)
	if !s.IsMarked("cheese") || !s.IsHidden("cheese") {
		t.Error("cheese should be both marked and hidden")
	}

	s.Toggle("cheese", Marked, false)
	if s.IsMarked("cheese") {
		t.Error("cheese should no longer be marked")
	}
	if got := s.RecentTags(5); !reflect.DeepEqual(got, []string{"cheese"}) {
		t.Errorf("hidden tag should stay in log, got %v", got)
	}

	s.Toggle("cheese", Hidden, false)
	if got := s.RecentTags(5); len(got) != 0 {
		t.Errorf("neutral tag should be pruned, got %v", got)
	}
}

func TestRecentTagsOrder(t *testing.T) {
	s := New()
	s.Toggle("a", Marked, true)
	s.Toggle("b", Hidden, true)
	s.Toggle("c", Marked, true)

	if got, want := s.RecentTags(5), []string{"c", "b", "a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("RecentTags = %v, want %v", got, want)
	}

	// Touching "a" again bubbles it to the newest position.
	s.Toggle("a", Hidden, true)
	if got, want := s.RecentTags(5), []string{"a", "c", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("RecentTags after bubble = %v, want %v", got, want)
	}

	if got, want := s.RecentTags(2), []string{"a", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("RecentTags(2) = %v, want %v", got, want)
	}
}

func TestRecentTagsNonPositiveLimit(t *testing.T) {
	s := New()
	s.Toggle("a", Marked, true)

	for _, limit := range []int{0, -1} {
		got := s.RecentTags(limit)
		if got == nil || len(got) != 0 {
			t.Errorf("RecentTags(%d) = %v, want empty slice", limit, got)
		}
	}
}

func TestToggleOffNeutralTag(t *testing.T) {
	s := New()
	s.Toggle("ghost", Marked, false)

	if s.Len() != 0 {
		t.Errorf("removing a neutral tag should leave the log empty, got %d", s.Len())
	}
}

func TestToggleTagOutsideVocabulary(t *testing.T) {
	s := New()
	s.Toggle("not in any item", Hidden, true)
	if !s.IsHidden("not in any item") {
		t.Error("unknown tags may be toggled")
	}
}

func TestReset(t *testing.T) {
	s := New()
	s.Toggle("a", Marked, true)
	s.Toggle("b", Hidden, true)

	s.Reset()

	if !s.Empty() {
		t.Error("sets should be empty after Reset")
	}
	if got := s.RecentTags(5); len(got) != 0 {
		t.Errorf("RecentTags after Reset = %v, want empty", got)
	}
	if len(s.Marked()) != 0 || len(s.Hidden()) != 0 {
		t.Error("Marked/Hidden should be empty after Reset")
	}
}

// TestLogMatchesSets drives random toggle sequences and checks the log holds
// exactly the marked-or-hidden tags, once each.
func TestLogMatchesSets(t *testing.T) {
	tags := []string{"a", "b", "c", "d", "e", "f"}
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		s := New()
		for step := 0; step < 200; step++ {
			tag := tags[rng.Intn(len(tags))]
			set := Set(rng.Intn(2))
			s.Toggle(tag, set, rng.Intn(2) == 0)

			recent := s.RecentTags(len(tags) + 1)
			seen := make(map[string]bool)
			for _, r := range recent {
				if seen[r] {
					t.Fatalf("round %d step %d: duplicate %q in log %v", round, step, r, recent)
				}
				seen[r] = true
				if !s.IsMarked(r) && !s.IsHidden(r) {
					t.Fatalf("round %d step %d: neutral tag %q in log", round, step, r)
				}
			}
			for _, tg := range tags {
				if (s.IsMarked(tg) || s.IsHidden(tg)) && !seen[tg] {
					t.Fatalf("round %d step %d: active tag %q missing from log", round, step, tg)
				}
			}
			if len(recent) > 0 && recent[0] != tag && (s.IsMarked(tag) || s.IsHidden(tag)) {
				t.Fatalf("round %d step %d: last toggled %q not newest, got %v", round, step, tag, recent)
			}
		}
	}
}

func TestSetString(t *testing.T) {
	if Marked.String() != "marked" || Hidden.String() != "hidden" {
		t.Error("unexpected Set names")
	}
}
