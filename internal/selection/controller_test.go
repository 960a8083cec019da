package selection

import "testing"

func rows(labels ...string) []string { return labels }

func TestMoveSaturates(t *testing.T) {
	c := New()
	c.Rebind(rows("a", "b", "c"))

	if c.Index() != None {
		t.Fatalf("initial index = %d, want %d", c.Index(), None)
	}

	c.MoveDown()
	if c.Index() != 0 {
		t.Errorf("after one MoveDown index = %d, want 0", c.Index())
	}

	for i := 0; i < 5; i++ {
		c.MoveDown()
	}
	if c.Index() != 2 {
		t.Errorf("MoveDown x5 index = %d, want 2", c.Index())
	}

	for i := 0; i < 5; i++ {
		c.MoveUp()
	}
	if c.Index() != None {
		t.Errorf("MoveUp x5 index = %d, want %d", c.Index(), None)
	}
	if _, ok := c.LastSelected(); ok {
		t.Error("no label should be remembered once nothing is selected")
	}
}

func TestMoveOnEmptyList(t *testing.T) {
	c := New()
	c.MoveDown()
	if c.Index() != None {
		t.Errorf("MoveDown on empty list index = %d, want %d", c.Index(), None)
	}
	c.MoveUp()
	if c.Index() != None {
		t.Errorf("MoveUp on empty list index = %d, want %d", c.Index(), None)
	}
	if _, ok := c.Active(); ok {
		t.Error("Active should report nothing selected")
	}
}

func TestRebindAnchorsOnLabel(t *testing.T) {
	c := New()
	c.Rebind(rows("biber", "domates", "sucuk"))
	c.MoveDown()
	c.MoveDown() // domates

	c.Rebind(rows("acı", "biberiye", "domates"))
	if c.Index() != 2 {
		t.Errorf("index = %d, want 2 (domates)", c.Index())
	}
	if label, _ := c.Active(); label != "domates" {
		t.Errorf("active = %q, want domates", label)
	}
}

func TestRebindClampsWhenLabelGone(t *testing.T) {
	c := New()
	c.Rebind(rows("a", "b", "c", "d"))
	for i := 0; i < 4; i++ {
		c.MoveDown()
	}
	if c.Index() != 3 {
		t.Fatalf("index = %d, want 3", c.Index())
	}

	c.Rebind(rows("x", "y"))
	if c.Index() != 1 {
		t.Errorf("index = %d, want clamped 1", c.Index())
	}
	if label, _ := c.LastSelected(); label != "y" {
		t.Errorf("anchor should follow clamped row, got %q", label)
	}
}

func TestRebindKeepsIndexWhenInBoundsAndLabelGone(t *testing.T) {
	c := New()
	c.Rebind(rows("a", "b", "c"))
	c.MoveDown() // a

	c.Rebind(rows("x", "y", "z"))
	if c.Index() != 0 {
		t.Errorf("index = %d, want 0", c.Index())
	}
}

func TestRebindToEmptyList(t *testing.T) {
	c := New()
	c.Rebind(rows("a", "b"))
	c.MoveDown()

	c.Rebind(nil)
	if c.Index() != None {
		t.Errorf("index = %d, want %d", c.Index(), None)
	}
	if _, ok := c.LastSelected(); ok {
		t.Error("anchor should be cleared once the list empties")
	}
}

func TestRebindNoneStaysNone(t *testing.T) {
	c := New()
	c.Rebind(rows("a", "b"))
	c.Rebind(rows("a", "b", "c"))
	if c.Index() != None {
		t.Errorf("index = %d, want %d", c.Index(), None)
	}
}

func TestRebindFirstMatchWins(t *testing.T) {
	c := New()
	c.Rebind(rows("x", "dup"))
	c.MoveDown()
	c.MoveDown()

	c.Rebind(rows("dup", "x", "dup"))
	if c.Index() != 0 {
		t.Errorf("index = %d, want 0", c.Index())
	}
}

func TestReset(t *testing.T) {
	c := New()
	c.Rebind(rows("a"))
	c.MoveDown()

	c.Reset()
	if c.Index() != None {
		t.Errorf("index = %d, want %d", c.Index(), None)
	}
	if _, ok := c.LastSelected(); ok {
		t.Error("Reset should clear the anchor")
	}
	if c.Len() != 1 {
		t.Errorf("Reset should keep rows, Len = %d", c.Len())
	}
}
