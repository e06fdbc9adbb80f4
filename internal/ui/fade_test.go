package ui

import "testing"

func TestFadeShowAndHide(t *testing.T) {
	f := NewFade(0.5, false)
	if f.Visible() || f.Value() != 0 {
		t.Fatalf("new hidden fade value = %v", f.Value())
	}

	f.Show()
	if !f.Shown() || f.Done() {
		t.Fatal("Show did not start a transition")
	}
	prev := f.Value()
	for i := 0; i < 4; i++ {
		v := f.Update(0.1)
		if v < prev {
			t.Fatalf("fade in went backwards: %v -> %v", prev, v)
		}
		prev = v
	}
	if v := f.Update(0.2); v != 1 || !f.Done() {
		t.Fatalf("value = %v done = %v after the full duration, want 1 and true", v, f.Done())
	}

	f.Hide()
	f.Update(1)
	if f.Value() != 0 || f.Visible() {
		t.Fatalf("value = %v after hiding, want 0", f.Value())
	}
}

func TestFadeReverseMidway(t *testing.T) {
	f := NewFade(1, true)
	f.Hide()
	f.Update(0.5)
	mid := f.Value()
	if mid <= 0 || mid >= 1 {
		t.Fatalf("midway value = %v, want strictly between 0 and 1", mid)
	}
	f.Toggle()
	if !f.Shown() {
		t.Fatal("Toggle did not reverse the target")
	}
	f.Update(1 - mid)
	if f.Value() != 1 {
		t.Fatalf("value = %v, want 1 once the remaining distance elapsed", f.Value())
	}
}

func TestFadeNoOpTransitions(t *testing.T) {
	f := NewFade(1, true)
	f.Show()
	if !f.Done() || f.Value() != 1 {
		t.Fatal("showing a shown fade started a transition")
	}
	instant := NewFade(0, false)
	instant.Show()
	if instant.Value() != 1 || !instant.Done() {
		t.Fatal("zero duration fade must jump to its target")
	}
}
