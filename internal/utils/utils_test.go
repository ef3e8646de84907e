package utils

import "testing"

func TestNormalizeMessage(t *testing.T) {
	got := NormalizeMessage("I Can’t Go On")
	if got != "i can't go on" {
		t.Fatalf("unexpected normalized text: %q", got)
	}
}

func TestContainsAny(t *testing.T) {
	if !ContainsAny("feeling hopeless today", []string{"suicide", "hopeless"}) {
		t.Fatalf("expected substring match")
	}
	if ContainsAny("feeling fine", []string{"suicide", "hopeless"}) {
		t.Fatalf("expected no match")
	}
}

func TestPickOne(t *testing.T) {
	items := []string{"a", "b", "c"}
	if got := PickOne(func(n int) int { return 2 }, items); got != "c" {
		t.Fatalf("expected c, got %s", got)
	}
	if got := PickOne(func(n int) int { return 99 }, items); got != "c" {
		t.Fatalf("expected clamped index, got %s", got)
	}
	if got := PickOne(func(n int) int { return -1 }, items); got != "a" {
		t.Fatalf("expected clamped index, got %s", got)
	}
	if got := PickOne(nil, nil); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestSeededRandIsDeterministic(t *testing.T) {
	a, b := SeededRand(7), SeededRand(7)
	for i := 0; i < 20; i++ {
		if x, y := a(100), b(100); x != y {
			t.Fatalf("expected identical sequences, got %d and %d", x, y)
		}
	}
}
