package tips

import (
	"slices"
	"testing"

	"github.com/easeaico/wellness/internal/types"
	"github.com/easeaico/wellness/internal/utils"
)

func TestEveryMoodHasThreeTips(t *testing.T) {
	for _, opt := range types.MoodOptions() {
		if got := len(Tips(string(opt.Value))); got != 3 {
			t.Fatalf("expected 3 tips for %s, got %d", opt.Value, got)
		}
	}
}

func TestPickFallsBackToNeutral(t *testing.T) {
	neutral := Tips(string(types.MoodNeutral))
	s := NewSelector(utils.SeededRand(1))
	for _, mood := range []string{"unknown-mood", "", "HAPPY"} {
		for i := 0; i < 20; i++ {
			if got := s.Pick(mood); !slices.Contains(neutral, got) {
				t.Fatalf("expected a neutral tip for %q, got %q", mood, got)
			}
		}
	}
}

func TestPickUsesMoodTable(t *testing.T) {
	sad := Tips(string(types.MoodSad))
	for i := range sad {
		s := NewSelector(func(n int) int { return i })
		if got := s.Pick(string(types.MoodSad)); got != sad[i] {
			t.Fatalf("expected sad tip %d, got %q", i, got)
		}
	}
}

func TestPickCoversWholeList(t *testing.T) {
	s := NewSelector(utils.SeededRand(3))
	seen := map[string]bool{}
	for i := 0; i < 300; i++ {
		seen[s.Pick(string(types.MoodVeryHappy))] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected all 3 tips to appear, got %d", len(seen))
	}
}

func TestResolve(t *testing.T) {
	if Resolve("very-sad") != types.MoodVerySad {
		t.Fatalf("expected very-sad to resolve to itself")
	}
	if Resolve("nope") != types.MoodNeutral {
		t.Fatalf("expected unknown mood to resolve to neutral")
	}
}

func TestSupportResources(t *testing.T) {
	res := SupportResources()
	if len(res) != 3 || res[1] != "National Suicide Prevention Lifeline: 988" {
		t.Fatalf("unexpected resources: %v", res)
	}
}
