package types

import "testing"

func TestParseMood(t *testing.T) {
	for _, opt := range MoodOptions() {
		m, ok := ParseMood(string(opt.Value))
		if !ok || m != opt.Value {
			t.Fatalf("expected %q to parse, got %q/%v", opt.Value, m, ok)
		}
	}
	if _, ok := ParseMood("ecstatic"); ok {
		t.Fatalf("expected unknown mood to be rejected")
	}
	if _, ok := ParseMood(""); ok {
		t.Fatalf("expected empty mood to be rejected")
	}
}

func TestMoodEmojiAndLabel(t *testing.T) {
	if MoodSad.Emoji() != "😔" || MoodSad.Label() != "Low" {
		t.Fatalf("unexpected sad option: %s %s", MoodSad.Emoji(), MoodSad.Label())
	}
	unknown := Mood("grumpy")
	if unknown.Emoji() != "💙" || unknown.Label() != "Balanced" {
		t.Fatalf("unexpected fallback: %s %s", unknown.Emoji(), unknown.Label())
	}
}

func TestMoodOptionsReturnsCopy(t *testing.T) {
	opts := MoodOptions()
	if len(opts) != 5 {
		t.Fatalf("expected 5 options, got %d", len(opts))
	}
	opts[0].Label = "changed"
	if MoodOptions()[0].Label != "Great" {
		t.Fatalf("expected options to be immutable")
	}
}
