package types

import "time"

// Mood is one of the five self-reported mood levels.
type Mood string

const (
	MoodVeryHappy Mood = "very-happy"
	MoodHappy     Mood = "happy"
	MoodNeutral   Mood = "neutral"
	MoodSad       Mood = "sad"
	MoodVerySad   Mood = "very-sad"
)

const (
	// fallbackEmoji and fallbackLabel describe a mood outside the known set.
	fallbackEmoji = "💙"
	fallbackLabel = "Balanced"
)

// MoodOption is a selectable mood with its display emoji and label.
type MoodOption struct {
	Value Mood   `json:"value"`
	Emoji string `json:"emoji"`
	Label string `json:"label"`
}

var moodOptions = []MoodOption{
	{Value: MoodVeryHappy, Emoji: "😀", Label: "Great"},
	{Value: MoodHappy, Emoji: "🙂", Label: "Good"},
	{Value: MoodNeutral, Emoji: "😐", Label: "Okay"},
	{Value: MoodSad, Emoji: "😔", Label: "Low"},
	{Value: MoodVerySad, Emoji: "😢", Label: "Struggling"},
}

// MoodOptions returns the known moods in display order, happiest first.
func MoodOptions() []MoodOption {
	out := make([]MoodOption, len(moodOptions))
	copy(out, moodOptions)
	return out
}

// ParseMood validates a raw mood key.
func ParseMood(raw string) (Mood, bool) {
	m := Mood(raw)
	return m, m.Valid()
}

func (m Mood) option() (MoodOption, bool) {
	for _, opt := range moodOptions {
		if opt.Value == m {
			return opt, true
		}
	}
	return MoodOption{}, false
}

// Valid reports whether m is one of the five known moods.
func (m Mood) Valid() bool {
	_, ok := m.option()
	return ok
}

// Emoji returns the display emoji for m.
func (m Mood) Emoji() string {
	if opt, ok := m.option(); ok {
		return opt.Emoji
	}
	return fallbackEmoji
}

// Label returns the short human label for m.
func (m Mood) Label() string {
	if opt, ok := m.option(); ok {
		return opt.Label
	}
	return fallbackLabel
}

// MoodEntry is one logged mood. The JSON shape is the persisted format.
type MoodEntry struct {
	ID        string    `json:"id"`
	Mood      Mood      `json:"mood"`
	Emoji     string    `json:"emoji"`
	Timestamp time.Time `json:"timestamp"`
}
