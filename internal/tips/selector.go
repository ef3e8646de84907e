// Package tips picks a wellness tip for a mood.
package tips

import (
	"github.com/easeaico/wellness/internal/types"
	"github.com/easeaico/wellness/internal/utils"
)

var wellnessTips = map[types.Mood][]string{
	types.MoodVeryHappy: {
		"You're radiating positive energy! Share this joy with someone special today. Consider writing in a gratitude journal to capture this wonderful feeling. 🌟",
		"What a beautiful day to be you! Channel this amazing energy into a creative activity or help someone else feel great too. Your happiness is contagious! ✨",
		"You're glowing with positivity! This is the perfect time to set some exciting goals or try something new you've been wanting to do. Keep shining! 🌈",
	},
	types.MoodHappy: {
		"Your positive energy is lovely! Take a moment to appreciate what's going well in your life. Maybe call a friend or family member to spread the good vibes. 😊",
		"You're in a great headspace! This could be a wonderful time for some light exercise, creative expression, or planning something fun for the weekend. 🌸",
		"Feeling good looks great on you! Consider spending some time in nature today, or try a new hobby that brings you joy. Your happiness matters! 🌺",
	},
	types.MoodNeutral: {
		"Sometimes neutral is exactly where we need to be. Try some gentle movement like stretching or a short walk to boost your energy naturally. 🌿",
		"Balanced energy can be powerful! This might be a perfect time for mindfulness, reading, or organizing something in your space to create calm clarity. 🧘‍♀️",
		"Feeling steady? That's actually wonderful! Consider trying something new today - maybe a new recipe, podcast, or creative activity to add some sparkle. 🌱",
	},
	types.MoodSad: {
		"It's okay to feel low sometimes. Be gentle with yourself today. Try some deep breathing, listen to comforting music, or reach out to someone who cares about you. 💙",
		"Your feelings are valid. Consider doing something nurturing for yourself - a warm bath, herbal tea, or curling up with a good book or movie. You deserve kindness. 🫖",
		"Tough days happen to everyone. Try some light movement when you're ready, or practice self-compassion. Remember: this feeling is temporary, and you're stronger than you know. 🌙",
	},
	types.MoodVerySad: {
		"I see you're struggling, and that takes courage to acknowledge. Please be extra gentle with yourself. Consider reaching out to a trusted friend, counselor, or call 988 if you need support. You matter. 💜",
		"Difficult emotions are part of being human. Focus on basic self-care today - staying hydrated, getting some rest, and being patient with yourself. Professional support is always available. 🤗",
		"You're not alone in this. Sometimes the smallest acts of self-care - like making tea, taking a shower, or stepping outside - can help. Consider talking to someone who cares about you. 🌅",
	},
}

var supportResources = []string{
	"Crisis Text Line: Text HOME to 741741",
	"National Suicide Prevention Lifeline: 988",
	"Crisis support is available 24/7",
}

// SupportResources returns the crisis lines shown alongside tips.
func SupportResources() []string {
	return append([]string(nil), supportResources...)
}

// Resolve maps a raw mood key to a table key, falling back to neutral.
func Resolve(mood string) types.Mood {
	m := types.Mood(mood)
	if _, ok := wellnessTips[m]; ok {
		return m
	}
	return types.MoodNeutral
}

// Tips returns a copy of the tip list used for mood.
func Tips(mood string) []string {
	return append([]string(nil), wellnessTips[Resolve(mood)]...)
}

// Selector picks tips with an injectable random source.
type Selector struct {
	rand utils.RandFunc
}

// NewSelector returns a Selector. A nil rnd uses utils.DefaultRand.
func NewSelector(rnd utils.RandFunc) *Selector {
	if rnd == nil {
		rnd = utils.DefaultRand
	}
	return &Selector{rand: rnd}
}

// Pick returns a random tip for mood. Empty or unknown moods use the neutral tips.
func (s *Selector) Pick(mood string) string {
	return utils.PickOne(s.rand, wellnessTips[Resolve(mood)])
}
