// Package chat produces the companion's scripted chat replies.
package chat

import (
	"github.com/easeaico/wellness/internal/utils"
)

// Greeting opens every conversation.
const Greeting = "Hi there! I'm your wellness companion. I'm here to listen and support you. How are you feeling today? 💙"

// CrisisMessage is returned whenever a message contains a crisis keyword.
const CrisisMessage = "I'm concerned about what you're sharing. Please know that you matter and there are people who want to help. Consider reaching out to a crisis helpline: 988 (Suicide & Crisis Lifeline) or text HOME to 741741. You don't have to go through this alone. 💙"

// crisisKeywords are matched as lowercase substrings.
var crisisKeywords = []string{"suicide", "hurt myself", "end it all", "can't go on", "hopeless"}

var supportiveReplies = []string{
	"Thank you for sharing that with me. Your feelings are completely valid. 💙",
	"I hear you, and I want you to know that you're not alone in this journey. 🌟",
	"That sounds challenging. Remember that every small step forward is progress. 🌱",
	"I appreciate you opening up. How would you like to explore this feeling together? 💫",
	"Your awareness of these emotions shows real strength. What usually helps you feel better? 🌈",
	"It's okay to feel this way. Would you like to try a brief mindfulness exercise together? 🧘‍♀️",
}

// SupportiveReplies returns a copy of the generic replies in their fixed order.
func SupportiveReplies() []string {
	return append([]string(nil), supportiveReplies...)
}

// Responder maps a user message to a canned reply. It keeps no conversation state.
type Responder struct {
	rand utils.RandFunc
}

// NewResponder returns a Responder. A nil rnd uses utils.DefaultRand.
func NewResponder(rnd utils.RandFunc) *Responder {
	if rnd == nil {
		rnd = utils.DefaultRand
	}
	return &Responder{rand: rnd}
}

// IsCrisis reports whether message contains any crisis keyword, case-insensitively.
func IsCrisis(message string) bool {
	return utils.ContainsAny(utils.NormalizeMessage(message), crisisKeywords)
}

// Reply returns CrisisMessage for crisis messages and a random supportive reply otherwise.
func (r *Responder) Reply(message string) string {
	if IsCrisis(message) {
		return CrisisMessage
	}
	return utils.PickOne(r.rand, supportiveReplies)
}
