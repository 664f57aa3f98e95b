package textgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/lingoz/internal/practice"
)

const sentenceSystemPrompt = `You write example sentences for people learning %s.

Rules:
- Write exactly one natural, conversational sentence of 15 to 20 words.
- Match the vocabulary and grammar to the learner level you are given.
- Use plain text on a single line. No quotes around the sentence, no numbering, no emoji.
- Do not repeat or paraphrase any sentence from the "already used" list.`

const passageSystemPrompt = `You write short reading passages for people learning %s who practice reading aloud.

Rules:
- Write one paragraph of 100 to 150 words on an everyday topic.
- Match the vocabulary and grammar to the learner level you are given.
- Use plain prose. No headings inside the passage, no lists, no dialogue markup.
- Give the passage a short title.`

const translationSystemPrompt = `You are a bilingual dictionary from %s to %s.

Rules:
- Return the single most common translation of the given word.
- Answer with one word or a very short phrase, without articles in parentheses, notes or alternatives.`

const conversationSystemPrompt = `You are a friendly %s teacher having a practice conversation with a learner.

Rules:
- Give a natural, conversational response to the learner's last message.
- Keep it brief and friendly: one to three sentences.
- Learner level: %s. %s
- Gently model the correct form when the learner makes a mistake, without lecturing.
- Plain text only. No lists, no emoji, no translations.`

// levelGuidance describes how hard the text should be for a level.
func levelGuidance(level practice.Level) string {
	switch level.Band() {
	case practice.LevelBeginner:
		return "Use only very common everyday words and simple present or past tense."
	case practice.LevelAdvanced:
		return "Use varied vocabulary, idiomatic phrasing and complex sentence structure."
	default:
		return "Use everyday vocabulary with a few less common words and natural tense changes."
	}
}

func buildSentenceMessage(level practice.Level, prior []string, limit int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Level: %s\n", level)
	fmt.Fprintf(&b, "Guidance: %s\n", levelGuidance(level))
	b.WriteString("\nAlready used:\n")
	b.WriteString(buildPrior(prior, limit))
	return b.String()
}

func buildPassageMessage(level practice.Level) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Level: %s\n", level)
	fmt.Fprintf(&b, "Guidance: %s\n", levelGuidance(level))
	return b.String()
}

func buildTranslationMessage(word string) string {
	return fmt.Sprintf("Word: %s", word)
}

// buildPrior formats prior sentences for the prompt, keeping at most limit of the most recent.
// Returns "None" if there are no prior sentences.
func buildPrior(prior []string, limit int) string {
	if len(prior) == 0 {
		return "None"
	}

	// Keep only the most recent N sentences.
	if limit > 0 && len(prior) > limit {
		prior = prior[len(prior)-limit:]
	}

	var b strings.Builder
	for i, s := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	return strings.TrimRight(b.String(), "\n")
}

// recentTurns returns the last limit turns of history, or all of them when
// limit is not positive.
func recentTurns(history []Turn, limit int) []Turn {
	if limit > 0 && len(history) > limit {
		return history[len(history)-limit:]
	}
	return history
}
