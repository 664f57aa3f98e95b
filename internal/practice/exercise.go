package practice

// Placeholder replaces the blanked token in a cloze sentence.
const Placeholder = "____"

// ClozeExercise is a sentence with one interior word blanked out, to be
// filled from multiple-choice options.
type ClozeExercise struct {
	// FullText is the sentence as generated.
	FullText string

	// BlankedText is FullText with the answer token replaced by Placeholder
	// and tokens rejoined by single spaces.
	BlankedText string

	// Answer is the blanked token in its original case.
	Answer string

	// BlankIndex is the token position of Answer. Never the first or last.
	BlankIndex int

	// Options holds the distractors and the answer in random order.
	// It may contain duplicates when a distractor equals the answer.
	Options []string
}

// Check reports whether choice is the correct answer.
func (c *ClozeExercise) Check(choice string) bool {
	return choice == c.Answer
}

// AnswerIndex returns the first index of Answer in Options, or -1.
func (c *ClozeExercise) AnswerIndex() int {
	return indexOf(c.Options, c.Answer)
}

// VocabularyExercise asks for the translation of a single term.
type VocabularyExercise struct {
	Term               string
	CorrectTranslation string
	Options            []string
}

// Check reports whether choice is the correct translation.
func (v *VocabularyExercise) Check(choice string) bool {
	return choice == v.CorrectTranslation
}

// AnswerIndex returns the first index of CorrectTranslation in Options, or -1.
func (v *VocabularyExercise) AnswerIndex() int {
	return indexOf(v.Options, v.CorrectTranslation)
}

func indexOf(options []string, s string) int {
	for i, o := range options {
		if o == s {
			return i
		}
	}
	return -1
}
