package practice

const (
	// wordsPerSecond is the assumed read-aloud pace.
	wordsPerSecond = 2

	minReadingSeconds = 30
)

// Passage is a read-aloud text together with the metadata shown before the
// learner starts reading.
type Passage struct {
	Title                   string
	Text                    string
	Level                   Level
	WordCount               int
	EstimatedReadingSeconds int
}

// NewPassage derives the word count and reading-time estimate for text.
func NewPassage(text string, level Level) Passage {
	n := WordCount(text)
	return Passage{
		Text:                    text,
		Level:                   level,
		WordCount:               n,
		EstimatedReadingSeconds: max(n/wordsPerSecond, minReadingSeconds),
	}
}
