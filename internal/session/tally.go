package session

import (
	"sync"
	"time"
)

// Exercise kinds, also used as metric attributes.
const (
	KindListening  = "listening"
	KindVocabulary = "vocabulary"
	KindReading    = "reading"

	// KindConversation is only used as a metric attribute; chat turns
	// are not scored.
	KindConversation = "conversation"
)

// KindResult holds the counts for one exercise kind.
type KindResult struct {
	Kind     string
	Answered int
	Correct  int
}

// Accuracy returns Correct / Answered, or 0 before the first answer.
func (r KindResult) Accuracy() float64 {
	if r.Answered == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Answered)
}

// Tally counts answers for the lifetime of a session. It is never
// persisted. Safe for concurrent use.
type Tally struct {
	mu      sync.Mutex
	started time.Time
	order   []string
	byKind  map[string]*KindResult
}

// NewTally creates an empty Tally starting now.
func NewTally() *Tally {
	return &Tally{started: time.Now(), byKind: make(map[string]*KindResult)}
}

// Record adds one answer of the given kind.
func (t *Tally) Record(kind string, correct bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	r := t.byKind[kind]
	if r == nil {
		r = &KindResult{Kind: kind}
		t.byKind[kind] = r
		t.order = append(t.order, kind)
	}
	r.Answered++
	if correct {
		r.Correct++
	}
}

// Answered returns the total number of recorded answers.
func (t *Tally) Answered() int {
	return t.Summary().Answered
}

// Accuracy returns the overall fraction of correct answers.
func (t *Tally) Accuracy() float64 {
	return t.Summary().Accuracy
}

// Summary holds the data shown when a session ends.
type Summary struct {
	Duration time.Duration
	Answered int
	Correct  int
	Accuracy float64
	ByKind   []KindResult // in order of first answer
}

// Summary snapshots the tally.
func (t *Tally) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Summary{Duration: time.Since(t.started)}
	for _, k := range t.order {
		r := *t.byKind[k]
		s.Answered += r.Answered
		s.Correct += r.Correct
		s.ByKind = append(s.ByKind, r)
	}
	if s.Answered > 0 {
		s.Accuracy = float64(s.Correct) / float64(s.Answered)
	}
	return s
}
