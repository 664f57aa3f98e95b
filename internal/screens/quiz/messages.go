package quiz

import (
	"github.com/abhisek/lingoz/internal/practice"
	"github.com/abhisek/lingoz/internal/store"
)

// exerciseReadyMsg carries a freshly built exercise. Exactly one of Cloze
// and Vocabulary is set unless Err is.
type exerciseReadyMsg struct {
	Cloze      *practice.ClozeExercise
	Vocabulary *practice.VocabularyExercise
	Err        error
}

// bookmarkSavedMsg reports the result of a bookmark request.
type bookmarkSavedMsg struct {
	Bookmark *store.Bookmark
	Err      error
}
