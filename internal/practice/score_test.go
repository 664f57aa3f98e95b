package practice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		passage    string
		transcript string
		want       float64
	}{
		{"A identical", "the quick brown fox jumps", "the quick brown fox jumps", 100},
		{"B disjoint", "a b c d", "x y z", 0},
		{"C reversed", "one two three", "three two one", 86.6667},
		{"case folded", "The Quick Brown Fox", "the quick brown fox", 100},
		{"empty transcript", "the quick brown fox", "", 0},
		{"empty passage", "", "the quick brown fox", 0},
		{"whitespace only", "   ", "\t", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(tt.passage, tt.transcript), 0.001)
		})
	}
}

func TestEvaluate_ScenarioCBreakdown(t *testing.T) {
	r := Evaluate("one two three", "three two one")
	assert.Equal(t, 3, r.Matched)
	assert.Equal(t, 3, r.Spoken)
	assert.InDelta(t, 1.0, r.WordExistence, 1e-9)
	assert.InDelta(t, 5.0/9.0, r.AveragePosition, 1e-9)
	assert.InDelta(t, 86.6667, r.Accuracy, 0.001)
}

func TestEvaluate_PartialMatch(t *testing.T) {
	// Three of four spoken tokens sit at their passage index.
	r := Evaluate("the quick brown fox", "the dog brown fox")
	assert.Equal(t, 3, r.Matched)
	assert.Equal(t, 4, r.Spoken)
	assert.InDelta(t, 0.75, r.WordExistence, 1e-9)
	assert.InDelta(t, 1.0, r.AveragePosition, 1e-9)
	assert.InDelta(t, (0.75*0.7+0.3)*100, r.Accuracy, 1e-9)
}

func TestEvaluate_NearestOccurrence(t *testing.T) {
	// "a" occurs at 0 and 4. Spoken at index 3 it aligns with 4 (distance 1).
	r := Evaluate("a b c d a", "x y z a")
	assert.Equal(t, 1, r.Matched)
	assert.InDelta(t, 1-1.0/5.0, r.AveragePosition, 1e-9)
}

func TestEvaluate_TieKeepsSameDistance(t *testing.T) {
	// Occurrences at 0 and 2 are equidistant from spoken index 1.
	r := Evaluate("a b a", "x a")
	assert.InDelta(t, 1-1.0/3.0, r.AveragePosition, 1e-9)
}

func TestEvaluate_LongTranscriptStaysInRange(t *testing.T) {
	r := Evaluate("hello", "hello hello hello hello hello hello hello hello hello hello")
	assert.GreaterOrEqual(t, r.Accuracy, 0.0)
	assert.LessOrEqual(t, r.Accuracy, 100.0)
	// Distances beyond the passage length clamp the position score to 0.
	assert.InDelta(t, 0.1, r.AveragePosition, 1e-9)
	assert.InDelta(t, 73.0, r.Accuracy, 1e-9)
}

func TestScore_SelfIsPerfect(t *testing.T) {
	passages := []string{
		"Reading aloud every day builds fluency.",
		"a a a a",
		"one",
	}
	for _, p := range passages {
		assert.InDelta(t, 100.0, Score(p, p), 1e-9, p)
	}
}

func TestNearestDistance(t *testing.T) {
	assert.Equal(t, 0, nearestDistance([]int{0, 3, 7}, 3))
	assert.Equal(t, 2, nearestDistance([]int{0, 7}, 2))
	assert.Equal(t, 1, nearestDistance([]int{4}, 5))
}

func TestScoreResult_Passed(t *testing.T) {
	assert.True(t, Evaluate("one two three", "three two one").Passed())
	assert.True(t, ScoreResult{Accuracy: PassThreshold}.Passed())
	assert.False(t, ScoreResult{Accuracy: 69.9}.Passed())
	assert.False(t, Evaluate("one two three", "").Passed())
}
