package practice

import (
	"fmt"
	"strings"
)

// Level is a learner proficiency band. Both CEFR codes and the coarse
// beginner/intermediate/advanced labels are accepted.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"

	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// AllLevels lists every accepted level in display order.
var AllLevels = []Level{
	LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2,
	LevelBeginner, LevelIntermediate, LevelAdvanced,
}

// ParseLevel parses s case-insensitively.
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	for _, l := range AllLevels {
		if strings.EqualFold(s, string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: unknown level %q", ErrMalformedInput, s)
}

// IsCEFR reports whether l is one of the six CEFR codes.
func (l Level) IsCEFR() bool {
	switch l {
	case LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2:
		return true
	}
	return false
}

// Band maps l onto the coarse beginner/intermediate/advanced scale.
func (l Level) Band() Level {
	switch l {
	case LevelA1, LevelA2, LevelBeginner:
		return LevelBeginner
	case LevelB1, LevelB2, LevelIntermediate:
		return LevelIntermediate
	case LevelC1, LevelC2, LevelAdvanced:
		return LevelAdvanced
	}
	return LevelIntermediate
}
