package practice

const (
	existenceWeight = 0.7
	positionWeight  = 0.3
)

// PassThreshold is the accuracy at which a reading attempt counts as
// correct.
const PassThreshold = 70.0

// ScoreResult is the outcome of comparing a transcript with its passage.
type ScoreResult struct {
	// Accuracy is the final score in [0, 100].
	Accuracy float64

	// WordExistence is the share of spoken tokens found in the passage.
	WordExistence float64

	// AveragePosition is the mean position score over matched tokens.
	AveragePosition float64

	// Matched is the number of spoken tokens found in the passage.
	Matched int

	// Spoken is the number of tokens in the transcript.
	Spoken int
}

// Passed reports whether the attempt reached PassThreshold.
func (r ScoreResult) Passed() bool {
	return r.Accuracy >= PassThreshold
}

// Score returns the accuracy of transcript against passage in [0, 100].
func Score(passage, transcript string) float64 {
	return Evaluate(passage, transcript).Accuracy
}

// Evaluate scores transcript against passage with position-tolerant
// alignment. Each spoken token is matched to the passage occurrence of the
// same token closest to its own index (earliest on ties); its position
// score falls linearly with that distance relative to the passage length.
// The final accuracy weights word existence at 70% and position at 30%.
//
// Evaluate is total: an empty passage or transcript scores 0.
func Evaluate(passage, transcript string) ScoreResult {
	ref := Tokenize(passage)
	spoken := Tokenize(transcript)
	if len(ref) == 0 || len(spoken) == 0 {
		return ScoreResult{Spoken: len(spoken)}
	}

	positions := make(map[string][]int, len(ref))
	for i, tok := range ref {
		positions[tok] = append(positions[tok], i)
	}

	n := float64(len(ref))
	var total float64
	var matched int
	for i, tok := range spoken {
		occ, ok := positions[tok]
		if !ok {
			continue
		}
		dist := nearestDistance(occ, i)
		total += clamp(1.0-float64(dist)/n, 0, 1)
		matched++
	}

	existence := float64(matched) / float64(len(spoken))
	var avgPos float64
	if matched > 0 {
		avgPos = total / float64(matched)
	}

	return ScoreResult{
		Accuracy:        clamp((existence*existenceWeight+avgPos*positionWeight)*100, 0, 100),
		WordExistence:   existence,
		AveragePosition: avgPos,
		Matched:         matched,
		Spoken:          len(spoken),
	}
}

// nearestDistance returns min |p - i| over the ascending positions.
// Only a strictly smaller distance replaces the current best, so ties keep
// the earliest occurrence.
func nearestDistance(positions []int, i int) int {
	best := absInt(positions[0] - i)
	for _, p := range positions[1:] {
		if d := absInt(p - i); d < best {
			best = d
		}
	}
	return best
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
