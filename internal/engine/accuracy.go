package engine

// Accuracy derives a confidence score from the warning count: each warning
// costs 0.1, floored at 0 so the score stays in [0,1]. Eleven or more
// warnings therefore all score 0.
func Accuracy(warningCount int) float64 {
	score := 1.0 - 0.1*float64(warningCount)
	if score < 0 {
		return 0
	}
	return score
}
