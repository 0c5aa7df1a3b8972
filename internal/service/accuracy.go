package service

import "math"

// AccuracyPercent is round(correct/total*100), with an empty total reading as 0%.
func AccuracyPercent(correct, total int64) int {
	if total <= 0 {
		return 0
	}
	pct := math.Round(float64(correct) / float64(total) * 100)
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return int(pct)
}
