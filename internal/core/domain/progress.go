package domain

import (
	"fmt"
	"math"
)

// Progress is the overall update progress derived from the latest step frame.
// The zero value is the reset bar: 0% with empty labels.
type Progress struct {
	Percent   int
	StepLabel string
	StepIndex int
	StepCount int
}

// ComputeProgress folds a step frame into an overall percentage.
// step is 1-based, percent is the progress within that step and count is the
// total number of steps.
func ComputeProgress(step, percent, count int, label string) (Progress, error) {
	if count <= 0 {
		return Progress{}, ErrInvalidStepCount
	}

	overall := (100*(float64(step)-1) + float64(percent)) / float64(count)
	overall = math.Max(math.MinInt32, math.Min(math.MaxInt32, math.Floor(overall+0.5)))

	return Progress{
		Percent:   int(overall),
		StepLabel: label,
		StepIndex: step,
		StepCount: count,
	}, nil
}

// Text renders the human readable progress, e.g. "38% (2 of 4)".
// The reset bar renders as an empty string.
func (p Progress) Text() string {
	if p.StepCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d%% (%d of %d)", p.Percent, p.StepIndex, p.StepCount)
}

// Fraction returns the percentage clamped to [0, 1] for bar widgets.
func (p Progress) Fraction() float64 {
	switch {
	case p.Percent <= 0:
		return 0
	case p.Percent >= 100:
		return 1
	default:
		return float64(p.Percent) / 100
	}
}
