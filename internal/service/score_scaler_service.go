package service

import (
	"errors"
	"fmt"
	"math"
)

// ErrRawScoreOutOfRange rejects raw scores outside [0, MaxRawScore].
var ErrRawScoreOutOfRange = errors.New("raw score out of valid range")

// MaxRawScore is the raw-point ceiling accepted from clients.
const MaxRawScore float64 = 100.0

// MaxScaledScore is the ceiling of the display scale.
const MaxScaledScore float64 = 200.0

// ScoreScalerService converts a raw score to the banded display scale used
// in attempt history. It is only consulted when a completion request brings
// a raw score without a scaled one; the caller may always supply both.
type ScoreScalerService interface {
	Scale(rawScore float64) (float64, error)
}

type scoreScalerService struct{}

func NewScoreScalerService() ScoreScalerService {
	return &scoreScalerService{}
}

// Scale is piecewise linear: the middle bands stretch so mid-range results
// spread out more than the extremes.
func (s *scoreScalerService) Scale(rawScore float64) (float64, error) {
	if rawScore < 0 || rawScore > MaxRawScore {
		return 0, fmt.Errorf("%w: %.2f (expected 0-%.2f)", ErrRawScoreOutOfRange, rawScore, MaxRawScore)
	}

	var scaled float64
	switch {
	case rawScore <= 20:
		scaled = rawScore * 1.5 // 0-30
	case rawScore <= 50:
		scaled = 30 + (rawScore-20)*2.2 // 30-96
	case rawScore <= 80:
		scaled = 96 + (rawScore-50)*2.4 // 96-168
	default:
		scaled = 168 + (rawScore-80)*1.6 // 168-200
	}

	if scaled > MaxScaledScore {
		scaled = MaxScaledScore
	}
	return math.Round(scaled), nil
}
