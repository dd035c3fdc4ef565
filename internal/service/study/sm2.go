package study

import (
	"math"
	"time"

	"github.com/linguahub/srs-backend/internal/domain"
)

// SM2Input holds all data needed for review processing. Pure value — no side effects.
// Quality must already be validated (0-5); Now is passed in so results are
// reproducible in tests.
type SM2Input struct {
	Status       domain.LearningStatus
	EaseFactor   float64
	IntervalDays int
	Repetitions  int
	Streak       int
	Lapses       int
	Quality      domain.Quality
	Now          time.Time
	Config       domain.SRSConfig
}

// SM2Output is the result of review processing.
type SM2Output struct {
	Status       domain.LearningStatus
	EaseFactor   float64
	IntervalDays int
	Repetitions  int
	Streak       int
	Lapses       int
	NextReviewAt time.Time
	LastReviewAt time.Time
}

// ProcessReview is a pure function. No DB, no context, no logger.
// All decisions are deterministic based on input parameters.
//
// The algorithm is classic SM-2: failures (quality < 3) reset the repetition
// ladder and force a one-day re-show; successes climb 1 day, then 6 days, then
// multiply the previous interval by the ease factor as it stood *before* this
// review. The ease factor itself moves by the SM-2 formula on every review,
// success or failure, and never drops below the configured floor.
func ProcessReview(input SM2Input) SM2Output {
	if input.Quality.IsSuccess() {
		return processSuccess(input)
	}
	return processFailure(input)
}

func processFailure(input SM2Input) SM2Output {
	interval := input.Config.LapseInterval

	out := SM2Output{
		Status:       domain.LearningStatusLearning,
		EaseFactor:   nextEaseFactor(input.EaseFactor, input.Quality, input.Config.MinEaseFactor),
		IntervalDays: interval,
		Repetitions:  0,
		Streak:       0,
		Lapses:       input.Lapses + 1,
		LastReviewAt: input.Now,
	}
	out.NextReviewAt = input.Now.AddDate(0, 0, interval)
	return out
}

func processSuccess(input SM2Input) SM2Output {
	repetitions := input.Repetitions + 1

	var interval int
	switch {
	case repetitions == 1:
		interval = input.Config.FirstInterval
	case repetitions == 2:
		interval = input.Config.SecondInterval
	default:
		// Pre-update ease factor: the interval grows by the ease the card
		// carried into this review, not the one computed from it.
		interval = int(math.Round(float64(input.IntervalDays) * input.EaseFactor))
	}

	out := SM2Output{
		Status:       nextStatus(input.Status, repetitions, interval, input.Config),
		EaseFactor:   nextEaseFactor(input.EaseFactor, input.Quality, input.Config.MinEaseFactor),
		IntervalDays: interval,
		Repetitions:  repetitions,
		Streak:       input.Streak + 1,
		Lapses:       input.Lapses,
		LastReviewAt: input.Now,
	}
	out.NextReviewAt = input.Now.AddDate(0, 0, interval)
	return out
}

// nextStatus applies the lifecycle transitions for a successful review.
// Failures are handled in processFailure (always LEARNING).
func nextStatus(current domain.LearningStatus, repetitions, interval int, cfg domain.SRSConfig) domain.LearningStatus {
	status := current
	if status == domain.LearningStatusNew {
		status = domain.LearningStatusLearning
	}
	if repetitions >= 2 && status == domain.LearningStatusLearning {
		status = domain.LearningStatusReview
	}
	if status == domain.LearningStatusReview &&
		interval >= cfg.MasteredIntervalDays && repetitions >= cfg.MasteredRepetitions {
		status = domain.LearningStatusMastered
	}
	return status
}

// nextEaseFactor applies the SM-2 ease formula and floors the result.
// EF' = EF + (0.1 - (5-q) * (0.08 + (5-q)*0.02))
func nextEaseFactor(ease float64, quality domain.Quality, floor float64) float64 {
	d := float64(domain.QualityMax - quality)
	next := ease + (0.1 - d*(0.08+d*0.02))
	if next < floor {
		return floor
	}
	return next
}
