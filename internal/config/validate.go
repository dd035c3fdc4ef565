package config

import (
	"fmt"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.SRS.validate(); err != nil {
		return fmt.Errorf("srs: %w", err)
	}

	if c.Sessions.IdleWindow <= 0 {
		return fmt.Errorf("sessions.idle_window must be > 0 (got %v)", c.Sessions.IdleWindow)
	}
	if c.Sessions.SweepInterval <= 0 {
		return fmt.Errorf("sessions.sweep_interval must be > 0 (got %v)", c.Sessions.SweepInterval)
	}

	if _, err := time.LoadLocation(c.Stats.Timezone); err != nil {
		return fmt.Errorf("stats.timezone: %w", err)
	}

	return nil
}

func (s *SRSConfig) validate() error {
	if s.MinEaseFactor <= 0 {
		return fmt.Errorf("min_ease_factor must be > 0 (got %v)", s.MinEaseFactor)
	}
	if s.InitialEaseFactor < s.MinEaseFactor {
		return fmt.Errorf("initial_ease_factor must be >= min_ease_factor (got %v < %v)", s.InitialEaseFactor, s.MinEaseFactor)
	}
	if s.FirstInterval < 1 || s.SecondInterval < 1 || s.LapseInterval < 1 {
		return fmt.Errorf("intervals must be >= 1 day (first=%d second=%d lapse=%d)", s.FirstInterval, s.SecondInterval, s.LapseInterval)
	}
	if s.MasteredIntervalDays < 1 {
		return fmt.Errorf("mastered_interval_days must be >= 1 (got %d)", s.MasteredIntervalDays)
	}
	if s.MasteredRepetitions < 1 {
		return fmt.Errorf("mastered_repetitions must be >= 1 (got %d)", s.MasteredRepetitions)
	}
	if s.RetentionWindow < 1 {
		return fmt.Errorf("retention_window must be >= 1 (got %d)", s.RetentionWindow)
	}
	if s.MaxQueueSize < 1 {
		return fmt.Errorf("max_queue_size must be >= 1 (got %d)", s.MaxQueueSize)
	}
	if s.NewCardsPerSession < 0 {
		return fmt.Errorf("new_cards_per_session must be >= 0 (got %d)", s.NewCardsPerSession)
	}
	return nil
}
