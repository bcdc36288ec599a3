// Package model defines shared data structures.
package model

import "time"

// Config defines reader settings.
type Config struct {
	WPM   int
	Focus bool
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Since  *time.Time
	Last   int
	Window int
	Plain  bool
}

// SessionStats captures a completed reading run.
type SessionStats struct {
	StartedAt  time.Time
	EndedAt    time.Time
	Source     string
	WPM        int
	WordsTotal int
	WordsRead  int
	DurationMs int64
}

// SessionAggregate summarizes a stored session for reporting.
type SessionAggregate struct {
	SessionID  int64
	EndedAt    time.Time
	Source     string
	WPM        int
	WordsTotal int
	WordsRead  int
	DurationMs int64
}
