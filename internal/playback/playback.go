// Package playback implements the RSVP pacing state machine.
package playback

import "time"

const (
	// MinRate is the lowest allowed words-per-minute rate.
	MinRate = 25
	// RateStep is the increment applied by rate adjustments.
	RateStep = 25
	// PausedPoll bounds input latency while playback is paused.
	PausedPoll = 100 * time.Millisecond
)

// Status describes the coarse playback state.
type Status int

const (
	// StatusPaused indicates playback is suspended.
	StatusPaused Status = iota
	// StatusPlaying indicates words auto-advance on schedule.
	StatusPlaying
	// StatusFinished indicates the sequence has been read to the end.
	StatusFinished
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusPaused:
		return "Paused"
	case StatusPlaying:
		return "Playing"
	case StatusFinished:
		return "Finished"
	default:
		return "unknown"
	}
}

// State holds the playback position and pacing. Index ranges over
// [0, words]; Index == words is the terminal finished condition and
// always carries Paused == true. All mutation goes through the
// methods below, which saturate instead of erroring.
type State struct {
	Index       int
	Rate        int
	Paused      bool
	LastAdvance time.Time

	words int
}

// NewState builds a paused state at the first word. Rates below
// MinRate are clamped up.
func NewState(words, wpm int) State {
	if wpm < MinRate {
		wpm = MinRate
	}
	return State{Rate: wpm, Paused: true, words: words}
}

// Words returns the length of the word sequence.
func (s *State) Words() int {
	return s.words
}

// Finished reports whether the sequence has been read to the end.
func (s *State) Finished() bool {
	return s.Index == s.words
}

// Status returns the coarse playback state.
func (s *State) Status() Status {
	switch {
	case s.Finished():
		return StatusFinished
	case s.Paused:
		return StatusPaused
	default:
		return StatusPlaying
	}
}

// TogglePause flips the paused flag. LastAdvance resets so resuming
// never fires a stale-elapsed advance immediately. At the finished
// position this is a no-op; stepping backward is the only way out.
func (s *State) TogglePause(now time.Time) {
	if s.Finished() {
		return
	}
	s.Paused = !s.Paused
	s.LastAdvance = now
}

// StepForward advances one word, stopping short of the end.
func (s *State) StepForward(now time.Time) {
	if s.Index+1 < s.words {
		s.Index++
	}
	s.LastAdvance = now
}

// StepBackward moves back one word with a floor of zero. Stepping back
// from the finished position returns to the last word and leaves
// playback paused.
func (s *State) StepBackward(now time.Time) {
	if s.Index > 0 {
		s.Index--
	}
	s.LastAdvance = now
}

// IncreaseRate raises the rate by RateStep. No ceiling.
func (s *State) IncreaseRate() {
	s.Rate += RateStep
}

// DecreaseRate lowers the rate by RateStep with a floor of MinRate.
func (s *State) DecreaseRate() {
	s.Rate -= RateStep
	if s.Rate < MinRate {
		s.Rate = MinRate
	}
}

// Interval returns the time between automatic advances at the current
// rate, using truncating integer division of 60000 ms (rate 250 becomes
// 240 ms, rate 450 becomes 133 ms).
func (s *State) Interval() time.Duration {
	return time.Duration(60000/s.Rate) * time.Millisecond
}

// Tick evaluates one scheduling step. When playing and the interval has
// elapsed it advances, or enters the finished condition (Index == words,
// Paused set in the same step) when no word remains. Returns true when
// the state changed. The interval is derived from Rate on every call so
// live rate changes take effect immediately.
func (s *State) Tick(now time.Time) bool {
	if s.Paused {
		return false
	}
	if now.Sub(s.LastAdvance) < s.Interval() {
		return false
	}
	if s.Index+1 < s.words {
		s.Index++
		s.LastAdvance = now
		return true
	}
	s.Index = s.words
	s.Paused = true
	return true
}

// WaitBudget returns how long the orchestrator may block for input:
// a fixed poll interval while paused, otherwise the time remaining
// until the next scheduled advance, floored at zero.
func (s *State) WaitBudget(now time.Time) time.Duration {
	if s.Paused {
		return PausedPoll
	}
	remaining := s.Interval() - now.Sub(s.LastAdvance)
	if remaining < 0 {
		return 0
	}
	return remaining
}
