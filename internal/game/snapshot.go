package game

import "time"

// Snapshot captures the complete round state for determinism testing.
type Snapshot struct {
	Letters   string
	Submitted []string
	Zapped    []string
	Tally     int
	TimeLeft  time.Duration
	Elapsed   time.Duration
	Locked    bool
	Over      bool
	Reason    EndReason
}

// Snapshot returns the current round snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Letters:   string(g.engine.Letters()),
		Submitted: g.engine.Submitted(),
		Zapped:    g.engine.Zapped(),
		Tally:     g.engine.Tally(),
		TimeLeft:  g.timeLeft,
		Elapsed:   g.sched.Elapsed(),
		Locked:    g.engine.Locked(),
		Over:      g.over,
		Reason:    g.reason,
	}
}
