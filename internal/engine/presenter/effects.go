package presenter

import "time"

// Effect is work the presenter asks the dispatcher to carry out.
// Its completion is reported back as an Event.
type Effect interface {
	isEffect()
}

// Connect opens the status socket.
type Connect struct{}

// PostRestart sends the restart request. Generation is echoed back in the
// RestartSent that reports its completion.
type PostRestart struct {
	Generation uint64
}

// ScheduleProbe runs the reload probe after a delay.
type ScheduleProbe struct {
	After time.Duration
}

// Reload starts over with a fresh view and connection, as a forced page reload would.
type Reload struct{}

// Finish ends the dispatch loop with Err.
type Finish struct {
	Err error
}

func (Connect) isEffect()       {}
func (PostRestart) isEffect()   {}
func (ScheduleProbe) isEffect() {}
func (Reload) isEffect()        {}
func (Finish) isEffect()        {}
