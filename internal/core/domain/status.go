// Package domain holds the update status model and the wire format of the status socket.
package domain

// UpdateStatus is the coarse phase of an update as reported by the server.
type UpdateStatus string

const (
	// StatusIdle indicates no update is in progress.
	StatusIdle UpdateStatus = "IDLE"
	// StatusStart indicates an update has been accepted and is starting.
	StatusStart UpdateStatus = "START"
	// StatusRun indicates the update is running.
	StatusRun UpdateStatus = "RUN"
	// StatusSuccess indicates the update was installed successfully.
	StatusSuccess UpdateStatus = "SUCCESS"
	// StatusFailure indicates the update failed.
	StatusFailure UpdateStatus = "FAILURE"
	// StatusDone indicates the server finished handling the update.
	StatusDone UpdateStatus = "DONE"
)

// Valid reports whether s is one of the known statuses.
func (s UpdateStatus) Valid() bool {
	switch s {
	case StatusIdle, StatusStart, StatusRun, StatusSuccess, StatusFailure, StatusDone:
		return true
	default:
		return false
	}
}

// Panel returns the status panel that is visible while s is current.
// START and RUN share the run panel. Unknown statuses map to PanelNone.
func (s UpdateStatus) Panel() Panel {
	switch s {
	case StatusIdle:
		return PanelIdle
	case StatusStart, StatusRun:
		return PanelRun
	case StatusSuccess:
		return PanelSuccess
	case StatusFailure:
		return PanelFailure
	case StatusDone:
		return PanelDone
	default:
		return PanelNone
	}
}

// Panel identifies one of the mutually exclusive status panels.
type Panel int

const (
	// PanelNone means no panel has been selected yet.
	PanelNone Panel = iota
	// PanelIdle is shown while the server is waiting for an update.
	PanelIdle
	// PanelRun is shown while an update is starting or running.
	PanelRun
	// PanelSuccess is shown after a successful update.
	PanelSuccess
	// PanelFailure is shown after a failed update.
	PanelFailure
	// PanelDone is shown once the server reports it is done.
	PanelDone
)

// Panels lists every selectable panel in display order.
var Panels = []Panel{PanelIdle, PanelRun, PanelSuccess, PanelFailure, PanelDone}

func (p Panel) String() string {
	switch p {
	case PanelIdle:
		return "idle"
	case PanelRun:
		return "run"
	case PanelSuccess:
		return "success"
	case PanelFailure:
		return "failure"
	case PanelDone:
		return "done"
	default:
		return "none"
	}
}

// BarMode is the visual state of the progress bar.
type BarMode int

const (
	// BarPlain is the neutral bar.
	BarPlain BarMode = iota
	// BarRunning animates the bar and shows the run spinner.
	BarRunning
	// BarSuccess colors the bar as succeeded.
	BarSuccess
	// BarFailure colors the bar as failed.
	BarFailure
)

func (m BarMode) String() string {
	switch m {
	case BarRunning:
		return "running"
	case BarSuccess:
		return "success"
	case BarFailure:
		return "failure"
	default:
		return "plain"
	}
}
