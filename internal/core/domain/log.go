package domain

import "strconv"

// Severity is the log level attached to a server message.
type Severity int

const (
	// SeverityOff is used by the server for unconditional output.
	SeverityOff Severity = iota
	// SeverityError marks errors.
	SeverityError
	// SeverityWarn marks warnings.
	SeverityWarn
	// SeverityInfo marks informational output.
	SeverityInfo
	// SeverityTrace marks trace output.
	SeverityTrace
	// SeverityDebug marks debug output.
	SeverityDebug
)

// DangerThreshold is the highest severity that is rendered as an error.
const DangerThreshold = SeverityInfo

func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityError:
		return "error"
	case SeverityWarn:
		return "warn"
	case SeverityInfo:
		return "info"
	case SeverityTrace:
		return "trace"
	case SeverityDebug:
		return "debug"
	default:
		return strconv.Itoa(int(s))
	}
}

// LogEntry is one line of the message log.
type LogEntry struct {
	Text  string
	Level Severity
	// Unleveled is set for messages the server sent without a usable level.
	Unleveled bool
}

// Danger reports whether the entry is styled as an error.
func (e LogEntry) Danger() bool {
	return !e.Unleveled && e.Level <= DangerThreshold
}
