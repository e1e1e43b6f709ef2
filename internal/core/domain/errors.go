package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingURL is returned when neither an argument nor the config names the console URL.
	ErrMissingURL = zerr.New("no update console URL given")

	// ErrInvalidURL is returned when the console URL cannot be parsed.
	ErrInvalidURL = zerr.New("invalid update console URL")

	// ErrUnsupportedScheme is returned for console URLs that are not http or https.
	ErrUnsupportedScheme = zerr.New("unsupported URL scheme, expected http or https")

	// ErrMalformedFrame is returned when a socket frame is not valid JSON.
	ErrMalformedFrame = zerr.New("malformed frame")

	// ErrMissingFrameType is returned when a socket frame has no type.
	ErrMissingFrameType = zerr.New("frame has no type")

	// ErrInvalidNumber is returned when a numeric frame field is not a number.
	ErrInvalidNumber = zerr.New("invalid numeric field")

	// ErrNumberOutOfRange is returned when a numeric frame field does not fit in 32 bits.
	ErrNumberOutOfRange = zerr.New("numeric field out of range")

	// ErrInvalidStepCount is returned for step frames with a non-positive step count.
	ErrInvalidStepCount = zerr.New("step count must be positive")

	// ErrSocketDialFailed is returned when the status socket cannot be opened.
	ErrSocketDialFailed = zerr.New("failed to open status socket")

	// ErrSocketReadFailed is returned when reading from the status socket fails.
	ErrSocketReadFailed = zerr.New("status socket read failed")

	// ErrRestartRequestFailed is returned when the restart request could not be sent.
	ErrRestartRequestFailed = zerr.New("failed to send restart request")

	// ErrRestartRejected is returned when the server answered the restart request with an error status.
	ErrRestartRejected = zerr.New("restart request rejected")

	// ErrProbeFailed is returned when the reload probe fails.
	ErrProbeFailed = zerr.New("reload probe failed")

	// ErrUpdateFailed is returned when the watched update ended in FAILURE.
	ErrUpdateFailed = zerr.New("update failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidRelayPath is returned when the relay path does not start with a slash.
	ErrInvalidRelayPath = zerr.New("relay path must start with '/'")

	// ErrMissingRestartPath is returned when the restart path is empty.
	ErrMissingRestartPath = zerr.New("restart path must not be empty")

	// ErrInvalidOutputMode is returned for unknown output modes.
	ErrInvalidOutputMode = zerr.New("invalid output mode, expected auto, tui or linear")

	// ErrInvalidTiming is returned for unusable restart timings.
	ErrInvalidTiming = zerr.New("invalid timing")
)
