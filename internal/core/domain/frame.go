package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// FrameType discriminates the frames pushed by the update server.
type FrameType string

const (
	// FrameMessage carries a log line.
	FrameMessage FrameType = "message"
	// FrameStatus carries an UpdateStatus.
	FrameStatus FrameType = "status"
	// FrameStep carries step progress.
	FrameStep FrameType = "step"
	// FrameSource names the origin of the running update. It is informational only.
	FrameSource FrameType = "source"
)

// Frame is a decoded socket message. Only the fields relevant to Type are set.
type Frame struct {
	Type    FrameType `json:"type"`
	Text    string    `json:"text"`
	Level   Level     `json:"level"`
	Status  string    `json:"status"`
	Step    Number    `json:"step"`
	Percent Number    `json:"percent"`
	Count   Number    `json:"number"`
	Name    string    `json:"name"`
	Source  string    `json:"source"`
}

// ParseFrame decodes a raw text frame.
func ParseFrame(raw []byte) (Frame, error) {
	var f Frame
	if err := json.Unmarshal(raw, &f); err != nil {
		return Frame{}, zerr.Wrap(err, ErrMalformedFrame.Error())
	}
	if f.Type == "" {
		return Frame{}, ErrMissingFrameType
	}
	return f, nil
}

// Number is an integer that the server may encode either as a JSON number or
// as a quoted decimal string. Empty strings and null decode to zero.
// Fractions are truncated; values outside the int32 range are rejected.
type Number int

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}

	text := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		text = strings.TrimSpace(s)
		if text == "" {
			*n = 0
			return nil
		}
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return zerr.With(ErrInvalidNumber, "value", text)
	}
	if math.IsNaN(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return zerr.With(ErrNumberOutOfRange, "value", text)
	}
	*n = Number(int32(f))
	return nil
}

// Int returns n as an int.
func (n Number) Int() int {
	return int(n)
}

// Level is the optional severity of a message frame. Set is false when the
// field is missing, null, or not a number; such messages have no severity.
type Level struct {
	Value float64
	Set   bool
}

// UnmarshalJSON implements json.Unmarshaler. It never fails: a level that
// cannot be read leaves the message unleveled.
func (l *Level) UnmarshalJSON(data []byte) error {
	*l = Level{}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		text = string(bytes.TrimSpace(data))
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(f) {
		return nil
	}
	*l = Level{Value: f, Set: true}
	return nil
}

// Entry builds the log entry for text at this level.
func (l Level) Entry(text string) LogEntry {
	if !l.Set {
		return LogEntry{Text: text, Unleveled: true}
	}
	// Rounding up keeps "level <= threshold" exact for fractional levels.
	level := math.Max(math.MinInt32, math.Min(math.MaxInt32, math.Ceil(l.Value)))
	return LogEntry{Text: text, Level: Severity(level)}
}
