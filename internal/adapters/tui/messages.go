package tui

import "go.trai.ch/swu/internal/core/domain"

// MsgConnection updates the connection indicator.
type MsgConnection struct {
	State domain.ConnectionState
}

// MsgPanel switches the visible status panel.
type MsgPanel struct {
	Panel domain.Panel
}

// MsgBarMode recolors the progress bar.
type MsgBarMode struct {
	Mode domain.BarMode
}

// MsgProgress moves the progress bar.
type MsgProgress struct {
	Progress domain.Progress
}

// MsgLog appends a server message to the log pane.
type MsgLog struct {
	Entry domain.LogEntry
}

// MsgRestart opens the restart notice.
type MsgRestart struct{}

// MsgReset clears the model after the server came back.
type MsgReset struct{}
