// Package ports defines the interfaces between the presenter and its adapters.
package ports

import "go.trai.ch/swu/internal/core/domain"

// View is the binding between the status presenter and whatever displays it.
// Every method is called from the presenter's single dispatch goroutine.
//
//go:generate mockgen -source=view.go -destination=mocks/mock_view.go -package=mocks
type View interface {
	// SetConnection shows the state of the status socket.
	SetConnection(state domain.ConnectionState)
	// ShowPanel makes exactly one status panel visible.
	ShowPanel(panel domain.Panel)
	// SetBarMode switches the visual state of the progress bar.
	SetBarMode(mode domain.BarMode)
	// SetProgress renders the bar width, the step label and the progress text.
	SetProgress(progress domain.Progress)
	// AppendLog appends a line to the message log.
	AppendLog(entry domain.LogEntry)
	// ShowRestart shows the blocking "restarting" notice.
	ShowRestart()
	// Reset clears everything, as a page reload would.
	Reset()
}
