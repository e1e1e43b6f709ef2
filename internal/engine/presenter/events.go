package presenter

// Event is an input to the presenter's state-transition function.
type Event interface {
	isEvent()
}

// SocketOpened is raised when the status socket completed its handshake.
type SocketOpened struct{}

// SocketMessage carries one text frame from the status socket.
type SocketMessage struct {
	Payload []byte
}

// SocketClosed is raised when the status socket closed or could not be opened.
type SocketClosed struct {
	Err error
}

// RestartRequested is raised when the user asks for a device restart.
type RestartRequested struct{}

// RestartSent is raised when the restart request completed, successfully or not.
// Generation is the one of the PostRestart that sent it.
type RestartSent struct {
	Generation uint64
	Err        error
}

// ProbeSucceeded is raised when the reload probe reached the server.
type ProbeSucceeded struct{}

// ProbeFailed is raised when the reload probe failed.
// Timeout is set when the probe ran into its deadline.
type ProbeFailed struct {
	Timeout bool
	Err     error
}

func (SocketOpened) isEvent()     {}
func (SocketMessage) isEvent()    {}
func (SocketClosed) isEvent()     {}
func (RestartRequested) isEvent() {}
func (RestartSent) isEvent()      {}
func (ProbeSucceeded) isEvent()   {}
func (ProbeFailed) isEvent()      {}
