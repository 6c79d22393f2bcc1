package domain

// OutputKind defines the category of text sent to the host.
type OutputKind string

const (
	// OutputCanvas is a rendered frame of the canvas.
	OutputCanvas OutputKind = "canvas"

	// OutputText is the result of a command (help text, dumped script).
	OutputText OutputKind = "output"

	// OutputError belongs on the error channel: usage errors, unknown commands and
	// recoverable warnings.
	OutputError OutputKind = "error"

	// OutputSystem is a meta-message from the session (welcome, script progress).
	OutputSystem OutputKind = "system"
)

// OutputEvent is a piece of text the session asks the host to display.
type OutputEvent struct {
	Kind OutputKind `json:"type"`
	Text string     `json:"text"`
}
