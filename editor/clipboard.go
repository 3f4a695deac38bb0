package editor

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the UI; failures are logged and otherwise ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
